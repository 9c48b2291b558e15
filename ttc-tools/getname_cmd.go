package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fonttool/internal/fontload"
	"github.com/npillmayer/fonttool/split"
	"github.com/thatisuday/commando"
)

func runGetnameCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setTraceLevel(flags["trace"])
	input := strings.TrimSpace(args["input"].Value)
	if input == "" {
		fatalf("input path is required")
	}
	f, err := fontload.LoadFontFile(input)
	if err != nil {
		fatalf("cannot read %s: %v", input, err)
	}
	names, err := split.FamilyNames(f.Binary)
	if err != nil {
		fatalf("cannot read names of %s: %v", input, err)
	}
	for _, name := range names {
		fmt.Println(name)
	}
}
