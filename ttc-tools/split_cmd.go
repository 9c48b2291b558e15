package main

import (
	"strings"

	"github.com/npillmayer/fonttool/internal/fontload"
	"github.com/npillmayer/fonttool/otquery"
	"github.com/npillmayer/fonttool/split"
	"github.com/npillmayer/fonttool/ttc"
	"github.com/thatisuday/commando"
)

func runSplitCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setTraceLevel(flags["trace"])
	input := strings.TrimSpace(args["input"].Value)
	if input == "" {
		fatalf("input path is required")
	}
	s := split.Splitter{
		OutDir: mustFlagString(flags["output"], "output"),
		Unique: mustFlagBool(flags["unique"], "unique"),
	}
	switch dec := mustFlagString(flags["decoder"], "decoder"); dec {
	case "raw":
		s.Decoder = otquery.RawNames
	case "sfnt":
		s.Decoder = otquery.SFNTNames
	default:
		fatalf("unknown name decoder: %s", dec)
	}
	if mustFlagBool(flags["strict"], "strict") {
		s.Options = append(s.Options, ttc.StrictSignature)
	}
	f, err := fontload.LoadFontFile(input)
	if err != nil {
		fatalf("cannot read %s: %v", input, err)
	}
	if _, err := s.Split(f.Binary); err != nil {
		fatalf("cannot split %s: %v", input, err)
	}
}
