package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'fonttool'
func tracer() tracing.Trace {
	return tracing.Select("fonttool")
}

func main() {
	initDisplay()
	initTracing()

	commando.
		SetExecutableName("ttc-tools").
		SetVersion("v0.1.0").
		SetDescription("CLI for splitting TrueType/OpenType font collections.")

	commando.
		Register("split").
		SetDescription("Extract every font of a font collection (TTC/OTC) into a standalone font file.").
		SetShortDescription("split a collection").
		AddArgument("input", "font collection file path", "").
		AddFlag("output,o", "output directory (created if missing)", commando.String, ".").
		AddFlag("unique,u", "append the font index to file names already used", commando.Bool, nil).
		AddFlag("strict,s", "reject files without a 'ttcf' signature", commando.Bool, nil).
		AddFlag("decoder,d", "name table decoder: raw|sfnt", commando.String, "raw").
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runSplitCommand)

	commando.
		Register("getname").
		SetDescription("Print the family names (name IDs 1 and 16) of all fonts in a font file or collection.").
		SetShortDescription("list family names").
		AddArgument("input", "font or font collection file path", "").
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runGetnameCommand)

	commando.Parse(nil)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func initTracing() {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.fonttool":  "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

func setTraceLevel(flag commando.FlagValue) {
	level, err := flag.GetString()
	if err != nil {
		fatalf("invalid --trace flag: %v", err)
	}
	switch level {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		fatalf("invalid trace level: %s", level)
	}
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return s
}

func fatalf(format string, args ...interface{}) {
	pterm.Error.Println(fmt.Sprintf(format, args...))
	os.Exit(1)
}
