/*
Package fonttool splits TrueType and OpenType font collections.

A font collection (*.ttc, *.otc) holds a number of fonts, usually the
variants of a typeface, which share some of their tables. Many applications
cannot load collections, but only standalone fonts (*.ttf, *.otf).
SplitCollection extracts every font of a collection as a standalone font
file, named after the font's full name:

	paths, err := fonttool.SplitCollection("/System/Library/Fonts/Helvetica.ttc", "out")

Package fonttool is a thin convenience layer. Reading collections and
re-assembling fonts is done by package ttc, naming fonts by package otquery,
and package split puts it all together.

# Status

Table checksums are copied unchanged. The checkSumAdjustment field of table
'head' is not recalculated, which strict font validators may complain about.

# Links

OpenType explained:
https://docs.microsoft.com/en-us/typography/opentype/

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fonttool

import (
	"github.com/npillmayer/fonttool/internal/fontload"
	"github.com/npillmayer/fonttool/split"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fonttool'
func tracer() tracing.Trace {
	return tracing.Select("fonttool")
}

// SplitCollection extracts the fonts of collection file input into directory
// outDir, which will be created if necessary. It returns the paths of the
// font files written.
func SplitCollection(input, outDir string) ([]string, error) {
	paths, err := split.SplitFile(input, outDir)
	if err != nil {
		return paths, err
	}
	tracer().Debugf("extracted %d fonts from %s", len(paths), input)
	return paths, nil
}

// FamilyNames loads a font file or font collection and returns the distinct
// family names of its fonts, sorted.
func FamilyNames(fontfile string) ([]string, error) {
	f, err := fontload.LoadFontFile(fontfile)
	if err != nil {
		return nil, err
	}
	return split.FamilyNames(f.Binary)
}
