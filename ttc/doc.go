/*
Package ttc splits TrueType/OpenType font collections into standalone fonts.

A collection file (*.ttc, *.otc) bundles several fonts which share a single
binary blob. The collection header lists one offset per font; at each offset
starts a regular sfnt offset table, followed by the font's table records.
Table records point into the shared blob, so different fonts of a collection
may reference the very same table data.

Package ttc reads the collection header (ParseCollectionHeader), the table
directory of a single font (ReadDirectory) and re-assembles the tables of one
font into a new, self-contained sfnt binary (BuildFont):

	header, err := ttc.ParseCollectionHeader(data)
	...
	for _, offset := range header.Offsets {
	    dir, err := ttc.ReadDirectory(data, offset)
	    ...
	    font, err := ttc.BuildFont(data, dir)
	    ...
	}

All numbers are big-endian. Table checksums are copied as they are; neither
table checksums nor the checkSumAdjustment of table 'head' will be recalculated.
Checksums are computed over table content only, so they stay valid for every
table, but 'head.checkSumAdjustment' will in general not match the new file.

# Links

OpenType font file structure:
https://docs.microsoft.com/en-us/typography/opentype/spec/otff

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ttc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fonttool'
func tracer() tracing.Trace {
	return tracing.Select("fonttool")
}
