/*
Package split extracts the fonts of a font collection into separate files.

A Splitter walks the fonts of a collection in order, re-assembles each of them
as a standalone font (see package ttc), names it after its full name and
writes it to an output directory:

	s := split.Splitter{OutDir: "fonts"}
	paths, err := s.Split(collection)

Extraction stops at the first error. Fonts extracted up to this point remain
in the output directory.

FamilyNames lists the family names of all fonts in a font file or collection.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package split

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fonttool'
func tracer() tracing.Trace {
	return tracing.Select("fonttool")
}
