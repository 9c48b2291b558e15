/*
Package otquery decodes naming information of OpenType fonts.

Clients will usually call ResolveName, which selects a name suitable to
identify a single font (a standalone font or a font re-assembled from a
collection) and falls back to a placeholder if the font carries no usable
name. Decoding the 'name' table is delegated to a NameDecoder; two are
provided: RawNames, a lenient reader working directly on the font's bytes,
and SFNTNames, which uses golang.org/x/image/font/sfnt.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otquery

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fonttool'
func tracer() tracing.Trace {
	return tracing.Select("fonttool")
}
