package otquery

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
)

// ResolveName returns a human-readable name for font, which has to be a
// standalone font. index is the position of the font within its collection
// and is used for the fallback name only.
//
// The font's full name (name ID 4) is returned if dec can find one. Otherwise,
// including when decoding fails, ResolveName returns "subfont_<index>".
// If dec is nil, RawNames is used.
func ResolveName(font []byte, index int, dec NameDecoder) string {
	if dec == nil {
		dec = RawNames
	}
	names, err := dec.Decode(font, 0)
	if err != nil {
		tracer().Infof("font %d: %v; using placeholder name", index, err)
		return FallbackName(index)
	}
	if full := names[sfnt.NameIDFull]; full != "" {
		return full
	}
	tracer().Debugf("font %d has no full name; using placeholder name", index)
	return FallbackName(index)
}

// FallbackName is the name used for fonts without a usable full name.
func FallbackName(index int) string {
	return fmt.Sprintf("subfont_%d", index)
}
