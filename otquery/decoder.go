package otquery

import (
	"errors"
	"fmt"

	"golang.org/x/image/font/sfnt"
)

// ErrDecodeFailure is wrapped by errors of NameDecoders.
var ErrDecodeFailure = errors.New("cannot decode name table")

// NameDecoder decodes the 'name' table of a font.
//
// font is either a standalone font or a collection, face is the index of the
// font within a collection (0 for standalone fonts). Decode returns a mapping
// from name IDs to decoded strings. If a name ID occurs more than once, the
// first decodable record wins.
type NameDecoder interface {
	Decode(font []byte, face int) (map[sfnt.NameID]string, error)
}

// NameDecoderFunc adapts a function to the NameDecoder interface.
type NameDecoderFunc func(font []byte, face int) (map[sfnt.NameID]string, error)

// Decode calls f(font, face).
func (f NameDecoderFunc) Decode(font []byte, face int) (map[sfnt.NameID]string, error) {
	return f(font, face)
}

// RawNames decodes name tables directly from a font's bytes. It requires
// nothing but a table directory and a 'name' table, and skips records it
// cannot decode.
var RawNames NameDecoder = NameDecoderFunc(decodeRawNames)

func decodeRawNames(font []byte, face int) (map[sfnt.NameID]string, error) {
	table, err := nameTable(font, face)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailure, err)
	}
	if !checkNameTableSafe(table) {
		return nil, fmt.Errorf("%w: malformed name table", ErrDecodeFailure)
	}
	names := make(map[sfnt.NameID]string)
	for id, value := range NameRecords(table) {
		if _, ok := names[id]; !ok {
			names[id] = value
		}
	}
	return names, nil
}

// SFNTNames decodes name tables using package golang.org/x/image/font/sfnt.
// sfnt validates the font as a whole, therefore decoding fails for fonts
// lacking tables required for rendering, even if the 'name' table is fine.
var SFNTNames NameDecoder = NameDecoderFunc(decodeSFNTNames)

// maxNameID is the highest name ID predefined by OpenType 1.9
// ("Variations PostScript Name Prefix").
const maxNameID = 25

func decodeSFNTNames(font []byte, face int) (map[sfnt.NameID]string, error) {
	var f *sfnt.Font
	var err error
	if len(font) >= 4 && string(font[:4]) == "ttcf" {
		var c *sfnt.Collection
		if c, err = sfnt.ParseCollection(font); err == nil {
			f, err = c.Font(face)
		}
	} else if face == 0 {
		f, err = sfnt.Parse(font)
	} else {
		err = fmt.Errorf("face index %d out of range for a single font", face)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailure, err)
	}
	var buf sfnt.Buffer
	names := make(map[sfnt.NameID]string)
	for id := sfnt.NameID(0); id <= maxNameID; id++ {
		name, err := f.Name(&buf, id)
		if errors.Is(err, sfnt.ErrNotFound) {
			continue
		} else if err != nil {
			return nil, fmt.Errorf("%w: name ID %d: %w", ErrDecodeFailure, id, err)
		}
		if name != "" {
			names[id] = name
		}
	}
	return names, nil
}
