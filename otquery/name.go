package otquery

import (
	"fmt"
	"iter"

	"github.com/npillmayer/fonttool/ttc"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/encoding/unicode"
)

const (
	nameHeaderSize = 6
	nameRecordSize = 12
)

// nameKey identifies a NameRecord entry in OpenType table 'name'.
// The key follows the OpenType NameRecord fields directly.
type nameKey struct {
	Platform PlatformID
	Encoding EncodingID
	Language uint16      // not supported
	Name     sfnt.NameID // see https://pkg.go.dev/golang.org/x/image/font/sfnt#NameID
}

type PlatformID uint16

const (
	PlatformIDUnicode   PlatformID = 0
	PlatformIDMacintosh PlatformID = 1 // not supported
	PlatformIDWindows   PlatformID = 3
)

type EncodingID uint16

const (
	EncodingIDUnicodeBMP    EncodingID = 3
	EncodingIDUnicodeFull   EncodingID = 4
	EncodingIDWindowsSymbol EncodingID = 0 // names are UTF-16BE nevertheless
	EncodingIDWindowsBMP    EncodingID = 1
	EncodingIDWindowsUCS4   EncodingID = 10
)

// NameRecords yields decoded `(nameID, value)` pairs from the bytes of an
// OpenType `name` table.
//
// Only records stored as UTF-16BE are yielded (every Unicode platform encoding,
// Windows symbol, BMP and full repertoire),
// and malformed or out-of-bounds records are skipped. A table which is too
// short to hold its record array yields nothing.
func NameRecords(table []byte) iter.Seq2[sfnt.NameID, string] {
	ok := checkNameTableSafe(table)
	return func(yield func(sfnt.NameID, string) bool) {
		if !ok {
			return
		}
		count := int(u16(table[2:4])) // number of name records
		stringStorageOffset := int(u16(table[4:6]))
		for i := range count {
			recordSlice := table[nameHeaderSize+i*nameRecordSize : nameHeaderSize+(i+1)*nameRecordSize]
			key := nameKey{
				Platform: PlatformID(u16(recordSlice[0:2])),
				Encoding: EncodingID(u16(recordSlice[2:4])),
				Language: u16(recordSlice[4:6]),
				Name:     sfnt.NameID(u16(recordSlice[6:8])),
			}
			if !isSupportedNameEncoding(key) {
				continue
			}
			strLen := int(u16(recordSlice[8:10]))
			recordOffset := int(u16(recordSlice[10:12]))
			start := stringStorageOffset + recordOffset
			end := start + strLen
			if end > len(table) {
				continue
			}
			stringValue, err := decodeNameUTF16(table[start:end])
			if err != nil || stringValue == "" {
				continue
			}
			if !yield(key.Name, stringValue) {
				return
			}
		}
	}
}

// checkNameTableSafe checks if the name table is safe to use, i.e. no out-of-bounds access,
// no empty tables, etc.
func checkNameTableSafe(b []byte) bool {
	if len(b) < nameHeaderSize {
		tracer().Debugf("name table too short: %d", len(b))
		return false
	}
	count := int(u16(b[2:4]))
	strOff := int(u16(b[4:6]))
	if strOff > len(b) {
		tracer().Debugf("name table invalid string offset: %d", strOff)
		return false
	}
	recordsEnd := nameHeaderSize + count*nameRecordSize
	if recordsEnd > len(b) {
		tracer().Debugf("name table record section out of bounds: count=%d", count)
		return false
	}
	return true
}

func isSupportedNameEncoding(key nameKey) bool {
	switch key.Platform {
	case PlatformIDUnicode:
		return true
	case PlatformIDWindows:
		return key.Encoding == EncodingIDWindowsSymbol ||
			key.Encoding == EncodingIDWindowsBMP ||
			key.Encoding == EncodingIDWindowsUCS4
	}
	return false
}

func decodeNameUTF16(str []byte) (string, error) {
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	decoder := enc.NewDecoder()
	s, err := decoder.Bytes(str)
	if err != nil {
		return "", fmt.Errorf("decoding UTF-16 error: %v", err)
	}
	return string(s), nil
}

// nameTable locates table 'name' of face number face in font, which may be
// a standalone font or a collection.
func nameTable(font []byte, face int) ([]byte, error) {
	offset := uint32(0)
	if len(font) >= 4 && ttc.MakeTag(font[:4]) == ttc.CollectionTag {
		h, err := ttc.ParseCollectionHeader(font)
		if err != nil {
			return nil, err
		}
		if face < 0 || face >= len(h.Offsets) {
			return nil, fmt.Errorf("face index %d out of range, collection has %d fonts", face, len(h.Offsets))
		}
		offset = h.Offsets[face]
	} else if face != 0 {
		return nil, fmt.Errorf("face index %d out of range for a single font", face)
	}
	dir, err := ttc.ReadDirectory(font, offset)
	if err != nil {
		return nil, err
	}
	rec, ok := dir.Table(ttc.T("name"))
	if !ok {
		return nil, fmt.Errorf("font has no name table")
	}
	if uint64(rec.Offset)+uint64(rec.Length) > uint64(len(font)) {
		return nil, fmt.Errorf("name table out of bounds: %w", ttc.ErrOutOfBounds)
	}
	return font[rec.Offset : rec.Offset+rec.Length], nil
}

func u16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])<<0
}
