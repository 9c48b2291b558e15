/*
Package fonttest assembles small synthetic fonts and font collections for tests.

Fonts produced here carry no glyphs. They consist of a table directory and
arbitrary table payloads, which is all the splitting code ever looks at.
A 'name' table may be produced with NameTable.
*/
package fonttest

import (
	"bytes"
	"encoding/binary"
	"unicode/utf16"
)

// Table is a font table with a 4-letter tag and its payload.
type Table struct {
	Tag  string
	Data []byte
}

// Face is a single font within a collection.
type Face struct {
	Version uint32 // sfnt version, 0x00010000 if zero
	Tables  []Table
}

// Collection builds a collection file (TTC) from faces. Tables with identical
// tag and payload are stored only once and shared between faces, as font
// tools do for real collections. Table data starts at 4-byte boundaries.
func Collection(faces ...Face) []byte {
	headerSize := 12 + 4*len(faces)
	dirSize := 0
	for _, f := range faces {
		dirSize += 12 + 16*len(f.Tables)
	}
	data := make([]byte, headerSize+dirSize)
	copy(data[0:4], "ttcf")
	binary.BigEndian.PutUint32(data[4:8], 0x00010000)
	binary.BigEndian.PutUint32(data[8:12], uint32(len(faces)))
	shared := make(map[string]uint32)
	pos := headerSize
	for i, f := range faces {
		binary.BigEndian.PutUint32(data[12+4*i:], uint32(pos))
		writeOffsetTable(data[pos:], f)
		for j, t := range f.Tables {
			key := t.Tag + string(t.Data)
			off, ok := shared[key]
			if !ok {
				off = uint32(len(data))
				shared[key] = off
				data = append(data, Pad(t.Data)...)
			}
			writeRecord(data[pos+12+16*j:], t, off)
		}
		pos += 12 + 16*len(f.Tables)
	}
	return data
}

// Font builds a standalone sfnt font from a face.
func Font(f Face) []byte {
	data := make([]byte, 12+16*len(f.Tables))
	writeOffsetTable(data, f)
	for j, t := range f.Tables {
		writeRecord(data[12+16*j:], t, uint32(len(data)))
		data = append(data, Pad(t.Data)...)
	}
	return data
}

// Pad returns a copy of b, zero-padded to a multiple of 4 bytes.
func Pad(b []byte) []byte {
	p := make([]byte, (len(b)+3)&^3)
	copy(p, b)
	return p
}

// Checksum computes an OpenType table checksum.
func Checksum(b []byte) uint32 {
	var sum uint32
	p := Pad(b)
	for i := 0; i < len(p); i += 4 {
		sum += binary.BigEndian.Uint32(p[i:])
	}
	return sum
}

func writeOffsetTable(b []byte, f Face) {
	version := f.Version
	if version == 0 {
		version = 0x00010000
	}
	n := uint16(len(f.Tables))
	var searchRange, entrySelector uint16 = 1, 0
	for searchRange*2 <= n {
		searchRange *= 2
		entrySelector++
	}
	searchRange *= 16
	binary.BigEndian.PutUint32(b[0:4], version)
	binary.BigEndian.PutUint16(b[4:6], n)
	binary.BigEndian.PutUint16(b[6:8], searchRange)
	binary.BigEndian.PutUint16(b[8:10], entrySelector)
	binary.BigEndian.PutUint16(b[10:12], n*16-searchRange)
}

func writeRecord(b []byte, t Table, offset uint32) {
	copy(b[0:4], (t.Tag + "    ")[:4])
	binary.BigEndian.PutUint32(b[4:8], Checksum(t.Data))
	binary.BigEndian.PutUint32(b[8:12], offset)
	binary.BigEndian.PutUint32(b[12:16], uint32(len(t.Data)))
}

// NameRecord is an entry for NameTable.
type NameRecord struct {
	NameID   uint16
	Value    string
	Platform uint16 // 3 (Windows) if Platform and Encoding are both zero
	Encoding uint16 // 1 (Unicode BMP) if Platform and Encoding are both zero
}

// NameTable builds a 'name' table (format 0) with strings in UTF-16BE.
// Records default to platform 3, encoding 1, language 0x0409.
func NameTable(records ...NameRecord) []byte {
	var header, storage bytes.Buffer
	put16 := func(n uint16) { _ = binary.Write(&header, binary.BigEndian, n) }
	put16(0)
	put16(uint16(len(records)))
	put16(uint16(6 + 12*len(records)))
	for _, r := range records {
		var str bytes.Buffer
		for _, u := range utf16.Encode([]rune(r.Value)) {
			_ = binary.Write(&str, binary.BigEndian, u)
		}
		platform, encoding := r.Platform, r.Encoding
		if platform == 0 && encoding == 0 {
			platform, encoding = 3, 1
		}
		put16(platform)
		put16(encoding)
		put16(0x0409)
		put16(r.NameID)
		put16(uint16(str.Len()))
		put16(uint16(storage.Len()))
		storage.Write(str.Bytes())
	}
	return append(header.Bytes(), storage.Bytes()...)
}
