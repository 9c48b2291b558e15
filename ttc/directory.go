package ttc

import (
	"fmt"
	"strings"
)

// OffsetSubtable is the header of an sfnt table directory ("Offset Table").
// If the font file contains only one font, the table directory will begin at
// byte 0 of the file. For collections, the beginning of the table directory
// of each font is given in the CollectionHeader.
//
// SearchRange, EntrySelector and RangeShift are hints for binary search over
// the table records. As splitting does not change the number of tables, they
// are copied unchanged.
type OffsetSubtable struct {
	SfntVersion   uint32 // 0x00010000 for TrueType outlines, 'OTTO' for CFF
	TableCount    uint16
	SearchRange   uint16
	EntrySelector uint16
	RangeShift    uint16
}

// TableRecord is an entry of a font's table directory.
//
// When read from a collection, Offset is relative to the start of the
// collection file. Length is the exact size of the table without padding.
type TableRecord struct {
	Tag      Tag
	Checksum uint32
	Offset   uint32
	Length   uint32
}

// Directory is the table directory of a single font.
// Tables are kept in the order in which they appear on disk.
type Directory struct {
	Header OffsetSubtable
	Tables []TableRecord
}

const (
	offsetSubtableSize = 12
	tableRecordSize    = 16
)

// ReadDirectory reads the table directory of a font located at offset within
// data. data is usually a complete collection file, but ReadDirectory may as
// well be used with offset 0 on a single font.
//
// Table records are not validated against the data; this is left to BuildFont.
// Records are neither sorted nor de-duplicated.
func ReadDirectory(data []byte, offset uint32) (*Directory, error) {
	segm := binarySegm(data)
	if int64(offset) > int64(len(segm)) {
		return nil, &FontError{
			Section: "OffsetTable",
			Issue:   fmt.Sprintf("directory offset beyond end of data (size %d)", len(segm)),
			Offset:  offset,
			Err:     ErrTruncatedInput,
		}
	}
	r := reader{segm: segm, pos: int(offset)}
	dir := &Directory{}
	dir.Header.SfntVersion = r.u32()
	dir.Header.TableCount = r.u16()
	dir.Header.SearchRange = r.u16()
	dir.Header.EntrySelector = r.u16()
	dir.Header.RangeShift = r.u16()
	if r.err != nil {
		return nil, withSection(r.err, "OffsetTable")
	}
	tracer().Debugf("font at %d: sfnt version = %x|%s, %d tables", offset,
		dir.Header.SfntVersion, Tag(dir.Header.SfntVersion), dir.Header.TableCount)
	// "The Offset Table is followed immediately by the Table Record entries", 16 bytes each.
	if _, err := segm.view(r.pos, tableRecordSize*int(dir.Header.TableCount)); err != nil {
		return nil, withSection(err, "TableRecords")
	}
	dir.Tables = make([]TableRecord, dir.Header.TableCount)
	for i := range dir.Tables {
		rec := &dir.Tables[i]
		rec.Tag = Tag(r.u32())
		rec.Checksum = r.u32()
		rec.Offset = r.u32()
		rec.Length = r.u32()
	}
	if r.err != nil {
		return nil, withSection(r.err, "TableRecords")
	}
	return dir, nil
}

// Table returns the first table record for tag, if present.
func (dir *Directory) Table(tag Tag) (TableRecord, bool) {
	for _, rec := range dir.Tables {
		if rec.Tag == tag {
			return rec, true
		}
	}
	return TableRecord{}, false
}

func (dir *Directory) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s]", Tag(dir.Header.SfntVersion))
	for _, rec := range dir.Tables {
		fmt.Fprintf(&sb, " %s@%d+%d", rec.Tag, rec.Offset, rec.Length)
	}
	return sb.String()
}
