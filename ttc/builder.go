package ttc

import (
	"fmt"
	"math"
)

// FontSize returns the size in bytes of the standalone font BuildFont will
// produce for dir: the offset table, the table directory and every table
// padded to a multiple of 4 bytes.
func FontSize(dir *Directory) (uint64, error) {
	if dir == nil {
		return 0, fmt.Errorf("font directory is nil")
	}
	size := uint64(offsetSubtableSize + tableRecordSize*len(dir.Tables))
	for _, rec := range dir.Tables {
		size += (uint64(rec.Length) + 3) &^ 3
	}
	return size, nil
}

// BuildFont re-assembles the font described by dir into a standalone sfnt
// binary. src is the data dir has been read from, usually a complete
// collection file; it is not modified.
//
// Tables are copied in directory order, each starting at a 4-byte boundary,
// with padding bytes set to zero. The resulting table directory has the same
// entries as dir, with only the table offsets changed. Checksums are copied
// unchanged.
//
// If a table record points outside of src, BuildFont fails with an error
// wrapping ErrOutOfBounds and no font is produced.
func BuildFont(src []byte, dir *Directory) ([]byte, error) {
	size, err := FontSize(dir)
	if err != nil {
		return nil, err
	}
	if size > math.MaxUint32 {
		return nil, &FontError{
			Section: "Font",
			Issue:   fmt.Sprintf("font of %d bytes cannot be addressed by 32-bit offsets", size),
			Err:     ErrOutOfBounds,
		}
	}
	if len(dir.Tables) > math.MaxUint16 {
		return nil, &FontError{
			Section: "TableRecords",
			Issue:   fmt.Sprintf("%d table records cannot be counted by a 16-bit table count", len(dir.Tables)),
			Err:     ErrOutOfBounds,
		}
	}
	if len(dir.Tables) != int(dir.Header.TableCount) {
		tracer().Infof("table count %d differs from number of table records %d; using records",
			dir.Header.TableCount, len(dir.Tables))
	}
	out := make([]byte, offsetSubtableSize, size)
	putU32(out[0:4], dir.Header.SfntVersion)
	putU16(out[4:6], uint16(len(dir.Tables)))
	putU16(out[6:8], dir.Header.SearchRange)
	putU16(out[8:10], dir.Header.EntrySelector)
	putU16(out[10:12], dir.Header.RangeShift)
	// Reserve space for the table directory; it will be written after the
	// table data, when the new offsets are known.
	dirStart := len(out)
	out = append(out, make([]byte, tableRecordSize*len(dir.Tables))...)

	offsets := make([]uint32, len(dir.Tables))
	for i, rec := range dir.Tables {
		table, err := tableData(src, rec)
		if err != nil {
			return nil, err
		}
		offsets[i] = uint32(len(out))
		out = append(out, table...)
		if pad := pad4(rec.Length) - rec.Length; pad > 0 {
			out = append(out, make([]byte, pad)...)
		}
		tracer().Debugf("table %s: %d bytes moved from %d to %d", rec.Tag, rec.Length, rec.Offset, offsets[i])
	}

	for i, rec := range dir.Tables {
		entry := out[dirStart+i*tableRecordSize : dirStart+(i+1)*tableRecordSize]
		putU32(entry[0:4], uint32(rec.Tag))
		putU32(entry[4:8], rec.Checksum)
		putU32(entry[8:12], offsets[i])
		putU32(entry[12:16], rec.Length)
	}
	return out, nil
}

// tableData returns the bytes of a table within src, checking bounds.
func tableData(src []byte, rec TableRecord) ([]byte, error) {
	end, err := checkedAddUint32(rec.Offset, rec.Length)
	if err != nil {
		return nil, &FontError{
			Table:   rec.Tag,
			Section: "TableRecord",
			Issue:   fmt.Sprintf("size calculation overflow: %v", err),
			Offset:  rec.Offset,
			Err:     ErrOutOfBounds,
		}
	}
	if uint64(end) > uint64(len(src)) {
		return nil, &FontError{
			Table:   rec.Tag,
			Section: "TableRecord",
			Issue:   fmt.Sprintf("bounds [%d:%d] exceed source size %d", rec.Offset, end, len(src)),
			Offset:  rec.Offset,
			Err:     ErrOutOfBounds,
		}
	}
	return src[rec.Offset:end], nil
}
