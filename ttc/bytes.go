package ttc

import (
	"fmt"
	"math"
)

// Reading bytes from a font's binary representation

func u16(b []byte) uint16 {
	_ = b[1] // Bounds check hint to compiler
	return uint16(b[0])<<8 | uint16(b[1])<<0
}

func u32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])<<0
}

func putU16(b []byte, n uint16) {
	_ = b[1]
	b[0] = byte(n >> 8)
	b[1] = byte(n)
}

func putU32(b []byte, n uint32) {
	_ = b[3]
	b[0] = byte(n >> 24)
	b[1] = byte(n >> 16)
	b[2] = byte(n >> 8)
	b[3] = byte(n)
}

// binarySegm is a segment of byte data, usually the complete collection file.
// All reads are bounds checked and never read past the end of the segment.
type binarySegm []byte

// view returns n bytes at the given offset.
// The byte segment returned is a sub-slice of b.
func (b binarySegm) view(offset, n int) (binarySegm, error) {
	if offset < 0 || n < 0 || offset > len(b) || n > len(b)-offset {
		return nil, errTruncated(offset, n, len(b))
	}
	return b[offset : offset+n], nil
}

// u16 returns the uint16 in b at the relative offset i.
func (b binarySegm) u16(i int) (uint16, error) {
	buf, err := b.view(i, 2)
	if err != nil {
		return 0, err
	}
	return u16(buf), nil
}

// u32 returns the uint32 in b at the relative offset i.
func (b binarySegm) u32(i int) (uint32, error) {
	buf, err := b.view(i, 4)
	if err != nil {
		return 0, err
	}
	return u32(buf), nil
}

// reader reads consecutive big-endian fields from a segment. The first
// failing read sticks: subsequent reads return 0 and err is kept.
type reader struct {
	segm binarySegm
	pos  int
	err  error
}

func (r *reader) u16() uint16 {
	if r.err != nil {
		return 0
	}
	var n uint16
	if n, r.err = r.segm.u16(r.pos); r.err == nil {
		r.pos += 2
	}
	return n
}

func (r *reader) u32() uint32 {
	if r.err != nil {
		return 0
	}
	var n uint32
	if n, r.err = r.segm.u32(r.pos); r.err == nil {
		r.pos += 4
	}
	return n
}

// ---------------------------------------------------------------------------

// checkedAddUint32 checks for overflow in addition of two uint32 values
func checkedAddUint32(a, b uint32) (uint32, error) {
	if a > math.MaxUint32-b {
		return 0, fmt.Errorf("integer overflow: %d + %d", a, b)
	}
	return a + b, nil
}

// pad4 rounds n up to the next multiple of 4.
func pad4(n uint32) uint32 {
	return (n + 3) &^ 3
}
