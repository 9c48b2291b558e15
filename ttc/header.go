package ttc

import "fmt"

// CollectionHeader is the TTC header of a font collection file.
//
// "The purpose of the TTC Header table is to locate the different table
// directories within a TTC file."
// Version 2.0 headers carry additional DSIG fields after the offsets; these
// are not needed for splitting and will not be read.
type CollectionHeader struct {
	Signature Tag      // should be 'ttcf', not checked unless StrictSignature is set
	Version   uint32   // 0x00010000 or 0x00020000
	FontCount uint32   // number of fonts in the collection
	Offsets   []uint32 // offsets of the fonts' table directories from the start of the file
}

const collectionHeaderSize = 12 // signature, version, font count

// ParseCollectionHeader reads the header of a font collection.
// data is the complete collection file, which is not modified.
//
// Without option StrictSignature, any signature will be accepted and data will
// be interpreted as a collection header regardless.
func ParseCollectionHeader(data []byte, opts ...ParseOption) (*CollectionHeader, error) {
	r := reader{segm: binarySegm(data)}
	h := &CollectionHeader{}
	h.Signature = Tag(r.u32())
	h.Version = r.u32()
	h.FontCount = r.u32()
	if r.err != nil {
		return nil, withSection(r.err, "TTCHeader")
	}
	if h.Signature != CollectionTag {
		if hasOption(opts, StrictSignature) {
			return nil, &FontError{
				Section: "TTCHeader",
				Issue:   fmt.Sprintf("signature is %x, expected 'ttcf'", uint32(h.Signature)),
				Err:     ErrBadSignature,
			}
		}
		tracer().Infof("collection signature is %x|%s, not 'ttcf'; continuing anyway",
			uint32(h.Signature), h.Signature)
	}
	tracer().Debugf("collection header: version = %x, %d fonts", h.Version, h.FontCount)
	// Check the offset array against the data before allocating for it.
	if _, err := r.segm.view(collectionHeaderSize, 4*int(h.FontCount)); err != nil {
		return nil, withSection(err, "TTCHeader.Offsets")
	}
	h.Offsets = make([]uint32, h.FontCount)
	for i := range h.Offsets {
		h.Offsets[i] = r.u32()
	}
	if r.err != nil {
		return nil, withSection(r.err, "TTCHeader.Offsets")
	}
	return h, nil
}
