package ttc

import (
	"bytes"
	"errors"
	"testing"

	"github.com/npillmayer/fonttool/internal/fonttest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCollection() []byte {
	head := bytes.Repeat([]byte{0xab}, 54)
	name1 := fonttest.NameTable(fonttest.NameRecord{NameID: 4, Value: "Test Regular"})
	name2 := fonttest.NameTable(fonttest.NameRecord{NameID: 4, Value: "Test Bold"})
	cmap := []byte{0, 0, 0, 1, 2, 3, 4} // odd length
	return fonttest.Collection(
		fonttest.Face{Tables: []fonttest.Table{
			{Tag: "cmap", Data: cmap},
			{Tag: "head", Data: head},
			{Tag: "name", Data: name1},
		}},
		fonttest.Face{Tables: []fonttest.Table{
			{Tag: "cmap", Data: cmap},
			{Tag: "head", Data: head},
			{Tag: "name", Data: name2},
			{Tag: "post", Data: []byte{1}},
		}},
	)
}

func TestTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fonttool")
	defer teardown()
	//
	tag := Tag(0x636d6170)
	if tag.String() != "cmap" {
		t.Errorf("expected tag 0x636d6170 to be 'cmap', is %s", tag.String())
	}
	tag = MakeTag([]byte("cmap"))
	if tag.String() != "cmap" {
		t.Errorf("expected tag MakeTag(cmap) to be 'cmap', is %s", tag.String())
	}
	if T("OS/2") != MakeTag([]byte("OS/2")) {
		t.Errorf("expected T(OS/2) = MakeTag(OS/2)")
	}
	if T("cvt") != T("cvt ") {
		t.Errorf("expected short tag to be padded with a space")
	}
	if CollectionTag.String() != "ttcf" {
		t.Errorf("expected collection tag to be 'ttcf', is %s", CollectionTag)
	}
}

func TestCollectionHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fonttool")
	defer teardown()
	//
	data := testCollection()
	h, err := ParseCollectionHeader(data)
	require.NoError(t, err)
	assert.Equal(t, CollectionTag, h.Signature)
	assert.Equal(t, uint32(0x00010000), h.Version)
	assert.Equal(t, uint32(2), h.FontCount)
	require.Len(t, h.Offsets, 2)
	assert.Equal(t, uint32(20), h.Offsets[0])
	assert.Equal(t, uint32(20+12+3*16), h.Offsets[1])
}

func TestCollectionHeaderTruncated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fonttool")
	defer teardown()
	//
	data := testCollection()
	for _, n := range []int{0, 3, 11, 12, 19} {
		_, err := ParseCollectionHeader(data[:n])
		assert.ErrorIs(t, err, ErrTruncatedInput, "header cut at %d bytes", n)
	}
	// a huge font count must not be trusted
	bogus := append([]byte("ttcf\x00\x01\x00\x00\xff\xff\xff\xff"), 0, 0, 0, 12)
	_, err := ParseCollectionHeader(bogus)
	assert.ErrorIs(t, err, ErrTruncatedInput)
}

func TestCollectionSignature(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fonttool")
	defer teardown()
	//
	data := testCollection()
	copy(data[0:4], "xxxx")
	h, err := ParseCollectionHeader(data)
	require.NoError(t, err, "signature must not be checked by default")
	assert.Equal(t, T("xxxx"), h.Signature)
	assert.Len(t, h.Offsets, 2)
	_, err = ParseCollectionHeader(data, StrictSignature)
	assert.ErrorIs(t, err, ErrBadSignature)
	var ferr *FontError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, "TTCHeader", ferr.Section)
}

func TestReadDirectory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fonttool")
	defer teardown()
	//
	data := testCollection()
	h, err := ParseCollectionHeader(data)
	require.NoError(t, err)
	dir, err := ReadDirectory(data, h.Offsets[1])
	require.NoError(t, err)
	assert.Equal(t, uint32(0x00010000), dir.Header.SfntVersion)
	assert.Equal(t, uint16(4), dir.Header.TableCount)
	assert.Equal(t, uint16(64), dir.Header.SearchRange)
	assert.Equal(t, uint16(2), dir.Header.EntrySelector)
	assert.Equal(t, uint16(0), dir.Header.RangeShift)
	require.Len(t, dir.Tables, 4)
	tags := []string{"cmap", "head", "name", "post"}
	for i, rec := range dir.Tables {
		assert.Equal(t, tags[i], rec.Tag.String())
	}
	cmap, ok := dir.Table(T("cmap"))
	require.True(t, ok)
	assert.Equal(t, uint32(7), cmap.Length)
	assert.Equal(t, []byte{0, 0, 0, 1, 2, 3, 4}, data[cmap.Offset:cmap.Offset+cmap.Length])
	// tables are shared between the fonts of the collection
	first, err := ReadDirectory(data, h.Offsets[0])
	require.NoError(t, err)
	assert.Equal(t, first.Tables[0].Offset, cmap.Offset)
	assert.NotEqual(t, first.Tables[2].Offset, dir.Tables[2].Offset)
	t.Logf("directory = %s", dir)
}

func TestReadDirectoryKeepsOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fonttool")
	defer teardown()
	//
	font := fonttest.Font(fonttest.Face{Tables: []fonttest.Table{
		{Tag: "post", Data: []byte{1, 2}},
		{Tag: "head", Data: []byte{3}},
		{Tag: "post", Data: []byte{4, 5, 6}},
	}})
	dir, err := ReadDirectory(font, 0)
	require.NoError(t, err)
	require.Len(t, dir.Tables, 3)
	assert.Equal(t, T("post"), dir.Tables[0].Tag)
	assert.Equal(t, T("head"), dir.Tables[1].Tag)
	assert.Equal(t, T("post"), dir.Tables[2].Tag)
	assert.Equal(t, uint32(3), dir.Tables[2].Length)
}

func TestReadDirectoryTruncated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fonttool")
	defer teardown()
	//
	data := testCollection()
	_, err := ReadDirectory(data, uint32(len(data)+1))
	assert.ErrorIs(t, err, ErrTruncatedInput)
	_, err = ReadDirectory(data, uint32(len(data)-4))
	assert.ErrorIs(t, err, ErrTruncatedInput)
	// offset table complete, but table records cut off
	h, _ := ParseCollectionHeader(data)
	_, err = ReadDirectory(data[:h.Offsets[1]+12+20], h.Offsets[1])
	assert.ErrorIs(t, err, ErrTruncatedInput)
	var ferr *FontError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, "TableRecords", ferr.Section)
}
