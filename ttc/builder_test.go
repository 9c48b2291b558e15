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

func buildAll(t *testing.T, data []byte) ([]*Directory, [][]byte) {
	h, err := ParseCollectionHeader(data)
	require.NoError(t, err)
	dirs := make([]*Directory, len(h.Offsets))
	fonts := make([][]byte, len(h.Offsets))
	for i, offset := range h.Offsets {
		dirs[i], err = ReadDirectory(data, offset)
		require.NoError(t, err)
		fonts[i], err = BuildFont(data, dirs[i])
		require.NoError(t, err)
	}
	return dirs, fonts
}

func TestBuildFontTableFidelity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fonttool")
	defer teardown()
	//
	data := testCollection()
	dirs, fonts := buildAll(t, data)
	for i, font := range fonts {
		out, err := ReadDirectory(font, 0)
		require.NoError(t, err)
		assert.Equal(t, dirs[i].Header, out.Header, "offset table must be copied through")
		require.Len(t, out.Tables, len(dirs[i].Tables))
		for j, rec := range out.Tables {
			src := dirs[i].Tables[j]
			assert.Equal(t, src.Tag, rec.Tag)
			assert.Equal(t, src.Checksum, rec.Checksum)
			assert.Equal(t, src.Length, rec.Length)
			assert.Equal(t, data[src.Offset:src.Offset+src.Length], font[rec.Offset:rec.Offset+rec.Length],
				"font %d, table %s", i, rec.Tag)
		}
	}
}

func TestBuildFontAlignment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fonttool")
	defer teardown()
	//
	_, fonts := buildAll(t, testCollection())
	for i, font := range fonts {
		dir, err := ReadDirectory(font, 0)
		require.NoError(t, err)
		next := uint32(offsetSubtableSize + tableRecordSize*len(dir.Tables))
		for _, rec := range dir.Tables {
			assert.Zero(t, rec.Offset%4, "font %d: table %s not aligned", i, rec.Tag)
			assert.Equal(t, next, rec.Offset, "font %d: table %s does not follow its predecessor", i, rec.Tag)
			next = rec.Offset + pad4(rec.Length)
			// padding bytes are zero
			for _, b := range font[rec.Offset+rec.Length : next] {
				assert.Zero(t, b)
			}
		}
		assert.Equal(t, int(next), len(font))
		size, err := FontSize(dir)
		require.NoError(t, err)
		assert.Equal(t, uint64(len(font)), size)
	}
}

func TestBuildFontSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fonttool")
	defer teardown()
	//
	font := fonttest.Font(fonttest.Face{Tables: []fonttest.Table{
		{Tag: "aaaa", Data: []byte{1}},
		{Tag: "bbbb", Data: []byte{1, 2, 3, 4}},
		{Tag: "cccc", Data: []byte{1, 2, 3, 4, 5, 6}},
		{Tag: "dddd", Data: nil},
	}})
	dir, err := ReadDirectory(font, 0)
	require.NoError(t, err)
	out, err := BuildFont(font, dir)
	require.NoError(t, err)
	assert.Equal(t, 12+4*16+4+4+8+0, len(out))
	// a standalone font is re-built into itself
	assert.Equal(t, font, out)
}

func TestBuildFontIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fonttool")
	defer teardown()
	//
	data := testCollection()
	_, first := buildAll(t, data)
	_, second := buildAll(t, data)
	for i := range first {
		assert.True(t, bytes.Equal(first[i], second[i]), "font %d differs between runs", i)
	}
}

func TestBuildFontOutOfBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fonttool")
	defer teardown()
	//
	data := testCollection()
	h, err := ParseCollectionHeader(data)
	require.NoError(t, err)
	dir, err := ReadDirectory(data, h.Offsets[0])
	require.NoError(t, err)
	dir.Tables[1].Length = uint32(len(data)) // 'head' now extends past the end
	font, err := BuildFont(data, dir)
	assert.Nil(t, font)
	require.ErrorIs(t, err, ErrOutOfBounds)
	var ferr *FontError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, T("head"), ferr.Table)
	//
	dir.Tables[1].Length = 8
	dir.Tables[1].Offset = 0xfffffffc // overflows uint32
	_, err = BuildFont(data, dir)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestBuildFontKeepsDuplicateTags(t *testing.T) {
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
	out, err := BuildFont(font, dir)
	require.NoError(t, err)
	outdir, err := ReadDirectory(out, 0)
	require.NoError(t, err)
	require.Len(t, outdir.Tables, 3)
	last := outdir.Tables[2]
	assert.Equal(t, []byte{4, 5, 6}, out[last.Offset:last.Offset+last.Length])
}

func TestBuildFontTooManyTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fonttool")
	defer teardown()
	//
	dir := &Directory{
		Header: OffsetSubtable{SfntVersion: uint32(TrueTypeTag)},
		Tables: make([]TableRecord, 1<<16),
	}
	font, err := BuildFont(make([]byte, 16), dir)
	assert.Nil(t, font)
	require.ErrorIs(t, err, ErrOutOfBounds)
	var ferr *FontError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, "TableRecords", ferr.Section)
}
