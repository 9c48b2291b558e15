package split

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/go-text/typesetting/font/opentype"
	"github.com/npillmayer/fonttool/otquery"
	"golang.org/x/image/font/sfnt"
)

var nameTag = opentype.MustNewTag("name")

// FamilyNames returns the family names of all fonts in data, which may be a
// single font or a font collection. Both legacy family names (name ID 1) and
// typographic family names (name ID 16) are collected. The result is sorted
// and free of duplicates.
//
// Fonts without a readable 'name' table are skipped. An error is returned only
// if data cannot be read as a font or collection at all.
func FamilyNames(data []byte) ([]string, error) {
	loaders, err := opentype.NewLoaders(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot read font: %w", err)
	}
	var names []string
	for i, ld := range loaders {
		table, err := ld.RawTable(nameTag)
		if err != nil {
			tracer().Infof("font %d: no name table: %v", i, err)
			continue
		}
		for id, value := range otquery.NameRecords(table) {
			if id == sfnt.NameIDFamily || id == sfnt.NameIDTypographicFamily {
				names = append(names, value)
			}
		}
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}
