package split

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/fonttool/internal/fontload"
	"github.com/npillmayer/fonttool/otquery"
	"github.com/npillmayer/fonttool/ttc"
	"github.com/pterm/pterm"
)

// FontExt is the file extension of extracted fonts.
const FontExt = ".ttf"

// Splitter extracts the fonts of a collection into OutDir.
// The zero value is ready to use and writes to the current directory.
type Splitter struct {
	OutDir  string              // output directory, will be created if missing; "" is "."
	Decoder otquery.NameDecoder // decoder for font names, defaults to otquery.RawNames
	Report  func(int, string)   // called for each font written; defaults to printing a line
	Unique  bool                // append the font index to names already used in this run
	Options []ttc.ParseOption   // options for reading the collection header
}

// Split extracts every font of collection data into s.OutDir, in collection
// order. Each font is written as "<full name>.ttf", with reserved characters
// replaced (see SanitizeFilename), or "subfont_<i>.ttf" if the font has no
// full name. Without s.Unique, fonts with identical names overwrite each other.
//
// Split returns the paths of the files written. On error, the paths of the
// files written before the failing font are returned along with the error.
func (s *Splitter) Split(data []byte) ([]string, error) {
	if s.OutDir == "" {
		s.OutDir = "."
	}
	if err := fontload.MakeOutputDir(s.OutDir); err != nil {
		return nil, err
	}
	header, err := ttc.ParseCollectionHeader(data, s.Options...)
	if err != nil {
		return nil, err
	}
	tracer().Infof("collection has %d fonts", header.FontCount)
	paths := make([]string, 0, len(header.Offsets))
	used := make(map[string]bool)
	for i, offset := range header.Offsets {
		font, err := ExtractFont(data, offset)
		if err != nil {
			return paths, fmt.Errorf("sub-font %d: %w", i, err)
		}
		name := SanitizeFilename(otquery.ResolveName(font, i, s.Decoder))
		if s.Unique && used[name] {
			name += "_" + strconv.Itoa(i)
		}
		used[name] = true
		path, err := fontload.WriteFontFile(s.OutDir, name+FontExt, font)
		if err != nil {
			return paths, fmt.Errorf("sub-font %d: %w", i, err)
		}
		paths = append(paths, path)
		s.report(i, path)
	}
	return paths, nil
}

func (s *Splitter) report(i int, path string) {
	if s.Report != nil {
		s.Report(i, path)
		return
	}
	pterm.Info.Println(fmt.Sprintf("Extracted font %d -> %q", i, path))
}

// ExtractFont re-assembles the font with its table directory at offset
// within collection data as a standalone font.
func ExtractFont(data []byte, offset uint32) ([]byte, error) {
	dir, err := ttc.ReadDirectory(data, offset)
	if err != nil {
		return nil, err
	}
	return ttc.BuildFont(data, dir)
}

// SplitFile extracts the fonts of collection file input into directory outDir.
func SplitFile(input, outDir string) ([]string, error) {
	f, err := fontload.LoadFontFile(input)
	if err != nil {
		return nil, err
	}
	s := Splitter{OutDir: outDir}
	return s.Split(f.Binary)
}
