/*
Package fontload reads font files and writes extracted fonts.

All errors returned wrap ErrFilesystem.
*/
package fontload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrFilesystem is wrapped by every error of this package.
var ErrFilesystem = errors.New("filesystem error")

// FontFile is a font or font collection loaded into memory.
type FontFile struct {
	Filepath string
	Binary   []byte // raw data, not to be modified
}

// LoadFontFile loads a font file (TTF, OTF, TTC or OTC) into memory.
func LoadFontFile(fontfile string) (*FontFile, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFilesystem, err)
	}
	return &FontFile{Filepath: fontfile, Binary: bytez}, nil
}

// MakeOutputDir creates directory dir, including missing parents.
// It is not an error if dir already exists.
func MakeOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrFilesystem, err)
	}
	return nil
}

// WriteFontFile writes font as file name into dir and returns the path of
// the file. An existing file is overwritten.
func WriteFontFile(dir, name string, font []byte) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, font, 0o644); err != nil {
		return "", fmt.Errorf("%w: %w", ErrFilesystem, err)
	}
	return path, nil
}
