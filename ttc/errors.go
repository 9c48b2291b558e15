package ttc

import (
	"errors"
	"fmt"
)

// Errors reported by the readers and the font builder. Errors returned by
// functions of this package wrap one of these and may be tested for with
// errors.Is.
var (
	// ErrTruncatedInput is reported if a field extends past the end of the input.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrOutOfBounds is reported if a table record points outside of the source data.
	ErrOutOfBounds = errors.New("table out of bounds")
	// ErrBadSignature is reported in strict mode for collections not tagged 'ttcf'.
	ErrBadSignature = errors.New("not a font collection")
)

// FontError represents an error encountered while reading a collection or
// re-assembling one of its fonts.
type FontError struct {
	Table   Tag    // The table where the error occurred (0 for headers)
	Section string // Structure in question, e.g. "TTCHeader", "TableRecord"
	Issue   string // Human-readable description of the issue
	Offset  uint32 // Byte offset in the source data where the error occurred (0 if unknown)
	Err     error  // One of the sentinel errors of this package
}

// Error implements the error interface.
func (e *FontError) Error() string {
	where := e.Section
	if e.Table != 0 {
		where = e.Table.String() + "/" + e.Section
	}
	if e.Offset > 0 {
		return fmt.Sprintf("%v: %s at offset %d: %s", e.Err, where, e.Offset, e.Issue)
	}
	return fmt.Sprintf("%v: %s: %s", e.Err, where, e.Issue)
}

// Unwrap makes FontError usable with errors.Is and errors.As.
func (e *FontError) Unwrap() error {
	return e.Err
}

// errTruncated is produced by byte views when reading past the end of the data.
func errTruncated(offset, n, size int) error {
	return &FontError{
		Section: "Read",
		Issue:   fmt.Sprintf("need %d bytes, have %d", n, max(size-offset, 0)),
		Offset:  uint32(max(offset, 0)),
		Err:     ErrTruncatedInput,
	}
}

// withSection sets the section of a FontError, if err is one.
func withSection(err error, section string) error {
	var ferr *FontError
	if errors.As(err, &ferr) {
		ferr.Section = section
	}
	return err
}
