package energy

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingData is returned when a required month file or the data
	// directory does not exist.
	ErrMissingData = errors.New("missing data")

	// ErrParse matches every *ParseError via errors.Is.
	ErrParse = errors.New("parse error")

	ErrInvalidRange = errors.New("invalid date range")
)

// ParseError reports a malformed row or file name. A single ParseError aborts
// the whole file.
type ParseError struct {
	Path string
	Line int // 1-based line in the file, 0 when the error is not tied to a row
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }
