package ubershader

import (
	"errors"
	"fmt"
)

// Sentinel errors for the ubershader package.
var (
	// ErrNoMatch is returned when no spec in the archive satisfies the
	// given requirements. It is the normal "none" outcome, not a fault.
	ErrNoMatch = errors.New("ubershader: no variant satisfies the requirements")
)

// FormatError describes a structurally invalid archive: truncated data,
// a bad magic number or version, or an offset pointing outside the buffer.
type FormatError struct {
	// Offset is the byte position of the offending field, when known.
	Offset uint64

	// Msg describes what was wrong at that position.
	Msg string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("ubershader: invalid archive at byte %d: %s", e.Offset, e.Msg)
}

// SyntaxError describes an invalid spec-language line. Its Error form is
// NAME.spec(LINE,COL): MESSAGE so that tool output points straight at the
// offending source position.
type SyntaxError struct {
	// Variant is the name of the variant whose spec was being parsed.
	Variant string

	// Line is the 1-based physical line number, counting blank and
	// comment lines.
	Line int

	// Column is the 1-based byte position within the line.
	Column int

	// Message describes what the parser expected.
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s.spec(%d,%d): %s", e.Variant, e.Line, e.Column, e.Message)
}
