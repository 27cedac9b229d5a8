package codec

import (
	"errors"
	"fmt"
	"io/fs"
)

// ResourceError reports an input that could not be opened or read.
type ResourceError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ResourceError) Error() string {
	if errors.Is(e.Err, fs.ErrNotExist) {
		return fmt.Sprintf("File not found: %s", e.Path)
	}
	return fmt.Sprintf("Cannot read %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// FormatError reports input whose structure cannot be read as an automaton.
// Line is 1-based; Text is the offending line, if any.
type FormatError struct {
	Path   string
	Line   int
	Text   string
	Reason string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	loc := e.Path
	if e.Line > 0 {
		if loc != "" {
			loc = fmt.Sprintf("%s:%d", loc, e.Line)
		} else {
			loc = fmt.Sprintf("line %d", e.Line)
		}
	}
	msg := e.Reason
	if e.Text != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Text)
	}
	if loc == "" {
		return msg
	}
	return loc + ": " + msg
}
