package outline

import (
	"errors"
	"fmt"
)

// ErrMalformedMetadata is returned when a header line has no key/value separator.
var ErrMalformedMetadata = errors.New("malformed metadata line")

// ParseError reports the header line that could not be parsed.
type ParseError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
