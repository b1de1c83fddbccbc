package objmesh

import (
	"errors"
	"fmt"
)

// ErrMalformedLine indicates a directive with missing or
// unparsable arguments.
var ErrMalformedLine = errors.New("objmesh: malformed line")

// A LineError reports the line that failed to parse.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (l *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", l.Line, l.Text, l.Err)
}

func (l *LineError) Unwrap() error {
	return l.Err
}
