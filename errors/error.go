package errors

import (
	"errors"
	"fmt"
	"runtime"
)

// Error is an error with the stack of the goroutine that created it.
// The message and the trace are kept apart so the message can be shown
// to a user while the trace stays available for debugging (%+v).
type Error struct {
	Err   error
	Stack []byte
}

// Errorf formats like fmt.Errorf (including %w) and records the stack.
func Errorf(format string, args ...interface{}) error {
	buf := make([]byte, 50000)
	n := runtime.Stack(buf, false)
	trace := make([]byte, n)
	copy(trace, buf)
	return &Error{
		Err:   fmt.Errorf(format, args...),
		Stack: trace,
	}
}

// New makes a plain sentinel error. Sentinels carry no stack; wrap them
// with Errorf("%w ...") at the point of failure instead.
func New(msg string) error {
	return errors.New(msg)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) String() string {
	return e.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%s\n%s", e.Err, string(e.Stack))
			return
		}
		fmt.Fprint(s, e.Error())
	case 's':
		fmt.Fprint(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}
