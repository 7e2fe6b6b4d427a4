package formatxx

import (
	"errors"
	"io"
	"sync"
)

// Sentinel errors for programmatic error handling. Every template fault
// returned by the engines wraps exactly one of these; test with errors.Is.
var (
	ErrInvalidTemplate = errors.New("invalid template")
	ErrIndexRange      = errors.New("argument index out of range")
	ErrTooFewArgs      = errors.New("too few arguments")
)

// FormatString renders a brace-style template and returns the result.
func FormatString(format string, args ...Arg) (string, error) {
	var b Buffer
	if err := Format(&b, format, args...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// PrintfString renders a printf-style template and returns the result.
func PrintfString(format string, args ...Arg) (string, error) {
	var b Buffer
	if err := Printf(&b, format, args...); err != nil {
		return "", err
	}
	return b.String(), nil
}

var bufPool = sync.Pool{New: func() any { return new(Buffer) }}

// WriteFormat renders a brace-style template through a pooled buffer and
// writes the result to w. On a template fault nothing is written to w.
func WriteFormat(w io.Writer, format string, args ...Arg) error {
	return writeThrough(w, Format, format, args)
}

// WritePrintf renders a printf-style template through a pooled buffer and
// writes the result to w. On a template fault nothing is written to w.
func WritePrintf(w io.Writer, format string, args ...Arg) error {
	return writeThrough(w, Printf, format, args)
}

func writeThrough(w io.Writer, engine func(Writer, string, ...Arg) error, format string, args []Arg) error {
	b := bufPool.Get().(*Buffer)
	defer func() {
		b.Reset()
		bufPool.Put(b)
	}()
	if err := engine(b, format, args...); err != nil {
		return err
	}
	_, err := w.Write(b.View())
	return err
}
