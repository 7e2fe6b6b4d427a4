package formatxx

import "io"

// Writer is the append-only sink formatted output is written into. Both
// provided implementations also satisfy io.Writer and io.StringWriter, so
// they compose with the standard library; their writes never fail, and the
// returned error is always nil.
type Writer interface {
	io.Writer
	io.StringWriter

	// View returns the accumulated contents without copying.
	// The returned slice is valid only until the next write.
	View() []byte
}

// FixedWriter is a bounded sink whose capacity is fixed at construction.
// Writes that do not fit within the remaining capacity are silently
// truncated; truncation is the documented policy of this sink, not an error.
// The stored content is always NUL-terminated inside the buffer, so at most
// Cap()-1 data bytes are retained.
type FixedWriter struct {
	buf []byte
	n   int
}

// NewFixedWriter returns a FixedWriter with the given total capacity.
// Capacities below 1 are raised to 1, leaving room for the terminator alone.
func NewFixedWriter(capacity int) *FixedWriter {
	if capacity < 1 {
		capacity = 1
	}
	return &FixedWriter{buf: make([]byte, capacity)}
}

// Write appends p, truncating silently if it does not fit. It reports the
// full input length so short writes never surface as errors.
func (w *FixedWriter) Write(p []byte) (int, error) {
	n := len(p)
	if remaining := len(w.buf) - w.n - 1; remaining < len(p) {
		p = p[:remaining]
	}
	copy(w.buf[w.n:], p)
	w.n += len(p)
	w.buf[w.n] = 0
	return n, nil
}

// WriteString appends s, truncating silently if it does not fit.
func (w *FixedWriter) WriteString(s string) (int, error) {
	n := len(s)
	if remaining := len(w.buf) - w.n - 1; remaining < len(s) {
		s = s[:remaining]
	}
	copy(w.buf[w.n:], s)
	w.n += len(s)
	w.buf[w.n] = 0
	return n, nil
}

// View returns the stored bytes without copying, excluding the terminator.
func (w *FixedWriter) View() []byte { return w.buf[:w.n] }

// String returns a copy of the stored bytes as a string.
func (w *FixedWriter) String() string { return string(w.buf[:w.n]) }

// Clear resets the writer to empty. The capacity is unchanged.
func (w *FixedWriter) Clear() {
	w.n = 0
	w.buf[0] = 0
}

// Len reports the number of stored data bytes.
func (w *FixedWriter) Len() int { return w.n }

// Cap reports the total capacity, including the terminator byte.
func (w *FixedWriter) Cap() int { return len(w.buf) }

// Buffer is a growable sink. The zero value is ready to use.
type Buffer struct {
	buf []byte
}

// Write appends p to the buffer, growing it as needed.
func (b *Buffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// WriteString appends s to the buffer, growing it as needed.
func (b *Buffer) WriteString(s string) (int, error) {
	b.buf = append(b.buf, s...)
	return len(s), nil
}

// View returns the accumulated bytes without copying.
// The returned slice is valid only until the next write.
func (b *Buffer) View() []byte { return b.buf }

// String returns a copy of the accumulated bytes as a string.
func (b *Buffer) String() string { return string(b.buf) }

// Reset truncates the buffer to empty, retaining its storage.
func (b *Buffer) Reset() { b.buf = b.buf[:0] }

// Len reports the number of accumulated bytes.
func (b *Buffer) Len() int { return len(b.buf) }
