package formatxx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLayout(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		extra string
		want  layout
	}{
		{"empty", "", layout{}},
		{"width", "12", layout{width: 12}},
		{"left", "-5", layout{left: true, width: 5}},
		{"zero", "05", layout{zero: true, width: 5}},
		{"precision only", ".3", layout{hasPrec: true, prec: 3}},
		{"width and precision", "8.3", layout{width: 8, hasPrec: true, prec: 3}},
		{"flag run with sign noise", "-+07.2", layout{left: true, zero: true, width: 7, hasPrec: true, prec: 2}},
		{"trailing garbage ignored", "5abc", layout{width: 5}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, parseLayout(tt.extra))
		})
	}
}

func TestSignGlyph(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "-", signGlyph(true, SignDefault))
	assert.Equal(t, "-", signGlyph(true, SignAlways))
	assert.Equal(t, "-", signGlyph(true, SignSpace))
	assert.Equal(t, "", signGlyph(false, SignDefault))
	assert.Equal(t, "+", signGlyph(false, SignAlways))
	assert.Equal(t, " ", signGlyph(false, SignSpace))
}

func TestBaseFor(t *testing.T) {
	t.Parallel()
	base, upper, prefix := baseFor('X')
	assert.Equal(t, 16, base)
	assert.True(t, upper)
	assert.Equal(t, "0X", prefix)

	base, upper, prefix = baseFor(0)
	assert.Equal(t, 10, base)
	assert.False(t, upper)
	assert.Empty(t, prefix)
}

func TestWriteNumberZeroPadKeepsSignLeftmost(t *testing.T) {
	t.Parallel()
	var b Buffer
	writeNumber(&b, "-", "0x", []byte("ff"), layout{zero: true, width: 8})
	assert.Equal(t, "-0x000ff", b.String())
}

func TestWriteNumberLeftAlign(t *testing.T) {
	t.Parallel()
	var b Buffer
	writeNumber(&b, "", "", []byte("7"), layout{left: true, width: 3})
	assert.Equal(t, "7  ", b.String())
}

func TestWriteIntMinValue(t *testing.T) {
	t.Parallel()
	var b Buffer
	renderInt(&b, Int(int64(math.MinInt64)), Spec{})
	assert.Equal(t, "-9223372036854775808", b.String())
}

func TestWriteFloatSpecials(t *testing.T) {
	t.Parallel()
	var b Buffer
	writeFloat(&b, math.Inf(1), 64, Spec{Sign: SignAlways})
	assert.Equal(t, "+Inf", b.String())

	b.Reset()
	writeFloat(&b, math.Inf(-1), 64, Spec{})
	assert.Equal(t, "-Inf", b.String())

	b.Reset()
	writeFloat(&b, math.NaN(), 64, Spec{Sign: SignAlways})
	assert.Equal(t, "NaN", b.String())
}

func TestUpperHex(t *testing.T) {
	t.Parallel()
	b := []byte("0f9a")
	upperHex(b)
	assert.Equal(t, "0F9A", string(b))
}

func TestFixedWriterKeepsTerminator(t *testing.T) {
	t.Parallel()
	w := NewFixedWriter(4)
	_, _ = w.WriteString("hello")
	assert.Len(t, w.buf, 4)
	assert.Equal(t, byte(0), w.buf[3])
	assert.Equal(t, "hel", string(w.buf[:w.n]))

	// Byte-at-a-time writes respect the same bound.
	w.Clear()
	for i := 0; i < 10; i++ {
		_, _ = w.Write([]byte{'x'})
	}
	assert.Equal(t, 3, w.n)
	assert.Equal(t, byte(0), w.buf[3])
}
