package formatxx

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// layout is the decoded form of the micro-language the built-in routines
// read from Spec.Extra: ['-'] ['0'] [width] ['.' precision]. The engines
// never touch it; user-defined types receive Extra verbatim and may parse
// something else entirely.
type layout struct {
	left    bool
	zero    bool
	width   int
	prec    int
	hasPrec bool
}

// parseLayout skips sign and prefix flag characters so a printf flag run
// like "-+05" decodes the same as "-05". Unrecognized trailing text is
// ignored.
func parseLayout(extra string) layout {
	var l layout
	i := 0
flags:
	for ; i < len(extra); i++ {
		switch extra[i] {
		case '-':
			l.left = true
		case '0':
			l.zero = true
		case '+', ' ', '#':
		default:
			break flags
		}
	}
	for ; i < len(extra) && isDigit(extra[i]); i++ {
		l.width = l.width*10 + int(extra[i]-'0')
	}
	if i < len(extra) && extra[i] == '.' {
		l.hasPrec = true
		for i++; i < len(extra) && isDigit(extra[i]); i++ {
			l.prec = l.prec*10 + int(extra[i]-'0')
		}
	}
	return l
}

// pad writes s honoring the minimum display width. Widths are measured with
// runewidth, so full-width characters count as two columns.
func pad(w Writer, s string, l layout) {
	gap := l.width - runewidth.StringWidth(s)
	if gap <= 0 {
		w.WriteString(s)
		return
	}
	if l.left {
		w.WriteString(s)
		w.WriteString(strings.Repeat(" ", gap))
		return
	}
	w.WriteString(strings.Repeat(" ", gap))
	w.WriteString(s)
}

// writeNumber assembles sign glyph, radix prefix, and digits. Zero padding
// goes between the prefix and the digits so the sign stays leftmost;
// precision, when set, is the minimum digit count.
func writeNumber(w Writer, sign, prefix string, digits []byte, l layout) {
	zeros := 0
	if l.hasPrec && l.prec > len(digits) {
		zeros = l.prec - len(digits)
	}
	gap := l.width - (len(sign) + len(prefix) + len(digits) + zeros)
	if gap > 0 && !l.left && !l.zero {
		w.WriteString(strings.Repeat(" ", gap))
	}
	w.WriteString(sign)
	w.WriteString(prefix)
	if gap > 0 && l.zero && !l.left {
		w.WriteString(strings.Repeat("0", gap))
	}
	if zeros > 0 {
		w.WriteString(strings.Repeat("0", zeros))
	}
	w.Write(digits)
	if gap > 0 && l.left {
		w.WriteString(strings.Repeat(" ", gap))
	}
}

func baseFor(code byte) (base int, upper bool, prefix string) {
	switch code {
	case 'x':
		return 16, false, "0x"
	case 'X':
		return 16, true, "0X"
	case 'o':
		return 8, false, "0"
	case 'b':
		return 2, false, "0b"
	default:
		return 10, false, ""
	}
}

func signGlyph(neg bool, mode SignMode) string {
	switch {
	case neg:
		return "-"
	case mode == SignAlways:
		return "+"
	case mode == SignSpace:
		return " "
	}
	return ""
}

func upperHex(b []byte) {
	for i, c := range b {
		if c >= 'a' && c <= 'f' {
			b[i] = c - ('a' - 'A')
		}
	}
}

func renderInt(w Writer, a Arg, spec Spec) {
	v := int64(a.num)
	if spec.Code == 'c' {
		writeRuneValue(w, rune(v), spec)
		return
	}
	u := a.num
	neg := v < 0
	if neg {
		u = -u
	}
	writeUint(w, u, neg, spec)
}

func renderUint(w Writer, a Arg, spec Spec) {
	if spec.Code == 'c' {
		writeRuneValue(w, rune(a.num), spec)
		return
	}
	writeUint(w, a.num, false, spec)
}

func writeUint(w Writer, u uint64, neg bool, spec Spec) {
	base, upper, prefix := baseFor(spec.Code)
	var scratch [72]byte
	digits := strconv.AppendUint(scratch[:0], u, base)
	if upper {
		upperHex(digits)
	}
	if !spec.Prefix {
		prefix = ""
	}
	writeNumber(w, signGlyph(neg, spec.Sign), prefix, digits, parseLayout(spec.Extra))
}

func renderFloat64(w Writer, a Arg, spec Spec) {
	writeFloat(w, math.Float64frombits(a.num), 64, spec)
}

func renderFloat32(w Writer, a Arg, spec Spec) {
	writeFloat(w, float64(math.Float32frombits(uint32(a.num))), 32, spec)
}

func writeFloat(w Writer, f float64, bits int, spec Spec) {
	verb := byte('g')
	switch spec.Code {
	case 'e', 'E', 'g', 'G':
		verb = spec.Code
	case 'f', 'F':
		verb = 'f'
	}
	l := parseLayout(spec.Extra)
	if math.IsNaN(f) {
		pad(w, "NaN", l)
		return
	}
	neg := math.Signbit(f)
	if math.IsInf(f, 0) {
		l.zero = false
		l.hasPrec = false
		writeNumber(w, signGlyph(neg, spec.Sign), "", []byte("Inf"), l)
		return
	}
	prec := -1
	if l.hasPrec {
		prec = l.prec
	} else if verb == 'e' || verb == 'E' || verb == 'f' {
		prec = 6
	}
	var scratch [48]byte
	digits := strconv.AppendFloat(scratch[:0], math.Abs(f), verb, prec, bits)
	l.hasPrec = false // precision already applied by strconv
	writeNumber(w, signGlyph(neg, spec.Sign), "", digits, l)
}

func renderBool(w Writer, a Arg, spec Spec) {
	var s string
	switch {
	case spec.Code == 'd' && a.num != 0:
		s = "1"
	case spec.Code == 'd':
		s = "0"
	case a.num != 0:
		s = "true"
	default:
		s = "false"
	}
	pad(w, s, parseLayout(spec.Extra))
}

func renderRune(w Writer, a Arg, spec Spec) {
	r := rune(int32(uint32(a.num)))
	switch spec.Code {
	case 'd', 'x', 'X', 'o', 'b':
		neg := r < 0
		u := uint64(int64(r))
		if neg {
			u = -u
		}
		writeUint(w, u, neg, spec)
		return
	}
	writeRuneValue(w, r, spec)
}

func writeRuneValue(w Writer, r rune, spec Spec) {
	var scratch [utf8.UTFMax]byte
	n := utf8.EncodeRune(scratch[:], r)
	l := parseLayout(spec.Extra)
	if l.width == 0 {
		w.Write(scratch[:n])
		return
	}
	pad(w, string(scratch[:n]), l)
}

func renderString(w Writer, a Arg, spec Spec) {
	writeText(w, a.str, spec)
}

func renderStringer(w Writer, a Arg, spec Spec) {
	s, ok := a.value.(fmt.Stringer)
	if !ok {
		return
	}
	writeText(w, s.String(), spec)
}

func renderBytes(w Writer, a Arg, spec Spec) {
	if spec.Code == 'x' || spec.Code == 'X' {
		hexDump(w, a.str, spec.Code == 'X', spec.Prefix)
		return
	}
	writeText(w, a.str, spec)
}

// writeText is the common path for string-like arguments: precision
// truncates to a maximum display width, then the value is padded.
func writeText(w Writer, s string, spec Spec) {
	l := parseLayout(spec.Extra)
	if l.hasPrec {
		s = runewidth.Truncate(s, l.prec, "")
	}
	if l.width == 0 {
		w.WriteString(s)
		return
	}
	pad(w, s, l)
}

func hexDump(w Writer, s string, upper bool, prefix bool) {
	digits := "0123456789abcdef"
	if upper {
		digits = "0123456789ABCDEF"
	}
	if prefix {
		if upper {
			w.WriteString("0X")
		} else {
			w.WriteString("0x")
		}
	}
	var pair [2]byte
	for i := 0; i < len(s); i++ {
		pair[0] = digits[s[i]>>4]
		pair[1] = digits[s[i]&0xf]
		w.Write(pair[:])
	}
}

func renderPointer(w Writer, a Arg, spec Spec) {
	var scratch [16]byte
	digits := strconv.AppendUint(scratch[:0], a.num, 16)
	if spec.Code == 'X' {
		upperHex(digits)
	}
	writeNumber(w, "", "0x", digits, parseLayout(spec.Extra))
}

func renderFormatter(w Writer, a Arg, spec Spec) {
	f, ok := a.value.(Formatter)
	if !ok {
		return
	}
	f.FormatValue(w, spec)
}
