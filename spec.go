package formatxx

// SignMode controls when a sign glyph is emitted for numeric values.
type SignMode int

const (
	SignDefault SignMode = iota // sign glyph only for negative values
	SignAlways                  // sign glyph for every value
	SignSpace                   // space for non-negative values, sign glyph for negative
)

// Spec is a decoded per-argument formatting directive. It is populated by
// [ParseSpec] for brace-style placeholders and directly by the printf engine,
// and handed to the rendering routine selected for the argument's type.
type Spec struct {
	// Code is the conversion code character, or 0 if absent. Its meaning is
	// type-specific: 'x' selects hexadecimal for integers and has no effect
	// on bools, for example.
	Code byte

	// Prefix requests a leading radix or type marker, such as 0x.
	Prefix bool

	// Sign selects the sign-display mode for numeric values.
	Sign SignMode

	// Extra is the residual directive text, preserved verbatim. The engines
	// never interpret it; built-in routines read a layout micro-language
	// from it (see package docs) and user-defined types are free to layer
	// their own.
	Extra string
}

// ParseSpec decodes a directive string into a Spec. The grammar is a leading
// run of flags — '+' (sign always), ' ' (sign space; '+' wins when both
// appear), '#' (type prefix) — followed by an optional single ASCII letter
// conversion code. Whatever remains is stored in Extra unmodified.
//
// ParseSpec never fails: unrecognized text simply ends up in Extra.
func ParseSpec(s string) Spec {
	var spec Spec
	i := 0
flags:
	for ; i < len(s); i++ {
		switch s[i] {
		case '+':
			spec.Sign = SignAlways
		case ' ':
			if spec.Sign == SignDefault {
				spec.Sign = SignSpace
			}
		case '#':
			spec.Prefix = true
		default:
			break flags
		}
	}
	if i < len(s) && isLetter(s[i]) {
		spec.Code = s[i]
		i++
	}
	spec.Extra = s[i:]
	return spec
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
