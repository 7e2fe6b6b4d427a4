package formatxx

import (
	"fmt"
	"strconv"
)

// Format renders a brace-style template into w. It returns nil on success
// or a template fault wrapping one of the package sentinels. Output written
// before a fault is kept; nothing is written after it.
//
// Grammar: "{{" and "}}" are escapes producing one literal brace each; a
// lone '}' in literal text copies through. A placeholder is
// "{" [digits] [":" spec] "}". An indexless placeholder uses an internal
// counter starting at 0 that advances by one after each indexless use;
// explicit indexes never read or advance it. The spec text is decoded with
// [ParseSpec] and handed to the argument's rendering routine.
func Format(w Writer, format string, args ...Arg) error {
	next := 0 // auto-increment counter, local to this call
	start := 0
	i := 0
	for i < len(format) {
		c := format[i]
		if c == '}' {
			// Flush through this brace; a doubled '}' collapses to one.
			w.WriteString(format[start : i+1])
			i++
			if i < len(format) && format[i] == '}' {
				i++
			}
			start = i
			continue
		}
		if c != '{' {
			i++
			continue
		}
		w.WriteString(format[start:i])
		if i+1 < len(format) && format[i+1] == '{' {
			w.WriteString("{")
			i += 2
			start = i
			continue
		}
		i++
		idx := -1
		digitStart := i
		for i < len(format) && isDigit(format[i]) {
			i++
		}
		if i > digitStart {
			n, err := strconv.Atoi(format[digitStart:i])
			if err != nil {
				return fmt.Errorf("%w: placeholder index %q", ErrInvalidTemplate, format[digitStart:i])
			}
			idx = n
		}
		if i >= len(format) {
			return fmt.Errorf("%w: unterminated placeholder", ErrInvalidTemplate)
		}
		var spec Spec
		switch format[i] {
		case '}':
			i++
		case ':':
			i++
			specStart := i
			for i < len(format) && format[i] != '}' {
				i++
			}
			if i >= len(format) {
				return fmt.Errorf("%w: unterminated placeholder", ErrInvalidTemplate)
			}
			spec = ParseSpec(format[specStart:i])
			i++
		default:
			return fmt.Errorf("%w: placeholder index must be numeric at byte %d", ErrInvalidTemplate, i)
		}
		if idx < 0 {
			idx = next
			next++
		}
		if idx >= len(args) {
			return fmt.Errorf("%w: placeholder index %d with %d arguments", ErrIndexRange, idx, len(args))
		}
		args[idx].format(w, spec)
		start = i
	}
	w.WriteString(format[start:])
	return nil
}
