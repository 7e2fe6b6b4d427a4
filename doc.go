// Package formatxx is a type-safe text formatting engine with two template
// dialects: brace-style placeholders and printf-style conversion specifiers.
//
// Arguments are bound at the call site through typed constructors, each of
// which selects the rendering routine for its concrete type at compile time.
// There is no runtime type registry: a value without a constructor and
// without the [Formatter] method cannot be passed at all, so unsupported
// types fail the build instead of falling back to a default rendering.
// Binding an argument does not allocate.
//
//	var b formatxx.Buffer
//	err := formatxx.Format(&b, "{0} scored {1:+d}", formatxx.String("ada"), formatxx.Int(17))
//	// b.String() == "ada scored +17"
//
// # Sinks
//
// Output goes into a [Writer]. [Buffer] grows as needed; [FixedWriter] has a
// capacity fixed at construction and silently truncates writes that do not
// fit — truncation is its documented policy, never an error — keeping its
// content NUL-terminated for handoff to C-style consumers. Both satisfy
// io.Writer, and [WriteFormat]/[WritePrintf] render through a pooled buffer
// into any io.Writer.
//
// # Brace templates
//
// "{{" and "}}" escape to one literal brace each. A placeholder is
// "{" [index] [":" spec] "}". Indexless placeholders draw from a counter
// local to the call that starts at 0 and advances after each indexless use;
// explicit indexes never touch the counter, so "{} {1} {}" with arguments
// (A, B) renders "A B B".
//
// # Printf templates
//
// "%[flags][width][.precision][length]code" with "%%" as the escape.
// Arguments are consumed strictly in order; there is no positional override.
// The '+', ' ', and '#' flags map onto the spec's sign mode and type prefix;
// length qualifiers are consumed and ignored because the bound argument
// already knows its concrete type.
//
// # Specs
//
// Each substitution carries a [Spec]: a conversion code, a type-prefix flag,
// a sign mode, and the residual Extra text. [ParseSpec] decodes brace-style
// spec text and can be called directly to pre-parse reusable directives. The
// engines never interpret Extra; the built-in routines read a small layout
// language from it (['-'] ['0'] [width] ['.' precision], measured in display
// columns), and user-defined types may define their own.
//
// # Custom types
//
// Implement [Formatter] and bind with [Val]:
//
//	func (v Version) FormatValue(w formatxx.Writer, spec formatxx.Spec) {
//		_ = formatxx.Printf(w, "%d.%d", formatxx.Int(v.Major), formatxx.Int(v.Minor))
//	}
//
// # Errors
//
// Template faults are returned as errors wrapping one of the sentinels:
//
//   - [ErrInvalidTemplate] — malformed placeholder or conversion specifier
//   - [ErrIndexRange] — explicit or auto index at or beyond the argument count
//   - [ErrTooFewArgs] — printf template with more specifiers than arguments
//
// Output already written to the sink before a fault is kept; nothing is
// written after it. Sink truncation in [FixedWriter] is not a fault and is
// never reported.
package formatxx
