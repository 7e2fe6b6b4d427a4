package formatxx

import (
	"fmt"
	"math"
	"unsafe"
)

// Formatter is the integration contract for user-defined argument types: any
// type carrying this method can be passed through [Val]. FormatValue receives
// the sink and the decoded spec, including the verbatim Extra text, and is
// free to interpret Extra however it likes. There is no runtime registry and
// no fallback — a type without a usable constructor in this package and
// without FormatValue cannot be bound at all.
type Formatter interface {
	FormatValue(w Writer, spec Spec)
}

// renderFunc bridges an Arg's packed payload to the rendering routine for
// its concrete type. One renderFunc exists per distinct argument kind; it is
// selected by the constructor at the call site, never looked up at runtime.
type renderFunc func(w Writer, arg Arg, spec Spec)

// Arg is one bound call argument: a packed payload plus the rendering
// routine selected for its concrete type. Args are plain values; binding one
// does not allocate. Construct them with the typed constructors — the zero
// Arg renders nothing.
type Arg struct {
	render renderFunc
	num    uint64
	str    string
	value  any
}

func (a Arg) format(w Writer, spec Spec) {
	if a.render != nil {
		a.render(w, a, spec)
	}
}

// signedInt and unsignedInt match named types too, so enumerations declared
// over an integer type format through their underlying representation.
type signedInt interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsignedInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Int binds a signed integer value.
func Int[T signedInt](v T) Arg {
	return Arg{render: renderInt, num: uint64(int64(v))}
}

// Uint binds an unsigned integer value.
func Uint[T unsignedInt](v T) Arg {
	return Arg{render: renderUint, num: uint64(v)}
}

// Float binds a floating-point value. 32- and 64-bit values use distinct
// rendering routines so output keeps the source precision.
func Float[T ~float32 | ~float64](v T) Arg {
	if unsafe.Sizeof(v) == 4 {
		return Arg{render: renderFloat32, num: uint64(math.Float32bits(float32(v)))}
	}
	return Arg{render: renderFloat64, num: math.Float64bits(float64(v))}
}

// Bool binds a boolean value.
func Bool[T ~bool](v T) Arg {
	var n uint64
	if v {
		n = 1
	}
	return Arg{render: renderBool, num: n}
}

// Rune binds a single character.
func Rune(r rune) Arg {
	return Arg{render: renderRune, num: uint64(uint32(r))}
}

// String binds a string value.
func String[T ~string](v T) Arg {
	return Arg{render: renderString, str: string(v)}
}

// Bytes binds a byte slice without copying it. The slice must not be
// mutated for the duration of the formatting call.
func Bytes(b []byte) Arg {
	if len(b) == 0 {
		return Arg{render: renderBytes}
	}
	return Arg{render: renderBytes, str: unsafe.String(unsafe.SliceData(b), len(b))}
}

// Ptr binds a pointer, which renders as its address value. Character data
// should be bound with [String] or [Bytes] instead.
func Ptr[T any](p *T) Arg {
	return Arg{render: renderPointer, num: uint64(uintptr(unsafe.Pointer(p)))}
}

// Stringer binds any fmt.Stringer; its String result formats like a string
// argument, including width and precision handling.
func Stringer(v fmt.Stringer) Arg {
	return Arg{render: renderStringer, value: v}
}

// Val binds a user-defined type through the [Formatter] contract.
func Val(v Formatter) Arg {
	return Arg{render: renderFormatter, value: v}
}
