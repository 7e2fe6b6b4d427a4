package formatxx

import "fmt"

// Printf renders a printf-style template into w. It returns nil on success
// or a template fault wrapping one of the package sentinels. Output written
// before a fault is kept; nothing is written after it.
//
// A conversion specifier is "%[flags][width][.precision][length]code" and
// "%%" emits a literal '%'. The '+', ' ', and '#' flags map onto the spec's
// sign mode and type prefix; '-', '0', width, and precision are carried
// verbatim in the spec's Extra text for the rendering routine. Length
// qualifiers (h, hh, l, ll, L, z, j, t) are consumed and ignored — the
// rendering routine already knows the argument's concrete type. Arguments
// are consumed strictly in order; there is no positional override.
func Printf(w Writer, format string, args ...Arg) error {
	used := 0
	start := 0
	i := 0
	for i < len(format) {
		if format[i] != '%' {
			i++
			continue
		}
		w.WriteString(format[start:i])
		i++
		if i >= len(format) {
			return fmt.Errorf("%w: template ends inside a conversion specifier", ErrInvalidTemplate)
		}
		if format[i] == '%' {
			w.WriteString("%")
			i++
			start = i
			continue
		}
		var spec Spec
		extraStart := -1
	flags:
		for i < len(format) {
			switch format[i] {
			case '+':
				spec.Sign = SignAlways
			case ' ':
				if spec.Sign == SignDefault {
					spec.Sign = SignSpace
				}
			case '#':
				spec.Prefix = true
			case '-', '0':
				if extraStart < 0 {
					extraStart = i
				}
			default:
				break flags
			}
			i++
		}
		if extraStart < 0 {
			extraStart = i
		}
		for i < len(format) && isDigit(format[i]) {
			i++
		}
		if i < len(format) && format[i] == '.' {
			for i++; i < len(format) && isDigit(format[i]); i++ {
			}
		}
		spec.Extra = format[extraStart:i]
	length:
		for i < len(format) {
			switch format[i] {
			case 'h', 'l', 'L', 'z', 'j', 't':
				i++
			default:
				break length
			}
		}
		if i >= len(format) {
			return fmt.Errorf("%w: template ends inside a conversion specifier", ErrInvalidTemplate)
		}
		code := format[i]
		if !isConversion(code) {
			return fmt.Errorf("%w: unknown conversion %%%c", ErrInvalidTemplate, code)
		}
		i++
		spec.Code = code
		if used >= len(args) {
			return fmt.Errorf("%w: conversion %%%c has no argument", ErrTooFewArgs, code)
		}
		args[used].format(w, spec)
		used++
		start = i
	}
	w.WriteString(format[start:])
	return nil
}

func isConversion(c byte) bool {
	switch c {
	case 'd', 'i', 'u', 'x', 'X', 'o', 'b', 'f', 'F', 'e', 'E', 'g', 'G', 'c', 's', 'p':
		return true
	}
	return false
}
