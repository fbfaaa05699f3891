// SPDX-License-Identifier: MIT

package numeric

// Number is the element constraint for Vector and Matrix.
// It admits every built-in integer and floating-point kind (and named types
// built on them). Arithmetic is native: integer overflow wraps and float
// rounding follows IEEE-754.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Zero returns the additive identity of T.
func Zero[T Number]() T {
	var z T
	return z
}
