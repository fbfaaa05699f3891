// Package linalg is a small dense linear-algebra core: numeric Vector and
// Matrix value types with elementwise and linear-algebraic operations.
//
// Everything is organized under four subpackages:
//
//	numeric/: Number element constraint & the shared sentinel errors
//	vector/ : Vector: add, subtract, scale, Hadamard product, dot product
//	matrix/ : Dense: elementwise ops, transpose, matrix product, matrix×vector
//	codec/  : compact binary encoding with optional LZ4/Zstandard compression
//
// Why this shape?
//
//   - Pure Go, generic over every built-in integer and float kind
//   - Value semantics: constructors deep-copy, results never alias inputs
//   - No panics on user input; every failure wraps a sentinel for errors.Is
//   - In-place (*Assign) forms validate first, so failures never half-mutate
//
// Quick start:
//
//	a, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}})
//	b, _ := matrix.FromRows([][]int{{5, 6}, {7, 8}})
//	c, _ := a.DotProduct(b) // [[19 22] [43 50]]
//
// Instances are not safe for concurrent mutation; share them read-only or
// guard Set and the *Assign methods with your own lock.
package linalg
