// Package vector provides Vector, a dense, fixed-length, one-dimensional
// numeric container with elementwise and dot-product arithmetic.
//
// A Vector exclusively owns its element buffer:
//
//   - New(n) allocates n zeros; FromSlice(xs) deep-copies xs.
//   - Length is fixed for the lifetime of the value.
//   - Pure operations (Add, Sub, Scale, Hadamard) return a fresh Vector.
//   - *Assign operations mutate the receiver in place and return it.
//   - Dot is the only operation that reduces to a scalar.
//
// Every binary operation checks lengths exactly (no broadcasting) and fails
// with ErrDimensionMismatch before touching any element, so a failed *Assign
// leaves the receiver unchanged.
//
// Vector performs no internal locking. Publish instances as read-only or
// guard Set and the *Assign methods externally when sharing across goroutines.
package vector
