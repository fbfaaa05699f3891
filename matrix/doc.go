// Package matrix provides Dense, a fixed-shape, row-major numeric matrix
// with elementwise arithmetic, transpose, matrix product and matrix-vector
// product.
//
// The matrix package provides:
//
//   - Construction from a shape (New, NewIdentity) or from data (FromRows,
//     FromVectors). Data constructors deep-copy and reject empty or ragged input.
//   - Safe accessors: At/Set return ErrIndexOutOfBounds instead of panicking.
//   - Pure operations that return a fresh Dense: Add, Sub, Scale, Hadamard,
//     Transpose, DotProduct.
//   - In-place operations that mutate and return the receiver: AddAssign,
//     SubAssign, ScaleAssign, HadamardAssign.
//   - MulVec, which multiplies by a vector.Vector.
//
// Multiplication is never overloaded: Scale multiplies by a scalar, Hadamard
// multiplies elementwise, DotProduct is the linear-algebra product and MulVec
// is the matrix-vector product.
//
// Shapes are checked exactly on every binary operation (no broadcasting).
// Validation completes before the first write, so a failed *Assign call
// leaves its receiver unchanged.
//
// Dense performs no internal locking; guard Set, Apply and the *Assign methods
// externally when sharing an instance across goroutines.
package matrix
