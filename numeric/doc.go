// Package numeric holds the pieces shared by the vector and matrix packages:
// the Number element constraint and the sentinel error set.
//
// Every error returned by vector, matrix or codec wraps one of the sentinels
// below, so callers match with errors.Is and never with string comparison.
package numeric
