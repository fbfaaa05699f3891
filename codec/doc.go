// Package codec serializes vector.Vector and matrix.Dense values into a
// compact, self-describing binary form, optionally block-compressed with
// LZ4 or Zstandard.
//
// Layout (all multi-byte header fields little-endian):
//
//	magic "LALG" | version | kind ('V' or 'M') | element kind | compression
//	uvarint dims (len, or rows then cols)
//	block: rawLen uint32 | storedLen uint32 | payload
//
// storedLen == 0 marks a payload stored raw, which happens when compression
// is disabled or does not beat the configured ratio. Elements are written in
// row-major order: signed integers as zig-zag varints, unsigned integers as
// uvarints, floats as IEEE-754 bits of their own width.
//
// Decoding is strict. The element kind must match the requested type
// parameter exactly (ErrKindMismatch), and every length is checked against
// the input before allocation (ErrCorrupt).
package codec
