// SPDX-License-Identifier: MIT

package codec

import "errors"

var (
	// ErrCorrupt reports truncated or garbled input.
	ErrCorrupt = errors.New("codec: corrupt input")

	// ErrUnsupportedVersion reports a format version this package cannot read.
	ErrUnsupportedVersion = errors.New("codec: unsupported format version")

	// ErrKindMismatch reports that the stored element kind or value kind
	// (vector vs matrix) differs from the one requested.
	ErrKindMismatch = errors.New("codec: kind mismatch")

	// ErrTooLarge reports a payload that does not fit the 32-bit block header.
	ErrTooLarge = errors.New("codec: payload too large")
)
