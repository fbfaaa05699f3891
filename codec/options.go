// SPDX-License-Identifier: MIT

// Package codec: functional configuration for encoders.
//
// Design goals:
//   - Deterministic output for a given input and option set.
//   - Safe by construction: WithX panics only on nonsensical values
//     (programmer error), never on data.

package codec

import (
	"io"
	"log/slog"
)

// Compression selects the block compressor.
type Compression uint8

const (
	// CompressionNone stores the payload raw.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZstd uses Zstandard (better ratio).
	CompressionZstd Compression = 2
)

// String returns the lower-case algorithm name.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCompression leaves payloads uncompressed.
	DefaultCompression = CompressionNone

	// DefaultZstdLevel is the zstd level used by CompressionZstd (zstd "default").
	DefaultZstdLevel = 3

	// DefaultMinRatio is the largest compressed/raw size ratio still worth
	// storing compressed. Anything above it is stored raw.
	DefaultMinRatio = 0.9
)

const (
	panicCompressionInvalid = "codec: WithCompression: unknown algorithm"
	panicMinRatioInvalid    = "codec: WithMinRatio: ratio must be in (0, 1]"
	panicLoggerNil          = "codec: WithLogger: logger must be non-nil"
)

// Option mutates encoder options.
type Option func(*options)

type options struct {
	compression Compression
	zstdLevel   int
	minRatio    float64
	logger      *slog.Logger
}

// WithCompression selects the block compressor.
// Panics on an unknown algorithm.
func WithCompression(c Compression) Option {
	if c > CompressionZstd {
		panic(panicCompressionInvalid)
	}

	return func(o *options) { o.compression = c }
}

// WithZstdLevel sets the zstd level (1 fastest … 22 best); out-of-range
// values are clamped by the zstd encoder level mapping.
func WithZstdLevel(level int) Option {
	return func(o *options) { o.zstdLevel = level }
}

// WithMinRatio sets the compressed/raw size ratio above which the payload
// is stored raw. Panics unless 0 < ratio ≤ 1.
func WithMinRatio(ratio float64) Option {
	if !(ratio > 0 && ratio <= 1) {
		panic(panicMinRatioInvalid)
	}

	return func(o *options) { o.minRatio = ratio }
}

// WithLogger routes Debug-level diagnostics (sizes, chosen compression,
// raw fallbacks) to logger.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.logger = logger }
}

// discardLogger drops every record.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		compression: DefaultCompression,
		zstdLevel:   DefaultZstdLevel,
		minRatio:    DefaultMinRatio,
		logger:      discardLogger,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
