// SPDX-License-Identifier: MIT

package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

const (
	// blockHeaderSize covers [rawLen uint32][storedLen uint32].
	blockHeaderSize = 8
	// zstdMaxDecoded bounds any single decoded block; rawLen is a uint32.
	zstdMaxDecoded = math.MaxUint32
)

// Encoders are pooled per zstd speed level; EncodeAll/DecodeAll are stateless
// between calls, so pooled instances are safe to reuse.
var (
	zstdEncoderPools [zstd.SpeedBestCompression + 1]sync.Pool
	zstdDecoderPool  sync.Pool
)

func getZstdEncoder(level zstd.EncoderLevel) (*zstd.Encoder, error) {
	if v := zstdEncoderPools[level].Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}

	return zstd.NewWriter(nil, zstd.WithEncoderLevel(level))
}

func putZstdEncoder(level zstd.EncoderLevel, enc *zstd.Encoder) {
	zstdEncoderPools[level].Put(enc)
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}

	return zstd.NewReader(nil, zstd.WithDecoderMaxMemory(zstdMaxDecoded))
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// appendBlock appends the block header and payload to dst, compressing the
// payload when o asks for it and the result beats o.minRatio.
func appendBlock(dst, raw []byte, o options) ([]byte, error) {
	if uint64(len(raw)) > math.MaxUint32 {
		return nil, ErrTooLarge
	}

	var stored []byte
	if o.compression != CompressionNone && len(raw) > 0 {
		var err error
		switch o.compression {
		case CompressionLZ4:
			stored, err = compressLZ4(raw)
		case CompressionZstd:
			stored, err = compressZstd(raw, o.zstdLevel)
		}
		if err != nil {
			return nil, fmt.Errorf("codec: %s compress: %w", o.compression, err)
		}
		if len(stored) == 0 || float64(len(stored)) > float64(len(raw))*o.minRatio {
			o.logger.Debug("codec: storing raw payload",
				slog.String("compression", o.compression.String()),
				slog.Int("raw", len(raw)),
				slog.Int("compressed", len(stored)))
			stored = nil
		}
	}

	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(raw)))
	if stored == nil {
		dst = binary.LittleEndian.AppendUint32(dst, 0) // 0 = raw
		return append(dst, raw...), nil
	}
	o.logger.Debug("codec: compressed payload",
		slog.String("compression", o.compression.String()),
		slog.Int("raw", len(raw)),
		slog.Int("stored", len(stored)))
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(stored)))

	return append(dst, stored...), nil
}

// compressLZ4 returns nil when the input is incompressible.
func compressLZ4(raw []byte) ([]byte, error) {
	buf := make([]byte, lz4.CompressBlockBound(len(raw)))
	n, err := lz4.CompressBlock(raw, buf, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	return buf[:n], nil
}

func compressZstd(raw []byte, level int) ([]byte, error) {
	lvl := zstd.EncoderLevelFromZstd(level)
	enc, err := getZstdEncoder(lvl)
	if err != nil {
		return nil, err
	}
	defer putZstdEncoder(lvl, enc)

	return enc.EncodeAll(raw, nil), nil
}

// readBlock parses one block from src and returns the raw payload and the
// number of bytes consumed. A declared raw length above maxRaw is rejected
// before anything is allocated.
func readBlock(src []byte, c Compression, maxRaw uint64) ([]byte, int, error) {
	if len(src) < blockHeaderSize {
		return nil, 0, fmt.Errorf("block header: %w", ErrCorrupt)
	}
	rawLen32 := binary.LittleEndian.Uint32(src[0:])
	if uint64(rawLen32) > maxRaw {
		return nil, 0, fmt.Errorf("raw length %d exceeds %d: %w", rawLen32, maxRaw, ErrCorrupt)
	}
	rawLen := int(rawLen32)
	storedLen := int(binary.LittleEndian.Uint32(src[4:]))
	body := src[blockHeaderSize:]

	if storedLen == 0 {
		if len(body) < rawLen {
			return nil, 0, fmt.Errorf("raw block: %w", ErrCorrupt)
		}
		return body[:rawLen], blockHeaderSize + rawLen, nil
	}
	if len(body) < storedLen {
		return nil, 0, fmt.Errorf("compressed block: %w", ErrCorrupt)
	}
	body = body[:storedLen]

	var (
		out []byte
		err error
	)
	switch c {
	case CompressionLZ4:
		out = make([]byte, rawLen)
		var n int
		n, err = lz4.UncompressBlock(body, out)
		if err == nil && n != rawLen {
			err = ErrCorrupt
		}
	case CompressionZstd:
		var fh zstd.Header
		if err = fh.Decode(body); err == nil && fh.HasFCS && fh.FrameContentSize != uint64(rawLen) {
			err = fmt.Errorf("frame content size %d, block says %d: %w", fh.FrameContentSize, rawLen, ErrCorrupt)
		}
		if err != nil {
			break
		}
		var dec *zstd.Decoder
		if dec, err = getZstdDecoder(); err != nil {
			return nil, 0, err
		}
		out, err = dec.DecodeAll(body, make([]byte, 0, rawLen))
		putZstdDecoder(dec)
		if err == nil && len(out) != rawLen {
			err = ErrCorrupt
		}
	default:
		err = fmt.Errorf("compressed block with compression %q: %w", c, ErrCorrupt)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("%s block: %w", c, asCorrupt(err))
	}

	return out, blockHeaderSize + storedLen, nil
}

// asCorrupt makes decompressor failures match ErrCorrupt while keeping the
// underlying message.
func asCorrupt(err error) error {
	if errors.Is(err, ErrCorrupt) {
		return err
	}

	return fmt.Errorf("%w: %v", ErrCorrupt, err)
}
