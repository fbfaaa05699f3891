// SPDX-License-Identifier: MIT

package codec

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/numeric"
	"github.com/katalvlaran/linalg/vector"
)

// Operation tags used in error wrappers.
const (
	opEncodeVector = "codec.EncodeVector"
	opDecodeVector = "codec.DecodeVector"
	opEncodeMatrix = "codec.EncodeMatrix"
	opDecodeMatrix = "codec.DecodeMatrix"
)

// EncodeVector serializes v.
//
// Errors:
//   - numeric.ErrInvalidArgument when v is nil.
//   - ErrTooLarge when the payload exceeds 4 GiB.
func EncodeVector[T numeric.Number](v *vector.Vector[T], opts ...Option) ([]byte, error) {
	if v == nil {
		return nil, numeric.Errorf(opEncodeVector, numeric.ErrInvalidArgument)
	}
	o := gatherOptions(opts...)
	kind := elemKind[T]()

	buf := appendHeader(nil, header{kind: kindVector, elem: kind, compression: o.compression})
	buf = binary.AppendUvarint(buf, uint64(v.Len()))
	raw := appendElems(nil, kind, v.Slice())

	out, err := appendBlock(buf, raw, o)
	if err != nil {
		return nil, numeric.Errorf(opEncodeVector, err)
	}
	o.logger.Debug("codec: encoded vector",
		slog.String("elem", kind.String()),
		slog.Int("len", v.Len()),
		slog.Int("bytes", len(out)))

	return out, nil
}

// DecodeVector parses data produced by EncodeVector with the same T.
func DecodeVector[T numeric.Number](data []byte) (*vector.Vector[T], error) {
	kind := elemKind[T]()
	h, err := readHeader(data, kindVector, kind)
	if err != nil {
		return nil, numeric.Errorf(opDecodeVector, err)
	}
	rest := data[headerSize:]

	n, k, err := readUvarint(rest)
	if err != nil {
		return nil, numeric.Errorf(opDecodeVector, err)
	}
	rest = rest[k:]

	xs, err := decodePayload[T](rest, h, n)
	if err != nil {
		return nil, numeric.Errorf(opDecodeVector, err)
	}

	return vector.FromSlice(xs)
}

// EncodeMatrix serializes m in row-major order.
func EncodeMatrix[T numeric.Number](m *matrix.Dense[T], opts ...Option) ([]byte, error) {
	if m == nil {
		return nil, numeric.Errorf(opEncodeMatrix, numeric.ErrInvalidArgument)
	}
	o := gatherOptions(opts...)
	kind := elemKind[T]()
	rows, cols := m.Shape()

	buf := appendHeader(nil, header{kind: kindMatrix, elem: kind, compression: o.compression})
	buf = binary.AppendUvarint(buf, uint64(rows))
	buf = binary.AppendUvarint(buf, uint64(cols))

	flat := make([]T, 0, rows*cols)
	m.Do(func(_, _ int, v T) bool {
		flat = append(flat, v)
		return true
	})
	raw := appendElems(nil, kind, flat)

	out, err := appendBlock(buf, raw, o)
	if err != nil {
		return nil, numeric.Errorf(opEncodeMatrix, err)
	}
	o.logger.Debug("codec: encoded matrix",
		slog.String("elem", kind.String()),
		slog.Int("rows", rows),
		slog.Int("cols", cols),
		slog.Int("bytes", len(out)))

	return out, nil
}

// DecodeMatrix parses data produced by EncodeMatrix with the same T.
func DecodeMatrix[T numeric.Number](data []byte) (*matrix.Dense[T], error) {
	kind := elemKind[T]()
	h, err := readHeader(data, kindMatrix, kind)
	if err != nil {
		return nil, numeric.Errorf(opDecodeMatrix, err)
	}
	rest := data[headerSize:]

	rows, k, err := readUvarint(rest)
	if err != nil {
		return nil, numeric.Errorf(opDecodeMatrix, err)
	}
	rest = rest[k:]
	cols, k, err := readUvarint(rest)
	if err != nil {
		return nil, numeric.Errorf(opDecodeMatrix, err)
	}
	rest = rest[k:]
	if cols != 0 && rows > math.MaxInt32/cols {
		return nil, numeric.Errorf(opDecodeMatrix, fmt.Errorf("shape %dx%d: %w", rows, cols, ErrCorrupt))
	}

	flat, err := decodePayload[T](rest, h, rows*cols)
	if err != nil {
		return nil, numeric.Errorf(opDecodeMatrix, err)
	}
	m, err := matrix.New[T](rows, cols)
	if err != nil {
		return nil, numeric.Errorf(opDecodeMatrix, err)
	}

	return m.Apply(func(i, j int, _ T) T { return flat[i*cols+j] }), nil
}

// decodePayload reads the single block that must end the input.
func decodePayload[T numeric.Number](src []byte, h header, n int) ([]T, error) {
	raw, used, err := readBlock(src, h.compression, maxPayload(h.elem, n))
	if err != nil {
		return nil, err
	}
	if used != len(src) {
		return nil, fmt.Errorf("%d trailing bytes: %w", len(src)-used, ErrCorrupt)
	}

	return readElems[T](raw, h.elem, n)
}
