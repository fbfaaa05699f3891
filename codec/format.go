// SPDX-License-Identifier: MIT

package codec

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"

	"github.com/katalvlaran/linalg/numeric"
)

const (
	formatVersion = 1

	kindVector byte = 'V'
	kindMatrix byte = 'M'

	// magic + version + kind + element kind + compression
	headerSize = 8
)

var magic = [4]byte{'L', 'A', 'L', 'G'}

type header struct {
	kind        byte
	elem        reflect.Kind
	compression Compression
}

// elemKind returns the reflect.Kind underlying T (named types included).
func elemKind[T numeric.Number]() reflect.Kind {
	return reflect.TypeFor[T]().Kind()
}

func appendHeader(dst []byte, h header) []byte {
	dst = append(dst, magic[:]...)
	return append(dst, formatVersion, h.kind, byte(h.elem), byte(h.compression))
}

// readHeader parses the fixed header and checks it against the expected
// value kind and element kind.
func readHeader(src []byte, kind byte, elem reflect.Kind) (header, error) {
	if len(src) < headerSize || [4]byte(src[:4]) != magic {
		return header{}, fmt.Errorf("header: %w", ErrCorrupt)
	}
	if src[4] != formatVersion {
		return header{}, fmt.Errorf("version %d: %w", src[4], ErrUnsupportedVersion)
	}
	h := header{kind: src[5], elem: reflect.Kind(src[6]), compression: Compression(src[7])}
	if h.kind != kind {
		return header{}, fmt.Errorf("value kind %q, want %q: %w", h.kind, kind, ErrKindMismatch)
	}
	if h.elem != elem {
		return header{}, fmt.Errorf("element kind %s, want %s: %w", h.elem, elem, ErrKindMismatch)
	}
	if h.compression > CompressionZstd {
		return header{}, fmt.Errorf("compression %d: %w", h.compression, ErrCorrupt)
	}

	return h, nil
}

// readUvarint reads one dimension and returns it with the bytes consumed.
func readUvarint(src []byte) (int, int, error) {
	v, n := binary.Uvarint(src)
	if n <= 0 || v > math.MaxInt32 {
		return 0, 0, fmt.Errorf("dimension: %w", ErrCorrupt)
	}

	return int(v), n, nil
}

// appendElems appends xs in the wire encoding for kind.
func appendElems[T numeric.Number](dst []byte, kind reflect.Kind, xs []T) []byte {
	switch kind {
	case reflect.Float32:
		for _, x := range xs {
			dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(x)))
		}
	case reflect.Float64:
		for _, x := range xs {
			dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(float64(x)))
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		for _, x := range xs {
			dst = binary.AppendVarint(dst, int64(x))
		}
	default: // unsigned kinds
		for _, x := range xs {
			dst = binary.AppendUvarint(dst, uint64(x))
		}
	}

	return dst
}

// maxPayload is the largest raw payload n elements of kind can encode to.
func maxPayload(kind reflect.Kind, n int) uint64 {
	switch kind {
	case reflect.Float32:
		return 4 * uint64(n)
	case reflect.Float64:
		return 8 * uint64(n)
	default:
		return binary.MaxVarintLen64 * uint64(n)
	}
}

// readElems decodes exactly n elements from src; trailing bytes are corrupt.
func readElems[T numeric.Number](src []byte, kind reflect.Kind, n int) ([]T, error) {
	// Every encoding spends at least one byte per element.
	if n > len(src) {
		return nil, fmt.Errorf("payload holds fewer than %d elements: %w", n, ErrCorrupt)
	}
	out := make([]T, n)

	switch kind {
	case reflect.Float32:
		if len(src) != 4*n {
			return nil, fmt.Errorf("float32 payload: %w", ErrCorrupt)
		}
		for i := range out {
			out[i] = T(math.Float32frombits(binary.LittleEndian.Uint32(src[4*i:])))
		}
		return out, nil
	case reflect.Float64:
		if len(src) != 8*n {
			return nil, fmt.Errorf("float64 payload: %w", ErrCorrupt)
		}
		for i := range out {
			out[i] = T(math.Float64frombits(binary.LittleEndian.Uint64(src[8*i:])))
		}
		return out, nil
	}

	signed := kind >= reflect.Int && kind <= reflect.Int64
	for i := range out {
		var k int
		if signed {
			var v int64
			v, k = binary.Varint(src)
			out[i] = T(v)
		} else {
			var v uint64
			v, k = binary.Uvarint(src)
			out[i] = T(v)
		}
		if k <= 0 {
			return nil, fmt.Errorf("element %d: %w", i, ErrCorrupt)
		}
		src = src[k:]
	}
	if len(src) != 0 {
		return nil, fmt.Errorf("%d trailing payload bytes: %w", len(src), ErrCorrupt)
	}

	return out, nil
}
