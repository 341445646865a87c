// Package bytekit provides a facade over binary-data utilities: immutable
// byte buffers, byte-stream compression, text encoding, message digests,
// and fixed-layout struct packing.
//
// # Core Features
//
//   - Immutable Buffers with zero-copy sub-range views
//   - Interchangeable compression formats (Gzip, Zlib, Zstd, LZ4), all
//     with recognizable headers and deterministic mismatch detection
//   - Hex and base64 text encoding with optional line wrapping
//   - Message digests with fixed lengths (MD5 through SHA-512, XXH64,
//     BLAKE3)
//   - A Lua 5.3 string.pack-compatible binary record format
//
// # Basic Usage
//
//	buf := bytekit.NewBuffer([]byte("payload"))
//
//	packed, _ := bytekit.Compress(format.CompressionZstd, -1, buf)
//	restored, _ := bytekit.Decompress(format.CompressionZstd, packed)
//
//	hexed, _ := bytekit.EncodeToString(format.EncodingHex, buf, 0)
//	sum, _ := bytekit.Hash(format.HashSHA256, buf)
//
//	rec, _ := bytekit.Pack("<i4z", 42, "name")
//	vals, next, _ := bytekit.Unpack("<i4z", rec, 1)
//
// # Package Structure
//
// This package wraps the engine packages (compress, encoding, digest,
// pack) with Buffer-level convenience functions. Callers that work with
// raw byte slices can use the engine packages directly; every facade
// operation here is a thin adapter around one engine call.
//
// All operations are pure, synchronous transformations: each call either
// fully succeeds with a complete result or fails with an error and no
// partial output.
package bytekit

import (
	"fmt"

	"github.com/bytekit/bytekit/buffer"
	"github.com/bytekit/bytekit/compress"
	"github.com/bytekit/bytekit/digest"
	"github.com/bytekit/bytekit/encoding"
	"github.com/bytekit/bytekit/format"
	"github.com/bytekit/bytekit/pack"
)

// NewBuffer creates a root buffer holding a private copy of b.
func NewBuffer(b []byte) *buffer.Buffer {
	return buffer.New(b)
}

// NewBufferString creates a root buffer holding the bytes of s.
func NewBufferString(s string) *buffer.Buffer {
	return buffer.FromString(s)
}

// View returns a read-only sub-range of buf sharing its storage.
//
// Fails with buffer.ErrOutOfRange when offset+size exceeds buf's length.
func View(buf *buffer.Buffer, offset, size int) (*buffer.Buffer, error) {
	return buf.View(offset, size)
}

// Materialize renders a buffer in the caller-selected container shape:
// the buffer itself for ContainerBuffer, a string copy for ContainerString.
//
// Callers with a statically known shape should use buf directly or call
// buf.String(); this variant exists for format-driven call sites.
func Materialize(container format.ContainerType, buf *buffer.Buffer) (any, error) {
	switch container {
	case format.ContainerBuffer:
		return buf, nil
	case format.ContainerString:
		return buf.String(), nil
	default:
		return nil, fmt.Errorf("bytekit: unknown container type %s", container)
	}
}

// Compress compresses buf with the given format and level.
//
// Levels range -1..9: -1 selects the algorithm default, 0..9 map onto the
// algorithm's native range with values above its maximum clamped, and
// anything else fails with compress.ErrInvalidLevel. The level affects
// only output size and speed; Decompress restores the original bytes for
// any level.
func Compress(compressionType format.CompressionType, level int, buf *buffer.Buffer) (*buffer.Buffer, error) {
	out, err := compress.Compress(compressionType, level, buf.Bytes())
	if err != nil {
		return nil, err
	}

	return buffer.Wrap(out), nil
}

// Decompress restores a buffer previously compressed with the given format.
//
// Fails with compress.ErrCorruptData for input that is not a valid stream
// of the declared format and compress.ErrTruncatedData when the stream
// ends mid-record.
func Decompress(compressionType format.CompressionType, buf *buffer.Buffer) (*buffer.Buffer, error) {
	out, err := compress.Decompress(compressionType, buf.Bytes())
	if err != nil {
		return nil, err
	}

	return buffer.Wrap(out), nil
}

// Encode encodes buf in the given text format. For base64, lineLength > 0
// wraps output every lineLength characters; hex ignores it.
func Encode(encodingType format.EncodingType, buf *buffer.Buffer, lineLength int) (*buffer.Buffer, error) {
	out, err := encoding.Encode(encodingType, buf.Bytes(), lineLength)
	if err != nil {
		return nil, err
	}

	return buffer.Wrap(out), nil
}

// EncodeToString encodes buf in the given text format and returns the
// encoded text as a string.
func EncodeToString(encodingType format.EncodingType, buf *buffer.Buffer, lineLength int) (string, error) {
	out, err := encoding.Encode(encodingType, buf.Bytes(), lineLength)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// Decode decodes encoded text previously produced by Encode.
func Decode(encodingType format.EncodingType, buf *buffer.Buffer) (*buffer.Buffer, error) {
	out, err := encoding.Decode(encodingType, buf.Bytes())
	if err != nil {
		return nil, err
	}

	return buffer.Wrap(out), nil
}

// DecodeString decodes encoded text given as a string.
func DecodeString(encodingType format.EncodingType, s string) (*buffer.Buffer, error) {
	out, err := encoding.Decode(encodingType, []byte(s))
	if err != nil {
		return nil, err
	}

	return buffer.Wrap(out), nil
}

// Hash computes the digest of buf under the given algorithm. The digest
// length is fixed per algorithm, independent of input length.
func Hash(hashType format.HashType, buf *buffer.Buffer) (*buffer.Buffer, error) {
	sum, err := digest.Sum(hashType, buf.Bytes())
	if err != nil {
		return nil, err
	}

	return buffer.Wrap(sum), nil
}

// HashString computes the digest of the bytes of s.
func HashString(hashType format.HashType, s string) (*buffer.Buffer, error) {
	sum, err := digest.SumString(hashType, s)
	if err != nil {
		return nil, err
	}

	return buffer.Wrap(sum), nil
}

// PackedSize computes the exact byte length the format string produces.
// Formats with variable-length fields fail with pack.ErrFormat.
func PackedSize(formatString string) (int, error) {
	return pack.PackedSize(formatString)
}

// Pack serializes values into a buffer according to the format string.
func Pack(formatString string, values ...any) (*buffer.Buffer, error) {
	out, err := pack.Pack(formatString, values...)
	if err != nil {
		return nil, err
	}

	return buffer.Wrap(out), nil
}

// Unpack deserializes values from buf beginning at the 1-based startPos
// (negative counts from the end), returning the decoded values and the
// 1-based index of the first unconsumed byte.
func Unpack(formatString string, buf *buffer.Buffer, startPos int) ([]any, int, error) {
	return pack.Unpack(formatString, buf.Bytes(), startPos)
}
