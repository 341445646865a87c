// Package encoding provides the text encoding engine: hexadecimal and
// base64 encoding and decoding of byte ranges.
//
// Hex output is lowercase with two digits per byte and no separators.
// Base64 uses the RFC 4648 standard alphabet with padding, with optional
// line wrapping on encode. For well-formed input, Decode is the exact left
// inverse of Encode, including wrapped base64 output.
package encoding

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/bytekit/bytekit/format"
	"github.com/bytekit/bytekit/internal/pool"
)

var (
	// ErrUnknownFormat indicates an unrecognized encoding format tag.
	ErrUnknownFormat = errors.New("encoding: unknown encoding format")

	// ErrInvalidEncoding indicates decode input containing bytes outside
	// the format's alphabet, an odd hex length, or malformed base64
	// padding.
	ErrInvalidEncoding = errors.New("encoding: invalid encoded data")
)

// Encode encodes data in the given text format.
//
// For base64, lineLength > 0 inserts a line feed after every lineLength
// encoded characters; 0 disables wrapping. Hex ignores lineLength.
//
// Parameters:
//   - encodingType: Format tag (Hex or Base64)
//   - data: Input bytes
//   - lineLength: Base64 wrap column, 0 for none
//
// Returns:
//   - []byte: Encoded text, newly allocated
//   - error: ErrUnknownFormat for an unrecognized tag
func Encode(encodingType format.EncodingType, data []byte, lineLength int) ([]byte, error) {
	switch encodingType {
	case format.EncodingHex:
		return hexEncode(data), nil
	case format.EncodingBase64:
		return base64Encode(data, lineLength), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, encodingType)
	}
}

// Decode decodes text previously produced by Encode.
//
// Hex accepts both upper- and lowercase digits. Base64 skips CR and LF, so
// output wrapped by Encode decodes directly; any other byte outside the
// alphabet, and malformed padding, fail with ErrInvalidEncoding.
func Decode(encodingType format.EncodingType, data []byte) ([]byte, error) {
	switch encodingType {
	case format.EncodingHex:
		return hexDecode(data)
	case format.EncodingBase64:
		return base64Decode(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, encodingType)
	}
}

func hexEncode(data []byte) []byte {
	out := make([]byte, hex.EncodedLen(len(data)))
	hex.Encode(out, data)

	return out
}

func hexDecode(data []byte) ([]byte, error) {
	out := make([]byte, hex.DecodedLen(len(data)))
	n, err := hex.Decode(out, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEncoding, err)
	}

	return out[:n], nil
}

func base64Encode(data []byte, lineLength int) []byte {
	enc := base64.StdEncoding
	encoded := make([]byte, enc.EncodedLen(len(data)))
	enc.Encode(encoded, data)

	if lineLength <= 0 || len(encoded) <= lineLength {
		return encoded
	}

	// Rebuild with a line feed after every lineLength characters. The
	// pooled buffer keeps the intermediate growth off the heap for the
	// common small-payload case.
	bb := pool.GetOutputBuffer()
	defer pool.PutOutputBuffer(bb)

	for len(encoded) > lineLength {
		bb.Write(encoded[:lineLength])
		bb.WriteByte('\n')
		encoded = encoded[lineLength:]
	}
	bb.Write(encoded)

	return bb.CopyBytes()
}

func base64Decode(data []byte) ([]byte, error) {
	// Strip line breaks inserted by wrapped encoding so Decode inverts
	// Encode exactly. Any other non-alphabet byte is rejected below by
	// the strict decoder.
	stripped := data
	if bytes.IndexByte(data, '\n') >= 0 || bytes.IndexByte(data, '\r') >= 0 {
		bb := pool.GetOutputBuffer()
		defer pool.PutOutputBuffer(bb)

		for _, c := range data {
			if c != '\n' && c != '\r' {
				bb.WriteByte(c)
			}
		}
		stripped = bb.Bytes()
	}

	enc := base64.StdEncoding.Strict()
	out := make([]byte, enc.DecodedLen(len(stripped)))
	n, err := enc.Decode(out, stripped)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEncoding, err)
	}

	return out[:n], nil
}
