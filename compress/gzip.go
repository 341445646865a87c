package compress

import (
	"bytes"
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"

	"github.com/bytekit/bytekit/format"
)

// GzipCodec implements the gzip DEFLATE container (RFC 1952).
//
// The gzip frame carries a magic number and a CRC32 checksum, so corrupt
// input and input produced by a different format are rejected
// deterministically on decompression.
type GzipCodec struct {
	level   int
	writers sync.Pool
}

var _ Codec = (*GzipCodec)(nil)

// NewGzipCodec creates a gzip codec at the given level (-1 for default).
//
// Levels 0..9 map directly onto gzip's native levels; 0 stores without
// compression.
func NewGzipCodec(level int) *GzipCodec {
	if level > gzip.BestCompression {
		level = gzip.BestCompression
	}
	if level < gzip.DefaultCompression {
		level = gzip.DefaultCompression
	}

	c := &GzipCodec{level: level}
	c.writers.New = func() any {
		// Level is validated above; NewWriterLevel cannot fail for -1..9.
		zw, err := gzip.NewWriterLevel(io.Discard, c.level)
		if err != nil {
			panic(err)
		}

		return zw
	}

	return c
}

// Compress compresses data into a gzip stream.
//
// Uses a pooled gzip.Writer reset onto a fresh output buffer, so repeated
// calls do not reallocate compressor state.
func (c *GzipCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(data)/2 + 64)

	zw, _ := c.writers.Get().(*gzip.Writer)
	defer c.writers.Put(zw)

	zw.Reset(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress restores a gzip stream.
//
// Returns ErrCorruptData for a bad magic number, header, or checksum, and
// ErrTruncatedData when the stream ends before the trailer.
func (c *GzipCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, errEmptyInput(format.CompressionGzip)
	}

	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, classifyError(format.CompressionGzip, err)
	}

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, classifyError(format.CompressionGzip, err)
	}
	if err := zr.Close(); err != nil {
		return nil, classifyError(format.CompressionGzip, err)
	}

	return out, nil
}
