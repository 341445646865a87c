package compress

import (
	"bytes"
	"io"
	"sync"

	"github.com/klauspost/compress/zlib"

	"github.com/bytekit/bytekit/format"
)

// ZlibCodec implements the zlib DEFLATE container (RFC 1950).
//
// The zlib header and Adler-32 trailer make corrupt or mismatched input
// fail deterministically on decompression.
type ZlibCodec struct {
	level   int
	writers sync.Pool
}

var _ Codec = (*ZlibCodec)(nil)

// NewZlibCodec creates a zlib codec at the given level (-1 for default).
//
// Levels 0..9 map directly onto zlib's native levels.
func NewZlibCodec(level int) *ZlibCodec {
	if level > zlib.BestCompression {
		level = zlib.BestCompression
	}
	if level < zlib.DefaultCompression {
		level = zlib.DefaultCompression
	}

	c := &ZlibCodec{level: level}
	c.writers.New = func() any {
		zw, err := zlib.NewWriterLevel(io.Discard, c.level)
		if err != nil {
			panic(err)
		}

		return zw
	}

	return c
}

// Compress compresses data into a zlib stream using a pooled writer.
func (c *ZlibCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(data)/2 + 64)

	zw, _ := c.writers.Get().(*zlib.Writer)
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

// Decompress restores a zlib stream.
func (c *ZlibCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, errEmptyInput(format.CompressionZlib)
	}

	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, classifyError(format.CompressionZlib, err)
	}

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, classifyError(format.CompressionZlib, err)
	}
	if err := zr.Close(); err != nil {
		return nil, classifyError(format.CompressionZlib, err)
	}

	return out, nil
}
