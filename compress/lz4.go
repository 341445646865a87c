package compress

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"

	"github.com/bytekit/bytekit/format"
)

// LZ4Codec implements the LZ4 frame format.
//
// The frame format (as opposed to raw LZ4 blocks) carries a magic number
// and per-block checksums, which is what lets mismatched or corrupt input
// fail deterministically on decompression.
type LZ4Codec struct {
	level lz4.CompressionLevel
}

var _ Codec = (*LZ4Codec)(nil)

// lz4Level maps the engine's -1..9 range onto the lz4 level constants.
// Level 0 and the default both select the fast (non-HC) compressor.
func lz4Level(level int) lz4.CompressionLevel {
	if level <= 0 {
		return lz4.Fast
	}

	switch level {
	case 1:
		return lz4.Level1
	case 2:
		return lz4.Level2
	case 3:
		return lz4.Level3
	case 4:
		return lz4.Level4
	case 5:
		return lz4.Level5
	case 6:
		return lz4.Level6
	case 7:
		return lz4.Level7
	case 8:
		return lz4.Level8
	default:
		return lz4.Level9
	}
}

// NewLZ4Codec creates an LZ4 frame codec at the given level (-1 for default).
func NewLZ4Codec(level int) *LZ4Codec {
	if level > MaxLevel {
		level = MaxLevel
	}

	return &LZ4Codec{level: lz4Level(level)}
}

// Compress compresses data into an LZ4 frame.
func (c *LZ4Codec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(data)/2 + 64)

	zw := lz4.NewWriter(&buf)
	if err := zw.Apply(lz4.CompressionLevelOption(c.level), lz4.BlockChecksumOption(true)); err != nil {
		return nil, err
	}
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress restores an LZ4 frame.
func (c *LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, errEmptyInput(format.CompressionLZ4)
	}

	zr := lz4.NewReader(bytes.NewReader(data))
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, classifyError(format.CompressionLZ4, err)
	}

	return out, nil
}
