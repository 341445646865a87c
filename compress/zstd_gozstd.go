//go:build gozstd

package compress

import (
	"github.com/valyala/gozstd"

	"github.com/bytekit/bytekit/format"
)

// gozstdLevels maps the engine's 0..9 range onto libzstd's 1..22.
var gozstdLevels = [MaxLevel + 1]int{1, 3, 5, 7, 9, 11, 13, 15, 18, 22}

func gozstdLevel(level int) int {
	if level == DefaultLevel {
		return gozstd.DefaultCompressionLevel
	}

	return gozstdLevels[level]
}

// Compress compresses data into a zstd frame via libzstd.
func (c *ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, gozstdLevel(c.level)), nil
}

// Decompress restores a zstd frame via libzstd.
func (c *ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, errEmptyInput(format.CompressionZstd)
	}

	decompressed, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, classifyError(format.CompressionZstd, err)
	}

	return decompressed, nil
}
