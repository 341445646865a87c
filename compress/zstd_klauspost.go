//go:build !gozstd

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/bytekit/bytekit/format"
)

// zstdLevel maps the engine's -1..9 range onto the pure-Go backend's four
// speed levels.
func zstdLevel(level int) zstd.EncoderLevel {
	switch {
	case level == DefaultLevel:
		return zstd.SpeedDefault
	case level <= 1:
		return zstd.SpeedFastest
	case level <= 5:
		return zstd.SpeedDefault
	case level <= 8:
		return zstd.SpeedBetterCompression
	default:
		return zstd.SpeedBestCompression
	}
}

// zstdEncoders shares one encoder per speed level. The klauspost encoder is
// explicitly safe for concurrent EncodeAll calls, so no per-call pooling is
// needed on the compression side.
var zstdEncoders = xsync.NewMap[zstd.EncoderLevel, *zstd.Encoder]()

func zstdEncoderFor(level zstd.EncoderLevel) *zstd.Encoder {
	if enc, ok := zstdEncoders.Load(level); ok {
		return enc
	}

	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(level),
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderCRC(true), // content checksum so corruption is detected
	)
	if err != nil {
		// This should never happen with valid options
		panic(fmt.Sprintf("failed to create zstd encoder: %v", err))
	}

	actual, _ := zstdEncoders.LoadOrStore(level, enc)

	return actual
}

// zstdDecoderPool pools zstd decoders for reuse to eliminate allocation
// overhead. The klauspost decoder is designed to operate without
// allocations after a warmup, so storing decoders pays off.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1), // Single-threaded for predictable performance
			zstd.WithDecoderLowmem(false),  // Use more memory for better performance
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

// Compress compresses data into a zstd frame.
func (c *ZstdCodec) Compress(data []byte) ([]byte, error) {
	return zstdEncoderFor(zstdLevel(c.level)).EncodeAll(data, nil), nil
}

// Decompress restores a zstd frame.
//
// Uses a pooled decoder; DecodeAll is stateless, so the decoder can be
// reused even after a failed call.
func (c *ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, errEmptyInput(format.CompressionZstd)
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, classifyError(format.CompressionZstd, err)
	}

	return decompressed, nil
}
