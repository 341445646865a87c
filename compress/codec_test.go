package compress

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bytekit/bytekit/format"
)

var allFormats = []format.CompressionType{
	format.CompressionGzip,
	format.CompressionZlib,
	format.CompressionZstd,
	format.CompressionLZ4,
}

func testPayloads(t *testing.T) map[string][]byte {
	t.Helper()

	rng := rand.New(rand.NewSource(42))
	random := make([]byte, 16*1024)
	rng.Read(random)

	repetitive := bytes.Repeat([]byte("metric.cpu.usage=0.97;"), 512)

	return map[string][]byte{
		"empty":      {},
		"single":     {0x42},
		"text":       []byte("the quick brown fox jumps over the lazy dog"),
		"repetitive": repetitive,
		"random":     random,
	}
}

func TestRoundTripAllFormatsAndLevels(t *testing.T) {
	payloads := testPayloads(t)
	levels := []int{DefaultLevel, 0, 1, 5, 9}

	for _, ct := range allFormats {
		for _, level := range levels {
			for name, payload := range payloads {
				t.Run(ct.String()+"/"+name, func(t *testing.T) {
					compressed, err := Compress(ct, level, payload)
					require.NoError(t, err)

					restored, err := Decompress(ct, compressed)
					require.NoError(t, err)
					require.Equal(t, payload, restored,
						"round trip must restore input byte-for-byte at level %d", level)
				})
			}
		}
	}
}

func TestLevelAffectsSizeNotCorrectness(t *testing.T) {
	require := require.New(t)

	payload := bytes.Repeat([]byte("abcdefgh12345678"), 4096)

	for _, ct := range allFormats {
		fast, err := Compress(ct, 1, payload)
		require.NoError(err)
		best, err := Compress(ct, 9, payload)
		require.NoError(err)

		// Different levels may produce different streams, but both must
		// decompress to the original.
		fromFast, err := Decompress(ct, fast)
		require.NoError(err)
		fromBest, err := Decompress(ct, best)
		require.NoError(err)

		require.Equal(payload, fromFast, "%s level 1", ct)
		require.Equal(payload, fromBest, "%s level 9", ct)
	}
}

func TestInvalidLevel(t *testing.T) {
	for _, level := range []int{-2, 10, 100} {
		_, err := Compress(format.CompressionGzip, level, []byte("x"))
		require.ErrorIs(t, err, ErrInvalidLevel, "level %d", level)

		_, err = New(format.CompressionZstd, WithLevel(level))
		require.ErrorIs(t, err, ErrInvalidLevel, "level %d", level)
	}
}

func TestUnknownFormat(t *testing.T) {
	_, err := Compress(format.CompressionType(0xEE), DefaultLevel, []byte("x"))
	require.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Decompress(format.CompressionType(0xEE), []byte("x"))
	require.ErrorIs(t, err, ErrUnknownFormat)

	_, err = GetCodec(format.CompressionType(0xEE))
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestCrossFormatDecompressionFails(t *testing.T) {
	payload := bytes.Repeat([]byte("cross format detection "), 64)

	for _, produced := range allFormats {
		compressed, err := Compress(produced, DefaultLevel, payload)
		require.NoError(t, err)

		for _, declared := range allFormats {
			if declared == produced {
				continue
			}

			t.Run(produced.String()+"_as_"+declared.String(), func(t *testing.T) {
				_, err := Decompress(declared, compressed)
				require.Error(t, err,
					"decompressing %s output as %s must fail, not return garbage", produced, declared)
				require.ErrorIs(t, err, ErrCorruptData)
			})
		}
	}
}

func TestCorruptDataFails(t *testing.T) {
	payload := bytes.Repeat([]byte("checksums catch flipped bits "), 64)

	for _, ct := range allFormats {
		t.Run(ct.String(), func(t *testing.T) {
			compressed, err := Compress(ct, DefaultLevel, payload)
			require.NoError(t, err)

			// Corrupt the magic so header validation trips regardless of
			// where the payload bits land.
			corrupted := make([]byte, len(compressed))
			copy(corrupted, compressed)
			corrupted[0] ^= 0xFF
			corrupted[1] ^= 0xFF

			_, err = Decompress(ct, corrupted)
			require.ErrorIs(t, err, ErrCorruptData)
		})
	}
}

func TestTruncatedDataFails(t *testing.T) {
	payload := bytes.Repeat([]byte("streams cut mid-record must be reported "), 128)

	for _, ct := range allFormats {
		t.Run(ct.String(), func(t *testing.T) {
			compressed, err := Compress(ct, DefaultLevel, payload)
			require.NoError(t, err)
			require.Greater(t, len(compressed), 8)

			_, err = Decompress(ct, compressed[:len(compressed)/2])
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrTruncatedData) || errors.Is(err, ErrCorruptData),
				"truncation must surface a decode failure, got: %v", err)
		})
	}
}

func TestEmptyDecompressInput(t *testing.T) {
	for _, ct := range allFormats {
		_, err := Decompress(ct, nil)
		require.ErrorIs(t, err, ErrTruncatedData, "%s", ct)
	}
}

func TestInputNotModified(t *testing.T) {
	require := require.New(t)

	payload := []byte("input slices are never mutated")
	original := make([]byte, len(payload))
	copy(original, payload)

	for _, ct := range allFormats {
		compressed, err := Compress(ct, DefaultLevel, payload)
		require.NoError(err)
		require.Equal(original, payload)

		_, err = Decompress(ct, compressed)
		require.NoError(err)
	}
}

func TestRegisterCustomCodec(t *testing.T) {
	require := require.New(t)

	const customTag = format.CompressionType(0x80)

	require.NoError(Register(customTag, reverseCodec{}))

	codec, err := GetCodec(customTag)
	require.NoError(err)

	out, err := codec.Compress([]byte("abc"))
	require.NoError(err)
	require.Equal([]byte("cba"), out)

	back, err := codec.Decompress(out)
	require.NoError(err)
	require.Equal([]byte("abc"), back)

	// Builtins stay builtins.
	require.Error(Register(format.CompressionGzip, reverseCodec{}))
}

// reverseCodec is a trivial Codec used to exercise registration.
type reverseCodec struct{}

func (reverseCodec) Compress(data []byte) ([]byte, error)   { return reverse(data), nil }
func (reverseCodec) Decompress(data []byte) ([]byte, error) { return reverse(data), nil }

func reverse(data []byte) []byte {
	out := make([]byte, len(data))
	for i, c := range data {
		out[len(data)-1-i] = c
	}

	return out
}

func TestCodecConcurrentUse(t *testing.T) {
	payload := bytes.Repeat([]byte("concurrent callers share codecs "), 256)

	for _, ct := range allFormats {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		t.Run(ct.String(), func(t *testing.T) {
			t.Parallel()

			done := make(chan error, 8)
			for range 8 {
				go func() {
					for range 25 {
						compressed, err := codec.Compress(payload)
						if err != nil {
							done <- err
							return
						}
						restored, err := codec.Decompress(compressed)
						if err != nil {
							done <- err
							return
						}
						if !bytes.Equal(restored, payload) {
							done <- errors.New("round trip mismatch")
							return
						}
					}
					done <- nil
				}()
			}
			for range 8 {
				require.NoError(t, <-done)
			}
		})
	}
}
