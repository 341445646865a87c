// Package compress provides interchangeable byte-stream compression codecs
// behind a single interface.
//
// # Overview
//
// Four formats are supported, each carrying a recognizable header so that
// decompressing data under the wrong format tag fails deterministically
// instead of returning garbage:
//
//   - Gzip (format.CompressionGzip): DEFLATE in the RFC 1952 container
//   - Zlib (format.CompressionZlib): DEFLATE in the RFC 1950 container
//   - Zstd (format.CompressionZstd): Zstandard frames
//   - LZ4  (format.CompressionLZ4):  LZ4 frame format
//
// # Interfaces
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Levels
//
// Compression levels range -1..9. Level -1 selects the algorithm's default;
// 0..9 map onto each algorithm's native range, with values above the native
// maximum clamped. Levels affect only output size and speed, never
// correctness: for any format f and levels l1, l2, the output of a compress
// at l1 and a compress at l2 both decompress to the original input.
//
//	out, err := compress.Compress(format.CompressionZstd, 9, data)
//	orig, err := compress.Decompress(format.CompressionZstd, out)
//
// # Error Handling
//
// Decompression distinguishes two failure modes, both wrapping a sentinel
// that callers can test with errors.Is:
//
//   - ErrCorruptData: the input is not a valid stream for the declared
//     format (bad magic, header, or checksum)
//   - ErrTruncatedData: the stream ends mid-record
//
// # Custom Codecs
//
// Additional formats can be installed under new tags with Register; the
// builtin tags cannot be overridden.
//
// # Thread Safety
//
// All codecs are safe for concurrent use. Pooled encoder/decoder state
// (zstd encoders and decoders, gzip/zlib writers) is owned by exactly one
// call at a time via sync.Pool.
package compress
