package compress

import (
	"errors"
	"fmt"
	"io"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/bytekit/bytekit/format"
	"github.com/bytekit/bytekit/internal/options"
)

// Sentinel errors returned by the compression engine. All returned errors
// wrap one of these, so callers can classify failures with errors.Is.
var (
	// ErrUnknownFormat indicates an unrecognized compression format tag.
	ErrUnknownFormat = errors.New("compress: unknown compression format")

	// ErrInvalidLevel indicates a compression level outside -1..9.
	ErrInvalidLevel = errors.New("compress: compression level out of range")

	// ErrCorruptData indicates input that is not valid for the declared
	// format: a bad magic number, header, or checksum.
	ErrCorruptData = errors.New("compress: corrupt compressed data")

	// ErrTruncatedData indicates a compressed stream that ends mid-record.
	ErrTruncatedData = errors.New("compress: truncated compressed data")
)

const (
	// DefaultLevel selects each algorithm's default compression level.
	DefaultLevel = -1
	// MaxLevel is the highest accepted compression level. Levels above an
	// algorithm's native maximum are clamped to that maximum.
	MaxLevel = 9
)

// Compressor compresses byte ranges.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
//   - Internal buffers may be reused for efficiency
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores byte ranges produced by a matching Compressor.
//
// Decompression validates the data format: it fails with ErrCorruptData if
// the input was not produced by the declared format (all four supported
// formats carry a recognizable header) and with ErrTruncatedData if the
// stream ends mid-record.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression for one format.
//
// Codec implementations are safe for concurrent use; any pooled internal
// state follows an ownership-per-call discipline.
type Codec interface {
	Compressor
	Decompressor
}

type config struct {
	level int
}

// Option configures codec construction.
type Option = options.Option[*config]

// WithLevel sets the compression level.
//
// Levels range -1..9: -1 selects the algorithm's default, 0..9 map onto the
// algorithm's native range with values above its supported maximum clamped.
// Anything outside -1..9 fails with ErrInvalidLevel.
func WithLevel(level int) Option {
	return options.New(func(c *config) error {
		if level < DefaultLevel || level > MaxLevel {
			return fmt.Errorf("%w: %d", ErrInvalidLevel, level)
		}
		c.level = level

		return nil
	})
}

// New creates a Codec for the given compression format.
//
// Parameters:
//   - compressionType: Format tag (Gzip, Zlib, Zstd, or LZ4)
//   - opts: Optional configuration (WithLevel)
//
// Returns:
//   - Codec: Codec instance for the format
//   - error: ErrUnknownFormat or ErrInvalidLevel
func New(compressionType format.CompressionType, opts ...Option) (Codec, error) {
	cfg := &config{level: DefaultLevel}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	switch compressionType {
	case format.CompressionGzip:
		return NewGzipCodec(cfg.level), nil
	case format.CompressionZlib:
		return NewZlibCodec(cfg.level), nil
	case format.CompressionZstd:
		return NewZstdCodec(cfg.level), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(cfg.level), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, compressionType)
	}
}

// builtinCodecs holds one default-level codec per supported format.
// Decompression is level-independent, so these also back Decompress.
var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionGzip: NewGzipCodec(DefaultLevel),
	format.CompressionZlib: NewZlibCodec(DefaultLevel),
	format.CompressionZstd: NewZstdCodec(DefaultLevel),
	format.CompressionLZ4:  NewLZ4Codec(DefaultLevel),
}

// registeredCodecs holds caller-registered codecs for tags outside the
// builtin set. Concurrent map so Register can race with lookups.
var registeredCodecs = xsync.NewMap[format.CompressionType, Codec]()

// Register installs a custom Codec under the given tag.
//
// Builtin tags cannot be overridden; registering one fails.
func Register(compressionType format.CompressionType, codec Codec) error {
	if _, ok := builtinCodecs[compressionType]; ok {
		return fmt.Errorf("compress: cannot override builtin codec %s", compressionType)
	}
	registeredCodecs.Store(compressionType, codec)

	return nil
}

// GetCodec retrieves the Codec for the specified compression type,
// consulting builtins first and then registered codecs.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}
	if codec, ok := registeredCodecs.Load(compressionType); ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, compressionType)
}

// Compress compresses data with the given format and level.
//
// Level policy: -1 selects the algorithm default; 0..9 are clamped to the
// algorithm's native maximum; anything else fails with ErrInvalidLevel.
func Compress(compressionType format.CompressionType, level int, data []byte) ([]byte, error) {
	if level == DefaultLevel {
		codec, err := GetCodec(compressionType)
		if err != nil {
			return nil, err
		}

		return codec.Compress(data)
	}

	codec, err := New(compressionType, WithLevel(level))
	if err != nil {
		return nil, err
	}

	return codec.Compress(data)
}

// Decompress restores data previously compressed with the given format.
//
// The level used at compression time does not matter; any level of the same
// format round-trips byte-for-byte.
func Decompress(compressionType format.CompressionType, data []byte) ([]byte, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, err
	}

	return codec.Decompress(data)
}

// classifyError maps a decoder error onto the engine's sentinel errors:
// premature end of stream becomes ErrTruncatedData, everything else
// ErrCorruptData.
func classifyError(compressionType format.CompressionType, err error) error {
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return fmt.Errorf("%s decompression failed: %w: %s", compressionType, ErrTruncatedData, err)
	}

	return fmt.Errorf("%s decompression failed: %w: %s", compressionType, ErrCorruptData, err)
}

// errEmptyInput reports an empty decompression input, which no supported
// format accepts: every format's frame starts with a header.
func errEmptyInput(compressionType format.CompressionType) error {
	return fmt.Errorf("%s decompression failed: %w: empty input", compressionType, ErrTruncatedData)
}
