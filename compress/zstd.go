package compress

// ZstdCodec implements Zstandard compression.
//
// Two backends are available, mirroring the pure-Go / cgo split:
//   - Default: klauspost/compress/zstd (pure Go)
//   - Build tag "gozstd": valyala/gozstd (cgo bindings to libzstd)
//
// Both produce standard zstd frames with magic number and content checksum,
// so the backends are wire-compatible with each other and with external
// zstd tooling.
type ZstdCodec struct {
	level int
}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a zstd codec at the given level (-1 for default).
//
// Levels 0..9 are mapped onto the backend's native level range.
func NewZstdCodec(level int) *ZstdCodec {
	if level > MaxLevel {
		level = MaxLevel
	}

	return &ZstdCodec{level: level}
}
