// Package format defines the symbolic format tags shared by all bytekit
// engines: compression formats, text encodings, hash algorithms, and output
// container kinds.
//
// Each family is a closed uint8 enumeration with a String() method. Engines
// resolve a tag to a concrete implementation at call time; an unknown tag is
// reported by the engine that received it, not by this package.
package format

type (
	// CompressionType selects a byte-stream compression format.
	CompressionType uint8
	// EncodingType selects a text encoding format.
	EncodingType uint8
	// HashType selects a message-digest algorithm.
	HashType uint8
	// ContainerType selects the output container shape of a facade
	// operation: a Buffer or a plain string.
	ContainerType uint8
)

const (
	CompressionGzip CompressionType = 0x1 // CompressionGzip represents the gzip DEFLATE container.
	CompressionZlib CompressionType = 0x2 // CompressionZlib represents the zlib DEFLATE container.
	CompressionZstd CompressionType = 0x3 // CompressionZstd represents Zstandard compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents the LZ4 frame format.

	EncodingHex    EncodingType = 0x1 // EncodingHex represents lowercase hexadecimal encoding.
	EncodingBase64 EncodingType = 0x2 // EncodingBase64 represents RFC 4648 standard base64 with padding.

	HashMD5    HashType = 0x1 // HashMD5 produces a 16-byte digest.
	HashSHA1   HashType = 0x2 // HashSHA1 produces a 20-byte digest.
	HashSHA224 HashType = 0x3 // HashSHA224 produces a 28-byte digest.
	HashSHA256 HashType = 0x4 // HashSHA256 produces a 32-byte digest.
	HashSHA384 HashType = 0x5 // HashSHA384 produces a 48-byte digest.
	HashSHA512 HashType = 0x6 // HashSHA512 produces a 64-byte digest.
	HashXXH64  HashType = 0x7 // HashXXH64 produces an 8-byte digest.
	HashBLAKE3 HashType = 0x8 // HashBLAKE3 produces a 32-byte digest.

	ContainerBuffer ContainerType = 0x1 // ContainerBuffer materializes output as a Buffer.
	ContainerString ContainerType = 0x2 // ContainerString materializes output as a string.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionGzip:
		return "Gzip"
	case CompressionZlib:
		return "Zlib"
	case CompressionZstd:
		return "Zstd"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

func (e EncodingType) String() string {
	switch e {
	case EncodingHex:
		return "Hex"
	case EncodingBase64:
		return "Base64"
	default:
		return "Unknown"
	}
}

func (h HashType) String() string {
	switch h {
	case HashMD5:
		return "MD5"
	case HashSHA1:
		return "SHA1"
	case HashSHA224:
		return "SHA224"
	case HashSHA256:
		return "SHA256"
	case HashSHA384:
		return "SHA384"
	case HashSHA512:
		return "SHA512"
	case HashXXH64:
		return "XXH64"
	case HashBLAKE3:
		return "BLAKE3"
	default:
		return "Unknown"
	}
}

func (c ContainerType) String() string {
	switch c {
	case ContainerBuffer:
		return "Buffer"
	case ContainerString:
		return "String"
	default:
		return "Unknown"
	}
}
