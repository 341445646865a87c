// Package digest provides the hash engine: message-digest computation over
// byte ranges for a fixed set of algorithms.
//
// Each algorithm has a fixed digest length, independent of input length:
//
//	MD5     16 bytes
//	SHA1    20 bytes
//	SHA224  28 bytes
//	SHA256  32 bytes
//	SHA384  48 bytes
//	SHA512  64 bytes
//	XXH64    8 bytes (non-cryptographic)
//	BLAKE3  32 bytes
//
// All operations are pure: the same algorithm and input always yield the
// same digest, and nothing is mutated or retained across calls.
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"

	"github.com/bytekit/bytekit/format"
)

// ErrUnknownAlgorithm indicates an unrecognized hash algorithm tag.
var ErrUnknownAlgorithm = errors.New("digest: unknown hash algorithm")

type algorithm struct {
	size    int
	factory func() hash.Hash
}

// algorithms is the closed registry of supported digest algorithms.
var algorithms = map[format.HashType]algorithm{
	format.HashMD5:    {size: md5.Size, factory: md5.New},
	format.HashSHA1:   {size: sha1.Size, factory: sha1.New},
	format.HashSHA224: {size: sha256.Size224, factory: sha256.New224},
	format.HashSHA256: {size: sha256.Size, factory: sha256.New},
	format.HashSHA384: {size: sha512.Size384, factory: sha512.New384},
	format.HashSHA512: {size: sha512.Size, factory: sha512.New},
	format.HashXXH64:  {size: 8, factory: func() hash.Hash { return xxhash.New() }},
	format.HashBLAKE3: {size: 32, factory: func() hash.Hash { return blake3.New() }},
}

// Sum computes the digest of data under the given algorithm.
//
// Parameters:
//   - hashType: Algorithm tag
//   - data: Input bytes
//
// Returns:
//   - []byte: Digest of the algorithm's fixed length, newly allocated
//   - error: ErrUnknownAlgorithm for an unrecognized tag
func Sum(hashType format.HashType, data []byte) ([]byte, error) {
	algo, ok := algorithms[hashType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, hashType)
	}

	h := algo.factory()
	h.Write(data) //nolint: errcheck // hash.Hash.Write never fails

	return h.Sum(nil), nil
}

// SumString computes the digest of the bytes of s.
func SumString(hashType format.HashType, s string) ([]byte, error) {
	return Sum(hashType, []byte(s))
}

// Size returns the fixed digest length of the given algorithm in bytes.
func Size(hashType format.HashType) (int, error) {
	algo, ok := algorithms[hashType]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, hashType)
	}

	return algo.size, nil
}

// New returns a fresh streaming hash.Hash for the given algorithm, for
// callers that feed input incrementally instead of in one call.
func New(hashType format.HashType) (hash.Hash, error) {
	algo, ok := algorithms[hashType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, hashType)
	}

	return algo.factory(), nil
}
