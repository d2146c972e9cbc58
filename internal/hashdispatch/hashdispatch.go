// Package hashdispatch projects the closed set of hash algorithms this
// module supports onto a single set of operations, so the HMAC engine built
// on top of it is written once instead of once per algorithm.
package hashdispatch

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"golang.org/x/crypto/sha3"
)

// Algorithm identifies one of the supported hash variants.
type Algorithm int

const (
	MD5 Algorithm = iota
	SHA1
	SHA224
	SHA256
	SHA384
	SHA512
	SHA3_224
	SHA3_256
	SHA3_384
	SHA3_512
)

func (a Algorithm) String() string {
	if s, ok := names[a]; ok {
		return s
	}
	return "unknown"
}

var names = map[Algorithm]string{
	MD5:      "md5",
	SHA1:     "sha1",
	SHA224:   "sha224",
	SHA256:   "sha256",
	SHA384:   "sha384",
	SHA512:   "sha512",
	SHA3_224: "sha3-224",
	SHA3_256: "sha3-256",
	SHA3_384: "sha3-384",
	SHA3_512: "sha3-512",
}

// Algorithms lists every supported variant, in declaration order, for
// callers (CLI, benchmark) that want to iterate the closed set.
var Algorithms = []Algorithm{
	MD5, SHA1, SHA224, SHA256, SHA384, SHA512,
	SHA3_224, SHA3_256, SHA3_384, SHA3_512,
}

// MaxBlockSize is the largest block size across all supported variants
// (SHA3-224's 144-byte block).
const MaxBlockSize = 144

// MaxDigestSize is the largest digest size across all supported variants
// (SHA-512 and SHA3-512's 64-byte digest).
const MaxDigestSize = 64

type variant struct {
	blockSize  int
	digestSize int
	newHash    func() hash.Hash
}

var table = map[Algorithm]variant{
	MD5:      {64, 16, md5.New},
	SHA1:     {64, 20, sha1.New},
	SHA224:   {64, 28, sha256.New224},
	SHA256:   {64, 32, sha256.New},
	SHA384:   {128, 48, sha512.New384},
	SHA512:   {128, 64, sha512.New},
	SHA3_224: {144, 28, sha3.New224},
	SHA3_256: {136, 32, sha3.New256},
	SHA3_384: {104, 48, sha3.New384},
	SHA3_512: {72, 64, sha3.New512},
}

// ErrUnsupportedAlgorithm is returned whenever an Algorithm value isn't one
// of the variants built into the table above.
var ErrUnsupportedAlgorithm = fmt.Errorf("hashdispatch: unsupported algorithm")

func lookup(alg Algorithm) (variant, error) {
	v, ok := table[alg]
	if !ok {
		return variant{}, ErrUnsupportedAlgorithm
	}
	return v, nil
}

// BlockSize returns the compression-function input block length, in bytes,
// for alg.
func BlockSize(alg Algorithm) (int, error) {
	v, err := lookup(alg)
	if err != nil {
		return 0, err
	}
	return v.blockSize, nil
}

// DigestSize returns the output length, in bytes, for alg.
func DigestSize(alg Algorithm) (int, error) {
	v, err := lookup(alg)
	if err != nil {
		return 0, err
	}
	return v.digestSize, nil
}

// State is an opaque, per-algorithm streaming hash state. It is owned
// exclusively by whichever HMAC instance created it via Init.
type State interface {
	// Update absorbs a byte slice of any length, including zero.
	Update(p []byte) error
	// Final produces the digest into out, which must be exactly
	// DigestSize(alg) bytes long. out is left untouched on failure.
	Final(out []byte) error
	// Free releases the state. It is idempotent.
	Free()
}

type state struct {
	h hash.Hash
}

func (s *state) Update(p []byte) error {
	if s.h == nil {
		return fmt.Errorf("hashdispatch: update on freed state")
	}
	// hash.Hash.Write never returns a non-nil error for the hashes in
	// this table; the error return exists to satisfy io.Writer.
	if _, err := s.h.Write(p); err != nil {
		return fmt.Errorf("hashdispatch: update: %w", err)
	}
	return nil
}

func (s *state) Final(out []byte) error {
	if s.h == nil {
		return fmt.Errorf("hashdispatch: final on freed state")
	}
	sum := s.h.Sum(nil)
	if len(out) != len(sum) {
		return fmt.Errorf("hashdispatch: final: output buffer has wrong length")
	}
	copy(out, sum)
	return nil
}

func (s *state) Free() {
	s.h = nil
}

// Init allocates and initializes a fresh hash state for alg.
func Init(alg Algorithm) (State, error) {
	v, err := lookup(alg)
	if err != nil {
		return nil, err
	}
	return &state{h: v.newHash()}, nil
}
