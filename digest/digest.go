// Package digest provides the hash collaborators that seed the identicon
// pipeline.
//
// The pipeline is agnostic to the algorithm: anything deterministic that
// yields a fixed-length byte sequence of at least three bytes works. MD5 is
// the reference algorithm (16 bytes, matching the published test vectors);
// BLAKE2b is offered as a modern 128-bit alternative.
package digest

import (
	"crypto/md5"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Hasher turns an input seed into a fixed-length digest.
//
// Implementations must be deterministic and total: the same input always
// yields the same digest, and every input (including the empty string)
// hashes cleanly. Sum must return a fresh slice on every call.
type Hasher interface {
	Sum(input string) []byte
	Name() string
	Size() int
}

// MD5 returns the reference 16-byte hasher.
func MD5() Hasher { return md5Hasher{} }

type md5Hasher struct{}

func (md5Hasher) Sum(input string) []byte {
	sum := md5.Sum([]byte(input))
	return sum[:]
}

func (md5Hasher) Name() string { return "md5" }
func (md5Hasher) Size() int    { return md5.Size }

const blake2bSize = 16

// BLAKE2b returns a 16-byte BLAKE2b hasher.
func BLAKE2b() Hasher { return blake2bHasher{} }

type blake2bHasher struct{}

func (blake2bHasher) Sum(input string) []byte {
	// blake2b.New fails only for oversized keys; unkeyed it cannot error.
	h, _ := blake2b.New(blake2bSize, nil)
	_, _ = h.Write([]byte(input))
	return h.Sum(nil)
}

func (blake2bHasher) Name() string { return "blake2b" }
func (blake2bHasher) Size() int    { return blake2bSize }

// Fixed returns a Hasher that ignores its input and always produces sum.
// It exists so pipeline stages can be exercised against known digests
// without depending on a real hash implementation.
func Fixed(sum []byte) Hasher {
	return fixedHasher(append([]byte(nil), sum...))
}

type fixedHasher []byte

func (f fixedHasher) Sum(string) []byte { return append([]byte(nil), f...) }
func (fixedHasher) Name() string        { return "fixed" }
func (f fixedHasher) Size() int         { return len(f) }

// ByName resolves a Hasher from its flag name. An empty name selects the
// reference algorithm.
func ByName(name string) (Hasher, error) {
	switch name {
	case "", "md5":
		return MD5(), nil
	case "blake2b":
		return BLAKE2b(), nil
	default:
		return nil, fmt.Errorf("unknown hash %q (supported: md5, blake2b)", name)
	}
}
