package xform

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Hasher performs deterministic one-way hashing.
type Hasher interface {
	// Hash returns the lowercase hex digest of plaintext.
	// The same plaintext must always produce the same digest.
	Hash(plaintext []byte) (string, error)
}

// sha256Hasher implements SHA-256 hashing.
type sha256Hasher struct{}

// SHA256Hasher returns a SHA-256 hasher.
// The result is a hex-encoded 64-character string.
func SHA256Hasher() Hasher {
	return &sha256Hasher{}
}

func (h *sha256Hasher) Hash(plaintext []byte) (string, error) {
	sum := sha256.Sum256(plaintext)
	return hex.EncodeToString(sum[:]), nil
}

// sha512Hasher implements SHA-512 hashing.
type sha512Hasher struct{}

// SHA512Hasher returns a SHA-512 hasher.
// The result is a hex-encoded 128-character string.
func SHA512Hasher() Hasher {
	return &sha512Hasher{}
}

func (h *sha512Hasher) Hash(plaintext []byte) (string, error) {
	sum := sha512.Sum512(plaintext)
	return hex.EncodeToString(sum[:]), nil
}

type blake2bHasher struct{}

// BLAKE2bHasher returns an unkeyed BLAKE2b-256 hasher.
// The result is a hex-encoded 64-character string.
func BLAKE2bHasher() Hasher {
	return &blake2bHasher{}
}

func (h *blake2bHasher) Hash(plaintext []byte) (string, error) {
	sum := blake2b.Sum256(plaintext)
	return hex.EncodeToString(sum[:]), nil
}

type sha3Hasher struct{}

// SHA3Hasher returns a SHA3-256 hasher.
// The result is a hex-encoded 64-character string.
func SHA3Hasher() Hasher {
	return &sha3Hasher{}
}

func (h *sha3Hasher) Hash(plaintext []byte) (string, error) {
	sum := sha3.Sum256(plaintext)
	return hex.EncodeToString(sum[:]), nil
}

// builtinHashers returns the default hasher registry.
func builtinHashers() map[HashAlgo]Hasher {
	return map[HashAlgo]Hasher{
		HashSHA256:  SHA256Hasher(),
		HashSHA512:  SHA512Hasher(),
		HashBLAKE2b: BLAKE2bHasher(),
		HashSHA3:    SHA3Hasher(),
	}
}
