package hashing

import (
	"crypto/md5"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
)

// Algorithm identifies a supported digest algorithm.
type Algorithm string

const (
	// MD5 is the legacy digest required by RFC 2617 challenges.
	MD5 Algorithm = "MD5"
	// SHA256 is the SHA-256 digest.
	SHA256 Algorithm = "SHA-256"
	// SHA512 is the SHA-512 digest.
	SHA512 Algorithm = "SHA-512"
)

// Provider computes lowercase hex digests over byte sequences.
type Provider struct {
	ctors map[Algorithm]func() hash.Hash
}

// NewProvider returns a provider covering all supported algorithms.
func NewProvider() *Provider {
	return &Provider{
		ctors: map[Algorithm]func() hash.Hash{
			MD5:    md5.New,
			SHA256: sha256.New,
			SHA512: sha512.New,
		},
	}
}

// Hex returns the lowercase hex digest of data under algo.
func (p *Provider) Hex(algo Algorithm, data []byte) (string, error) {
	ctor, ok := p.ctors[algo]
	if !ok {
		return "", fmt.Errorf("hashing: unsupported algorithm %q", algo)
	}
	h := ctor()
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// HexString is Hex over a string input.
func (p *Provider) HexString(algo Algorithm, s string) (string, error) {
	return p.Hex(algo, []byte(s))
}

var defaultProvider = NewProvider()

// Hex computes a digest with the package-level default provider.
func Hex(algo Algorithm, data []byte) (string, error) {
	return defaultProvider.Hex(algo, data)
}
