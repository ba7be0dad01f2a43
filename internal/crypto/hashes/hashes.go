// Package hashes provides the named hash functions used to derive
// Fiat-Shamir challenges.
package hashes

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"
	"sort"

	"github.com/dchest/blake2b"
	"golang.org/x/crypto/sha3"
)

// ErrUnsupportedHash is returned by ByName for unknown names.
var ErrUnsupportedHash = errors.New("hashes: unsupported hash")

// Registry names of the built-in hash functions.
const (
	SHA256Name     = "sha256"
	SHA3256Name    = "sha3-256"
	BLAKE2b256Name = "blake2b-256"
)

// Hash is a fixed-output hash function with incremental feeding.
type Hash struct {
	name string
	size int
	fn   func() hash.Hash
}

// New wraps fn as a named Hash. The output size is taken from fn.
func New(name string, fn func() hash.Hash) Hash {
	return Hash{name: name, size: fn().Size(), fn: fn}
}

// Name returns the registry name of the hash.
func (h Hash) Name() string { return h.name }

// Size returns the digest length in bytes.
func (h Hash) Size() int { return h.size }

// New returns a fresh hash state.
func (h Hash) New() hash.Hash { return h.fn() }

// IsZero reports whether h is the zero value.
func (h Hash) IsZero() bool { return h.fn == nil }

var registry = map[string]Hash{
	SHA256Name:     New(SHA256Name, sha256.New),
	SHA3256Name:    New(SHA3256Name, sha3.New256),
	BLAKE2b256Name: New(BLAKE2b256Name, blake2b.New256),
}

// SHA256 returns the default challenge hash.
func SHA256() Hash { return registry[SHA256Name] }

// ByName returns the hash registered under name.
func ByName(name string) (Hash, error) {
	h, ok := registry[name]
	if !ok {
		return Hash{}, fmt.Errorf("%w: %q", ErrUnsupportedHash, name)
	}
	return h, nil
}

// Names returns the registered hash names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
