// Package digest supplies hex fingerprints for the bishop walk. The walk
// itself is hash-agnostic; this is the upstream collaborator that maps
// input bytes to a digest by algorithm name.
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"sort"

	"golang.org/x/crypto/sha3"
)

var registry = map[string]func() hash.Hash{
	"md5":      md5.New,
	"sha1":     sha1.New,
	"sha256":   sha256.New,
	"sha512":   sha512.New,
	"sha3-256": sha3.New256,
	"sha3-512": sha3.New512,
}

// New returns a fresh hash for the named algorithm.
func New(name string) (hash.Hash, error) {
	mk, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("digest: unknown algorithm %q (available: %v)", name, Names())
	}
	return mk(), nil
}

// Sum hex-encodes the named algorithm's digest of data, ready to feed
// the walk decoder.
func Sum(name string, data []byte) (string, error) {
	h, err := New(name)
	if err != nil {
		return "", err
	}
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Names lists the registered algorithms in stable order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
