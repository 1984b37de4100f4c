// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

package checksum

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"

	"github.com/zeebo/blake3"
)

// Algorithm names a digest function.
type Algorithm string

const (
	SHA1   Algorithm = "sha1"
	SHA256 Algorithm = "sha256"
	BLAKE3 Algorithm = "blake3"
)

// Algorithms lists the supported algorithms in preference order.
var Algorithms = []Algorithm{SHA1, SHA256, BLAKE3}

// ParseAlgorithm accepts an algorithm name case-insensitively, with or
// without a dash ("SHA-256" and "sha256" are the same).
func ParseAlgorithm(name string) (Algorithm, error) {
	normalized := Algorithm(strings.ReplaceAll(strings.ToLower(name), "-", ""))
	for _, algorithm := range Algorithms {
		if normalized == algorithm {
			return algorithm, nil
		}
	}
	return "", fmt.Errorf("unknown checksum algorithm %q (supported: sha1, sha256, blake3)", name)
}

// New returns a fresh hash.Hash for the algorithm.
func (a Algorithm) New() hash.Hash {
	switch a {
	case SHA256:
		return sha256.New()
	case BLAKE3:
		return blake3.New()
	default:
		return sha1.New()
	}
}

// Size is the digest length in bytes.
func (a Algorithm) Size() int {
	switch a {
	case SHA256, BLAKE3:
		return 32
	default:
		return sha1.Size
	}
}

// HexLength is the length of the hex-encoded digest.
func (a Algorithm) HexLength() int {
	return hex.EncodedLen(a.Size())
}

// Command returns the external program and leading arguments that
// print this algorithm's digest for a path appended as the final
// argument. Output format is "<hex>  <path>" for all of them.
func (a Algorithm) Command() (string, []string) {
	switch a {
	case SHA256:
		return "shasum", []string{"-a", "256"}
	case BLAKE3:
		return "b3sum", nil
	default:
		return "shasum", nil
	}
}

func (a Algorithm) String() string {
	return string(a)
}

// ParseDigest validates a hex digest for this algorithm and returns it
// lowercased.
func (a Algorithm) ParseDigest(hexString string) (string, error) {
	if length := len(hexString); length != a.HexLength() {
		return "", fmt.Errorf("%s digest is %d hex characters, want %d", a, length, a.HexLength())
	}
	if _, err := hex.DecodeString(hexString); err != nil {
		return "", fmt.Errorf("parsing %s digest: %w", a, err)
	}
	return strings.ToLower(hexString), nil
}
