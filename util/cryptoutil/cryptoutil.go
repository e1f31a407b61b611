/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package cryptoutil provides byte-level helpers shared across the
// composition layer: random nonce/salt generation, constant-time equality
// and concatenation.
package cryptoutil

import (
	"crypto/subtle"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/google/tink/go/subtle/random"
	"golang.org/x/crypto/blake2b"
)

// timestampSize is the number of leading nonce bytes carrying the current
// timestamp for uniqueness.
const timestampSize = 8

// RandomBytes returns n cryptographically secure random bytes.
func RandomBytes(n uint32) []byte {
	return random.GetRandomBytes(n)
}

// RandomNonce returns a unique nonce of n bytes (n >= 8). The first 8 bytes
// hold the current unix-nano timestamp big-endian, the remainder is random;
// the prefix guards uniqueness even under a weak random source.
func RandomNonce(n int) ([]byte, error) {
	if n < timestampSize {
		return nil, fmt.Errorf("cryptoutil: nonce length must be at least %d, got %d", timestampSize, n)
	}

	nonce := make([]byte, n)
	binary.BigEndian.PutUint64(nonce, uint64(time.Now().UnixNano()))
	copy(nonce[timestampSize:], random.GetRandomBytes(uint32(n-timestampSize)))

	return nonce, nil
}

// DerivedNonce deterministically derives a nonce of the given size from the
// input parts using blake2b, for protocols where both sides must compute
// the same nonce.
func DerivedNonce(size int, parts ...[]byte) ([]byte, error) {
	if size < 1 || size > blake2b.Size {
		return nil, errors.New("cryptoutil: derived nonce size out of range")
	}

	h, err := blake2b.New(size, nil)
	if err != nil {
		return nil, fmt.Errorf("cryptoutil: %w", err)
	}

	for _, p := range parts {
		if _, err := h.Write(p); err != nil {
			return nil, fmt.Errorf("cryptoutil: %w", err)
		}
	}

	return h.Sum(nil), nil
}

// ConstantTimeEqual compares two byte slices in time independent of their
// contents. Slices of different lengths compare unequal (length is not
// secret).
func ConstantTimeEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Concat returns a fresh buffer holding the concatenation of parts.
func Concat(parts ...[]byte) []byte {
	size := 0
	for _, p := range parts {
		size += len(p)
	}

	out := make([]byte, 0, size)
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}
