/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package ciphermode composes block-cipher modes of operation (CBC, CTR,
// OFB, GCM) on top of the raw cipher engines in package engine.
//
// Every mode engine follows the same state machine: Uninitialized until
// Init, Ready afterwards; processing keeps the engine Ready and advances
// its chaining state; Reset returns it to Uninitialized. Re-invoking Init
// at any time silently discards prior state and re-arms the engine with new
// parameters - explicit reinitialization is a supported operation, not an
// error.
//
// Engines are single-owner mutable state; independent instances may be used
// in parallel.
package ciphermode

import (
	"errors"
	"fmt"

	"github.com/cryptoweave/cryptoweave/engine"
)

// ErrAuthentication is returned when GCM tag verification fails during
// decryption. No partial plaintext is ever returned alongside it.
var ErrAuthentication = errors.New("authentication failure")

// validateIV enforces the mode's fixed IV size before touching key material.
func validateIV(iv []byte, want int, mode string) error {
	if len(iv) != want {
		return fmt.Errorf("%s: iv must be %d bytes, got %d: %w", mode, want, len(iv), engine.ErrInvalidKeyMaterial)
	}

	return nil
}

// keystream is the shared machinery for keystream-driven modes (CTR, OFB):
// a block generator plus a buffer of unconsumed keystream bytes, so inputs
// of arbitrary length can be processed across calls without waste.
type keystream struct {
	next func() ([]byte, error)
	buf  []byte
}

// xor consumes keystream to transform in, refilling from next as needed.
func (k *keystream) xor(in []byte) ([]byte, error) {
	out := make([]byte, len(in))

	for i := 0; i < len(in); {
		if len(k.buf) == 0 {
			block, err := k.next()
			if err != nil {
				return nil, err
			}

			k.buf = block
		}

		n := len(in) - i
		if n > len(k.buf) {
			n = len(k.buf)
		}

		for j := 0; j < n; j++ {
			out[i+j] = in[i+j] ^ k.buf[j]
		}

		k.buf = k.buf[n:]
		i += n
	}

	return out, nil
}
