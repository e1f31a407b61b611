/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ciphermode

import (
	"crypto/cipher"
	"fmt"

	"github.com/cryptoweave/cryptoweave/engine"
)

// GCMIVSize is the standard GCM nonce size in bytes.
const GCMIVSize = 12

// GCMTagSize is the GCM authentication tag size in bytes.
const GCMTagSize = 16

// GCM is a Galois/Counter Mode engine. It accumulates input and associated
// data across Update/UpdateAAD calls and runs the authenticated transform in
// Final: encrypting yields ciphertext followed by the tag, decrypting
// verifies the tag and yields the plaintext, or ErrAuthentication with no
// partial plaintext on mismatch. Final consumes the engine; re-Init re-arms
// it.
type GCM struct {
	alg   engine.CipherAlg
	aead  cipher.AEAD
	dir   engine.Direction
	iv    []byte
	aad   []byte
	buf   []byte
	ready bool
}

// NewGCM returns an uninitialized GCM engine over the given block cipher.
func NewGCM(alg engine.CipherAlg) (*GCM, error) {
	// only block ciphers can carry GCM; this also rejects unknown algorithms
	if _, err := engine.NewBlockCipher(alg); err != nil {
		return nil, fmt.Errorf("gcm: %w", err)
	}

	return &GCM{alg: alg}, nil
}

// Init keys the engine for the given direction, discarding prior state.
func (g *GCM) Init(key, iv []byte, dir engine.Direction) error {
	if err := validateIV(iv, GCMIVSize, "gcm"); err != nil {
		return err
	}

	block, err := engine.Default().Block(g.alg, key)
	if err != nil {
		return fmt.Errorf("gcm: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return fmt.Errorf("gcm: %w", err)
	}

	g.aead = aead
	g.dir = dir
	g.iv = append([]byte(nil), iv...)
	g.aad = nil
	g.buf = nil
	g.ready = true

	return nil
}

// UpdateAAD accumulates associated data, authenticated but not encrypted.
func (g *GCM) UpdateAAD(p []byte) error {
	if !g.ready {
		return fmt.Errorf("gcm: %w", engine.ErrNotInitialized)
	}

	g.aad = append(g.aad, p...)

	return nil
}

// Update accumulates input bytes for the final transform.
func (g *GCM) Update(p []byte) error {
	if !g.ready {
		return fmt.Errorf("gcm: %w", engine.ErrNotInitialized)
	}

	g.buf = append(g.buf, p...)

	return nil
}

// Final runs the authenticated transform over all accumulated data and
// consumes the engine.
func (g *GCM) Final() ([]byte, error) {
	if !g.ready {
		return nil, fmt.Errorf("gcm: %w", engine.ErrNotInitialized)
	}

	defer g.Reset()

	if g.dir == engine.Encrypt {
		return g.aead.Seal(nil, g.iv, g.buf, g.aad), nil
	}

	plaintext, err := g.aead.Open(nil, g.iv, g.buf, g.aad)
	if err != nil {
		return nil, fmt.Errorf("gcm: %w", ErrAuthentication)
	}

	return plaintext, nil
}

// OutputSize returns the size of Final's output for an input of n bytes
// when encrypting, so callers can pre-size buffers.
func (g *GCM) OutputSize(n int) int {
	return n + GCMTagSize
}

// TagSize returns the authentication tag size in bytes.
func (g *GCM) TagSize() int {
	return GCMTagSize
}

// Reset returns the engine to the uninitialized state.
func (g *GCM) Reset() {
	g.aead = nil
	g.iv = nil
	g.aad = nil
	g.buf = nil
	g.ready = false
}
