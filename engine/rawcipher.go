/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package engine

import (
	"crypto/cipher"
	"fmt"
)

// AESBlockEngine is a raw AES block engine with no mode of operation.
// Modes (CBC, CTR, OFB, GCM) are composed on top by package ciphermode.
type AESBlockEngine struct {
	alg   CipherAlg
	block cipher.Block
	dir   Direction
}

// NewBlockCipher returns an uninitialized raw block cipher engine for the
// given algorithm. The algorithm is validated eagerly; the key is supplied
// via Init.
func NewBlockCipher(alg CipherAlg) (*AESBlockEngine, error) {
	if _, ok := aesKeySizes[alg]; !ok {
		return nil, fmt.Errorf("rawcipher: block cipher %q: %w", alg, ErrUnsupportedAlgorithm)
	}

	return &AESBlockEngine{alg: alg}, nil
}

// Init keys the engine for the given direction, discarding any prior state.
// The iv parameter is ignored for raw block primitives.
func (e *AESBlockEngine) Init(key, _ []byte, dir Direction) error {
	block, err := Default().Block(e.alg, key)
	if err != nil {
		return fmt.Errorf("rawcipher: %w", err)
	}

	e.block = block
	e.dir = dir

	return nil
}

// ProcessBlock transforms exactly one block.
func (e *AESBlockEngine) ProcessBlock(in []byte) ([]byte, error) {
	if e.block == nil {
		return nil, fmt.Errorf("rawcipher: %w", ErrNotInitialized)
	}

	if len(in) != e.block.BlockSize() {
		return nil, fmt.Errorf("rawcipher: input must be exactly %d bytes, got %d", e.block.BlockSize(), len(in))
	}

	out := make([]byte, len(in))

	if e.dir == Encrypt {
		e.block.Encrypt(out, in)
	} else {
		e.block.Decrypt(out, in)
	}

	return out, nil
}

// Reset returns the engine to the uninitialized state.
func (e *AESBlockEngine) Reset() {
	e.block = nil
}

// BlockSize returns the cipher block size in bytes.
func (e *AESBlockEngine) BlockSize() int {
	const aesBlockSize = 16

	return aesBlockSize
}

// ChaCha20Engine is a raw ChaCha20 stream engine.
type ChaCha20Engine struct {
	stream cipher.Stream
}

// NewStreamCipher returns an uninitialized raw stream cipher engine for the
// given algorithm.
func NewStreamCipher(alg CipherAlg) (*ChaCha20Engine, error) {
	if alg != ChaCha20 {
		return nil, fmt.Errorf("rawcipher: stream cipher %q: %w", alg, ErrUnsupportedAlgorithm)
	}

	return &ChaCha20Engine{}, nil
}

// Init keys the engine with key and nonce, discarding any prior state.
// Stream ciphers encrypt and decrypt identically, so direction is accepted
// only for interface uniformity.
func (e *ChaCha20Engine) Init(key, iv []byte, _ Direction) error {
	stream, err := Default().Stream(ChaCha20, key, iv)
	if err != nil {
		return fmt.Errorf("rawcipher: %w", err)
	}

	e.stream = stream

	return nil
}

// ProcessBytes transforms the next len(in) bytes of the keystream.
func (e *ChaCha20Engine) ProcessBytes(in []byte) ([]byte, error) {
	if e.stream == nil {
		return nil, fmt.Errorf("rawcipher: %w", ErrNotInitialized)
	}

	out := make([]byte, len(in))
	e.stream.XORKeyStream(out, in)

	return out, nil
}

// Reset returns the engine to the uninitialized state.
func (e *ChaCha20Engine) Reset() {
	e.stream = nil
}
