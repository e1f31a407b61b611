/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package engine provides the uniform primitive engine abstraction the
// composition layer is built on: digest, MAC and raw cipher engines with an
// init/update/finalize lifecycle, parameterized over a pluggable Provider.
//
// Engines are mutable, single-owner state. An engine instance must not be
// used concurrently from multiple goroutines; independent instances may run
// fully in parallel.
package engine

import "io"

// Digest is a streaming hash engine. After Digest() is called the engine is
// consumed; further updates require Reset().
type Digest interface {
	io.Writer

	// Update feeds data into the engine.
	Update(p []byte) error

	// Digest finalizes the engine and returns the hash value.
	Digest() []byte

	// Reset returns the engine to its initial ready state.
	Reset()

	// Size returns the digest length in bytes.
	Size() int
}

// MAC is a streaming keyed message authentication engine. After Final() the
// engine is consumed; further updates require Reset() or re-Init.
type MAC interface {
	io.Writer

	// Init (re)keys the engine, discarding any accumulated state.
	Init(key []byte) error

	// Update feeds data into the engine.
	Update(p []byte) error

	// Final finalizes the engine and returns the authentication tag.
	Final() []byte

	// Reset clears accumulated data, keeping the key.
	Reset()

	// Size returns the tag length in bytes.
	Size() int
}

// BlockCipher is a raw block cipher engine operating on single blocks with
// no mode of operation. Modes are composed on top by package ciphermode.
type BlockCipher interface {
	// Init keys the engine for the given direction. Calling Init at any time
	// discards prior state; this is a supported operation. The iv parameter
	// is ignored by raw block primitives and exists for interface uniformity
	// with stream primitives.
	Init(key, iv []byte, dir Direction) error

	// ProcessBlock transforms exactly one block.
	ProcessBlock(in []byte) ([]byte, error)

	// Reset returns the engine to the uninitialized state.
	Reset()

	// BlockSize returns the cipher block size in bytes.
	BlockSize() int
}

// StreamCipher is a raw stream cipher engine.
type StreamCipher interface {
	// Init keys the engine. Direction is accepted for interface uniformity;
	// stream ciphers encrypt and decrypt identically.
	Init(key, iv []byte, dir Direction) error

	// ProcessBytes transforms the next len(in) bytes of the keystream.
	ProcessBytes(in []byte) ([]byte, error)

	// Reset returns the engine to the uninitialized state.
	Reset()
}
