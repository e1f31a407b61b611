/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package engine

import (
	"fmt"
	"hash"
)

// DigestEngine is the provider-backed Digest implementation.
type DigestEngine struct {
	h         hash.Hash
	alg       DigestAlg
	finalized bool
}

// NewDigest returns a streaming digest engine for the given algorithm.
// Unknown algorithms fail here, before any data is processed.
func NewDigest(alg DigestAlg) (*DigestEngine, error) {
	return NewDigestWithSize(alg, 0)
}

// NewDigestWithSize returns a digest engine with an explicit output size for
// variable-output algorithms (Blake2b). size must be 0 for fixed-output
// algorithms.
func NewDigestWithSize(alg DigestAlg, size int) (*DigestEngine, error) {
	newHash, err := Default().Hash(alg, size)
	if err != nil {
		return nil, fmt.Errorf("digest: %w", err)
	}

	return &DigestEngine{h: newHash(), alg: alg}, nil
}

// Update feeds data into the engine. Updating a finalized engine without a
// prior Reset is an error.
func (d *DigestEngine) Update(p []byte) error {
	if d.finalized {
		return fmt.Errorf("digest %s: update after finalize: %w", d.alg, ErrNotInitialized)
	}

	d.h.Write(p) //nolint:errcheck // hash.Hash.Write never returns an error

	return nil
}

// Write implements io.Writer over Update so sources and io.Copy can feed the
// engine directly.
func (d *DigestEngine) Write(p []byte) (int, error) {
	if err := d.Update(p); err != nil {
		return 0, err
	}

	return len(p), nil
}

// Digest finalizes the engine and returns the hash value. The engine is
// consumed until Reset is called.
func (d *DigestEngine) Digest() []byte {
	d.finalized = true

	return d.h.Sum(nil)
}

// Reset returns the engine to its initial ready state.
func (d *DigestEngine) Reset() {
	d.h.Reset()
	d.finalized = false
}

// Size returns the digest length in bytes.
func (d *DigestEngine) Size() int {
	return d.h.Size()
}

// BlockSize returns the underlying hash block size in bytes.
func (d *DigestEngine) BlockSize() int {
	return d.h.BlockSize()
}
