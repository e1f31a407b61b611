/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package engine

import (
	"crypto/hmac"
	"fmt"
	"hash"
)

// HMACEngine is the provider-backed MAC implementation using HMAC over a
// configurable digest.
type HMACEngine struct {
	newHash   func() hash.Hash
	mac       hash.Hash
	alg       DigestAlg
	finalized bool
}

// NewHMAC returns a keyed HMAC engine over the given digest algorithm.
// Unknown digests fail here, before any key material is touched. HMAC
// accepts keys of any length.
func NewHMAC(alg DigestAlg, key []byte) (*HMACEngine, error) {
	newHash, err := Default().Hash(alg, 0)
	if err != nil {
		return nil, fmt.Errorf("hmac: %w", err)
	}

	m := &HMACEngine{newHash: newHash, alg: alg}
	m.mac = hmac.New(newHash, key)

	return m, nil
}

// Init re-keys the engine, discarding any accumulated state. Explicit
// re-initialization is a supported operation, not an error.
func (m *HMACEngine) Init(key []byte) error {
	m.mac = hmac.New(m.newHash, key)
	m.finalized = false

	return nil
}

// Update feeds data into the engine. Updating a finalized engine without a
// prior Reset or Init is an error.
func (m *HMACEngine) Update(p []byte) error {
	if m.finalized {
		return fmt.Errorf("hmac %s: update after finalize: %w", m.alg, ErrNotInitialized)
	}

	m.mac.Write(p) //nolint:errcheck // hash.Hash.Write never returns an error

	return nil
}

// Write implements io.Writer over Update.
func (m *HMACEngine) Write(p []byte) (int, error) {
	if err := m.Update(p); err != nil {
		return 0, err
	}

	return len(p), nil
}

// Final finalizes the engine and returns the authentication tag. The engine
// is consumed until Reset or Init is called.
func (m *HMACEngine) Final() []byte {
	m.finalized = true

	return m.mac.Sum(nil)
}

// Reset clears accumulated data, keeping the key.
func (m *HMACEngine) Reset() {
	m.mac.Reset()
	m.finalized = false
}

// Size returns the tag length in bytes.
func (m *HMACEngine) Size() int {
	return m.mac.Size()
}
