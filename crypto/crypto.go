/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package crypto implements high-level authenticated encryption schemes
// composed from the lower-level engines: AES-CBC with HMAC in an
// encrypt-then-MAC construction, AES-GCM and ChaCha20-Poly1305. A Cipher is
// bound to one scheme and one key; encryption produces ciphertext followed
// by the authentication tag, decryption verifies the tag before releasing
// any plaintext.
package crypto

import (
	"fmt"

	"github.com/google/tink/go/subtle/random"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/cryptoweave/cryptoweave/ciphermode"
	"github.com/cryptoweave/cryptoweave/engine"
	"github.com/cryptoweave/cryptoweave/log"
)

// ErrAuthentication is returned by Decrypt when the authentication tag does
// not match. It is the same sentinel the cipher composition layer uses.
var ErrAuthentication = ciphermode.ErrAuthentication

//nolint:gochecknoglobals
var logger = log.New("cryptoweave/crypto")

// Cipher is an AEAD cipher bound to a scheme and a key. It is safe for
// concurrent use: every operation builds its own engine state.
type Cipher struct {
	scheme Scheme
	desc   descriptor
	key    []byte
}

// New returns a Cipher for the given scheme and key. The key length is
// validated here, so a constructed Cipher never fails on key material later.
func New(scheme Scheme, key []byte) (*Cipher, error) {
	desc, err := lookupScheme(scheme)
	if err != nil {
		return nil, err
	}

	if len(key) != desc.keySize {
		return nil, fmt.Errorf("crypto: scheme %s needs a %d-byte key, got %d: %w",
			scheme, desc.keySize, len(key), engine.ErrInvalidKeyMaterial)
	}

	logger.Debugf("new %s cipher", scheme)

	return &Cipher{
		scheme: scheme,
		desc:   desc,
		key:    append([]byte(nil), key...),
	}, nil
}

// Scheme returns the scheme this cipher is bound to.
func (c *Cipher) Scheme() Scheme {
	return c.scheme
}

// KeySize returns the scheme's key size in bytes.
func (c *Cipher) KeySize() int {
	return c.desc.keySize
}

// IVSize returns the scheme's IV (nonce) size in bytes.
func (c *Cipher) IVSize() int {
	return c.desc.ivSize
}

// TagSize returns the scheme's authentication tag size in bytes.
func (c *Cipher) TagSize() int {
	return c.desc.tagSize
}

// Encrypt encrypts plaintext under the given IV, authenticating aad
// alongside it, and returns ciphertext || tag. The IV must never repeat for
// the same key.
func (c *Cipher) Encrypt(plaintext, iv, aad []byte) ([]byte, error) {
	if err := c.checkIV(iv); err != nil {
		return nil, err
	}

	switch c.desc.kind {
	case kindEncryptThenMAC:
		return c.etmEncrypt(plaintext, iv, aad)
	case kindGCM:
		return c.gcmProcess(plaintext, iv, aad, engine.Encrypt)
	case kindChaCha20Poly1305:
		aead, err := chacha20poly1305.New(c.key)
		if err != nil {
			return nil, fmt.Errorf("crypto: %w", err)
		}

		return aead.Seal(nil, iv, plaintext, aad), nil
	}

	return nil, fmt.Errorf("crypto: scheme %q: %w", c.scheme, engine.ErrUnsupportedAlgorithm)
}

// Decrypt verifies the tag at the end of ciphertext against the IV and aad,
// then returns the plaintext. On tag mismatch it returns ErrAuthentication
// and no plaintext; verification happens before any decryption.
func (c *Cipher) Decrypt(ciphertext, iv, aad []byte) ([]byte, error) {
	if err := c.checkIV(iv); err != nil {
		return nil, err
	}

	switch c.desc.kind {
	case kindEncryptThenMAC:
		return c.etmDecrypt(ciphertext, iv, aad)
	case kindGCM:
		return c.gcmProcess(ciphertext, iv, aad, engine.Decrypt)
	case kindChaCha20Poly1305:
		aead, err := chacha20poly1305.New(c.key)
		if err != nil {
			return nil, fmt.Errorf("crypto: %w", err)
		}

		plaintext, err := aead.Open(nil, iv, ciphertext, aad)
		if err != nil {
			return nil, fmt.Errorf("crypto: %w", ErrAuthentication)
		}

		return plaintext, nil
	}

	return nil, fmt.Errorf("crypto: scheme %q: %w", c.scheme, engine.ErrUnsupportedAlgorithm)
}

// EncryptWithRandomIV encrypts plaintext under a fresh random IV and returns
// IV || ciphertext || tag, for callers that do not manage IVs themselves.
func (c *Cipher) EncryptWithRandomIV(plaintext, aad []byte) ([]byte, error) {
	iv := random.GetRandomBytes(uint32(c.desc.ivSize))

	sealed, err := c.Encrypt(plaintext, iv, aad)
	if err != nil {
		return nil, err
	}

	return append(iv, sealed...), nil
}

// DecryptWithPrefixedIV decrypts an envelope produced by EncryptWithRandomIV.
func (c *Cipher) DecryptWithPrefixedIV(envelope, aad []byte) ([]byte, error) {
	if len(envelope) < c.desc.ivSize {
		return nil, fmt.Errorf("crypto: envelope shorter than %d-byte IV: %w",
			c.desc.ivSize, ErrAuthentication)
	}

	return c.Decrypt(envelope[c.desc.ivSize:], envelope[:c.desc.ivSize], aad)
}

func (c *Cipher) checkIV(iv []byte) error {
	if len(iv) != c.desc.ivSize {
		return fmt.Errorf("crypto: scheme %s needs a %d-byte IV, got %d: %w",
			c.scheme, c.desc.ivSize, len(iv), engine.ErrInvalidKeyMaterial)
	}

	return nil
}

func (c *Cipher) gcmProcess(in, iv, aad []byte, dir engine.Direction) ([]byte, error) {
	g, err := ciphermode.NewGCM(c.desc.cipher)
	if err != nil {
		return nil, fmt.Errorf("crypto: %w", err)
	}

	if err := g.Init(c.key, iv, dir); err != nil {
		return nil, fmt.Errorf("crypto: %w", err)
	}

	if err := g.UpdateAAD(aad); err != nil {
		return nil, fmt.Errorf("crypto: %w", err)
	}

	if err := g.Update(in); err != nil {
		return nil, fmt.Errorf("crypto: %w", err)
	}

	return g.Final()
}

// Encrypt is a one-shot convenience: it builds a Cipher for the scheme and
// encrypts plaintext under iv and aad, returning ciphertext || tag.
func Encrypt(plaintext, key, iv []byte, scheme Scheme, aad []byte) ([]byte, error) {
	c, err := New(scheme, key)
	if err != nil {
		return nil, err
	}

	return c.Encrypt(plaintext, iv, aad)
}

// Decrypt is the one-shot counterpart of Encrypt.
func Decrypt(ciphertext, key, iv []byte, scheme Scheme, aad []byte) ([]byte, error) {
	c, err := New(scheme, key)
	if err != nil {
		return nil, err
	}

	return c.Decrypt(ciphertext, iv, aad)
}
