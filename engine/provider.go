/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package engine

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha1" //nolint:gosec // legacy digest offered for interop, not recommended
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/sha3"
)

// Provider supplies primitive cryptographic algorithms to the composition
// layer: hash constructors, raw block/stream ciphers and a cryptographically
// secure random source. Primitive correctness and constant-time behavior are
// the provider's responsibility.
type Provider interface {
	// Hash returns a constructor for the given digest algorithm. size selects
	// the output length for variable-output algorithms (Blake2b) and must be
	// 0 for fixed-output ones.
	Hash(alg DigestAlg, size int) (func() hash.Hash, error)

	// Block returns a raw block cipher keyed with key.
	Block(alg CipherAlg, key []byte) (cipher.Block, error)

	// Stream returns a raw stream cipher keyed with key and nonce.
	Stream(alg CipherAlg, key, nonce []byte) (cipher.Stream, error)

	// Fill fills buf with cryptographically secure random bytes.
	Fill(buf []byte) error
}

// Default returns the built-in provider backed by the Go standard library
// and golang.org/x/crypto.
func Default() Provider {
	return &defaultProvider{}
}

type defaultProvider struct{}

func (p *defaultProvider) Hash(alg DigestAlg, size int) (func() hash.Hash, error) {
	if alg == Blake2b {
		if size < 1 || size > blake2b.Size {
			return nil, fmt.Errorf("%w: blake2b digest size %d", ErrUnsupportedAlgorithm, size)
		}

		return func() hash.Hash {
			h, err := blake2b.New(size, nil)
			if err != nil {
				// reachable only with an out-of-range size, validated above
				panic(err)
			}

			return h
		}, nil
	}

	if size != 0 {
		return nil, fmt.Errorf("%w: %s has a fixed digest size", ErrUnsupportedAlgorithm, alg)
	}

	switch alg {
	case SHA1:
		return sha1.New, nil
	case SHA256:
		return sha256.New, nil
	case SHA384:
		return sha512.New384, nil
	case SHA512:
		return sha512.New, nil
	case SHA3x256:
		return sha3.New256, nil
	case SHA3x512:
		return sha3.New512, nil
	case Blake2b256:
		return p.blake2bSized(32), nil
	case Blake2b512:
		return p.blake2bSized(64), nil
	default:
		return nil, fmt.Errorf("%w: digest %q", ErrUnsupportedAlgorithm, alg)
	}
}

func (p *defaultProvider) blake2bSized(size int) func() hash.Hash {
	return func() hash.Hash {
		h, err := blake2b.New(size, nil)
		if err != nil {
			panic(err)
		}

		return h
	}
}

func (p *defaultProvider) Block(alg CipherAlg, key []byte) (cipher.Block, error) {
	size, ok := aesKeySizes[alg]
	if !ok {
		return nil, fmt.Errorf("%w: block cipher %q", ErrUnsupportedAlgorithm, alg)
	}

	if len(key) != size {
		return nil, fmt.Errorf("%w: %s wants a %d-byte key, got %d", ErrInvalidKeyMaterial, alg, size, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyMaterial, err)
	}

	return block, nil
}

func (p *defaultProvider) Stream(alg CipherAlg, key, nonce []byte) (cipher.Stream, error) {
	if alg != ChaCha20 {
		return nil, fmt.Errorf("%w: stream cipher %q", ErrUnsupportedAlgorithm, alg)
	}

	if len(key) != chaCha20KeySize {
		return nil, fmt.Errorf("%w: chacha20 wants a %d-byte key, got %d",
			ErrInvalidKeyMaterial, chaCha20KeySize, len(key))
	}

	if len(nonce) != chacha20.NonceSize && len(nonce) != chacha20.NonceSizeX {
		return nil, fmt.Errorf("%w: chacha20 wants a %d or %d-byte nonce, got %d",
			ErrInvalidKeyMaterial, chacha20.NonceSize, chacha20.NonceSizeX, len(nonce))
	}

	stream, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyMaterial, err)
	}

	return stream, nil
}

func (p *defaultProvider) Fill(buf []byte) error {
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("rng read: %w", err)
	}

	return nil
}
