/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package crypto

import (
	"fmt"

	"github.com/cryptoweave/cryptoweave/ciphermode"
	"github.com/cryptoweave/cryptoweave/engine"
)

// Scheme identifies an AEAD scheme.
type Scheme string

// Supported AEAD schemes. The CBC+HMAC composites follow
// draft-mcgrew-aead-aes-cbc-hmac-sha2: the first half of the key is the MAC
// key, the second half the encryption key, and the tag is the truncated
// HMAC over AAD || IV || ciphertext || AL.
const (
	AES128CBCHMACSHA256 Scheme = "aes128-cbc-hmac-sha256"
	AES192CBCHMACSHA384 Scheme = "aes192-cbc-hmac-sha384"
	AES256CBCHMACSHA512 Scheme = "aes256-cbc-hmac-sha512"
	AES128GCM           Scheme = "aes128-gcm"
	AES256GCM           Scheme = "aes256-gcm"
	ChaCha20Poly1305    Scheme = "chacha20-poly1305"
)

type schemeKind int

const (
	kindEncryptThenMAC schemeKind = iota
	kindGCM
	kindChaCha20Poly1305
)

// descriptor maps a scheme to its fixed key/IV/tag size tuple and building
// blocks. Every scheme maps to exactly one tuple, validated at construction.
type descriptor struct {
	kind    schemeKind
	cipher  engine.CipherAlg
	digest  engine.DigestAlg
	keySize int
	ivSize  int
	tagSize int
}

//nolint:gochecknoglobals
var schemes = map[Scheme]descriptor{
	AES128CBCHMACSHA256: {
		kind: kindEncryptThenMAC, cipher: engine.AES128, digest: engine.SHA256,
		keySize: 32, ivSize: 16, tagSize: 16,
	},
	AES192CBCHMACSHA384: {
		kind: kindEncryptThenMAC, cipher: engine.AES192, digest: engine.SHA384,
		keySize: 48, ivSize: 16, tagSize: 24,
	},
	AES256CBCHMACSHA512: {
		kind: kindEncryptThenMAC, cipher: engine.AES256, digest: engine.SHA512,
		keySize: 64, ivSize: 16, tagSize: 32,
	},
	AES128GCM: {
		kind: kindGCM, cipher: engine.AES128,
		keySize: 16, ivSize: ciphermode.GCMIVSize, tagSize: ciphermode.GCMTagSize,
	},
	AES256GCM: {
		kind: kindGCM, cipher: engine.AES256,
		keySize: 32, ivSize: ciphermode.GCMIVSize, tagSize: ciphermode.GCMTagSize,
	},
	ChaCha20Poly1305: {
		kind: kindChaCha20Poly1305, cipher: engine.ChaCha20,
		keySize: 32, ivSize: 12, tagSize: 16,
	},
}

func lookupScheme(scheme Scheme) (descriptor, error) {
	desc, ok := schemes[scheme]
	if !ok {
		return descriptor{}, fmt.Errorf("crypto: scheme %q: %w", scheme, engine.ErrUnsupportedAlgorithm)
	}

	return desc, nil
}

// Schemes returns the identifiers of all supported AEAD schemes.
func Schemes() []Scheme {
	out := make([]Scheme, 0, len(schemes))
	for s := range schemes {
		out = append(out, s)
	}

	return out
}
