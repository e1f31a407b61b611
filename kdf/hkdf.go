/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kdf

import (
	"fmt"

	"github.com/cryptoweave/cryptoweave/engine"
)

// hkdfMaxRounds is the RFC 5869 bound: at most 255 expansion rounds.
const hkdfMaxRounds = 255

// HKDF is the RFC 5869 extract-and-expand KDF as an infinite stream, bounded
// only by the 255-round expansion limit.
type HKDF struct {
	*byteStream
}

// NewHKDF builds an HKDF stream seeded by (secret, salt, info) over the
// given digest. The extract phase computes PRK = HMAC(salt, secret); the
// expand phase iterates T(i) = HMAC(PRK, T(i-1) || info || i) with a
// single-byte counter starting at 1. An empty salt is equivalent to a
// zero-filled key of the digest size, per the RFC.
func NewHKDF(alg engine.DigestAlg, secret, salt, info []byte) (*HKDF, error) {
	extractor, err := engine.NewHMAC(alg, salt)
	if err != nil {
		return nil, fmt.Errorf("hkdf: %w", err)
	}

	if err := extractor.Update(secret); err != nil {
		return nil, fmt.Errorf("hkdf: %w", err)
	}

	prk := extractor.Final()

	expander, err := engine.NewHMAC(alg, prk)
	if err != nil {
		return nil, fmt.Errorf("hkdf: %w", err)
	}

	round := func(counter uint32, prev []byte) ([]byte, error) {
		if counter > hkdfMaxRounds {
			return nil, fmt.Errorf("hkdf: keystream exhausted after %d rounds", hkdfMaxRounds)
		}

		return hmacRound(expander, prev, info, []byte{byte(counter)})
	}

	return &HKDF{newByteStream(round, 1, nil)}, nil
}
