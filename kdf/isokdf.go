/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kdf

import (
	"fmt"

	"github.com/cryptoweave/cryptoweave/engine"
)

// ISOKDF is the ISO 18033-2 KDF1/KDF2 construction as an infinite stream:
// T(i) = Digest(secret || counter(i) || otherInfo) with a 4-byte big-endian
// counter. The two variants differ only in where the counter starts: KDF1
// counts from 0, KDF2 from 1.
type ISOKDF struct {
	*byteStream
}

// NewKDF1 builds a KDF1 stream (counter starts at 0).
func NewKDF1(alg engine.DigestAlg, secret, otherInfo []byte) (*ISOKDF, error) {
	return newISOKDF(alg, secret, otherInfo, 0)
}

// NewKDF2 builds a KDF2 stream (counter starts at 1).
func NewKDF2(alg engine.DigestAlg, secret, otherInfo []byte) (*ISOKDF, error) {
	return newISOKDF(alg, secret, otherInfo, 1)
}

func newISOKDF(alg engine.DigestAlg, secret, otherInfo []byte, counterStart uint32) (*ISOKDF, error) {
	d, err := engine.NewDigest(alg)
	if err != nil {
		return nil, fmt.Errorf("isokdf: %w", err)
	}

	round := func(counter uint32, _ []byte) ([]byte, error) {
		d.Reset()

		for _, p := range [][]byte{secret, counterBytes(counter), otherInfo} {
			if err := d.Update(p); err != nil {
				return nil, err
			}
		}

		return d.Digest(), nil
	}

	return &ISOKDF{newByteStream(round, counterStart, nil)}, nil
}
