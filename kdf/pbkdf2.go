/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kdf

import (
	"fmt"
	"hash"

	"golang.org/x/crypto/pbkdf2"

	"github.com/cryptoweave/cryptoweave/engine"
)

// PBKDF2 is the fixed-output exception among the KDFs in this package:
// its output is deterministically computed from (password, salt, iterations)
// with no cursor semantics, so GetBytes(n) returns the identical n bytes on
// every call. PBKDF2 output blocks are length-independent, which also makes
// GetBytes(8) a strict prefix of GetBytes(16).
type PBKDF2 struct {
	newHash    func() hash.Hash
	password   []byte
	salt       []byte
	iterations int
}

// NewPBKDF2 builds a PBKDF2 engine over the given digest.
func NewPBKDF2(alg engine.DigestAlg, password, salt []byte, iterations int) (*PBKDF2, error) {
	if iterations < 1 {
		return nil, fmt.Errorf("pbkdf2: iterations must be at least 1, got %d", iterations)
	}

	newHash, err := engine.Default().Hash(alg, 0)
	if err != nil {
		return nil, fmt.Errorf("pbkdf2: %w", err)
	}

	return &PBKDF2{
		newHash:    newHash,
		password:   password,
		salt:       salt,
		iterations: iterations,
	}, nil
}

// GetBytes returns the first n bytes of the PBKDF2 output. Unlike the
// streaming KDFs, repeated calls do not advance a cursor.
func (p *PBKDF2) GetBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("kdf: negative length %d", n)
	}

	return pbkdf2.Key(p.password, p.salt, p.iterations, n, p.newHash), nil
}
