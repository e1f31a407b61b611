/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kdf

import (
	"fmt"

	"github.com/cryptoweave/cryptoweave/engine"
)

// The NIST SP 800-108 family shares a fixed-input suffix
// label || 0x00 || context || [L], where L is the intended output length in
// bits as a 4-byte big-endian integer. L binds the derived keystream to the
// caller's declared output length; the stream itself remains unbounded.

// CounterKDF is SP 800-108 counter mode:
// T(i) = HMAC(key, counter(i) || label || 0x00 || context || [L]),
// with a 4-byte big-endian counter starting at 1.
type CounterKDF struct {
	*byteStream
}

// NewCounterKDF builds a counter-mode stream. outLen is the intended output
// length in bytes, encoded into every round's MAC input.
func NewCounterKDF(alg engine.DigestAlg, key, label, context []byte, outLen int) (*CounterKDF, error) {
	m, fixed, err := sp800108Setup(alg, key, label, context, outLen)
	if err != nil {
		return nil, fmt.Errorf("cmkdf: %w", err)
	}

	round := func(counter uint32, _ []byte) ([]byte, error) {
		return hmacRound(m, counterBytes(counter), fixed)
	}

	return &CounterKDF{newByteStream(round, 1, nil)}, nil
}

// FeedbackKDF is SP 800-108 feedback mode:
// T(i) = HMAC(key, T(i-1) || counter(i) || label || 0x00 || context || [L]),
// T(0) = iv. The IV may be empty.
type FeedbackKDF struct {
	*byteStream
}

// NewFeedbackKDF builds a feedback-mode stream seeded with iv.
func NewFeedbackKDF(alg engine.DigestAlg, key, label, context, iv []byte, outLen int) (*FeedbackKDF, error) {
	m, fixed, err := sp800108Setup(alg, key, label, context, outLen)
	if err != nil {
		return nil, fmt.Errorf("fmkdf: %w", err)
	}

	round := func(counter uint32, prev []byte) ([]byte, error) {
		return hmacRound(m, prev, counterBytes(counter), fixed)
	}

	return &FeedbackKDF{newByteStream(round, 1, iv)}, nil
}

// DoublePipelineKDF is SP 800-108 double-pipeline iteration mode. It runs
// two parallel chains: an inner chain A(i) = HMAC(key, A(i-1)) with
// A(0) = label || 0x00 || context || [L], and the output chain
// T(i) = HMAC(key, A(i) || counter(i) || label || 0x00 || context || [L]).
type DoublePipelineKDF struct {
	*byteStream
}

// NewDoublePipelineKDF builds a double-pipeline stream.
func NewDoublePipelineKDF(alg engine.DigestAlg, key, label, context []byte, outLen int) (*DoublePipelineKDF, error) {
	m, fixed, err := sp800108Setup(alg, key, label, context, outLen)
	if err != nil {
		return nil, fmt.Errorf("dpimkdf: %w", err)
	}

	chain := fixed

	round := func(counter uint32, _ []byte) ([]byte, error) {
		a, err := hmacRound(m, chain)
		if err != nil {
			return nil, err
		}

		chain = a

		return hmacRound(m, a, counterBytes(counter), fixed)
	}

	return &DoublePipelineKDF{newByteStream(round, 1, nil)}, nil
}

// sp800108Setup validates parameters, keys the shared HMAC engine and
// assembles the fixed-input suffix.
func sp800108Setup(alg engine.DigestAlg, key, label, context []byte, outLen int) (*engine.HMACEngine, []byte, error) {
	if outLen <= 0 {
		return nil, nil, fmt.Errorf("output length must be positive, got %d", outLen)
	}

	m, err := engine.NewHMAC(alg, key)
	if err != nil {
		return nil, nil, err
	}

	const bitsPerByte = 8

	fixed := make([]byte, 0, len(label)+1+len(context)+4)
	fixed = append(fixed, label...)
	fixed = append(fixed, 0x00)
	fixed = append(fixed, context...)
	fixed = append(fixed, counterBytes(uint32(outLen*bitsPerByte))...)

	return m, fixed, nil
}
