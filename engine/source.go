/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package engine

import (
	"fmt"
	"io"
)

// Source abstracts heterogeneous input data for digest and MAC engines.
// Each variant implements FeedInto so engines never dispatch on concrete
// input types; reading is repeated writes over chunks, which keeps memory
// bounded for streaming inputs.
type Source interface {
	// FeedInto writes the source's content into w.
	FeedInto(w io.Writer) error
}

// Bytes is an in-memory buffer source.
type Bytes []byte

// FeedInto writes the buffer into w.
func (b Bytes) FeedInto(w io.Writer) error {
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("source: %w", err)
	}

	return nil
}

// Str is a string source.
type Str string

// FeedInto writes the string into w.
func (s Str) FeedInto(w io.Writer) error {
	return Bytes(s).FeedInto(w)
}

// Reader adapts an io.Reader into a Source. Content is copied in chunks, so
// large inputs never need to be resident in memory.
type Reader struct {
	R io.Reader
}

// FeedInto copies the reader into w.
func (r Reader) FeedInto(w io.Writer) error {
	if _, err := io.Copy(w, r.R); err != nil {
		return fmt.Errorf("source: %w", err)
	}

	return nil
}

// DigestOf is the one-shot convenience over the streaming digest engine.
// It is implemented purely in terms of that engine, so there is a single
// source of truth for the algorithm.
func DigestOf(alg DigestAlg, src Source) ([]byte, error) {
	d, err := NewDigest(alg)
	if err != nil {
		return nil, err
	}

	if err := src.FeedInto(d); err != nil {
		return nil, err
	}

	return d.Digest(), nil
}

// HMACOf is the one-shot convenience over the streaming HMAC engine.
func HMACOf(alg DigestAlg, key []byte, src Source) ([]byte, error) {
	m, err := NewHMAC(alg, key)
	if err != nil {
		return nil, err
	}

	if err := src.FeedInto(m); err != nil {
		return nil, err
	}

	return m.Final(), nil
}
