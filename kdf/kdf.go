/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package kdf implements streaming key-derivation functions over the
// primitive engine abstraction: HKDF, KDF1/KDF2 (ISO 18033-2), the NIST
// SP 800-108 counter, feedback and double-pipeline modes, and PBKDF2.
//
// All algorithms except PBKDF2 behave as an infinite pseudorandom byte
// stream: repeated GetBytes calls return successive, non-overlapping
// segments of one conceptually infinite keystream. PBKDF2 is the documented
// exception: it is a fixed-output function and every GetBytes call with the
// same length returns identical bytes. Downstream callers rely on both
// behaviors; neither is an accident.
//
// Streams are mutable single-owner state and are not safe for concurrent
// GetBytes calls without external serialization.
package kdf

import (
	"encoding/binary"
	"fmt"

	"github.com/cryptoweave/cryptoweave/engine"
)

// Stream is a stateful byte generator. GetBytes advances the stream's
// cursor; unconsumed bytes from an internal round are buffered and returned
// by subsequent calls, never discarded.
type Stream interface {
	GetBytes(n int) ([]byte, error)
}

// roundFunc produces the output block of round counter, given the previous
// round's block (nil on the first round for chained algorithms without an
// IV). Implementations must not retain or mutate the returned block.
type roundFunc func(counter uint32, prev []byte) ([]byte, error)

// byteStream is the shared cursor machinery for all infinite-stream KDFs:
// a monotonically advancing round counter plus a buffer of unconsumed bytes
// from the last round.
type byteStream struct {
	round   roundFunc
	counter uint32
	prev    []byte
	buf     []byte
}

func newByteStream(round roundFunc, counterStart uint32, iv []byte) *byteStream {
	return &byteStream{round: round, counter: counterStart, prev: iv}
}

// GetBytes returns the next n bytes of the keystream.
func (s *byteStream) GetBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("kdf: negative length %d", n)
	}

	out := make([]byte, 0, n)

	for len(out) < n {
		if len(s.buf) == 0 {
			block, err := s.round(s.counter, s.prev)
			if err != nil {
				return nil, err
			}

			s.prev = block
			s.buf = block
			s.counter++
		}

		take := n - len(out)
		if take > len(s.buf) {
			take = len(s.buf)
		}

		out = append(out, s.buf[:take]...)
		s.buf = s.buf[take:]
	}

	return out, nil
}

// counterBytes encodes a round counter as a fixed-width 4-byte big-endian
// integer, the convention shared by all counter-driven KDFs in this package
// except HKDF (whose counter is a single byte by definition).
func counterBytes(c uint32) []byte {
	var b [4]byte

	binary.BigEndian.PutUint32(b[:], c)

	return b[:]
}

// hmacRound runs one HMAC invocation over the given parts, reusing the
// engine across rounds.
func hmacRound(m *engine.HMACEngine, parts ...[]byte) ([]byte, error) {
	m.Reset()

	for _, p := range parts {
		if err := m.Update(p); err != nil {
			return nil, err
		}
	}

	return m.Final(), nil
}
