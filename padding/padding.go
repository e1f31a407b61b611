/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package padding implements block-level padding schemes: ZeroByte, PKCS7
// and TBC (trailing-bit-complement). Operations come in two flavors with
// distinct aliasing semantics: PadInPlace takes ownership of the block and
// returns it mutated, Pad borrows the block and allocates a fresh result.
package padding

import (
	"errors"
	"fmt"
)

// Scheme identifies a padding scheme.
type Scheme string

// Supported padding schemes.
const (
	// ZeroByte fills the padding region with zero bytes. An all-zero content
	// block is indistinguishable from full padding; this is a documented
	// limitation of the scheme, not corrected here.
	ZeroByte Scheme = "zerobyte"

	// PKCS7 sets every padding byte to the number of padding bytes added.
	PKCS7 Scheme = "pkcs7"

	// TBC fills the padding region with all 0x00 or all 0xFF, whichever is
	// the complement of the last content bit. A block padded from offset 0
	// uses 0xFF.
	TBC Scheme = "tbc"
)

// ErrInvalidPadding is returned when padding is malformed on unpad or count.
var ErrInvalidPadding = errors.New("invalid padding")

// PadInPlace writes padding into block starting at offset and returns the
// same slice. Bytes from offset to the end of the block are the padding
// region; content before offset is untouched.
func PadInPlace(block []byte, offset int, scheme Scheme) ([]byte, error) {
	if offset < 0 || offset > len(block) {
		return nil, fmt.Errorf("padding: offset %d out of range for %d-byte block", offset, len(block))
	}

	switch scheme {
	case ZeroByte:
		padZeroByte(block, offset)
	case PKCS7:
		if err := padPKCS7(block, offset); err != nil {
			return nil, err
		}
	case TBC:
		padTBC(block, offset)
	default:
		return nil, fmt.Errorf("padding: unknown scheme %q", scheme)
	}

	return block, nil
}

// Pad returns a fresh padded copy of block; the input is never mutated.
func Pad(block []byte, offset int, scheme Scheme) ([]byte, error) {
	out := make([]byte, len(block))
	copy(out, block)

	return PadInPlace(out, offset, scheme)
}

// Count returns the number of padding bytes present in block under the
// given scheme.
func Count(block []byte, scheme Scheme) (int, error) {
	switch scheme {
	case ZeroByte:
		return countZeroByte(block), nil
	case PKCS7:
		return countPKCS7(block)
	case TBC:
		return countTBC(block), nil
	default:
		return 0, fmt.Errorf("padding: unknown scheme %q", scheme)
	}
}

// Unpad returns a fresh copy of block with the padding removed. The input is
// never mutated. For PKCS7 the padding bytes are fully validated and
// ErrInvalidPadding is returned when malformed.
func Unpad(block []byte, scheme Scheme) ([]byte, error) {
	n, err := Count(block, scheme)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(block)-n)
	copy(out, block[:len(block)-n])

	return out, nil
}

func padZeroByte(block []byte, offset int) {
	for i := offset; i < len(block); i++ {
		block[i] = 0x00
	}
}

func countZeroByte(block []byte) int {
	n := 0
	for i := len(block) - 1; i >= 0 && block[i] == 0x00; i-- {
		n++
	}

	return n
}

func padPKCS7(block []byte, offset int) error {
	n := len(block) - offset
	if n == 0 || n > 0xff {
		return fmt.Errorf("padding: pkcs7 cannot encode %d padding bytes: %w", n, ErrInvalidPadding)
	}

	for i := offset; i < len(block); i++ {
		block[i] = byte(n)
	}

	return nil
}

func countPKCS7(block []byte) (int, error) {
	if len(block) == 0 {
		return 0, fmt.Errorf("padding: empty block: %w", ErrInvalidPadding)
	}

	n := int(block[len(block)-1])
	if n == 0 || n > len(block) {
		return 0, fmt.Errorf("padding: pkcs7 count %d out of range: %w", n, ErrInvalidPadding)
	}

	for i := len(block) - n; i < len(block); i++ {
		if block[i] != byte(n) {
			return 0, fmt.Errorf("padding: pkcs7 byte mismatch: %w", ErrInvalidPadding)
		}
	}

	return n, nil
}

func padTBC(block []byte, offset int) {
	pad := tbcPadByte(block, offset)
	for i := offset; i < len(block); i++ {
		block[i] = pad
	}
}

// tbcPadByte picks the complement of the bit immediately preceding the
// offset: a trailing 1-bit pads with 0x00, a trailing 0-bit with 0xFF.
func tbcPadByte(block []byte, offset int) byte {
	if offset == 0 {
		return 0xff
	}

	if block[offset-1]&0x01 == 0x01 {
		return 0x00
	}

	return 0xff
}

func countTBC(block []byte) int {
	if len(block) == 0 {
		return 0
	}

	pad := block[len(block)-1]
	if pad != 0x00 && pad != 0xff {
		return 0
	}

	n := 0
	for i := len(block) - 1; i >= 0 && block[i] == pad; i-- {
		n++
	}

	return n
}
