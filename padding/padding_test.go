/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package padding_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptoweave/cryptoweave/padding"
)

const blockSize = 16

func sampleBlock() []byte {
	block := make([]byte, blockSize)
	for i := range block {
		block[i] = byte(i + 1)
	}

	return block
}

func TestPKCS7RoundTripAllOffsets(t *testing.T) {
	for offset := 0; offset < blockSize; offset++ {
		block := sampleBlock()

		padded, err := padding.Pad(block, offset, padding.PKCS7)
		require.NoError(t, err)

		n, err := padding.Count(padded, padding.PKCS7)
		require.NoError(t, err)
		require.Equal(t, blockSize-offset, n)

		content, err := padding.Unpad(padded, padding.PKCS7)
		require.NoError(t, err)
		require.Equal(t, block[:offset], content)
	}
}

func TestPKCS7Values(t *testing.T) {
	block := sampleBlock()

	padded, err := padding.Pad(block, 7, padding.PKCS7)
	require.NoError(t, err)

	for i := 7; i < blockSize; i++ {
		require.Equal(t, byte(blockSize-7), padded[i])
	}
}

func TestPKCS7InvalidPadding(t *testing.T) {
	// Zero count.
	block := sampleBlock()
	block[blockSize-1] = 0
	_, err := padding.Unpad(block, padding.PKCS7)
	require.ErrorIs(t, err, padding.ErrInvalidPadding)

	// Count exceeding the block size.
	block = sampleBlock()
	block[blockSize-1] = blockSize + 1
	_, err = padding.Unpad(block, padding.PKCS7)
	require.ErrorIs(t, err, padding.ErrInvalidPadding)

	// Inconsistent padding bytes.
	block = sampleBlock()
	block, err = padding.PadInPlace(block, 10, padding.PKCS7)
	require.NoError(t, err)
	block[blockSize-2] ^= 0x01
	_, err = padding.Unpad(block, padding.PKCS7)
	require.ErrorIs(t, err, padding.ErrInvalidPadding)

	// Empty input.
	_, err = padding.Count(nil, padding.PKCS7)
	require.ErrorIs(t, err, padding.ErrInvalidPadding)
}

func TestZeroByte(t *testing.T) {
	block := sampleBlock()

	padded, err := padding.Pad(block, 11, padding.ZeroByte)
	require.NoError(t, err)
	require.Equal(t, block[:11], padded[:11])
	require.Equal(t, bytes.Repeat([]byte{0x00}, 5), padded[11:])

	n, err := padding.Count(padded, padding.ZeroByte)
	require.NoError(t, err)
	require.Equal(t, 5, n)

	content, err := padding.Unpad(padded, padding.ZeroByte)
	require.NoError(t, err)
	require.Equal(t, block[:11], content)
}

// TestZeroByteAmbiguity pins the documented limitation: an all-zero content
// block is indistinguishable from full padding.
func TestZeroByteAmbiguity(t *testing.T) {
	block := make([]byte, blockSize)

	n, err := padding.Count(block, padding.ZeroByte)
	require.NoError(t, err)
	require.Equal(t, blockSize, n)
}

func TestTBC(t *testing.T) {
	// Trailing bit 1 pads with 0x00.
	block := sampleBlock()
	block[6] = 0x03

	padded, err := padding.Pad(block, 7, padding.TBC)
	require.NoError(t, err)
	require.Equal(t, bytes.Repeat([]byte{0x00}, blockSize-7), padded[7:])

	n, err := padding.Count(padded, padding.TBC)
	require.NoError(t, err)
	require.Equal(t, blockSize-7, n)

	// Trailing bit 0 pads with 0xFF.
	block = sampleBlock()
	block[6] = 0x02

	padded, err = padding.Pad(block, 7, padding.TBC)
	require.NoError(t, err)
	require.Equal(t, bytes.Repeat([]byte{0xff}, blockSize-7), padded[7:])

	content, err := padding.Unpad(padded, padding.TBC)
	require.NoError(t, err)
	require.Equal(t, block[:7], content)

	// Offset 0 pads the whole block with 0xFF.
	padded, err = padding.Pad(make([]byte, blockSize), 0, padding.TBC)
	require.NoError(t, err)
	require.Equal(t, bytes.Repeat([]byte{0xff}, blockSize), padded)
}

// TestAliasing verifies the two variants' ownership semantics: PadInPlace
// returns the caller's buffer mutated, Pad leaves the input untouched.
func TestAliasing(t *testing.T) {
	block := sampleBlock()
	orig := sampleBlock()

	copied, err := padding.Pad(block, 4, padding.PKCS7)
	require.NoError(t, err)
	require.Equal(t, orig, block, "copy variant must not mutate its input")
	require.NotEqual(t, block, copied)

	inPlace, err := padding.PadInPlace(block, 4, padding.PKCS7)
	require.NoError(t, err)
	require.Same(t, &block[0], &inPlace[0], "in-place variant must return the same buffer")
	require.Equal(t, copied, inPlace)
}

func TestBadArguments(t *testing.T) {
	_, err := padding.Pad(sampleBlock(), -1, padding.PKCS7)
	require.Error(t, err)

	_, err = padding.Pad(sampleBlock(), blockSize+1, padding.PKCS7)
	require.Error(t, err)

	_, err = padding.Pad(sampleBlock(), 3, "ansix923")
	require.Error(t, err)

	_, err = padding.Count(sampleBlock(), "ansix923")
	require.Error(t, err)
}
