/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ciphermode_test

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptoweave/cryptoweave/ciphermode"
	"github.com/cryptoweave/cryptoweave/engine"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	require.NoError(t, err)

	return b
}

// nistKey, nistIV and nistPlaintext are the AES-128 inputs from
// NIST SP 800-38A.
func nistInputs(t *testing.T) (key, iv, plaintext []byte) {
	t.Helper()

	key = mustHex(t, "2b7e151628aed2a6abf7158809cf4f3c")
	iv = mustHex(t, "000102030405060708090a0b0c0d0e0f")
	plaintext = mustHex(t, "6bc1bee22e409f96e93d7e117393172a"+
		"ae2d8a571e03ac9c9eb76fac45af8e51"+
		"30c81c46a35ce411e5fbc1191a0a52ef"+
		"f69f2445df4f9b17ad2b417be66c3710")

	return key, iv, plaintext
}

// TestCBCNistVector checks the AES-128-CBC example from NIST SP 800-38A F.2.1.
func TestCBCNistVector(t *testing.T) {
	key, iv, plaintext := nistInputs(t)
	want := mustHex(t, "7649abac8119b246cee98e9b12e9197d"+
		"5086cb9b507219ee95db113a917678b2"+
		"73bed6b8e3c1743b7116e69e22229516"+
		"3ff1caa1681fac09120eca307586e1a7")

	c, err := ciphermode.NewCBC(engine.AES128)
	require.NoError(t, err)
	require.NoError(t, c.Init(key, iv, engine.Encrypt))

	got, err := c.ProcessBlocks(plaintext)
	require.NoError(t, err)
	require.Equal(t, want, got)

	// Decrypt direction reverses it.
	require.NoError(t, c.Init(key, iv, engine.Decrypt))

	back, err := c.ProcessBlocks(got)
	require.NoError(t, err)
	require.Equal(t, plaintext, back)
}

// TestCBCChaining verifies that chaining state persists across calls: block
// by block processing equals one-shot processing.
func TestCBCChaining(t *testing.T) {
	key, iv, plaintext := nistInputs(t)

	oneShot, err := ciphermode.NewCBC(engine.AES128)
	require.NoError(t, err)
	require.NoError(t, oneShot.Init(key, iv, engine.Encrypt))

	want, err := oneShot.ProcessBlocks(plaintext)
	require.NoError(t, err)

	chunked, err := ciphermode.NewCBC(engine.AES128)
	require.NoError(t, err)
	require.NoError(t, chunked.Init(key, iv, engine.Encrypt))

	var got []byte
	for off := 0; off < len(plaintext); off += 16 {
		part, err := chunked.ProcessBlocks(plaintext[off : off+16])
		require.NoError(t, err)
		got = append(got, part...)
	}

	require.Equal(t, want, got)
}

func TestCBCErrors(t *testing.T) {
	key, iv, _ := nistInputs(t)

	c, err := ciphermode.NewCBC(engine.AES128)
	require.NoError(t, err)

	_, err = c.ProcessBlocks(make([]byte, 16))
	require.ErrorIs(t, err, engine.ErrNotInitialized)

	require.ErrorIs(t, c.Init(key, iv[:8], engine.Encrypt), engine.ErrInvalidKeyMaterial)
	require.ErrorIs(t, c.Init(key[:5], iv, engine.Encrypt), engine.ErrInvalidKeyMaterial)

	require.NoError(t, c.Init(key, iv, engine.Encrypt))

	_, err = c.ProcessBlocks(make([]byte, 10))
	require.Error(t, err, "partial blocks must be rejected")

	c.Reset()
	_, err = c.ProcessBlocks(make([]byte, 16))
	require.ErrorIs(t, err, engine.ErrNotInitialized)

	_, err = ciphermode.NewCBC("des")
	require.ErrorIs(t, err, engine.ErrUnsupportedAlgorithm)
}

// TestCTRAgainstStdlib cross-checks the composed CTR engine with the
// standard library's, including odd-sized chunked processing.
func TestCTRAgainstStdlib(t *testing.T) {
	key, iv, plaintext := nistInputs(t)
	plaintext = append(plaintext, []byte("trailing partial block")...)

	block, err := aes.NewCipher(key)
	require.NoError(t, err)

	want := make([]byte, len(plaintext))
	cipher.NewCTR(block, iv).XORKeyStream(want, plaintext)

	c, err := ciphermode.NewCTR(engine.AES128)
	require.NoError(t, err)
	require.NoError(t, c.Init(key, iv, engine.Encrypt))

	var got []byte
	for _, n := range []int{1, 15, 16, 17, 3} {
		part, err := c.ProcessBytes(plaintext[len(got) : len(got)+n])
		require.NoError(t, err)
		got = append(got, part...)
	}

	rest, err := c.ProcessBytes(plaintext[len(got):])
	require.NoError(t, err)
	got = append(got, rest...)

	require.Equal(t, want, got)
}

// TestOFBAgainstStdlib cross-checks the composed OFB engine with the
// standard library's.
func TestOFBAgainstStdlib(t *testing.T) {
	key, iv, plaintext := nistInputs(t)
	plaintext = append(plaintext, []byte("odd tail")...)

	block, err := aes.NewCipher(key)
	require.NoError(t, err)

	want := make([]byte, len(plaintext))
	cipher.NewOFB(block, iv).XORKeyStream(want, plaintext)

	o, err := ciphermode.NewOFB(engine.AES128)
	require.NoError(t, err)
	require.NoError(t, o.Init(key, iv, engine.Encrypt))

	got, err := o.ProcessBytes(plaintext)
	require.NoError(t, err)
	require.Equal(t, want, got)

	// Decryption is the same transform.
	require.NoError(t, o.Init(key, iv, engine.Decrypt))

	back, err := o.ProcessBytes(got)
	require.NoError(t, err)
	require.Equal(t, plaintext, back)
}

func TestStreamModeErrors(t *testing.T) {
	key, iv, _ := nistInputs(t)

	c, err := ciphermode.NewCTR(engine.AES128)
	require.NoError(t, err)

	_, err = c.ProcessBytes([]byte("x"))
	require.ErrorIs(t, err, engine.ErrNotInitialized)

	require.ErrorIs(t, c.Init(key, iv[:4], engine.Encrypt), engine.ErrInvalidKeyMaterial)

	o, err := ciphermode.NewOFB(engine.AES128)
	require.NoError(t, err)

	_, err = o.ProcessBytes([]byte("x"))
	require.ErrorIs(t, err, engine.ErrNotInitialized)
}

func TestGCMRoundTrip(t *testing.T) {
	key := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	iv := mustHex(t, "000102030405060708090a0b")
	plaintext := []byte("authenticated payload")
	aad := []byte("header")

	g, err := ciphermode.NewGCM(engine.AES128)
	require.NoError(t, err)
	require.NoError(t, g.Init(key, iv, engine.Encrypt))
	require.NoError(t, g.UpdateAAD(aad))
	require.NoError(t, g.Update(plaintext))

	sealed, err := g.Final()
	require.NoError(t, err)
	require.Len(t, sealed, g.OutputSize(len(plaintext)))

	// Final consumed the engine.
	require.ErrorIs(t, g.Update(plaintext), engine.ErrNotInitialized)

	require.NoError(t, g.Init(key, iv, engine.Decrypt))
	require.NoError(t, g.UpdateAAD(aad))
	require.NoError(t, g.Update(sealed))

	opened, err := g.Final()
	require.NoError(t, err)
	require.Equal(t, plaintext, opened)
}

func TestGCMAuthenticationFailure(t *testing.T) {
	key := make([]byte, 32)
	iv := make([]byte, ciphermode.GCMIVSize)
	plaintext := []byte("payload")

	g, err := ciphermode.NewGCM(engine.AES256)
	require.NoError(t, err)
	require.NoError(t, g.Init(key, iv, engine.Encrypt))
	require.NoError(t, g.Update(plaintext))

	sealed, err := g.Final()
	require.NoError(t, err)

	// Flip one bit in the tag region.
	sealed[len(sealed)-1] ^= 0x01

	require.NoError(t, g.Init(key, iv, engine.Decrypt))
	require.NoError(t, g.Update(sealed))

	opened, err := g.Final()
	require.ErrorIs(t, err, ciphermode.ErrAuthentication)
	require.Nil(t, opened, "no partial plaintext on authentication failure")

	// Mismatched associated data must also fail.
	sealed[len(sealed)-1] ^= 0x01

	require.NoError(t, g.Init(key, iv, engine.Decrypt))
	require.NoError(t, g.UpdateAAD([]byte("wrong")))
	require.NoError(t, g.Update(sealed))

	_, err = g.Final()
	require.ErrorIs(t, err, ciphermode.ErrAuthentication)
}

func TestGCMErrors(t *testing.T) {
	_, err := ciphermode.NewGCM(engine.ChaCha20)
	require.ErrorIs(t, err, engine.ErrUnsupportedAlgorithm)

	g, err := ciphermode.NewGCM(engine.AES128)
	require.NoError(t, err)

	require.ErrorIs(t, g.Update(nil), engine.ErrNotInitialized)
	require.ErrorIs(t, g.UpdateAAD(nil), engine.ErrNotInitialized)

	_, err = g.Final()
	require.ErrorIs(t, err, engine.ErrNotInitialized)

	require.ErrorIs(t, g.Init(make([]byte, 16), make([]byte, 5), engine.Encrypt), engine.ErrInvalidKeyMaterial)
	require.ErrorIs(t, g.Init(make([]byte, 5), make([]byte, 12), engine.Encrypt), engine.ErrInvalidKeyMaterial)
}
