/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package engine_test

import (
	"bytes"
	"crypto/aes"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"

	"github.com/cryptoweave/cryptoweave/engine"
)

func TestDigestEngine(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")

	d, err := engine.NewDigest(engine.SHA256)
	require.NoError(t, err)
	require.Equal(t, sha256.Size, d.Size())

	// Chunked updates must match a one-shot stdlib hash.
	require.NoError(t, d.Update(data[:10]))
	require.NoError(t, d.Update(data[10:]))

	want := sha256.Sum256(data)
	require.Equal(t, want[:], d.Digest())

	// The engine is consumed after finalize; update must fail until Reset.
	err = d.Update(data)
	require.ErrorIs(t, err, engine.ErrNotInitialized)

	d.Reset()
	require.NoError(t, d.Update(data))
	require.Equal(t, want[:], d.Digest())
}

func TestDigestEngineAlgorithms(t *testing.T) {
	data := []byte("abc")

	sha384Want := sha512.Sum384(data)
	blakeWant := blake2b.Sum512(data)

	tests := []struct {
		alg  engine.DigestAlg
		want []byte
	}{
		{engine.SHA384, sha384Want[:]},
		{engine.Blake2b512, blakeWant[:]},
	}

	for _, tc := range tests {
		got, err := engine.DigestOf(tc.alg, engine.Bytes(data))
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
}

func TestDigestVariableSize(t *testing.T) {
	d, err := engine.NewDigestWithSize(engine.Blake2b, 20)
	require.NoError(t, err)
	require.Equal(t, 20, d.Size())

	require.NoError(t, d.Update([]byte("abc")))
	require.Len(t, d.Digest(), 20)

	_, err = engine.NewDigestWithSize(engine.Blake2b, 200)
	require.ErrorIs(t, err, engine.ErrUnsupportedAlgorithm)

	// Fixed-output digests reject an explicit size.
	_, err = engine.NewDigestWithSize(engine.SHA256, 20)
	require.ErrorIs(t, err, engine.ErrUnsupportedAlgorithm)
}

func TestUnsupportedDigest(t *testing.T) {
	_, err := engine.NewDigest("md42")
	require.ErrorIs(t, err, engine.ErrUnsupportedAlgorithm)

	_, err = engine.DigestOf("md42", engine.Bytes(nil))
	require.ErrorIs(t, err, engine.ErrUnsupportedAlgorithm)
}

func TestHMACEngine(t *testing.T) {
	key := []byte("mysecretkey")
	data := []byte("some data to authenticate")

	m, err := engine.NewHMAC(engine.SHA256, key)
	require.NoError(t, err)
	require.Equal(t, sha256.Size, m.Size())

	require.NoError(t, m.Update(data[:5]))
	require.NoError(t, m.Update(data[5:]))

	ref := hmac.New(sha256.New, key)
	ref.Write(data)
	require.Equal(t, ref.Sum(nil), m.Final())

	// Consumed after Final.
	err = m.Update(data)
	require.ErrorIs(t, err, engine.ErrNotInitialized)

	// Reset keeps the key.
	m.Reset()
	require.NoError(t, m.Update(data))
	require.Equal(t, ref.Sum(nil), m.Final())

	// Init re-keys and discards state.
	require.NoError(t, m.Init([]byte("another key")))
	require.NoError(t, m.Update(data))

	ref2 := hmac.New(sha256.New, []byte("another key"))
	ref2.Write(data)
	require.Equal(t, ref2.Sum(nil), m.Final())
}

func TestSources(t *testing.T) {
	data := []byte("stream me")
	want := sha256.Sum256(data)

	fromBytes, err := engine.DigestOf(engine.SHA256, engine.Bytes(data))
	require.NoError(t, err)

	fromStr, err := engine.DigestOf(engine.SHA256, engine.Str(data))
	require.NoError(t, err)

	fromReader, err := engine.DigestOf(engine.SHA256, engine.Reader{R: bytes.NewReader(data)})
	require.NoError(t, err)

	require.Equal(t, want[:], fromBytes)
	require.Equal(t, want[:], fromStr)
	require.Equal(t, want[:], fromReader)
}

func TestHMACOf(t *testing.T) {
	key := []byte("k")
	data := []byte("v")

	got, err := engine.HMACOf(engine.SHA512, key, engine.Bytes(data))
	require.NoError(t, err)

	ref := hmac.New(sha512.New, key)
	ref.Write(data)
	require.Equal(t, ref.Sum(nil), got)
}

func TestAESBlockEngine(t *testing.T) {
	key := make([]byte, 16)
	for i := range key {
		key[i] = byte(i)
	}

	e, err := engine.NewBlockCipher(engine.AES128)
	require.NoError(t, err)

	// Processing before Init is an error.
	_, err = e.ProcessBlock(make([]byte, 16))
	require.ErrorIs(t, err, engine.ErrNotInitialized)

	require.NoError(t, e.Init(key, nil, engine.Encrypt))

	in := []byte("exactly 16 bytes")
	out, err := e.ProcessBlock(in)
	require.NoError(t, err)

	ref, err := aes.NewCipher(key)
	require.NoError(t, err)

	want := make([]byte, 16)
	ref.Encrypt(want, in)
	require.Equal(t, want, out)

	// Re-Init flips direction and round-trips the block.
	require.NoError(t, e.Init(key, nil, engine.Decrypt))

	back, err := e.ProcessBlock(out)
	require.NoError(t, err)
	require.Equal(t, in, back)

	// Wrong block length.
	_, err = e.ProcessBlock(make([]byte, 15))
	require.Error(t, err)

	// Reset moves the engine back to uninitialized.
	e.Reset()
	_, err = e.ProcessBlock(in)
	require.ErrorIs(t, err, engine.ErrNotInitialized)
}

func TestAESBlockEngineKeyValidation(t *testing.T) {
	e, err := engine.NewBlockCipher(engine.AES256)
	require.NoError(t, err)

	err = e.Init(make([]byte, 16), nil, engine.Encrypt)
	require.ErrorIs(t, err, engine.ErrInvalidKeyMaterial)

	_, err = engine.NewBlockCipher("des")
	require.ErrorIs(t, err, engine.ErrUnsupportedAlgorithm)
}

func TestChaCha20Engine(t *testing.T) {
	key := make([]byte, 32)
	nonce := make([]byte, 12)

	e, err := engine.NewStreamCipher(engine.ChaCha20)
	require.NoError(t, err)

	_, err = e.ProcessBytes([]byte("data"))
	require.ErrorIs(t, err, engine.ErrNotInitialized)

	require.NoError(t, e.Init(key, nonce, engine.Encrypt))

	plaintext := []byte("stream ciphers take arbitrary lengths")

	ct1, err := e.ProcessBytes(plaintext[:7])
	require.NoError(t, err)

	ct2, err := e.ProcessBytes(plaintext[7:])
	require.NoError(t, err)

	// Decrypting the concatenation with a fresh keystream restores the input.
	dec, err := engine.NewStreamCipher(engine.ChaCha20)
	require.NoError(t, err)
	require.NoError(t, dec.Init(key, nonce, engine.Decrypt))

	got, err := dec.ProcessBytes(append(ct1, ct2...))
	require.NoError(t, err)
	require.Equal(t, plaintext, got)

	// Bad key and nonce sizes.
	require.ErrorIs(t, e.Init(make([]byte, 16), nonce, engine.Encrypt), engine.ErrInvalidKeyMaterial)
	require.ErrorIs(t, e.Init(key, make([]byte, 5), engine.Encrypt), engine.ErrInvalidKeyMaterial)
}

func TestKeySize(t *testing.T) {
	for alg, want := range map[engine.CipherAlg]int{
		engine.AES128:   16,
		engine.AES192:   24,
		engine.AES256:   32,
		engine.ChaCha20: 32,
	} {
		got, err := engine.KeySize(alg)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := engine.KeySize("des")
	require.ErrorIs(t, err, engine.ErrUnsupportedAlgorithm)
}
