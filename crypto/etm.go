/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package crypto

import (
	"encoding/binary"
	"fmt"

	"github.com/cryptoweave/cryptoweave/ciphermode"
	"github.com/cryptoweave/cryptoweave/engine"
	"github.com/cryptoweave/cryptoweave/padding"
	"github.com/cryptoweave/cryptoweave/util/cryptoutil"
)

// aesBlockSize is the AES block size in bytes, the block size of every
// encrypt-then-MAC scheme here.
const aesBlockSize = 16

// etmEncrypt implements draft-mcgrew-aead-aes-cbc-hmac-sha2: PKCS7-pad,
// CBC-encrypt under the second key half, then tag with a truncated HMAC over
// AAD || IV || ciphertext || AL under the first key half.
func (c *Cipher) etmEncrypt(plaintext, iv, aad []byte) ([]byte, error) {
	macKey, encKey := c.splitKey()

	padCount := aesBlockSize - len(plaintext)%aesBlockSize
	padded := make([]byte, len(plaintext)+padCount)
	copy(padded, plaintext)

	padded, err := padding.PadInPlace(padded, len(plaintext), padding.PKCS7)
	if err != nil {
		return nil, fmt.Errorf("crypto: %w", err)
	}

	cbc, err := ciphermode.NewCBC(c.desc.cipher)
	if err != nil {
		return nil, fmt.Errorf("crypto: %w", err)
	}

	if err := cbc.Init(encKey, iv, engine.Encrypt); err != nil {
		return nil, fmt.Errorf("crypto: %w", err)
	}

	ciphertext, err := cbc.ProcessBlocks(padded)
	if err != nil {
		return nil, fmt.Errorf("crypto: %w", err)
	}

	tag, err := c.etmTag(macKey, aad, iv, ciphertext)
	if err != nil {
		return nil, err
	}

	return append(ciphertext, tag...), nil
}

// etmDecrypt verifies the tag over the received ciphertext first; CBC
// decryption and unpadding run only after the tag matched.
func (c *Cipher) etmDecrypt(sealed, iv, aad []byte) ([]byte, error) {
	macKey, encKey := c.splitKey()

	ctLen := len(sealed) - c.desc.tagSize
	if ctLen <= 0 || ctLen%aesBlockSize != 0 {
		return nil, fmt.Errorf("crypto: malformed ciphertext: %w", ErrAuthentication)
	}

	ciphertext, tag := sealed[:ctLen], sealed[ctLen:]

	want, err := c.etmTag(macKey, aad, iv, ciphertext)
	if err != nil {
		return nil, err
	}

	if !cryptoutil.ConstantTimeEqual(tag, want) {
		return nil, fmt.Errorf("crypto: %w", ErrAuthentication)
	}

	cbc, err := ciphermode.NewCBC(c.desc.cipher)
	if err != nil {
		return nil, fmt.Errorf("crypto: %w", err)
	}

	if err := cbc.Init(encKey, iv, engine.Decrypt); err != nil {
		return nil, fmt.Errorf("crypto: %w", err)
	}

	padded, err := cbc.ProcessBlocks(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("crypto: %w", err)
	}

	plaintext, err := padding.Unpad(padded, padding.PKCS7)
	if err != nil {
		return nil, fmt.Errorf("crypto: %w", err)
	}

	return plaintext, nil
}

// etmTag computes the truncated HMAC over AAD || IV || ciphertext || AL,
// where AL is the bit length of the AAD as a 64-bit big-endian integer.
func (c *Cipher) etmTag(macKey, aad, iv, ciphertext []byte) ([]byte, error) {
	mac, err := engine.NewHMAC(c.desc.digest, macKey)
	if err != nil {
		return nil, fmt.Errorf("crypto: %w", err)
	}

	al := make([]byte, 8)
	binary.BigEndian.PutUint64(al, uint64(len(aad))*8)

	for _, part := range [][]byte{aad, iv, ciphertext, al} {
		if err := mac.Update(part); err != nil {
			return nil, fmt.Errorf("crypto: %w", err)
		}
	}

	return mac.Final()[:c.desc.tagSize], nil
}

// splitKey returns the MAC and encryption halves of the scheme key.
func (c *Cipher) splitKey() (macKey, encKey []byte) {
	half := c.desc.keySize / 2

	return c.key[:half], c.key[half:]
}
