/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package engine

// DigestAlg identifies a hash algorithm supplied by the provider.
type DigestAlg string

// Supported digest algorithms. Blake2b is the variable-output variant; its
// digest size is chosen at engine construction.
const (
	SHA1       DigestAlg = "sha1"
	SHA256     DigestAlg = "sha256"
	SHA384     DigestAlg = "sha384"
	SHA512     DigestAlg = "sha512"
	SHA3x256   DigestAlg = "sha3-256"
	SHA3x512   DigestAlg = "sha3-512"
	Blake2b256 DigestAlg = "blake2b-256"
	Blake2b512 DigestAlg = "blake2b-512"
	Blake2b    DigestAlg = "blake2b"
)

// CipherAlg identifies a raw cipher primitive supplied by the provider.
type CipherAlg string

// Supported cipher algorithms.
const (
	AES128   CipherAlg = "aes128"
	AES192   CipherAlg = "aes192"
	AES256   CipherAlg = "aes256"
	ChaCha20 CipherAlg = "chacha20"
)

// Direction selects whether a cipher engine encrypts or decrypts.
type Direction int

// Cipher directions.
const (
	Encrypt Direction = iota
	Decrypt
)

// aesKeySizes maps AES algorithm identifiers to their fixed key sizes.
//
//nolint:gochecknoglobals
var aesKeySizes = map[CipherAlg]int{
	AES128: 16,
	AES192: 24,
	AES256: 32,
}

// KeySize returns the fixed key size in bytes for the given cipher algorithm.
func KeySize(alg CipherAlg) (int, error) {
	if size, ok := aesKeySizes[alg]; ok {
		return size, nil
	}

	if alg == ChaCha20 {
		return chaCha20KeySize, nil
	}

	return 0, ErrUnsupportedAlgorithm
}

const chaCha20KeySize = 32
