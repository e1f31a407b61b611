/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package cryptoweave is a cryptographic composition layer. It assembles
// low-level primitives (block/stream ciphers, hash functions, MAC engines)
// supplied by a provider into higher-level, safe-to-use constructions:
// streaming key-derivation functions, block padding schemes, cipher mode
// composition and authenticated encryption (AEAD) schemes.
//
// The library does not implement primitive algorithms itself; AES rounds,
// SHA compression and friends come from the Go standard library and
// golang.org/x/crypto through the engine.Provider abstraction.
package cryptoweave
