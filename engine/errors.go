/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package engine

import "errors"

// Errors reported by primitive engines. All are distinct and matchable with
// errors.Is. Configuration errors (ErrUnsupportedAlgorithm,
// ErrInvalidKeyMaterial) are raised eagerly at engine construction or Init,
// never partway through processing.
var (
	// ErrUnsupportedAlgorithm is returned when an algorithm identifier does
	// not map to a known primitive.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrInvalidKeyMaterial is returned when a key or IV length does not
	// match the algorithm's declared size class.
	ErrInvalidKeyMaterial = errors.New("invalid key material")

	// ErrNotInitialized is returned when an operation is invoked before Init,
	// or after finalize without re-initialization.
	ErrNotInitialized = errors.New("engine not initialized")
)
