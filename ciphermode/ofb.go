/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ciphermode

import (
	"fmt"

	"github.com/cryptoweave/cryptoweave/engine"
)

// OFB is an output-feedback mode engine. The feedback register starts at the
// IV; each keystream block is the encryption of the previous one. Like CTR,
// OFB is a byte stream: arbitrary input lengths, leftover keystream carried
// across calls.
type OFB struct {
	raw      *engine.AESBlockEngine
	register []byte
	ks       keystream
	ready    bool
}

// NewOFB returns an uninitialized OFB engine over the given block cipher.
func NewOFB(alg engine.CipherAlg) (*OFB, error) {
	raw, err := engine.NewBlockCipher(alg)
	if err != nil {
		return nil, fmt.Errorf("ofb: %w", err)
	}

	return &OFB{raw: raw}, nil
}

// Init keys the engine and seeds the feedback register with iv, discarding
// prior state. OFB encrypts and decrypts identically.
func (o *OFB) Init(key, iv []byte, _ engine.Direction) error {
	if err := validateIV(iv, o.raw.BlockSize(), "ofb"); err != nil {
		return err
	}

	if err := o.raw.Init(key, nil, engine.Encrypt); err != nil {
		return fmt.Errorf("ofb: %w", err)
	}

	o.register = append([]byte(nil), iv...)
	o.ks = keystream{next: o.nextBlock}
	o.ready = true

	return nil
}

func (o *OFB) nextBlock() ([]byte, error) {
	block, err := o.raw.ProcessBlock(o.register)
	if err != nil {
		return nil, fmt.Errorf("ofb: %w", err)
	}

	o.register = block

	return block, nil
}

// ProcessBytes transforms the next len(in) bytes of the stream.
func (o *OFB) ProcessBytes(in []byte) ([]byte, error) {
	if !o.ready {
		return nil, fmt.Errorf("ofb: %w", engine.ErrNotInitialized)
	}

	return o.ks.xor(in)
}

// Reset returns the engine to the uninitialized state.
func (o *OFB) Reset() {
	o.raw.Reset()
	o.register = nil
	o.ks = keystream{}
	o.ready = false
}

// BlockSize returns the block size in bytes.
func (o *OFB) BlockSize() int {
	return o.raw.BlockSize()
}
