/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ciphermode

import (
	"fmt"

	"github.com/cryptoweave/cryptoweave/engine"
)

// CTR is a counter (SIC) mode engine. The IV is the initial counter block;
// the whole block is incremented big-endian once per keystream block.
// Inputs of arbitrary length are supported and keystream left over from one
// call is consumed by the next, so processing is a true byte stream.
type CTR struct {
	raw     *engine.AESBlockEngine
	counter []byte
	ks      keystream
	ready   bool
}

// NewCTR returns an uninitialized CTR engine over the given block cipher.
func NewCTR(alg engine.CipherAlg) (*CTR, error) {
	raw, err := engine.NewBlockCipher(alg)
	if err != nil {
		return nil, fmt.Errorf("ctr: %w", err)
	}

	return &CTR{raw: raw}, nil
}

// Init keys the engine and loads iv as the initial counter block, discarding
// prior state. Direction is accepted for interface uniformity; CTR encrypts
// and decrypts identically.
func (c *CTR) Init(key, iv []byte, _ engine.Direction) error {
	if err := validateIV(iv, c.raw.BlockSize(), "ctr"); err != nil {
		return err
	}

	// the raw cipher always runs forward: decryption XORs the same keystream
	if err := c.raw.Init(key, nil, engine.Encrypt); err != nil {
		return fmt.Errorf("ctr: %w", err)
	}

	c.counter = append([]byte(nil), iv...)
	c.ks = keystream{next: c.nextBlock}
	c.ready = true

	return nil
}

func (c *CTR) nextBlock() ([]byte, error) {
	block, err := c.raw.ProcessBlock(c.counter)
	if err != nil {
		return nil, fmt.Errorf("ctr: %w", err)
	}

	for i := len(c.counter) - 1; i >= 0; i-- {
		c.counter[i]++
		if c.counter[i] != 0 {
			break
		}
	}

	return block, nil
}

// ProcessBytes transforms the next len(in) bytes of the stream.
func (c *CTR) ProcessBytes(in []byte) ([]byte, error) {
	if !c.ready {
		return nil, fmt.Errorf("ctr: %w", engine.ErrNotInitialized)
	}

	return c.ks.xor(in)
}

// Reset returns the engine to the uninitialized state.
func (c *CTR) Reset() {
	c.raw.Reset()
	c.counter = nil
	c.ks = keystream{}
	c.ready = false
}

// BlockSize returns the block size in bytes.
func (c *CTR) BlockSize() int {
	return c.raw.BlockSize()
}
