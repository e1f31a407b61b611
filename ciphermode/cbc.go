/*
Copyright Cryptoweave Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ciphermode

import (
	"fmt"

	"github.com/cryptoweave/cryptoweave/engine"
)

// CBC is a cipher-block-chaining mode engine. Each input block is XORed
// with the previous ciphertext block (the IV for the first block) before
// encryption; chaining state persists across ProcessBlocks calls.
type CBC struct {
	raw   *engine.AESBlockEngine
	dir   engine.Direction
	chain []byte
	ready bool
}

// NewCBC returns an uninitialized CBC engine over the given block cipher.
func NewCBC(alg engine.CipherAlg) (*CBC, error) {
	raw, err := engine.NewBlockCipher(alg)
	if err != nil {
		return nil, fmt.Errorf("cbc: %w", err)
	}

	return &CBC{raw: raw}, nil
}

// Init keys the engine and seeds the chain with iv, discarding prior state.
func (c *CBC) Init(key, iv []byte, dir engine.Direction) error {
	if err := validateIV(iv, c.raw.BlockSize(), "cbc"); err != nil {
		return err
	}

	if err := c.raw.Init(key, nil, dir); err != nil {
		return fmt.Errorf("cbc: %w", err)
	}

	c.dir = dir
	c.chain = append([]byte(nil), iv...)
	c.ready = true

	return nil
}

// ProcessBlocks transforms one or more full blocks. Input length must be a
// multiple of the block size; callers pad partial trailing blocks first.
func (c *CBC) ProcessBlocks(in []byte) ([]byte, error) {
	if !c.ready {
		return nil, fmt.Errorf("cbc: %w", engine.ErrNotInitialized)
	}

	bs := c.raw.BlockSize()
	if len(in)%bs != 0 {
		return nil, fmt.Errorf("cbc: input length %d is not a multiple of the block size %d", len(in), bs)
	}

	out := make([]byte, 0, len(in))

	for off := 0; off < len(in); off += bs {
		block := in[off : off+bs]

		processed, err := c.processBlock(block)
		if err != nil {
			return nil, err
		}

		out = append(out, processed...)
	}

	return out, nil
}

func (c *CBC) processBlock(block []byte) ([]byte, error) {
	bs := c.raw.BlockSize()

	if c.dir == engine.Encrypt {
		x := make([]byte, bs)
		for i := range x {
			x[i] = block[i] ^ c.chain[i]
		}

		y, err := c.raw.ProcessBlock(x)
		if err != nil {
			return nil, fmt.Errorf("cbc: %w", err)
		}

		c.chain = y

		return y, nil
	}

	y, err := c.raw.ProcessBlock(block)
	if err != nil {
		return nil, fmt.Errorf("cbc: %w", err)
	}

	for i := range y {
		y[i] ^= c.chain[i]
	}

	c.chain = append([]byte(nil), block...)

	return y, nil
}

// Reset returns the engine to the uninitialized state.
func (c *CBC) Reset() {
	c.raw.Reset()
	c.chain = nil
	c.ready = false
}

// BlockSize returns the block size in bytes.
func (c *CBC) BlockSize() int {
	return c.raw.BlockSize()
}
