// SPDX-FileCopyrightText: Copyright (C) 2026  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package aes256

import "crypto/cipher"

// Cipher is an AES-256 instance with a cached key schedule.  It implements
// crypto/cipher.Block and is safe for concurrent use.
type Cipher struct {
	tables   *Tables
	schedule *Schedule
}

// NewCipher creates and returns a new cipher.Block for the 32 byte key.
func NewCipher(key []byte) (cipher.Block, error) {
	return NewCipherWithTables(DefaultTables(), key)
}

// NewCipherWithTables is like NewCipher, but uses the provided tables
// instead of the process wide ones.
func NewCipherWithTables(t *Tables, key []byte) (*Cipher, error) {
	s, err := t.ExpandKey(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{
		tables:   t,
		schedule: s,
	}, nil
}

// BlockSize returns the AES block size.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt encrypts the first block in src into dst.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes256: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes256: output not full block")
	}
	out := c.tables.encrypt(LoadState(src), c.schedule).Bytes()
	copy(dst, out[:])
}

// Decrypt decrypts the first block in src into dst.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes256: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes256: output not full block")
	}
	out := c.tables.decrypt(LoadState(src), c.schedule).Bytes()
	copy(dst, out[:])
}

// Schedule returns the cached key schedule.
func (c *Cipher) Schedule() *Schedule {
	return c.schedule
}

// Reset clears the Cipher such that no key material is left in memory.
func (c *Cipher) Reset() {
	c.schedule.Reset()
}
