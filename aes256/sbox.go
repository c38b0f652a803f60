// SPDX-FileCopyrightText: Copyright (C) 2026  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package aes256

import (
	"fmt"
	"io"
	"math/bits"
	"sync"
)

const affineConstant = 0x63

var (
	defaultTables     *Tables
	defaultTablesOnce sync.Once
)

// Tables holds the forward and inverse AES substitution tables.  A Tables
// is immutable once built and may be shared freely between goroutines.
type Tables struct {
	sbox    [256]byte
	invSbox [256]byte
	ready   bool
}

// NewTables derives the AES S-box and its inverse.
func NewTables() *Tables {
	t := new(Tables)

	// p walks the multiplicative group generated by 3, q walks it in the
	// opposite direction (multiplication by 0xf6 = 3^-1) so that p * q = 1
	// on every iteration.
	var p, q byte = 1, 1
	for {
		p = p ^ xtime(p)

		q ^= q << 1
		q ^= q << 2
		q ^= q << 4
		if q&0x80 != 0 {
			q ^= 0x09
		}

		t.sbox[p] = affine(q)
		if p == 1 {
			break
		}
	}

	// 0 has no inverse.
	t.sbox[0] = affineConstant

	for i := 0; i < 256; i++ {
		t.invSbox[t.sbox[i]] = byte(i)
	}
	t.ready = true
	return t
}

// DefaultTables returns the process wide substitution tables, deriving
// them on first use.
func DefaultTables() *Tables {
	defaultTablesOnce.Do(func() {
		defaultTables = NewTables()
	})
	return defaultTables
}

func affine(b byte) byte {
	return b ^ bits.RotateLeft8(b, 1) ^ bits.RotateLeft8(b, 2) ^
		bits.RotateLeft8(b, 3) ^ bits.RotateLeft8(b, 4) ^ affineConstant
}

// Validate returns ErrTablesUninitialized if t was not built by NewTables.
func (t *Tables) Validate() error {
	if t == nil || !t.ready {
		return ErrTablesUninitialized
	}
	return nil
}

func (t *Tables) mustBeReady() {
	if err := t.Validate(); err != nil {
		panic(err)
	}
}

// Sub returns the forward S-box substitution of b.
func (t *Tables) Sub(b byte) byte {
	t.mustBeReady()
	return t.sbox[b]
}

// InvSub returns the inverse S-box substitution of b.
func (t *Tables) InvSub(b byte) byte {
	t.mustBeReady()
	return t.invSbox[b]
}

// SBox returns a copy of the forward substitution table.
func (t *Tables) SBox() [256]byte {
	t.mustBeReady()
	return t.sbox
}

// InvSBox returns a copy of the inverse substitution table.
func (t *Tables) InvSBox() [256]byte {
	t.mustBeReady()
	return t.invSbox
}

// WriteSBox renders table as a 16x16 grid of hex bytes, with the low
// nibble across the top and the high nibble down the side.
func WriteSBox(w io.Writer, table *[256]byte) error {
	if _, err := io.WriteString(w, "    "); err != nil {
		return err
	}
	for i := 0; i < 16; i++ {
		if _, err := fmt.Fprintf(w, "%02x ", i); err != nil {
			return err
		}
	}
	for i, v := range table {
		if i%16 == 0 {
			if _, err := fmt.Fprintf(w, "\n%02x  ", i/16); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%02x ", v); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
