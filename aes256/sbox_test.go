// SPDX-FileCopyrightText: Copyright (C) 2026  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package aes256

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSBoxKnownEntries(t *testing.T) {
	assert := assert.New(t)

	tbl := NewTables()
	assert.Equal(byte(0x63), tbl.Sub(0x00))
	assert.Equal(byte(0x7c), tbl.Sub(0x01))
	assert.Equal(byte(0xed), tbl.Sub(0x53))
	assert.Equal(byte(0x16), tbl.Sub(0xff))
	assert.Equal(byte(0x52), tbl.InvSub(0x00))
	assert.Equal(byte(0x53), tbl.InvSub(0xed))
}

func TestSBoxBijective(t *testing.T) {
	require := require.New(t)

	tbl := NewTables()
	sbox := tbl.SBox()
	inv := tbl.InvSBox()

	var seen [256]bool
	for x := 0; x < 256; x++ {
		y := sbox[x]
		require.False(seen[y], "S-box value 0x%02x repeated", y)
		seen[y] = true
		require.Equal(byte(x), inv[y], "inverse mismatch for 0x%02x", x)
	}
}

func TestSBoxHasNoFixedPoints(t *testing.T) {
	tbl := NewTables()
	for x := 0; x < 256; x++ {
		assert.NotEqual(t, byte(x), tbl.Sub(byte(x)))
	}
}

func TestDefaultTablesOnce(t *testing.T) {
	var wg sync.WaitGroup
	got := make([]*Tables, 16)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = DefaultTables()
		}(i)
	}
	wg.Wait()

	for _, tbl := range got {
		require.Same(t, got[0], tbl)
	}
	require.NoError(t, got[0].Validate())
	require.Equal(t, NewTables().SBox(), got[0].SBox())
}

func TestUninitializedTables(t *testing.T) {
	assert := assert.New(t)

	var tbl Tables
	assert.ErrorIs(tbl.Validate(), ErrTablesUninitialized)
	assert.PanicsWithValue(ErrTablesUninitialized, func() { tbl.InvSub(0x42) })
	assert.PanicsWithValue(ErrTablesUninitialized, func() { tbl.InvSubBytes(State{}) })

	_, err := tbl.ExpandKey(make([]byte, KeySize))
	assert.ErrorIs(err, ErrTablesUninitialized)

	var nilTables *Tables
	assert.ErrorIs(nilTables.Validate(), ErrTablesUninitialized)
}

func TestWriteSBox(t *testing.T) {
	require := require.New(t)

	tbl := NewTables()
	sbox := tbl.SBox()

	var buf bytes.Buffer
	require.NoError(WriteSBox(&buf, &sbox))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(lines, 17)
	require.True(strings.HasPrefix(lines[0], "    00 01 02"))
	require.True(strings.HasPrefix(lines[1], "00  63 7c 77 7b"))
	require.True(strings.HasSuffix(strings.TrimSpace(lines[16]), "54 bb 16"))
}
