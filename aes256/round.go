// SPDX-FileCopyrightText: Copyright (C) 2026  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package aes256

// State is the 4x4 byte AES state, indexed as [row][column].  Byte i of a
// block is stored at row i%4, column i/4.
type State [4][4]byte

// LoadState copies the first BlockSize bytes of block into a State.
func LoadState(block []byte) State {
	var s State
	for i := 0; i < BlockSize; i++ {
		s[i%4][i/4] = block[i]
	}
	return s
}

// Bytes returns the block represented by s.
func (s State) Bytes() [BlockSize]byte {
	var b [BlockSize]byte
	for i := range b {
		b[i] = s[i%4][i/4]
	}
	return b
}

// SubBytes applies the S-box to every byte of s.
func (t *Tables) SubBytes(s State) State {
	t.mustBeReady()
	for i := range s {
		for j := range s[i] {
			s[i][j] = t.sbox[s[i][j]]
		}
	}
	return s
}

// InvSubBytes applies the inverse S-box to every byte of s.
func (t *Tables) InvSubBytes(s State) State {
	t.mustBeReady()
	for i := range s {
		for j := range s[i] {
			s[i][j] = t.invSbox[s[i][j]]
		}
	}
	return s
}

// ShiftRows rotates row r of s left by r positions.
func ShiftRows(s State) State {
	var out State
	for r := range s {
		for c := range s[r] {
			out[r][c] = s[r][(c+r)%4]
		}
	}
	return out
}

// InvShiftRows rotates row r of s right by r positions.
func InvShiftRows(s State) State {
	var out State
	for r := range s {
		for c := range s[r] {
			out[r][(c+r)%4] = s[r][c]
		}
	}
	return out
}

// MixColumn multiplies a single column by the MixColumns matrix.
func MixColumn(a [4]byte) [4]byte {
	return [4]byte{
		mul(a[0], 2) ^ mul(a[1], 3) ^ a[2] ^ a[3],
		a[0] ^ mul(a[1], 2) ^ mul(a[2], 3) ^ a[3],
		a[0] ^ a[1] ^ mul(a[2], 2) ^ mul(a[3], 3),
		mul(a[0], 3) ^ a[1] ^ a[2] ^ mul(a[3], 2),
	}
}

// InvMixColumn multiplies a single column by the InvMixColumns matrix.
func InvMixColumn(a [4]byte) [4]byte {
	return [4]byte{
		mul(a[0], 14) ^ mul(a[1], 11) ^ mul(a[2], 13) ^ mul(a[3], 9),
		mul(a[0], 9) ^ mul(a[1], 14) ^ mul(a[2], 11) ^ mul(a[3], 13),
		mul(a[0], 13) ^ mul(a[1], 9) ^ mul(a[2], 14) ^ mul(a[3], 11),
		mul(a[0], 11) ^ mul(a[1], 13) ^ mul(a[2], 9) ^ mul(a[3], 14),
	}
}

// MixColumns applies MixColumn to every column of s.
func MixColumns(s State) State {
	return mapColumns(s, MixColumn)
}

// InvMixColumns applies InvMixColumn to every column of s.
func InvMixColumns(s State) State {
	return mapColumns(s, InvMixColumn)
}

func mapColumns(s State, fn func([4]byte) [4]byte) State {
	for c := 0; c < 4; c++ {
		col := fn([4]byte{s[0][c], s[1][c], s[2][c], s[3][c]})
		for r := 0; r < 4; r++ {
			s[r][c] = col[r]
		}
	}
	return s
}

// AddRoundKey XORs the round key rk into s.  Word j of rk is column j of
// the state, most significant byte in row 0.  AddRoundKey is its own
// inverse.
func AddRoundKey(s State, rk []uint32) State {
	_ = rk[3]
	for c := 0; c < 4; c++ {
		w := rk[c]
		for r := 0; r < 4; r++ {
			s[r][c] ^= byte(w >> (8 * (3 - r)))
		}
	}
	return s
}
