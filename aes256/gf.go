// SPDX-FileCopyrightText: Copyright (C) 2026  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package aes256

import "fmt"

// reduction is x^8 + x^4 + x^3 + x + 1 with the x^8 term implied.
const reduction = 0x1b

// xtime multiplies x by 2 in GF(2^8).
func xtime(x byte) byte {
	if x&0x80 != 0 {
		return (x << 1) ^ reduction
	}
	return x << 1
}

// Multiply returns x * c in GF(2^8), for the constants used by MixColumns
// and InvMixColumns (0, 1, 2, 3, 9, 11, 13 and 14).  Any other constant
// results in ErrUnsupportedMultiplier.
func Multiply(x, c byte) (byte, error) {
	switch c {
	case 0, 1, 2, 3, 9, 11, 13, 14:
		return mul(x, c), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedMultiplier, c)
	}
}

func mul(x, c byte) byte {
	switch c {
	case 0:
		return 0
	case 1:
		return x
	case 2:
		return xtime(x)
	case 3:
		return xtime(x) ^ x
	}

	x2 := xtime(x)
	x4 := xtime(x2)
	x8 := xtime(x4)
	switch c {
	case 9:
		return x8 ^ x
	case 11:
		return x8 ^ x2 ^ x
	case 13:
		return x8 ^ x4 ^ x
	case 14:
		return x8 ^ x4 ^ x2
	}
	panic(fmt.Sprintf("aes256: BUG - mul called with constant %d", c))
}
