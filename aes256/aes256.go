// SPDX-FileCopyrightText: Copyright (C) 2026  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

// Package aes256 implements the AES-256 block cipher (Rijndael with a
// 256-bit key and 14 rounds) from first principles: the substitution
// tables are derived from GF(2^8) arithmetic at runtime, and the round
// transforms are exposed as pure functions over a 4x4 byte state.
//
// This implementation makes no attempt at being constant time, the S-box
// lookups are plain table indexing.  Use crypto/aes or bsaes if that
// matters.
package aes256

import (
	"errors"
	"strconv"
)

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = 16

	// KeySize is the AES-256 key size in bytes.
	KeySize = 32

	// Rounds is the number of AES-256 rounds.
	Rounds = 14

	// ScheduleWords is the number of 32 bit words in an expanded key.
	ScheduleWords = 4 * (Rounds + 1)

	keyWords = KeySize / 4
)

var (
	// ErrTablesUninitialized is the error returned (or panicked with) when
	// a Tables instance that was not built by NewTables is used.
	ErrTablesUninitialized = errors.New("aes256: substitution tables are not initialized")

	// ErrUnsupportedMultiplier is the error returned when a GF(2^8)
	// multiplication is requested with a constant outside of the set
	// used by MixColumns and InvMixColumns.
	ErrUnsupportedMultiplier = errors.New("aes256: unsupported GF(2^8) multiplier")

	// ErrNilSchedule is the error returned when a block operation is
	// invoked without an expanded key.
	ErrNilSchedule = errors.New("aes256: nil key schedule")
)

// KeySizeError is the error returned for keys that are not KeySize bytes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "aes256: invalid key size " + strconv.Itoa(int(k))
}

// BlockSizeError is the error returned for blocks that are not BlockSize
// bytes.
type BlockSizeError int

func (b BlockSizeError) Error() string {
	return "aes256: invalid block size " + strconv.Itoa(int(b))
}
