// SPDX-FileCopyrightText: Copyright (C) 2026  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package aes256

// EncryptBlock encrypts the 16 byte block src into dst under the expanded
// key s, using the process wide tables.  dst and src may overlap entirely.
func EncryptBlock(dst, src []byte, s *Schedule) error {
	return DefaultTables().EncryptBlock(dst, src, s)
}

// DecryptBlock decrypts the 16 byte block src into dst under the expanded
// key s, using the process wide tables.  dst and src may overlap entirely.
func DecryptBlock(dst, src []byte, s *Schedule) error {
	return DefaultTables().DecryptBlock(dst, src, s)
}

// EncryptBlock encrypts the 16 byte block src into dst under the expanded
// key s.
func (t *Tables) EncryptBlock(dst, src []byte, s *Schedule) error {
	if err := t.checkArgs(dst, src, s); err != nil {
		return err
	}
	out := t.encrypt(LoadState(src), s).Bytes()
	copy(dst, out[:])
	return nil
}

// DecryptBlock decrypts the 16 byte block src into dst under the expanded
// key s.
func (t *Tables) DecryptBlock(dst, src []byte, s *Schedule) error {
	if err := t.checkArgs(dst, src, s); err != nil {
		return err
	}
	out := t.decrypt(LoadState(src), s).Bytes()
	copy(dst, out[:])
	return nil
}

func (t *Tables) checkArgs(dst, src []byte, s *Schedule) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if len(src) != BlockSize {
		return BlockSizeError(len(src))
	}
	if len(dst) != BlockSize {
		return BlockSizeError(len(dst))
	}
	if s == nil {
		return ErrNilSchedule
	}
	return nil
}

func (t *Tables) encrypt(st State, s *Schedule) State {
	st = AddRoundKey(st, s.RoundKey(0))
	for round := 1; round < Rounds; round++ {
		st = t.SubBytes(st)
		st = ShiftRows(st)
		st = MixColumns(st)
		st = AddRoundKey(st, s.RoundKey(round))
	}

	// The final round omits MixColumns.
	st = t.SubBytes(st)
	st = ShiftRows(st)
	return AddRoundKey(st, s.RoundKey(Rounds))
}

func (t *Tables) decrypt(st State, s *Schedule) State {
	st = AddRoundKey(st, s.RoundKey(Rounds))
	for round := Rounds - 1; round > 0; round-- {
		st = InvShiftRows(st)
		st = t.InvSubBytes(st)
		st = AddRoundKey(st, s.RoundKey(round))
		st = InvMixColumns(st)
	}
	st = InvShiftRows(st)
	st = t.InvSubBytes(st)
	return AddRoundKey(st, s.RoundKey(0))
}
