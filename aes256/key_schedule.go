// SPDX-FileCopyrightText: Copyright (C) 2026  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package aes256

import "encoding/binary"

// rcon holds the round constants, already shifted into the most
// significant byte.
var rcon = [10]uint32{
	0x01000000, 0x02000000, 0x04000000, 0x08000000,
	0x10000000, 0x20000000, 0x40000000, 0x80000000,
	0x1b000000, 0x36000000,
}

// Schedule is an expanded AES-256 key: 15 round keys of 4 big endian
// words each.
type Schedule [ScheduleWords]uint32

// RoundKey returns the 4 words used by round r.
func (s *Schedule) RoundKey(r int) []uint32 {
	return s[4*r : 4*r+4]
}

// Reset clears the Schedule such that no key material is left in memory.
func (s *Schedule) Reset() {
	for i := range s {
		s[i] = 0
	}
}

// ExpandKey expands a 32 byte key using the process wide tables.
func ExpandKey(key []byte) (*Schedule, error) {
	return DefaultTables().ExpandKey(key)
}

// ExpandKey expands a 32 byte key into the 60 word AES-256 key schedule.
func (t *Tables) ExpandKey(key []byte) (*Schedule, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}

	s := new(Schedule)
	for i := 0; i < keyWords; i++ {
		s[i] = binary.BigEndian.Uint32(key[4*i:])
	}
	for i := keyWords; i < ScheduleWords; i++ {
		temp := s[i-1]
		switch {
		case i%keyWords == 0:
			temp = t.subWord(rotWord(temp)) ^ rcon[i/keyWords-1]
		case i%keyWords == 4:
			temp = t.subWord(temp)
		}
		s[i] = s[i-keyWords] ^ temp
	}
	return s, nil
}

func rotWord(w uint32) uint32 {
	return w<<8 | w>>24
}

func (t *Tables) subWord(w uint32) uint32 {
	return uint32(t.sbox[w>>24])<<24 |
		uint32(t.sbox[w>>16&0xff])<<16 |
		uint32(t.sbox[w>>8&0xff])<<8 |
		uint32(t.sbox[w&0xff])
}
