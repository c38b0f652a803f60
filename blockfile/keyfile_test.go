// SPDX-FileCopyrightText: Copyright (C) 2026  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package blockfile

import (
	"bytes"
	"crypto/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katzenpost/rijndael/aes256"
)

func TestReadKey(t *testing.T) {
	require := require.New(t)

	key, err := ReadKey(strings.NewReader(testKey + "\n"))
	require.NoError(err)
	require.Len(key, aes256.KeySize)
	require.Equal(byte(0x60), key[0])
	require.Equal(byte(0xf4), key[31])

	// Only the first line matters, surrounding whitespace is ignored.
	key2, err := ReadKey(strings.NewReader("  " + testKey + "  \r\nsecond line\n"))
	require.NoError(err)
	require.Equal(key, key2)

	// No trailing newline.
	key3, err := ReadKey(strings.NewReader(strings.ToUpper(testKey)))
	require.NoError(err)
	require.Equal(key, key3)
}

func TestReadKeyMalformed(t *testing.T) {
	for _, s := range []string{
		"",
		"not hex at all",
		testKey[:62],
		testKey + "00",
		testKey[:63],
	} {
		_, err := ReadKey(strings.NewReader(s))
		require.Error(t, err, "%q", s)
	}

	_, err := ReadKey(strings.NewReader(testKey[:62]))
	require.ErrorAs(t, err, new(aes256.KeySizeError))
}

func TestKeyFile(t *testing.T) {
	require := require.New(t)

	f := filepath.Join(t.TempDir(), "cle_aes.pem")
	key := make([]byte, aes256.KeySize)
	_, err := rand.Read(key)
	require.NoError(err)

	require.NoError(WriteKeyFile(f, key))
	require.ErrorIs(WriteKeyFile(f, key), ErrKeyFileExists)

	fi, err := os.Stat(f)
	require.NoError(err)
	require.Equal(os.FileMode(0600), fi.Mode().Perm())

	loaded, err := LoadKeyFile(f)
	require.NoError(err)
	require.True(bytes.Equal(key, loaded))

	_, err = LoadKeyFile(filepath.Join(t.TempDir(), "missing.pem"))
	require.ErrorIs(err, os.ErrNotExist)

	require.Error(WriteKeyFile(filepath.Join(t.TempDir(), "short.pem"), key[:16]))
}
