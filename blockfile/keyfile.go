// SPDX-FileCopyrightText: Copyright (C) 2026  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package blockfile

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katzenpost/rijndael/aes256"
	"github.com/katzenpost/rijndael/core/utils"
)

// ErrKeyFileExists is the error returned when WriteKeyFile would overwrite
// an existing file.
var ErrKeyFileExists = errors.New("blockfile: key file already exists")

// ReadKey reads a hex encoded AES-256 key from the first line of r.
func ReadKey(r io.Reader) ([]byte, error) {
	line, err := bufio.NewReader(r).ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("blockfile: failed to read key: %w", err)
	}
	line = bytes.TrimSpace(line)

	key := make([]byte, hex.DecodedLen(len(line)))
	if _, err := hex.Decode(key, line); err != nil {
		return nil, fmt.Errorf("blockfile: malformed key: %w", err)
	}
	if len(key) != aes256.KeySize {
		return nil, fmt.Errorf("blockfile: malformed key: %w", aes256.KeySizeError(len(key)))
	}
	return key, nil
}

// LoadKeyFile reads a hex encoded AES-256 key from the first line of the
// file f.
func LoadKeyFile(f string) ([]byte, error) {
	fd, err := os.Open(f)
	if err != nil {
		return nil, fmt.Errorf("blockfile: failed to open key file: %w", err)
	}
	defer fd.Close()
	return ReadKey(fd)
}

// WriteKeyFile writes key hex encoded to the new file f.
func WriteKeyFile(f string, key []byte) error {
	if len(key) != aes256.KeySize {
		return aes256.KeySizeError(len(key))
	}
	switch ok, err := utils.Exists(f); {
	case err != nil:
		return fmt.Errorf("blockfile: failed to stat key file: %w", err)
	case ok:
		return ErrKeyFileExists
	}

	const fileMode = 0600
	fd, err := os.OpenFile(f, os.O_CREATE|os.O_EXCL|os.O_WRONLY, fileMode)
	if err != nil {
		return fmt.Errorf("blockfile: failed to create key file: %w", err)
	}
	if _, err = fmt.Fprintln(fd, hex.EncodeToString(key)); err != nil {
		fd.Close()
		return fmt.Errorf("blockfile: failed to write key file: %w", err)
	}
	return fd.Close()
}
