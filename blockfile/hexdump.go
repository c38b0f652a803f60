// SPDX-FileCopyrightText: Copyright (C) 2026  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package blockfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

const hexDumpWidth = 16

// HexDump writes the contents of r to w, 16 bytes per line, as an offset,
// the bytes in hex and their printable ASCII representation.
func HexDump(w io.Writer, r io.Reader) error {
	bw := bufio.NewWriter(w)
	var (
		buf    [hexDumpWidth]byte
		offset int64
	)
	for {
		n, err := io.ReadFull(r, buf[:])
		if n > 0 {
			writeHexLine(bw, offset, buf[:n])
			offset += int64(n)
		}
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeHexLine(w *bufio.Writer, offset int64, b []byte) {
	fmt.Fprintf(w, "%08x  ", offset)
	for _, v := range b {
		fmt.Fprintf(w, "%02X ", v)
	}
	for i := len(b); i < hexDumpWidth; i++ {
		w.WriteString("   ")
	}
	w.WriteString(" | ")
	for _, v := range b {
		if v >= 32 && v < 127 {
			w.WriteByte(v)
		} else {
			w.WriteByte('.')
		}
	}
	w.WriteByte('\n')
}

// HexDumpFile writes a titled HexDump of the file f to w.
func HexDumpFile(w io.Writer, f, title string) error {
	fd, err := os.Open(f)
	if err != nil {
		return fmt.Errorf("blockfile: failed to open %v for display: %w", f, err)
	}
	defer fd.Close()

	if _, err = fmt.Fprintf(w, "\n--- %s (%s) ---\n", title, f); err != nil {
		return err
	}
	if err = HexDump(w, fd); err != nil {
		return err
	}
	_, err = io.WriteString(w, "------------------------\n\n")
	return err
}
