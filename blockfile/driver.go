// SPDX-FileCopyrightText: Copyright (C) 2026  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

// Package blockfile encrypts and decrypts whole files with AES-256, one
// 16 byte block at a time.
//
// Every block is transformed independently with no chaining and no IV, so
// the output is equivalent to ECB mode: identical plaintext blocks produce
// identical ciphertext blocks.  The final short block is filled with zero
// bytes, and decryption does not remove them.
package blockfile

import (
	"context"
	"crypto/cipher"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"gitlab.com/yawning/bsaes.git"
	"gopkg.in/op/go-logging.v1"

	"github.com/katzenpost/rijndael/aes256"
	"github.com/katzenpost/rijndael/config"
	"github.com/katzenpost/rijndael/log"
	"github.com/katzenpost/rijndael/worker"
)

// Stats describes a completed Encrypt or Decrypt operation.
type Stats struct {
	// Blocks is the number of blocks written.
	Blocks int

	// BytesIn is the number of bytes read.
	BytesIn int64

	// BytesOut is the number of bytes written.
	BytesOut int64

	// TrailingBytes is the number of bytes at the end of a ciphertext that
	// did not form a full block and were ignored.
	TrailingBytes int
}

// Driver applies a block cipher to a stream, block by block.
type Driver struct {
	// blocks holds one cipher instance per worker.
	blocks []cipher.Block
	cfg    config.Cipher
	log    *logging.Logger
}

// New creates a Driver for the 32 byte key.  A nil cfg selects the
// defaults, and a nil logBackend disables logging.
func New(key []byte, cfg *config.Cipher, logBackend *log.Backend) (*Driver, error) {
	if cfg == nil {
		cfg = config.Default().Cipher
	}
	if logBackend == nil {
		var err error
		if logBackend, err = log.New("", "ERROR", true); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(key) != aes256.KeySize {
		return nil, aes256.KeySizeError(len(key))
	}

	d := &Driver{
		cfg: *cfg,
		log: logBackend.GetLogger("blockfile"),
	}

	for i := 0; i < cfg.Workers; i++ {
		var (
			blk cipher.Block
			err error
		)
		switch cfg.Backend {
		case config.BackendBitsliced:
			blk, err = bsaes.NewCipher(key)
		default:
			blk, err = aes256.NewCipher(key)
		}
		if err != nil {
			return nil, err
		}
		d.blocks = append(d.blocks, blk)
	}
	d.log.Debugf("Using the %v backend with %d worker(s).", cfg.Backend, cfg.Workers)
	return d, nil
}

// Encrypt reads plaintext from r and writes ciphertext to w.  The final
// block is always zero filled, which means that an input whose length is
// a multiple of 16 gains one extra all zero block.
func (d *Driver) Encrypt(ctx context.Context, r io.Reader, w io.Writer) (*Stats, error) {
	return d.run(ctx, r, w, true)
}

// Decrypt reads ciphertext from r and writes plaintext to w.  Padding is
// not removed.  A trailing partial block is ignored, and reported in
// Stats.TrailingBytes.
func (d *Driver) Decrypt(ctx context.Context, r io.Reader, w io.Writer) (*Stats, error) {
	return d.run(ctx, r, w, false)
}

// EncryptFile encrypts the file in to the file out.
func (d *Driver) EncryptFile(ctx context.Context, in, out string) (*Stats, error) {
	return d.runFile(ctx, in, out, true)
}

// DecryptFile decrypts the file in to the file out.
func (d *Driver) DecryptFile(ctx context.Context, in, out string) (*Stats, error) {
	return d.runFile(ctx, in, out, false)
}

func (d *Driver) runFile(ctx context.Context, in, out string, encrypt bool) (*Stats, error) {
	fin, err := os.Open(in)
	if err != nil {
		return nil, fmt.Errorf("blockfile: failed to open input: %w", err)
	}
	defer fin.Close()

	fout, err := os.Create(out)
	if err != nil {
		return nil, fmt.Errorf("blockfile: failed to create output: %w", err)
	}

	st, err := d.run(ctx, fin, fout, encrypt)
	if cerr := fout.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("blockfile: failed to close output: %w", cerr)
	}
	if err != nil {
		return st, err
	}

	op := "Decrypted"
	if encrypt {
		op = "Encrypted"
	}
	d.log.Noticef("%s %v => %v (%d blocks).", op, in, out, st.Blocks)
	return st, nil
}

func (d *Driver) run(ctx context.Context, r io.Reader, w io.Writer, encrypt bool) (*Stats, error) {
	st := new(Stats)
	buf := make([]byte, d.cfg.BatchBlocks*aes256.BlockSize)

	var p *pool
	if d.cfg.Workers > 1 {
		p = d.newPool(encrypt)
		defer p.Halt()
	}

	for {
		if err := ctx.Err(); err != nil {
			return st, err
		}

		n, err := io.ReadFull(r, buf)
		eof := false
		switch {
		case err == nil:
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			eof = true
		default:
			return st, fmt.Errorf("blockfile: read failed: %w", err)
		}
		st.BytesIn += int64(n)

		full := n - n%aes256.BlockSize
		chunk := buf[:full]
		if eof {
			if encrypt {
				// n < len(buf) here, so there is always room for the
				// final block.
				end := full + aes256.BlockSize
				clear(buf[n:end])
				chunk = buf[:end]
			} else if tail := n - full; tail > 0 {
				st.TrailingBytes = tail
				d.log.Warningf("Input is not a multiple of %d bytes, ignoring %d trailing byte(s).", aes256.BlockSize, tail)
			}
		}

		if len(chunk) > 0 {
			if p != nil {
				p.transform(chunk)
			} else {
				transform(d.blocks[0], chunk, encrypt)
			}
			if _, err := w.Write(chunk); err != nil {
				return st, fmt.Errorf("blockfile: write failed: %w", err)
			}
			st.Blocks += len(chunk) / aes256.BlockSize
			st.BytesOut += int64(len(chunk))
			d.log.Debugf("Processed %d block(s).", len(chunk)/aes256.BlockSize)
		}

		if eof {
			return st, nil
		}
	}
}

// transform applies c in place to every block of b.
func transform(c cipher.Block, b []byte, encrypt bool) {
	for off := 0; off < len(b); off += aes256.BlockSize {
		blk := b[off : off+aes256.BlockSize]
		if encrypt {
			c.Encrypt(blk, blk)
		} else {
			c.Decrypt(blk, blk)
		}
	}
}

type job struct {
	blocks []byte
	wg     *sync.WaitGroup
}

// pool spreads the blocks of a batch over a fixed set of goroutines.  The
// blocks are independent, so the output is identical to the sequential
// path.
type pool struct {
	worker.Worker

	n     int
	jobCh chan job
}

func (d *Driver) newPool(encrypt bool) *pool {
	p := &pool{
		n:     d.cfg.Workers,
		jobCh: make(chan job),
	}
	for _, blk := range d.blocks {
		p.Go(func() {
			for {
				select {
				case <-p.HaltCh():
					return
				case j := <-p.jobCh:
					transform(blk, j.blocks, encrypt)
					j.wg.Done()
				}
			}
		})
	}
	return p
}

func (p *pool) transform(b []byte) {
	nrBlocks := len(b) / aes256.BlockSize
	per := (nrBlocks + p.n - 1) / p.n

	var wg sync.WaitGroup
	for lo := 0; lo < nrBlocks; lo += per {
		hi := min(lo+per, nrBlocks)
		wg.Add(1)
		p.jobCh <- job{
			blocks: b[lo*aes256.BlockSize : hi*aes256.BlockSize],
			wg:     &wg,
		}
	}
	wg.Wait()
}
