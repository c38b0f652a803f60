// SPDX-FileCopyrightText: Copyright (C) 2026  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/op/go-logging.v1"

	"github.com/katzenpost/rijndael/blockfile"
	"github.com/katzenpost/rijndael/common"
	"github.com/katzenpost/rijndael/config"
	"github.com/katzenpost/rijndael/log"
)

// globalFlags holds the flags shared by every subcommand.
type globalFlags struct {
	ConfigFile string
	KeyFile    string
	LogLevel   string
	LogFile    string
	Backend    string
	Workers    int
}

// env is the state built from the global flags before a subcommand runs.
type env struct {
	cfg        *config.Config
	logBackend *log.Backend
	log        *logging.Logger
}

func newRootCommand() *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "aes256",
		Short: "AES-256 block file encryption tool",
		Long: `Encrypt and decrypt files with AES-256, one 16 byte block at a time.

Every block is encrypted independently (ECB-equivalent), the last block is
zero filled, and decryption does not strip the zero fill.  This tool is
meant for studying the cipher, not for protecting data.`,
		Example: `  # Create a key and round trip a file
  aes256 genkey --out cle_aes.pem
  aes256 encrypt --key cle_aes.pem --in test.txt --out test_chiffre.bin
  aes256 decrypt --key cle_aes.pem --in test_chiffre.bin --out test_dechiffre.txt

  # Print the S-box
  aes256 sbox`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.ConfigFile, "config", "c", "", "path to TOML configuration file")
	pf.StringVarP(&flags.KeyFile, "key", "k", "", "path to the hex encoded key file (overrides config)")
	pf.StringVar(&flags.LogLevel, "log-level", "", "logging level (DEBUG, INFO, NOTICE, WARNING, ERROR)")
	pf.StringVar(&flags.LogFile, "log-file", "", "log file, stdout if empty (overrides config)")
	pf.StringVar(&flags.Backend, "backend", "", "block cipher backend: native or bsaes (overrides config)")
	pf.IntVarP(&flags.Workers, "workers", "w", 0, "number of worker goroutines (overrides config)")

	cmd.AddCommand(
		newEncryptCommand(&flags),
		newDecryptCommand(&flags),
		newDemoCommand(&flags),
		newHexDumpCommand(),
		newSBoxCommand(),
		newGenKeyCommand(),
	)
	return cmd
}

// setup loads the configuration, applies the flag overrides and starts
// logging.
func (f *globalFlags) setup() (*env, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.ConfigFile != "" {
		if cfg, err = config.LoadFile(f.ConfigFile); err != nil {
			return nil, err
		}
	} else {
		cfg = config.Default()
	}

	if f.KeyFile != "" {
		cfg.Cipher.KeyFile = f.KeyFile
	}
	if f.LogLevel != "" {
		cfg.Logging.Level = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.Logging.File = f.LogFile
	}
	if f.Backend != "" {
		cfg.Cipher.Backend = f.Backend
	}
	if f.Workers != 0 {
		cfg.Cipher.Workers = f.Workers
	}
	if err = cfg.FixupAndValidate(); err != nil {
		return nil, err
	}

	backend, err := log.New(cfg.Logging.File, cfg.Logging.Level, cfg.Logging.Disable)
	if err != nil {
		return nil, err
	}
	return &env{
		cfg:        cfg,
		logBackend: backend,
		log:        backend.GetLogger("aes256"),
	}, nil
}

func (e *env) newDriver() (*blockfile.Driver, error) {
	key, err := blockfile.LoadKeyFile(e.cfg.Cipher.KeyFile)
	if err != nil {
		return nil, err
	}
	e.log.Debugf("Loaded key from %v.", e.cfg.Cipher.KeyFile)
	return blockfile.New(key, e.cfg.Cipher, e.logBackend)
}

func (e *env) close() {
	if err := e.logBackend.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close log: %v\n", err)
	}
}

func runWithDriver(ctx context.Context, f *globalFlags, fn func(context.Context, *blockfile.Driver) error) error {
	e, err := f.setup()
	if err != nil {
		return err
	}
	defer e.close()

	d, err := e.newDriver()
	if err != nil {
		return err
	}
	return fn(ctx, d)
}

func main() {
	common.ExecuteWithFang(newRootCommand())
}
