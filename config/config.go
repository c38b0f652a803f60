// config.go - aes256 tool configuration.
// Copyright (C) 2017  Yawning Angel.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package config provides the aes256 tool configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	defaultLogLevel    = "NOTICE"
	defaultKeyFile     = "cle_aes.pem"
	defaultWorkers     = 1
	defaultBatchBlocks = 256

	// BackendNative selects the from-scratch aes256 core.
	BackendNative = "native"

	// BackendBitsliced selects the bsaes library cipher.
	BackendBitsliced = "bsaes"
)

var defaultLogging = Logging{
	Disable: false,
	File:    "",
	Level:   defaultLogLevel,
}

// Logging is the logging configuration.
type Logging struct {
	// Disable disables logging entirely.
	Disable bool

	// File specifies the log file, if omitted stdout will be used.
	File string

	// Level specifies the log level.
	Level string
}

func (lCfg *Logging) validate() error {
	lvl := strings.ToUpper(lCfg.Level)
	switch lvl {
	case "ERROR", "WARNING", "NOTICE", "INFO", "DEBUG":
	case "":
		lvl = defaultLogLevel
	default:
		return fmt.Errorf("config: Logging: Level '%v' is invalid", lCfg.Level)
	}
	lCfg.Level = lvl // Force uppercase.
	return nil
}

// Cipher is the block file driver configuration.
type Cipher struct {
	// KeyFile is the path to the one line hex encoded 32 byte key.
	KeyFile string

	// Backend selects the block cipher implementation, either "native"
	// (the default) or "bsaes".
	Backend string

	// Workers is the number of goroutines used to process blocks.  A
	// value of 1 processes blocks sequentially.
	Workers int

	// BatchBlocks is the number of 16 byte blocks read and dispatched to
	// the workers at a time.
	BatchBlocks int
}

func (cCfg *Cipher) applyDefaults() {
	if cCfg.KeyFile == "" {
		cCfg.KeyFile = defaultKeyFile
	}
	if cCfg.Backend == "" {
		cCfg.Backend = BackendNative
	}
	if cCfg.Workers == 0 {
		cCfg.Workers = defaultWorkers
	}
	if cCfg.BatchBlocks == 0 {
		cCfg.BatchBlocks = defaultBatchBlocks
	}
}

// Validate checks the Cipher configuration for sanity.
func (cCfg *Cipher) Validate() error {
	switch strings.ToLower(cCfg.Backend) {
	case BackendNative, BackendBitsliced:
		cCfg.Backend = strings.ToLower(cCfg.Backend)
	default:
		return fmt.Errorf("config: Cipher: Backend '%v' is invalid", cCfg.Backend)
	}
	if cCfg.Workers < 1 {
		return fmt.Errorf("config: Cipher: Workers %v is invalid", cCfg.Workers)
	}
	if cCfg.BatchBlocks < 1 {
		return fmt.Errorf("config: Cipher: BatchBlocks %v is invalid", cCfg.BatchBlocks)
	}
	return nil
}

// Config is the top level aes256 tool configuration.
type Config struct {
	Logging *Logging
	Cipher  *Cipher
}

// Default returns a Config with every field set to its default value.
func Default() *Config {
	cfg := new(Config)
	if err := cfg.FixupAndValidate(); err != nil {
		panic("BUG: config: default configuration is invalid: " + err.Error())
	}
	return cfg
}

// FixupAndValidate applies defaults to config entries and validates the
// supplied configuration.  Most people should call one of the Load variants
// instead.
func (cfg *Config) FixupAndValidate() error {
	if cfg.Logging == nil {
		logging := defaultLogging
		cfg.Logging = &logging
	}
	if cfg.Cipher == nil {
		cfg.Cipher = new(Cipher)
	}

	cfg.Cipher.applyDefaults()
	if err := cfg.Logging.validate(); err != nil {
		return err
	}
	return cfg.Cipher.Validate()
}

// Load parses and validates the provided buffer b as a config file body and
// returns the Config.
func Load(b []byte) (*Config, error) {
	cfg := new(Config)
	md, err := toml.Decode(string(b), cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		return nil, fmt.Errorf("config: Undecoded keys in config file: %v", undecoded)
	}
	if err := cfg.FixupAndValidate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads, parses and validates the provided file and returns the
// Config.
func LoadFile(f string) (*Config, error) {
	if f == "" {
		return nil, errors.New("config file must be specified")
	}
	b, err := os.ReadFile(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%v': %w", f, err)
	}
	return Load(b)
}
