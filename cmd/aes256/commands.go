// SPDX-FileCopyrightText: Copyright (C) 2026  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katzenpost/rijndael/aes256"
	"github.com/katzenpost/rijndael/blockfile"
)

func newEncryptCommand(flags *globalFlags) *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithDriver(cmd.Context(), flags, func(ctx context.Context, d *blockfile.Driver) error {
				_, err := d.EncryptFile(ctx, in, out)
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "plaintext input file (required)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "ciphertext output file (required)")
	cmd.MarkFlagRequired("in")
	cmd.MarkFlagRequired("out")
	return cmd
}

func newDecryptCommand(flags *globalFlags) *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a file",
		Long: `Decrypt a file.  The zero fill added by encrypt is left in place, and a
trailing partial block is ignored with a warning.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithDriver(cmd.Context(), flags, func(ctx context.Context, d *blockfile.Driver) error {
				_, err := d.DecryptFile(ctx, in, out)
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "ciphertext input file (required)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "plaintext output file (required)")
	cmd.MarkFlagRequired("in")
	cmd.MarkFlagRequired("out")
	return cmd
}

func newDemoCommand(flags *globalFlags) *cobra.Command {
	var in, encrypted, decrypted string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Encrypt then decrypt a file, dumping every stage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if encrypted == "" {
				encrypted = in + ".enc"
			}
			if decrypted == "" {
				decrypted = in + ".dec"
			}
			w := cmd.OutOrStdout()
			return runWithDriver(cmd.Context(), flags, func(ctx context.Context, d *blockfile.Driver) error {
				if err := blockfile.HexDumpFile(w, in, "Original file"); err != nil {
					return err
				}
				if _, err := d.EncryptFile(ctx, in, encrypted); err != nil {
					return err
				}
				if err := blockfile.HexDumpFile(w, encrypted, "Encrypted file"); err != nil {
					return err
				}
				if _, err := d.DecryptFile(ctx, encrypted, decrypted); err != nil {
					return err
				}
				return blockfile.HexDumpFile(w, decrypted, "Decrypted file")
			})
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "test.txt", "plaintext input file")
	cmd.Flags().StringVar(&encrypted, "encrypted", "", "ciphertext output file (default: <in>.enc)")
	cmd.Flags().StringVar(&decrypted, "decrypted", "", "plaintext output file (default: <in>.dec)")
	return cmd
}

func newHexDumpCommand() *cobra.Command {
	var in, title string
	cmd := &cobra.Command{
		Use:   "hexdump",
		Short: "Display a file in hex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return blockfile.HexDumpFile(cmd.OutOrStdout(), in, title)
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "file to display (required)")
	cmd.Flags().StringVarP(&title, "title", "t", "File", "title printed above the dump")
	cmd.MarkFlagRequired("in")
	return cmd
}

func newSBoxCommand() *cobra.Command {
	var inverse bool
	cmd := &cobra.Command{
		Use:   "sbox",
		Short: "Print the AES S-box",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := aes256.DefaultTables()
			table, name := t.SBox(), "S-Box"
			if inverse {
				table, name = t.InvSBox(), "Inverse S-Box"
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s :\n", name); err != nil {
				return err
			}
			return aes256.WriteSBox(cmd.OutOrStdout(), &table)
		},
	}
	cmd.Flags().BoolVar(&inverse, "inverse", false, "print the inverse S-box")
	return cmd
}

func newGenKeyCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "genkey",
		Short: "Generate a random hex encoded AES-256 key file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var key [aes256.KeySize]byte
			if _, err := rand.Read(key[:]); err != nil {
				return err
			}
			if err := blockfile.WriteKeyFile(out, key[:]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Writing key to %s\n", out)
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "cle_aes.pem", "key file to create")
	return cmd
}
