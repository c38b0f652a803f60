// SPDX-FileCopyrightText: Copyright (C) 2026  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package common

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUsageError(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsUsageError(errors.New(`unknown command "meow" for "aes256"`)))
	assert.True(IsUsageError(errors.New(`required flag(s) "in" not set`)))
	assert.True(IsUsageError(errors.New("unknown flag: --bogus")))
	assert.True(IsUsageError(errors.New("config file must be specified")))
	assert.False(IsUsageError(errors.New("blockfile: failed to open input: no such file")))
}

func TestExecute(t *testing.T) {
	require := require.New(t)

	ran := false
	ok := &cobra.Command{
		Use:  "ok",
		RunE: func(*cobra.Command, []string) error { ran = true; return nil },
	}
	ok.SetArgs([]string{})
	require.NoError(Execute(context.Background(), ok))
	require.True(ran)

	failing := &cobra.Command{
		Use:           "fail",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          func(*cobra.Command, []string) error { return errors.New("boom") },
	}
	failing.SetArgs([]string{})
	require.EqualError(Execute(context.Background(), failing), "boom")
}
