// SPDX-FileCopyrightText: Copyright (C) 2026  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	f := filepath.Join(dir, "present")
	require.NoError(os.WriteFile(f, nil, 0600))

	ok, err := Exists(f)
	require.NoError(err)
	require.True(ok)

	ok, err = Exists(filepath.Join(dir, "absent"))
	require.NoError(err)
	require.False(ok)
}
