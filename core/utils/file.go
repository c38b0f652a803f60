// SPDX-FileCopyrightText: Copyright (C) 2026  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

// Package utils provides small filesystem helpers.
package utils

import (
	"errors"
	"os"
)

// Exists reports whether the path f exists.  Errors other than the path
// not existing are returned to the caller.
func Exists(f string) (bool, error) {
	_, err := os.Stat(f)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

