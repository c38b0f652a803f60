// SPDX-FileCopyrightText: Copyright (C) 2026  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package log

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/op/go-logging.v1"
)

func TestParseLevel(t *testing.T) {
	assert := assert.New(t)

	for name, expected := range map[string]logging.Level{
		"ERROR":   logging.ERROR,
		"warning": logging.WARNING,
		"Notice":  logging.NOTICE,
		"INFO":    logging.INFO,
		"debug":   logging.DEBUG,
	} {
		lvl, err := ParseLevel(name)
		assert.NoError(err, name)
		assert.Equal(expected, lvl, name)
	}

	_, err := ParseLevel("LOUD")
	assert.Error(err)
}

func TestBackendLevels(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	var buf bytes.Buffer
	b, err := NewWithWriter(&buf, "NOTICE")
	require.NoError(err)

	l := b.GetLogger("blockfile")
	l.Debug("hidden")
	l.Notice("shown %d", 42)

	out := buf.String()
	assert.NotContains(out, "hidden")
	assert.Contains(out, "NOTI blockfile: shown 42")
	assert.True(b.IsEnabledFor(logging.WARNING, "blockfile"))
	assert.False(b.IsEnabledFor(logging.DEBUG, "blockfile"))

	b.SetLevel(logging.DEBUG, "")
	assert.Equal(logging.DEBUG, b.GetLevel(""))
	l.Debug("now visible")
	assert.Contains(buf.String(), "DEBU blockfile: now visible")
}

func TestLogWriter(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	b, err := NewWithWriter(&buf, "DEBUG")
	require.NoError(err)

	w := b.GetLogWriter("writer", "WARNING")
	n, err := fmt.Fprintln(w, "trailing bytes")
	require.NoError(err)
	require.Equal(len("trailing bytes\n"), n)
	require.Contains(buf.String(), "WARN writer: trailing bytes")

	gl := b.GetGoLogger("golog", "INFO")
	gl.Printf("hello %s", "world")
	require.Contains(buf.String(), "INFO golog: hello world")

	require.Panics(func() { b.GetLogWriter("writer", "nope") })
}

func TestBackendFileAndRotate(t *testing.T) {
	require := require.New(t)

	f := filepath.Join(t.TempDir(), "aes256.log")
	b, err := New(f, "INFO", false)
	require.NoError(err)

	b.GetLogger("test").Info("before rotate")
	require.NoError(os.Rename(f, f+".1"))
	require.NoError(b.Rotate())
	b.GetLogger("test").Info("after rotate")
	require.NoError(b.Close())

	old, err := os.ReadFile(f + ".1")
	require.NoError(err)
	require.Contains(string(old), "before rotate")

	cur, err := os.ReadFile(f)
	require.NoError(err)
	require.Contains(string(cur), "after rotate")
	require.NotContains(string(cur), "before rotate")
}

func TestBackendDisabled(t *testing.T) {
	b, err := New("", "DEBUG", true)
	require.NoError(t, err)
	b.GetLogger("quiet").Error("dropped")
	require.NoError(t, b.Rotate())
	require.NoError(t, b.Close())

	_, err = New("", "bogus", false)
	require.Error(t, err)
}
