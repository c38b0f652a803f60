// SPDX-FileCopyrightText: Copyright (C) 2026  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package worker

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWorkerHalt(t *testing.T) {
	var w Worker
	var stopped int32

	for i := 0; i < 4; i++ {
		w.Go(func() {
			<-w.HaltCh()
			atomic.AddInt32(&stopped, 1)
		})
	}

	done := make(chan struct{})
	go func() {
		w.Halt()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Halt() did not return")
	}
	require.Equal(t, int32(4), atomic.LoadInt32(&stopped))

	// A second Halt must not panic on the closed channel.
	w.Halt()
}

func TestWorkerHaltWithoutGo(t *testing.T) {
	var w Worker
	w.Halt()
	select {
	case <-w.HaltCh():
	default:
		t.Fatal("HaltCh() not closed after Halt()")
	}
}
