// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"
	"time"

	"gitlab.com/energi/energid/corelog"
)

func TestInterruptListenerShutdownRequest(t *testing.T) {
	done := interruptListener(corelog.Disabled)

	requestShutdown()
	requestShutdown()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("shutdown request did not close the channel")
	}
}
