// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package main

import (
	"os"
	"sync"

	"golang.org/x/term"
)

// keyWatcher puts stdin into raw mode and closes quit the moment the user
// presses q, mirroring the TerminalHost stdin-reader pattern.
type keyWatcher struct {
	quit         chan struct{}
	stopCh       chan struct{}
	done         chan struct{}
	stopped      sync.Once
	fd           int
	oldTermState *term.State
}

func newKeyWatcher(quit chan struct{}) *keyWatcher {
	return &keyWatcher{quit: quit, stopCh: make(chan struct{}), done: make(chan struct{})}
}

// Start puts stdin in raw mode and begins reading in a goroutine; it is a
// no-op (nothing to watch) when stdin isn't a terminal.
func (w *keyWatcher) Start() {
	w.fd = int(os.Stdin.Fd())
	if !term.IsTerminal(w.fd) {
		close(w.done)
		return
	}

	oldState, err := term.MakeRaw(w.fd)
	if err != nil {
		close(w.done)
		return
	}
	w.oldTermState = oldState

	go func() {
		defer close(w.done)
		buf := make([]byte, 1)
		for {
			select {
			case <-w.stopCh:
				return
			default:
			}
			n, err := os.Stdin.Read(buf)
			if n > 0 && (buf[0] == 'q' || buf[0] == 'Q') {
				close(w.quit)
				return
			}
			if err != nil {
				return
			}
		}
	}()
}

// Stop restores the terminal and waits for the reader goroutine to exit.
func (w *keyWatcher) Stop() {
	w.stopped.Do(func() { close(w.stopCh) })
	<-w.done
	if w.oldTermState != nil {
		_ = term.Restore(w.fd, w.oldTermState)
		w.oldTermState = nil
	}
}
