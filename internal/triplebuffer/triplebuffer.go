// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package triplebuffer implements a wait-free single-producer/single-
// consumer hand-off of the most recently published value (component F).
// It is a building block, not a full design responsibility: the manager
// thread (producer) and the poll thread (consumer) each own an exclusive
// cell, and a third "most recently published" cell is swapped between
// them atomically, so neither side ever blocks the other.
package triplebuffer

import "sync/atomic"

// cellState packs which buffer index is the "most recently published" one
// plus a dirty bit telling the consumer whether it differs from the one it
// last read.
type cellState uint32

const dirtyBit cellState = 1 << 2

func newState(index uint32, dirty bool) cellState {
	s := cellState(index)
	if dirty {
		s |= dirtyBit
	}
	return s
}

func (s cellState) index() uint32 { return uint32(s &^ dirtyBit) }
func (s cellState) dirty() bool   { return s&dirtyBit != 0 }

// TripleBuffer is a generic wait-free SPSC channel carrying one value of
// type T. The zero value is not usable; construct with New.
type TripleBuffer[T any] struct {
	cells        [3]T
	state        atomic.Uint32 // packed cellState
	writeIndex   uint32        // producer's exclusive cell, never touched by the consumer
	readIndex    uint32        // consumer's exclusive cell, never touched by the producer
}

// New returns a TripleBuffer with all three cells initialized to zero.
func New[T any]() *TripleBuffer[T] {
	tb := &TripleBuffer[T]{writeIndex: 0, readIndex: 1}
	tb.state.Store(uint32(newState(2, false)))
	return tb
}

// Write publishes a new value. Only the producer goroutine may call this.
func (tb *TripleBuffer[T]) Write(v T) {
	tb.cells[tb.writeIndex] = v
	next := newState(tb.writeIndex, true)
	prev := cellState(tb.state.Swap(uint32(next)))
	tb.writeIndex = prev.index()
}

// Read advances the consumer to the most recently published value (if any
// has arrived since the last Read) and returns it. Only the consumer
// goroutine may call this. If the producer has not published since the
// last Read, the previously read value is returned unchanged.
func (tb *TripleBuffer[T]) Read() T {
	cur := cellState(tb.state.Load())
	if cur.dirty() {
		next := newState(tb.readIndex, false)
		prev := cellState(tb.state.Swap(uint32(next)))
		tb.readIndex = prev.index()
	}
	return tb.cells[tb.readIndex]
}
