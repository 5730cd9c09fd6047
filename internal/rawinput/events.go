// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package rawinput implements the raw-input manager (component D) and its
// event-loop façade (component E): a single-threaded owner of OS input
// state that publishes device-arrival/removal events and per-device
// canonical snapshots through internal/triplebuffer.
package rawinput

import (
	"github.com/jmgao/dhc/internal/input"
	"github.com/jmgao/dhc/internal/triplebuffer"
)

// EventKind distinguishes the two event shapes the manager ever emits.
type EventKind int

const (
	DeviceArrived EventKind = iota
	DeviceRemoved
)

// DeviceDescription accompanies a DeviceArrived event: everything the
// binding engine (component G) needs to register a newly connected
// physical device.
type DeviceDescription struct {
	ID        input.DeviceID
	Name      string
	Transport *triplebuffer.TripleBuffer[input.Record] // read side; the manager keeps the same pointer as its write side.
}

// Event is one entry in the manager's event queue, drained by GetEvents.
type Event struct {
	Kind        EventKind
	ID          input.DeviceID // always set
	Description DeviceDescription // only meaningful when Kind == DeviceArrived
}
