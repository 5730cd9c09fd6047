// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package dhc

import (
	"sync"

	"github.com/jmgao/dhc/internal/input"
	"github.com/jmgao/dhc/internal/rawinput"
	"github.com/jmgao/dhc/internal/triplebuffer"

	"log/slog"
)

// virtualSlot is a G-owned virtual slot: the last record read from its
// bound device, if any.
type virtualSlot struct {
	inputs  input.Record
	boundTo int // index into realDevices, or -1 if unbound
}

// realDevice is one entry in the real-device registry. Order is arrival
// order; removal preserves the order of survivors.
type realDevice struct {
	id        input.DeviceID
	name      string
	transport *triplebuffer.TripleBuffer[input.Record]
	boundTo   int // index into slots, or -1 if unbound
}

// Context is the process-wide binding engine (component G): it owns the
// manager thread's façade, the real-device registry, and the fixed set of
// virtual slots polled by the host application. Construction is
// intentionally not safe to repeat: per §9's "Global state" note this
// library supports exactly one live Context.
type Context struct {
	facade *rawinput.Facade
	log    *slog.Logger

	alternateSubsystemEnabled bool

	mu      sync.RWMutex
	slots   []virtualSlot
	devices []realDevice

	postprocess postprocessor
}

// New starts the manager thread, registers both device categories, and
// returns a Context with deviceCount virtual slots, all initially unbound.
// opts configures the informational alternate-subsystem flag and the 4.G
// post-processing hooks; the zero-value configuration (no options) matches
// the documented dhc.toml defaults.
func New(deviceCount uint, log *slog.Logger, opts ...Option) (*Context, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	facade, err := rawinput.Start(log)
	if err != nil {
		return nil, err
	}
	if err := facade.RegisterType(rawinput.CategoryJoystick); err != nil {
		return nil, err
	}
	if err := facade.RegisterType(rawinput.CategoryGamepad); err != nil {
		return nil, err
	}

	slots := make([]virtualSlot, deviceCount)
	for i := range slots {
		slots[i] = virtualSlot{inputs: input.NewRecord(), boundTo: -1}
	}

	return &Context{
		facade:                    facade,
		log:                       log,
		alternateSubsystemEnabled: s.alternateSubsystemEnabled,
		slots:                     slots,
		postprocess:               s.postprocess,
	}, nil
}

// Update drains events from the manager, applies arrivals and removals to
// the real-device registry, rebinds, and then copies every bound slot's
// transport snapshot into its inputs field. This is the only moment at
// which virtual-slot inputs change (4.G).
func (c *Context) Update() {
	c.applyEvents(c.facade.GetEvents())
}

// applyEvents does the actual event-application/rebind/refresh work; split
// out from Update so tests can drive it without a live manager thread.
func (c *Context) applyEvents(events []rawinput.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, ev := range events {
		switch ev.Kind {
		case rawinput.DeviceArrived:
			c.devices = append(c.devices, realDevice{
				id:        ev.ID,
				name:      ev.Description.Name,
				transport: ev.Description.Transport,
				boundTo:   -1,
			})
		case rawinput.DeviceRemoved:
			c.removeDevice(ev.ID)
		}
	}

	c.rebind()

	for i := range c.slots {
		if c.slots[i].boundTo < 0 {
			continue
		}
		rec := c.devices[c.slots[i].boundTo].transport.Read()
		c.slots[i].inputs = c.postprocess.apply(rec)
	}
}

// removeDevice deletes the registry entry with the given id, preserving
// the arrival order of survivors. The caller holds c.mu.
func (c *Context) removeDevice(id input.DeviceID) {
	idx := -1
	for i, d := range c.devices {
		if d.id == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return // unknown id; nothing to remove
	}
	c.devices = append(c.devices[:idx], c.devices[idx+1:]...)
}

// rebind recomputes every virtual-slot/real-device binding from scratch:
// walk virtual slots in ascending index, and for each bind the newest
// (highest-index, i.e. most-recently-arrived) still-unbound real device
// (4.G "Binding policy").
//
// A full recompute, rather than an incremental fill of only the slots
// directly touched by the triggering event, is required to reproduce the
// documented S4 scenario: removing the device bound to slot 0 causes
// slot 1's device to be reassigned to slot 0, with slot 1 left unbound.
// The original source's own bind_devices only fills already-unbound
// slots from already-unbound devices and never reshuffles an existing
// binding; that incremental policy does not reproduce S4 and is not
// followed here.
func (c *Context) rebind() {
	for i := range c.devices {
		c.devices[i].boundTo = -1
	}
	for i := range c.slots {
		c.slots[i].boundTo = -1
	}

	for slotIdx := range c.slots {
		for devIdx := len(c.devices) - 1; devIdx >= 0; devIdx-- {
			if c.devices[devIdx].boundTo >= 0 {
				continue
			}
			c.slots[slotIdx].boundTo = devIdx
			c.devices[devIdx].boundTo = slotIdx
			break
		}
	}

	// Any slot left unbound after the walk has its inputs reset to the
	// default record (invariant 5), whether it was directly freed by a
	// DeviceRemoved or merely lost its device to a reshuffle above.
	for i := range c.slots {
		if c.slots[i].boundTo < 0 {
			c.slots[i].inputs = input.NewRecord()
		}
	}
}

// DeviceState returns the A-record of virtual slot i as of the last
// Update call. Non-blocking: it reads a process-owned snapshot.
func (c *Context) DeviceState(i int) DeviceInputs {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.slots[i].inputs
}

// DeviceCount returns N, the fixed number of virtual slots.
func (c *Context) DeviceCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.slots)
}

// AlternateSubsystemEnabled reports whether the alternate gamepad
// subsystem identity was requested at construction (6 "external
// interfaces"). The manager always scans it; this flag is informational.
func (c *Context) AlternateSubsystemEnabled() bool {
	return c.alternateSubsystemEnabled
}
