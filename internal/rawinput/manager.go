// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package rawinput

import (
	"log/slog"
	"sync"

	"github.com/jmgao/dhc/internal/altpad"
	"github.com/jmgao/dhc/internal/hid"
	"github.com/jmgao/dhc/internal/input"
	"github.com/jmgao/dhc/internal/triplebuffer"
)

// Registrar abstracts RegisterRawInputDevices / the symmetric unregister
// call for a device category. internal/winapi supplies the Windows-backed
// implementation.
type Registrar interface {
	Register(cat Category) error
	Unregister(cat Category) error
}

// Opener abstracts opening a HID device given its raw-input device handle.
// internal/winapi supplies the Windows-backed implementation; tests supply
// a fake. This is the same "callbacks interface for testability" shape
// described for the manager itself (§9) applied one layer down, to the OS
// device-open call specifically.
type Opener interface {
	Open(deviceHandle uintptr) (desc hid.Descriptor, devicePath, displayName string, err error)
}

// deviceState is the manager's private per-device bookkeeping (4.D
// "Physical device state").
type deviceState struct {
	id        input.DeviceID
	name      string
	parser    *hid.Parser // nil for alternate-subsystem entries
	transport *triplebuffer.TripleBuffer[input.Record]
}

// Manager is the os-agnostic core of the raw-input manager's state
// machine (component D). A platform build (manager_windows.go) wires it
// to real OS messages via a message-window WndProc; tests call its
// Handle* methods directly to simulate OS messages without any OS access.
//
// Every Handle*/scan method is only safe to call from the single logical
// manager thread; Manager does not lock its own device table because the
// façade (Facade, component E) guarantees FIFO, single-thread delivery of
// both OS messages and commands onto that same thread.
type Manager struct {
	opener    Opener
	altReader altpad.Reader
	registrar Registrar
	log       *slog.Logger

	devices       map[input.DeviceID]*deviceState
	altOwnedRaw   map[uintptr]bool // raw-input handles classified as alternate-subsystem
	altIndex      [altpad.MaxDevices]*deviceState

	eventsMu sync.Mutex
	events   []Event
}

// NewManager constructs a Manager. log may be nil, in which case a
// discarding logger is used.
func NewManager(opener Opener, altReader altpad.Reader, registrar Registrar, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.New(slog.NewTextHandler(discardWriter{}, nil))
	}
	return &Manager{
		opener:      opener,
		altReader:   altReader,
		registrar:   registrar,
		log:         log,
		devices:     make(map[input.DeviceID]*deviceState),
		altOwnedRaw: make(map[uintptr]bool),
	}
}

// Dispatch services one command synchronously on the manager thread,
// implementing 4.D's three FIFO commands. The caller (the platform pump or
// a test) is responsible for ensuring this is only ever invoked from the
// single logical manager thread.
func (m *Manager) Dispatch(kind commandKind, cat Category) commandReply {
	switch kind {
	case cmdRegisterType:
		return commandReply{err: m.registrar.Register(cat)}
	case cmdUnregisterType:
		return commandReply{err: m.registrar.Unregister(cat)}
	case cmdGetEvents:
		return commandReply{events: m.DrainEvents()}
	default:
		return commandReply{}
	}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// enqueue appends an event to the drain queue under the events mutex. In
// the Windows build GetEvents is serviced on the manager thread through
// Dispatch, so the lock only matters for DrainEvents callers on other
// goroutines (§5: "guarded by a mutex; lock hold times are O(queue length)").
func (m *Manager) enqueue(e Event) {
	m.eventsMu.Lock()
	m.events = append(m.events, e)
	m.eventsMu.Unlock()
}

// DrainEvents atomically empties the event queue and returns its former
// contents, implementing the GetEvents command.
func (m *Manager) DrainEvents() []Event {
	m.eventsMu.Lock()
	defer m.eventsMu.Unlock()
	if len(m.events) == 0 {
		return nil
	}
	drained := m.events
	m.events = nil
	return drained
}

// HandleArrival processes a WM_INPUT_DEVICE_CHANGE / GIDC_ARRIVAL message
// for deviceHandle (4.D "OS messages: Device change").
func (m *Manager) HandleArrival(deviceHandle uintptr) {
	desc, path, name, err := m.opener.Open(deviceHandle)
	if err != nil {
		m.log.Warn("rawinput: open failed on arrival, ignoring device", "error", err)
		return
	}
	if hid.IsAlternateSubsystemPath(path) {
		m.altOwnedRaw[deviceHandle] = true
		m.scanAlternateSubsystem()
		return
	}
	parser, err := hid.Open(desc, path)
	if err != nil {
		m.log.Warn("rawinput: descriptor parse failed on arrival, ignoring device", "error", err)
		if cerr := desc.Close(); cerr != nil {
			m.log.Warn("rawinput: closing descriptor after failed parse", "error", cerr)
		}
		return
	}
	id := input.RawInputID(deviceHandle)
	tb := triplebuffer.New[input.Record]()
	ds := &deviceState{id: id, name: name, parser: parser, transport: tb}
	m.devices[id] = ds
	m.enqueue(Event{
		Kind: DeviceArrived,
		ID:   id,
		Description: DeviceDescription{
			ID:        id,
			Name:      name,
			Transport: tb,
		},
	})
}

// HandleRemoval processes a WM_INPUT_DEVICE_CHANGE / GIDC_REMOVAL message.
func (m *Manager) HandleRemoval(deviceHandle uintptr) {
	id := input.RawInputID(deviceHandle)
	if ds, ok := m.devices[id]; ok {
		delete(m.devices, id)
		if ds.parser != nil {
			if err := ds.parser.Close(); err != nil {
				m.log.Warn("rawinput: closing descriptor on removal", "error", err)
			}
		}
		m.enqueue(Event{Kind: DeviceRemoved, ID: id})
		return
	}
	if m.altOwnedRaw[deviceHandle] {
		delete(m.altOwnedRaw, deviceHandle)
		m.scanAlternateSubsystem()
	}
	// Unknown handle: no matching open device, ignored.
}

// HandleInput processes a WM_INPUT message already decoded into its
// concatenated HID reports by the platform layer.
func (m *Manager) HandleInput(deviceHandle uintptr, reports [][]byte) {
	id := input.RawInputID(deviceHandle)
	ds, ok := m.devices[id]
	if !ok {
		if m.altOwnedRaw[deviceHandle] {
			m.scanAlternateSubsystem()
		}
		return
	}
	rec, ok := ds.parser.DecodeReports(reports)
	if !ok {
		return // every report in the batch failed; drop without publishing.
	}
	ds.transport.Write(rec)
}

// scanAlternateSubsystem implements the periodic alternate-subsystem scan
// (4.D / 4.C): it diffs the four fixed indices against what the manager
// already knows about, emitting arrival/removal events for deltas and
// publishing a fresh snapshot for every still-present device.
func (m *Manager) scanAlternateSubsystem() {
	present, records, err := altpad.Scan(m.altReader)
	if err != nil {
		m.log.Warn("rawinput: alternate subsystem scan failed", "error", err)
		return
	}
	for i := 0; i < altpad.MaxDevices; i++ {
		id := input.AlternateSubsystemID(i)
		existing := m.altIndex[i]
		switch {
		case present[i] && existing == nil:
			tb := triplebuffer.New[input.Record]()
			tb.Write(records[i])
			ds := &deviceState{id: id, name: id.String(), transport: tb}
			m.altIndex[i] = ds
			m.enqueue(Event{
				Kind: DeviceArrived,
				ID:   id,
				Description: DeviceDescription{ID: id, Name: ds.name, Transport: tb},
			})
		case !present[i] && existing != nil:
			m.altIndex[i] = nil
			m.enqueue(Event{Kind: DeviceRemoved, ID: id})
		case present[i] && existing != nil:
			existing.transport.Write(records[i])
		}
	}
}
