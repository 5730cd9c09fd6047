// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package rawinput

import (
	"testing"

	"github.com/jmgao/dhc/internal/altpad"
	"github.com/jmgao/dhc/internal/hid"
	"github.com/jmgao/dhc/internal/input"
)

type fakeOpener struct {
	byHandle map[uintptr]fakeOpenResult
}

type fakeOpenResult struct {
	desc hid.Descriptor
	path string
	name string
	err  error
}

func (f *fakeOpener) Open(h uintptr) (hid.Descriptor, string, string, error) {
	r, ok := f.byHandle[h]
	if !ok {
		return nil, "", "", errUnknownHandle
	}
	return r.desc, r.path, r.name, r.err
}

var errUnknownHandle = &unknownHandleError{}

type unknownHandleError struct{}

func (*unknownHandleError) Error() string { return "unknown handle" }

type fakeDescriptor struct {
	buttonCount int
	failOpen    bool // causes hid.Open to fail its Caps() call
	closed      bool
}

func (f *fakeDescriptor) Caps() (hid.Caps, error) {
	if f.failOpen {
		return hid.Caps{}, &hid.StatusError{Call: "HidP_GetCaps", Code: hid.StatusInternal}
	}
	return hid.Caps{ButtonCount: f.buttonCount}, nil
}
func (f *fakeDescriptor) ValueCaps() ([]hid.ValueCap, error) { return nil, nil }
func (f *fakeDescriptor) Usages(report []byte) ([]int, error) { return nil, nil }
func (f *fakeDescriptor) UsageValue(report []byte, vc hid.ValueCap) (int32, error) { return 0, nil }
func (f *fakeDescriptor) Close() error { f.closed = true; return nil }

type fakeAltReader struct{ states map[int]altpad.State }

func (f *fakeAltReader) Read(index int) (altpad.State, bool, error) {
	s, ok := f.states[index]
	return s, ok, nil
}

type fakeRegistrar struct{ registered, unregistered []Category }

func (f *fakeRegistrar) Register(cat Category) error {
	f.registered = append(f.registered, cat)
	return nil
}
func (f *fakeRegistrar) Unregister(cat Category) error {
	f.unregistered = append(f.unregistered, cat)
	return nil
}

func newTestManager() (*Manager, *fakeOpener, *fakeAltReader, *fakeRegistrar) {
	opener := &fakeOpener{byHandle: make(map[uintptr]fakeOpenResult)}
	alt := &fakeAltReader{states: make(map[int]altpad.State)}
	reg := &fakeRegistrar{}
	return NewManager(opener, alt, reg, nil), opener, alt, reg
}

func TestHandleArrivalEnqueuesEventAndOpensDevice(t *testing.T) {
	m, opener, _, _ := newTestManager()
	opener.byHandle[1] = fakeOpenResult{desc: &fakeDescriptor{buttonCount: 14}, path: `\\?\HID#VID_054C`, name: "DualShock 4"}

	m.HandleArrival(1)

	events := m.DrainEvents()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Kind != DeviceArrived {
		t.Errorf("expected DeviceArrived")
	}
	if events[0].Description.Name != "DualShock 4" {
		t.Errorf("unexpected name %q", events[0].Description.Name)
	}
	if _, ok := m.devices[input.RawInputID(1)]; !ok {
		t.Errorf("expected device registered in manager's table")
	}
}

func TestHandleArrivalOpenFailureIsSilentlyIgnored(t *testing.T) {
	m, _, _, _ := newTestManager()
	m.HandleArrival(99) // unknown handle -> Open returns error

	if events := m.DrainEvents(); len(events) != 0 {
		t.Errorf("expected no events on open failure, got %d", len(events))
	}
}

func TestHandleArrivalAlternateSubsystemPathTriggersScanNotArrival(t *testing.T) {
	m, opener, alt, _ := newTestManager()
	opener.byHandle[2] = fakeOpenResult{path: `\\?\HID#VID_045E&PID_028E&IG_00`}
	alt.states[0] = altpad.State{}

	m.HandleArrival(2)

	events := m.DrainEvents()
	if len(events) != 1 {
		t.Fatalf("expected exactly one event (from the scan), got %d", len(events))
	}
	if events[0].ID != input.AlternateSubsystemID(0) {
		t.Errorf("expected the scan-generated event to address index 0, got %v", events[0].ID)
	}
	if _, ok := m.devices[input.RawInputID(2)]; ok {
		t.Errorf("alternate-subsystem device must not be added under its raw-input identity")
	}
}

func TestHandleRemovalOfKnownDeviceEnqueuesRemoved(t *testing.T) {
	m, opener, _, _ := newTestManager()
	opener.byHandle[1] = fakeOpenResult{desc: &fakeDescriptor{buttonCount: 14}, path: `\\?\HID#VID_054C`, name: "pad"}
	m.HandleArrival(1)
	m.DrainEvents()

	m.HandleRemoval(1)

	events := m.DrainEvents()
	if len(events) != 1 || events[0].Kind != DeviceRemoved {
		t.Fatalf("expected a single DeviceRemoved event, got %+v", events)
	}
	if _, ok := m.devices[input.RawInputID(1)]; ok {
		t.Errorf("expected device removed from manager's table")
	}
}

func TestHandleRemovalClosesDescriptor(t *testing.T) {
	m, opener, _, _ := newTestManager()
	desc := &fakeDescriptor{buttonCount: 14}
	opener.byHandle[1] = fakeOpenResult{desc: desc, path: `\\?\HID#VID_054C`, name: "pad"}
	m.HandleArrival(1)
	m.DrainEvents()

	m.HandleRemoval(1)

	if !desc.closed {
		t.Errorf("expected HandleRemoval to close the device's descriptor")
	}
}

func TestHandleArrivalClosesDescriptorOnParseFailure(t *testing.T) {
	m, opener, _, _ := newTestManager()
	desc := &fakeDescriptor{failOpen: true}
	opener.byHandle[1] = fakeOpenResult{desc: desc, path: `\\?\HID#VID_054C`, name: "pad"}

	m.HandleArrival(1)

	if !desc.closed {
		t.Errorf("expected HandleArrival to close the descriptor when hid.Open fails")
	}
	if _, ok := m.devices[input.RawInputID(1)]; ok {
		t.Errorf("expected no device registered after parse failure")
	}
}

func TestHandleRemovalOfAlternateOwnedRawHandleTriggersScan(t *testing.T) {
	m, opener, alt, _ := newTestManager()
	opener.byHandle[2] = fakeOpenResult{path: `\\?\HID#VID_045E&PID_028E&IG_00`}
	alt.states[0] = altpad.State{}
	m.HandleArrival(2)
	m.DrainEvents()

	delete(alt.states, 0)
	m.HandleRemoval(2)

	events := m.DrainEvents()
	if len(events) != 1 || events[0].Kind != DeviceRemoved || events[0].ID != input.AlternateSubsystemID(0) {
		t.Fatalf("expected the scan to report index 0 removed, got %+v", events)
	}
}

func TestDispatchRegisterAndUnregister(t *testing.T) {
	m, _, _, reg := newTestManager()
	reply := m.Dispatch(cmdRegisterType, CategoryGamepad)
	if reply.err != nil {
		t.Fatalf("unexpected error: %v", reply.err)
	}
	reply = m.Dispatch(cmdUnregisterType, CategoryGamepad)
	if reply.err != nil {
		t.Fatalf("unexpected error: %v", reply.err)
	}
	if len(reg.registered) != 1 || reg.registered[0] != CategoryGamepad {
		t.Errorf("expected one register call for CategoryGamepad, got %+v", reg.registered)
	}
	if len(reg.unregistered) != 1 {
		t.Errorf("expected one unregister call, got %+v", reg.unregistered)
	}
}
