// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package dhc

import (
	"testing"

	"github.com/jmgao/dhc/internal/input"
	"github.com/jmgao/dhc/internal/rawinput"
	"github.com/jmgao/dhc/internal/triplebuffer"
)

// newTestContext builds a Context with n unbound slots and no manager
// thread, so scenarios can be driven directly through applyEvents.
func newTestContext(n int, opts ...Option) *Context {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	slots := make([]virtualSlot, n)
	for i := range slots {
		slots[i] = virtualSlot{inputs: input.NewRecord(), boundTo: -1}
	}
	return &Context{slots: slots, postprocess: s.postprocess, alternateSubsystemEnabled: s.alternateSubsystemEnabled}
}

func arrival(id input.DeviceID, name string) rawinput.Event {
	tb := triplebuffer.New[input.Record]()
	tb.Write(input.NewRecord())
	return rawinput.Event{
		Kind:        rawinput.DeviceArrived,
		ID:          id,
		Description: rawinput.DeviceDescription{ID: id, Name: name, Transport: tb},
	}
}

func removal(id input.DeviceID) rawinput.Event {
	return rawinput.Event{Kind: rawinput.DeviceRemoved, ID: id}
}

// S1. Start with device_count=2, no devices.
func TestS1NoDevicesCenteredDefault(t *testing.T) {
	ctx := newTestContext(2)
	ctx.applyEvents(nil)
	if got := ctx.DeviceState(0).Axis(AxisLeftStickX); got != 0.5 {
		t.Errorf("axis_left_stick_x = %v, want 0.5", got)
	}
}

// S2. Inject DeviceArrived(#1) then update. Slot 0 bound to #1, slot 1 unbound.
func TestS2SingleArrivalBindsSlot0(t *testing.T) {
	ctx := newTestContext(2)
	dev1 := input.RawInputID(1)
	ctx.applyEvents([]rawinput.Event{arrival(dev1, "pad1")})

	if ctx.slots[0].boundTo < 0 || ctx.devices[ctx.slots[0].boundTo].id != dev1 {
		t.Fatalf("expected slot 0 bound to device 1, got %+v", ctx.slots[0])
	}
	if ctx.slots[1].boundTo >= 0 {
		t.Errorf("expected slot 1 unbound, got %+v", ctx.slots[1])
	}
}

// S3. Arrive #1, arrive #2, update. Slot0<->#2, slot1<->#1 (newest-first).
func TestS3NewestFirstBinding(t *testing.T) {
	ctx := newTestContext(2)
	dev1, dev2 := input.RawInputID(1), input.RawInputID(2)
	ctx.applyEvents([]rawinput.Event{arrival(dev1, "pad1"), arrival(dev2, "pad2")})

	if ctx.devices[ctx.slots[0].boundTo].id != dev2 {
		t.Errorf("expected slot 0 bound to device 2, got %+v", ctx.devices[ctx.slots[0].boundTo])
	}
	if ctx.devices[ctx.slots[1].boundTo].id != dev1 {
		t.Errorf("expected slot 1 bound to device 1, got %+v", ctx.devices[ctx.slots[1].boundTo])
	}
}

// S4. Continuing S3, remove #2, update. Slot 0 becomes bound to #1, slot 1
// unbound with default inputs.
func TestS4RemovalReshufflesOlderDeviceIntoSlot0(t *testing.T) {
	ctx := newTestContext(2)
	dev1, dev2 := input.RawInputID(1), input.RawInputID(2)
	ctx.applyEvents([]rawinput.Event{arrival(dev1, "pad1"), arrival(dev2, "pad2")})

	ctx.applyEvents([]rawinput.Event{removal(dev2)})

	if ctx.slots[0].boundTo < 0 || ctx.devices[ctx.slots[0].boundTo].id != dev1 {
		t.Fatalf("expected slot 0 bound to device 1, got %+v", ctx.slots[0])
	}
	if ctx.slots[1].boundTo >= 0 {
		t.Errorf("expected slot 1 unbound, got %+v", ctx.slots[1])
	}
	if got := ctx.DeviceState(1); got != input.NewRecord() {
		t.Errorf("expected slot 1's inputs to be the default record, got %+v", got)
	}
}

// S5. dpad_override=true: hat=NE, left-stick=(0.8,0.2) -> left-stick=(0.5,0.5), hat unchanged.
func TestS5DpadOverride(t *testing.T) {
	var rec input.Record
	rec.SetHat(input.HatNE)
	rec.SetAxis(input.AxisLeftStickX, 0.8)
	rec.SetAxis(input.AxisLeftStickY, 0.2)

	p := postprocessor{dpadOverride: true}
	out := p.apply(rec)

	if out.Axis(input.AxisLeftStickX) != 0.5 || out.Axis(input.AxisLeftStickY) != 0.5 {
		t.Errorf("expected left stick forced to center, got (%v,%v)", out.Axis(input.AxisLeftStickX), out.Axis(input.AxisLeftStickY))
	}
	if out.Hat() != input.HatNE {
		t.Errorf("expected hat unchanged, got %v", out.Hat())
	}
}

// S6. deadzone.enabled=true, threshold=0.5.
func TestS6DeadzoneSnapToEdge(t *testing.T) {
	var below input.Record
	below.SetAxis(input.AxisLeftStickX, 0.70)
	below.SetAxis(input.AxisLeftStickY, 0.5)

	p := postprocessor{deadzoneEnabled: true, deadzoneThreshold: 0.5}
	out := p.apply(below)
	if out.Axis(input.AxisLeftStickX) != 0.5 || out.Axis(input.AxisLeftStickY) != 0.5 {
		t.Errorf("expected snap to center, got (%v,%v)", out.Axis(input.AxisLeftStickX), out.Axis(input.AxisLeftStickY))
	}

	var above input.Record
	above.SetAxis(input.AxisLeftStickX, 0.80)
	above.SetAxis(input.AxisLeftStickY, 0.5)
	out = p.apply(above)
	if out.Axis(input.AxisLeftStickX) != 1.0 || out.Axis(input.AxisLeftStickY) != 0.5 {
		t.Errorf("expected snap to edge, got (%v,%v)", out.Axis(input.AxisLeftStickX), out.Axis(input.AxisLeftStickY))
	}
}

// Invariant 4: update() is idempotent with no new events.
func TestUpdateIdempotentWithNoEvents(t *testing.T) {
	ctx := newTestContext(2)
	dev1 := input.RawInputID(1)
	ctx.applyEvents([]rawinput.Event{arrival(dev1, "pad1")})
	before := ctx.DeviceState(0)

	ctx.applyEvents(nil)
	after := ctx.DeviceState(0)

	if before != after {
		t.Errorf("expected idempotent update, got %+v != %+v", before, after)
	}
}

// Invariant 2: no two slots share a binding, no two devices share a
// back-binding, across a 3-slot/3-device scenario.
func TestRebindNeverDoubleBinds(t *testing.T) {
	ctx := newTestContext(3)
	ids := []input.DeviceID{input.RawInputID(1), input.RawInputID(2), input.RawInputID(3)}
	var events []rawinput.Event
	for _, id := range ids {
		events = append(events, arrival(id, "pad"))
	}
	ctx.applyEvents(events)

	seenSlot := map[int]bool{}
	seenDev := map[int]bool{}
	for i, s := range ctx.slots {
		if s.boundTo < 0 {
			continue
		}
		if seenDev[s.boundTo] {
			t.Fatalf("device %d bound to more than one slot", s.boundTo)
		}
		seenDev[s.boundTo] = true
		seenSlot[i] = true
		if ctx.devices[s.boundTo].boundTo != i {
			t.Errorf("device %d back-binding %d does not match slot %d", s.boundTo, ctx.devices[s.boundTo].boundTo, i)
		}
	}
	for j, d := range ctx.devices {
		if d.boundTo < 0 {
			continue
		}
		if !seenSlot[d.boundTo] || ctx.slots[d.boundTo].boundTo != j {
			t.Errorf("device %d back-binding %d is not matched by that slot", j, d.boundTo)
		}
	}
}

func TestDeviceCount(t *testing.T) {
	ctx := newTestContext(4)
	if ctx.DeviceCount() != 4 {
		t.Errorf("DeviceCount() = %d, want 4", ctx.DeviceCount())
	}
}

func TestAlternateSubsystemEnabledReflectsOption(t *testing.T) {
	ctx := newTestContext(2, WithAlternateSubsystem(true))
	if !ctx.AlternateSubsystemEnabled() {
		t.Errorf("expected alternate subsystem reported enabled")
	}
}
