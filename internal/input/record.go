// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package input holds the canonical gamepad snapshot record and device
// identity types shared by every subsystem in dhc. It is deliberately
// dependency-free so that internal/hid, internal/altpad, internal/rawinput,
// and the root dhc package can all import it without forming a cycle.
package input

// Axis enumerates the six analog axes of a canonical gamepad record.
// Field order is stable and exposed as-is across the C-ABI; changing it
// is a breaking change.
type Axis int

const (
	AxisLeftStickX Axis = iota
	AxisLeftStickY
	AxisRightStickX
	AxisRightStickY
	AxisLeftTrigger
	AxisRightTrigger
	axisCount
)

// Button enumerates the fourteen boolean buttons of a canonical record.
type Button int

const (
	ButtonStart Button = iota
	ButtonSelect
	ButtonHome
	ButtonNorth
	ButtonEast
	ButtonSouth
	ButtonWest
	ButtonL1
	ButtonL2
	ButtonL3
	ButtonR1
	ButtonR2
	ButtonR3
	ButtonTrackpad
	buttonCount
)

// Hat enumerates the nine dpad positions.
type Hat int

const (
	HatNeutral Hat = iota
	HatN
	HatNE
	HatE
	HatSE
	HatS
	HatSW
	HatW
	HatNW
)

// centerValue is the resting value of every axis: dead center.
const centerValue = 0.5

// Record is the fixed-layout canonical gamepad snapshot (component A).
// Every field leaving the library through the public API satisfies
// invariant (iii): axes always lie in [0,1].
type Record struct {
	axes    [axisCount]float64
	buttons [buttonCount]bool
	hat     Hat
}

// NewRecord returns a default-constructed record: centered axes, every
// button released, hat neutral.
func NewRecord() Record {
	r := Record{hat: HatNeutral}
	for i := range r.axes {
		r.axes[i] = centerValue
	}
	return r
}

// SetAxis sets an axis value. v is clamped to [0,1]; callers that need the
// unclamped value for parity testing should do so before calling SetAxis.
func (r *Record) SetAxis(a Axis, v float64) {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	r.axes[a] = v
}

// Axis returns the current value of axis a.
func (r Record) Axis(a Axis) float64 { return r.axes[a] }

// SetButton sets the pressed state of button b.
func (r *Record) SetButton(b Button, pressed bool) { r.buttons[b] = pressed }

// Button returns the pressed state of button b.
func (r Record) Button(b Button) bool { return r.buttons[b] }

// SetHat sets the current dpad position.
func (r *Record) SetHat(h Hat) { r.hat = h }

// Hat returns the current dpad position.
func (r Record) Hat() Hat { return r.hat }

// ClearButtons releases every button at once. Binding teardown in the root
// package does not call it: a freed virtual slot gets a whole NewRecord.
func (r *Record) ClearButtons() {
	for i := range r.buttons {
		r.buttons[i] = false
	}
}

// HatFromRaw decodes a raw HID hat-switch integer into the nine-value enum
// (alternate-subsystem (hx,hy) pairs go through altpad instead). Values 0..7
// map to N, NE, E, SE, S, SW, W, NW in order; anything else is Neutral.
func HatFromRaw(raw int) Hat {
	switch raw {
	case 0:
		return HatN
	case 1:
		return HatNE
	case 2:
		return HatE
	case 3:
		return HatSE
	case 4:
		return HatS
	case 5:
		return HatSW
	case 6:
		return HatW
	case 7:
		return HatNW
	default:
		return HatNeutral
	}
}
