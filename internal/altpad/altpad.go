// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package altpad reads the alternate (XInput-like) gamepad subsystem,
// which addresses up to four gamepads by fixed index and exposes no
// arrival/removal notifications of its own (component C). internal/rawinput
// periodically scans all four indices to synthesize arrival/removal events.
package altpad

import "github.com/jmgao/dhc/internal/input"

// MaxDevices is the fixed number of indices the alternate subsystem
// addresses.
const MaxDevices = 4

// State is the raw reading for one alternate-subsystem index before
// translation into a canonical record.
type State struct {
	Buttons    [14]bool
	LeftStick  [2]float64 // x, y in [-1,+1], y pointing up
	RightStick [2]float64
	LeftTrigger  float64 // already thresholded to boolean by the subsystem
	RightTrigger float64
	DPadX, DPadY int // -1, 0, +1
}

// Reader abstracts the subsystem's per-index poll so tests can drive it
// without real hardware. A real implementation (internal/rawinput's
// Windows build) backs this with the subsystem's native get-state call.
type Reader interface {
	// Read returns the state at index (0..MaxDevices-1), or ok=false if no
	// device currently occupies that index.
	Read(index int) (State, bool, error)
}

// buttonOrder is the one-for-one mapping from the subsystem's fixed button
// bit order to the canonical Button enum.
var buttonOrder = [14]input.Button{
	input.ButtonStart, input.ButtonSelect, input.ButtonHome,
	input.ButtonNorth, input.ButtonEast, input.ButtonSouth, input.ButtonWest,
	input.ButtonL1, input.ButtonL2, input.ButtonL3,
	input.ButtonR1, input.ButtonR2, input.ButtonR3, input.ButtonTrackpad,
}

// Translate converts one raw subsystem reading into a canonical record
// following the 4.C translation rules: sticks remapped from [-1,1] with Y
// inverted to [0,1], triggers passed through as the subsystem's own boolean
// threshold, and the digital pad combined into the 9-value hat.
func Translate(s State) input.Record {
	rec := input.NewRecord()
	for i, b := range s.Buttons {
		if b {
			rec.SetButton(buttonOrder[i], true)
		}
	}
	rec.SetAxis(input.AxisLeftStickX, (s.LeftStick[0]+1)/2)
	rec.SetAxis(input.AxisLeftStickY, (1-s.LeftStick[1])/2)
	rec.SetAxis(input.AxisRightStickX, (s.RightStick[0]+1)/2)
	rec.SetAxis(input.AxisRightStickY, (1-s.RightStick[1])/2)
	if s.LeftTrigger != 0 {
		rec.SetButton(input.ButtonL2, true)
	}
	if s.RightTrigger != 0 {
		rec.SetButton(input.ButtonR2, true)
	}
	rec.SetHat(dpadHat(s.DPadX, s.DPadY))
	return rec
}

// dpadHat combines a signed (hx,hy) pair into the 9-value hat enum.
func dpadHat(hx, hy int) input.Hat {
	switch {
	case hx == 0 && hy == 1:
		return input.HatN
	case hx == 1 && hy == 1:
		return input.HatNE
	case hx == 1 && hy == 0:
		return input.HatE
	case hx == 1 && hy == -1:
		return input.HatSE
	case hx == 0 && hy == -1:
		return input.HatS
	case hx == -1 && hy == -1:
		return input.HatSW
	case hx == -1 && hy == 0:
		return input.HatW
	case hx == -1 && hy == 1:
		return input.HatNW
	default:
		return input.HatNeutral
	}
}

// Scan reads every index through r and returns the set of occupied indices
// along with their translated records, preserving index order.
func Scan(r Reader) (present [MaxDevices]bool, records [MaxDevices]input.Record, err error) {
	for i := 0; i < MaxDevices; i++ {
		s, ok, rerr := r.Read(i)
		if rerr != nil {
			return present, records, rerr
		}
		present[i] = ok
		if ok {
			records[i] = Translate(s)
		}
	}
	return present, records, nil
}
