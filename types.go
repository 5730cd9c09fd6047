// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package dhc

import "github.com/jmgao/dhc/internal/input"

// DeviceInputs is the canonical gamepad snapshot (component A): six axes,
// fourteen buttons, one hat. It is re-exported here, rather than
// redeclared, so the public API and internal/hid/internal/altpad share a
// single definition without a package cycle (internal/input imports no
// other dhc package, so nothing can cycle back through it).
type DeviceInputs = input.Record

// Axis, Button, and Hat enumerate DeviceInputs' fields.
type (
	Axis   = input.Axis
	Button = input.Button
	Hat    = input.Hat
)

// Axis identifiers.
const (
	AxisLeftStickX = input.AxisLeftStickX
	AxisLeftStickY = input.AxisLeftStickY
	AxisRightStickX = input.AxisRightStickX
	AxisRightStickY = input.AxisRightStickY
	AxisLeftTrigger = input.AxisLeftTrigger
	AxisRightTrigger = input.AxisRightTrigger
)

// Button identifiers.
const (
	ButtonStart    = input.ButtonStart
	ButtonSelect   = input.ButtonSelect
	ButtonHome     = input.ButtonHome
	ButtonNorth    = input.ButtonNorth
	ButtonEast     = input.ButtonEast
	ButtonSouth    = input.ButtonSouth
	ButtonWest     = input.ButtonWest
	ButtonL1       = input.ButtonL1
	ButtonL2       = input.ButtonL2
	ButtonL3       = input.ButtonL3
	ButtonR1       = input.ButtonR1
	ButtonR2       = input.ButtonR2
	ButtonR3       = input.ButtonR3
	ButtonTrackpad = input.ButtonTrackpad
)

// Hat directions.
const (
	HatNeutral = input.HatNeutral
	HatN       = input.HatN
	HatNE      = input.HatNE
	HatE       = input.HatE
	HatSE      = input.HatSE
	HatS       = input.HatS
	HatSW      = input.HatSW
	HatW       = input.HatW
	HatNW      = input.HatNW
)

// DeviceID tags a physical device's identity: either a raw-input device
// handle or a fixed alternate-subsystem index.
type DeviceID = input.DeviceID
