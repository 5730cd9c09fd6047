// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build windows

package winapi

import (
	"unsafe"

	"github.com/jmgao/dhc/internal/altpad"
)

// AlternateSubsystemReader implements altpad.Reader over XInputGetState,
// the real alternate (XInput-like) gamepad subsystem on Windows.
type AlternateSubsystemReader struct{}

// Read implements altpad.Reader.
func (AlternateSubsystemReader) Read(index int) (altpad.State, bool, error) {
	var state XInputState
	ret, _, _ := procXInputGetState.Call(uintptr(index), uintptr(unsafe.Pointer(&state)))
	if uint32(ret) == ErrorDeviceNotConnected {
		return altpad.State{}, false, nil
	}
	if uint32(ret) != ErrorSuccess {
		return altpad.State{}, false, nil
	}
	return toAltpadState(state.Gamepad), true, nil
}

// toAltpadState converts an XINPUT_GAMEPAD reading into altpad.State,
// following the button order altpad.Translate expects.
func toAltpadState(g XInputGamepad) altpad.State {
	s := altpad.State{}
	s.Buttons[0] = g.Buttons&XInputGamepadStart != 0
	s.Buttons[1] = g.Buttons&XInputGamepadBack != 0
	// XInput has no dedicated "home/guide" bit in XINPUT_GAMEPAD; left unset.
	s.Buttons[3] = g.Buttons&XInputGamepadY != 0 // north
	s.Buttons[4] = g.Buttons&XInputGamepadB != 0 // east
	s.Buttons[5] = g.Buttons&XInputGamepadA != 0 // south
	s.Buttons[6] = g.Buttons&XInputGamepadX != 0 // west
	s.Buttons[7] = g.Buttons&XInputGamepadLeftShoulder != 0
	s.Buttons[9] = g.Buttons&XInputGamepadLeftThumb != 0
	s.Buttons[10] = g.Buttons&XInputGamepadRightShoulder != 0
	s.Buttons[12] = g.Buttons&XInputGamepadRightThumb != 0

	s.LeftStick[0] = normalizeThumb(g.ThumbLX)
	s.LeftStick[1] = normalizeThumb(g.ThumbLY)
	s.RightStick[0] = normalizeThumb(g.ThumbRX)
	s.RightStick[1] = normalizeThumb(g.ThumbRY)

	if g.LeftTrigger > XInputTriggerThreshold {
		s.LeftTrigger = 1
	}
	if g.RightTrigger > XInputTriggerThreshold {
		s.RightTrigger = 1
	}

	if g.Buttons&XInputGamepadDPadUp != 0 {
		s.DPadY = 1
	} else if g.Buttons&XInputGamepadDPadDown != 0 {
		s.DPadY = -1
	}
	if g.Buttons&XInputGamepadDPadRight != 0 {
		s.DPadX = 1
	} else if g.Buttons&XInputGamepadDPadLeft != 0 {
		s.DPadX = -1
	}
	return s
}

// normalizeThumb maps a signed 16-bit thumbstick reading to [-1,+1].
func normalizeThumb(v int16) float64 {
	if v < 0 {
		return float64(v) / 32768.0
	}
	return float64(v) / 32767.0
}
