// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build windows

package winapi

// Window messages the manager thread's message pump cares about.
const (
	WMInput             = 0x00FF
	WMInputDeviceChange = 0x00FE
	WMDestroy           = 0x0002
	WMQuit              = 0x0012
	WMUser              = 0x0400
)

// WM_INPUT_DEVICE_CHANGE wParam values.
const (
	GIDCArrival = 2
	GIDCRemoval = 4
)

// RegisterRawInputDevices dwFlags.
const (
	RIDevInputSink = 0x00000100
	RIDevDevNotify = 0x00002000
	RIDevRemove    = 0x00000001
)

// Raw-input device usage page/usage for joystick and gamepad categories.
const (
	UsagePageGenericDesktop = 0x01
	UsageJoystick           = 0x04
	UsageGamepad            = 0x05
)

// GetRawInputData command.
const RIDInput = 0x10000003

// GetRawInputDeviceInfo commands.
const (
	RIDIDeviceName = 0x20000007
	RIDIDeviceInfo = 0x2000000b
)

// RAWINPUT header dwType.
const RIMTypeHID = 2

// HIDP_STATUS_* values (full 32-bit NTSTATUS-style codes in the HID
// facility; only the ones the parser distinguishes are named here).
const (
	HidPStatusSuccess              = 0x00110000
	HidPStatusNull                 = 0x80110001
	HidPStatusInvalidPreparsedData = 0xc0110001
	HidPStatusInvalidReportType    = 0xc0110002
	HidPStatusInvalidReportLength  = 0xc0110003
	HidPStatusUsageNotFound        = 0xc0110004
	HidPStatusValueOutOfRange      = 0xc0110005
	HidPStatusBadLogPhyValues      = 0xc0110006
	HidPStatusBufferTooSmall       = 0xc0110009
	HidPStatusInternalError        = 0xc011000a
	HidPStatusIncompatibleReportID = 0xc011000b
	HidPStatusNotValueArray        = 0xc011000c
	HidPStatusIsButton             = 0xc011000d
	HidPStatusDataIndexNotFound    = 0xc0110010
	HidPStatusDataIndexOutOfRange  = 0xc0110011
	HidPStatusButtonNotPressed     = 0xc0110012
	HidPStatusReportDoesNotExist   = 0xc0110013
	HidPStatusNotImplemented       = 0xc0110020
)

// HidP_Input / HidP_Output report type selector used by HidP_GetUsages and
// HidP_GetUsageValue.
const HidPInput = 0

// XInput device indices are always 0..3.
const XInputMaxDevices = 4

// XInputGetState return codes.
const (
	ErrorSuccess        = 0
	ErrorDeviceNotConnected = 0x48F
)

// Thread priority class for the manager thread.
const ThreadPriorityTimeCritical = 15

// INVALID_HANDLE_VALUE.
const InvalidHandleValue = ^uintptr(0)
