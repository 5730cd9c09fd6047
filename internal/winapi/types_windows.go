// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build windows

package winapi

// RawInputDevice mirrors RAWINPUTDEVICE, one entry per (usage page, usage)
// category registered with RegisterRawInputDevices.
type RawInputDevice struct {
	UsagePage uint16
	Usage     uint16
	Flags     uint32
	Target    uintptr // HWND
}

// Point mirrors POINT.
type Point struct{ X, Y int32 }

// Msg mirrors MSG, the structure GetMessageW fills in per pump iteration.
type Msg struct {
	Hwnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      Point
}

// RawInputHeader mirrors RAWINPUTHEADER, the fixed prefix of every
// GetRawInputData result.
type RawInputHeader struct {
	Type   uint32
	Size   uint32
	Device uintptr
	WParam uintptr
}

// RawInputDeviceInfoHID mirrors the RAWINPUT union's HID-specific branch of
// RID_DEVICE_INFO, enough to validate dwType == RIM_TYPEHID and read the
// vendor/product identity.
type RawInputDeviceInfoHID struct {
	Size          uint32
	Type          uint32
	VendorID      uint32
	ProductID     uint32
	VersionNumber uint32
	UsagePage     uint16
	Usage         uint16
}

// HIDDAttributes mirrors HIDD_ATTRIBUTES.
type HIDDAttributes struct {
	Size          uint32
	VendorID      uint16
	ProductID     uint16
	VersionNumber uint16
}

// HIDPCaps mirrors the fields of HIDP_CAPS this package actually reads.
type HIDPCaps struct {
	Usage                     uint16
	UsagePage                 uint16
	InputReportByteLength     uint16
	OutputReportByteLength    uint16
	FeatureReportByteLength   uint16
	Reserved                  [17]uint16
	NumberLinkCollectionNodes uint16
	NumberInputButtonCaps     uint16
	NumberInputValueCaps      uint16
	NumberInputDataIndices    uint16
	NumberOutputButtonCaps    uint16
	NumberOutputValueCaps     uint16
	NumberOutputDataIndices   uint16
	NumberFeatureButtonCaps   uint16
	NumberFeatureValueCaps    uint16
	NumberFeatureDataIndices  uint16
}

// HIDPValueCaps mirrors the fields of HIDP_VALUE_CAPS this package reads:
// usage page/id and the logical integer range. The real structure is a
// tagged union over range/not-range forms; we only read the "is a range"
// arm's first usage, which is how a single-usage value cap (the common
// gamepad-axis case) is laid out.
type HIDPValueCaps struct {
	UsagePage       uint16
	ReportID        byte
	IsAlias         byte
	BitField        uint16
	LinkCollection  uint16
	LinkUsage       uint16
	LinkUsagePage   uint16
	IsRange         byte
	IsStringRange   byte
	IsDesignatorRange byte
	IsAbsolute      byte
	HasNull         byte
	_               byte
	BitSize         uint16
	ReportCount     uint16
	Reserved        [5]uint16
	UnitsExp        uint32
	Units           uint32
	LogicalMin      int32
	LogicalMax      int32
	PhysicalMin     int32
	PhysicalMax     int32
	UsageMin        uint16
	UsageMax        uint16
	StringMin       uint16
	StringMax       uint16
	DesignatorMin   uint16
	DesignatorMax   uint16
	DataIndexMin    uint16
	DataIndexMax    uint16
}

// Usage returns the cap's usage id (UsageMin covers both the range and
// single-usage forms since DHC only deals with single-usage axis caps).
func (c HIDPValueCaps) Usage() uint16 { return c.UsageMin }

// HIDPUsageAndPage mirrors USAGE_AND_PAGE, one entry of a
// HidP_GetUsagesEx result; unused when HidP_GetUsages (single usage page)
// suffices, kept for symmetry with the native API surface.
type HIDPUsageAndPage struct {
	Usage     uint16
	UsagePage uint16
}

// XInputGamepad mirrors XINPUT_GAMEPAD.
type XInputGamepad struct {
	Buttons      uint16
	LeftTrigger  byte
	RightTrigger byte
	ThumbLX      int16
	ThumbLY      int16
	ThumbRX      int16
	ThumbRY      int16
}

// XInputState mirrors XINPUT_STATE.
type XInputState struct {
	PacketNumber uint32
	Gamepad      XInputGamepad
}

// XInput button bitmask, in XINPUT_GAMEPAD bit order. toAltpadState
// rearranges these into the order altpad.Translate expects; guide/home is
// not reported by XInput, so that button is always unset.
const (
	XInputGamepadDPadUp        = 0x0001
	XInputGamepadDPadDown      = 0x0002
	XInputGamepadDPadLeft      = 0x0004
	XInputGamepadDPadRight     = 0x0008
	XInputGamepadStart         = 0x0010
	XInputGamepadBack          = 0x0020
	XInputGamepadLeftThumb     = 0x0040
	XInputGamepadRightThumb    = 0x0080
	XInputGamepadLeftShoulder  = 0x0100
	XInputGamepadRightShoulder = 0x0200
	XInputGamepadA             = 0x1000
	XInputGamepadB             = 0x2000
	XInputGamepadX             = 0x4000
	XInputGamepadY             = 0x8000
)

// XInputTriggerThreshold mirrors XINPUT_GAMEPAD_TRIGGER_THRESHOLD, the
// built-in boolean threshold the alternate subsystem applies to its analog
// triggers.
const XInputTriggerThreshold = 30
