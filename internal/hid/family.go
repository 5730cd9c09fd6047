// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package hid caches a device's preparsed HID descriptor and decodes its
// input reports into canonical gamepad records (component B). It depends
// only on a small Descriptor interface so it can be unit tested without a
// real HID stack; internal/rawinput supplies the Windows-backed
// implementation at runtime.
package hid

import "strings"

// Family classifies a device by its HID button count, chosen once at open
// time and cached for the device's lifetime.
type Family int

const (
	// PS4Like is a fourteen-button layout.
	PS4Like Family = iota
	// PS3Like is a thirteen-button layout, a strict subset of PS4Like.
	PS3Like
	// Generic is the best-effort fallback for anything else.
	Generic
	// AlternateSubsystem marks a device claimed by the alternate gamepad
	// subsystem; it is never decoded through this package's report path.
	AlternateSubsystem
)

func (f Family) String() string {
	switch f {
	case PS4Like:
		return "PS4Like"
	case PS3Like:
		return "PS3Like"
	case Generic:
		return "Generic"
	case AlternateSubsystem:
		return "AlternateSubsystem"
	default:
		return "Unknown"
	}
}

// alternateSubsystemMarker is the bit-exact substring the OS device path is
// tested for. A match means the device must be read through the alternate
// subsystem instead of raw HID reports.
const alternateSubsystemMarker = "&IG_"

// IsAlternateSubsystemPath reports whether devicePath identifies a device
// claimed by the alternate gamepad subsystem.
func IsAlternateSubsystemPath(devicePath string) bool {
	return strings.Contains(devicePath, alternateSubsystemMarker)
}

// ClassifyFamily chooses a Family from the descriptor's total button count.
// A device on the alternate-subsystem path is classified before this is
// ever consulted; this function covers the HID-only PS4-like/PS3-like/
// Generic split.
func ClassifyFamily(buttonCount int) Family {
	switch buttonCount {
	case 14:
		return PS4Like
	case 13:
		return PS3Like
	default:
		return Generic
	}
}
