// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package hid

import "fmt"

// ValueCap describes one analog-style HID usage cached from the preparsed
// descriptor's value capability table: its usage page/id and the logical
// integer range a raw report value is normalized against.
type ValueCap struct {
	UsagePage  uint16
	Usage      uint16
	LogicalMin int32
	LogicalMax int32
}

// Caps summarizes the descriptor capabilities read at open time.
type Caps struct {
	ButtonCount int // total asserted-button capacity, drives family classification.
}

// Descriptor abstracts the OS preparsed-HID-descriptor calls a parser needs:
// HidP_GetCaps, HidP_GetValueCaps, HidP_GetUsages, and HidP_GetUsageValue.
// internal/rawinput's Windows build supplies the real implementation;
// production and test code alike go through this interface, which is the
// same "callbacks interface for testability" shape the raw-input manager
// itself uses (see internal/rawinput).
type Descriptor interface {
	Caps() (Caps, error)
	ValueCaps() ([]ValueCap, error)
	Usages(report []byte) ([]int, error)
	UsageValue(report []byte, vc ValueCap) (int32, error)

	// Close releases the OS-allocated preparsed descriptor (§5/§9 "Memory /
	// handle discipline"). Callers must call it exactly once, however the
	// device was removed or failed to open.
	Close() error
}

// StatusError wraps an HIDP_STATUS_* failure with the call that produced it.
type StatusError struct {
	Call string
	Code StatusCode
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("hid: %s failed: %s", e.Call, e.Code)
}

// StatusCode is the descriptor-error taxonomy from the error design (§7):
// one named value per HIDP_STATUS_* code the parser can observe, plus an
// Unknown catch-all for anything else the OS returns.
type StatusCode int

const (
	StatusSuccess StatusCode = iota
	StatusBufferTooSmall
	StatusButtonNotPressed
	StatusDataIndexNotFound
	StatusDataIndexOutOfRange
	StatusIncompatibleReportID
	StatusInvalidPreparsedData
	StatusInvalidReportLength
	StatusInvalidReportType
	StatusNotImplemented
	StatusNullPointer
	StatusReportDoesNotExist
	StatusUsageNotFound
	StatusValueOutOfRange
	StatusInternal
	StatusUnknown
)

func (c StatusCode) String() string {
	switch c {
	case StatusSuccess:
		return "success"
	case StatusBufferTooSmall:
		return "buffer-too-small"
	case StatusButtonNotPressed:
		return "button-not-pressed"
	case StatusDataIndexNotFound:
		return "data-index-not-found"
	case StatusDataIndexOutOfRange:
		return "data-index-out-of-range"
	case StatusIncompatibleReportID:
		return "incompatible-report-id"
	case StatusInvalidPreparsedData:
		return "invalid-preparsed-data"
	case StatusInvalidReportLength:
		return "invalid-report-length"
	case StatusInvalidReportType:
		return "invalid-report-type"
	case StatusNotImplemented:
		return "not-implemented"
	case StatusNullPointer:
		return "null-pointer"
	case StatusReportDoesNotExist:
		return "report-does-not-exist"
	case StatusUsageNotFound:
		return "usage-not-found"
	case StatusValueOutOfRange:
		return "value-out-of-range"
	case StatusInternal:
		return "internal"
	default:
		return "unknown"
	}
}
