// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build windows

package winapi

import (
	"unsafe"

	"github.com/jmgao/dhc/internal/hid"
	"golang.org/x/sys/windows"
)

// PreparsedDescriptor wraps a HidD_GetPreparsedData handle and implements
// hid.Descriptor over HidP_GetCaps / HidP_GetValueCaps / HidP_GetUsages /
// HidP_GetUsageValue. It owns the preparsed-data handle: Close releases it
// (later calls are no-ops). internal/rawinput calls it through hid.Parser's
// Close when the device is removed, or directly when parsing fails at open.
type PreparsedDescriptor struct {
	handle    uintptr
	valueCaps []hid.ValueCap
}

// OpenPreparsedDescriptor fetches the preparsed data for an open HID device
// handle. The caller must Close the result to release OS memory.
func OpenPreparsedDescriptor(deviceHandle uintptr) (*PreparsedDescriptor, error) {
	var preparsed uintptr
	ret, _, _ := procHidDGetPreparsedData.Call(deviceHandle, uintptr(unsafe.Pointer(&preparsed)))
	if ret == 0 {
		return nil, &HIDError{Call: "HidD_GetPreparsedData", Code: HidPStatusInternalError}
	}
	return &PreparsedDescriptor{handle: preparsed}, nil
}

// Close releases the preparsed-data handle.
func (d *PreparsedDescriptor) Close() error {
	if d.handle == 0 {
		return nil
	}
	procHidDFreePreparsedData.Call(d.handle)
	d.handle = 0
	return nil
}

// HIDError wraps an HIDP_STATUS_* failure with the call that produced it.
// Code holds the raw status value; it is not translated to internal/hid's
// StatusCode taxonomy.
type HIDError struct {
	Call string
	Code uint32
}

func (e *HIDError) Error() string { return "winapi: " + e.Call + " failed" }

// statusCode maps a raw HIDP_STATUS_* return value to internal/hid's
// portable StatusCode enum.
func statusCode(raw uint32) hid.StatusCode {
	switch raw {
	case HidPStatusSuccess:
		return hid.StatusSuccess
	case HidPStatusBufferTooSmall:
		return hid.StatusBufferTooSmall
	case HidPStatusButtonNotPressed:
		return hid.StatusButtonNotPressed
	case HidPStatusDataIndexNotFound:
		return hid.StatusDataIndexNotFound
	case HidPStatusDataIndexOutOfRange:
		return hid.StatusDataIndexOutOfRange
	case HidPStatusIncompatibleReportID:
		return hid.StatusIncompatibleReportID
	case HidPStatusInvalidPreparsedData:
		return hid.StatusInvalidPreparsedData
	case HidPStatusInvalidReportLength:
		return hid.StatusInvalidReportLength
	case HidPStatusInvalidReportType:
		return hid.StatusInvalidReportType
	case HidPStatusNotImplemented:
		return hid.StatusNotImplemented
	case HidPStatusNull:
		return hid.StatusNullPointer
	case HidPStatusReportDoesNotExist:
		return hid.StatusReportDoesNotExist
	case HidPStatusUsageNotFound:
		return hid.StatusUsageNotFound
	case HidPStatusValueOutOfRange:
		return hid.StatusValueOutOfRange
	case HidPStatusInternalError:
		return hid.StatusInternal
	default:
		return hid.StatusUnknown
	}
}

// Caps implements hid.Descriptor.
func (d *PreparsedDescriptor) Caps() (hid.Caps, error) {
	var caps HIDPCaps
	ret, _, _ := procHidPGetCaps.Call(d.handle, uintptr(unsafe.Pointer(&caps)))
	if uint32(ret) != HidPStatusSuccess {
		return hid.Caps{}, &hid.StatusError{Call: "HidP_GetCaps", Code: statusCode(uint32(ret))}
	}
	return hid.Caps{ButtonCount: int(caps.NumberInputButtonCaps)}, nil
}

// ValueCaps implements hid.Descriptor, reading and caching the device's
// input value-capability table once.
func (d *PreparsedDescriptor) ValueCaps() ([]hid.ValueCap, error) {
	if d.valueCaps != nil {
		return d.valueCaps, nil
	}
	if _, err := d.Caps(); err != nil {
		return nil, err
	}
	raw := make([]HIDPValueCaps, 16) // grown below on buffer-too-small.
	for {
		length := uint16(len(raw))
		ret, _, _ := procHidPGetValueCaps.Call(
			HidPInput,
			uintptr(unsafe.Pointer(&raw[0])),
			uintptr(unsafe.Pointer(&length)),
			d.handle,
		)
		if uint32(ret) == HidPStatusBufferTooSmall {
			raw = make([]HIDPValueCaps, len(raw)*2)
			continue
		}
		if uint32(ret) != HidPStatusSuccess {
			return nil, &hid.StatusError{Call: "HidP_GetValueCaps", Code: statusCode(uint32(ret))}
		}
		raw = raw[:length]
		break
	}
	out := make([]hid.ValueCap, len(raw))
	for i, c := range raw {
		out[i] = hid.ValueCap{
			UsagePage:  c.UsagePage,
			Usage:      c.Usage(),
			LogicalMin: c.LogicalMin,
			LogicalMax: c.LogicalMax,
		}
	}
	d.valueCaps = out
	return out, nil
}

// Usages implements hid.Descriptor via HidP_GetUsages, returning at most 32
// asserted button usage numbers from the report.
func (d *PreparsedDescriptor) Usages(report []byte) ([]int, error) {
	const usagePageButton = 0x09
	length, _, _ := procHidPMaxUsageListLength.Call(HidPInput, 0, d.handle)
	if length == 0 || length > 32 {
		length = 32
	}
	usages := make([]uint16, length)
	n := uint32(length)
	ret, _, _ := procHidPGetUsages.Call(
		HidPInput,
		usagePageButton,
		0,
		uintptr(unsafe.Pointer(&usages[0])),
		uintptr(unsafe.Pointer(&n)),
		d.handle,
		uintptr(unsafe.Pointer(&report[0])),
		uintptr(len(report)),
	)
	if uint32(ret) != HidPStatusSuccess {
		return nil, &hid.StatusError{Call: "HidP_GetUsages", Code: statusCode(uint32(ret))}
	}
	out := make([]int, n)
	for i := uint32(0); i < n; i++ {
		out[i] = int(usages[i])
	}
	return out, nil
}

// UsageValue implements hid.Descriptor via HidP_GetUsageValue.
func (d *PreparsedDescriptor) UsageValue(report []byte, vc hid.ValueCap) (int32, error) {
	var value uint32
	ret, _, _ := procHidPGetUsageValue.Call(
		HidPInput,
		uintptr(vc.UsagePage),
		0,
		uintptr(vc.Usage),
		uintptr(unsafe.Pointer(&value)),
		d.handle,
		uintptr(unsafe.Pointer(&report[0])),
		uintptr(len(report)),
	)
	if uint32(ret) != HidPStatusSuccess {
		return 0, &hid.StatusError{Call: "HidP_GetUsageValue", Code: statusCode(uint32(ret))}
	}
	return int32(value), nil
}

// DeviceIdentity reads VID/PID plus the manufacturer/product/serial number
// strings for a device, following §9's naming precedent: manufacturer +
// product + serial, falling back to "<unknown>" when all three are empty.
func DeviceIdentity(deviceHandle uintptr) (name string, vendorID, productID uint16) {
	var attrs HIDDAttributes
	attrs.Size = uint32(unsafe.Sizeof(attrs))
	procHidDGetAttributes.Call(deviceHandle, uintptr(unsafe.Pointer(&attrs)))

	mfr := readHIDString(procHidDGetManufacturerStr, deviceHandle)
	product := readHIDString(procHidDGetProductString, deviceHandle)
	serial := readHIDString(procHidDGetSerialNumberStr, deviceHandle)

	name = joinNonEmpty(" ", mfr, product)
	if serial != "" {
		name = joinNonEmpty(" ", name, "("+serial+")")
	}
	if name == "" {
		name = "<unknown>"
	}
	return name, attrs.VendorID, attrs.ProductID
}

func readHIDString(proc *windows.LazyProc, deviceHandle uintptr) string {
	buf := make([]uint16, 256)
	ret, _, _ := proc.Call(deviceHandle, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)*2))
	if ret == 0 {
		return ""
	}
	return windows.UTF16ToString(buf)
}

func joinNonEmpty(sep string, parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out == "" {
			out = p
		} else {
			out = out + sep + p
		}
	}
	return out
}
