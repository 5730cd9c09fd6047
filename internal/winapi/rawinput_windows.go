// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build windows

package winapi

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// RegisterDeviceCategory registers raw-input delivery for one (usage page,
// usage) category to the given window, with RIDEV_INPUTSINK and
// RIDEV_DEVNOTIFY set so the window receives input and arrival/removal
// notifications even while not focused.
func RegisterDeviceCategory(hwnd uintptr, usage uint16, remove bool) error {
	flags := uint32(RIDevInputSink | RIDevDevNotify)
	target := hwnd
	if remove {
		flags = RIDevRemove
		target = 0
	}
	rid := RawInputDevice{
		UsagePage: UsagePageGenericDesktop,
		Usage:     usage,
		Flags:     flags,
		Target:    target,
	}
	ret, _, err := procRegisterRawInputDevices.Call(
		uintptr(unsafe.Pointer(&rid)),
		1,
		unsafe.Sizeof(rid),
	)
	if ret == 0 {
		return fmt.Errorf("winapi: RegisterRawInputDevices failed: %w", err)
	}
	return nil
}

// rawInputBufferSize is the 8-byte-aligned scratch buffer size used to read
// one GetRawInputData result, matching the original implementation's
// 512-byte aligned stack buffer.
const rawInputBufferSize = 512

// alignedBuffer is an 8-byte-aligned fixed buffer for GetRawInputData,
// mirroring the original's #[repr(align(8))] AlignedBuffer.
type alignedBuffer struct {
	_    [0]uint64 // forces 8-byte alignment
	data [rawInputBufferSize]byte
}

// ReadRawInput reads one RAWINPUT record for lParam (the input message's
// device handle argument) and returns the header and the HID payload bytes
// (the concatenated reports plus per-report size/count, per RAWHID).
func ReadRawInput(lParam uintptr) (header RawInputHeader, reports [][]byte, err error) {
	var buf alignedBuffer
	size := uint32(rawInputBufferSize)
	ret, _, callErr := procGetRawInputData.Call(
		lParam,
		RIDInput,
		uintptr(unsafe.Pointer(&buf.data[0])),
		uintptr(unsafe.Pointer(&size)),
		unsafe.Sizeof(header),
	)
	if int32(ret) == -1 {
		return RawInputHeader{}, nil, fmt.Errorf("winapi: GetRawInputData failed: %w", callErr)
	}
	header = *(*RawInputHeader)(unsafe.Pointer(&buf.data[0]))
	if header.Type != RIMTypeHID {
		return header, nil, nil
	}
	// RAWHID immediately follows RAWINPUTHEADER: dwSizeHid, dwCount, then
	// dwCount concatenated reports of dwSizeHid bytes each.
	const hidPrefix = int(unsafe.Sizeof(header)) + 8
	sizeHid := *(*uint32)(unsafe.Pointer(&buf.data[unsafe.Sizeof(header)]))
	count := *(*uint32)(unsafe.Pointer(&buf.data[unsafe.Sizeof(header)+4]))
	reports = make([][]byte, 0, count)
	offset := hidPrefix
	for i := uint32(0); i < count; i++ {
		if offset+int(sizeHid) > len(buf.data) {
			break
		}
		report := make([]byte, sizeHid)
		copy(report, buf.data[offset:offset+int(sizeHid)])
		reports = append(reports, report)
		offset += int(sizeHid)
	}
	return header, reports, nil
}

// DeviceInfoIsHID reads RIDI_DEVICEINFO for a raw-input device handle and
// reports whether dwType == RIM_TYPEHID, matching the original's open-time
// assertion.
func DeviceInfoIsHID(deviceHandle uintptr) (bool, error) {
	var info RawInputDeviceInfoHID
	info.Size = uint32(unsafe.Sizeof(info))
	size := uint32(unsafe.Sizeof(info))
	ret, _, callErr := procGetRawInputDeviceInfoW.Call(
		deviceHandle,
		RIDIDeviceInfo,
		uintptr(unsafe.Pointer(&info)),
		uintptr(unsafe.Pointer(&size)),
	)
	if int32(ret) == -1 {
		return false, fmt.Errorf("winapi: GetRawInputDeviceInfoW failed: %w", callErr)
	}
	return info.Type == RIMTypeHID, nil
}

// DevicePath reads the OS device path (RIDI_DEVICENAME) used for the
// &IG_ alternate-subsystem classification test.
func DevicePath(deviceHandle uintptr) (string, error) {
	var size uint32
	procGetRawInputDeviceInfoW.Call(deviceHandle, RIDIDeviceName, 0, uintptr(unsafe.Pointer(&size)))
	if size == 0 {
		return "", nil
	}
	buf := make([]uint16, size)
	ret, _, callErr := procGetRawInputDeviceInfoW.Call(
		deviceHandle,
		RIDIDeviceName,
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(unsafe.Pointer(&size)),
	)
	if int32(ret) == -1 {
		return "", fmt.Errorf("winapi: GetRawInputDeviceInfoW failed: %w", callErr)
	}
	return windows.UTF16ToString(buf), nil
}

// OpenDeviceHandle opens a file handle on a HID device path with shared
// read/write access, for use with HidD_GetPreparsedData / HidD_GetAttributes
// / HidD_Get*String. Matches §9's "device file handles are closed
// immediately after descriptor acquisition" discipline: callers should
// close the returned handle as soon as the descriptor/attributes are read.
func OpenDeviceHandle(path string) (uintptr, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}
	h, err := windows.CreateFile(
		p,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		0,
		0,
	)
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

// CloseDeviceHandle closes a handle returned by OpenDeviceHandle.
func CloseDeviceHandle(h uintptr) error {
	return windows.CloseHandle(windows.Handle(h))
}

// SetCurrentThreadPriorityTimeCritical raises the calling thread (expected
// to be the dedicated manager thread) to the highest priority class, per
// §4.D.
func SetCurrentThreadPriorityTimeCritical() {
	cur, _, _ := procGetCurrentThread.Call()
	procSetThreadPriority.Call(cur, uintptr(ThreadPriorityTimeCritical))
}

// AllocConsole allocates a console for the process, used when the config
// key "console" is true.
func AllocConsole() error {
	ret, _, err := procAllocConsole.Call()
	if ret == 0 {
		return fmt.Errorf("winapi: AllocConsole failed: %w", err)
	}
	return nil
}
