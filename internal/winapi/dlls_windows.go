// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build windows

// Package winapi holds the thin syscall bindings onto user32.dll, hid.dll,
// and the fixed-index alternate gamepad subsystem that internal/rawinput's
// Windows manager is built on. Every binding is a LazyProc over
// golang.org/x/sys/windows rather than cgo: the
// HID status codes and structures are easier to keep in lock-step with
// internal/hid's own Go types this way.
package winapi

import "golang.org/x/sys/windows"

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	hidDLL   = windows.NewLazySystemDLL("hid.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")
	xinput   = windows.NewLazySystemDLL("xinput1_4.dll")

	procRegisterClassExW       = user32.NewProc("RegisterClassExW")
	procCreateWindowExW        = user32.NewProc("CreateWindowExW")
	procDestroyWindow          = user32.NewProc("DestroyWindow")
	procDefWindowProcW         = user32.NewProc("DefWindowProcW")
	procGetMessageW            = user32.NewProc("GetMessageW")
	procTranslateMessage       = user32.NewProc("TranslateMessage")
	procDispatchMessageW       = user32.NewProc("DispatchMessageW")
	procPostQuitMessage        = user32.NewProc("PostQuitMessage")
	procPostMessageW           = user32.NewProc("PostMessageW")
	procRegisterRawInputDevices = user32.NewProc("RegisterRawInputDevices")
	procGetRawInputData        = user32.NewProc("GetRawInputData")
	procGetRawInputDeviceInfoW = user32.NewProc("GetRawInputDeviceInfoW")

	procHidDGetPreparsedData    = hidDLL.NewProc("HidD_GetPreparsedData")
	procHidDFreePreparsedData   = hidDLL.NewProc("HidD_FreePreparsedData")
	procHidDGetAttributes       = hidDLL.NewProc("HidD_GetAttributes")
	procHidDGetProductString    = hidDLL.NewProc("HidD_GetProductString")
	procHidDGetManufacturerStr  = hidDLL.NewProc("HidD_GetManufacturerString")
	procHidDGetSerialNumberStr  = hidDLL.NewProc("HidD_GetSerialNumberString")
	procHidPGetCaps             = hidDLL.NewProc("HidP_GetCaps")
	procHidPGetValueCaps        = hidDLL.NewProc("HidP_GetValueCaps")
	procHidPGetUsages           = hidDLL.NewProc("HidP_GetUsages")
	procHidPGetUsageValue       = hidDLL.NewProc("HidP_GetUsageValue")
	procHidPMaxUsageListLength  = hidDLL.NewProc("HidP_MaxUsageListLength")

	procXInputGetState = xinput.NewProc("XInputGetState")

	procSetThreadPriority = kernel32.NewProc("SetThreadPriority")
	procGetCurrentThread  = kernel32.NewProc("GetCurrentThread")
	procAllocConsole      = kernel32.NewProc("AllocConsole")
)
