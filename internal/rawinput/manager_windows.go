// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build windows

package rawinput

import (
	"log/slog"
	"runtime"

	"github.com/jmgao/dhc/internal/hid"
	"github.com/jmgao/dhc/internal/winapi"
)

// winapiOpener implements Opener over the real Windows HID stack,
// following §9's handle discipline: the device file handle is closed
// immediately after the descriptor and identity strings are read.
type winapiOpener struct{}

func (winapiOpener) Open(deviceHandle uintptr) (desc hid.Descriptor, devicePath, displayName string, err error) {
	isHID, err := winapi.DeviceInfoIsHID(deviceHandle)
	if err != nil {
		return nil, "", "", err
	}
	if !isHID {
		return nil, "", "", errNotHID
	}
	path, err := winapi.DevicePath(deviceHandle)
	if err != nil {
		return nil, "", "", err
	}
	if hid.IsAlternateSubsystemPath(path) {
		return nil, path, "", nil
	}

	h, err := winapi.OpenDeviceHandle(path)
	if err != nil {
		return nil, path, "", err
	}
	defer winapi.CloseDeviceHandle(h)

	name, _, _ := winapi.DeviceIdentity(h)
	pd, err := winapi.OpenPreparsedDescriptor(h)
	if err != nil {
		return nil, path, name, err
	}
	return pd, path, name, nil
}

var errNotHID = &notHIDError{}

type notHIDError struct{}

func (*notHIDError) Error() string { return "rawinput: RIDI_DEVICEINFO reports a non-HID device" }

// winapiRegistrar implements Registrar over RegisterRawInputDevices.
type winapiRegistrar struct {
	hwnd func() uintptr
}

func (r winapiRegistrar) Register(cat Category) error {
	return winapi.RegisterDeviceCategory(r.hwnd(), categoryUsage(cat), false)
}

func (r winapiRegistrar) Unregister(cat Category) error {
	return winapi.RegisterDeviceCategory(r.hwnd(), categoryUsage(cat), true)
}

func categoryUsage(cat Category) uint16 {
	if cat == CategoryGamepad {
		return winapi.UsageGamepad
	}
	return winapi.UsageJoystick
}

// windowsManager binds the os-agnostic Manager to a real message window
// and a command channel drained on WM_USER, implementing component E's
// "hidden thread that owns the underlying message window."
type windowsManager struct {
	*Manager
	window   *winapi.MessageWindow
	commands chan command
}

func newWindowsManager(log *slog.Logger) (*windowsManager, error) {
	wm := &windowsManager{commands: make(chan command, 32)}
	wm.Manager = NewManager(winapiOpener{}, winapi.AlternateSubsystemReader{}, winapiRegistrar{hwnd: wm.handle}, log)

	window, err := winapi.NewMessageWindow(wm.wndProc)
	if err != nil {
		return nil, err
	}
	wm.window = window
	return wm, nil
}

func (wm *windowsManager) handle() uintptr { return wm.window.Handle() }

// wndProc is the single entry point for every OS message this package
// cares about, run synchronously on the manager thread inside Pump.
func (wm *windowsManager) wndProc(msg uint32, wParam, lParam uintptr) (uintptr, bool) {
	switch msg {
	case winapi.WMInputDeviceChange:
		if wParam == winapi.GIDCArrival {
			wm.HandleArrival(lParam)
		} else {
			wm.HandleRemoval(lParam)
		}
		return 0, true
	case winapi.WMInput:
		header, reports, err := winapi.ReadRawInput(lParam)
		if err == nil && header.Type == winapi.RIMTypeHID {
			wm.HandleInput(header.Device, reports)
		}
		return 0, true
	case winapi.WMUser:
		wm.drainCommands()
		return 0, true
	}
	return 0, false
}

func (wm *windowsManager) drainCommands() {
	for {
		select {
		case cmd := <-wm.commands:
			cmd.reply <- wm.Dispatch(cmd.kind, cmd.cat)
		default:
			return
		}
	}
}

// run locks the calling goroutine to its OS thread (required by Win32
// window ownership rules), raises its priority, and pumps forever.
func (wm *windowsManager) run() {
	runtime.LockOSThread()
	winapi.SetCurrentThreadPriorityTimeCritical()
	wm.window.Pump()
}

func (wm *windowsManager) post(cmd command) {
	wm.commands <- cmd
	wm.window.PostMessage(winapi.WMUser, 0, 0)
}

// Start creates the dedicated manager thread, opens its message window,
// and returns a Facade bound to it. This is the one public entry point
// platform-independent callers (internal/rawinput's os-agnostic consumers,
// ultimately the root dhc package) use to stand up component D+E.
func Start(log *slog.Logger) (*Facade, error) {
	type result struct {
		wm  *windowsManager
		err error
	}
	ready := make(chan result, 1)
	go func() {
		wm, err := newWindowsManager(log)
		ready <- result{wm: wm, err: err}
		if err != nil {
			return
		}
		wm.run()
	}()
	r := <-ready
	if r.err != nil {
		return nil, r.err
	}
	return newFacade(r.wm.post), nil
}
