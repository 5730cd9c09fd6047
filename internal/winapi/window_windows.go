// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build windows

package winapi

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

// wndClassExW mirrors WNDCLASSEXW.
type wndClassExW struct {
	size       uint32
	style      uint32
	wndProc    uintptr
	clsExtra   int32
	wndExtra   int32
	instance   uintptr
	icon       uintptr
	cursor     uintptr
	background uintptr
	menuName   *uint16
	className  *uint16
	iconSm     uintptr
}

// WindowProc is the Go-side callback invoked for every message delivered to
// a MessageWindow. Returning false lets DefWindowProcW handle the message.
type WindowProc func(msg uint32, wParam, lParam uintptr) (result uintptr, handled bool)

// MessageWindow is an invisible window that exists only to receive raw
// input and device-change messages on the calling thread. It must be
// created and pumped from the same dedicated manager thread (component D).
type MessageWindow struct {
	hwnd     uintptr
	className *uint16
	proc     WindowProc
}

var (
	classRegisterOnce sync.Once
	classAtom         uintptr
	classNamePtr      *uint16
	windowsByHWND     sync.Map // hwnd -> *MessageWindow, consulted by the shared wndProc trampoline
)

const className = "dhc-manager-window"

// NewMessageWindow registers the window class (once per process) and
// creates a message-only window (parent HWND_MESSAGE) whose messages are
// routed to proc.
// Must be called on the thread that will subsequently pump it.
func NewMessageWindow(proc WindowProc) (*MessageWindow, error) {
	var regErr error
	classRegisterOnce.Do(func() {
		namePtr, err := windows.UTF16PtrFromString(className)
		if err != nil {
			regErr = err
			return
		}
		classNamePtr = namePtr
		wc := wndClassExW{
			className: namePtr,
			wndProc:   windows.NewCallback(sharedWndProc),
		}
		wc.size = uint32(unsafe.Sizeof(wc))
		atom, _, err := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc)))
		if atom == 0 {
			regErr = fmt.Errorf("winapi: RegisterClassExW failed: %w", err)
			return
		}
		classAtom = atom
	})
	if regErr != nil {
		return nil, regErr
	}

	const hwndMessage = ^uintptr(2) // HWND_MESSAGE, for a message-only window
	hwnd, _, err := procCreateWindowExW.Call(
		0,
		uintptr(unsafe.Pointer(classNamePtr)),
		uintptr(unsafe.Pointer(classNamePtr)),
		0, 0, 0, 0, 0,
		hwndMessage,
		0, 0, 0,
	)
	if hwnd == 0 {
		return nil, fmt.Errorf("winapi: CreateWindowExW failed: %w", err)
	}
	mw := &MessageWindow{hwnd: hwnd, className: classNamePtr, proc: proc}
	windowsByHWND.Store(hwnd, mw)
	return mw, nil
}

// sharedWndProc is the single native callback registered for the window
// class; it looks up the owning MessageWindow by hwnd and forwards to its
// Go-level WindowProc.
func sharedWndProc(hwnd uintptr, msg uint32, wParam, lParam uintptr) uintptr {
	if v, ok := windowsByHWND.Load(hwnd); ok {
		mw := v.(*MessageWindow)
		if result, handled := mw.proc(msg, wParam, lParam); handled {
			return result
		}
	}
	ret, _, _ := procDefWindowProcW.Call(hwnd, uintptr(msg), wParam, lParam)
	return ret
}

// Handle returns the native HWND as a uintptr, used as RegisterRawInputDevices'
// target and PostMessageW's destination.
func (mw *MessageWindow) Handle() uintptr { return mw.hwnd }

// Pump blocks processing the window's message queue until WM_QUIT is
// received or the window is destroyed. Must run on the thread that created
// the window (the manager thread).
func (mw *MessageWindow) Pump() {
	var msg Msg
	for {
		ret, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&msg)), mw.hwnd, 0, 0)
		if int32(ret) <= 0 {
			return
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&msg)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&msg)))
	}
}

// PostMessage posts a message to the window's queue from any thread,
// waking Pump's blocking GetMessageW call. Used by the command façade to
// interleave commands with OS messages on the manager thread.
func (mw *MessageWindow) PostMessage(msg uint32, wParam, lParam uintptr) error {
	ret, _, err := procPostMessageW.Call(mw.hwnd, uintptr(msg), wParam, lParam)
	if ret == 0 {
		return fmt.Errorf("winapi: PostMessageW failed: %w", err)
	}
	return nil
}

// Destroy tears down the window and removes it from the dispatch table.
func (mw *MessageWindow) Destroy() {
	procDestroyWindow.Call(mw.hwnd)
	windowsByHWND.Delete(mw.hwnd)
}
