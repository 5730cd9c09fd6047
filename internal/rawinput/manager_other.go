// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build !windows

package rawinput

import (
	"errors"
	"log/slog"
)

// Start is unavailable outside Windows: the raw-input manager is built
// entirely on Win32's RegisterRawInputDevices/HID stack, matching the
// library's stated platform target (§1). Tests exercise Manager's FSM
// directly instead of going through Start.
func Start(log *slog.Logger) (*Facade, error) {
	return nil, errors.New("rawinput: raw-input manager is only available on windows")
}
