// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package dhc aggregates physical game controllers, surfaced through the
// host OS's raw-input and alternate gamepad subsystems, into a small fixed
// set of virtual gamepad slots a host application polls once per frame.
//
// A Context owns the manager thread (internal/rawinput), the HID report
// parser (internal/hid), the alternate-subsystem reader (internal/altpad),
// and the virtual/physical binding engine. Call New to
// start the manager and bind it to device_count virtual slots, call
// Update once per frame to drain device events and refresh every bound
// slot's snapshot, and call DeviceState to read a slot's current record.
//
//	logger := slog.Default()
//	ctx, err := dhc.New(2, logger)
//	...
//	ctx.Update()
//	in := ctx.DeviceState(0)
//	x := in.Axis(dhc.AxisLeftStickX)
package dhc
