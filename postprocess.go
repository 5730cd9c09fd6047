// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package dhc

import "github.com/jmgao/dhc/internal/input"

// postprocessor applies the optional 4.G hooks to a record before it is
// stored into a virtual slot. The zero value applies neither hook, which
// matches the documented defaults (dpad_override=false, deadzone.enabled=false).
type postprocessor struct {
	dpadOverride     bool
	deadzoneEnabled  bool
	deadzoneThreshold float64
}

// apply runs the enabled hooks over rec, in the order the configuration
// table lists them, and returns the resulting record. rec is passed by
// value so callers always get a fresh copy back.
func (p postprocessor) apply(rec input.Record) input.Record {
	if p.dpadOverride {
		rec = applyDpadOverride(rec)
	}
	if p.deadzoneEnabled {
		rec = applyDeadzone(rec, p.deadzoneThreshold)
	}
	return rec
}

// applyDpadOverride forces both left-stick axes to center whenever the
// dpad hat is non-neutral. Some titles treat any left-stick movement as
// analog input even when the user wants pure digital dpad (4.G).
func applyDpadOverride(rec input.Record) input.Record {
	if rec.Hat() == input.HatNeutral {
		return rec
	}
	rec.SetAxis(input.AxisLeftStickX, 0.5)
	rec.SetAxis(input.AxisLeftStickY, 0.5)
	return rec
}

// applyDeadzone snaps each left-stick axis independently to either dead
// center or a full-magnitude edge: this is a snap-to-edge deadzone, not a
// scaled one (4.G).
func applyDeadzone(rec input.Record, threshold float64) input.Record {
	rec.SetAxis(input.AxisLeftStickX, snapToEdge(rec.Axis(input.AxisLeftStickX), threshold))
	rec.SetAxis(input.AxisLeftStickY, snapToEdge(rec.Axis(input.AxisLeftStickY), threshold))
	return rec
}

// snapToEdge converts v (in [0,1], centered at 0.5) to a signed magnitude
// around center, replaces the magnitude with 1.0 if it exceeds threshold
// or 0.0 otherwise, and recomposes the result around 0.5.
func snapToEdge(v, threshold float64) float64 {
	sign := 1.0
	magnitude := v - 0.5
	if magnitude < 0 {
		sign = -1.0
		magnitude = -magnitude
	}
	magnitude *= 2 // map [0,0.5] to [0,1]

	if magnitude > threshold {
		magnitude = 1.0
	} else {
		magnitude = 0.0
	}

	return 0.5 + sign*magnitude/2
}
