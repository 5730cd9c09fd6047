// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package altpad

import (
	"testing"

	"github.com/jmgao/dhc/internal/input"
)

type fakeReader struct {
	states map[int]State
}

func (f *fakeReader) Read(index int) (State, bool, error) {
	s, ok := f.states[index]
	return s, ok, nil
}

func TestTranslateSticksAndTriggers(t *testing.T) {
	s := State{LeftStick: [2]float64{1, 1}, RightStick: [2]float64{-1, -1}, LeftTrigger: 1}
	rec := Translate(s)
	if got := rec.Axis(input.AxisLeftStickX); got != 1.0 {
		t.Errorf("left-stick x = %v, want 1.0", got)
	}
	if got := rec.Axis(input.AxisLeftStickY); got != 0.0 {
		t.Errorf("left-stick y (inverted) = %v, want 0.0", got)
	}
	if got := rec.Axis(input.AxisRightStickX); got != 0.0 {
		t.Errorf("right-stick x = %v, want 0.0", got)
	}
	if got := rec.Axis(input.AxisRightStickY); got != 1.0 {
		t.Errorf("right-stick y (inverted) = %v, want 1.0", got)
	}
	if !rec.Button(input.ButtonL2) {
		t.Errorf("expected L2 thresholded true")
	}
	if rec.Button(input.ButtonR2) {
		t.Errorf("expected R2 false")
	}
}

func TestDpadHatDiagonalsAndNeutral(t *testing.T) {
	if got := dpadHat(0, 0); got != input.HatNeutral {
		t.Errorf("dpadHat(0,0) = %v, want Neutral", got)
	}
	if got := dpadHat(1, 1); got != input.HatNE {
		t.Errorf("dpadHat(1,1) = %v, want NE", got)
	}
	if got := dpadHat(-1, -1); got != input.HatSW {
		t.Errorf("dpadHat(-1,-1) = %v, want SW", got)
	}
}

func TestScanReportsPresenceAndTranslatesOnlyPresent(t *testing.T) {
	r := &fakeReader{states: map[int]State{1: {LeftStick: [2]float64{1, 0}}}}
	present, records, err := Scan(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if present[0] || !present[1] || present[2] || present[3] {
		t.Errorf("expected only index 1 present, got %v", present)
	}
	if got := records[1].Axis(input.AxisLeftStickX); got != 1.0 {
		t.Errorf("expected translated left-stick x = 1.0, got %v", got)
	}
}
