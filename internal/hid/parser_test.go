// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package hid

import (
	"testing"

	"github.com/jmgao/dhc/internal/input"
)

// fakeDescriptor lets tests drive DecodeReport without a real HID stack.
type fakeDescriptor struct {
	caps      Caps
	valueCaps []ValueCap
	usages    map[string][]int  // report key -> asserted usage list
	values    map[string]int32  // "report|usage" -> raw value
	failUsage bool
	failReports map[string]bool // report keys whose Usages call fails
	failValue bool
	closed    bool
}

func (f *fakeDescriptor) Caps() (Caps, error) { return f.caps, nil }
func (f *fakeDescriptor) ValueCaps() ([]ValueCap, error) { return f.valueCaps, nil }
func (f *fakeDescriptor) Close() error { f.closed = true; return nil }

func (f *fakeDescriptor) Usages(report []byte) ([]int, error) {
	if f.failUsage || f.failReports[string(report)] {
		return nil, &StatusError{Call: "HidP_GetUsages", Code: StatusUsageNotFound}
	}
	return f.usages[string(report)], nil
}

func (f *fakeDescriptor) UsageValue(report []byte, vc ValueCap) (int32, error) {
	if f.failValue {
		return 0, &StatusError{Call: "HidP_GetUsageValue", Code: StatusValueOutOfRange}
	}
	key := string(report) + "|" + string(rune(vc.Usage))
	return f.values[key], nil
}

func TestClassifyFamily(t *testing.T) {
	cases := map[int]Family{14: PS4Like, 13: PS3Like, 11: Generic, 0: Generic}
	for count, want := range cases {
		if got := ClassifyFamily(count); got != want {
			t.Errorf("ClassifyFamily(%d) = %v, want %v", count, got, want)
		}
	}
}

func TestIsAlternateSubsystemPath(t *testing.T) {
	if !IsAlternateSubsystemPath(`\\?\HID#VID_045E&PID_028E&IG_00#8&abcd`) {
		t.Errorf("expected &IG_ path to be classified as alternate subsystem")
	}
	if IsAlternateSubsystemPath(`\\?\HID#VID_054C&PID_05C4#8&abcd`) {
		t.Errorf("expected plain HID path to not be alternate subsystem")
	}
}

func TestOpenAlternateSubsystemPathSkipsDescriptor(t *testing.T) {
	desc := &fakeDescriptor{}
	p, err := Open(desc, `\\?\HID#VID_045E&PID_028E&IG_00`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Family() != AlternateSubsystem {
		t.Errorf("expected AlternateSubsystem family")
	}
	rec, err := p.DecodeReport([]byte("anything"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Axis(input.AxisLeftStickX) != 0.5 {
		t.Errorf("expected default centered record for alternate-subsystem parser")
	}
}

func TestParserCloseForwardsToDescriptor(t *testing.T) {
	desc := &fakeDescriptor{caps: Caps{ButtonCount: 14}}
	p, err := Open(desc, `\\?\HID#VID_054C&PID_05C4`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !desc.closed {
		t.Errorf("expected Parser.Close to close its descriptor")
	}
}

func TestDecodeReportButtonsAndAxes(t *testing.T) {
	report := []byte("r1")
	desc := &fakeDescriptor{
		caps: Caps{ButtonCount: 14},
		valueCaps: []ValueCap{
			{UsagePage: 0x01, Usage: usageX, LogicalMin: 0, LogicalMax: 255},
			{UsagePage: 0x01, Usage: usageRz, LogicalMin: 0, LogicalMax: 255},
		},
		usages: map[string][]int{
			string(report): {10, 5, 0, 99}, // start, L1, terminator, ignored
		},
		values: map[string]int32{
			string(report) + "|" + string(rune(usageX)):  128,
			string(report) + "|" + string(rune(usageRz)): 255,
		},
	}
	p, err := Open(desc, `\\?\HID#VID_054C&PID_05C4`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Family() != PS4Like {
		t.Errorf("expected PS4Like family, got %v", p.Family())
	}
	rec, err := p.DecodeReport(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.Button(input.ButtonStart) || !rec.Button(input.ButtonL1) {
		t.Errorf("expected start and L1 pressed")
	}
	if rec.Button(input.ButtonHome) {
		t.Errorf("expected home not pressed")
	}
	if got, want := rec.Axis(input.AxisLeftStickX), 128.0/255.0; got != want {
		t.Errorf("left-stick X = %v, want %v", got, want)
	}
	// 0x35 (Rz) is routed to left-stick Y, not right-stick Y (preserved bug).
	if got := rec.Axis(input.AxisLeftStickY); got != 1.0 {
		t.Errorf("left-stick Y (via Rz) = %v, want 1.0", got)
	}
	if got := rec.Axis(input.AxisRightStickY); got != 0.5 {
		t.Errorf("right-stick Y should remain at default center, got %v", got)
	}
}

func TestDecodeReportsKeepsLastOnly(t *testing.T) {
	r1, r2 := []byte("r1"), []byte("r2")
	desc := &fakeDescriptor{
		caps: Caps{ButtonCount: 14},
		usages: map[string][]int{
			string(r1): {10, 0}, // start
			string(r2): {13, 0}, // home
		},
	}
	p, err := Open(desc, `\\?\HID#VID_054C&PID_05C4`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec, ok := p.DecodeReports([][]byte{r1, r2})
	if !ok {
		t.Fatalf("expected at least one successful decode")
	}
	if rec.Button(input.ButtonStart) {
		t.Errorf("expected first report to be overwritten by the second")
	}
	if !rec.Button(input.ButtonHome) {
		t.Errorf("expected home pressed from the final report")
	}
}

func TestDecodeReportsSkipsFailedReport(t *testing.T) {
	r1 := []byte("r1")
	desc := &fakeDescriptor{
		caps:        Caps{ButtonCount: 14},
		usages:      map[string][]int{string(r1): {10, 0}},
		failReports: map[string]bool{"missing": true},
	}
	p, _ := Open(desc, `\\?\HID#VID_054C&PID_05C4`)
	rec, ok := p.DecodeReports([][]byte{r1, []byte("missing")})
	if !ok {
		t.Fatalf("expected the first good report to survive a later failure")
	}
	if !rec.Button(input.ButtonStart) {
		t.Errorf("expected start pressed from the surviving report")
	}
}

func TestHatSwitchRouting(t *testing.T) {
	report := []byte("r1")
	desc := &fakeDescriptor{
		caps: Caps{ButtonCount: 14},
		valueCaps: []ValueCap{
			{UsagePage: 0x01, Usage: usageHatSwitch, LogicalMin: 0, LogicalMax: 7},
		},
		values: map[string]int32{
			string(report) + "|" + string(rune(usageHatSwitch)): 2,
		},
	}
	p, _ := Open(desc, `\\?\HID#VID_054C&PID_05C4`)
	rec, err := p.DecodeReport(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Hat() != input.HatE {
		t.Errorf("hat = %v, want HatE", rec.Hat())
	}
}

func TestUnlerp(t *testing.T) {
	if got := UnclampedUnlerp(0, 0, 255); got != 0 {
		t.Errorf("unlerp(0) = %v, want 0", got)
	}
	if got := UnclampedUnlerp(255, 0, 255); got != 1 {
		t.Errorf("unlerp(max) = %v, want 1", got)
	}
	if got := UnclampedUnlerp(300, 0, 255); got <= 1 {
		t.Errorf("unlerp(300) should exceed 1 before clamping, got %v", got)
	}
}
