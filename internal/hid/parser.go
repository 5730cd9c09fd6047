// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package hid

import "github.com/jmgao/dhc/internal/input"

// buttonUsageMap gives the PS4-like usage→canonical-button mapping. PS3-like
// and Generic families reuse it unchanged: PS3 is a strict subset (usages
// above its own button count simply never assert), and Generic is a
// documented best-effort fallback.
//
// TODO: be smarter at parsing generic inputs — consult HidP_GetButtonCaps
// and walk usage ranges directly instead of hardcoding the PS4 table.
var buttonUsageMap = map[int]input.Button{
	1:  input.ButtonWest,
	2:  input.ButtonSouth,
	3:  input.ButtonEast,
	4:  input.ButtonNorth,
	5:  input.ButtonL1,
	6:  input.ButtonR1,
	7:  input.ButtonL2,
	8:  input.ButtonR2,
	9:  input.ButtonSelect,
	10: input.ButtonStart,
	11: input.ButtonL3,
	12: input.ButtonR3,
	13: input.ButtonHome,
	14: input.ButtonTrackpad,
}

// Generic desktop usage ids for the analog value caps.
const (
	usageX        = 0x30
	usageY        = 0x31
	usageZ        = 0x32
	usageRx       = 0x33
	usageRy       = 0x34
	usageRz       = 0x35
	usageHatSwitch = 0x39
)

// Parser decodes reports for one open device against its cached value
// capabilities. One Parser is created per physical device at arrival and
// lives for the device's lifetime.
type Parser struct {
	desc      Descriptor
	family    Family
	valueCaps []ValueCap
}

// Open reads the descriptor's capabilities and value-cap table once and
// caches both for the device's lifetime. devicePath drives the alternate-
// subsystem path test; when it matches, the returned Parser's Family is
// AlternateSubsystem and DecodeReport always returns the default record —
// the manager must route such devices to internal/altpad instead.
func Open(desc Descriptor, devicePath string) (*Parser, error) {
	if IsAlternateSubsystemPath(devicePath) {
		return &Parser{desc: desc, family: AlternateSubsystem}, nil
	}
	caps, err := desc.Caps()
	if err != nil {
		return nil, err
	}
	vcs, err := desc.ValueCaps()
	if err != nil {
		return nil, err
	}
	return &Parser{
		desc:      desc,
		family:    ClassifyFamily(caps.ButtonCount),
		valueCaps: vcs,
	}, nil
}

// Family returns the device family chosen at open time.
func (p *Parser) Family() Family { return p.family }

// Close releases the underlying descriptor's OS-allocated preparsed data.
// A parser opened with a nil descriptor ignores the call; an alternate-
// subsystem parser opened with a descriptor forwards it like any other.
func (p *Parser) Close() error {
	if p.desc == nil {
		return nil
	}
	return p.desc.Close()
}

// DecodeReport decodes a single raw HID input report into a canonical
// record. Button usages are read first (numbered 1-based, a 0 usage
// terminates the asserted list, unknown indices are silently ignored), then
// every cached value cap is read and routed to its axis or the dpad hat.
func (p *Parser) DecodeReport(report []byte) (input.Record, error) {
	rec := input.NewRecord()
	if p.family == AlternateSubsystem {
		return rec, nil
	}

	usages, err := p.desc.Usages(report)
	if err != nil {
		return input.Record{}, err
	}
	for _, u := range usages {
		if u == 0 {
			break
		}
		if b, ok := buttonUsageMap[u]; ok {
			rec.SetButton(b, true)
		}
	}

	for _, vc := range p.valueCaps {
		raw, err := p.desc.UsageValue(report, vc)
		if err != nil {
			return input.Record{}, err
		}
		routeValue(&rec, vc, raw)
	}
	return rec, nil
}

// DecodeReports decodes N concatenated reports and returns only the last
// successfully decoded snapshot: the transport carries one value per
// publish, so earlier reports in the same buffer are overwritten and a
// failure on one report just causes that report to be skipped rather than
// aborting the whole batch.
func (p *Parser) DecodeReports(reports [][]byte) (input.Record, bool) {
	var last input.Record
	ok := false
	for _, report := range reports {
		rec, err := p.DecodeReport(report)
		if err != nil {
			continue
		}
		last = rec
		ok = true
	}
	return last, ok
}

// routeValue normalizes a raw integer reading to [0,1] and routes it by
// usage id to the matching axis, or decodes it as the dpad hat.
func routeValue(rec *input.Record, vc ValueCap, raw int32) {
	switch vc.Usage {
	case usageX:
		rec.SetAxis(input.AxisLeftStickX, unlerp(raw, vc.LogicalMin, vc.LogicalMax))
	case usageY:
		rec.SetAxis(input.AxisLeftStickY, unlerp(raw, vc.LogicalMin, vc.LogicalMax))
	case usageZ:
		rec.SetAxis(input.AxisRightStickX, unlerp(raw, vc.LogicalMin, vc.LogicalMax))
	case usageRz:
		// Routes to left-stick Y, not right-stick Y. Preserved literally for
		// byte-level parity with the observed source; right-stick Y stays
		// at its default center value as a result.
		rec.SetAxis(input.AxisLeftStickY, unlerp(raw, vc.LogicalMin, vc.LogicalMax))
	case usageRx:
		rec.SetAxis(input.AxisLeftTrigger, unlerp(raw, vc.LogicalMin, vc.LogicalMax))
	case usageRy:
		rec.SetAxis(input.AxisRightTrigger, unlerp(raw, vc.LogicalMin, vc.LogicalMax))
	case usageHatSwitch:
		rec.SetHat(input.HatFromRaw(int(raw)))
	}
}

// unlerp linearly maps raw from [min,max] to [0,1]. The result is clamped
// by Record.SetAxis on the way in; UnclampedUnlerp below exposes the raw
// ratio for parity tests that want to observe out-of-range behavior.
func unlerp(raw, min, max int32) float64 {
	if max == min {
		return 0.5
	}
	return float64(raw-min) / float64(max-min)
}

// UnclampedUnlerp exposes the literal (v-min)/(max-min) ratio with no
// clamping, for tests exercising property 7 (round-trip decode) exactly as
// the source computes it before Record.SetAxis clamps for invariant (iii).
func UnclampedUnlerp(raw, min, max int32) float64 {
	return unlerp(raw, min, max)
}
