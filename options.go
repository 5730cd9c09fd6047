// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package dhc

// options.go reduces New's API footprint using functional options, the
// same pattern the teacher package uses for its engine configuration
// (config.go's Attr/Config pair).
// See: http://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis

// settings collects the optional behaviors New can be configured with.
// The zero value matches the documented dhc.toml defaults: no
// dpad-override, no deadzone, alternate subsystem reported disabled.
type settings struct {
	alternateSubsystemEnabled bool
	postprocess               postprocessor
}

// Option overrides one field of settings. For use with New.
type Option func(*settings)

// WithAlternateSubsystem sets the value AlternateSubsystemEnabled reports
// to external consumers (6 "external interfaces"); it does not affect
// whether the manager scans the alternate subsystem, which it always does.
func WithAlternateSubsystem(enabled bool) Option {
	return func(s *settings) { s.alternateSubsystemEnabled = enabled }
}

// WithDpadOverride enables the 4.G dpad-override post-processing hook.
func WithDpadOverride(enabled bool) Option {
	return func(s *settings) { s.postprocess.dpadOverride = enabled }
}

// WithDeadzone enables the 4.G snap-to-edge deadzone hook at threshold,
// which must lie in [0,1].
func WithDeadzone(enabled bool, threshold float64) Option {
	return func(s *settings) {
		s.postprocess.deadzoneEnabled = enabled
		s.postprocess.deadzoneThreshold = threshold
	}
}
