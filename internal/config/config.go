// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package config loads dhc.toml, the configuration file read once at init
// beside the executable (§6). Missing files get the defaults written back
// verbatim; malformed files fall back to defaults with a logged warning.
package config

import (
	"os"

	"github.com/pelletier/go-toml"
)

// Mode selects the public identity the emulated gamepad presents as.
type Mode string

const (
	ModeDirectInput Mode = "directinput"
	ModeXInput      Mode = "xinput"
)

// Deadzone holds the 4.G snap-to-edge deadzone post-processing settings.
type Deadzone struct {
	Enabled   bool    `toml:"enabled"`
	Threshold float64 `toml:"threshold"`
}

// Config is the recognized dhc.toml key set from §6, verbatim.
type Config struct {
	LogLevel     string   `toml:"log_level"`
	Console      bool     `toml:"console"`
	DeviceCount  uint     `toml:"device_count"`
	Mode         Mode     `toml:"mode"`
	DpadOverride bool     `toml:"dpad_override"`
	Deadzone     Deadzone `toml:"deadzone"`
}

// Default returns the documented default configuration.
func Default() Config {
	return Config{
		LogLevel:     "info",
		Console:      true,
		DeviceCount:  2,
		Mode:         ModeDirectInput,
		DpadOverride: false,
		Deadzone:     Deadzone{Enabled: false, Threshold: 0.5},
	}
}

// Warning reports a non-fatal problem encountered while loading, so the
// caller can log it through the logging backend (which config.Load itself
// does not depend on, to avoid an import cycle with internal/logging).
type Warning struct {
	Message string
}

// Load reads path (typically "dhc.toml" beside the executable). A missing
// file causes the default configuration to be written verbatim and then
// returned. A malformed file causes the defaults to be returned along with
// a Warning describing the parse failure; the caller is expected to log
// it and proceed.
func Load(path string) (Config, *Warning, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		def := Default()
		if writeErr := writeDefault(path, def); writeErr != nil {
			return def, nil, writeErr
		}
		return def, nil, nil
	}
	if err != nil {
		return Config{}, nil, err
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), &Warning{Message: "dhc.toml: " + err.Error()}, nil
	}
	return cfg, nil, nil
}

// writeDefault serializes def back to path, creating a starter file a user
// can subsequently edit.
func writeDefault(path string, def Config) error {
	data, err := toml.Marshal(def)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
