// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build windows

// Command dhc-shim is the thin C-ABI shim that re-exports the core dhc
// operations (§6). It owns the process-wide singleton Context, initialized
// once by dhc_init, and never reinitialized (§9 "Global state").
package main

/*
#include <stdint.h>
#include <stdbool.h>

typedef struct dhc_inputs {
	double axes[6];
	bool buttons[14];
	int32_t hat;
} dhc_inputs;
*/
import "C"

import (
	"os"
	"path/filepath"
	"sync"
	"unsafe"

	"github.com/jmgao/dhc"
	"github.com/jmgao/dhc/internal/buildinfo"
	"github.com/jmgao/dhc/internal/config"
	"github.com/jmgao/dhc/internal/logging"
	"github.com/jmgao/dhc/internal/winapi"
)

// LogLevel mirrors the original ffi.rs LogLevel enum, in declaration order.
type LogLevel int32

const (
	LogLevelTrace LogLevel = iota
	LogLevelDebug
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelFatal
)

var (
	once    sync.Once
	ctx     *dhc.Context
	closeLog func() error
)

// dhc_init is idempotent and runs once: it loads dhc.toml from beside the
// host executable, initializes logging and the optional console, and starts
// the manager via a new Context.
//
//export dhc_init
func dhc_init() {
	once.Do(func() {
		cfgPath := "dhc.toml"
		if exe, err := os.Executable(); err == nil {
			cfgPath = filepath.Join(filepath.Dir(exe), "dhc.toml")
		}
		cfg, warn, err := config.Load(cfgPath)
		if err != nil {
			os.Exit(1)
		}

		if cfg.Console {
			_ = winapi.AllocConsole()
		}

		l, closer, err := logging.Init(cfg.LogLevel, cfg.Console, os.Stdout)
		if err != nil {
			os.Exit(1)
		}
		logger = l
		closeLog = closer
		if warn != nil {
			logger.Warn(warn.Message)
		}

		opts := []dhc.Option{dhc.WithAlternateSubsystem(cfg.Mode == config.ModeXInput)}
		if cfg.DpadOverride {
			opts = append(opts, dhc.WithDpadOverride(true))
		}
		if cfg.Deadzone.Enabled {
			opts = append(opts, dhc.WithDeadzone(true, cfg.Deadzone.Threshold))
		}

		c, err := dhc.New(cfg.DeviceCount, logger, opts...)
		if err != nil {
			logging.Fatal(logger, "failed to start context", "error", err)
		}
		ctx = c

		logger.Info("dhc initialized", "version", buildinfo.String())
	})
}

//export dhc_update
func dhc_update() {
	ctx.Update()
}

//export dhc_get_device_count
func dhc_get_device_count() C.size_t {
	return C.size_t(ctx.DeviceCount())
}

//export dhc_get_inputs
func dhc_get_inputs(index C.size_t, out *C.dhc_inputs) {
	in := ctx.DeviceState(int(index))
	fillCInputs(out, in)
}

// fillCInputs copies a dhc.DeviceInputs snapshot into a caller-owned
// dhc_inputs struct, field by field, since DeviceInputs has no exported
// layout of its own to copy directly.
func fillCInputs(out *C.dhc_inputs, in dhc.DeviceInputs) {
	axes := (*[6]C.double)(unsafe.Pointer(&out.axes[0]))
	axes[0] = C.double(in.Axis(dhc.AxisLeftStickX))
	axes[1] = C.double(in.Axis(dhc.AxisLeftStickY))
	axes[2] = C.double(in.Axis(dhc.AxisRightStickX))
	axes[3] = C.double(in.Axis(dhc.AxisRightStickY))
	axes[4] = C.double(in.Axis(dhc.AxisLeftTrigger))
	axes[5] = C.double(in.Axis(dhc.AxisRightTrigger))

	buttons := []dhc.Button{
		dhc.ButtonStart, dhc.ButtonSelect, dhc.ButtonHome,
		dhc.ButtonNorth, dhc.ButtonEast, dhc.ButtonSouth, dhc.ButtonWest,
		dhc.ButtonL1, dhc.ButtonL2, dhc.ButtonL3,
		dhc.ButtonR1, dhc.ButtonR2, dhc.ButtonR3, dhc.ButtonTrackpad,
	}
	bs := (*[14]C.bool)(unsafe.Pointer(&out.buttons[0]))
	for i, b := range buttons {
		bs[i] = C.bool(in.Button(b))
	}

	out.hat = C.int32_t(in.Hat())
}

//export dhc_get_axis
func dhc_get_axis(in *C.dhc_inputs, axis C.int32_t) C.double {
	return (*[6]C.double)(unsafe.Pointer(&in.axes[0]))[axis]
}

//export dhc_get_button
func dhc_get_button(in *C.dhc_inputs, button C.int32_t) C.bool {
	return (*[14]C.bool)(unsafe.Pointer(&in.buttons[0]))[button]
}

//export dhc_get_hat
func dhc_get_hat(in *C.dhc_inputs) C.int32_t {
	return in.hat
}

//export dhc_alternate_subsystem_enabled
func dhc_alternate_subsystem_enabled() C.bool {
	return C.bool(ctx.AlternateSubsystemEnabled())
}

//export dhc_log
func dhc_log(level C.int32_t, msg *C.char, msgLen C.size_t) {
	text := C.GoStringN(msg, C.int(msgLen))
	lvl := LogLevel(level)
	if lvl == LogLevelFatal {
		logging.Fatal(currentLogger(), text)
		return
	}
	currentLogger().Log(backgroundCtx, slogLevel(lvl), text)
}

//export dhc_log_is_enabled
func dhc_log_is_enabled(level C.int32_t) C.bool {
	return C.bool(currentLogger().Enabled(backgroundCtx, slogLevel(LogLevel(level))))
}

func main() {}
