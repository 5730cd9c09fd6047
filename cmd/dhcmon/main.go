// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Command dhcmon is a terminal monitor for dhc: it starts a Context, polls
// it at a fixed rate, and prints every virtual slot to the terminal
// until the user presses q. It exists to exercise the library interactively
// during development; it is not part of the stable C-ABI surface.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"

	"github.com/jmgao/dhc"
	"github.com/jmgao/dhc/internal/buildinfo"
	"github.com/jmgao/dhc/internal/config"
	"github.com/jmgao/dhc/internal/logging"
)

// cli is the kong-parsed command line.
var cli struct {
	Config  string           `help:"Path to the dhc.toml configuration file." default:"dhc.toml"`
	Format  string           `help:"Output format: text or yaml." enum:"text,yaml" default:"text"`
	Rate    time.Duration    `help:"Poll interval." default:"16ms"`
	Version kong.VersionFlag `help:"Print version and exit."`
}

func main() {
	kong.Parse(&cli,
		kong.Description("Interactive terminal monitor for dhc virtual gamepad slots."),
		kong.Vars{"version": buildinfo.String()})

	cfg, warn, err := config.Load(cli.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dhcmon: loading %s: %v\n", cli.Config, err)
		os.Exit(1)
	}

	logger, closeLog, err := logging.Init(cfg.LogLevel, cfg.Console, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dhcmon: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

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

	ctx, err := dhc.New(cfg.DeviceCount, logger, opts...)
	if err != nil {
		logging.Fatal(logger, "failed to start context", "error", err)
	}

	quit := make(chan struct{})
	host := newKeyWatcher(quit)
	host.Start()
	defer host.Stop()

	ticker := time.NewTicker(cli.Rate)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			ctx.Update()
			render(ctx, cli.Format)
		}
	}
}

// render prints every virtual slot's current record in the requested
// format.
func render(ctx *dhc.Context, format string) {
	n := ctx.DeviceCount()
	switch format {
	case "yaml":
		snap := make([]dumpSlot, n)
		for i := 0; i < n; i++ {
			snap[i] = toDumpSlot(i, ctx.DeviceState(i))
		}
		out, err := yaml.Marshal(snap)
		if err != nil {
			fmt.Fprintf(os.Stderr, "dhcmon: marshal: %v\n", err)
			return
		}
		fmt.Print("\033[H\033[2J", string(out))
	default:
		fmt.Print("\033[H\033[2J")
		for i := 0; i < n; i++ {
			in := ctx.DeviceState(i)
			fmt.Printf("slot %d: lx=%.2f ly=%.2f rx=%.2f ry=%.2f lt=%.2f rt=%.2f hat=%d start=%v south=%v\n",
				i,
				in.Axis(dhc.AxisLeftStickX), in.Axis(dhc.AxisLeftStickY),
				in.Axis(dhc.AxisRightStickX), in.Axis(dhc.AxisRightStickY),
				in.Axis(dhc.AxisLeftTrigger), in.Axis(dhc.AxisRightTrigger),
				in.Hat(), in.Button(dhc.ButtonStart), in.Button(dhc.ButtonSouth))
		}
	}
}

// dumpSlot is the yaml-serializable shape of a single virtual slot, since
// dhc.DeviceInputs keeps its fields unexported.
type dumpSlot struct {
	Slot         int     `yaml:"slot"`
	LeftStickX   float64 `yaml:"left_stick_x"`
	LeftStickY   float64 `yaml:"left_stick_y"`
	RightStickX  float64 `yaml:"right_stick_x"`
	RightStickY  float64 `yaml:"right_stick_y"`
	LeftTrigger  float64 `yaml:"left_trigger"`
	RightTrigger float64 `yaml:"right_trigger"`
	Hat          int     `yaml:"hat"`
	Start        bool    `yaml:"start"`
	South        bool    `yaml:"south"`
}

func toDumpSlot(i int, in dhc.DeviceInputs) dumpSlot {
	return dumpSlot{
		Slot:         i,
		LeftStickX:   in.Axis(dhc.AxisLeftStickX),
		LeftStickY:   in.Axis(dhc.AxisLeftStickY),
		RightStickX:  in.Axis(dhc.AxisRightStickX),
		RightStickY:  in.Axis(dhc.AxisRightStickY),
		LeftTrigger:  in.Axis(dhc.AxisLeftTrigger),
		RightTrigger: in.Axis(dhc.AxisRightTrigger),
		Hat:          int(in.Hat()),
		Start:        in.Button(dhc.ButtonStart),
		South:        in.Button(dhc.ButtonSouth),
	}
}
