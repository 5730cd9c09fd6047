// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package buildinfo holds the build-time version stamp, the idiomatic Go
// substitute for the original's build.rs + vergen step: no library in the
// retrieved pack does build-time version stamping, so these vars are
// populated by -ldflags at link time instead of a dependency.
package buildinfo

// Version, Commit, and Date are set with:
//
//	go build -ldflags "-X github.com/jmgao/dhc/internal/buildinfo.Version=... \
//	  -X github.com/jmgao/dhc/internal/buildinfo.Commit=... \
//	  -X github.com/jmgao/dhc/internal/buildinfo.Date=..."
//
// Their zero value is "dev" so an unstamped build still prints something
// useful.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns a single-line "version (commit, date)" summary.
func String() string {
	return Version + " (" + Commit + ", " + Date + ")"
}
