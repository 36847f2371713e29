/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package version provides version information for the brandkit CLI.
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version information, set at build time via ldflags.
	Version   = "dev"
	GitCommit = "unknown"
)

// Get returns the version string for the application.
func Get() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			return info.Main.Version
		}
	}
	return Version
}

// Full returns the version with commit detail when available.
func Full() string {
	if GitCommit != "unknown" {
		return fmt.Sprintf("%s (commit: %s)", Get(), GitCommit)
	}
	return Get()
}
