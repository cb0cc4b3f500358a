// DolphinXR
// Copyright (c) 2026 The DolphinXR Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of DolphinXR.
//
// DolphinXR is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// DolphinXR is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with DolphinXR.  If not, see <http://www.gnu.org/licenses/>.

// Package platforms defines how the launch bridge talks to the operating
// system it runs on: the package registry, device identity and the launch
// primitive used to start another application.
package platforms

import (
	"context"
	"errors"

	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/intent"
)

const (
	PlatformIDAndroid = "android"
	PlatformIDLinux   = "linux"
)

// ErrPackageNotFound is returned when a package has no launchable entry
// point, usually because it is not installed.
var ErrPackageNotFound = errors.New("package not found")

// Settings defines all simple settings/configuration values available for a
// platform.
type Settings struct {
	// DataDir is the user data root. Dolphin's Config directory lives
	// directly beneath it.
	DataDir string
	// ConfigDir is where the bridge's own config file is stored.
	ConfigDir string
	// LogDir is where log files are written.
	LogDir string
	// HandoffDir holds launch envelopes. It must be readable by both the
	// sending and the receiving application.
	HandoffDir string
	// MinByteIOVersion is the lowest platform version that supports whole
	// file byte reads and writes. Zero means always supported.
	MinByteIOVersion int
}

// Platform is the central interface that defines how the bridge interacts
// with a supported host.
type Platform interface {
	// ID returns the unique ID of this platform.
	ID() string
	// Settings returns all simple platform-specific settings such as paths.
	Settings() Settings
	// Version returns the platform API level.
	Version(context.Context) (int, error)
	// Manufacturer returns the hardware manufacturer as reported by the
	// device, unmodified.
	Manufacturer(context.Context) (string, error)
	// InstalledPackages lists the identifiers of every installed
	// application.
	InstalledPackages(context.Context) ([]string, error)
	// LaunchIntent returns a launch request targeting the package's main
	// entry point, or ErrPackageNotFound.
	LaunchIntent(ctx context.Context, pkg string) (*intent.Intent, error)
	// StartActivity delivers a launch request to its target application.
	StartActivity(context.Context, *intent.Intent) error
}
