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

// Package vr is the launch bridge between the emulator and its VR companion
// app. The sending side detects the companion, builds a launch request
// carrying the files to start plus a snapshot of the Config directory, and
// dispatches it. The receiving side restores that snapshot exactly once per
// process and binds the vendor OpenXR loader at startup.
//
// A Bridge and its Session are not safe for concurrent use. Callers drive
// them from a single goroutine.
package vr

import (
	"os"
	"path/filepath"

	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/config"
	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/contentref"
	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/platforms"
	"github.com/spf13/afero"
)

// EmulationHost is the running emulator, asked to close its emulation when
// a duplicate launch arrives.
type EmulationHost interface {
	FinishEmulationActivity()
}

// HostFunc adapts a function to EmulationHost.
type HostFunc func()

func (f HostFunc) FinishEmulationActivity() {
	f()
}

type Options struct {
	Platform platforms.Platform
	Fs       afero.Fs
	Resolver contentref.Resolver
	Loader   LibraryLoader
	Host     EmulationHost
	Session  *Session
	// Exit terminates the process. Defaults to os.Exit.
	Exit func(int)
	// BeforeExit runs ahead of a fatal exit, e.g. to flush telemetry.
	BeforeExit       func()
	CompanionPackage string
	UserDir          string
	// BuildType defaults to config.BuildType.
	BuildType    string
	Capabilities Capabilities
}

// Bridge exposes the launch bridge operations over injected collaborators.
type Bridge struct {
	pl         platforms.Platform
	fs         afero.Fs
	resolver   contentref.Resolver
	loader     LibraryLoader
	host       EmulationHost
	session    *Session
	exit       func(int)
	beforeExit func()
	companion  string
	userDir    string
	buildType  string
	caps       Capabilities
}

//nolint:gocritic // options struct copied on construction
func NewBridge(opts Options) *Bridge {
	b := &Bridge{
		pl:         opts.Platform,
		fs:         opts.Fs,
		resolver:   opts.Resolver,
		loader:     opts.Loader,
		host:       opts.Host,
		session:    opts.Session,
		exit:       opts.Exit,
		beforeExit: opts.BeforeExit,
		companion:  opts.CompanionPackage,
		userDir:    opts.UserDir,
		buildType:  opts.BuildType,
		caps:       opts.Capabilities,
	}
	if b.fs == nil {
		b.fs = afero.NewOsFs()
	}
	if b.resolver == nil {
		b.resolver = contentref.DocumentResolver{}
	}
	if b.loader == nil {
		b.loader = DlopenLoader{}
	}
	if b.host == nil {
		b.host = HostFunc(func() {})
	}
	if b.session == nil {
		b.session = NewSession()
	}
	if b.exit == nil {
		b.exit = os.Exit
	}
	if b.companion == "" {
		b.companion = config.CompanionPackage
	}
	if b.buildType == "" {
		b.buildType = config.BuildType
	}
	return b
}

// Session returns the process state owned by this bridge.
func (b *Bridge) Session() *Session {
	return b.session
}

// Capabilities returns the capability flags the bridge was built with.
func (b *Bridge) Capabilities() Capabilities {
	return b.caps
}

// ConfigDir is the Config directory under the user data root.
func (b *Bridge) ConfigDir() string {
	return filepath.Join(b.userDir, config.ConfigDirName)
}
