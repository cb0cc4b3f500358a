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

// Package linux runs the bridge on a desktop Linux host where the
// companion is installed as a Flatpak.
package linux

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/config"
	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/helpers/command"
	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/intent"
	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/platforms"
	"github.com/adrg/xdg"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	sysVendorPath = "/sys/class/dmi/id/sys_vendor"
	osReleasePath = "/proc/sys/kernel/osrelease"
)

type Options struct {
	Executor   command.Executor
	Fs         afero.Fs
	Clock      clockwork.Clock
	DataDir    string
	HandoffDir string
}

type Platform struct {
	cmd        command.Executor
	fs         afero.Fs
	clock      clockwork.Clock
	dataDir    string
	handoffDir string
}

func NewPlatform(opts Options) *Platform {
	p := &Platform{
		cmd:        opts.Executor,
		fs:         opts.Fs,
		clock:      opts.Clock,
		dataDir:    opts.DataDir,
		handoffDir: opts.HandoffDir,
	}
	if p.cmd == nil {
		p.cmd = &command.RealExecutor{}
	}
	if p.fs == nil {
		p.fs = afero.NewOsFs()
	}
	if p.clock == nil {
		p.clock = clockwork.NewRealClock()
	}
	if p.dataDir == "" {
		p.dataDir = filepath.Join(xdg.DataHome, "dolphin-emu")
	}
	if p.handoffDir == "" {
		p.handoffDir = filepath.Join(xdg.DataHome, config.AppName, config.HandoffDirName)
	}
	return p
}

func (*Platform) ID() string {
	return platforms.PlatformIDLinux
}

func (p *Platform) Settings() platforms.Settings {
	return platforms.Settings{
		DataDir:    p.dataDir,
		ConfigDir:  filepath.Join(xdg.ConfigHome, config.AppName),
		LogDir:     filepath.Join(xdg.StateHome, config.AppName),
		HandoffDir: p.handoffDir,
	}
}

// Version returns the kernel major version. It is only reported at
// startup since Linux has no minimum for byte IO.
func (p *Platform) Version(_ context.Context) (int, error) {
	data, err := afero.ReadFile(p.fs, osReleasePath)
	if err != nil {
		return 0, fmt.Errorf("failed to read kernel release: %w", err)
	}
	major, _, _ := strings.Cut(strings.TrimSpace(string(data)), ".")
	v, err := strconv.Atoi(major)
	if err != nil {
		return 0, fmt.Errorf("failed to parse kernel release %q: %w", major, err)
	}
	return v, nil
}

func (p *Platform) Manufacturer(_ context.Context) (string, error) {
	data, err := afero.ReadFile(p.fs, sysVendorPath)
	if err != nil {
		return "", fmt.Errorf("failed to read system vendor: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (p *Platform) InstalledPackages(ctx context.Context) ([]string, error) {
	out, err := p.cmd.Output(ctx, "flatpak", "list", "--app", "--columns=application")
	if err != nil {
		return nil, fmt.Errorf("failed to list flatpak apps: %w", err)
	}

	var apps []string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		if id := strings.TrimSpace(scanner.Text()); id != "" {
			apps = append(apps, id)
		}
	}
	return apps, nil
}

// LaunchIntent returns a request for `flatpak run <pkg>`. Flatpak apps have
// a single entry point so no activity is set.
func (p *Platform) LaunchIntent(ctx context.Context, pkg string) (*intent.Intent, error) {
	apps, err := p.InstalledPackages(ctx)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(apps, pkg) {
		return nil, fmt.Errorf("%w: %s", platforms.ErrPackageNotFound, pkg)
	}
	return &intent.Intent{Package: pkg, Action: intent.ActionMain}, nil
}

// StartActivity writes the request to a handoff envelope and starts the
// app detached with the envelope path.
func (p *Platform) StartActivity(ctx context.Context, in *intent.Intent) error {
	path, err := intent.WriteHandoff(p.fs, p.handoffDir, p.clock, in)
	if err != nil {
		return fmt.Errorf("failed to write handoff: %w", err)
	}

	in.Extras.PutString(intent.ExtraHandoffFile, path)

	if err := p.cmd.Start(ctx, "flatpak", "run", in.Package, "-restore", path); err != nil {
		in.Extras.Remove(intent.ExtraHandoffFile)
		if rmErr := p.fs.Remove(path); rmErr != nil {
			log.Warn().Err(rmErr).Msgf("failed to remove unused handoff: %s", path)
		}
		return fmt.Errorf("failed to run %s: %w", in.Package, err)
	}

	log.Debug().Str("app", in.Package).Str("handoff", path).Msg("flatpak started")
	return nil
}
