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

// Package android drives an Android host through its shell tools: the
// package manager for installed packages and entry points, system
// properties for device identity and the activity manager for launches.
package android

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/config"
	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/helpers/command"
	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/intent"
	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/platforms"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	// DefaultDataDir is Dolphin's user directory in app-specific external
	// storage.
	DefaultDataDir = "/storage/emulated/0/Android/data/org.dolphinemu.dolphinemu/files"
	// DefaultHandoffDir is in shared storage so the companion can read it.
	DefaultHandoffDir = "/storage/emulated/0/DolphinXR/" + config.HandoffDirName

	// MinByteIOVersion is API 26 (Android 8.0), the first release with
	// whole-file byte reads and writes.
	MinByteIOVersion = 26

	propManufacturer = "ro.product.manufacturer"
	propSDKVersion   = "ro.build.version.sdk"
	categoryLauncher = "android.intent.category.LAUNCHER"
)

var ErrStartFailed = errors.New("activity manager rejected launch")

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
		p.dataDir = DefaultDataDir
	}
	if p.handoffDir == "" {
		p.handoffDir = DefaultHandoffDir
	}
	return p
}

func (*Platform) ID() string {
	return platforms.PlatformIDAndroid
}

func (p *Platform) Settings() platforms.Settings {
	appDir := filepath.Join(p.dataDir, config.AppName)
	return platforms.Settings{
		DataDir:          p.dataDir,
		ConfigDir:        appDir,
		LogDir:           filepath.Join(appDir, "logs"),
		HandoffDir:       p.handoffDir,
		MinByteIOVersion: MinByteIOVersion,
	}
}

func (p *Platform) getprop(ctx context.Context, name string) (string, error) {
	out, err := p.cmd.Output(ctx, "getprop", name)
	if err != nil {
		return "", fmt.Errorf("failed to read property %s: %w", name, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Version returns the SDK level.
func (p *Platform) Version(ctx context.Context) (int, error) {
	raw, err := p.getprop(ctx, propSDKVersion)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse SDK version %q: %w", raw, err)
	}
	return v, nil
}

func (p *Platform) Manufacturer(ctx context.Context) (string, error) {
	return p.getprop(ctx, propManufacturer)
}

func (p *Platform) InstalledPackages(ctx context.Context) ([]string, error) {
	out, err := p.cmd.Output(ctx, "pm", "list", "packages")
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	return parsePackageList(out), nil
}

// parsePackageList reads `pm list packages` output, one "package:<id>"
// per line.
func parsePackageList(out []byte) []string {
	var pkgs []string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		id, ok := strings.CutPrefix(strings.TrimSpace(scanner.Text()), "package:")
		if ok && id != "" {
			pkgs = append(pkgs, id)
		}
	}
	return pkgs
}

// LaunchIntent resolves the package's launcher activity.
func (p *Platform) LaunchIntent(ctx context.Context, pkg string) (*intent.Intent, error) {
	out, err := p.cmd.Output(ctx,
		"cmd", "package", "resolve-activity", "--brief", "-c", categoryLauncher, pkg)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve activity for %s: %w", pkg, err)
	}

	activity, err := parseResolvedActivity(out, pkg)
	if err != nil {
		return nil, err
	}

	return &intent.Intent{
		Package:  pkg,
		Activity: activity,
		Action:   intent.ActionMain,
	}, nil
}

// parseResolvedActivity takes the last "package/activity" line of
// `resolve-activity --brief` output.
func parseResolvedActivity(out []byte, pkg string) (string, error) {
	text := strings.TrimSpace(string(out))
	if text == "" || strings.Contains(text, "No activity found") {
		return "", fmt.Errorf("%w: %s", platforms.ErrPackageNotFound, pkg)
	}

	lines := strings.Split(text, "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	gotPkg, activity, ok := strings.Cut(last, "/")
	if !ok || gotPkg != pkg || activity == "" {
		return "", fmt.Errorf("%w: %s: unexpected resolver output %q", platforms.ErrPackageNotFound, pkg, last)
	}
	return activity, nil
}

// StartActivity writes the request to a handoff envelope and asks the
// activity manager to start it. `am start` exits zero on most failures, so
// its output is checked too.
func (p *Platform) StartActivity(ctx context.Context, in *intent.Intent) error {
	path, err := intent.WriteHandoff(p.fs, p.handoffDir, p.clock, in)
	if err != nil {
		return fmt.Errorf("failed to write handoff: %w", err)
	}

	in.Extras.PutString(intent.ExtraHandoffFile, path)

	out, err := p.cmd.Output(ctx, "am", amStartArgs(in)...)
	if err == nil {
		err = checkAmOutput(out)
	}
	if err != nil {
		in.Extras.Remove(intent.ExtraHandoffFile)
		if rmErr := p.fs.Remove(path); rmErr != nil {
			log.Warn().Err(rmErr).Msgf("failed to remove unused handoff: %s", path)
		}
		return fmt.Errorf("failed to start %s: %w", in.Component(), err)
	}

	log.Debug().Str("component", in.Component()).Str("handoff", path).Msg("activity started")
	return nil
}

func amStartArgs(in *intent.Intent) []string {
	args := []string{"start", "-n", in.Component(), "-f", fmt.Sprintf("0x%08x", uint32(in.Flags))}
	if in.Action != "" {
		args = append(args, "-a", in.Action)
	}
	if in.Data != nil {
		args = append(args, "-d", in.Data.String())
	}
	if files, ok := in.Extras.StringList(intent.ExtraAutoStartFiles); ok {
		args = append(args, "--esa", intent.ExtraAutoStartFiles, joinStringArray(files))
	}
	for _, key := range slices.Sorted(maps.Keys(in.Extras.Strings)) {
		args = append(args, "--es", key, in.Extras.Strings[key])
	}
	return args
}

// joinStringArray formats values for `am --esa`, which splits on commas.
func joinStringArray(values []string) string {
	escaped := make([]string, len(values))
	for i, v := range values {
		escaped[i] = strings.ReplaceAll(v, ",", `\,`)
	}
	return strings.Join(escaped, ",")
}

func checkAmOutput(out []byte) error {
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "Error") {
			return fmt.Errorf("%w: %s", ErrStartFailed, line)
		}
	}
	return nil
}
