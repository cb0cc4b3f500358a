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

package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Cantus-s-Pipemaker/DolphinXR/internal/telemetry"
	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/config"
	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/helpers"
	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/platforms"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Flags struct {
	Launch    *bool
	Restore   *string
	Watch     *bool
	Link      *bool
	Installed *bool
	Inspect   *bool
	Version   *bool
	Verbose   *bool
}

func SetupFlags() *Flags {
	return &Flags{
		Launch: flag.Bool(
			"launch",
			false,
			"launch the given game paths in the VR companion",
		),
		Restore: flag.String(
			"restore",
			"",
			"restore config from a handoff envelope and print the files to start",
		),
		Watch: flag.Bool(
			"watch",
			false,
			"wait for launch requests and restore each one",
		),
		Link: flag.Bool(
			"link",
			false,
			"load the native OpenXR loader for this device",
		),
		Installed: flag.Bool(
			"installed",
			false,
			"report whether the VR companion is installed",
		),
		Inspect: flag.Bool(
			"inspect",
			false,
			"list the config files a launch would transfer",
		),
		Version: flag.Bool(
			"version",
			false,
			"print version and exit",
		),
		Verbose: flag.Bool(
			"verbose",
			false,
			"also log to stderr",
		),
	}
}

func (f *Flags) Pre(pl platforms.Platform) {
	flag.Parse()

	if *f.Version {
		_, _ = fmt.Printf("DolphinXR v%s %s (%s)\n", config.AppVersion, config.BuildType, pl.ID())
		os.Exit(0)
	}
}

// Post runs the action selected on the command line. It returns false when
// no action flag was passed.
func (f *Flags) Post(ctx context.Context, r *Runner, args []string) (bool, error) {
	switch {
	case *f.Installed:
		return true, r.Installed(ctx)
	case *f.Inspect:
		return true, r.Inspect()
	case *f.Link:
		return true, r.Startup(ctx)
	case *f.Launch:
		return true, r.Launch(ctx, args)
	case *f.Restore != "":
		return true, r.Restore(ctx, *f.Restore)
	case *f.Watch:
		return true, r.Watch(ctx)
	}
	return false, nil
}

func Setup(
	pl platforms.Platform,
	defaultConfig config.Values,
	writers []io.Writer,
) *config.Instance {
	// Ensure directories exist before logging initialization
	err := helpers.EnsureDirectories(pl)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error creating directories: %v\n", err)
		os.Exit(1)
	}

	err = helpers.InitLogging(pl, writers)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.NewConfig(pl.Settings().ConfigDir, defaultConfig)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if cfg.DebugLogging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Initialize error reporting (opt-in)
	if err := telemetry.Init(telemetry.Options{
		Enabled:    cfg.ErrorReporting(),
		DSN:        os.Getenv(config.SentryDSNEnv),
		DeviceID:   cfg.DeviceID(),
		AppVersion: config.AppVersion,
		PlatformID: pl.ID(),
	}); err != nil {
		log.Warn().Err(err).Msg("failed to initialize error reporting")
	}

	return cfg
}
