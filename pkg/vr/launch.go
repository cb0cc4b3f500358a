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

package vr

import (
	"context"
	"errors"
	"fmt"

	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/contentref"
	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/intent"
	"github.com/rs/zerolog/log"
)

var ErrNoFilePaths = errors.New("no file paths to launch")

// OpenIntent launches the companion app with filePaths and the current
// config snapshot. The first path decides the transport: an absolute path
// sends the whole list as AutoStartFiles, anything else is resolved as a
// content reference and sent as the request data. The companion must be
// installed; check IsInstalled first.
func (b *Bridge) OpenIntent(ctx context.Context, filePaths []string) error {
	if len(filePaths) == 0 {
		return ErrNoFilePaths
	}

	launcher, err := b.pl.LaunchIntent(ctx, b.companion)
	if err != nil {
		return fmt.Errorf("failed to resolve launcher for %s: %w", b.companion, err)
	}
	launcher.SetFlags(intent.FlagActivityNewTask | intent.FlagActivitySingleTop)

	if IsLegacyPath(filePaths[0]) {
		launcher.Extras.PutStringList(intent.ExtraAutoStartFiles, filePaths)
	} else {
		uri, err := contentref.Resolve(b.resolver, filePaths[0])
		if err != nil {
			return fmt.Errorf("failed to resolve content reference: %w", err)
		}
		launcher.AddFlags(intent.FlagGrantReadURIPermission)
		launcher.Action = intent.ActionGetContent
		launcher.Data = uri
	}

	b.serializeConfigs(launcher)

	if err := b.pl.StartActivity(ctx, launcher); err != nil {
		return fmt.Errorf("failed to start %s: %w", launcher.Component(), err)
	}

	log.Info().
		Str("component", launcher.Component()).
		Int("files", len(filePaths)).
		Msg("launched VR companion")
	return nil
}
