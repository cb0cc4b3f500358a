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
	"path/filepath"

	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/intent"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// LaunchFunc receives a decoded launch request after its config has been
// restored. restored is false for a duplicate launch.
type LaunchFunc func(in *intent.Intent, restored bool)

// WatchHandoffs consumes every envelope that lands in dir until ctx is
// cancelled. Envelopes already present when the watch starts are consumed
// first. dir must be on the real filesystem.
func (b *Bridge) WatchHandoffs(ctx context.Context, dir string, onLaunch LaunchFunc) error {
	if err := b.fs.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create handoff directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create handoff watcher: %w", err)
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			log.Error().Err(err).Msg("error closing handoff watcher")
		}
	}()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	log.Info().Msgf("watching for launch requests in %s", dir)

	pending, err := filepath.Glob(filepath.Join(dir, "*"))
	if err != nil {
		return fmt.Errorf("failed to list handoff directory: %w", err)
	}
	for _, path := range pending {
		b.consumeHandoff(path, onLaunch)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				b.consumeHandoff(event.Name, onLaunch)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				log.Warn().Msg("handoff watcher overflowed, some requests may be missed")
				continue
			}
			log.Error().Err(err).Msg("handoff watcher error")
		}
	}
}

func (b *Bridge) consumeHandoff(path string, onLaunch LaunchFunc) {
	if !intent.IsHandoffFile(path) {
		return
	}
	in, restored, err := b.RestoreFromHandoff(path)
	if err != nil {
		log.Error().Err(err).Msgf("failed to consume handoff: %s", path)
		return
	}
	if onLaunch != nil {
		onLaunch(in, restored)
	}
}
