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
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/intent"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// serializeConfigs attaches every regular file directly under the Config
// directory to in, one byte extra per file, and lists the attached names in
// ConfigFiles. Unreadable files are logged and left out.
func (b *Bridge) serializeConfigs(in *intent.Intent) {
	files := []string{}
	defer func() {
		in.Extras.PutStringList(intent.ExtraConfigFiles, files)
	}()

	root := b.ConfigDir()
	entries, err := afero.ReadDir(b.fs, root)
	if err != nil {
		log.Warn().Err(err).Msgf("failed to list config directory: %s", root)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !b.caps.ByteFileIO {
			continue
		}

		path := filepath.Join(root, entry.Name())
		data, err := afero.ReadFile(b.fs, path)
		if err != nil {
			log.Error().Err(err).Msgf("failed to read config file: %s", path)
			continue
		}
		in.Extras.PutBytes(entry.Name(), data)
		files = append(files, entry.Name())
	}

	log.Debug().Strs("files", files).Msg("serialized config files")
}

// RestoreConfig writes the config snapshot carried by extras into the
// Config directory. The first call in a process restores and returns true.
// A second call is a duplicate launch: it writes nothing, clears the guard,
// asks the emulation host to finish and returns false.
func (b *Bridge) RestoreConfig(extras *intent.Extras) bool {
	if b.session.restored {
		b.session.restored = false
		log.Info().Msg("duplicate VR launch, finishing emulation")
		b.host.FinishEmulationActivity()
		return false
	}

	root := b.ConfigDir()
	if err := b.fs.MkdirAll(root, 0o750); err != nil {
		log.Error().Err(err).Msgf("failed to create config directory: %s", root)
	}

	names, _ := extras.StringList(intent.ExtraConfigFiles)
	written := 0
	for _, name := range names {
		if !validConfigName(name) {
			log.Warn().Msgf("refusing to restore config file with bad name: %q", name)
			continue
		}
		if !b.caps.ByteFileIO {
			continue
		}

		data, ok := extras.LookupBytes(name)
		if !ok {
			continue
		}

		path := filepath.Join(root, name)
		if err := afero.WriteFile(b.fs, path, data, 0o644); err != nil {
			log.Error().Err(err).Msgf("failed to write config file: %s", path)
			continue
		}
		written++
	}

	b.session.restored = true
	log.Info().Msgf("restored %d of %d config files", written, len(names))
	return true
}

// RestoreFromHandoff consumes a handoff envelope and restores its config
// snapshot. The decoded request is returned so the caller can pick up the
// files to start.
func (b *Bridge) RestoreFromHandoff(path string) (*intent.Intent, bool, error) {
	in, err := intent.ReadHandoff(b.fs, path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load launch request: %w", err)
	}
	return in, b.RestoreConfig(&in.Extras), nil
}

// validConfigName accepts only a single path element so a sender cannot
// write outside the Config directory.
func validConfigName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}
