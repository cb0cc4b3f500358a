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

//go:build darwin || freebsd || linux

package vr

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ebitengine/purego"
	"github.com/rs/zerolog/log"
)

// DlopenLoader links libraries with dlopen, searching Dirs before the
// system library path. Loaded libraries stay resident for the life of the
// process.
type DlopenLoader struct {
	Dirs []string
}

func (l DlopenLoader) Load(name string) error {
	file := LibraryFileName(name)

	candidates := make([]string, 0, len(l.Dirs)+1)
	for _, dir := range l.Dirs {
		path := filepath.Join(dir, file)
		if _, err := os.Stat(path); err == nil {
			candidates = append(candidates, path)
		}
	}
	candidates = append(candidates, file)

	var lastErr error
	for _, path := range candidates {
		if _, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL); err != nil {
			log.Debug().Err(err).Msgf("dlopen failed: %s", path)
			lastErr = err
			continue
		}
		log.Debug().Msgf("dlopen: %s", path)
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrLibraryNotFound, file, lastErr)
}
