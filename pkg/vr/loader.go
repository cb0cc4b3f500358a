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
	"runtime"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const loaderPrefix = "openxr_"

var (
	ErrUnsupportedDevice = errors.New("unsupported VR device")
	ErrLibraryNotFound   = errors.New("native library not found")
)

// LibraryLoader links a native library by short name, e.g. "openxr_meta".
type LibraryLoader interface {
	Load(name string) error
}

var rootLower = cases.Lower(language.Und)

// NormalizeManufacturer lower-cases a manufacturer string and maps any
// Oculus branding to "meta".
func NormalizeManufacturer(manufacturer string) string {
	m := rootLower.String(manufacturer)
	if strings.Contains(m, "oculus") {
		m = "meta"
	}
	return m
}

// LoaderName returns the short name of the OpenXR loader for a manufacturer.
func LoaderName(manufacturer string) string {
	return loaderPrefix + NormalizeManufacturer(manufacturer)
}

// LibraryFileName maps a short library name to the file name the dynamic
// linker looks for on this OS.
func LibraryFileName(name string) string {
	switch runtime.GOOS {
	case "darwin", "ios":
		return "lib" + name + ".dylib"
	case "windows":
		return name + ".dll"
	default:
		return "lib" + name + ".so"
	}
}

// LinkLoader binds the manufacturer's OpenXR loader on VR builds. A device
// without a loader cannot run VR mode at all, so failure logs the device
// and exits the process with status 0. The returned error is only seen
// when Exit is overridden.
func (b *Bridge) LinkLoader(ctx context.Context) error {
	if !b.IsActive() {
		return nil
	}

	manufacturer, err := b.pl.Manufacturer(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read device manufacturer")
		manufacturer = ""
	}
	normalized := NormalizeManufacturer(manufacturer)
	name := LoaderName(manufacturer)

	if err := b.loader.Load(name); err != nil {
		log.Error().Err(err).Msgf("Unsupported VR device: %s", normalized)
		if b.beforeExit != nil {
			b.beforeExit()
		}
		b.exit(0)
		return fmt.Errorf("%w: %s", ErrUnsupportedDevice, normalized)
	}

	log.Info().Str("manufacturer", normalized).Msgf("linked OpenXR loader: %s", name)
	return nil
}
