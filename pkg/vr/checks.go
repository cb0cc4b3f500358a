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
	"fmt"
	"slices"
	"strings"

	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/config"
)

// IsActive reports whether this is the VR build variant.
func (b *Bridge) IsActive() bool {
	return b.buildType == config.BuildTypeVR
}

// IsInstalled reports whether the companion package is installed. Registry
// query failures are returned to the caller.
func (b *Bridge) IsInstalled(ctx context.Context) (bool, error) {
	pkgs, err := b.pl.InstalledPackages(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list installed packages: %w", err)
	}
	return slices.Contains(pkgs, b.companion), nil
}

// IsLegacyPath reports whether path is an absolute filesystem path rather
// than a content reference.
func IsLegacyPath(path string) bool {
	return strings.HasPrefix(path, "/")
}
