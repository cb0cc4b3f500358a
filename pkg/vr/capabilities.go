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

	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/platforms"
	"github.com/rs/zerolog/log"
)

// Capabilities are host features detected once at startup.
type Capabilities struct {
	// PlatformVersion is the host version the flags were derived from, or
	// 0 when it could not be read.
	PlatformVersion int
	// ByteFileIO gates whole-file reads and writes used for config
	// transfer. Without it config is silently not transferred.
	ByteFileIO bool
}

// DetectCapabilities queries the platform version and compares it against
// the platform's minimums. A version query failure disables the capability
// unless the platform has no minimum.
func DetectCapabilities(ctx context.Context, pl platforms.Platform) Capabilities {
	minVersion := pl.Settings().MinByteIOVersion

	version, err := pl.Version(ctx)
	if err != nil {
		if minVersion <= 0 {
			log.Debug().Err(err).Msg("failed to read platform version")
			return Capabilities{ByteFileIO: true}
		}
		log.Warn().Err(err).Msg("failed to read platform version, disabling config transfer")
		return Capabilities{}
	}

	caps := Capabilities{
		PlatformVersion: version,
		ByteFileIO:      version >= minVersion,
	}
	log.Debug().
		Int("version", version).
		Int("minByteIO", minVersion).
		Bool("byteFileIO", caps.ByteFileIO).
		Msg("detected platform capabilities")
	return caps
}
