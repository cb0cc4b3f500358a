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
	"strings"
	"testing"

	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestIsActive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		buildType string
		expected  bool
	}{
		{buildType: config.BuildTypeVR, expected: true},
		{buildType: "release", expected: false},
		{buildType: "debug", expected: false},
		{buildType: "VR", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.buildType, func(t *testing.T) {
			t.Parallel()
			tb := newTestBridge(t, withBuildType(tt.buildType))
			assert.Equal(t, tt.expected, tb.IsActive())
		})
	}
}

func TestIsInstalled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pkgs     []string
		expected bool
	}{
		{
			name:     "companion present",
			pkgs:     []string{"com.android.settings", config.CompanionPackage},
			expected: true,
		},
		{
			name:     "only the main app",
			pkgs:     []string{"org.dolphinemu.dolphinemu"},
			expected: false,
		},
		{
			name:     "similar package is not a match",
			pkgs:     []string{config.CompanionPackage + ".beta", "x" + config.CompanionPackage},
			expected: false,
		},
		{
			name:     "empty list",
			pkgs:     []string{},
			expected: false,
		},
		{
			name:     "nil list",
			pkgs:     nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tb := newTestBridge(t)
			tb.pl.ExpectedCalls = nil
			tb.pl.On("InstalledPackages", mock.Anything).Return(tt.pkgs, nil)

			installed, err := tb.IsInstalled(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, installed)
		})
	}
}

func TestIsInstalled_QueryError(t *testing.T) {
	t.Parallel()

	tb := newTestBridge(t)
	tb.pl.ExpectedCalls = nil
	boom := errors.New("package manager died")
	tb.pl.On("InstalledPackages", mock.Anything).Return(nil, boom)

	installed, err := tb.IsInstalled(context.Background())
	require.ErrorIs(t, err, boom)
	assert.False(t, installed)
}

func TestIsLegacyPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		expected bool
	}{
		{path: "/storage/emulated/0/Games/mkdd.rvz", expected: true},
		{path: "/", expected: true},
		{path: "content://com.android.externalstorage.documents/document/primary%3Aa.iso", expected: false},
		{path: "Games/mkdd.rvz", expected: false},
		{path: "", expected: false},
		{path: " /leading-space", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, IsLegacyPath(tt.path))
		})
	}
}

func TestPropertyIsLegacyPathMatchesRootPrefix(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		path := rapid.String().Draw(t, "path")

		if IsLegacyPath(path) != strings.HasPrefix(path, "/") {
			t.Fatalf("IsLegacyPath(%q) disagrees with root prefix", path)
		}
	})
}
