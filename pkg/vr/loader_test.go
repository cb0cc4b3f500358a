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
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestLoaderName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		manufacturer string
		expected     string
	}{
		{manufacturer: "Oculus", expected: "openxr_meta"},
		{manufacturer: "OCULUS", expected: "openxr_meta"},
		{manufacturer: "oculus-vr", expected: "openxr_meta"},
		{manufacturer: "Meta", expected: "openxr_meta"},
		{manufacturer: "Pico", expected: "openxr_pico"},
		{manufacturer: "HTC", expected: "openxr_htc"},
		{manufacturer: "Lynx", expected: "openxr_lynx"},
		{manufacturer: "", expected: "openxr_"},
	}

	for _, tt := range tests {
		t.Run(tt.manufacturer, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, LoaderName(tt.manufacturer))
		})
	}
}

// randomCase flips the case of each letter according to flips.
func randomCase(s string, flips []bool) string {
	var sb strings.Builder
	for i, r := range s {
		if flips[i%len(flips)] {
			sb.WriteString(strings.ToUpper(string(r)))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// TestPropertyLoaderNameOculusIsMeta verifies any manufacturer containing
// "oculus" in any case maps to the meta loader.
func TestPropertyLoaderNameOculusIsMeta(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		prefix := rapid.StringMatching(`[a-zA-Z0-9 _-]{0,10}`).Draw(t, "prefix")
		suffix := rapid.StringMatching(`[a-zA-Z0-9 _-]{0,10}`).Draw(t, "suffix")
		flips := rapid.SliceOfN(rapid.Bool(), 1, 6).Draw(t, "flips")

		manufacturer := prefix + randomCase("oculus", flips) + suffix

		if got := LoaderName(manufacturer); got != "openxr_meta" {
			t.Fatalf("LoaderName(%q) = %q, want openxr_meta", manufacturer, got)
		}
	})
}

// TestPropertyLoaderNameLowercase verifies other manufacturers are only
// lower-cased.
func TestPropertyLoaderNameLowercase(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		manufacturer := rapid.StringMatching(`[a-zA-Z0-9]{0,16}`).Draw(t, "manufacturer")
		if strings.Contains(strings.ToLower(manufacturer), "oculus") {
			t.Skip("covered by the oculus property")
		}

		want := "openxr_" + strings.ToLower(manufacturer)
		if got := LoaderName(manufacturer); got != want {
			t.Fatalf("LoaderName(%q) = %q, want %q", manufacturer, got, want)
		}
	})
}

func TestLibraryFileName(t *testing.T) {
	t.Parallel()

	got := LibraryFileName("openxr_meta")
	switch runtime.GOOS {
	case "darwin", "ios":
		assert.Equal(t, "libopenxr_meta.dylib", got)
	case "windows":
		assert.Equal(t, "openxr_meta.dll", got)
	default:
		assert.Equal(t, "libopenxr_meta.so", got)
	}
}

func TestLinkLoader_InactiveBuildDoesNothing(t *testing.T) {
	t.Parallel()

	tb := newTestBridge(t, withBuildType("release"))

	require.NoError(t, tb.LinkLoader(context.Background()))

	tb.pl.AssertNotCalled(t, "Manufacturer", mock.Anything)
	tb.loader.AssertNotCalled(t, "Load", mock.Anything)
	assert.Empty(t, tb.exits)
}

func TestLinkLoader_Success(t *testing.T) {
	t.Parallel()

	tb := newTestBridge(t)
	tb.loader.On("Load", "openxr_meta").Return(nil).Once()

	require.NoError(t, tb.LinkLoader(context.Background()))

	tb.loader.AssertExpectations(t)
	assert.Empty(t, tb.exits)
}

func TestLinkLoader_UnsupportedDeviceExits(t *testing.T) {
	t.Parallel()

	tb := newTestBridge(t)
	tb.pl.ExpectedCalls = nil
	tb.pl.On("Manufacturer", mock.Anything).Return("Lenovo", nil)
	tb.loader.On("Load", "openxr_lenovo").Return(ErrLibraryNotFound)

	flushed := false
	tb.beforeExit = func() { flushed = true }

	err := tb.LinkLoader(context.Background())

	require.ErrorIs(t, err, ErrUnsupportedDevice)
	assert.Contains(t, err.Error(), "lenovo")
	assert.Equal(t, []int{0}, tb.exits)
	assert.True(t, flushed, "telemetry flushed before exit")
}

func TestLinkLoader_ManufacturerErrorStillFatal(t *testing.T) {
	t.Parallel()

	tb := newTestBridge(t)
	tb.pl.ExpectedCalls = nil
	tb.pl.On("Manufacturer", mock.Anything).Return("", errors.New("getprop missing"))
	tb.loader.On("Load", "openxr_").Return(ErrLibraryNotFound)

	err := tb.LinkLoader(context.Background())

	require.ErrorIs(t, err, ErrUnsupportedDevice)
	assert.Equal(t, []int{0}, tb.exits)
}
