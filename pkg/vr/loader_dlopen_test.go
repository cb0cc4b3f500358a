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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDlopenLoader_MissingLibrary(t *testing.T) {
	t.Parallel()

	loader := DlopenLoader{Dirs: []string{t.TempDir()}}

	err := loader.Load("openxr_nonexistent_vendor_12345")

	require.ErrorIs(t, err, ErrLibraryNotFound)
	assert.Contains(t, err.Error(), LibraryFileName("openxr_nonexistent_vendor_12345"))
}
