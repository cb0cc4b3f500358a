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
	"testing"

	testhelpers "github.com/Cantus-s-Pipemaker/DolphinXR/pkg/testing/helpers"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectConfig(t *testing.T) {
	t.Parallel()

	tb := newTestBridge(t)
	require.NoError(t, tb.fsh.CreateDirectoryStructure(testConfigDir, map[string]any{
		"Dolphin.ini": "[General]\nISOPaths = 1\n[Core]\nCPUCore = 4\nSkipIPL\n",
		"GFX.ini":     "; comment only\n",
		"Keys.bin":    []byte{0x01, 0x02},
		"GameSettings": map[string]any{
			"GM4E01.ini": "[Video_Settings]\n",
		},
	}))

	got, err := tb.InspectConfig()
	require.NoError(t, err)

	assert.Equal(t, []ConfigSummary{
		{Name: "Dolphin.ini", Sections: []string{"General", "Core"}, Size: 50},
		{Name: "GFX.ini", Size: 15},
		{Name: "Keys.bin", Size: 2},
	}, got)
}

func TestInspectConfig_UnreadableFile(t *testing.T) {
	t.Parallel()

	tb := newTestBridge(t, withFs(&testhelpers.FailingReadFs{Fs: afero.NewMemMapFs(), Fail: []string{"GFX.ini"}}))
	require.NoError(t, tb.fsh.WriteFile(testConfigDir+"/GFX.ini", []byte("[Settings]\n")))

	got, err := tb.InspectConfig()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "GFX.ini", got[0].Name)
	assert.NotEmpty(t, got[0].Error)
}

func TestInspectConfig_MissingDirectory(t *testing.T) {
	t.Parallel()

	tb := newTestBridge(t)

	_, err := tb.InspectConfig()
	require.Error(t, err)
}
