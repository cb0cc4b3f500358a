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

	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/config"
	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/platforms"
	testhelpers "github.com/Cantus-s-Pipemaker/DolphinXR/pkg/testing/helpers"
	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/testing/mocks"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

const (
	testUserDir   = "/storage/emulated/0/Android/data/org.dolphinemu.dolphinemu/files"
	testConfigDir = testUserDir + "/Config"
)

type testBridge struct {
	*Bridge
	pl     *mocks.MockPlatform
	loader *mocks.MockLibraryLoader
	host   *mocks.MockEmulationHost
	fsh    *testhelpers.FSHelper
	exits  []int
}

type testOption func(*Options)

func withFs(fs afero.Fs) testOption {
	return func(o *Options) { o.Fs = fs }
}

func withCapabilities(caps Capabilities) testOption {
	return func(o *Options) { o.Capabilities = caps }
}

func withBuildType(bt string) testOption {
	return func(o *Options) { o.BuildType = bt }
}

func withUserDir(dir string) testOption {
	return func(o *Options) { o.UserDir = dir }
}

func newTestBridge(t *testing.T, opts ...testOption) *testBridge {
	t.Helper()

	tb := &testBridge{
		pl:     mocks.NewMockPlatform(),
		loader: &mocks.MockLibraryLoader{},
		host:   &mocks.MockEmulationHost{},
		fsh:    testhelpers.NewMemoryFS(),
	}
	tb.pl.SetupBasicMock(platforms.Settings{DataDir: testUserDir}, config.CompanionPackage)

	o := Options{
		Platform:         tb.pl,
		Fs:               tb.fsh.Fs,
		Loader:           tb.loader,
		Host:             tb.host,
		CompanionPackage: config.CompanionPackage,
		UserDir:          testUserDir,
		BuildType:        config.BuildTypeVR,
		Capabilities:     Capabilities{ByteFileIO: true},
		Exit:             func(code int) { tb.exits = append(tb.exits, code) },
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Fs != tb.fsh.Fs {
		tb.fsh.Fs = o.Fs
	}
	if fs, ok := o.Fs.(*testhelpers.FailingWriteFs); ok {
		tb.fsh.Fs = fs.Fs
	}
	if fs, ok := o.Fs.(*testhelpers.FailingReadFs); ok {
		tb.fsh.Fs = fs.Fs
	}
	tb.Bridge = NewBridge(o)
	return tb
}

func TestNewBridge_Defaults(t *testing.T) {
	t.Parallel()

	b := NewBridge(Options{UserDir: "/data"})

	assert.Equal(t, config.CompanionPackage, b.companion)
	assert.Equal(t, config.BuildType, b.buildType)
	assert.NotNil(t, b.fs)
	assert.NotNil(t, b.resolver)
	assert.NotNil(t, b.loader)
	assert.NotNil(t, b.host)
	assert.NotNil(t, b.Session())
	assert.NotNil(t, b.exit)
	assert.False(t, b.Capabilities().ByteFileIO)
	assert.Equal(t, "/data/Config", b.ConfigDir())

	assert.NotPanics(t, b.host.FinishEmulationActivity)
}

func TestHostFunc(t *testing.T) {
	t.Parallel()

	called := 0
	var host EmulationHost = HostFunc(func() { called++ })
	host.FinishEmulationActivity()
	assert.Equal(t, 1, called)
}
