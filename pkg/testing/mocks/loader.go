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

package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockLibraryLoader is a testify mock for vr.LibraryLoader.
type MockLibraryLoader struct {
	mock.Mock
}

// Load mocks loading a native library by its short name.
func (m *MockLibraryLoader) Load(name string) error {
	args := m.Called(name)
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return args.Error(0)
}

// MockEmulationHost is a testify mock for vr.EmulationHost.
type MockEmulationHost struct {
	mock.Mock
}

// FinishEmulationActivity mocks closing the running emulation.
func (m *MockEmulationHost) FinishEmulationActivity() {
	m.Called()
}
