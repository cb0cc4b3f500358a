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
	"context"
	"fmt"

	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/intent"
	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/platforms"
	"github.com/stretchr/testify/mock"
)

// MockPlatform is a mock implementation of the Platform interface using testify/mock
type MockPlatform struct {
	mock.Mock
	started []*intent.Intent // Track dispatched launch requests for verification
}

// NewMockPlatform creates a MockPlatform with no expectations set.
func NewMockPlatform() *MockPlatform {
	return &MockPlatform{}
}

// ID returns the unique ID of this platform
func (m *MockPlatform) ID() string {
	args := m.Called()
	return args.String(0)
}

// Settings returns all simple platform-specific settings such as paths
func (m *MockPlatform) Settings() platforms.Settings {
	args := m.Called()
	if settings, ok := args.Get(0).(platforms.Settings); ok {
		return settings
	}
	return platforms.Settings{}
}

// Version returns the mocked platform API level
func (m *MockPlatform) Version(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	if err := args.Error(1); err != nil {
		return 0, fmt.Errorf("mock platform version failed: %w", err)
	}
	return args.Int(0), nil
}

// Manufacturer returns the mocked hardware manufacturer
func (m *MockPlatform) Manufacturer(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	if err := args.Error(1); err != nil {
		return "", fmt.Errorf("mock platform manufacturer failed: %w", err)
	}
	return args.String(0), nil
}

// InstalledPackages returns the mocked package list
func (m *MockPlatform) InstalledPackages(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if err := args.Error(1); err != nil {
		return nil, fmt.Errorf("mock platform installed packages failed: %w", err)
	}
	if pkgs, ok := args.Get(0).([]string); ok {
		return pkgs, nil
	}
	return nil, nil
}

// LaunchIntent returns the mocked launch request for pkg
func (m *MockPlatform) LaunchIntent(ctx context.Context, pkg string) (*intent.Intent, error) {
	args := m.Called(ctx, pkg)
	if err := args.Error(1); err != nil {
		return nil, fmt.Errorf("mock platform launch intent failed: %w", err)
	}
	switch v := args.Get(0).(type) {
	case func(context.Context, string) *intent.Intent:
		return v(ctx, pkg), nil
	case *intent.Intent:
		return v, nil
	}
	return nil, nil
}

// StartActivity records the dispatched request and returns the mocked error
func (m *MockPlatform) StartActivity(ctx context.Context, in *intent.Intent) error {
	args := m.Called(ctx, in)
	if err := args.Error(0); err != nil {
		return fmt.Errorf("mock platform start activity failed: %w", err)
	}
	m.started = append(m.started, in)
	return nil
}

// StartedIntents returns every request passed to a successful StartActivity
func (m *MockPlatform) StartedIntents() []*intent.Intent {
	return m.started
}

// SetupBasicMock configures the mock with sensible defaults for a device
// with the companion installed.
func (m *MockPlatform) SetupBasicMock(settings platforms.Settings, companion string) {
	m.On("ID").Return("mock").Maybe()
	m.On("Settings").Return(settings).Maybe()
	m.On("Version", mock.Anything).Return(34, nil).Maybe()
	m.On("Manufacturer", mock.Anything).Return("Oculus", nil).Maybe()
	m.On("InstalledPackages", mock.Anything).Return([]string{"com.android.settings", companion}, nil).Maybe()
	m.On("LaunchIntent", mock.Anything, companion).Return(func(context.Context, string) *intent.Intent {
		return &intent.Intent{Package: companion, Activity: ".ui.main.MainActivity", Action: intent.ActionMain}
	}, nil).Maybe()
	m.On("StartActivity", mock.Anything, mock.Anything).Return(nil).Maybe()
}
