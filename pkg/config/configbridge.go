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

package config

import (
	"regexp"
	"slices"

	"github.com/go-playground/validator/v10"
)

var javaPackageRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*(\.[A-Za-z][A-Za-z0-9_]*)+$`)

// validateJavaPackage checks a field looks like an application package id,
// e.g. org.dolphinemu.dolphinemu.vr.
func validateJavaPackage(fl validator.FieldLevel) bool {
	return javaPackageRe.MatchString(fl.Field().String())
}

type Bridge struct {
	CompanionPackage string   `toml:"companion_package" validate:"required,javapkg"`
	UserDir          string   `toml:"user_dir,omitempty"`
	HandoffDir       string   `toml:"handoff_dir,omitempty"`
	LibraryDirs      []string `toml:"library_dirs,omitempty,multiline" validate:"dive,required"`
}

// CompanionPackage returns the package identifier of the VR companion app.
func (c *Instance) CompanionPackage() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Bridge.CompanionPackage == "" {
		return CompanionPackage
	}
	return c.vals.Bridge.CompanionPackage
}

// UserDir returns the configured user data root, or fallback if unset.
func (c *Instance) UserDir(fallback string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Bridge.UserDir == "" {
		return fallback
	}
	return c.vals.Bridge.UserDir
}

// HandoffDir returns the directory launch envelopes are written to, or
// fallback if unset. Both the sending and receiving app must be able to
// read it.
func (c *Instance) HandoffDir(fallback string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Bridge.HandoffDir == "" {
		return fallback
	}
	return c.vals.Bridge.HandoffDir
}

func (c *Instance) LibraryDirs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.vals.Bridge.LibraryDirs)
}

func (c *Instance) SetLibraryDirs(dirs []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Bridge.LibraryDirs = dirs
}
