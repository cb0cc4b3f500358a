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

//go:build !darwin && !freebsd && !linux

package vr

import "fmt"

// DlopenLoader is unavailable on this OS and always fails.
type DlopenLoader struct {
	Dirs []string
}

func (DlopenLoader) Load(name string) error {
	return fmt.Errorf("%w: %s: dynamic loading not supported", ErrLibraryNotFound, LibraryFileName(name))
}
