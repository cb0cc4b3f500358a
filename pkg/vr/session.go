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

// Session holds per-process bridge state. It replaces process-wide flags so
// the single-caller assumption is carried by whoever owns the Session.
type Session struct {
	initialized bool
	restored    bool
}

func NewSession() *Session {
	return &Session{}
}

// IsInitialized reports whether one-time setup has run.
func (s *Session) IsInitialized() bool {
	return s.initialized
}

// SetInitialized latches the initialized flag. It is never cleared.
func (s *Session) SetInitialized() {
	s.initialized = true
}

// IsRestored reports whether a config restore completed and has not since
// been consumed by a duplicate launch.
func (s *Session) IsRestored() bool {
	return s.restored
}
