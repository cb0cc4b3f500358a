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

// Package intent models a cross-process launch request: the target
// component, an action, an optional data URI, launch flags and a bag of
// named extras. Hosts without a native way to carry byte extras move the
// whole request through a handoff envelope on disk.
package intent

import (
	"maps"
	"net/url"
	"slices"
)

// Launch flags. Values match the Android Intent constants so they can be
// passed to `am start -f` unchanged.
const (
	FlagGrantReadURIPermission Flags = 0x00000001
	FlagActivityNewTask        Flags = 0x10000000
	FlagActivitySingleTop      Flags = 0x20000000
)

const (
	ActionMain       = "android.intent.action.MAIN"
	ActionGetContent = "android.intent.action.GET_CONTENT"
)

// Extra keys shared by the sending and receiving side of a VR launch.
const (
	ExtraAutoStartFiles = "AutoStartFiles"
	ExtraConfigFiles    = "ConfigFiles"
	ExtraHandoffFile    = "HandoffFile"
)

type Flags uint32

func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// Intent is a launch request for another application.
type Intent struct {
	Data     *url.URL
	Extras   Extras
	Package  string
	Activity string
	Action   string
	Flags    Flags
}

// Component returns the launch target in "package/activity" form, or just
// the package when no activity is known.
func (i *Intent) Component() string {
	if i.Activity == "" {
		return i.Package
	}
	return i.Package + "/" + i.Activity
}

// SetFlags replaces all flags.
func (i *Intent) SetFlags(flags Flags) {
	i.Flags = flags
}

// AddFlags ORs flags into the existing set.
func (i *Intent) AddFlags(flags Flags) {
	i.Flags |= flags
}

// Extras holds named string lists and byte blobs. Keys are shared between
// both kinds on the wire, so a key should only be used for one of them.
type Extras struct {
	StringLists map[string][]string `json:"string_lists,omitempty"`
	Bytes       map[string][]byte   `json:"bytes,omitempty"`
	Strings     map[string]string   `json:"strings,omitempty"`
}

// PutStringList stores a copy of values under key.
func (e *Extras) PutStringList(key string, values []string) {
	if e.StringLists == nil {
		e.StringLists = make(map[string][]string)
	}
	if values == nil {
		values = []string{}
	}
	e.StringLists[key] = slices.Clone(values)
}

// StringList returns the list stored under key.
func (e *Extras) StringList(key string) ([]string, bool) {
	v, ok := e.StringLists[key]
	return v, ok
}

// PutBytes stores data under key. The slice is not copied.
func (e *Extras) PutBytes(key string, data []byte) {
	if e.Bytes == nil {
		e.Bytes = make(map[string][]byte)
	}
	e.Bytes[key] = data
}

// ByteArray returns the blob stored under key, or nil if absent.
func (e *Extras) ByteArray(key string) []byte {
	return e.Bytes[key]
}

// LookupBytes returns the blob stored under key and whether it was present.
func (e *Extras) LookupBytes(key string) ([]byte, bool) {
	v, ok := e.Bytes[key]
	return v, ok
}

func (e *Extras) PutString(key, value string) {
	if e.Strings == nil {
		e.Strings = make(map[string]string)
	}
	e.Strings[key] = value
}

func (e *Extras) String(key string) (string, bool) {
	v, ok := e.Strings[key]
	return v, ok
}

// Remove deletes key from every extra kind.
func (e *Extras) Remove(key string) {
	delete(e.StringLists, key)
	delete(e.Bytes, key)
	delete(e.Strings, key)
}

// Keys returns every extra key in sorted order.
func (e *Extras) Keys() []string {
	keys := slices.Collect(maps.Keys(e.StringLists))
	keys = slices.AppendSeq(keys, maps.Keys(e.Bytes))
	keys = slices.AppendSeq(keys, maps.Keys(e.Strings))
	slices.Sort(keys)
	return slices.Compact(keys)
}
