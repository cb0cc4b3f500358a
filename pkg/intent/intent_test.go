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

package intent

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponent(t *testing.T) {
	t.Parallel()

	in := &Intent{Package: "org.dolphinemu.dolphinemu.vr"}
	assert.Equal(t, "org.dolphinemu.dolphinemu.vr", in.Component())

	in.Activity = ".ui.main.MainActivity"
	assert.Equal(t, "org.dolphinemu.dolphinemu.vr/.ui.main.MainActivity", in.Component())
}

func TestFlags(t *testing.T) {
	t.Parallel()

	in := &Intent{Flags: FlagGrantReadURIPermission}
	in.SetFlags(FlagActivityNewTask | FlagActivitySingleTop)
	assert.False(t, in.Flags.Has(FlagGrantReadURIPermission), "SetFlags replaces")
	assert.True(t, in.Flags.Has(FlagActivityNewTask))
	assert.True(t, in.Flags.Has(FlagActivitySingleTop))

	in.AddFlags(FlagGrantReadURIPermission)
	assert.True(t, in.Flags.Has(FlagGrantReadURIPermission))
	assert.True(t, in.Flags.Has(FlagActivityNewTask), "AddFlags keeps existing")
	assert.Equal(t, Flags(0x30000001), in.Flags)
}

func TestExtras_StringList(t *testing.T) {
	t.Parallel()

	var e Extras
	_, ok := e.StringList(ExtraConfigFiles)
	assert.False(t, ok)

	src := []string{"Dolphin.ini", "GFX.ini"}
	e.PutStringList(ExtraConfigFiles, src)
	src[0] = "mutated"

	got, ok := e.StringList(ExtraConfigFiles)
	require.True(t, ok)
	assert.Equal(t, []string{"Dolphin.ini", "GFX.ini"}, got)
}

func TestExtras_NilListStoredAsEmpty(t *testing.T) {
	t.Parallel()

	var e Extras
	e.PutStringList(ExtraConfigFiles, nil)

	got, ok := e.StringList(ExtraConfigFiles)
	require.True(t, ok)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExtras_Bytes(t *testing.T) {
	t.Parallel()

	var e Extras
	assert.Nil(t, e.ByteArray("Dolphin.ini"))

	_, ok := e.LookupBytes("Dolphin.ini")
	assert.False(t, ok)

	e.PutBytes("Dolphin.ini", []byte("[Core]\n"))
	assert.Equal(t, []byte("[Core]\n"), e.ByteArray("Dolphin.ini"))

	e.PutBytes("empty.ini", []byte{})
	data, ok := e.LookupBytes("empty.ini")
	assert.True(t, ok)
	assert.Empty(t, data)
}

func TestExtras_Keys(t *testing.T) {
	t.Parallel()

	var e Extras
	e.PutStringList(ExtraConfigFiles, []string{"GFX.ini"})
	e.PutBytes("GFX.ini", []byte("x"))
	e.PutString(ExtraHandoffFile, "/tmp/a")
	e.PutStringList(ExtraAutoStartFiles, []string{"/game.iso"})

	assert.Equal(t,
		[]string{ExtraAutoStartFiles, ExtraConfigFiles, "GFX.ini", ExtraHandoffFile},
		e.Keys(),
	)
}

func TestExtras_String(t *testing.T) {
	t.Parallel()

	var e Extras
	_, ok := e.String(ExtraHandoffFile)
	assert.False(t, ok)

	e.PutString(ExtraHandoffFile, "/sdcard/a.json")
	v, ok := e.String(ExtraHandoffFile)
	assert.True(t, ok)
	assert.Equal(t, "/sdcard/a.json", v)
}

func TestExtras_Remove(t *testing.T) {
	t.Parallel()

	var e Extras
	e.Remove(ExtraHandoffFile)

	e.PutString(ExtraHandoffFile, "/sdcard/a.json")
	e.PutBytes("GFX.ini", []byte("x"))
	e.Remove(ExtraHandoffFile)

	_, ok := e.String(ExtraHandoffFile)
	assert.False(t, ok)
	assert.Equal(t, []string{"GFX.ini"}, e.Keys())
}

func TestIntentCarriesData(t *testing.T) {
	t.Parallel()

	u, err := url.Parse("content://com.android.externalstorage.documents/document/primary%3AGames%2Fmkdd.rvz")
	require.NoError(t, err)

	in := &Intent{Package: "p.q", Action: ActionGetContent, Data: u}
	assert.Equal(t, "content", in.Data.Scheme)
	assert.Equal(t, "com.android.externalstorage.documents", in.Data.Host)
}
