// Wizmodl Core
// Copyright (c) 2026 The Wizmodl Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Wizmodl Core.
//
// Wizmodl Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Wizmodl Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Wizmodl Core.  If not, see <http://www.gnu.org/licenses/>.

package catalog

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider serves canned info records keyed by local info path.
type stubProvider struct {
	infos map[string]CoreInfo
}

func (s stubProvider) Lookup(infoPath string) (CoreInfo, bool) {
	info, ok := s.infos[infoPath]
	return info, ok
}

var testPaths = Paths{
	CoresDir:    "/cores",
	InfoDir:     "/info",
	BuildbotURL: "http://buildbot/",
}

// nesSnesProvider names the two cores of the end-to-end fixture so the
// metadata table groups them both under Nintendo.
var nesSnesProvider = stubProvider{infos: map[string]CoreInfo{
	"/info/snes9x_libretro.info": {
		DisplayName: "Nintendo - SNES / SFC (Snes9x)",
		Description: "Portable SNES emulator",
		Licenses:    "Non-commercial",
	},
	"/info/fceumm_libretro.info": {
		DisplayName: "Nintendo - NES / Famicom (FCEUmm)",
		Description: "FCEU fork",
		Licenses:    "GPLv2",
	},
}}

const nesSnesListing = "2023-01-15 deadbeef snes9x_libretro.so\n" +
	"2023-02-20 cafebabe fceumm_libretro.so\n"

func TestNewCatalogIsEmpty(t *testing.T) {
	t.Parallel()

	c := New()
	assert.Equal(t, 0, c.Size())
	assert.Equal(t, ListTypeUnknown, c.Type())

	_, ok := c.GetIndex(0)
	assert.False(t, ok)
}

func TestResetIsIdempotent(t *testing.T) {
	t.Parallel()

	c := New()
	require.NoError(t, c.ParseBuildbotData(testPaths, nesSnesProvider, []byte(nesSnesListing)))
	require.NotZero(t, c.Size())

	c.Reset()
	assert.Equal(t, 0, c.Size())
	assert.Equal(t, ListTypeUnknown, c.Type())

	c.Reset()
	assert.Equal(t, 0, c.Size())
}

func TestGetIndexBounds(t *testing.T) {
	t.Parallel()

	c := New()
	require.NoError(t, c.ParseBuildbotData(testPaths, nesSnesProvider, []byte(nesSnesListing)))

	first, ok := c.GetIndex(0)
	require.True(t, ok)
	assert.NotNil(t, first)

	_, ok = c.GetIndex(-1)
	assert.False(t, ok)
	_, ok = c.GetIndex(c.Size())
	assert.False(t, ok)
}

func TestGetFilenameIsCaseSensitiveAndExact(t *testing.T) {
	t.Parallel()

	c := New()
	require.NoError(t, c.ParseBuildbotData(testPaths, nesSnesProvider, []byte(nesSnesListing)))

	entry, ok := c.GetFilename("snes9x_libretro.so")
	require.True(t, ok)
	assert.Equal(t, "snes9x_libretro.so", entry.RemoteFilename)
	assert.EqualValues(t, 0xdeadbeef, entry.CRC)

	_, ok = c.GetFilename("SNES9X_LIBRETRO.SO")
	assert.False(t, ok)
	_, ok = c.GetFilename("snes9x_libretro")
	assert.False(t, ok)
	_, ok = c.GetFilename("")
	assert.False(t, ok)
}

func TestGetCoreMatchesCanonicalLocalPath(t *testing.T) {
	t.Parallel()

	c := New()
	require.NoError(t, c.ParseBuildbotData(testPaths, nesSnesProvider, []byte(nesSnesListing)))

	entry, ok := c.GetCore("/cores/snes9x_libretro.so")
	require.True(t, ok)
	assert.Equal(t, "snes9x_libretro.so", entry.RemoteFilename)

	// A non-normalized spelling of the same location still matches.
	entry, ok = c.GetCore("/cores/../cores/snes9x_libretro.so")
	require.True(t, ok)
	assert.Equal(t, "snes9x_libretro.so", entry.RemoteFilename)

	_, ok = c.GetCore("")
	assert.False(t, ok)
	_, ok = c.GetCore("/cores/unknown_libretro.so")
	assert.False(t, ok)

	if runtime.GOOS != "windows" {
		_, ok = c.GetCore("/CORES/SNES9X_LIBRETRO.SO")
		assert.False(t, ok, "case-insensitive match is reserved for case-insensitive filesystems")
	}
}

func TestGetCoreOnEmptyCatalogMisses(t *testing.T) {
	t.Parallel()

	c := New()
	_, ok := c.GetCore("/cores/snes9x_libretro.so")
	assert.False(t, ok)
}

func TestCachedCatalogLifecycle(t *testing.T) { //nolint:paralleltest // mutates process-wide state
	FreeCached()
	assert.Nil(t, GetCached())

	first := InitCached()
	require.NotNil(t, first)
	assert.Same(t, first, GetCached())

	second := InitCached()
	assert.NotSame(t, first, second)
	assert.Same(t, second, GetCached())

	FreeCached()
	assert.Nil(t, GetCached())
}
