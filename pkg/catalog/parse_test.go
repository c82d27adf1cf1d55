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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// realEntries returns the catalog's non-header entries in display order.
func realEntries(c *Catalog) []Entry {
	var out []Entry
	for i := range c.entries {
		if !c.entries[i].IsHeader() {
			out = append(out, c.entries[i])
		}
	}
	return out
}

func TestParseBuildbotDataWellFormed(t *testing.T) {
	t.Parallel()

	listing := "2023-01-15 deadbeef snes9x_libretro.so\n" +
		"2023-02-20 cafebabe fceumm_libretro.so\n" +
		"2023-03-25 0badf00d gambatte_libretro.so\n"

	c := New()
	require.NoError(t, c.ParseBuildbotData(testPaths, stubProvider{}, []byte(listing)))

	assert.Equal(t, ListTypeBuildbot, c.Type())

	entries := realEntries(c)
	require.Len(t, entries, 3)
	for _, entry := range entries {
		assert.NotZero(t, entry.CRC)
		assert.NotZero(t, entry.Date.Year)
		assert.NotEmpty(t, entry.RemoteCorePath)
		assert.NotEmpty(t, entry.LocalCorePath)
		assert.NotEmpty(t, entry.LocalInfoPath)
	}
}

func TestParseBuildbotDataRequiresNewline(t *testing.T) {
	t.Parallel()

	c := New()
	err := c.ParseBuildbotData(testPaths, stubProvider{}, []byte("nonewline"))
	require.ErrorIs(t, err, ErrEmptyListing)
	assert.Equal(t, 0, c.Size())
	assert.Equal(t, ListTypeUnknown, c.Type())
}

func TestParseBuildbotDataEmptyInput(t *testing.T) {
	t.Parallel()

	c := New()
	err := c.ParseBuildbotData(testPaths, stubProvider{}, nil)
	require.ErrorIs(t, err, ErrEmptyListing)
	assert.Equal(t, ListTypeUnknown, c.Type())
}

func TestParseBuildbotDataAllRecordsBad(t *testing.T) {
	t.Parallel()

	listing := "2023-01-15 00000000 a_libretro.so\n" +
		"garbage line\n" +
		"\n"

	c := New()
	err := c.ParseBuildbotData(testPaths, stubProvider{}, []byte(listing))
	require.ErrorIs(t, err, ErrNoCores)
	assert.Equal(t, 0, c.Size())
}

func TestParseBuildbotDataSkipsBadLines(t *testing.T) {
	t.Parallel()

	listing := "2023-01-15 deadbeef snes9x_libretro.so\n" +
		"2023-02-20 cafebabe\n" + // short line
		"2023-03-25 00000000 broken_libretro.so\n" + // zero checksum
		"2023-04-30 0badf00d fceumm_libretro.so\n"

	c := New()
	require.NoError(t, c.ParseBuildbotData(testPaths, stubProvider{}, []byte(listing)))
	assert.Len(t, realEntries(c), 2)
}

func TestParseBuildbotDataDuplicateLineLeavesCountUnchanged(t *testing.T) {
	t.Parallel()

	listing := "2023-01-15 deadbeef snes9x_libretro.so\n" +
		"2023-02-20 cafebabe snes9x_libretro.so\n"

	c := New()
	require.NoError(t, c.ParseBuildbotData(testPaths, stubProvider{}, []byte(listing)))

	entries := realEntries(c)
	require.Len(t, entries, 1)
	assert.EqualValues(t, 0xdeadbeef, entries[0].CRC, "first occurrence wins")
}

func TestParseBuildbotDataGroupsNintendoConsoles(t *testing.T) {
	t.Parallel()

	c := New()
	require.NoError(t, c.ParseBuildbotData(testPaths, nesSnesProvider, []byte(nesSnesListing)))

	var names []string
	for i := range c.Size() {
		entry, ok := c.GetIndex(i)
		require.True(t, ok)
		names = append(names, entry.DisplayName)
	}

	// NES (console priority 10) precedes SNES (20) under a single
	// Nintendo manufacturer header, each with its own console header.
	assert.Equal(t, []string{
		"=== Nintendo ===",
		"--- Nintendo Entertainment System (1983) ---",
		"Nintendo - NES / Famicom (FCEUmm)",
		"--- Super Nintendo Entertainment System (1990) ---",
		"Nintendo - SNES / SFC (Snes9x)",
	}, names)
}

func TestParsePFDList(t *testing.T) {
	t.Parallel()

	c := New()
	err := c.ParsePFDList(testPaths, stubProvider{}, []string{
		"a_libretro.so", "", "b_libretro.so",
	})
	require.NoError(t, err)

	assert.Equal(t, ListTypePFD, c.Type())

	entries := realEntries(c)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Empty(t, entry.RemoteCorePath, "PFD entries have no download URL")
		assert.Zero(t, entry.CRC)
		assert.Equal(t, Date{}, entry.Date)
		assert.True(t, entry.Experimental)
	}
}

func TestParsePFDListDuplicates(t *testing.T) {
	t.Parallel()

	c := New()
	err := c.ParsePFDList(testPaths, stubProvider{}, []string{
		"a_libretro.so", "a_libretro.so",
	})
	require.NoError(t, err)
	assert.Len(t, realEntries(c), 1)
}

func TestParsePFDListEmptyInput(t *testing.T) {
	t.Parallel()

	c := New()
	require.ErrorIs(t, c.ParsePFDList(testPaths, stubProvider{}, nil), ErrNoFilenames)
	require.ErrorIs(t, c.ParsePFDList(testPaths, stubProvider{}, []string{""}), ErrNoCores)
	assert.Equal(t, ListTypeUnknown, c.Type())
}

func TestParseReplacesPreviousContents(t *testing.T) {
	t.Parallel()

	c := New()
	require.NoError(t, c.ParseBuildbotData(testPaths, nesSnesProvider, []byte(nesSnesListing)))
	firstSize := c.Size()
	require.NotZero(t, firstSize)

	require.NoError(t, c.ParsePFDList(testPaths, stubProvider{}, []string{"a_libretro.so"}))
	assert.Equal(t, ListTypePFD, c.Type())
	assert.Len(t, realEntries(c), 1)

	_, ok := c.GetFilename("snes9x_libretro.so")
	assert.False(t, ok, "earlier catalog contents are discarded")
}
