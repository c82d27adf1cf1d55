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

package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		base     string
		fragment string
		expected string
	}{
		{
			name:     "trailing_slash_base",
			base:     "http://buildbot/",
			fragment: "snes9x_libretro.so",
			expected: "http://buildbot/snes9x_libretro.so",
		},
		{
			name:     "no_trailing_slash",
			base:     "http://buildbot",
			fragment: "snes9x_libretro.so",
			expected: "http://buildbot/snes9x_libretro.so",
		},
		{
			name:     "leading_slash_fragment",
			base:     "http://buildbot/",
			fragment: "/snes9x_libretro.so",
			expected: "http://buildbot/snes9x_libretro.so",
		},
		{
			name:     "empty_base",
			base:     "",
			fragment: "snes9x_libretro.so",
			expected: "snes9x_libretro.so",
		},
		{
			name:     "empty_fragment",
			base:     "http://buildbot/",
			fragment: "",
			expected: "http://buildbot/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, JoinURL(tt.base, tt.fragment))
		})
	}
}

func TestEncodeURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"http://buildbot/snes9x_libretro.so",
		EncodeURL("http://buildbot/snes9x_libretro.so"))
	assert.Equal(t,
		"http://buildbot/odd%20name_libretro.so",
		EncodeURL("http://buildbot/odd name_libretro.so"))
}
