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

// Package coremeta holds the reference table mapping core display names to
// console hardware metadata. The table drives the catalog's two-level
// manufacturer/console grouping: a core is matched to the first row whose
// pattern appears as a substring of its display name, and an unmatched
// name falls through to the Unknown row. The table is compiled in and only
// ever read.
package coremeta

import "strings"

// Metadata describes the console a core emulates and where that console
// sorts within the grouped catalog. Lower priorities sort first.
type Metadata struct {
	Pattern              string
	Manufacturer         string
	ConsoleModel         string
	ConsoleType          string
	ReleaseYear          int
	ManufacturerPriority int
	ConsolePriority      int
}

// Fallback is the row assigned to cores no pattern matches.
var Fallback = Metadata{
	Manufacturer:         "Unknown",
	ConsoleModel:         "Unknown System",
	ConsoleType:          "unknown",
	ReleaseYear:          9999,
	ManufacturerPriority: 999,
	ConsolePriority:      999,
}

// Lookup returns the metadata row for a core display name: the first table
// row whose pattern is a substring of the name, or Fallback when none
// matches. Matching is case-sensitive, like the display names themselves.
func Lookup(displayName string) *Metadata {
	if displayName == "" {
		return &Fallback
	}

	for i := range table {
		if strings.Contains(displayName, table[i].Pattern) {
			return &table[i]
		}
	}

	return &Fallback
}

// All returns a copy of the table, fallback row excluded.
func All() []Metadata {
	out := make([]Metadata, len(table))
	copy(out, table)
	return out
}

var table = []Metadata{
	// Nintendo home consoles
	{"Family Computer", "Nintendo", "Nintendo Entertainment System", "home", 1983, 1, 10},
	{"Famicom", "Nintendo", "Nintendo Entertainment System", "home", 1983, 1, 10},
	{"FCEUmm", "Nintendo", "Nintendo Entertainment System", "home", 1983, 1, 10},
	{"Nestopia", "Nintendo", "Nintendo Entertainment System", "home", 1983, 1, 10},
	{"QuickNES", "Nintendo", "Nintendo Entertainment System", "home", 1983, 1, 10},

	{"Super Nintendo", "Nintendo", "Super Nintendo Entertainment System", "home", 1990, 1, 20},
	{"Snes9x", "Nintendo", "Super Nintendo Entertainment System", "home", 1990, 1, 20},
	{"bsnes", "Nintendo", "Super Nintendo Entertainment System", "home", 1990, 1, 20},
	{"higan", "Nintendo", "Super Nintendo Entertainment System", "home", 1990, 1, 20},

	{"Nintendo 64", "Nintendo", "Nintendo 64", "home", 1996, 1, 30},
	{"Mupen64Plus", "Nintendo", "Nintendo 64", "home", 1996, 1, 30},
	{"ParaLLEl", "Nintendo", "Nintendo 64", "home", 1996, 1, 30},

	{"GameCube", "Nintendo", "Nintendo GameCube", "home", 2001, 1, 40},
	{"Dolphin", "Nintendo", "Nintendo GameCube", "home", 2001, 1, 40},

	{"Wii", "Nintendo", "Nintendo Wii", "home", 2006, 1, 50},

	// Nintendo portables
	{"Game Boy", "Nintendo", "Game Boy", "portable", 1989, 1, 100},
	{"SameBoy", "Nintendo", "Game Boy", "portable", 1989, 1, 100},
	{"Gambatte", "Nintendo", "Game Boy", "portable", 1989, 1, 100},
	{"TGB Dual", "Nintendo", "Game Boy", "portable", 1989, 1, 100},

	{"Game Boy Color", "Nintendo", "Game Boy Color", "portable", 1998, 1, 110},

	{"Game Boy Advance", "Nintendo", "Game Boy Advance", "portable", 2001, 1, 120},
	{"mGBA", "Nintendo", "Game Boy Advance", "portable", 2001, 1, 120},
	{"VBA", "Nintendo", "Game Boy Advance", "portable", 2001, 1, 120},
	{"VBA-M", "Nintendo", "Game Boy Advance", "portable", 2001, 1, 120},

	{"Nintendo DS", "Nintendo", "Nintendo DS", "portable", 2004, 1, 130},
	{"DeSmuME", "Nintendo", "Nintendo DS", "portable", 2004, 1, 130},
	{"melonDS", "Nintendo", "Nintendo DS", "portable", 2004, 1, 130},

	{"Nintendo 3DS", "Nintendo", "Nintendo 3DS", "portable", 2011, 1, 140},
	{"Citra", "Nintendo", "Nintendo 3DS", "portable", 2011, 1, 140},

	// Sony home consoles
	{"PlayStation", "Sony", "PlayStation", "home", 1994, 2, 10},
	{"PCSX", "Sony", "PlayStation", "home", 1994, 2, 10},
	{"Beetle PSX", "Sony", "PlayStation", "home", 1994, 2, 10},
	{"SwanStation", "Sony", "PlayStation", "home", 1994, 2, 10},

	{"PlayStation 2", "Sony", "PlayStation 2", "home", 2000, 2, 20},
	{"PCSX2", "Sony", "PlayStation 2", "home", 2000, 2, 20},

	{"PlayStation 3", "Sony", "PlayStation 3", "home", 2006, 2, 30},
	{"RPCS3", "Sony", "PlayStation 3", "home", 2006, 2, 30},

	// Sony portables
	{"PlayStation Portable", "Sony", "PlayStation Portable", "portable", 2004, 2, 100},
	{"PPSSPP", "Sony", "PlayStation Portable", "portable", 2004, 2, 100},

	{"PlayStation Vita", "Sony", "PlayStation Vita", "portable", 2011, 2, 110},
	{"Vita3K", "Sony", "PlayStation Vita", "portable", 2011, 2, 110},

	// Sega home consoles
	{"Master System", "Sega", "Sega Master System", "home", 1986, 3, 10},
	{"SMS Plus", "Sega", "Sega Master System", "home", 1986, 3, 10},

	{"Genesis", "Sega", "Sega Genesis/Mega Drive", "home", 1988, 3, 20},
	{"Mega Drive", "Sega", "Sega Genesis/Mega Drive", "home", 1988, 3, 20},
	{"Genesis Plus GX", "Sega", "Sega Genesis/Mega Drive", "home", 1988, 3, 20},
	{"PicoDrive", "Sega", "Sega Genesis/Mega Drive", "home", 1988, 3, 20},

	{"Sega CD", "Sega", "Sega CD", "home", 1991, 3, 25},

	{"32X", "Sega", "Sega 32X", "home", 1994, 3, 28},

	{"Saturn", "Sega", "Sega Saturn", "home", 1994, 3, 30},
	{"Beetle Saturn", "Sega", "Sega Saturn", "home", 1994, 3, 30},
	{"Yabause", "Sega", "Sega Saturn", "home", 1994, 3, 30},
	{"Kronos", "Sega", "Sega Saturn", "home", 1994, 3, 30},

	{"Dreamcast", "Sega", "Sega Dreamcast", "home", 1998, 3, 40},
	{"Flycast", "Sega", "Sega Dreamcast", "home", 1998, 3, 40},
	{"Redream", "Sega", "Sega Dreamcast", "home", 1998, 3, 40},

	// Sega portables
	{"Game Gear", "Sega", "Sega Game Gear", "portable", 1990, 3, 100},

	// Atari home consoles
	{"Atari 2600", "Atari", "Atari 2600", "home", 1977, 4, 10},
	{"Stella", "Atari", "Atari 2600", "home", 1977, 4, 10},

	{"Atari 5200", "Atari", "Atari 5200", "home", 1982, 4, 20},

	{"Atari 7800", "Atari", "Atari 7800", "home", 1986, 4, 30},
	{"ProSystem", "Atari", "Atari 7800", "home", 1986, 4, 30},

	{"Atari Jaguar", "Atari", "Atari Jaguar", "home", 1993, 4, 40},
	{"Virtual Jaguar", "Atari", "Atari Jaguar", "home", 1993, 4, 40},

	// Atari portables
	{"Atari Lynx", "Atari", "Atari Lynx", "portable", 1989, 4, 100},
	{"Handy", "Atari", "Atari Lynx", "portable", 1989, 4, 100},

	// SNK
	{"Neo Geo", "SNK", "Neo Geo", "home", 1990, 5, 10},
	{"FinalBurn Neo", "SNK", "Neo Geo", "home", 1990, 5, 10},
	{"Neo Geo Pocket", "SNK", "Neo Geo Pocket", "portable", 1998, 5, 100},
	{"RACE", "SNK", "Neo Geo Pocket", "portable", 1998, 5, 100},

	// NEC
	{"PC Engine", "NEC", "PC Engine/TurboGrafx-16", "home", 1987, 6, 10},
	{"Beetle PCE", "NEC", "PC Engine/TurboGrafx-16", "home", 1987, 6, 10},
	{"TurboGrafx", "NEC", "PC Engine/TurboGrafx-16", "home", 1987, 6, 10},
	{"PC-FX", "NEC", "PC-FX", "home", 1994, 6, 20},

	// Bandai
	{"WonderSwan", "Bandai", "WonderSwan", "portable", 1999, 7, 100},
	{"Beetle Cygne", "Bandai", "WonderSwan", "portable", 1999, 7, 100},

	// Arcade
	{"MAME", "Arcade", "Multiple Arcade Systems", "arcade", 1972, 8, 10},
	{"Final Burn", "Arcade", "Multiple Arcade Systems", "arcade", 1972, 8, 10},
	{"FBNeo", "Arcade", "Multiple Arcade Systems", "arcade", 1972, 8, 10},

	// Computers
	{"Commodore 64", "Commodore", "Commodore 64", "computer", 1982, 9, 10},
	{"VICE", "Commodore", "Commodore 64", "computer", 1982, 9, 10},
	{"Amiga", "Commodore", "Amiga", "computer", 1985, 9, 20},
	{"PUAE", "Commodore", "Amiga", "computer", 1985, 9, 20},

	{"MSX", "Microsoft", "MSX", "computer", 1983, 10, 10},
	{"blueMSX", "Microsoft", "MSX", "computer", 1983, 10, 10},

	{"DOS", "IBM", "IBM PC Compatible", "computer", 1981, 11, 10},
	{"DOSBox", "IBM", "IBM PC Compatible", "computer", 1981, 11, 10},
}
