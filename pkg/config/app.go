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

package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const AppName = "wizmodl"

// ConfigDir returns the default directory of the config file.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DataDir returns the default directory for cores, info files and logs.
func DataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// LogDir returns the default directory for rotated log files.
func LogDir() string {
	return filepath.Join(xdg.StateHome, AppName)
}

// BaseDefaults are the settings written on first run.
var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	CoresDir:     filepath.Join(xdg.DataHome, AppName, "cores"),
	InfoDir:      filepath.Join(xdg.DataHome, AppName, "info"),
	BuildbotURL:  "https://buildbot.libretro.com/nightly/linux/x86_64/latest/",
}
