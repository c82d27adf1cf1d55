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

// Package helpers provides filesystem fixtures for tests.
package helpers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FSHelper wraps a filesystem for building test fixtures.
type FSHelper struct {
	Fs afero.Fs
}

// NewMemoryFS creates an in-memory filesystem for testing.
func NewMemoryFS() *FSHelper {
	return &FSHelper{Fs: afero.NewMemMapFs()}
}

// CreateInfoFile writes a core info file from key/value fields, quoting
// values the way libretro info files do.
func (h *FSHelper) CreateInfoFile(path string, fields map[string]string) error {
	var b strings.Builder
	for key, value := range fields {
		fmt.Fprintf(&b, "%s = \"%s\"\n", key, value)
	}

	if err := h.Fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create info directory: %w", err)
	}

	if err := afero.WriteFile(h.Fs, path, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write info file: %w", err)
	}
	return nil
}
