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

// Package helpers provides the path, URL and logging utilities consumed by
// the catalog.
package helpers

import (
	"path/filepath"
	"runtime"
	"strings"
)

// archiveExtensions are the compressed package formats a delivery source
// may wrap a core file in.
var archiveExtensions = []string{".zip", ".7z"}

// IsArchiveFile reports whether the filename denotes a compressed or
// archive file.
func IsArchiveFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, archiveExt := range archiveExtensions {
		if ext == archiveExt {
			return true
		}
	}
	return false
}

// StripExtension removes the last extension, dot included. A path without
// an extension is returned unchanged.
func StripExtension(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return path
	}
	return strings.TrimSuffix(path, ext)
}

// ResolvePath canonicalizes a path to an absolute, cleaned form. When
// resolveSymlinks is set and the path exists, symlinks are resolved too;
// a path that does not (yet) exist keeps its cleaned absolute form.
func ResolvePath(path string, resolveSymlinks bool) string {
	if path == "" {
		return ""
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}

	if resolveSymlinks {
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			return resolved
		}
	}

	return abs
}

// EqualFilePaths compares two canonicalized paths, case-insensitively on
// case-insensitive filesystems.
func EqualFilePaths(a, b string) bool {
	if runtime.GOOS == "windows" {
		return strings.EqualFold(a, b)
	}
	return a == b
}
