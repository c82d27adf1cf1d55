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

// The process-wide cached catalog. Access is not synchronized: callers
// sharing it across goroutines must serialize InitCached/GetCached/
// FreeCached themselves.
var cachedCatalog *Catalog

// InitCached creates a new, empty process-wide cached catalog, replacing
// any existing one.
func InitCached() *Catalog {
	cachedCatalog = New()
	return cachedCatalog
}

// GetCached returns the process-wide cached catalog, or nil when none has
// been initialized.
func GetCached() *Catalog {
	return cachedCatalog
}

// FreeCached releases the process-wide cached catalog.
func FreeCached() {
	cachedCatalog = nil
}
