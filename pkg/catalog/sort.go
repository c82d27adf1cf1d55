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
	"fmt"
	"slices"
	"strings"

	"github.com/WizmodlProject/wizmodl-core/pkg/coremeta"
)

// compareFold orders two strings case-insensitively.
func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// compareAlpha is the plain display ordering: case-insensitive on display
// name, with entries missing a display name comparing equal to everything.
func compareAlpha(a, b Entry) int {
	if a.DisplayName == "" || b.DisplayName == "" {
		return 0
	}
	return compareFold(a.DisplayName, b.DisplayName)
}

// compareGrouped is the total display ordering used for the grouped
// catalog. Headers sort before real entries (manufacturer headers first,
// then console headers, each kind alphabetical among itself); real entries
// sort by their console metadata, with display name as the final
// tie-break so the order is deterministic.
func compareGrouped(a, b Entry) int {
	switch {
	case a.IsHeader() && !b.IsHeader():
		return -1
	case !a.IsHeader() && b.IsHeader():
		return 1
	case a.ManufacturerHeader && b.ConsoleHeader:
		return -1
	case a.ConsoleHeader && b.ManufacturerHeader:
		return 1
	case a.IsHeader() && b.IsHeader():
		return compareFold(a.DisplayName, b.DisplayName)
	}

	if a.DisplayName == "" || b.DisplayName == "" {
		return 0
	}

	metaA := coremeta.Lookup(a.DisplayName)
	metaB := coremeta.Lookup(b.DisplayName)

	if metaA.ManufacturerPriority != metaB.ManufacturerPriority {
		return metaA.ManufacturerPriority - metaB.ManufacturerPriority
	}
	if cmp := compareFold(metaA.Manufacturer, metaB.Manufacturer); cmp != 0 {
		return cmp
	}
	if metaA.ConsolePriority != metaB.ConsolePriority {
		return metaA.ConsolePriority - metaB.ConsolePriority
	}
	if cmp := compareFold(metaA.ConsoleModel, metaB.ConsoleModel); cmp != 0 {
		return cmp
	}
	if cmp := compareFold(metaA.ConsoleType, metaB.ConsoleType); cmp != 0 {
		return cmp
	}
	if metaA.ReleaseYear != metaB.ReleaseYear {
		return metaA.ReleaseYear - metaB.ReleaseYear
	}

	return compareFold(a.DisplayName, b.DisplayName)
}

// SortAlpha sorts the catalog into plain case-insensitive display-name
// order, with no grouping headers.
func (c *Catalog) SortAlpha() {
	if len(c.entries) < 2 {
		return
	}
	slices.SortStableFunc(c.entries, compareAlpha)
}

// sortGrouped sorts the catalog by console metadata and then interleaves
// manufacturer and console header rows at each grouping boundary.
func (c *Catalog) sortGrouped() {
	if len(c.entries) < 2 {
		return
	}
	slices.SortFunc(c.entries, compareGrouped)
	c.injectHeaders()
}

func newManufacturerHeader(manufacturer string) Entry {
	text := fmt.Sprintf("=== %s ===", manufacturer)
	return Entry{
		RemoteFilename:     text,
		DisplayName:        text,
		ManufacturerHeader: true,
	}
}

func newConsoleHeader(consoleModel string, releaseYear int) Entry {
	var text string
	if releaseYear > 0 && releaseYear < 9999 {
		text = fmt.Sprintf("--- %s (%d) ---", consoleModel, releaseYear)
	} else {
		text = fmt.Sprintf("--- %s ---", consoleModel)
	}
	return Entry{
		RemoteFilename: text,
		DisplayName:    text,
		ConsoleHeader:  true,
	}
}

// injectHeaders walks the sorted entries and rebuilds the backing slice
// with a manufacturer header before each manufacturer change and a console
// header before each console-model change. Entries are carried over by
// value; the Licenses slice header moves with the entry rather than being
// deep-copied, so the new row is the sole remaining owner once the old
// slice is dropped.
func (c *Catalog) injectHeaders() {
	if len(c.entries) == 0 {
		return
	}

	grouped := make([]Entry, 0, len(c.entries)*3)

	var lastManufacturer, lastConsoleModel string
	for i := range c.entries {
		entry := c.entries[i]
		if entry.DisplayName == "" {
			continue
		}

		meta := coremeta.Lookup(entry.DisplayName)

		if lastManufacturer == "" || !strings.EqualFold(lastManufacturer, meta.Manufacturer) {
			grouped = append(grouped, newManufacturerHeader(meta.Manufacturer))
			lastManufacturer = meta.Manufacturer
			// A new manufacturer always starts a new console group.
			lastConsoleModel = ""
		}

		if lastConsoleModel == "" || !strings.EqualFold(lastConsoleModel, meta.ConsoleModel) {
			grouped = append(grouped, newConsoleHeader(meta.ConsoleModel, meta.ReleaseYear))
			lastConsoleModel = meta.ConsoleModel
		}

		grouped = append(grouped, entry)
	}

	if len(grouped) > 0 {
		c.entries = grouped
	}
}
