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

// Package catalog maintains the in-memory list of installable and
// updatable core packages. A Catalog is populated from scratch on every
// parse call, either from a raw buildbot listing (newline-separated
// "date crc filename" records) or from a set of locally delivered core
// filenames, then sorted into a display-ready order with manufacturer and
// console header rows interleaved.
package catalog

import (
	"github.com/WizmodlProject/wizmodl-core/pkg/helpers"
)

// Paths carries the caller-supplied locations needed to derive an entry's
// remote and local paths. BuildbotURL is required only when parsing a
// buildbot listing.
type Paths struct {
	CoresDir    string
	InfoDir     string
	BuildbotURL string
}

// CoreInfo is the subset of a core's info file consumed when building a
// catalog entry. Licenses is the raw pipe-delimited license field.
type CoreInfo struct {
	DisplayName  string
	Description  string
	Licenses     string
	Experimental bool
}

// InfoProvider resolves a core's local info file path to its metadata
// record. A miss (ok == false) or a record with a blank display name makes
// the builder fall back to the core filename and flag the entry
// experimental.
type InfoProvider interface {
	Lookup(infoPath string) (info CoreInfo, ok bool)
}

// Catalog is a growable list of catalog entries with a single source type.
// It owns its entries; pointers returned by the Get methods remain valid
// only until the next mutation (Reset or a parse call).
//
// A Catalog is not safe for concurrent use.
type Catalog struct {
	entries  []Entry
	listType ListType
}

// New returns an empty catalog of unknown type.
func New() *Catalog {
	return &Catalog{}
}

// Reset removes all entries and reverts the catalog type to unknown. It is
// safe to call on an already-empty catalog.
func (c *Catalog) Reset() {
	c.entries = nil
	c.listType = ListTypeUnknown
}

// Size returns the current entry count, header rows included.
func (c *Catalog) Size() int {
	return len(c.entries)
}

// Type returns the delivery mechanism the catalog was built from.
func (c *Catalog) Type() ListType {
	return c.listType
}

// GetIndex returns the entry at the given position, or false when the
// index is out of bounds.
func (c *Catalog) GetIndex(idx int) (*Entry, bool) {
	if idx < 0 || idx >= len(c.entries) {
		return nil, false
	}
	return &c.entries[idx], true
}

// GetFilename returns the first entry whose remote filename exactly
// matches the given name. The comparison is case-sensitive; an empty name
// never matches.
func (c *Catalog) GetFilename(remoteFilename string) (*Entry, bool) {
	if remoteFilename == "" || len(c.entries) == 0 {
		return nil, false
	}

	for i := range c.entries {
		entry := &c.entries[i]
		if entry.RemoteFilename == "" {
			continue
		}
		if entry.RemoteFilename == remoteFilename {
			return entry, true
		}
	}

	return nil, false
}

// GetCore returns the entry whose local core path matches the given path
// after canonicalization. Symlinks are not resolved for PFD catalogs, and
// the comparison is case-insensitive only on case-insensitive filesystems.
func (c *Catalog) GetCore(localCorePath string) (*Entry, bool) {
	if localCorePath == "" || len(c.entries) == 0 {
		return nil, false
	}

	// PFD core files have non-standard names: a resolved symlink would no
	// longer match the paths stored at parse time.
	resolveSymlinks := c.listType != ListTypePFD
	realCorePath := helpers.ResolvePath(localCorePath, resolveSymlinks)
	if realCorePath == "" {
		return nil, false
	}

	for i := range c.entries {
		entry := &c.entries[i]
		if entry.LocalCorePath == "" {
			continue
		}
		if helpers.EqualFilePaths(realCorePath, entry.LocalCorePath) {
			return entry, true
		}
	}

	return nil, false
}

// push appends the built entry, taking over its field values. Growth is
// amortized through the runtime's slice doubling.
func (c *Catalog) push(entry *Entry) {
	c.entries = append(c.entries, *entry)
}
