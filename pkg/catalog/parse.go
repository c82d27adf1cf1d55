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
	"bytes"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	// ErrEmptyListing is returned when the raw listing data is empty or
	// contains no newline-terminated records.
	ErrEmptyListing = errors.New("catalog: empty or truncated listing data")

	// ErrNoCores is returned when a full parse pass yields zero entries.
	ErrNoCores = errors.New("catalog: listing contains no usable cores")

	// ErrNoFilenames is returned when a PFD parse is given no filenames.
	ErrNoFilenames = errors.New("catalog: no delivered core filenames")
)

// ParseBuildbotData rebuilds the catalog from a raw buildbot core listing:
// newline-separated records of three single-space-separated fields,
// "date crc filename". Malformed lines and duplicate filenames are dropped
// silently; the parse fails only when the input is empty, holds no
// newlines, or produces no entries at all. On success the catalog is
// sorted into grouped display order and its type is set to buildbot.
func (c *Catalog) ParseBuildbotData(paths Paths, provider InfoProvider, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyListing
	}

	// The catalog is populated from scratch on every parse.
	c.Reset()

	// A listing without a single newline is a truncated transfer.
	if !bytes.ContainsRune(data, '\n') {
		return ErrEmptyListing
	}

	for line := range strings.SplitSeq(string(data), "\n") {
		if line == "" {
			continue
		}

		// Records have exactly [date] [crc] [filename]; anything shorter
		// is skipped, anything after the third field is ignored.
		fields := splitNonEmpty(line, ' ', 3)
		if len(fields) < 3 {
			log.Debug().Str("line", line).Msg("skipping short listing line")
			continue
		}

		c.addEntry(paths, provider, fields[0], fields[1], fields[2])
	}

	if len(c.entries) < 1 {
		return ErrNoCores
	}

	c.sortGrouped()
	c.listType = ListTypeBuildbot

	log.Info().Int("entries", len(c.entries)).
		Msg("built core catalog from buildbot listing")

	return nil
}

// ParsePFDList rebuilds the catalog from the core filenames currently
// available through the platform's app delivery mechanism. PFD records
// carry no build date or checksum. On success the catalog is sorted into
// grouped display order and its type is set to PFD.
func (c *Catalog) ParsePFDList(paths Paths, provider InfoProvider, filenames []string) error {
	if len(filenames) < 1 {
		return ErrNoFilenames
	}

	c.Reset()

	for _, filename := range filenames {
		if filename == "" {
			continue
		}
		c.addPFDEntry(paths, provider, filename)
	}

	if len(c.entries) < 1 {
		return ErrNoCores
	}

	c.sortGrouped()
	c.listType = ListTypePFD

	log.Info().Int("entries", len(c.entries)).
		Msg("built core catalog from delivered core list")

	return nil
}
