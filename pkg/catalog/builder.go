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
	"path/filepath"
	"strconv"
	"strings"

	"github.com/WizmodlProject/wizmodl-core/pkg/helpers"
	"github.com/rs/zerolog/log"
)

// InfoExtension is the file extension of a core's metadata file.
const InfoExtension = ".info"

// parseDate splits a "YYYY-MM-DD" listing field into its component values.
// The field must contain at least three non-empty dash-separated parts;
// each part that fails to parse as an unsigned integer stores 0 rather
// than rejecting the record, matching the permissive behavior of the
// listing sources.
func parseDate(dateStr string) (Date, bool) {
	if dateStr == "" {
		return Date{}, false
	}

	parts := splitNonEmpty(dateStr, '-', 3)
	if len(parts) < 3 {
		return Date{}, false
	}

	return Date{
		Year:  toUnsigned(parts[0]),
		Month: toUnsigned(parts[1]),
		Day:   toUnsigned(parts[2]),
	}, true
}

// parseCRC parses a hexadecimal checksum field. Zero is never a valid
// checksum for a buildbot package, so a parsed value of 0 (including any
// parse failure) rejects the record.
func parseCRC(crcStr string) (uint32, bool) {
	if crcStr == "" {
		return 0, false
	}

	s := strings.TrimPrefix(strings.TrimPrefix(crcStr, "0x"), "0X")
	crc, err := strconv.ParseUint(s, 16, 32)
	if err != nil || crc == 0 {
		return 0, false
	}

	return uint32(crc), true
}

// setPaths derives the entry's remote URL and local binary/info locations
// from the listed filename.
func (e *Entry) setPaths(paths Paths, filename string, listType ListType) bool {
	if filename == "" || paths.CoresDir == "" || paths.InfoDir == "" {
		return false
	}

	// Only buildbot entries carry a download URL.
	if listType == ListTypeBuildbot && paths.BuildbotURL == "" {
		return false
	}

	isArchive := helpers.IsArchiveFile(filename)

	e.RemoteFilename = filename

	if listType == ListTypeBuildbot {
		e.RemoteCorePath = helpers.EncodeURL(
			helpers.JoinURL(paths.BuildbotURL, filename))
	} else {
		e.RemoteCorePath = ""
	}

	// PFD core files must keep their delivered names, so their paths are
	// never resolved through symlinks.
	resolveSymlinks := listType != ListTypePFD

	localCorePath := filepath.Join(paths.CoresDir, filename)
	if isArchive {
		localCorePath = helpers.StripExtension(localCorePath)
	}
	e.LocalCorePath = helpers.ResolvePath(localCorePath, resolveSymlinks)

	infoName := helpers.StripExtension(filename)
	if isArchive {
		infoName = helpers.StripExtension(infoName)
	}

	// Core filenames may carry a platform-specific addendum (e.g.
	// "_android") where the info filename always ends in "_libretro".
	if idx := strings.LastIndex(infoName, "_"); idx >= 0 {
		if infoName[idx:] != "_libretro" {
			infoName = infoName[:idx]
		}
	}

	e.LocalInfoPath = filepath.Join(paths.InfoDir, infoName+InfoExtension)

	return true
}

// setCoreInfo fills the entry's display fields from its info file. A core
// without a valid info file is still listed, under its filename, marked
// experimental.
func (e *Entry) setCoreInfo(provider InfoProvider, filename string) bool {
	if e.LocalInfoPath == "" || filename == "" {
		return false
	}

	var (
		info  CoreInfo
		found bool
	)
	if provider != nil {
		info, found = provider.Lookup(e.LocalInfoPath)
	}

	if found && info.DisplayName != "" {
		e.DisplayName = info.DisplayName
		e.Description = info.Description
		e.Experimental = info.Experimental
	} else {
		e.DisplayName = filename
		e.Description = ""
		e.Experimental = true
	}

	if found && info.Licenses != "" {
		e.Licenses = strings.Split(info.Licenses, "|")
	}

	return true
}

// addEntry builds one catalog entry from a buildbot listing record and
// appends it. Any failure drops the record and moves on: listing lines
// arrive over unreliable network transfers, and a single broken record
// must never abort the whole catalog build.
func (c *Catalog) addEntry(
	paths Paths,
	provider InfoProvider,
	dateStr, crcStr, filename string,
) {
	// A filename already in the list is not an error, just a listing
	// duplicate to skip.
	if _, ok := c.GetFilename(filename); ok {
		return
	}

	var entry Entry

	date, ok := parseDate(dateStr)
	if !ok {
		log.Debug().Str("filename", filename).
			Msg("dropping listing record: bad date field")
		return
	}
	entry.Date = date

	crc, ok := parseCRC(crcStr)
	if !ok {
		log.Debug().Str("filename", filename).
			Msg("dropping listing record: bad checksum field")
		return
	}
	entry.CRC = crc

	if !entry.setPaths(paths, filename, ListTypeBuildbot) {
		log.Debug().Str("filename", filename).
			Msg("dropping listing record: path resolution failed")
		return
	}

	if !entry.setCoreInfo(provider, filename) {
		return
	}

	c.push(&entry)
}

// addPFDEntry builds one catalog entry from a locally delivered core
// filename and appends it. PFD listings carry no build date or checksum.
func (c *Catalog) addPFDEntry(paths Paths, provider InfoProvider, filename string) {
	if filename == "" {
		return
	}

	if _, ok := c.GetFilename(filename); ok {
		return
	}

	var entry Entry

	if !entry.setPaths(paths, filename, ListTypePFD) {
		log.Debug().Str("filename", filename).
			Msg("dropping delivered core: path resolution failed")
		return
	}

	if !entry.setCoreInfo(provider, filename) {
		return
	}

	c.push(&entry)
}

// splitNonEmpty splits s on the given byte, discarding empty elements and
// keeping at most max of them.
func splitNonEmpty(s string, sep byte, max int) []string {
	parts := make([]string, 0, max)
	for part := range strings.SplitSeq(s, string(sep)) {
		if part == "" {
			continue
		}
		parts = append(parts, part)
		if len(parts) == max {
			break
		}
	}
	return parts
}

func toUnsigned(s string) uint32 {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint32(v)
}
