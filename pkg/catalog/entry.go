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

// ListType identifies the delivery mechanism a catalog was built from.
// The type gates which entry fields are meaningful (CRC and build date
// exist only for buildbot listings) and whether local core paths may be
// resolved through symlinks (PFD core files have non-standard names that
// must be compared as-is).
type ListType int

const (
	ListTypeUnknown ListType = iota
	ListTypeBuildbot
	ListTypePFD
)

func (t ListType) String() string {
	switch t {
	case ListTypeBuildbot:
		return "buildbot"
	case ListTypePFD:
		return "pfd"
	case ListTypeUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// Date is a core build date parsed from a "YYYY-MM-DD" listing field.
// Zero-valued when the source listing carries no date.
type Date struct {
	Year  uint32
	Month uint32
	Day   uint32
}

// Entry is a single catalog item: either one installable core package, or
// a synthetic header row marking a grouping boundary in the display order.
//
// For real entries RemoteFilename is the unique key within a catalog. For
// header rows RemoteFilename and DisplayName both hold the header text and
// every other field is zero.
type Entry struct {
	// RemoteFilename is the core's filename as listed by the delivery
	// source, e.g. "snes9x_libretro.so.zip".
	RemoteFilename string

	// RemoteCorePath is the full, percent-encoded download URL. Empty
	// unless the entry came from a buildbot listing.
	RemoteCorePath string

	// LocalCorePath is the canonicalized path the installed core binary
	// would occupy.
	LocalCorePath string

	// LocalInfoPath is the canonicalized path of the core's info file.
	LocalInfoPath string

	DisplayName string
	Description string

	// Licenses holds the parsed entries of the info file's pipe-delimited
	// license field. Nil when the info file is missing or has no licenses.
	Licenses []string

	// CRC is the package checksum from a buildbot listing. Zero means
	// absent; a buildbot entry never has a zero checksum.
	CRC uint32

	Date Date

	// Experimental mirrors the info file's is_experimental flag. It is
	// forced on when the info file is missing or has a blank display name.
	Experimental bool

	ManufacturerHeader bool
	ConsoleHeader      bool
}

// IsHeader reports whether the entry is a synthetic grouping row rather
// than an installable core.
func (e *Entry) IsHeader() bool {
	return e.ManufacturerHeader || e.ConsoleHeader
}
