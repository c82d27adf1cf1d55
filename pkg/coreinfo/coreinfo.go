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

// Package coreinfo reads core info files: line-oriented
// `key = "value"` metadata shipped next to each installable core. It
// implements the catalog's InfoProvider contract.
package coreinfo

import (
	"strings"

	"github.com/WizmodlProject/wizmodl-core/pkg/catalog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Provider looks up core metadata records on a filesystem. Using an
// afero.Fs keeps tests on an in-memory filesystem.
type Provider struct {
	fs afero.Fs
}

// NewProvider returns a provider reading info files from the given
// filesystem.
func NewProvider(fs afero.Fs) *Provider {
	return &Provider{fs: fs}
}

// NewOSProvider returns a provider reading info files from the host
// filesystem.
func NewOSProvider() *Provider {
	return NewProvider(afero.NewOsFs())
}

// Lookup reads and parses the info file at the given path. A missing or
// unreadable file is a miss, not an error: the catalog lists such cores
// under their filename instead.
func (p *Provider) Lookup(infoPath string) (catalog.CoreInfo, bool) {
	if infoPath == "" {
		return catalog.CoreInfo{}, false
	}

	data, err := afero.ReadFile(p.fs, infoPath)
	if err != nil {
		log.Debug().Str("path", infoPath).Msg("no core info file")
		return catalog.CoreInfo{}, false
	}

	return Parse(string(data)), true
}

// Parse extracts the catalog-relevant fields from info file content. Lines
// it does not understand are ignored.
func Parse(content string) catalog.CoreInfo {
	var info catalog.CoreInfo

	for line := range strings.SplitSeq(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		key = strings.TrimSpace(key)
		value = unquote(strings.TrimSpace(value))

		switch key {
		case "display_name":
			info.DisplayName = value
		case "description":
			info.Description = value
		case "license":
			info.Licenses = value
		case "is_experimental":
			info.Experimental = strings.EqualFold(value, "true")
		}
	}

	return info
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
