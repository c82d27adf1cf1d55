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

// Package pfd enumerates core files already fetched by a platform's app
// delivery mechanism, producing the filename list consumed by the
// catalog's PFD parser.
package pfd

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/rs/zerolog/log"
)

// ListDeliveredCores walks deliveryDir and returns the filenames of the
// core files found there, sorted for deterministic parse input. Walk
// errors on individual entries are skipped; only a failure to walk the
// directory at all is an error.
func ListDeliveredCores(deliveryDir string) ([]string, error) {
	if deliveryDir == "" {
		return nil, fmt.Errorf("pfd: no delivery directory")
	}

	var (
		mu    sync.Mutex
		names []string
	)

	conf := fastwalk.Config{
		Follow: false,
	}

	err := fastwalk.Walk(&conf, deliveryDir,
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				log.Debug().Err(err).Str("path", path).
					Msg("skipping unreadable delivery entry")
				return nil
			}
			if d.IsDir() {
				return nil
			}

			mu.Lock()
			names = append(names, filepath.Base(path))
			mu.Unlock()

			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("pfd: failed to walk delivery directory: %w", err)
	}

	// fastwalk visits entries concurrently, so impose a stable order.
	slices.Sort(names)

	return names, nil
}
