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

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/WizmodlProject/wizmodl-core/pkg/catalog"
	"github.com/WizmodlProject/wizmodl-core/pkg/config"
	"github.com/WizmodlProject/wizmodl-core/pkg/coreinfo"
	"github.com/WizmodlProject/wizmodl-core/pkg/helpers"
	"github.com/WizmodlProject/wizmodl-core/pkg/pfd"
	"github.com/WizmodlProject/wizmodl-core/pkg/shared/httpclient"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	listingPath := flag.String(
		"listing",
		"",
		"parse a buildbot listing from a local file instead of fetching",
	)
	pfdDir := flag.String(
		"pfd",
		"",
		"build the catalog from delivered core files in this directory",
	)
	buildbotURL := flag.String(
		"url",
		"",
		"override the configured build server URL",
	)
	debug := flag.Bool(
		"debug",
		false,
		"enable debug logging to the console",
	)
	flag.Parse()

	cfg, err := config.NewConfig(config.ConfigDir(), config.BaseDefaults)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var writers []io.Writer
	if *debug {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
	}
	if err := helpers.InitLogging(config.LogDir(), writers); err != nil {
		return fmt.Errorf("failed to init logging: %w", err)
	}
	if *debug || cfg.DebugLogging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if *buildbotURL != "" {
		cfg.SetBuildbotURL(*buildbotURL)
	}

	paths := catalog.Paths{
		CoresDir:    cfg.CoresDir(),
		InfoDir:     cfg.InfoDir(),
		BuildbotURL: cfg.BuildbotURL(),
	}
	provider := coreinfo.NewOSProvider()
	list := catalog.InitCached()

	switch {
	case *pfdDir != "":
		filenames, err := pfd.ListDeliveredCores(*pfdDir)
		if err != nil {
			return err
		}
		if err := list.ParsePFDList(paths, provider, filenames); err != nil {
			return fmt.Errorf("failed to build catalog: %w", err)
		}
	default:
		data, err := loadListing(*listingPath, paths.BuildbotURL)
		if err != nil {
			return err
		}
		if err := list.ParseBuildbotData(paths, provider, data); err != nil {
			return fmt.Errorf("failed to build catalog: %w", err)
		}
	}

	printCatalog(list)

	return nil
}

// loadListing reads the raw listing from a local file when given, falling
// back to fetching the build server's extended index.
func loadListing(listingPath, buildbotURL string) ([]byte, error) {
	if listingPath != "" {
		data, err := os.ReadFile(listingPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read listing file: %w", err)
		}
		return data, nil
	}

	if buildbotURL == "" {
		return nil, fmt.Errorf("no build server URL configured")
	}

	url := helpers.JoinURL(buildbotURL, ".index-extended")
	log.Info().Str("url", url).Msg("fetching core listing")

	client := httpclient.NewClient()
	data, err := client.FetchListing(context.Background(), url)
	if err != nil {
		return nil, err
	}

	return data, nil
}

func printCatalog(list *catalog.Catalog) {
	for i := range list.Size() {
		entry, ok := list.GetIndex(i)
		if !ok {
			break
		}

		switch {
		case entry.ManufacturerHeader:
			fmt.Println(entry.DisplayName)
		case entry.ConsoleHeader:
			fmt.Printf("  %s\n", entry.DisplayName)
		default:
			line := fmt.Sprintf("    %s", entry.DisplayName)
			if entry.CRC != 0 {
				line += fmt.Sprintf("  [%08x]", entry.CRC)
			}
			if entry.Date.Year != 0 {
				line += fmt.Sprintf("  %04d-%02d-%02d",
					entry.Date.Year, entry.Date.Month, entry.Date.Day)
			}
			if entry.Experimental {
				line += "  (experimental)"
			}
			fmt.Println(line)
		}
	}
}
