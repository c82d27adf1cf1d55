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

// Package config loads and stores the on-disk wizmodl configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

const (
	SchemaVersion = 1
	CfgEnv        = "WIZMODL_CFG"
	CfgFile       = "config.toml"
)

// Values is the full set of user-configurable settings.
type Values struct {
	// CoresDir is where installed core binaries live.
	CoresDir string `toml:"cores_dir" validate:"required"`

	// InfoDir is where core info files live.
	InfoDir string `toml:"info_dir" validate:"required"`

	// BuildbotURL is the base URL of the build server's core directory.
	// May be empty when only PFD listings are used.
	BuildbotURL string `toml:"buildbot_url" validate:"omitempty,url"`

	ConfigSchema int  `toml:"config_schema"`
	DebugLogging bool `toml:"debug_logging"`
}

// Instance is a loaded configuration bound to its file on disk.
type Instance struct {
	cfgPath  string
	vals     Values
	defaults Values
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewConfig loads the config file under configDir, creating it from the
// given defaults when it does not exist. The WIZMODL_CFG environment
// variable overrides the file location.
func NewConfig(configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := Instance{
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")

		if err := os.MkdirAll(filepath.Dir(cfgPath), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := cfg.Save(); err != nil {
			return nil, err
		}
	}

	if err := cfg.Load(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load reads and validates the config file, resetting to defaults first so
// removed keys fall back cleanly.
func (c *Instance) Load() error {
	if c.cfgPath == "" {
		return fmt.Errorf("config path not set")
	}

	data, err := os.ReadFile(c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	vals := c.defaults
	if err := toml.Unmarshal(data, &vals); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validate.Struct(&vals); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	c.vals = vals
	log.Debug().Str("path", c.cfgPath).Msg("loaded config")

	return nil
}

// Save writes the current values to the config file.
func (c *Instance) Save() error {
	if c.cfgPath == "" {
		return fmt.Errorf("config path not set")
	}

	c.vals.ConfigSchema = SchemaVersion

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Instance) CoresDir() string    { return c.vals.CoresDir }
func (c *Instance) InfoDir() string     { return c.vals.InfoDir }
func (c *Instance) BuildbotURL() string { return c.vals.BuildbotURL }
func (c *Instance) DebugLogging() bool  { return c.vals.DebugLogging }

// SetBuildbotURL overrides the build server URL for this instance without
// persisting it.
func (c *Instance) SetBuildbotURL(url string) { c.vals.BuildbotURL = url }
