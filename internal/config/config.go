// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/config/config.go
// Summary: Load INI configuration from ~/.config/paneless/config.ini.
// Notes: Mirrors the teacher's config/config.go Load/Default shape, but
// parses the INI format spec §6 names instead of the teacher's JSON.

package config

import (
	"os"
	"path/filepath"

	"github.com/paneless-wm/paneless/internal/wmlog"
	"gopkg.in/ini.v1"
)

// Default returns a Config populated with every recognized section's
// defaults and no user overrides.
func Default() Config {
	cfg := make(Config)
	applyDefaults(cfg)
	cfg["bindings"] = mergeBindings(Section{})
	return cfg
}

// Path returns the default config file location.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "paneless", "config.ini"), nil
}

// Load reads and parses path. A missing file is not an error: it returns
// Default(). Parsing is loose (a key with no value reads as a boolean
// key). If the file still fails to parse, the error is logged and the
// whole file is ignored: every section gets its defaults and none of the
// file's other lines are applied. Defaults also fill every key the file
// leaves out.
func Load(path string, log *wmlog.Logger) (Config, error) {
	cfg := make(Config)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info("config.default", wmlog.Fields{"path": path})
			return Default(), nil
		}
		return nil, err
	}

	file, err := ini.LoadSources(ini.LoadOptions{
		AllowBooleanKeys: true,
		Loose:            true,
	}, data)
	if err != nil {
		log.Warn("config.parse_failed_using_defaults", wmlog.Fields{"path": path, "error": err.Error()})
		applyDefaults(cfg)
		cfg["bindings"] = mergeBindings(Section{})
		return cfg, nil
	}

	for _, section := range file.Sections() {
		name := section.Name()
		if name == ini.DefaultSection {
			name = ""
		}
		s := make(Section, len(section.Keys()))
		for _, key := range section.Keys() {
			s[key.Name()] = key.Value()
		}
		cfg[name] = s
	}

	applyDefaults(cfg)
	cfg["bindings"] = mergeBindings(cfg.Section("bindings"))

	log.Info("config.loaded", wmlog.Fields{"path": path})
	return cfg, nil
}

// mergeBindings combines the package defaults with any user overrides
// (user wins on conflict, per spec §6), then forces in the workspace
// switch/move bindings last: spec §6 states those are "always active,
// even when a custom bindings section is present," so unlike every other
// binding they cannot be shadowed by a user entry.
func mergeBindings(user Section) Section {
	merged := make(Section)
	for k, v := range DefaultBindings() {
		merged[k] = v
	}
	for k, v := range user {
		merged[k] = v
	}
	for k, v := range WorkspaceBindings() {
		merged[k] = v
	}
	return merged
}
