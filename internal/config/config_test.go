// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paneless-wm/paneless/internal/wmlog"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.ini"), wmlog.Discard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cfg.Section("layout").GetInt("inner_gap", -1); got != 8 {
		t.Fatalf("inner_gap = %d, want default 8", got)
	}
}

func TestLoadParsesSectionsAndKeepsDefaultsForMissingKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.ini")
	contents := `
[layout]
inner_gap = 12
tiling_mode = niri

[rules]
float = Calculator,Finder
sticky = Music

[app_rules]
Calculator = workspace 3

[bindings]
super,h = focus_left
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, wmlog.Discard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	layout := cfg.Section("layout")
	if got := layout.GetInt("inner_gap", -1); got != 12 {
		t.Fatalf("inner_gap = %d, want 12", got)
	}
	if got := layout.GetInt("outer_gap", -1); got != 8 {
		t.Fatalf("outer_gap = %d, want default 8 (untouched key)", got)
	}
	if got := layout.GetString("tiling_mode", ""); got != "niri" {
		t.Fatalf("tiling_mode = %q, want niri", got)
	}

	floats := cfg.Section("rules").GetStringList("float")
	if len(floats) != 2 || floats[0] != "Calculator" || floats[1] != "Finder" {
		t.Fatalf("float list = %v, want [Calculator Finder]", floats)
	}

	if got := cfg.Section("app_rules").GetString("Calculator", ""); got != "workspace 3" {
		t.Fatalf("app_rules.Calculator = %q, want 'workspace 3'", got)
	}
}

func TestWorkspaceBindingsCannotBeOverridden(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.ini")
	contents := `
[bindings]
super,1 = close
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path, wmlog.Discard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cfg.Section("bindings").GetString("super,1", ""); got != "switch_workspace 1" {
		t.Fatalf("super,1 = %q, want workspace binding to win", got)
	}
}

func TestDefaultBindingMergedWhenNoUserOverride(t *testing.T) {
	cfg := Default()
	if got := cfg.Section("bindings").GetString("super,h", ""); got != "focus_left" {
		t.Fatalf("super,h = %q, want focus_left", got)
	}
}
