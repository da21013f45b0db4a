// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/config/defaults.go
// Summary: Default values for every INI section recognized in spec §6.

package config

func applyDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("layout", Section{
		"inner_gap":            "8",
		"outer_gap":            "8",
		"single_window_padding": "0",
		"animations":           "true",
		"native_animation":     "false",
		"focus_follows_mouse":  "false",
		"focus_follows_app":    "true",
		"auto_float_dialogs":   "true",
		"force_promotion":      "false",
		"dim_unfocused":        "0",
		"tiling_mode":          "hyprland",
		"niri_column_width":    "0.5",
		"hyperkey":             "",
	})
	cfg.RegisterDefaults("border", Section{
		"enabled":        "false",
		"width":          "2",
		"radius":         "6",
		"active_color":   "#ffffff",
		"inactive_color": "#444444",
	})
	cfg.RegisterDefaults("rules", Section{
		"float":       "",
		"exclude":     "",
		"sticky":      "",
		"swallow":     "",
		"swallow_all": "false",
	})
	// app_rules, workspaces, and bindings have no universal defaults:
	// every key in them names a specific app/workspace/binding, so there
	// is nothing generic to pre-fill (RegisterDefaults is a no-op on an
	// empty default Section).
	cfg.RegisterDefaults("app_rules", Section{})
	cfg.RegisterDefaults("workspaces", Section{})
	cfg.RegisterDefaults("bindings", Section{})
	cfg.RegisterDefaults("menubar", Section{})
}

// DefaultBindings is merged with any user [bindings] section; user entries
// win on key conflict (spec §6). Keys are "mods,key" (comma, no spaces,
// e.g. "super,h"); values are "action" or "action arg".
func DefaultBindings() Section {
	return Section{
		"super,h":       "focus_left",
		"super,l":       "focus_right",
		"super,k":       "focus_up",
		"super,j":       "focus_down",
		"super,tab":     "focus_next",
		"super,return":  "swap_master",
		"super,r":       "rotate_next",
		"super,shift,r": "rotate_prev",
		"super,space":   "cycle_layout",
		"super,f":       "toggle_fullscreen",
		"super,shift,f": "toggle_float",
		"super,q":       "close",
		"super,shift,c": "retile",
		"super,shift,q": "reload_config",
		"super,equal":   "increase_gap",
		"super,minus":   "decrease_gap",
		"super,shift,h": "grow_focused",
		"super,shift,l": "shrink_focused",
		"super,m":       "minimize",
		"super,c":       "niri_consume",
		"super,x":       "niri_expel",
	}
}

// WorkspaceBindings yields the always-active modifier+1..9 /
// modifier+shift+1..9 bindings spec §6 requires regardless of a custom
// [bindings] section.
func WorkspaceBindings() Section {
	s := make(Section, 18)
	for n := 1; n <= 9; n++ {
		digit := string(rune('0' + n))
		s["super,"+digit] = "switch_workspace " + digit
		s["super,shift,"+digit] = "move_to_workspace " + digit
	}
	return s
}
