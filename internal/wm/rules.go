// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/wm/rules.go
// Summary: Parsed [rules]/[app_rules]/[layout] configuration (spec §6)
// consumed by window-creation classification (spec §4.3).

package wm

import (
	"strconv"
	"strings"

	"github.com/paneless-wm/paneless/internal/config"
)

// AppRuleKind is the positional/pinning effect of an [app_rules] entry.
type AppRuleKind int

const (
	AppRuleNone AppRuleKind = iota
	AppRuleLeft
	AppRuleRight
	AppRuleWorkspace
)

// AppRule is one parsed `App = left|right|workspace N` line.
type AppRule struct {
	Kind      AppRuleKind
	Workspace WorkspaceNumber
}

// Rules is the fully parsed rule configuration the classifier consults.
type Rules struct {
	Float      []string
	Exclude    []string
	Sticky     []string
	Swallow    []string
	SwallowAll bool
	AppRules   map[string]AppRule

	AutoFloatDialogs bool
	ForcePromotion   bool
	FocusFollowsMouse bool
	FocusFollowsApp   bool
	InnerGap          int
	OuterGap          int
	SingleWindowPad   int
	Scrolling         bool // true when [layout] tiling_mode = niri
	NiriColumnWidth   float64
	DimUnfocused      float32
	AnimationsEnabled bool
}

// ParseRules builds Rules from a loaded Config.
func ParseRules(cfg config.Config) Rules {
	layoutSec := cfg.Section("layout")
	rulesSec := cfg.Section("rules")

	r := Rules{
		Float:             rulesSec.GetStringList("float"),
		Exclude:           rulesSec.GetStringList("exclude"),
		Sticky:            rulesSec.GetStringList("sticky"),
		Swallow:           rulesSec.GetStringList("swallow"),
		SwallowAll:        rulesSec.GetBool("swallow_all", false),
		AppRules:          parseAppRules(cfg.Section("app_rules")),
		AutoFloatDialogs:  layoutSec.GetBool("auto_float_dialogs", true),
		ForcePromotion:    layoutSec.GetBool("force_promotion", false),
		FocusFollowsMouse: layoutSec.GetBool("focus_follows_mouse", false),
		FocusFollowsApp:   layoutSec.GetBool("focus_follows_app", true),
		InnerGap:          layoutSec.GetInt("inner_gap", 8),
		OuterGap:          layoutSec.GetInt("outer_gap", 8),
		SingleWindowPad:   layoutSec.GetInt("single_window_padding", 0),
		Scrolling:         layoutSec.GetString("tiling_mode", "hyprland") == "niri",
		NiriColumnWidth:   layoutSec.GetFloat("niri_column_width", 0.5),
		DimUnfocused:      float32(layoutSec.GetFloat("dim_unfocused", 0)),
		AnimationsEnabled: layoutSec.GetBool("animations", true),
	}
	return r
}

func parseAppRules(sec config.Section) map[string]AppRule {
	out := make(map[string]AppRule, len(sec))
	for app, raw := range sec {
		raw = strings.TrimSpace(raw)
		switch {
		case raw == "left":
			out[app] = AppRule{Kind: AppRuleLeft}
		case raw == "right":
			out[app] = AppRule{Kind: AppRuleRight}
		case strings.HasPrefix(raw, "workspace"):
			fields := strings.Fields(raw)
			if len(fields) == 2 {
				if n, err := strconv.Atoi(fields[1]); err == nil && ValidWorkspace(n) {
					out[app] = AppRule{Kind: AppRuleWorkspace, Workspace: WorkspaceNumber(n)}
				}
			}
		}
	}
	return out
}

func matchesAny(list []string, name, bundleID string) bool {
	for _, entry := range list {
		if entry == name || (bundleID != "" && entry == bundleID) {
			return true
		}
	}
	return false
}
