// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/wm/reload.go
// Summary: Applying a reloaded Config to a live Core (spec §6, §7
// config-parse failure handling).

package wm

import (
	"github.com/paneless-wm/paneless/internal/border"
	"github.com/paneless-wm/paneless/internal/config"
	"github.com/paneless-wm/paneless/internal/wmlog"
)

// ApplyConfig installs a freshly loaded/parsed configuration: new rules
// take effect for subsequent classification and retile; the border and
// dimmer collaborators get their sections re-applied immediately; every
// monitor's active workspace is retiled so gap/layout changes are visible
// without restarting.
func (c *Core) ApplyConfig(cfg config.Config) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.applyConfigLocked(cfg)
}

func (c *Core) applyConfigLocked(cfg config.Config) {
	c.rules = ParseRules(cfg)

	borderSec := cfg.Section("border")
	c.border.SetConfig(border.Config{
		Enabled:       borderSec.GetBool("enabled", false),
		Width:         borderSec.GetInt("width", 2),
		Radius:        borderSec.GetInt("radius", 6),
		ActiveColor:   borderSec.GetString("active_color", "#ffffff"),
		InactiveColor: borderSec.GetString("inactive_color", "#444444"),
	})

	if c.rules.DimUnfocused <= 0 {
		c.dimmer.Clear()
	}
	c.dimmer.SetAmount(c.rules.DimUnfocused)

	for _, monitor := range c.monitorOrder {
		c.retileLocked(monitor)
	}
}

// reloadConfigLocked implements the `reload_config` binding (spec §6):
// re-read the config file via the injected reloader and apply it, the
// same as a file-watch-triggered reload.
func (c *Core) reloadConfigLocked() {
	if c.reload == nil {
		c.log.Debug("action.reload_config_no_reloader", wmlog.Fields{})
		return
	}
	cfg, err := c.reload()
	if err != nil {
		c.log.Warn("config.reload_action_failed", wmlog.Fields{"err": err.Error()})
		return
	}
	c.applyConfigLocked(cfg)
}
