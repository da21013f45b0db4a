// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/wm/swallow.go
// Summary: Swallow/unswallow (spec §4.3 step 5, spec §8 scenario 4).

package wm

import "github.com/paneless-wm/paneless/internal/wmlog"

// maxSwallowAncestry bounds the process-parent walk (spec §4.3: "up to 5
// levels").
const maxSwallowAncestry = 5

// ancestry resolves a process's parent-chain PIDs, out to maxSwallowAncestry
// levels. The process tree is an OS collaborator outside this module's
// scope (spec §1). When no resolver is set (e.g. tests, or a headless
// daemon before that integration is wired), Core.ancestry is nil and
// trySwallowLocked returns false, so swallow is a no-op.
type ancestryFunc func(pid int, levels int) []int

// trySwallowLocked implements spec §4.3 step 5: walk the new window's
// process-parent chain; if an ancestor owns a tiled window matching the
// swallow rule (or swallow_all), swap the terminal out for the new window
// at its former tiled index.
func (c *Core) trySwallowLocked(monitor MonitorID, ws *VirtualWorkspace, newWindow *TrackedWindow) bool {
	if c.ancestry == nil {
		return false
	}
	ancestors := c.ancestry(newWindow.OwnerPID, maxSwallowAncestry)
	if len(ancestors) == 0 {
		return false
	}

	for _, apid := range ancestors {
		for idx, id := range ws.Tiled {
			candidate, ok := ws.Tracked[id]
			if !ok || candidate.OwnerPID != apid || candidate.SwallowedBy != 0 {
				continue
			}
			if !c.rules.SwallowAll && !matchesAny(c.rules.Swallow, candidate.AppName, candidate.BundleID) {
				continue
			}

			candidate.SwallowedBy = newWindow.ID
			newWindow.SwallowedFrom = candidate.ID

			ws.Tiled[idx] = newWindow.ID
			if err := wrapBridge(c.bridge.SetAlpha(candidate.ID, 0)); err != nil {
				c.log.Warn("swallow.hide_terminal_failed", wmlog.Fields{"window": candidate.ID, "err": err})
			}
			if err := wrapBridge(c.bridge.SetFrame(candidate.ID, hiddenFrame(c.region(monitor)))); err != nil {
				c.log.Warn("swallow.hide_terminal_frame_failed", wmlog.Fields{"window": candidate.ID, "err": err})
			}

			ws.Focused = newWindow.ID
			if err := wrapBridge(c.bridge.SetAlpha(newWindow.ID, 0)); err != nil {
				c.log.Warn("swallow.hide_new_failed", wmlog.Fields{"window": newWindow.ID, "err": err})
			}
			c.anim.PopIn(newWindow.ID)
			c.retileLocked(monitor)
			return true
		}
	}
	return false
}

// unswallowLocked restores a terminal T that swallowed tw: T takes tw's
// former tiled index, both swallow links clear, T is focused (spec §4.3
// "Swallow and unswallow").
func (c *Core) unswallowLocked(monitor MonitorID, ws *VirtualWorkspace, tw *TrackedWindow) {
	terminal, ok := ws.Tracked[tw.SwallowedFrom]
	if !ok {
		tw.SwallowedFrom = 0
		return
	}

	for idx, id := range ws.Tiled {
		if id == tw.ID {
			ws.Tiled[idx] = terminal.ID
			break
		}
	}
	terminal.SwallowedBy = 0
	tw.SwallowedFrom = 0

	if err := wrapBridge(c.bridge.SetAlpha(terminal.ID, 1)); err != nil {
		c.log.Warn("unswallow.restore_alpha_failed", wmlog.Fields{"window": terminal.ID, "err": err})
	}
	ws.Focused = terminal.ID
	c.retileLocked(monitor)
}
