// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/wm/workspace.go
// Summary: switch_workspace and move_to_workspace (spec §4.3).

package wm

import "github.com/paneless-wm/paneless/internal/wmlog"

// switchWorkspaceLocked implements the 10-step sequence from spec §4.3
// "Workspace switch switch_workspace(n) on monitor M".
func (c *Core) switchWorkspaceLocked(monitor MonitorID, n WorkspaceNumber) {
	if !ValidWorkspace(int(n)) {
		return
	}
	active := c.store.Active(monitor)
	if n == active {
		return
	}

	if c.obs != nil {
		c.obs.Pause()
	}
	if c.dimmer != nil {
		c.dimmer.Clear()
	}

	from := c.store.Workspace(monitor, active)
	savedFocused := from.Focused
	region := c.region(monitor)

	hidden := hiddenFrame(region)
	if err := c.bridge.Batch(func() error {
		for id := range from.Tracked {
			if c.sticky[id] {
				continue
			}
			if err := wrapBridge(c.bridge.SetFrame(id, hidden)); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		c.log.Warn("workspace.hide_batch_failed", wmlog.Fields{"err": err})
	}

	c.store.SetActive(monitor, n)
	to := c.store.Workspace(monitor, n)
	c.carryStickyLocked(monitor, from, to)

	c.retileLocked(monitor)
	for id, tw := range to.Tracked {
		if to.Floating[id] || to.Fullscreen[id] {
			if err := wrapBridge(c.bridge.SetFrame(id, tw.LastFrame)); err != nil {
				c.log.Warn("workspace.restore_floating_failed", wmlog.Fields{"window": id, "err": err})
			}
		}
	}

	switch {
	case to.IsEmpty():
		// Nothing to focus on the new workspace; leave focus alone so the
		// OS doesn't keep an unrelated app activated (spec §4.3 step 9
		// talks about a desktop/file-manager app, which is an external
		// app identity this module doesn't own — the safest in-scope
		// behavior is to not fight the OS's own choice here).
	case savedFocused != 0 && to.Tracked[savedFocused] != nil:
		c.focusLocked(monitor, n, savedFocused)
	case len(to.Tiled) > 0:
		c.focusLocked(monitor, n, to.Tiled[0])
	}

	if c.obs != nil {
		c.obs.Resume()
	}
}

// carryStickyLocked merges sticky windows from a previous workspace into
// the destination's Tracked/Tiled view (spec §4.3 step 7: "merge sticky
// windows from the previous workspace back in — they belong logically to
// both").
func (c *Core) carryStickyLocked(monitor MonitorID, from, to *VirtualWorkspace) {
	for id := range from.Tracked {
		if !c.sticky[id] || c.stickyHome[id] != monitor {
			continue
		}
		if _, already := to.Tracked[id]; already {
			continue
		}
		to.Tracked[id] = from.Tracked[id]
		if from.Floating[id] {
			to.Floating[id] = true
		} else {
			to.Tiled = append(to.Tiled, id)
		}
	}
}

// moveToWorkspaceLocked implements spec §4.3 "Move-window-to-workspace":
// symmetric to switch for a single window. Forbidden for sticky windows.
func (c *Core) moveToWorkspaceLocked(monitor MonitorID, n WorkspaceNumber) {
	if !ValidWorkspace(int(n)) {
		return
	}
	active := c.store.Active(monitor)
	if n == active {
		return
	}
	from := c.store.Workspace(monitor, active)
	id := from.Focused
	if id == 0 || c.sticky[id] {
		return
	}
	tw, ok := from.Tracked[id]
	if !ok {
		return
	}

	wasFloating := from.Floating[id]
	wasFullscreen := from.Fullscreen[id]
	delete(from.Floating, id)
	delete(from.Fullscreen, id)
	if c.rules.Scrolling {
		from.removeFromColumns(id)
	} else {
		from.Tiled = removeID(from.Tiled, id)
	}
	delete(from.Tracked, id)
	if from.Focused == id {
		from.Focused = 0
		if len(from.Tiled) > 0 {
			from.Focused = from.Tiled[0]
		}
	}

	if err := wrapBridge(c.bridge.SetFrame(id, hiddenFrame(c.region(monitor)))); err != nil {
		c.log.Warn("move_to_workspace.hide_failed", wmlog.Fields{"window": id, "err": err})
	}

	to := c.store.Workspace(monitor, n)
	to.Tracked[id] = tw
	switch {
	case wasFullscreen:
		to.Fullscreen[id] = true
	case wasFloating:
		to.Floating[id] = true
	default:
		to.Tiled = append(to.Tiled, id)
	}

	c.retileLocked(monitor)
}

// moveToMonitorLocked implements `move_to_monitor {left,right}` (spec §6):
// move the focused window from the current monitor's active workspace to
// the neighbor monitor's active workspace, following it with focus.
func (c *Core) moveToMonitorLocked(from MonitorID, step int) {
	idx := c.monitorIndexLocked(from)
	if idx < 0 {
		return
	}
	next := idx + step
	if next < 0 || next >= len(c.monitorOrder) {
		return
	}
	target := c.monitorOrder[next]
	if target == from {
		return
	}

	activeN := c.store.Active(from)
	src := c.store.Workspace(from, activeN)
	id := src.Focused
	if id == 0 || c.sticky[id] {
		return
	}
	tw, ok := src.Tracked[id]
	if !ok {
		return
	}

	wasFloating := src.Floating[id]
	wasFullscreen := src.Fullscreen[id]
	delete(src.Floating, id)
	delete(src.Fullscreen, id)
	if c.rules.Scrolling {
		src.removeFromColumns(id)
	} else {
		src.Tiled = removeID(src.Tiled, id)
	}
	delete(src.Tracked, id)
	if src.Focused == id {
		src.Focused = 0
		if len(src.Tiled) > 0 {
			src.Focused = src.Tiled[0]
		}
	}
	c.retileLocked(from)

	targetN := c.store.Active(target)
	dst := c.store.Workspace(target, targetN)
	dst.Tracked[id] = tw
	switch {
	case wasFullscreen:
		dst.Fullscreen[id] = true
	case wasFloating:
		dst.Floating[id] = true
	default:
		dst.Tiled = append(dst.Tiled, id)
	}

	c.currentMonitor = target
	c.retileLocked(target)
	c.focusLocked(target, targetN, id)
}
