// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/wm/focus.go
// Summary: Directional focus, focus cycling, focus-follows-app and
// focus-follows-mouse (spec §4.3).

package wm

import (
	"time"

	"github.com/paneless-wm/paneless/internal/compositor"
	"github.com/paneless-wm/paneless/internal/geom"
	"github.com/paneless-wm/paneless/internal/layout"
	"github.com/paneless-wm/paneless/internal/observer"
	"github.com/paneless-wm/paneless/internal/wmlog"
)

// focusLocked moves focus to id on monitor/workspace n, asking the bridge
// to focus without activating the owning app's native space (spec §2).
func (c *Core) focusLocked(monitor MonitorID, n WorkspaceNumber, id WindowID) {
	ws := c.store.Workspace(monitor, n)
	if _, ok := ws.Tracked[id]; !ok {
		return
	}
	ws.Focused = id
	if err := wrapBridge(c.bridge.FocusWithoutActivating(id)); err != nil {
		c.log.Warn("focus.bridge_failed", wmlog.Fields{"window": id, "err": err})
	}
	if c.border != nil {
		if tw := ws.Tracked[id]; tw != nil {
			if err := c.border.Update(compositor.WindowID(id), tw.LastFrame); err != nil {
				c.log.Warn("focus.border_update_failed", wmlog.Fields{"err": err})
			}
		}
	}
	if c.dimmer != nil {
		c.dimmer.Apply(ws.Tiled, ws.Focused)
	}
}

// focusHorizontalLocked routes a left/right focus binding to column
// scrolling in Niri mode (spec §4.3 "Scroll to column") or to the
// master-stack neighbor search otherwise.
func (c *Core) focusHorizontalLocked(monitor MonitorID, colStep int, dir layout.Direction) {
	if c.rules.Scrolling {
		ws := c.store.Workspace(monitor, c.store.Active(monitor))
		c.scrollToColumnLocked(monitor, ws.ActiveColumnIndex+colStep)
		return
	}
	c.focusDirectionLocked(monitor, dir)
}

// focusVerticalLocked routes an up/down focus binding to in-column
// vertical focus in Niri mode (spec §4.3 "Vertical focus") or to the
// master-stack neighbor search otherwise.
func (c *Core) focusVerticalLocked(monitor MonitorID, rowStep int, dir layout.Direction) {
	if c.rules.Scrolling {
		c.verticalFocusLocked(monitor, rowStep)
		return
	}
	c.focusDirectionLocked(monitor, dir)
}

// focusDirectionLocked performs the neighbor search from spec §4.1 over
// the active workspace's current tile frames.
func (c *Core) focusDirectionLocked(monitor MonitorID, dir layout.Direction) {
	n := c.store.Active(monitor)
	ws := c.store.Workspace(monitor, n)
	if ws.Focused == 0 {
		return
	}
	fromFrame, ok := c.frameOf(ws, ws.Focused)
	if !ok {
		return
	}
	fromX, fromY := fromFrame.Center()

	var candidates []layout.Candidate[WindowID]
	for _, id := range ws.Tiled {
		if id == ws.Focused {
			continue
		}
		if frame, ok := c.frameOf(ws, id); ok {
			candidates = append(candidates, layout.Candidate[WindowID]{ID: id, Frame: frame})
		}
	}

	best, found := layout.FindNeighbor(fromX, fromY, dir, candidates, func(a, b WindowID) bool { return a < b })
	if !found {
		return
	}
	c.focusLocked(monitor, n, best.ID)
}

func (c *Core) frameOf(ws *VirtualWorkspace, id WindowID) (f geom.Frame, ok bool) {
	tw, ok := ws.Tracked[id]
	if !ok {
		return geom.Frame{}, false
	}
	return tw.LastFrame, true
}

// focusCycleLocked moves focus to the next/previous window in tiled order
// (FocusNext/FocusPrev bindings).
func (c *Core) focusCycleLocked(monitor MonitorID, step int) {
	n := c.store.Active(monitor)
	ws := c.store.Workspace(monitor, n)
	if len(ws.Tiled) == 0 {
		return
	}
	idx := 0
	for i, id := range ws.Tiled {
		if id == ws.Focused {
			idx = i
			break
		}
	}
	next := (idx + step + len(ws.Tiled)) % len(ws.Tiled)
	c.focusLocked(monitor, n, ws.Tiled[next])
}

// onAppActivatedLocked implements focus-follows-app (spec §4.3): if the
// activated app has no window on the active (non-empty) workspace and
// we're not already mid-auto-switch, search other workspaces on the same
// monitor for one of its windows and switch to it.
func (c *Core) onAppActivatedLocked(ev observer.Event) {
	if !c.rules.FocusFollowsApp || c.inAutoSwitch {
		return
	}
	monitor := c.activeMonitorLocked()
	active := c.store.Active(monitor)
	ws := c.store.Workspace(monitor, active)
	if ws.IsEmpty() {
		return
	}
	for _, tw := range ws.Tracked {
		if tw.OwnerPID == ev.OwnerPID {
			return
		}
	}

	for _, n := range c.store.WorkspacesWithWindows(monitor) {
		if n == active {
			continue
		}
		other := c.store.Workspace(monitor, n)
		for _, tw := range other.Tracked {
			if tw.OwnerPID == ev.OwnerPID {
				c.inAutoSwitch = true
				c.switchWorkspaceLocked(monitor, n)
				c.inAutoSwitch = false
				return
			}
		}
	}
}

// focusMonitorLocked implements the `focus_monitor {left,right}` binding
// (spec §6): move the active-monitor pointer by step through
// monitorOrder, clamped at the ends, and focus that monitor's active
// workspace's saved or first tiled window.
func (c *Core) focusMonitorLocked(from MonitorID, step int) {
	idx := c.monitorIndexLocked(from)
	if idx < 0 {
		return
	}
	next := idx + step
	if next < 0 || next >= len(c.monitorOrder) {
		return
	}
	target := c.monitorOrder[next]
	c.currentMonitor = target

	n := c.store.Active(target)
	ws := c.store.Workspace(target, n)
	switch {
	case ws.Focused != 0 && ws.Tracked[ws.Focused] != nil:
		c.focusLocked(target, n, ws.Focused)
	case len(ws.Tiled) > 0:
		c.focusLocked(target, n, ws.Tiled[0])
	}
}

// mouseFocusThrottle is the 10Hz cap spec §4.3 names for
// focus-follows-mouse.
const mouseFocusThrottle = 100 * time.Millisecond

// OnMouseMove implements focus-follows-mouse (spec §4.3): throttled to
// 10Hz, focuses the tiled window whose current frame contains (x, y) if
// it differs from the currently focused window.
func (c *Core) OnMouseMove(x, y int, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.rules.FocusFollowsMouse {
		return
	}
	if !c.lastMouseFocusAt.IsZero() && now.Sub(c.lastMouseFocusAt) < mouseFocusThrottle {
		return
	}
	c.lastMouseFocusAt = now

	monitor := c.activeMonitorLocked()
	n := c.store.Active(monitor)
	ws := c.store.Workspace(monitor, n)
	for _, id := range ws.Tiled {
		tw, ok := ws.Tracked[id]
		if !ok {
			continue
		}
		if tw.LastFrame.Contains(x, y) && id != ws.Focused {
			c.focusLocked(monitor, n, id)
			return
		}
	}
}
