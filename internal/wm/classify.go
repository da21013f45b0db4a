// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/wm/classify.go
// Summary: Window-creation classification (spec §4.3 "Classification on
// window creation") and destroy/terminate handling.

package wm

import (
	"github.com/paneless-wm/paneless/internal/geom"
	"github.com/paneless-wm/paneless/internal/observer"
	"github.com/paneless-wm/paneless/internal/wmlog"
)

// onCreateLocked implements the six-step classification spec §4.3 lists,
// in order: exclude, float, sticky, home workspace, swallow attempt, then
// tiled insertion.
func (c *Core) onCreateLocked(ev observer.Event) {
	if matchesAny(c.rules.Exclude, ev.AppName, ev.BundleID) {
		if err := wrapBridge(c.bridge.SetAlpha(ev.WindowID, 1)); err != nil {
			c.log.Warn("classify.exclude.restore_alpha_failed", wmlog.Fields{"window": ev.WindowID, "err": err})
		}
		return
	}

	monitor := c.primaryMonitor()
	tw := &TrackedWindow{ID: ev.WindowID, OwnerPID: ev.OwnerPID, AppName: ev.AppName, BundleID: ev.BundleID, Title: ev.Title}

	floating := c.decideFloat(monitor, ev)
	tw.IsFloating = floating

	if matchesAny(c.rules.Sticky, ev.AppName, ev.BundleID) {
		c.sticky[ev.WindowID] = true
		c.stickyHome[ev.WindowID] = monitor
	}

	target := c.store.Active(monitor)
	nonHome := false
	if rule, ok := c.rules.AppRules[ev.AppName]; ok && rule.Kind == AppRuleWorkspace && rule.Workspace != target {
		target = rule.Workspace
		nonHome = true
	}
	ws := c.store.Workspace(monitor, target)
	ws.Tracked[ev.WindowID] = tw

	if nonHome {
		// Insert hidden, off-screen; the user is not looking at this
		// workspace right now (spec §4.3 step 4).
		if floating {
			ws.Floating[ev.WindowID] = true
		} else {
			ws.Tiled = append(ws.Tiled, ev.WindowID)
		}
		if err := wrapBridge(c.bridge.SetFrame(ev.WindowID, hiddenFrame(c.region(monitor)))); err != nil {
			c.log.Warn("classify.hide_nonhome_failed", wmlog.Fields{"window": ev.WindowID, "err": err})
		}
		return
	}

	if floating {
		ws.Floating[ev.WindowID] = true
		c.focusLocked(monitor, target, ev.WindowID)
		return
	}

	if c.trySwallowLocked(monitor, ws, tw) {
		return
	}

	c.insertTiledLocked(monitor, ws, ev.WindowID, ev.AppName)
	c.retileLocked(monitor)
}

// decideFloat applies spec §4.3 step 2's (a)/(b)/(c) cascade. (b) and (c)
// depend on live subrole/title/size queries this headless Core does not
// make: (b) is not applied, and (c) is approximated by the tiled-sibling
// check below, which runs only when auto_float_dialogs is enabled.
func (c *Core) decideFloat(monitor MonitorID, ev observer.Event) bool {
	if matchesAny(c.rules.Float, ev.AppName, ev.BundleID) {
		return true
	}
	if !c.rules.AutoFloatDialogs {
		return false
	}
	ws := c.store.Workspace(monitor, c.store.Active(monitor))
	for _, id := range ws.Tiled {
		if tw, ok := ws.Tracked[id]; ok && tw.AppName == ev.AppName {
			// Owning app already has a tiled window on this workspace
			// (spec §4.3 step 2c); without a live title/size probe at
			// classification time, a second window from the same app is
			// treated as a secondary (dialog-like) window and floated.
			return true
		}
	}
	return false
}

// insertTiledLocked inserts id into tiled after the focused window (or at
// the end), applies any left/right app-layout rule, and hides it at
// alpha 0 pending the popin retile (spec §4.3 step 6).
func (c *Core) insertTiledLocked(monitor MonitorID, ws *VirtualWorkspace, id WindowID, appName string) {
	if c.rules.Scrolling {
		col := Column{Windows: []WindowID{id}}
		insertIdx := ws.ActiveColumnIndex + 1
		if insertIdx > len(ws.ScrollingColumns) {
			insertIdx = len(ws.ScrollingColumns)
		}
		ws.ScrollingColumns = append(ws.ScrollingColumns, Column{})
		copy(ws.ScrollingColumns[insertIdx+1:], ws.ScrollingColumns[insertIdx:])
		ws.ScrollingColumns[insertIdx] = col
		ws.ActiveColumnIndex = insertIdx
		ws.syncTiledFromColumns()
	} else {
		idx := len(ws.Tiled)
		for i, wid := range ws.Tiled {
			if wid == ws.Focused {
				idx = i + 1
				break
			}
		}
		out := append([]WindowID(nil), ws.Tiled[:idx]...)
		out = append(out, id)
		out = append(out, ws.Tiled[idx:]...)
		ws.Tiled = out
	}

	if rule, ok := c.rules.AppRules[appName]; ok {
		switch rule.Kind {
		case AppRuleLeft:
			ws.Tiled = moveToFront(ws.Tiled, id)
		case AppRuleRight:
			ws.Tiled = moveToBack(ws.Tiled, id)
		}
	}

	ws.Focused = id
	if err := wrapBridge(c.bridge.SetAlpha(id, 0)); err != nil {
		c.log.Warn("classify.hide_new_failed", wmlog.Fields{"window": id, "err": err})
	}
	c.anim.PopIn(id)
}

func moveToFront(tiled []WindowID, w WindowID) []WindowID {
	idx := -1
	for i, id := range tiled {
		if id == w {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return tiled
	}
	out := append([]WindowID{w}, append(tiled[:idx], tiled[idx+1:]...)...)
	return out
}

func moveToBack(tiled []WindowID, w WindowID) []WindowID {
	idx := -1
	for i, id := range tiled {
		if id == w {
			idx = i
			break
		}
	}
	if idx < 0 || idx == len(tiled)-1 {
		return tiled
	}
	out := append(tiled[:idx], tiled[idx+1:]...)
	return append(out, w)
}

// onDestroyLocked removes id from wherever it's tracked, resolves swallow
// relations, updates focus, and retiles (spec §3 Lifecycle, §4.3).
func (c *Core) onDestroyLocked(id WindowID) {
	monitor, n, ok := c.store.FindWorkspaceOf(id)
	if !ok {
		return
	}
	ws := c.store.Workspace(monitor, n)
	tw, ok := ws.Tracked[id]
	if !ok {
		return
	}

	if tw.SwallowedFrom != 0 {
		c.unswallowLocked(monitor, ws, tw)
	}

	delete(ws.Floating, id)
	delete(ws.Fullscreen, id)
	if c.rules.Scrolling {
		ws.removeFromColumns(id)
	} else {
		ws.Tiled = removeID(ws.Tiled, id)
	}
	delete(ws.Tracked, id)
	delete(c.sticky, id)
	delete(c.stickyHome, id)
	for k, markedID := range c.marks {
		if markedID == id {
			delete(c.marks, k)
		}
	}

	if ws.Focused == id {
		ws.Focused = 0
		if len(ws.Tiled) > 0 {
			ws.Focused = ws.Tiled[0]
		}
	}

	if n == c.store.Active(monitor) {
		c.retileLocked(monitor)
	}
}

// onAppTerminatedLocked cascades destroy to every tracked window of pid
// (spec §3: "Terminate: app termination cascades destroy to every window
// of that pid").
func (c *Core) onAppTerminatedLocked(pid int) {
	var dead []WindowID
	for _, byNum := range c.store.PerMonitor {
		for _, ws := range byNum {
			for id, tw := range ws.Tracked {
				if tw.OwnerPID == pid {
					dead = append(dead, id)
				}
			}
		}
	}
	for _, id := range dead {
		c.onDestroyLocked(id)
	}
}

func removeID(ids []WindowID, target WindowID) []WindowID {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}

// hiddenFrame returns the off-screen hidden-position frame from spec §3
// invariant 6: the bottom-right corner, with 1 px left visible.
func hiddenFrame(region geom.Region) geom.Frame {
	return geom.Frame{
		X: region.X + region.W - 1,
		Y: region.Y + region.H - 1,
		W: 1,
		H: 1,
	}
}
