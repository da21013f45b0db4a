// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/wm/scrolling.go
// Summary: Scrolling-mode specifics (spec §4.3): scroll-to-column,
// vertical focus, consume, expel.

package wm

import (
	"github.com/paneless-wm/paneless/internal/geom"
	"github.com/paneless-wm/paneless/internal/wmlog"
)

// scrollToColumnLocked updates active_column_index, recomputes frames, and
// restores/hides alpha for the columns that changed visibility (spec
// §4.3 "Scroll to column"). The Animator is not involved here (per spec
// §4.1's note that popin/popout is scoped to create/close; inter-column
// scrolling is a plain retile).
func (c *Core) scrollToColumnLocked(monitor MonitorID, index int) {
	n := c.store.Active(monitor)
	ws := c.store.Workspace(monitor, n)
	if index < 0 || index >= len(ws.ScrollingColumns) {
		return
	}
	ws.ActiveColumnIndex = index
	if col := ws.ScrollingColumns[index]; len(col.Windows) > 0 {
		ws.Focused = col.Windows[col.FocusedRowIndex]
	}
	c.retileLocked(monitor)
}

// verticalFocusLocked moves focused_row_index within the active column by
// step, clamped, and refocuses (spec §4.3 "Vertical focus").
func (c *Core) verticalFocusLocked(monitor MonitorID, step int) {
	n := c.store.Active(monitor)
	ws := c.store.Workspace(monitor, n)
	if ws.ActiveColumnIndex >= len(ws.ScrollingColumns) {
		return
	}
	col := &ws.ScrollingColumns[ws.ActiveColumnIndex]
	if len(col.Windows) == 0 {
		return
	}
	next := col.FocusedRowIndex + step
	if next < 0 {
		next = 0
	}
	if next >= len(col.Windows) {
		next = len(col.Windows) - 1
	}
	col.FocusedRowIndex = next
	c.focusLocked(monitor, n, col.Windows[next])
}

// consumeLocked implements spec §4.3 "Consume (C_a -> C_{a+1})": take the
// first window of the column to the right, append to the active column,
// removing the donor column if it becomes empty, and focus the consumed
// window.
func (c *Core) consumeLocked(monitor MonitorID) {
	n := c.store.Active(monitor)
	ws := c.store.Workspace(monitor, n)
	a := ws.ActiveColumnIndex
	if a < 0 || a+1 >= len(ws.ScrollingColumns) {
		return
	}
	donor := &ws.ScrollingColumns[a+1]
	if len(donor.Windows) == 0 {
		return
	}
	taken := donor.Windows[0]
	donor.Windows = donor.Windows[1:]

	active := &ws.ScrollingColumns[a]
	active.Windows = append(active.Windows, taken)

	if len(donor.Windows) == 0 {
		ws.ScrollingColumns = append(ws.ScrollingColumns[:a+1], ws.ScrollingColumns[a+2:]...)
	}
	ws.syncTiledFromColumns()
	ws.Focused = taken
	c.retileLocked(monitor)
}

// expelLocked implements spec §4.3 "Expel": remove the focused window from
// its multi-window active column, insert it as a new single-window column
// immediately to the right, and make it the new active column.
func (c *Core) expelLocked(monitor MonitorID) {
	n := c.store.Active(monitor)
	ws := c.store.Workspace(monitor, n)
	a := ws.ActiveColumnIndex
	if a < 0 || a >= len(ws.ScrollingColumns) {
		return
	}
	active := &ws.ScrollingColumns[a]
	if len(active.Windows) < 2 {
		return
	}

	id := ws.Focused
	idx := -1
	for i, wid := range active.Windows {
		if wid == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	active.Windows = append(active.Windows[:idx], active.Windows[idx+1:]...)
	if active.FocusedRowIndex >= len(active.Windows) {
		active.FocusedRowIndex = len(active.Windows) - 1
	}

	newCol := Column{Windows: []WindowID{id}}
	insertAt := a + 1
	ws.ScrollingColumns = append(ws.ScrollingColumns, Column{})
	copy(ws.ScrollingColumns[insertAt+1:], ws.ScrollingColumns[insertAt:])
	ws.ScrollingColumns[insertAt] = newCol
	ws.ActiveColumnIndex = insertAt

	ws.syncTiledFromColumns()
	c.retileLocked(monitor)
}

func (c *Core) setMarkLocked(monitor MonitorID, key string) {
	n := c.store.Active(monitor)
	ws := c.store.Workspace(monitor, n)
	if ws.Focused == 0 {
		return
	}
	c.marks[key] = ws.Focused
}

// jumpMarkLocked implements spec §4.3 "Marks": focus the marked window if
// it's on the active workspace, otherwise switch to its workspace first.
// A stale mark (window no longer known) is removed.
func (c *Core) jumpMarkLocked(key string) {
	id, ok := c.marks[key]
	if !ok {
		return
	}
	monitor, n, ok := c.store.FindWorkspaceOf(id)
	if !ok {
		delete(c.marks, key)
		return
	}
	if n != c.store.Active(monitor) {
		c.switchWorkspaceLocked(monitor, n)
	}
	c.focusLocked(monitor, n, id)
}

// toggleMinimizeLocked implements spec §4.3 "Minimize": hides the
// focused window off-screen and drops it from tiled, or restores a
// previously minimized window to a half-size frame in the upper-left
// quadrant of the tiling region.
func (c *Core) toggleMinimizeLocked(monitor MonitorID) {
	n := c.store.Active(monitor)
	ws := c.store.Workspace(monitor, n)
	id := ws.Focused
	if id == 0 {
		return
	}
	if ws.minimized == nil {
		ws.minimized = make(map[WindowID]bool)
	}
	if ws.minimized[id] {
		c.restoreMinimizedLocked(monitor, ws, id)
		return
	}

	ws.minimized[id] = true
	wasFloating := ws.Floating[id]
	if !wasFloating {
		if c.rules.Scrolling {
			ws.removeFromColumns(id)
		} else {
			ws.Tiled = removeID(ws.Tiled, id)
		}
	}
	if err := wrapBridge(c.bridge.SetFrame(id, hiddenFrame(c.region(monitor)))); err != nil {
		c.log.Warn("minimize.hide_failed", wmlog.Fields{"window": id, "err": err})
	}
	if c.dimmer != nil {
		c.dimmer.Apply(ws.Tiled, 0)
	}
	ws.Focused = 0
	if len(ws.Tiled) > 0 {
		c.focusLocked(monitor, n, ws.Tiled[0])
	}
	c.retileLocked(monitor)
}

// restoreMinimizedLocked places id at the default restore frame from spec
// §4.3 "Minimize" (the region's upper-left quadrant, half its size),
// reinserts it as tiled unless it's a floating window, and focuses it.
func (c *Core) restoreMinimizedLocked(monitor MonitorID, ws *VirtualWorkspace, id WindowID) {
	delete(ws.minimized, id)
	region := c.region(monitor)
	restore := geom.Frame{X: region.X, Y: region.Y, W: region.W / 2, H: region.H / 2}

	if !ws.Floating[id] {
		ws.Tiled = append(ws.Tiled, id)
	}
	if err := wrapBridge(c.bridge.SetFrame(id, restore)); err != nil {
		c.log.Warn("minimize.restore_failed", wmlog.Fields{"window": id, "err": err})
	}
	if tw, ok := ws.Tracked[id]; ok {
		tw.LastFrame = restore
	}
	activeN := c.store.Active(monitor)
	c.focusLocked(monitor, activeN, id)
	c.retileLocked(monitor)
}
