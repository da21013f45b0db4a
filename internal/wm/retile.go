// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/wm/retile.go
// Summary: Retile and close semantics (spec §4.3 "Retile semantics",
// "Close semantics").

package wm

import (
	"github.com/paneless-wm/paneless/internal/compositor"
	"github.com/paneless-wm/paneless/internal/geom"
	"github.com/paneless-wm/paneless/internal/layout"
	"github.com/paneless-wm/paneless/internal/router"
	"github.com/paneless-wm/paneless/internal/wmlog"
)

// retileLocked computes target frames for the active workspace on monitor
// via the LayoutEngine and issues a batched frame set (spec §4.3 "Retile
// semantics"). It does not itself trigger popin — that's applied by the
// caller that just inserted a window (classify.go) via Animator.PopIn.
func (c *Core) retileLocked(monitor MonitorID) {
	n := c.store.Active(monitor)
	ws := c.store.Workspace(monitor, n)
	region := c.region(monitor)

	err := c.bridge.Batch(func() error {
		if c.rules.Scrolling {
			return c.retileScrollingLocked(ws, region)
		}
		return c.retileMasterStackLocked(ws, region)
	})
	if err != nil {
		c.log.Warn("retile.batch_failed", wmlog.Fields{"monitor": monitor, "err": err})
	}

	if c.border != nil && ws.Focused != 0 {
		if tw, ok := ws.Tracked[ws.Focused]; ok {
			if err := c.border.Update(compositor.WindowID(ws.Focused), tw.LastFrame); err != nil {
				c.log.Warn("retile.border_update_failed", wmlog.Fields{"err": err})
			}
		}
	}
	if c.dimmer != nil {
		c.dimmer.Apply(ws.Tiled, ws.Focused)
	}
}

func (c *Core) retileMasterStackLocked(ws *VirtualWorkspace, region geom.Region) error {
	frames := layout.MasterStackFrames(region, len(ws.Tiled), c.rules.InnerGap, c.rules.SingleWindowPad, ws.SplitRatio, ws.LayoutVariant)
	for i, id := range ws.Tiled {
		if err := c.applyFrameLocked(ws, id, frames[i]); err != nil {
			return err
		}
	}
	return nil
}

func (c *Core) retileScrollingLocked(ws *VirtualWorkspace, region geom.Region) error {
	results := layout.ScrollingFrames(region, ws.columnSpecs(), ws.ActiveColumnIndex, c.rules.NiriColumnWidth, c.rules.InnerGap)
	for _, col := range results {
		for _, wf := range col.Windows {
			if err := c.applyFrameLocked(ws, wf.ID, wf.Frame); err != nil {
				return err
			}
			alpha := 0
			if col.Visible {
				alpha = 1
			}
			if err := wrapBridge(c.bridge.SetAlpha(wf.ID, float32(alpha))); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Core) applyFrameLocked(ws *VirtualWorkspace, id WindowID, frame geom.Frame) error {
	if tw, ok := ws.Tracked[id]; ok {
		tw.LastFrame = frame
	}
	return wrapBridge(c.bridge.SetFrame(id, frame))
}

// closeFocusedLocked implements spec §4.3 "Close semantics": compute the
// post-removal frames for survivors, animate the target's popout
// concurrently with the survivors' batched frame set, and invoke the
// compositor close action on animation completion.
func (c *Core) closeFocusedLocked(monitor MonitorID) {
	n := c.store.Active(monitor)
	ws := c.store.Workspace(monitor, n)
	target := ws.Focused
	if target == 0 {
		return
	}
	c.closeWindowLocked(monitor, ws, target)
}

func (c *Core) closeWindowLocked(monitor MonitorID, ws *VirtualWorkspace, target WindowID) {
	if c.closeInFlight[target] {
		return
	}
	c.closeInFlight[target] = true

	survivors := removeID(append([]WindowID(nil), ws.Tiled...), target)
	region := c.region(monitor)

	if c.rules.Scrolling {
		ws.removeFromColumns(target)
	} else {
		frames := layout.MasterStackFrames(region, len(survivors), c.rules.InnerGap, c.rules.SingleWindowPad, ws.SplitRatio, ws.LayoutVariant)
		for i, id := range survivors {
			if err := c.applyFrameLocked(ws, id, frames[i]); err != nil {
				c.log.Warn("close.redistribute_failed", wmlog.Fields{"window": id, "err": err})
			}
		}
	}

	c.anim.PopOut(target, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.closeInFlight, target)
		if err := c.bridge.PerformCloseAction(target); err != nil {
			c.log.Warn("close.perform_action_failed", wmlog.Fields{"window": target, "err": err})
			return
		}
		// If the window survives (e.g. an unsaved-changes prompt), the
		// observer will not report a destroy; make it visible again.
		if _, stillTracked := ws.Tracked[target]; stillTracked {
			if err := wrapBridge(c.bridge.SetAlpha(target, 1)); err != nil {
				c.log.Warn("close.restore_alpha_failed", wmlog.Fields{"window": target, "err": err})
			}
		}
	})
}

func (c *Core) adjustGapLocked(monitor MonitorID, delta int) {
	next := c.rules.InnerGap + delta
	if next < 0 {
		next = 0
	}
	c.rules.InnerGap = next
	c.retileLocked(monitor)
}

func (c *Core) adjustSplitLocked(monitor MonitorID, delta float64) {
	ws := c.store.Workspace(monitor, c.store.Active(monitor))
	ws.SplitRatio = ClampSplitRatio(ws.SplitRatio + delta)
	c.retileLocked(monitor)
}

func (c *Core) cycleLayoutLocked(monitor MonitorID) {
	ws := c.store.Workspace(monitor, c.store.Active(monitor))
	ws.LayoutVariant = ws.LayoutVariant.Cycle()
	c.retileLocked(monitor)
}

func (c *Core) swapMasterLocked(monitor MonitorID) {
	ws := c.store.Workspace(monitor, c.store.Active(monitor))
	if ws.Focused == 0 {
		return
	}
	ws.Tiled = layout.SwapWithFirst(ws.Tiled, ws.Focused)
	c.retileLocked(monitor)
}

func (c *Core) rotateLocked(monitor MonitorID, dir int) {
	ws := c.store.Workspace(monitor, c.store.Active(monitor))
	if dir >= 0 {
		ws.Tiled = layout.RotateNext(ws.Tiled)
	} else {
		ws.Tiled = layout.RotatePrev(ws.Tiled)
	}
	c.retileLocked(monitor)
}

func (c *Core) positionFocusedLocked(monitor MonitorID, kind router.ActionKind) {
	ws := c.store.Workspace(monitor, c.store.Active(monitor))
	if ws.Focused == 0 {
		return
	}
	switch kind {
	case router.PositionLeft, router.PositionUp:
		ws.Tiled = layout.MovePosition(ws.Tiled, ws.Focused, layout.First)
	case router.PositionRight, router.PositionDown:
		ws.Tiled = layout.MovePosition(ws.Tiled, ws.Focused, layout.Last)
	case router.PositionFill, router.PositionCenter:
		// Fill/center are floating-window placements (spec §6); for a
		// tiled focused window there is no tiled position to change.
	}
	c.retileLocked(monitor)
}

func (c *Core) toggleFloatLocked(monitor MonitorID) {
	n := c.store.Active(monitor)
	ws := c.store.Workspace(monitor, n)
	id := ws.Focused
	if id == 0 {
		return
	}
	if ws.Floating[id] {
		delete(ws.Floating, id)
		ws.Tiled = append(ws.Tiled, id)
		if tw, ok := ws.Tracked[id]; ok {
			tw.IsFloating = false
		}
	} else {
		ws.Tiled = removeID(ws.Tiled, id)
		ws.Floating[id] = true
		if tw, ok := ws.Tracked[id]; ok {
			tw.IsFloating = true
		}
	}
	c.retileLocked(monitor)
}

func (c *Core) toggleFullscreenLocked(monitor MonitorID) {
	n := c.store.Active(monitor)
	ws := c.store.Workspace(monitor, n)
	id := ws.Focused
	if id == 0 {
		return
	}
	if ws.Fullscreen[id] {
		delete(ws.Fullscreen, id)
		c.retileLocked(monitor)
		return
	}
	ws.Fullscreen[id] = true
	if err := c.applyFrameLocked(ws, id, c.region(monitor)); err != nil {
		c.log.Warn("fullscreen.apply_failed", wmlog.Fields{"window": id, "err": err})
	}
}
