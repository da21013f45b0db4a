// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/border/border.go
// Summary: BorderRenderer collaborator (spec §4.5) — draws at most one
// focus-tracking overlay window.

package border

import "github.com/paneless-wm/paneless/internal/compositor"
import "github.com/paneless-wm/paneless/internal/geom"

// Config mirrors the [border] INI section from spec §6.
type Config struct {
	Enabled       bool
	Width         int
	Radius        int
	ActiveColor   string
	InactiveColor string
}

// Renderer draws a single overlay window tracking the focused window's
// frame, outset by Config.Width on every side. Config.Radius and the
// colors are stored but not passed to the bridge, whose SetFrame carries
// no corner radius or color, so the overlay has square corners.
// Disabled by default; a no-op when disabled (spec §4.5).
type Renderer struct {
	cfg    Config
	bridge compositor.Bridge
}

// New constructs a Renderer. bridge may be nil if cfg.Enabled is false.
func New(cfg Config, bridge compositor.Bridge) *Renderer {
	return &Renderer{cfg: cfg, bridge: bridge}
}

// Update repositions the border overlay to track focused's frame. A no-op
// when disabled or when there is no focused window (focusedID == 0).
func (r *Renderer) Update(focusedID compositor.WindowID, focusedFrame geom.Frame) error {
	if !r.cfg.Enabled || focusedID == 0 {
		return nil
	}
	outset := geom.Frame{
		X: focusedFrame.X - r.cfg.Width,
		Y: focusedFrame.Y - r.cfg.Width,
		W: focusedFrame.W + 2*r.cfg.Width,
		H: focusedFrame.H + 2*r.cfg.Width,
	}
	return r.bridge.SetFrame(borderOverlayID, outset)
}

// SetConfig applies a reloaded [border] section (spec §7 config reload).
func (r *Renderer) SetConfig(cfg Config) {
	r.cfg = cfg
}

// borderOverlayID is the single overlay window's identity; the renderer
// owns exactly one.
const borderOverlayID compositor.WindowID = 0xFFFFFFFF00000001
