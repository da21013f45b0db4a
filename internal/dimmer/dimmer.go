// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/dimmer/dimmer.go
// Summary: Dimmer collaborator (spec §4.6) — brightness offset on
// non-focused tiled windows of the active workspace.

package dimmer

import "github.com/paneless-wm/paneless/internal/compositor"

// Dimmer applies an additive brightness offset to every tiled
// non-focused window on the active workspace (spec §4.6). Values must be
// reset to 0 on teardown and on a config reload with dim = 0.
type Dimmer struct {
	bridge bridge
	amount float32
	dimmed map[compositor.WindowID]bool
}

// bridge is the narrow slice of compositor.Bridge the Dimmer needs.
type bridge interface {
	SetBrightness(id compositor.WindowID, offset float32) error
}

// New constructs a Dimmer applying -amount brightness to unfocused tiled
// windows (amount should be in [0,1]; negative means darker, per spec).
func New(b bridge, amount float32) *Dimmer {
	return &Dimmer{bridge: b, amount: amount, dimmed: make(map[compositor.WindowID]bool)}
}

// Apply dims every id in tiled except focused, and clears brightness on
// anything previously dimmed that is no longer in tiled or is now
// focused.
func (d *Dimmer) Apply(tiled []compositor.WindowID, focused compositor.WindowID) {
	want := make(map[compositor.WindowID]bool, len(tiled))
	if d.amount > 0 {
		for _, id := range tiled {
			if id != focused {
				want[id] = true
			}
		}
	}

	for id := range d.dimmed {
		if !want[id] {
			d.bridge.SetBrightness(id, 0)
		}
	}
	for id := range want {
		d.bridge.SetBrightness(id, -d.amount)
	}
	d.dimmed = want
}

// Clear resets every currently dimmed window to brightness 0 — used on
// teardown and when config reload sets dim_unfocused to 0 (spec §4.6).
func (d *Dimmer) Clear() {
	for id := range d.dimmed {
		d.bridge.SetBrightness(id, 0)
	}
	d.dimmed = make(map[compositor.WindowID]bool)
}

// SetAmount updates the dim amount used by subsequent Apply calls.
func (d *Dimmer) SetAmount(amount float32) {
	d.amount = amount
}
