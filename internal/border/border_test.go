// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package border_test

import (
	"testing"

	"github.com/paneless-wm/paneless/internal/border"
	"github.com/paneless-wm/paneless/internal/geom"
	"github.com/paneless-wm/paneless/internal/wm/wmtest"
)

func TestUpdateDisabledIsNoOp(t *testing.T) {
	bridge := wmtest.NewFakeBridge()
	r := border.New(border.Config{Enabled: false, Width: 2}, bridge)

	if err := r.Update(1, geom.Frame{X: 0, Y: 0, W: 100, H: 100}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bridge.Frames) != 0 {
		t.Fatalf("expected no frame set while disabled, got %+v", bridge.Frames)
	}
}

func TestUpdateNoFocusedWindowIsNoOp(t *testing.T) {
	bridge := wmtest.NewFakeBridge()
	r := border.New(border.Config{Enabled: true, Width: 2}, bridge)

	if err := r.Update(0, geom.Frame{X: 0, Y: 0, W: 100, H: 100}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bridge.Frames) != 0 {
		t.Fatalf("expected no frame set for focusedID 0, got %+v", bridge.Frames)
	}
}

func TestUpdateOutsetsFrameByWidth(t *testing.T) {
	bridge := wmtest.NewFakeBridge()
	r := border.New(border.Config{Enabled: true, Width: 3}, bridge)

	if err := r.Update(42, geom.Frame{X: 10, Y: 10, W: 100, H: 50}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got geom.Frame
	for _, f := range bridge.Frames {
		got = f
	}
	want := geom.Frame{X: 7, Y: 7, W: 106, H: 56}
	if got != want {
		t.Fatalf("expected outset frame %+v, got %+v", want, got)
	}
}

func TestSetConfigAppliesToSubsequentUpdate(t *testing.T) {
	bridge := wmtest.NewFakeBridge()
	r := border.New(border.Config{Enabled: false}, bridge)
	r.SetConfig(border.Config{Enabled: true, Width: 1})

	if err := r.Update(1, geom.Frame{X: 0, Y: 0, W: 10, H: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bridge.Frames) != 1 {
		t.Fatalf("expected the reloaded config to enable the border overlay, got %+v", bridge.Frames)
	}
}
