// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package dimmer_test

import (
	"testing"

	"github.com/paneless-wm/paneless/internal/compositor"
	"github.com/paneless-wm/paneless/internal/dimmer"
	"github.com/paneless-wm/paneless/internal/wm/wmtest"
)

func TestApplyDimsEveryoneButFocused(t *testing.T) {
	bridge := wmtest.NewFakeBridge()
	d := dimmer.New(bridge, 0.5)

	tiled := []compositor.WindowID{1, 2, 3}
	d.Apply(tiled, 2)

	if bridge.Brightness[1] != -0.5 || bridge.Brightness[3] != -0.5 {
		t.Fatalf("expected non-focused windows dimmed by -0.5, got %+v", bridge.Brightness)
	}
	if _, dimmed := bridge.Brightness[2]; dimmed && bridge.Brightness[2] != 0 {
		t.Fatalf("expected focused window left undimmed, got %v", bridge.Brightness[2])
	}
}

func TestApplyZeroAmountDimsNothing(t *testing.T) {
	bridge := wmtest.NewFakeBridge()
	d := dimmer.New(bridge, 0)

	d.Apply([]compositor.WindowID{1, 2}, 1)

	if len(bridge.Brightness) != 0 {
		t.Fatalf("expected no brightness calls when amount is 0, got %+v", bridge.Brightness)
	}
}

func TestApplyRestoresWindowsThatLeaveTiled(t *testing.T) {
	bridge := wmtest.NewFakeBridge()
	d := dimmer.New(bridge, 0.3)

	d.Apply([]compositor.WindowID{1, 2, 3}, 1)
	d.Apply([]compositor.WindowID{1, 2}, 1)

	if bridge.Brightness[3] != 0 {
		t.Fatalf("expected window 3 restored to brightness 0 after leaving tiled, got %v", bridge.Brightness[3])
	}
	if bridge.Brightness[2] != -0.3 {
		t.Fatalf("expected window 2 to remain dimmed, got %v", bridge.Brightness[2])
	}
}

func TestClearRestoresEveryDimmedWindow(t *testing.T) {
	bridge := wmtest.NewFakeBridge()
	d := dimmer.New(bridge, 0.4)

	d.Apply([]compositor.WindowID{1, 2}, 0)
	d.Clear()

	if bridge.Brightness[1] != 0 || bridge.Brightness[2] != 0 {
		t.Fatalf("expected every window restored to brightness 0 after Clear, got %+v", bridge.Brightness)
	}
}

func TestSetAmountAffectsSubsequentApply(t *testing.T) {
	bridge := wmtest.NewFakeBridge()
	d := dimmer.New(bridge, 0.2)
	d.SetAmount(0.6)

	d.Apply([]compositor.WindowID{1}, 0)

	if bridge.Brightness[1] != -0.6 {
		t.Fatalf("expected updated amount to apply, got %v", bridge.Brightness[1])
	}
}
