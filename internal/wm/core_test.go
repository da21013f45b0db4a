// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package wm_test

import (
	"testing"

	"github.com/paneless-wm/paneless/internal/animator"
	"github.com/paneless-wm/paneless/internal/border"
	"github.com/paneless-wm/paneless/internal/compositor"
	"github.com/paneless-wm/paneless/internal/config"
	"github.com/paneless-wm/paneless/internal/dimmer"
	"github.com/paneless-wm/paneless/internal/geom"
	"github.com/paneless-wm/paneless/internal/observer"
	"github.com/paneless-wm/paneless/internal/router"
	"github.com/paneless-wm/paneless/internal/wm"
	"github.com/paneless-wm/paneless/internal/wm/wmtest"
	"github.com/paneless-wm/paneless/internal/wmlog"
)

const testMonitor = wm.MonitorID("primary")

func newTestCore(t *testing.T) (*wm.Core, *wmtest.FakeBridge) {
	t.Helper()
	bridge := wmtest.NewFakeBridge()
	log := wmlog.Discard()
	anim := animator.New(bridge, log)
	br := border.New(border.Config{}, bridge)
	dm := dimmer.New(bridge, 0)
	rules := wm.ParseRules(config.Default())

	core := wm.New(bridge, anim, br, dm, log, rules)
	core.AddMonitor(testMonitor, geom.Region{X: 0, Y: 0, W: 1920, H: 1080})
	return core, bridge
}

func create(core *wm.Core, id compositor.WindowID, pid int, app string) {
	core.OnWindowEvent(observer.Event{Kind: observer.WindowCreated, WindowID: id, OwnerPID: pid, AppName: app})
}

func destroy(core *wm.Core, id compositor.WindowID) {
	core.OnWindowEvent(observer.Event{Kind: observer.WindowDestroyed, WindowID: id})
}

func TestOpenTwoWindowsSplitsSideBySide(t *testing.T) {
	core, bridge := newTestCore(t)
	create(core, 1, 100, "term")
	create(core, 2, 101, "editor")

	f1 := bridge.FrameOf(1)
	f2 := bridge.FrameOf(2)

	if f1.W <= 0 || f2.W <= 0 {
		t.Fatalf("expected both windows to receive non-empty frames, got %+v %+v", f1, f2)
	}
	if f1.X >= f2.X {
		t.Fatalf("expected window 1 left of window 2, got %+v %+v", f1, f2)
	}
	if f1.Intersects(f2) {
		t.Fatalf("expected disjoint frames, got %+v %+v", f1, f2)
	}
}

func TestWorkspaceMoveAndReturnPreservesWindow(t *testing.T) {
	core, bridge := newTestCore(t)
	create(core, 1, 100, "term")

	core.Handle(router.Action{Kind: router.MoveToWorkspace, Workspace: 2})
	core.Handle(router.Action{Kind: router.SwitchWorkspace, Workspace: 2})

	f := bridge.FrameOf(1)
	if f.W < geom.MinWidth || f.H < geom.MinHeight {
		t.Fatalf("expected window restored to a tiled frame on workspace 2, got %+v", f)
	}

	core.Handle(router.Action{Kind: router.SwitchWorkspace, Workspace: 1})
	// Workspace 1 is now empty; window 1 lives on workspace 2 only.
}

func TestCloseRedistributesSurvivors(t *testing.T) {
	core, bridge := newTestCore(t)
	create(core, 1, 100, "a")
	create(core, 2, 101, "b")
	create(core, 3, 102, "c")

	// Window 3 is focused (most recently created); close it.
	core.Handle(router.Action{Kind: router.Close})

	f1 := bridge.FrameOf(1)
	f2 := bridge.FrameOf(2)
	if f1.Intersects(f2) {
		t.Fatalf("expected survivors redistributed to disjoint frames, got %+v %+v", f1, f2)
	}
	if f1.W <= 0 {
		t.Fatalf("expected survivor 1 to receive a two-way split frame after redistribution")
	}
}

func TestSwallowAndUnswallow(t *testing.T) {
	core, bridge := newTestCore(t)
	cfg := config.Default()
	cfg["rules"] = config.Section{"swallow_all": "true"}
	core.ApplyConfig(cfg)

	create(core, 1, 100, "terminal")
	core.SetAncestryResolver(func(pid int, levels int) []int {
		if pid == 200 {
			return []int{100}
		}
		return nil
	})
	create(core, 2, 200, "editor")

	preTerminalAlpha := bridge.AlphaOf(1)
	if preTerminalAlpha != 0 {
		t.Fatalf("expected swallowed terminal hidden (alpha 0), got %v", preTerminalAlpha)
	}

	destroy(core, 2)

	postTerminalAlpha := bridge.AlphaOf(1)
	if postTerminalAlpha != 1 {
		t.Fatalf("expected terminal restored (alpha 1) after unswallow, got %v", postTerminalAlpha)
	}
}

func TestScrollingConsumeExpelNotInverse(t *testing.T) {
	core, bridge := newTestCore(t)
	cfg := config.Default()
	cfg["layout"] = config.Section{"tiling_mode": "niri"}
	core.ApplyConfig(cfg)

	create(core, 1, 100, "a")
	create(core, 2, 101, "b")
	create(core, 3, 102, "c")

	core.Handle(router.Action{Kind: router.FocusLeft})
	core.Handle(router.Action{Kind: router.FocusLeft})
	core.Handle(router.Action{Kind: router.NiriConsume})
	core.Handle(router.Action{Kind: router.NiriExpel})

	// Columns go [[1],[2],[3]] -> consume -> [[1,2],[3]] -> expel ->
	// [[1],[2],[3]], but expel makes the new column active, so the active
	// index ends at 1, not the starting 0: window 2, not window 1, is the
	// centered column. The tiling region is 1920 inset by the default
	// outer gap of 8, so its horizontal midpoint is 960.
	if cx, _ := bridge.FrameOf(2).Center(); cx != 960 {
		t.Fatalf("expected expelled window 2 centered at x=960 as the new active column, got center x=%d", cx)
	}
	if cx, _ := bridge.FrameOf(1).Center(); cx == 960 {
		t.Fatalf("expected window 1 no longer the centered active column after consume+expel")
	}
}

func TestStartupRecoverRestoresOrphanedWindow(t *testing.T) {
	core, bridge := newTestCore(t)
	bridge.Space = []compositor.WindowInfo{
		{ID: 9, OwnerPID: 500, AppName: "orphan", Frame: geom.Frame{X: 1919, Y: 1079, W: 1, H: 1}},
	}
	core.StartupRecover(testMonitor, bridge.Space)

	f := bridge.FrameOf(9)
	if f.W != 1920/2 || f.H != 1080/2 {
		t.Fatalf("expected orphaned window restored to quarter-screen frame, got %+v", f)
	}
}

func TestMoveToMonitorFollowsFocus(t *testing.T) {
	core, bridge := newTestCore(t)
	const secondMonitor = wm.MonitorID("secondary")
	core.AddMonitor(secondMonitor, geom.Region{X: 1920, Y: 0, W: 1920, H: 1080})

	create(core, 1, 100, "a")

	core.Handle(router.Action{Kind: router.MoveToMonitorRight})

	f := bridge.FrameOf(1)
	if f.X < 1920 {
		t.Fatalf("expected window 1 moved onto the right monitor's region, got %+v", f)
	}

	// A second move_to_monitor right is a no-op: there is no monitor past
	// the last one in monitorOrder.
	core.Handle(router.Action{Kind: router.MoveToMonitorRight})
	if f2 := bridge.FrameOf(1); f2.X != f.X {
		t.Fatalf("expected no-op past the last monitor, got %+v", f2)
	}
}
