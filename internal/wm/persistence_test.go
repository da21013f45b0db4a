// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package wm_test

import (
	"testing"
	"time"

	"github.com/paneless-wm/paneless/internal/compositor"
	"github.com/paneless-wm/paneless/internal/geom"
	"github.com/paneless-wm/paneless/internal/observer"
	"github.com/paneless-wm/paneless/internal/router"
	"github.com/paneless-wm/paneless/internal/wm"
	"github.com/paneless-wm/paneless/internal/wm/wmtest"
)

// restoredFrameOf round-trips through a workspace switch away and back,
// which is the one point floating windows have their recorded LastFrame
// pushed back to the bridge (workspace.go) — the only externally
// observable signal for which discovered candidate RestoreSnapshot picked.
func restoredFrameOf(core *wm.Core, bridge *wmtest.FakeBridge, id compositor.WindowID) geom.Frame {
	core.Handle(router.Action{Kind: router.SwitchWorkspace, Workspace: 2})
	core.Handle(router.Action{Kind: router.SwitchWorkspace, Workspace: 1})
	return bridge.FrameOf(id)
}

func TestBuildSnapshotIncludesWindowTitle(t *testing.T) {
	core, _ := newTestCore(t)
	core.OnWindowEvent(observer.Event{Kind: observer.WindowCreated, WindowID: 1, OwnerPID: 100, AppName: "term", Title: "bash: ~/project"})

	snap := core.BuildSnapshot(time.Now())
	if len(snap.Entries) != 1 {
		t.Fatalf("expected exactly one snapshot entry, got %d", len(snap.Entries))
	}
	if got := snap.Entries[0].WindowTitle; got != "bash: ~/project" {
		t.Fatalf("expected WindowTitle to carry the tracked window's title, got %q", got)
	}
}

func TestRestoreSnapshotPrefersExactTitleOverApp(t *testing.T) {
	core, bridge := newTestCore(t)

	snap := wm.Snapshot{
		Entries: []wm.SnapshotEntry{
			{AppName: "editor", WindowTitle: "main.go", Workspace: 1, Monitor: testMonitor, IsFloating: true},
		},
	}
	discovered := []compositor.WindowInfo{
		{ID: 10, AppName: "editor", Title: "README.md", Frame: geom.Frame{X: 111, W: 200, H: 200}},
		{ID: 11, AppName: "editor", Title: "main.go", Frame: geom.Frame{X: 222, W: 200, H: 200}},
	}

	core.RestoreSnapshot(snap, discovered)

	if got := restoredFrameOf(core, bridge, 11); got.X != 222 {
		t.Fatalf("expected the exact title match (window 11) restored, got frame %+v", got)
	}
	if got := restoredFrameOf(core, bridge, 10); got.X == 111 {
		t.Fatalf("expected the non-matching window 10 left untouched, got frame %+v", got)
	}
}

func TestRestoreSnapshotFallsBackToJaccardSimilarity(t *testing.T) {
	core, bridge := newTestCore(t)

	snap := wm.Snapshot{
		Entries: []wm.SnapshotEntry{
			{AppName: "editor", WindowTitle: "report draft notes", Workspace: 1, Monitor: testMonitor, IsFloating: true},
		},
	}
	// Neither candidate's title is an exact match; "report final notes"
	// shares two of three words with the entry, "todo list" shares none,
	// so the Jaccard tier must pick the former.
	discovered := []compositor.WindowInfo{
		{ID: 20, AppName: "editor", Title: "todo list", Frame: geom.Frame{X: 111, W: 200, H: 200}},
		{ID: 21, AppName: "editor", Title: "report final notes", Frame: geom.Frame{X: 222, W: 200, H: 200}},
	}

	core.RestoreSnapshot(snap, discovered)

	if got := restoredFrameOf(core, bridge, 21); got.X != 222 {
		t.Fatalf("expected the higher Jaccard-similarity window (21) restored, got frame %+v", got)
	}
	if got := restoredFrameOf(core, bridge, 20); got.X == 111 {
		t.Fatalf("expected the dissimilar window 20 left untouched, got frame %+v", got)
	}
}

func TestRestoreSnapshotAppOnlyWhenNoTitleRecorded(t *testing.T) {
	core, bridge := newTestCore(t)

	snap := wm.Snapshot{
		Entries: []wm.SnapshotEntry{
			{AppName: "term", Workspace: 1, Monitor: testMonitor, IsFloating: true},
		},
	}
	discovered := []compositor.WindowInfo{
		{ID: 30, AppName: "term", Title: "zsh", Frame: geom.Frame{X: 333, W: 200, H: 200}},
	}

	core.RestoreSnapshot(snap, discovered)

	if got := restoredFrameOf(core, bridge, 30); got.X != 333 {
		t.Fatalf("expected an app-only match to still restore the window, got frame %+v", got)
	}
}
