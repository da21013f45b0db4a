// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/wm/persistence.go
// Summary: Workspace-restore snapshot format (spec §6 "Persisted state")
// and crash-orphan recovery (spec §4.3 "Failure model (Core)").

package wm

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/paneless-wm/paneless/internal/compositor"
	"github.com/paneless-wm/paneless/internal/geom"
	"github.com/paneless-wm/paneless/internal/wmlog"
)

// snapshotExpiry is the 24-hour cutoff spec §6 names for discarding a
// persisted snapshot on load.
const snapshotExpiry = 24 * time.Hour

// SnapshotEntry is one window's persisted placement (spec §6).
type SnapshotEntry struct {
	AppName      string
	BundleID     string
	WindowTitle  string
	Workspace    WorkspaceNumber
	Monitor      MonitorID
	IsFloating   bool
	IsFullscreen bool
}

// Snapshot is the single persisted-state file's contents (spec §6).
type Snapshot struct {
	ID              string
	Timestamp       time.Time
	ActiveWorkspace map[MonitorID]WorkspaceNumber
	Entries         []SnapshotEntry
}

// BuildSnapshot serializes the Core's current view into a Snapshot —
// the "serializing a snapshot synchronously on the main queue" step spec
// §5 describes; the actual file write happens off that queue, via
// SaveSnapshotAsync.
func (c *Core) BuildSnapshot(now time.Time) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		ID:              uuid.NewString(),
		Timestamp:       now,
		ActiveWorkspace: make(map[MonitorID]WorkspaceNumber, len(c.monitorOrder)),
	}
	for monitor, byNum := range c.store.PerMonitor {
		snap.ActiveWorkspace[monitor] = c.store.Active(monitor)
		for n, ws := range byNum {
			for id, tw := range ws.Tracked {
				snap.Entries = append(snap.Entries, SnapshotEntry{
					AppName:      tw.AppName,
					BundleID:     tw.BundleID,
					WindowTitle:  tw.Title,
					Workspace:    n,
					Monitor:      monitor,
					IsFloating:   ws.Floating[id],
					IsFullscreen: ws.Fullscreen[id],
				})
			}
		}
	}
	return snap
}

// SaveSnapshotAsync writes snap to path on its own goroutine (spec §5:
// "the persistence writer ... performs file I/O off the main queue").
func SaveSnapshotAsync(path string, snap Snapshot, log *wmlog.Logger) {
	go func() {
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			log.Warn("persistence.marshal_failed", wmlog.Fields{"err": err})
			return
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			log.Warn("persistence.write_failed", wmlog.Fields{"path": path, "err": err})
		}
	}()
}

// LoadSnapshotFile reads and parses path. A missing file, parse failure,
// or a snapshot older than snapshotExpiry yields a zero Snapshot and
// ok=false, never an error the caller must handle specially — restore is
// best-effort (spec §6).
func LoadSnapshotFile(path string, now time.Time, log *wmlog.Logger) (Snapshot, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, false
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Warn("persistence.parse_failed", wmlog.Fields{"path": path, "err": err})
		return Snapshot{}, false
	}
	if now.Sub(snap.Timestamp) > snapshotExpiry {
		log.Info("persistence.snapshot_expired", wmlog.Fields{"age": now.Sub(snap.Timestamp).String()})
		return Snapshot{}, false
	}
	return snap, true
}

// RestoreSnapshot matches each snapshot entry against the windows the
// bridge currently enumerates, by app identity, then exact title, then
// highest Jaccard word-set similarity (ties falling back to an app-only
// match), and installs the matched window at its recorded
// monitor/workspace/floating/fullscreen state (spec §6 "On restore").
func (c *Core) RestoreSnapshot(snap Snapshot, discovered []compositor.WindowInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()

	type candidate struct {
		info  compositor.WindowInfo
		title string
	}
	pool := make([]candidate, len(discovered))
	for i, info := range discovered {
		pool[i] = candidate{info: info, title: info.Title}
	}
	used := make(map[int]bool, len(pool))

	for _, entry := range snap.Entries {
		bestIdx := -1
		bestScore := -1.0
		for i, cand := range pool {
			if used[i] {
				continue
			}
			if cand.info.AppName != entry.AppName {
				continue
			}
			score := 0.0
			if entry.WindowTitle != "" && cand.title == entry.WindowTitle {
				score = 2.0
			} else if entry.WindowTitle != "" {
				score = jaccardSimilarity(entry.WindowTitle, cand.title)
			} else {
				score = 0.01 // app-only match still beats no match
			}
			if score > bestScore {
				bestScore, bestIdx = score, i
			}
		}
		if bestIdx < 0 {
			continue
		}
		used[bestIdx] = true
		win := pool[bestIdx].info

		ws := c.store.Workspace(entry.Monitor, entry.Workspace)
		ws.Tracked[win.ID] = &TrackedWindow{
			ID:         win.ID,
			OwnerPID:   win.OwnerPID,
			AppName:    win.AppName,
			BundleID:   entry.BundleID,
			Title:      win.Title,
			IsFloating: entry.IsFloating,
			LastFrame:  win.Frame,
		}
		switch {
		case entry.IsFullscreen:
			ws.Fullscreen[win.ID] = true
		case entry.IsFloating:
			ws.Floating[win.ID] = true
		default:
			ws.Tiled = append(ws.Tiled, win.ID)
		}
	}

	for monitor, n := range snap.ActiveWorkspace {
		if ValidWorkspace(int(n)) {
			c.store.SetActive(monitor, n)
		}
	}
}

// jaccardSimilarity scores two titles by the Jaccard index of their
// lowercased word sets (spec §6's tie-break metric).
func jaccardSimilarity(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}
	inter := 0
	for w := range setA {
		if setB[w] {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func wordSet(s string) map[string]bool {
	fields := strings.Fields(strings.ToLower(s))
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}

// orphanVisibleThreshold is the "≤3 px visible" bound spec §4.3's failure
// model uses to recognize a crash-orphaned window at startup.
const orphanVisibleThreshold = 3

// StartupRecover implements spec §4.3's startup clause: any window at or
// near a hidden-position frame is assumed orphaned from a prior crash and
// restored to a centered quarter-screen frame; every present window's
// transform is unconditionally reset (spec §4.4).
func (c *Core) StartupRecover(monitor MonitorID, windows []compositor.WindowInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()

	region := c.region(monitor)
	for _, w := range windows {
		c.anim.ResetTransform(w.ID)
		if visiblePixels(w.Frame, region) > orphanVisibleThreshold {
			continue
		}
		screen := c.monitorRegion[monitor]
		restore := geom.Frame{X: screen.X + screen.W/4, Y: screen.Y + screen.H/4, W: screen.W / 2, H: screen.H / 2}
		if err := wrapBridge(c.bridge.SetFrame(w.ID, restore)); err != nil {
			c.log.Warn("startup.orphan_restore_failed", wmlog.Fields{"window": w.ID, "err": err})
		}
	}
}

func visiblePixels(f geom.Frame, region geom.Region) int {
	visW := min(f.X+f.W, region.X+region.W) - max(f.X, region.X)
	visH := min(f.Y+f.H, region.Y+region.H) - max(f.Y, region.Y)
	if visW < 0 || visH < 0 {
		return 0
	}
	return visW * visH
}
