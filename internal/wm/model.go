// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/wm/model.go
// Summary: The data model from spec §3 — TrackedWindow, VirtualWorkspace,
// Column, and their invariants.

package wm

import (
	"github.com/paneless-wm/paneless/internal/compositor"
	"github.com/paneless-wm/paneless/internal/geom"
	"github.com/paneless-wm/paneless/internal/layout"
)

// WindowID is the opaque OS-level window identifier (spec §3).
type WindowID = compositor.WindowID

// MonitorID is a stable identifier derived from display hardware (spec §3).
type MonitorID string

// WorkspaceNumber is an integer in [1, 9] (spec §3).
type WorkspaceNumber int

const (
	MinWorkspace = 1
	MaxWorkspace = 9
)

// ValidWorkspace reports whether n is a legal workspace number (spec §8:
// "Workspace numbers outside [1..9] are ignored").
func ValidWorkspace(n int) bool {
	return n >= MinWorkspace && n <= MaxWorkspace
}

// TrackedWindow is spec §3's TrackedWindow entity.
type TrackedWindow struct {
	ID            WindowID
	OwnerPID      int
	AppName       string
	BundleID      string
	Title         string
	IsFloating    bool
	LastFrame     geom.Frame
	SwallowedFrom WindowID // 0 means none
	SwallowedBy   WindowID // 0 means none
}

// Column is scrolling-mode's per-column state (spec §3).
type Column struct {
	Windows         []WindowID
	WidthOverride   *float64 // fraction of region width, [0.1, 3.0]
	FocusedRowIndex int
}

// VirtualWorkspace is one monitor's one workspace (spec §3).
type VirtualWorkspace struct {
	Tiled      []WindowID
	Floating   map[WindowID]bool
	Fullscreen map[WindowID]bool
	Tracked    map[WindowID]*TrackedWindow
	Focused    WindowID // 0 means none

	LayoutVariant layout.Variant
	SplitRatio    float64 // [0.2, 0.8]

	ScrollingColumns  []Column
	ActiveColumnIndex int

	minimized map[WindowID]bool
}

// NewVirtualWorkspace returns an empty workspace with spec defaults.
func NewVirtualWorkspace() *VirtualWorkspace {
	return &VirtualWorkspace{
		Floating:      make(map[WindowID]bool),
		Fullscreen:    make(map[WindowID]bool),
		Tracked:       make(map[WindowID]*TrackedWindow),
		minimized:     make(map[WindowID]bool),
		LayoutVariant: layout.SideBySide,
		SplitRatio:    0.5,
	}
}

// ClampSplitRatio enforces [0.2, 0.8] (spec §3, §8).
func ClampSplitRatio(r float64) float64 {
	if r < 0.2 {
		return 0.2
	}
	if r > 0.8 {
		return 0.8
	}
	return r
}

// IsEmpty reports whether the workspace has no windows in any subset.
func (w *VirtualWorkspace) IsEmpty() bool {
	return len(w.Tiled) == 0 && len(w.Floating) == 0 && len(w.Fullscreen) == 0
}

// columnSpecs converts ScrollingColumns to the layout package's
// generic input shape.
func (w *VirtualWorkspace) columnSpecs() []layout.ColumnSpec[WindowID] {
	specs := make([]layout.ColumnSpec[WindowID], len(w.ScrollingColumns))
	for i, c := range w.ScrollingColumns {
		specs[i] = layout.ColumnSpec[WindowID]{Windows: c.Windows, WidthOverride: c.WidthOverride}
	}
	return specs
}

// syncTiledFromColumns rebuilds Tiled as the flattening of
// ScrollingColumns (spec invariant 5, spec §9: columns are authoritative
// in scrolling mode; tiled is derived).
func (w *VirtualWorkspace) syncTiledFromColumns() {
	w.Tiled = layout.FlattenColumns(w.columnSpecs())
}

// removeFromColumns deletes id from whichever column holds it, dropping
// the column entirely if it becomes empty, and clamps ActiveColumnIndex.
func (w *VirtualWorkspace) removeFromColumns(id WindowID) {
	for ci, col := range w.ScrollingColumns {
		for wi, wid := range col.Windows {
			if wid == id {
				col.Windows = append(col.Windows[:wi], col.Windows[wi+1:]...)
				w.ScrollingColumns[ci] = col
				break
			}
		}
	}
	filtered := w.ScrollingColumns[:0]
	for _, col := range w.ScrollingColumns {
		if len(col.Windows) > 0 {
			filtered = append(filtered, col)
		}
	}
	w.ScrollingColumns = filtered
	if w.ActiveColumnIndex >= len(w.ScrollingColumns) {
		w.ActiveColumnIndex = len(w.ScrollingColumns) - 1
	}
	if w.ActiveColumnIndex < 0 {
		w.ActiveColumnIndex = 0
	}
	w.syncTiledFromColumns()
}
