// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/layout/scrolling.go
// Summary: Pure scrolling-columns ("Niri" style) tiling geometry.

package layout

import "github.com/paneless-wm/paneless/internal/geom"

// ColumnSpec describes one column's contents for the scrolling layout.
// WidthOverride, if non-nil, is a fraction of region width in [0.1, 3.0]
// (spec §3); otherwise the engine falls back to the default column width.
type ColumnSpec[ID comparable] struct {
	Windows       []ID
	WidthOverride *float64
}

// ColumnResult is the per-column output described in spec §4.1: the
// column's index, its ordered (window, frame) pairs, and whether any part
// of the column is currently visible within the region.
type ColumnResult[ID comparable] struct {
	ColumnIndex int
	Windows     []WindowFrame[ID]
	Visible     bool
}

// WindowFrame pairs a window identity with its computed frame.
type WindowFrame[ID comparable] struct {
	ID    ID
	Frame geom.Frame
}

// ScrollingFrames lays out columns left-to-right along an infinite
// horizontal strip, then offsets the strip so the active column's
// horizontal midpoint aligns with the region's horizontal midpoint
// (spec §4.1 "Scrolling-columns frames").
func ScrollingFrames[ID comparable](region geom.Region, columns []ColumnSpec[ID], activeColumn int, defaultColumnWidth float64, gap int) []ColumnResult[ID] {
	if len(columns) == 0 {
		return nil
	}
	if activeColumn < 0 {
		activeColumn = 0
	}
	if activeColumn >= len(columns) {
		activeColumn = len(columns) - 1
	}

	widths := make([]float64, len(columns))
	for i, c := range columns {
		w := defaultColumnWidth
		if c.WidthOverride != nil {
			w = ClampColumnWidth(*c.WidthOverride)
		}
		widths[i] = w
	}

	xs := make([]int, len(columns)+1)
	for i, w := range widths {
		xs[i+1] = xs[i] + int(float64(region.W)*w)
	}

	activeW := xs[activeColumn+1] - xs[activeColumn]
	offset := region.MidX() - (xs[activeColumn] + activeW/2)

	half := geom.HalfGap(gap)
	results := make([]ColumnResult[ID], len(columns))
	for i, c := range columns {
		colX := xs[i] + offset
		colW := xs[i+1] - xs[i]
		visible := colX+colW > region.X && colX < region.X+region.W

		m := len(c.Windows)
		windows := make([]WindowFrame[ID], m)
		if m > 0 {
			rowH := region.H / m
			for j, id := range c.Windows {
				windows[j] = WindowFrame[ID]{
					ID: id,
					Frame: geom.ClampMin(geom.Frame{
						X: colX + half,
						Y: region.Y + j*rowH + half,
						W: colW - gap,
						H: rowH - gap,
					}),
				}
			}
		}
		results[i] = ColumnResult[ID]{ColumnIndex: i, Windows: windows, Visible: visible}
	}
	return results
}

// ClampColumnWidth enforces the [0.1, 3.0] bound from spec §3/§8.
func ClampColumnWidth(w float64) float64 {
	if w < 0.1 {
		return 0.1
	}
	if w > 3.0 {
		return 3.0
	}
	return w
}

// FlattenColumns concatenates column windows left to right, top to
// bottom, yielding the permutation that spec invariant 5 requires of
// `tiled` while scrolling mode is active.
func FlattenColumns[ID comparable](columns []ColumnSpec[ID]) []ID {
	var out []ID
	for _, c := range columns {
		out = append(out, c.Windows...)
	}
	return out
}
