// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	"testing"

	"github.com/paneless-wm/paneless/internal/geom"
)

func TestScrollingFramesActiveColumnCentered(t *testing.T) {
	r := geom.Region{X: 0, Y: 0, W: 1200, H: 800}
	cols := []ColumnSpec[string]{
		{Windows: []string{"A"}},
		{Windows: []string{"B"}},
		{Windows: []string{"C"}},
	}
	results := ScrollingFrames(r, cols, 1, 0.5, 8)
	if len(results) != 3 {
		t.Fatalf("got %d column results, want 3", len(results))
	}
	active := results[1].Windows[0].Frame
	cx, _ := active.Center()
	if cx != r.MidX() {
		t.Fatalf("active column center x = %d, want %d", cx, r.MidX())
	}
}

func TestScrollingFramesFlattenIsPermutationOfTiled(t *testing.T) {
	cols := []ColumnSpec[int]{
		{Windows: []int{1, 2}},
		{Windows: []int{3}},
		{Windows: []int{4, 5, 6}},
	}
	flat := FlattenColumns(cols)
	want := []int{1, 2, 3, 4, 5, 6}
	if len(flat) != len(want) {
		t.Fatalf("flattened length = %d, want %d", len(flat), len(want))
	}
	for i := range want {
		if flat[i] != want[i] {
			t.Fatalf("flat[%d] = %d, want %d", i, flat[i], want[i])
		}
	}
}

func TestClampColumnWidthBounds(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0.0, 0.1},
		{0.05, 0.1},
		{0.5, 0.5},
		{3.0, 3.0},
		{10.0, 3.0},
	}
	for _, c := range cases {
		if got := ClampColumnWidth(c.in); got != c.want {
			t.Fatalf("ClampColumnWidth(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestScrollingColumnVisibility(t *testing.T) {
	r := geom.Region{X: 0, Y: 0, W: 800, H: 600}
	// Five wide columns so only the active one (and maybe a sliver of its
	// neighbors) fits in view.
	cols := make([]ColumnSpec[int], 5)
	for i := range cols {
		cols[i] = ColumnSpec[int]{Windows: []int{i}}
	}
	results := ScrollingFrames(r, cols, 2, 1.0, 8)
	if !results[2].Visible {
		t.Fatalf("active column must be visible")
	}
	if results[0].Visible {
		t.Fatalf("column 0 should be scrolled fully off-screen: %+v", results[0])
	}
}
