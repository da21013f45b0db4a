// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	"testing"

	"github.com/paneless-wm/paneless/internal/geom"
)

func TestFindNeighborPicksClosestInDirection(t *testing.T) {
	candidates := []Candidate[int]{
		{ID: 2, Frame: geom.Frame{X: 200, Y: 0, W: 100, H: 100}},
		{ID: 3, Frame: geom.Frame{X: 400, Y: 0, W: 100, H: 100}},
		{ID: 4, Frame: geom.Frame{X: 0, Y: 400, W: 100, H: 100}}, // mostly below: its center is right of the origin, but farther than id=2's
	}
	got, ok := FindNeighbor(0, 0, Right, candidates, func(a, b int) bool { return a < b })
	if !ok || got.ID != 2 {
		t.Fatalf("expected closest right neighbor id=2, got %+v ok=%v", got, ok)
	}
}

func TestFindNeighborTieBreaksByLowerID(t *testing.T) {
	candidates := []Candidate[int]{
		{ID: 5, Frame: geom.Frame{X: 100, Y: 0, W: 10, H: 10}},
		{ID: 2, Frame: geom.Frame{X: 100, Y: 0, W: 10, H: 10}},
	}
	got, ok := FindNeighbor(0, 0, Right, candidates, func(a, b int) bool { return a < b })
	if !ok || got.ID != 2 {
		t.Fatalf("expected tie-break to id=2, got %+v ok=%v", got, ok)
	}
}

func TestFindNeighborNoneInDirection(t *testing.T) {
	candidates := []Candidate[int]{
		{ID: 1, Frame: geom.Frame{X: -100, Y: 0, W: 10, H: 10}},
	}
	_, ok := FindNeighbor(0, 0, Right, candidates, func(a, b int) bool { return a < b })
	if ok {
		t.Fatalf("expected no neighbor to the right")
	}
}
