// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/layout/neighbor.go
// Summary: Directional focus search over a set of candidate frames.

package layout

import (
	"math"

	"github.com/paneless-wm/paneless/internal/geom"
)

// Direction is a cardinal focus-movement request.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Candidate is one entry in a directional focus search.
type Candidate[ID comparable] struct {
	ID    ID
	Frame geom.Frame
}

// FindNeighbor selects the candidate whose center lies strictly in dir's
// half-plane relative to fromCenter and minimizes Euclidean distance from
// it. Ties are broken by less(a, b), which should report whether a's ID
// sorts before b's (the spec's "lower WindowId" tie-break, generalized so
// the layout engine stays agnostic of the concrete ID type).
//
// Returns the zero Candidate and false if no candidate qualifies.
func FindNeighbor[ID comparable](fromX, fromY int, dir Direction, candidates []Candidate[ID], less func(a, b ID) bool) (Candidate[ID], bool) {
	var best Candidate[ID]
	bestDist := math.MaxFloat64
	found := false

	for _, c := range candidates {
		cx, cy := c.Frame.Center()
		if !inHalfPlane(fromX, fromY, cx, cy, dir) {
			continue
		}
		dx := float64(cx - fromX)
		dy := float64(cy - fromY)
		dist := dx*dx + dy*dy

		switch {
		case !found:
			best, bestDist, found = c, dist, true
		case dist < bestDist:
			best, bestDist = c, dist
		case dist == bestDist && less(c.ID, best.ID):
			best = c
		}
	}
	return best, found
}

func inHalfPlane(fromX, fromY, toX, toY int, dir Direction) bool {
	switch dir {
	case Left:
		return toX < fromX
	case Right:
		return toX > fromX
	case Up:
		return toY < fromY
	case Down:
		return toY > fromY
	default:
		return false
	}
}
