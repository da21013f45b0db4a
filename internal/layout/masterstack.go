// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/layout/masterstack.go
// Summary: Pure master-stack ("Hyprland" style) tiling geometry.

package layout

import "github.com/paneless-wm/paneless/internal/geom"

// Variant selects the master-stack arrangement.
type Variant int

const (
	SideBySide Variant = iota
	Stacked
	Monocle
)

// String mirrors the teacher's EventType.String() pattern of a readable
// name for log fields, rather than exposing the raw iota.
func (v Variant) String() string {
	switch v {
	case SideBySide:
		return "side_by_side"
	case Stacked:
		return "stacked"
	case Monocle:
		return "monocle"
	default:
		return "unknown"
	}
}

// Cycle advances the variant by one step, wrapping mod 3, matching the
// spec's cycle_layout binding.
func (v Variant) Cycle() Variant {
	return (v + 1) % 3
}

// MasterStackFrames computes frames for n tiled windows per spec §4.1.
//
//   - n == 0: no frames.
//   - Monocle: every window gets the same region-minus-gap frame.
//   - n == 1: single frame, honoring singleWindowPadding (0 means fill
//     edge-to-edge, consuming the outer gap).
//   - n == 2: split at splitRatio, horizontally for SideBySide or
//     vertically for Stacked.
//   - n == 3: SideBySide masters splitRatio on the left, two equal
//     half-height frames on the right; Stacked is three equal rows and
//     deliberately ignores splitRatio (§4.1, §9 open question: kept as
//     specified, not treated as a bug).
//   - n >= 4: SideBySide is four fixed quarters with every index beyond 3
//     overlapping the bottom-right quarter; Stacked is n equal rows.
//
// Every returned frame is clamped to the minimum viable window size.
func MasterStackFrames(region geom.Region, n int, innerGap, singleWindowPadding int, splitRatio float64, variant Variant) []geom.Frame {
	if n <= 0 {
		return nil
	}

	if variant == Monocle {
		f := gapFrame(region, innerGap)
		frames := make([]geom.Frame, n)
		for i := range frames {
			frames[i] = geom.ClampMin(f)
		}
		return frames
	}

	if n == 1 {
		return []geom.Frame{singleFrame(region, singleWindowPadding)}
	}

	switch n {
	case 2:
		return twoWayFrames(region, innerGap, splitRatio, variant)
	case 3:
		return threeWayFrames(region, innerGap, splitRatio, variant)
	default:
		return fourPlusFrames(region, n, innerGap, variant)
	}
}

func gapFrame(region geom.Region, gap int) geom.Frame {
	half := geom.HalfGap(gap)
	return geom.Frame{
		X: region.X + half,
		Y: region.Y + half,
		W: region.W - gap,
		H: region.H - gap,
	}
}

func singleFrame(region geom.Region, padding int) geom.Frame {
	if padding <= 0 {
		return geom.ClampMin(geom.Frame(region))
	}
	return geom.ClampMin(geom.Frame{
		X: region.X + padding,
		Y: region.Y + padding,
		W: region.W - 2*padding,
		H: region.H - 2*padding,
	})
}

func twoWayFrames(region geom.Region, gap int, splitRatio float64, variant Variant) []geom.Frame {
	half := geom.HalfGap(gap)
	if variant == Stacked {
		topH := int(float64(region.H) * splitRatio)
		top := geom.Frame{X: region.X + half, Y: region.Y + half, W: region.W - gap, H: topH - gap}
		bottom := geom.Frame{X: region.X + half, Y: region.Y + topH + half, W: region.W - gap, H: region.H - topH - gap}
		return []geom.Frame{geom.ClampMin(top), geom.ClampMin(bottom)}
	}
	leftW := int(float64(region.W) * splitRatio)
	left := geom.Frame{X: region.X + half, Y: region.Y + half, W: leftW - gap, H: region.H - gap}
	right := geom.Frame{X: region.X + leftW + half, Y: region.Y + half, W: region.W - leftW - gap, H: region.H - gap}
	return []geom.Frame{geom.ClampMin(left), geom.ClampMin(right)}
}

func threeWayFrames(region geom.Region, gap int, splitRatio float64, variant Variant) []geom.Frame {
	half := geom.HalfGap(gap)
	if variant == Stacked {
		rowH := region.H / 3
		frames := make([]geom.Frame, 3)
		for i := 0; i < 3; i++ {
			frames[i] = geom.ClampMin(geom.Frame{
				X: region.X + half,
				Y: region.Y + i*rowH + half,
				W: region.W - gap,
				H: rowH - gap,
			})
		}
		return frames
	}

	masterW := int(float64(region.W) * splitRatio)
	master := geom.Frame{X: region.X + half, Y: region.Y + half, W: masterW - gap, H: region.H - gap}

	stackX := region.X + masterW
	stackW := region.W - masterW
	rowH := region.H / 2
	top := geom.Frame{X: stackX + half, Y: region.Y + half, W: stackW - gap, H: rowH - gap}
	bottom := geom.Frame{X: stackX + half, Y: region.Y + rowH + half, W: stackW - gap, H: region.H - rowH - gap}
	return []geom.Frame{geom.ClampMin(master), geom.ClampMin(top), geom.ClampMin(bottom)}
}

func fourPlusFrames(region geom.Region, n int, gap int, variant Variant) []geom.Frame {
	if variant == Stacked {
		rowH := region.H / n
		half := geom.HalfGap(gap)
		frames := make([]geom.Frame, n)
		for i := 0; i < n; i++ {
			frames[i] = geom.ClampMin(geom.Frame{
				X: region.X + half,
				Y: region.Y + i*rowH + half,
				W: region.W - gap,
				H: rowH - gap,
			})
		}
		return frames
	}

	half := geom.HalfGap(gap)
	halfW := region.W / 2
	halfH := region.H / 2
	quarters := [4]geom.Frame{
		{X: region.X + half, Y: region.Y + half, W: halfW - gap, H: halfH - gap},
		{X: region.X + halfW + half, Y: region.Y + half, W: region.W - halfW - gap, H: halfH - gap},
		{X: region.X + half, Y: region.Y + halfH + half, W: halfW - gap, H: region.H - halfH - gap},
		{X: region.X + halfW + half, Y: region.Y + halfH + half, W: region.W - halfW - gap, H: region.H - halfH - gap},
	}
	frames := make([]geom.Frame, n)
	for i := 0; i < n; i++ {
		idx := i
		if idx > 3 {
			idx = 3
		}
		frames[i] = geom.ClampMin(quarters[idx])
	}
	return frames
}
