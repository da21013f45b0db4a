// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	"testing"

	"github.com/paneless-wm/paneless/internal/geom"
)

func region() geom.Region {
	return geom.Region{X: 0, Y: 0, W: 1920, H: 1080}
}

func TestMasterStackFramesCount(t *testing.T) {
	r := region()
	for n := 1; n <= 6; n++ {
		for _, v := range []Variant{SideBySide, Stacked, Monocle} {
			frames := MasterStackFrames(r, n, 8, 0, 0.5, v)
			if len(frames) != n {
				t.Fatalf("n=%d variant=%s: got %d frames, want %d", n, v, len(frames), n)
			}
			for _, f := range frames {
				if f.W < geom.MinWidth || f.H < geom.MinHeight {
					t.Fatalf("n=%d variant=%s: frame %+v below minimum size", n, v, f)
				}
			}
		}
	}
}

func TestMasterStackZeroWindows(t *testing.T) {
	if frames := MasterStackFrames(region(), 0, 8, 0, 0.5, SideBySide); frames != nil {
		t.Fatalf("expected nil for n=0, got %v", frames)
	}
}

func TestMasterStackTwoSideBySideSplit(t *testing.T) {
	r := geom.Region{X: 0, Y: 0, W: 1000, H: 800}
	frames := MasterStackFrames(r, 2, 0, 0, 0.5, SideBySide)
	if frames[0].X != 0 || frames[0].W != 500 {
		t.Fatalf("left frame = %+v, want x=0 w=500", frames[0])
	}
	if frames[1].X != 500 || frames[1].W != 500 {
		t.Fatalf("right frame = %+v, want x=500 w=500", frames[1])
	}
}

func TestMasterStackSingleWindowFillsEdgeToEdge(t *testing.T) {
	r := region()
	frames := MasterStackFrames(r, 1, 8, 0, 0.5, SideBySide)
	if got := frames[0]; got.X != r.X || got.Y != r.Y || got.W != r.W || got.H != r.H {
		t.Fatalf("expected edge-to-edge fill with zero padding, got %+v", got)
	}
}

func TestMasterStackMonocleAllFramesIdentical(t *testing.T) {
	r := region()
	frames := MasterStackFrames(r, 4, 8, 0, 0.5, Monocle)
	for i := 1; i < len(frames); i++ {
		if frames[i] != frames[0] {
			t.Fatalf("monocle frame %d = %+v, want identical to %+v", i, frames[i], frames[0])
		}
	}
}

func TestMasterStackThreeStackedIgnoresSplitRatio(t *testing.T) {
	r := geom.Region{X: 0, Y: 0, W: 1000, H: 900}
	withHalf := MasterStackFrames(r, 3, 0, 0, 0.5, Stacked)
	withSkewed := MasterStackFrames(r, 3, 0, 0, 0.8, Stacked)
	for i := range withHalf {
		if withHalf[i] != withSkewed[i] {
			t.Fatalf("n=3 stacked frame %d differs across split ratios: %+v vs %+v", i, withHalf[i], withSkewed[i])
		}
	}
}

func TestMasterStackFourPlusOverlapBottomRight(t *testing.T) {
	r := region()
	frames := MasterStackFrames(r, 6, 8, 0, 0.5, SideBySide)
	for i := 3; i < len(frames); i++ {
		if frames[i] != frames[3] {
			t.Fatalf("index %d = %+v, want overlap with bottom-right quarter %+v", i, frames[i], frames[3])
		}
	}
}

func TestVariantCycleWrapsModThree(t *testing.T) {
	v := SideBySide
	v = v.Cycle().Cycle()
	if v != Monocle {
		t.Fatalf("two cycles from SideBySide = %s, want monocle", v)
	}
}

func TestNoOverlapBetweenDistinctPositions(t *testing.T) {
	r := region()
	frames := MasterStackFrames(r, 4, 8, 0, 0.5, SideBySide)
	for i := 0; i < len(frames); i++ {
		for j := i + 1; j < len(frames); j++ {
			if frames[i].Intersects(frames[j]) {
				t.Fatalf("frames %d and %d overlap: %+v vs %+v", i, j, frames[i], frames[j])
			}
		}
	}
}
