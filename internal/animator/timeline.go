// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/animator/timeline.go
// Summary: Thread-safe per-key animation timeline with cubic-bezier easing.
// Notes: Adapted from the teacher's internal/effects Timeline: same
// AnimateTo/Get/IsAnimating/Reset shape, generalized to cubic-bezier
// easing so the exact curves named in spec §4.1/§4.3 can be expressed.

package animator

import (
	"sync"
	"time"
)

// EasingFunc maps progress in [0,1] to an eased value in [0,1].
type EasingFunc func(t float32) float32

// Linear applies no easing.
func Linear(t float32) float32 { return t }

// CubicBezier returns an easing function for the single-axis cubic bezier
// with control points (0,0), (x1,y1), (x2,y2), (1,1) — the CSS-style
// four-number curve notation the spec uses for popin/popout (e.g.
// (0.25, 1.0, 0.5, 1.0) for popin, (0.5, 0.5, 0.75, 1.0) for popout).
// Solved by fixed-iteration Newton-Raphson on t, which is fast enough for
// an 8ms animation tick.
func CubicBezier(x1, y1, x2, y2 float64) EasingFunc {
	bezier1D := func(t, p1, p2 float64) float64 {
		u := 1 - t
		return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
	}
	bezierDerivative := func(t, p1, p2 float64) float64 {
		u := 1 - t
		return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
	}

	return func(progress float32) float32 {
		x := float64(progress)
		t := x
		for i := 0; i < 8; i++ {
			cx := bezier1D(t, x1, x2) - x
			deriv := bezierDerivative(t, x1, x2)
			if deriv == 0 {
				break
			}
			t -= cx / deriv
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
		}
		return float32(bezier1D(t, y1, y2))
	}
}

// keyState tracks animation state for a single key.
type keyState struct {
	start, target, current float32
	startTime               time.Time
	duration                time.Duration
	easing                  EasingFunc
}

// Timeline provides thread-safe, per-key animation state, mirroring the
// shape of the teacher's internal/effects.Timeline.
type Timeline[K comparable] struct {
	mu            sync.Mutex
	states        map[K]*keyState
	defaultEasing EasingFunc
}

// NewTimeline creates an empty timeline with the given default easing
// applied when a key's AnimateTo call doesn't specify one.
func NewTimeline[K comparable](defaultEasing EasingFunc) *Timeline[K] {
	if defaultEasing == nil {
		defaultEasing = Linear
	}
	return &Timeline[K]{states: make(map[K]*keyState), defaultEasing: defaultEasing}
}

// AnimateTo starts an animation for key from its current value to target
// over duration using easing (or the timeline default if nil). Starting
// value is 0 for a never-seen key.
func (tl *Timeline[K]) AnimateTo(key K, target float32, duration time.Duration, easing EasingFunc, now time.Time) {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	if easing == nil {
		easing = tl.defaultEasing
	}
	start := float32(0)
	if s, ok := tl.states[key]; ok {
		start = tl.computeLocked(s, now)
	}
	tl.states[key] = &keyState{
		start: start, target: target, current: start,
		startTime: now, duration: duration, easing: easing,
	}
}

// Get returns the current animated value for key (0 if never animated).
func (tl *Timeline[K]) Get(key K, now time.Time) float32 {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	s, ok := tl.states[key]
	if !ok {
		return 0
	}
	return tl.computeLocked(s, now)
}

// IsAnimating reports whether key's animation has not yet reached its
// target as of now.
func (tl *Timeline[K]) IsAnimating(key K, now time.Time) bool {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	s, ok := tl.states[key]
	if !ok || s.duration <= 0 {
		return false
	}
	return now.Sub(s.startTime) < s.duration
}

// HasActive reports whether any key is still animating as of now.
func (tl *Timeline[K]) HasActive(now time.Time) bool {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	for _, s := range tl.states {
		if s.duration > 0 && now.Sub(s.startTime) < s.duration {
			return true
		}
	}
	return false
}

// Reset removes a key's animation state, leaving it at rest.
func (tl *Timeline[K]) Reset(key K) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	delete(tl.states, key)
}

// Clear removes all animation state.
func (tl *Timeline[K]) Clear() {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	tl.states = make(map[K]*keyState)
}

func (tl *Timeline[K]) computeLocked(s *keyState, now time.Time) float32 {
	if s.duration <= 0 {
		return s.target
	}
	elapsed := now.Sub(s.startTime)
	if elapsed <= 0 {
		return s.start
	}
	if elapsed >= s.duration {
		return s.target
	}
	progress := float32(elapsed) / float32(s.duration)
	eased := s.easing(progress)
	return s.start + (s.target-s.start)*eased
}
