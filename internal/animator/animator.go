// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/animator/animator.go
// Summary: Popin/popout animation state machine (spec §4.4), single 8ms timer.

package animator

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/paneless-wm/paneless/internal/compositor"
	"github.com/paneless-wm/paneless/internal/wmlog"
)

// Easing curves named in spec §4.1 ("Retile semantics") and §4.1 ("Close
// semantics"), expressed as the same four-number bezier notation.
var (
	popinEasing  = CubicBezier(0.25, 1.0, 0.5, 1.0)
	popoutEasing = CubicBezier(0.5, 0.5, 0.75, 1.0)
)

const (
	popinDuration   = 500 * time.Millisecond
	popinSettle     = 80 * time.Millisecond
	popoutDuration  = 200 * time.Millisecond
	tickInterval    = 8 * time.Millisecond
)

// state is exactly one of the three states spec §9 calls for: idle,
// popin-active, close-active.
type state int

const (
	stateIdle state = iota
	statePopinActive
	stateCloseActive
)

type transition struct {
	id         string
	st         state
	onComplete func()
	completed  bool

	// started is false for a PopIn transition until its settle delay has
	// elapsed and AnimateTo has actually been called; tick must not treat
	// "no Timeline entry yet" as "already at rest" during that window.
	started bool
}

// Animator drives GPU-composited popin/popout on window birth/death and
// reports completion via callback (spec §4.4). Position-only redistribution
// is NOT animated here — the Core issues those as a single Bridge.Batch
// call directly, per the teacher's "affine transform animates scale but not
// translation reliably" design note (spec §4.4).
//
// The ticker goroutine calls Bridge.SetTransform/SetAlpha directly, outside
// the Core's single-threaded action queue. This mirrors the interceptor's
// documented exception in spec §5: these specific bridge calls are
// thread-safe for the shared connection, and the Animator never touches
// WorkspaceStore or tracked state — only transform/alpha of windows it
// already knows about.
type Animator struct {
	bridge compositor.Bridge
	log    *wmlog.Logger

	mu     sync.Mutex
	scale  *Timeline[compositor.WindowID]
	alpha  *Timeline[compositor.WindowID]
	states map[compositor.WindowID]*transition

	ticker *time.Ticker
	stop   chan struct{}
	once   sync.Once
}

// New constructs an Animator driving bridge. Call Run to start its ticker.
func New(bridge compositor.Bridge, log *wmlog.Logger) *Animator {
	return &Animator{
		bridge: bridge,
		log:    log,
		scale:  NewTimeline[compositor.WindowID](popinEasing),
		alpha:  NewTimeline[compositor.WindowID](popinEasing),
		states: make(map[compositor.WindowID]*transition),
		stop:   make(chan struct{}),
	}
}

// Run starts the 8ms animation tick. Safe to call once; a second call is a
// no-op.
func (a *Animator) Run() {
	a.once.Do(func() {
		a.ticker = time.NewTicker(tickInterval)
		go a.loop()
	})
}

// Stop halts the ticker. The Animator is unusable afterward.
func (a *Animator) Stop() {
	if a.ticker != nil {
		a.ticker.Stop()
	}
	close(a.stop)
}

func (a *Animator) loop() {
	for {
		select {
		case now := <-a.ticker.C:
			a.tick(now)
		case <-a.stop:
			return
		}
	}
}

func (a *Animator) tick(now time.Time) {
	a.mu.Lock()
	done := make([]compositor.WindowID, 0)
	for id, tr := range a.states {
		if !tr.started {
			// Still in PopIn's settle delay: the synchronous SetTransform/
			// SetAlpha calls at PopIn already set the resting pre-animation
			// values, and the Timeline has no entry yet, so there is
			// nothing for this tick to drive or to consider complete.
			continue
		}
		scale := a.scale.Get(id, now)
		alpha := a.alpha.Get(id, now)
		a.bridge.SetTransform(id, scale)
		a.bridge.SetAlpha(id, alpha)

		if !a.scale.IsAnimating(id, now) && !a.alpha.IsAnimating(id, now) && !tr.completed {
			tr.completed = true
			done = append(done, id)
		}
	}
	callbacks := make([]func(), 0, len(done))
	for _, id := range done {
		if tr := a.states[id]; tr != nil && tr.onComplete != nil {
			callbacks = append(callbacks, tr.onComplete)
		}
		delete(a.states, id)
	}
	a.mu.Unlock()

	for _, cb := range callbacks {
		cb()
	}
}

// PopIn starts the open transition for id: scale 0.80→1.0, alpha 0→1 on
// the popin bezier over 500ms, preceded by an ~80ms settle delay so other
// apps finish their own resize first (spec §4.1 "Retile semantics").
func (a *Animator) PopIn(id compositor.WindowID) {
	handle := uuid.NewString()
	tr := &transition{id: handle, st: statePopinActive}
	a.mu.Lock()
	a.states[id] = tr
	a.mu.Unlock()
	a.log.Debug("animator.popin_started", wmlog.Fields{"window": id, "transition": handle})

	a.bridge.SetTransform(id, 0.80)
	a.bridge.SetAlpha(id, 0)

	go func() {
		time.Sleep(popinSettle)

		a.mu.Lock()
		if a.states[id] != tr {
			// Superseded (closed, cancelled, or re-popped) before the
			// settle delay elapsed; let whatever replaced it run.
			a.mu.Unlock()
			return
		}
		tr.started = true
		a.mu.Unlock()

		now := time.Now()
		// Seed the starting values with zero-duration steps; a Timeline
		// otherwise starts a never-seen key at 0.
		a.scale.AnimateTo(id, 0.80, 0, nil, now)
		a.alpha.AnimateTo(id, 0, 0, nil, now)
		a.scale.AnimateTo(id, 1.0, popinDuration, popinEasing, now)
		a.alpha.AnimateTo(id, 1.0, popinDuration, popinEasing, now)
	}()
}

// PopOut starts the close transition for id: scale 1.0→0.80, alpha 1→0 on
// the popout bezier over 200ms. onComplete is invoked exactly once, from
// the ticker goroutine, when the transition finishes (spec §4.1 "Close
// semantics": the Core uses this to issue the compositor close action).
func (a *Animator) PopOut(id compositor.WindowID, onComplete func()) {
	now := time.Now()
	handle := uuid.NewString()
	a.mu.Lock()
	a.states[id] = &transition{id: handle, st: stateCloseActive, onComplete: onComplete, started: true}
	a.mu.Unlock()
	a.log.Debug("animator.popout_started", wmlog.Fields{"window": id, "transition": handle})

	a.scale.AnimateTo(id, 1.0, 0, nil, now)
	a.alpha.AnimateTo(id, 1.0, 0, nil, now)
	a.scale.AnimateTo(id, 0.80, popoutDuration, popoutEasing, now)
	a.alpha.AnimateTo(id, 0.0, popoutDuration, popoutEasing, now)
}

// IsAnimating reports whether any window has an active transition.
func (a *Animator) IsAnimating() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.states) > 0
}

// CancelAll idempotently resets every tracked window's transform to
// identity (scale=1, alpha=1) and invokes any pending close-completion
// callback exactly once (spec §5 "Cancellation").
func (a *Animator) CancelAll() {
	a.mu.Lock()
	pending := a.states
	a.states = make(map[compositor.WindowID]*transition)
	a.scale.Clear()
	a.alpha.Clear()
	a.mu.Unlock()

	for id, tr := range pending {
		a.bridge.SetTransform(id, 1.0)
		a.bridge.SetAlpha(id, 1.0)
		if tr.onComplete != nil && !tr.completed {
			tr.completed = true
			tr.onComplete()
		}
	}
}

// ResetTransform is the unconditional startup reset (spec §4.4: "On
// process startup, an unconditional reset of transforms on all present
// windows clears stale state from a prior crash").
func (a *Animator) ResetTransform(id compositor.WindowID) {
	a.bridge.SetTransform(id, 1.0)
	a.bridge.SetAlpha(id, 1.0)
}
