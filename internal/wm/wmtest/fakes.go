// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/wm/wmtest/fakes.go
// Summary: Shared test doubles for internal/wm, in the teacher's style of
// hand-rolled fakes over a mocking library (see server/session_test.go).

package wmtest

import (
	"sync"

	"github.com/paneless-wm/paneless/internal/compositor"
	"github.com/paneless-wm/paneless/internal/geom"
)

// FakeBridge records every call Core makes without touching any real
// compositor, so Core tests can assert on frames/alpha/focus directly.
type FakeBridge struct {
	mu sync.Mutex

	Frames      map[compositor.WindowID]geom.Frame
	Alphas      map[compositor.WindowID]float32
	Transforms  map[compositor.WindowID]float32
	Brightness  map[compositor.WindowID]float32
	Focused     compositor.WindowID
	ClosedCalls []compositor.WindowID
	Space       []compositor.WindowInfo

	FailSetFrame bool
}

// NewFakeBridge returns a ready-to-use FakeBridge.
func NewFakeBridge() *FakeBridge {
	return &FakeBridge{
		Frames:     make(map[compositor.WindowID]geom.Frame),
		Alphas:     make(map[compositor.WindowID]float32),
		Transforms: make(map[compositor.WindowID]float32),
		Brightness: make(map[compositor.WindowID]float32),
	}
}

func (f *FakeBridge) SetFrame(id compositor.WindowID, frame geom.Frame) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailSetFrame {
		return errTransient
	}
	f.Frames[id] = frame
	return nil
}

func (f *FakeBridge) SetAlpha(id compositor.WindowID, alpha float32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Alphas[id] = alpha
	return nil
}

func (f *FakeBridge) SetTransform(id compositor.WindowID, scale float32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Transforms[id] = scale
	return nil
}

func (f *FakeBridge) SetBrightness(id compositor.WindowID, offset float32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Brightness[id] = offset
	return nil
}

func (f *FakeBridge) Batch(fn func() error) error {
	return fn()
}

func (f *FakeBridge) FocusWithoutActivating(id compositor.WindowID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Focused = id
	return nil
}

func (f *FakeBridge) EnumerateCurrentSpace() ([]compositor.WindowInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Space, nil
}

func (f *FakeBridge) PerformCloseAction(id compositor.WindowID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ClosedCalls = append(f.ClosedCalls, id)
	return nil
}

// FrameOf returns the last frame set for id, for assertions.
func (f *FakeBridge) FrameOf(id compositor.WindowID) geom.Frame {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Frames[id]
}

// AlphaOf returns the last alpha set for id.
func (f *FakeBridge) AlphaOf(id compositor.WindowID) float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Alphas[id]
}

type transientError struct{ msg string }

func (e *transientError) Error() string { return e.msg }

var errTransient = &transientError{msg: "fake bridge: simulated failure"}
