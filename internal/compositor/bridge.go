// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/compositor/bridge.go
// Summary: The CompositorBridge collaborator interface (spec §2, §6) — native
// window-frame/alpha/transform plumbing, deliberately out of this module's
// core scope. Callers depend on the interface; a logging stub satisfies it
// for tests and for daemon startup before a real backend is wired in.

package compositor

import "github.com/paneless-wm/paneless/internal/geom"

// WindowID is an opaque OS-level window identifier (spec §3).
type WindowID uint64

// WindowInfo is what the bridge reports for a window it enumerates.
type WindowInfo struct {
	ID       WindowID
	OwnerPID int
	AppName  string
	Title    string
	Frame    geom.Frame
}

// Bridge is the native-API surface the Core drives. A single bridge call
// failing for one window is a bridge-transient error (spec §7): callers
// log it and continue, they never treat it as fatal.
type Bridge interface {
	// SetFrame moves/resizes a window to frame.
	SetFrame(id WindowID, frame geom.Frame) error
	// SetAlpha sets window opacity in [0,1].
	SetAlpha(id WindowID, alpha float32) error
	// SetTransform applies a GPU-composited scale about the window's
	// center, used only by the Animator's popin/popout (spec §4.4);
	// position-only moves never go through this call.
	SetTransform(id WindowID, scale float32) error
	// SetBrightness applies an additive brightness offset, used by the
	// Dimmer (spec §4.6).
	SetBrightness(id WindowID, offset float32) error
	// Batch executes fn with display updates suspended, then re-enables
	// them, so a redistribution of N frames lands as one atomic update
	// (spec §4.3 "Retile semantics").
	Batch(fn func() error) error
	// FocusWithoutActivating focuses id without activating its owning
	// app's native desktop space (spec §2).
	FocusWithoutActivating(id WindowID) error
	// EnumerateCurrentSpace lists windows visible on the active native
	// space, used on startup to find crash-orphaned windows (spec §4.3).
	EnumerateCurrentSpace() ([]WindowInfo, error)
	// PerformCloseAction invokes the OS-level "press the close button"
	// action, called by the Animator when a popout completes (spec §4.3).
	PerformCloseAction(id WindowID) error
}
