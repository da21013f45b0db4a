// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/observer/observer.go
// Summary: The WindowObserver collaborator (spec §2, §9): a typed event
// channel the Core owns and dispatches from, decoupling the OS-notification
// plumbing from Core state, per spec §9's "callback-based observer
// delegation" design note.

package observer

import "github.com/paneless-wm/paneless/internal/compositor"

// EventKind is the sum type of OS notifications the observer emits.
type EventKind int

const (
	WindowCreated EventKind = iota
	WindowDestroyed
	FocusChanged
	AppActivated
	AppTerminated
)

// Event is one observer notification. Only the fields relevant to Kind
// are populated.
type Event struct {
	Kind     EventKind
	WindowID compositor.WindowID
	OwnerPID int
	AppName  string
	BundleID string
	Title    string
}

// Core is the subset of the Core's surface the observer dispatches to —
// kept narrow so the observer package never imports the wm package
// (spec §9: the observer emits, the Core dispatches).
type Core interface {
	OnWindowEvent(Event)
}

// Observer emits window lifecycle events by polling and/or OS
// notification, and supports pause/resume so a workspace switch (spec
// §4.3) can avoid racing its own hide/show frame sets against live
// notifications.
type Observer interface {
	// Subscribe registers core to receive every future event.
	Subscribe(core Core)
	// Pause stops delivering queued events; any callback already
	// executing completes first (spec §5).
	Pause()
	// Resume restarts delivery and replays exactly one poll.
	Resume()
}

// Interceptor is the high-priority background loop that pre-hides newly
// created windows before they render at the app's default position (spec
// §4, §5, §9: a "window cloak" service that knows nothing about
// workspaces and never mutates Core state). It runs on its own timer,
// independent of the Core's single-threaded action queue.
type Interceptor interface {
	// Start begins the ~8ms polling loop.
	Start()
	// Stop halts the loop.
	Stop()
	// Acknowledge tells the interceptor the Core has taken over tracking
	// id, so the interceptor stops hiding it on its own.
	Acknowledge(id compositor.WindowID)
}
