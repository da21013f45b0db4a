// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/wm/errors.go
// Summary: The abstract error taxonomy from spec §7, as wrapped sentinel
// errors rather than exception types, mirroring the teacher's
// server/manager.go ErrSessionNotFound pattern.

package wm

import "errors"

// Sentinel kinds for errors.Is discrimination at Core call sites.
var (
	// ErrBridgeTransient: a single compositor/accessibility call failed
	// for one window. Non-fatal; the affected window is skipped for this
	// action only.
	ErrBridgeTransient = errors.New("wm: bridge call failed for window")

	// ErrIdentityLost: the accessibility element for a tracked window can
	// no longer be resolved. The window is removed from tiled but stays
	// in tracked until an observer destroy event arrives.
	ErrIdentityLost = errors.New("wm: window identity no longer resolvable")

	// ErrInvariantViolated: internal inconsistency (e.g. column flatten
	// != tiled). Logged and self-healed; never fatal.
	ErrInvariantViolated = errors.New("wm: internal invariant violated")

	// ErrPermissionMissing: event-tap creation failed or accessibility
	// trust is absent. The action loop does not start until granted.
	ErrPermissionMissing = errors.New("wm: required OS permission missing")

	// ErrConfigParse: a malformed config line. Logged and skipped;
	// defaults fill the gap.
	ErrConfigParse = errors.New("wm: config line could not be parsed")
)

// wrapBridge wraps err (which may be nil) as bridge-transient, or returns
// nil unchanged.
func wrapBridge(err error) error {
	if err == nil {
		return nil
	}
	return &taggedError{kind: ErrBridgeTransient, cause: err}
}

type taggedError struct {
	kind  error
	cause error
}

func (e *taggedError) Error() string {
	if e.cause == nil {
		return e.kind.Error()
	}
	return e.kind.Error() + ": " + e.cause.Error()
}

func (e *taggedError) Unwrap() error { return e.kind }
