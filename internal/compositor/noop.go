// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/compositor/noop.go
// Summary: A logging stub Bridge used before a real accessibility/compositor
// backend is wired in, and as the default in integration tests.

package compositor

import (
	"github.com/paneless-wm/paneless/internal/geom"
	"github.com/paneless-wm/paneless/internal/wmlog"
)

// LoggingBridge satisfies Bridge by logging every call and reporting no
// windows on the current space. It never errors, so it is a safe default
// for `panelessd` to start against before platform wiring lands.
type LoggingBridge struct {
	log *wmlog.Logger
}

// NewLoggingBridge constructs a LoggingBridge using logger for diagnostics.
func NewLoggingBridge(logger *wmlog.Logger) *LoggingBridge {
	return &LoggingBridge{log: logger}
}

func (b *LoggingBridge) SetFrame(id WindowID, frame geom.Frame) error {
	b.log.Debug("bridge.set_frame", wmlog.Fields{"window_id": id, "frame": frame})
	return nil
}

func (b *LoggingBridge) SetAlpha(id WindowID, alpha float32) error {
	b.log.Debug("bridge.set_alpha", wmlog.Fields{"window_id": id, "alpha": alpha})
	return nil
}

func (b *LoggingBridge) SetTransform(id WindowID, scale float32) error {
	b.log.Debug("bridge.set_transform", wmlog.Fields{"window_id": id, "scale": scale})
	return nil
}

func (b *LoggingBridge) SetBrightness(id WindowID, offset float32) error {
	b.log.Debug("bridge.set_brightness", wmlog.Fields{"window_id": id, "offset": offset})
	return nil
}

func (b *LoggingBridge) Batch(fn func() error) error {
	return fn()
}

func (b *LoggingBridge) FocusWithoutActivating(id WindowID) error {
	b.log.Debug("bridge.focus", wmlog.Fields{"window_id": id})
	return nil
}

// EnumerateCurrentSpace reports no windows: this stub has no live space to
// query. A real backend populates WindowInfo.Title here too, since the
// persisted-snapshot restore's title match (spec §6) needs it.
func (b *LoggingBridge) EnumerateCurrentSpace() ([]WindowInfo, error) {
	return nil, nil
}

func (b *LoggingBridge) PerformCloseAction(id WindowID) error {
	b.log.Debug("bridge.close", wmlog.Fields{"window_id": id})
	return nil
}
