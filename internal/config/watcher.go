// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/config/watcher.go
// Summary: Debounced file-change reload, with a suppress flag so a
// programmatic in-process apply never double-fires a reload (spec §9
// open question, resolved in SPEC_FULL.md §C.3).

package config

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/paneless-wm/paneless/internal/wmlog"
)

const debounceWindow = 150 * time.Millisecond

// Watcher watches a config file and invokes onReload at most once per
// debounce window after it changes, unless a Suppress() call is still in
// effect for that change.
type Watcher struct {
	path     string
	onReload func(Config)
	log      *wmlog.Logger

	fsw        *fsnotify.Watcher
	suppressed atomic.Bool
	timerMu    sync.Mutex
	timer      *time.Timer
	stop       chan struct{}
}

// NewWatcher starts watching path's parent directory (so editors that
// replace the file via rename-into-place still trigger events) and calls
// onReload with the freshly parsed Config after each debounced change.
func NewWatcher(path string, onReload func(Config), log *wmlog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir := parentDir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{path: path, onReload: onReload, log: log, fsw: fsw, stop: make(chan struct{})}
	go w.loop()
	return w, nil
}

// Suppress marks the next filesystem event for this file as caused by our
// own write, so the debounced reload it would otherwise trigger is
// skipped. This preserves the invariant that exactly one of {file-watch
// reload, in-process apply} fires per user-initiated settings change.
func (w *Watcher) Suppress() {
	w.suppressed.Store(true)
}

func (w *Watcher) Close() {
	close(w.stop)
	w.fsw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			w.scheduleReload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("config.watch_error", wmlog.Fields{"error": err.Error()})
		case <-w.stop:
			return
		}
	}
}

func (w *Watcher) scheduleReload() {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(debounceWindow, w.fireReload)
}

func (w *Watcher) fireReload() {
	if w.suppressed.CompareAndSwap(true, false) {
		w.log.Debug("config.reload_suppressed", wmlog.Fields{"path": w.path})
		return
	}
	cfg, err := Load(w.path, w.log)
	if err != nil {
		w.log.Error("config.reload_failed", wmlog.Fields{"path": w.path, "error": err.Error()})
		return
	}
	w.onReload(cfg)
}

func parentDir(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return "."
}
