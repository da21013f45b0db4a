// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/panelessd/daemon.go
// Summary: Wires the compositor bridge, animator, border, dimmer, config
// watcher, and Core together; the concrete observer/event-tap/monitor
// enumeration collaborators spec §1 places out of scope have no backing
// implementation in this module, so the daemon runs against a single
// synthesized monitor region and the logging compositor bridge stub.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/paneless-wm/paneless/internal/animator"
	"github.com/paneless-wm/paneless/internal/border"
	"github.com/paneless-wm/paneless/internal/compositor"
	"github.com/paneless-wm/paneless/internal/config"
	"github.com/paneless-wm/paneless/internal/dimmer"
	"github.com/paneless-wm/paneless/internal/geom"
	"github.com/paneless-wm/paneless/internal/router"
	"github.com/paneless-wm/paneless/internal/wm"
	"github.com/paneless-wm/paneless/internal/wmlog"
)

const primaryMonitor = wm.MonitorID("primary")

// defaultRegion stands in for the real monitor-enumeration collaborator
// (spec §1, out of scope): a single full-HD region, overridable later by
// whatever platform bridge replaces compositor.LoggingBridge.
var defaultRegion = geom.Region{X: 0, Y: 0, W: 1920, H: 1080}

type daemonState struct {
	cfg    config.Config
	log    *wmlog.Logger
	bridge compositor.Bridge
	anim   *animator.Animator
	core   *wm.Core
}

func resolveConfigPath(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return config.Path()
}

func snapshotPath(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), "workspaces.json")
}

func buildDaemon(configPath string, level logrus.Level) (*daemonState, error) {
	log := wmlog.New(level, "text")

	cfg, err := config.Load(configPath, log)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	rules := wm.ParseRules(cfg)

	bridge := compositor.NewLoggingBridge(log)
	anim := animator.New(bridge, log)
	anim.Run()

	borderCfg := border.Config{
		Enabled:       cfg.Section("border").GetBool("enabled", false),
		Width:         cfg.Section("border").GetInt("width", 2),
		Radius:        cfg.Section("border").GetInt("radius", 6),
		ActiveColor:   cfg.Section("border").GetString("active_color", "#ffffff"),
		InactiveColor: cfg.Section("border").GetString("inactive_color", "#444444"),
	}
	br := border.New(borderCfg, bridge)
	dm := dimmer.New(bridge, rules.DimUnfocused)

	core := wm.New(bridge, anim, br, dm, log, rules)
	core.AddMonitor(primaryMonitor, defaultRegion)
	core.SetConfigReloader(func() (config.Config, error) {
		return config.Load(configPath, log)
	})

	return &daemonState{cfg: cfg, log: log, bridge: bridge, anim: anim, core: core}, nil
}

// restorePersisted loads the last saved snapshot (if not expired) and
// reconciles it against whatever windows the bridge currently reports
// (spec §6 "Persistence format"), then runs the crash-orphan scan (spec
// §4.3 "Failure model") over the same window set.
func (d *daemonState) restorePersisted(path string) {
	snap, ok := wm.LoadSnapshotFile(path, time.Now(), d.log)
	discovered, err := d.bridge.EnumerateCurrentSpace()
	if err != nil {
		d.log.Warn("daemon.enumerate_failed", wmlog.Fields{"err": err})
	}
	if ok {
		d.core.RestoreSnapshot(snap, discovered)
	}
	d.core.StartupRecover(primaryMonitor, discovered)
}

func (d *daemonState) save(path string) {
	snap := d.core.BuildSnapshot(time.Now())
	wm.SaveSnapshotAsync(path, snap, d.log)
}

// runDaemon is the root command's default action: build every collaborator,
// restore prior state, watch the config file, and block until a shutdown
// signal, saving a fresh snapshot on the way out.
func runDaemon(configPath string, level logrus.Level) error {
	resolved, err := resolveConfigPath(configPath)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}

	d, err := buildDaemon(resolved, level)
	if err != nil {
		return err
	}
	defer d.anim.Stop()

	d.restorePersisted(snapshotPath(resolved))

	watcher, err := config.NewWatcher(resolved, func(cfg config.Config) {
		d.core.ApplyConfig(cfg)
	}, d.log)
	if err != nil {
		d.log.Warn("daemon.watch_failed", wmlog.Fields{"path": resolved, "err": err.Error()})
	} else {
		defer watcher.Close()
	}

	d.log.Info("daemon.started", wmlog.Fields{"config": resolved})

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	d.log.Info("daemon.shutting_down", wmlog.Fields{})
	d.save(snapshotPath(resolved))
	return nil
}

// runFocusWorkspace implements `panelessd --focus-workspace N` (spec §6
// "CLI"): enqueue a switch, run the event loop briefly, exit 0. With no
// concrete long-running observer wired in, "the event loop" collapses to
// the single Handle call plus the usual snapshot round-trip.
func runFocusWorkspace(configPath string, level logrus.Level, n int) error {
	resolved, err := resolveConfigPath(configPath)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}

	d, err := buildDaemon(resolved, level)
	if err != nil {
		return err
	}
	defer d.anim.Stop()

	path := snapshotPath(resolved)
	d.restorePersisted(path)
	d.core.Handle(router.Action{Kind: router.SwitchWorkspace, Workspace: n})
	d.save(path)
	return nil
}

// runListWorkspaces implements `panelessd --list-workspaces` (spec §6
// "CLI"): print every occupied workspace, marking the current one.
func runListWorkspaces(configPath string, level logrus.Level) error {
	resolved, err := resolveConfigPath(configPath)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}

	d, err := buildDaemon(resolved, level)
	if err != nil {
		return err
	}
	defer d.anim.Stop()

	d.restorePersisted(snapshotPath(resolved))

	for _, ws := range d.core.ListWorkspaces() {
		line := fmt.Sprintf("Workspace %d (%d windows)", ws.Workspace, ws.WindowCount)
		if ws.Active {
			line += " <- current"
		}
		fmt.Println(line)
	}
	return nil
}
