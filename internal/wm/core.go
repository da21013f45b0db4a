// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/wm/core.go
// Summary: The Core (WindowManager) state machine (spec §4.3) — owns the
// authoritative model, consumes observer/router events, issues commands to
// the bridge and animator, and enforces every rule in spec §4.

package wm

import (
	"sync"
	"time"

	"github.com/paneless-wm/paneless/internal/animator"
	"github.com/paneless-wm/paneless/internal/border"
	"github.com/paneless-wm/paneless/internal/compositor"
	"github.com/paneless-wm/paneless/internal/config"
	"github.com/paneless-wm/paneless/internal/dimmer"
	"github.com/paneless-wm/paneless/internal/geom"
	"github.com/paneless-wm/paneless/internal/layout"
	"github.com/paneless-wm/paneless/internal/observer"
	"github.com/paneless-wm/paneless/internal/router"
	"github.com/paneless-wm/paneless/internal/wmlog"
)

// Core is the single owned root object (spec §9: "model as a single owned
// root object... passed by reference through the event pipeline", not
// ambient globals). All mutation of WorkspaceStore/tracked state happens
// here; everything else (LayoutEngine, WorkspaceStore, Animator,
// CompositorBridge) is a collaborator this struct holds by reference.
//
// mu serializes every call the way spec §5 describes the single-threaded
// action queue: this process has no native UI run loop to bind a queue to,
// so a mutex plays that role — Handle and OnWindowEvent, like every other
// exported method except SetObserver, take it for their full body, giving the same
// "action A fully processed before action B starts" guarantee.
type Core struct {
	mu sync.Mutex

	store  *WorkspaceStore
	bridge compositor.Bridge
	anim   *animator.Animator
	border *border.Renderer
	dimmer *dimmer.Dimmer
	log    *wmlog.Logger
	rules  Rules

	marks map[string]WindowID

	// sticky windows appear logically on every workspace of their home
	// monitor (spec §3 invariant 1). stickyHome records which monitor.
	sticky     map[WindowID]bool
	stickyHome map[WindowID]MonitorID

	monitorRegion  map[MonitorID]geom.Region
	monitorOrder   []MonitorID
	currentMonitor MonitorID

	obs           observer.Observer
	inAutoSwitch  bool
	closeInFlight map[WindowID]bool

	ancestry         ancestryFunc
	lastMouseFocusAt time.Time

	reload func() (config.Config, error)
}

// SetConfigReloader wires the callback the `reload_config` binding invokes
// (spec §6): re-reading and re-parsing the config file is a filesystem
// concern the Core itself has no path for, so the daemon supplies it.
// Without one, ReloadConfig actions are logged and ignored.
func (c *Core) SetConfigReloader(f func() (config.Config, error)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reload = f
}

// SetAncestryResolver wires the process-parent-chain lookup the swallow
// rule (spec §4.3 step 5) walks. Without one, swallow is a no-op — there
// is no portable standard-library way to read a process's parent PID, so
// this is left to whatever OS-integration package the daemon wires in.
func (c *Core) SetAncestryResolver(f ancestryFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ancestry = f
}

// New constructs a Core. Call AddMonitor at least once before handling
// any action.
func New(bridge compositor.Bridge, anim *animator.Animator, br *border.Renderer, dm *dimmer.Dimmer, log *wmlog.Logger, rules Rules) *Core {
	return &Core{
		store:         NewWorkspaceStore(),
		bridge:        bridge,
		anim:          anim,
		border:        br,
		dimmer:        dm,
		log:           log,
		rules:         rules,
		marks:         make(map[string]WindowID),
		sticky:        make(map[WindowID]bool),
		stickyHome:    make(map[WindowID]MonitorID),
		monitorRegion: make(map[MonitorID]geom.Region),
		closeInFlight: make(map[WindowID]bool),
	}
}

// AddMonitor registers a monitor and its full region; the Core itself
// insets that region by the outer gap when tiling (see region).
func (c *Core) AddMonitor(id MonitorID, region geom.Region) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.monitorRegion[id]; !exists {
		c.monitorOrder = append(c.monitorOrder, id)
	}
	c.monitorRegion[id] = region
	c.store.SetActive(id, 1)
	if c.currentMonitor == "" {
		c.currentMonitor = id
	}
}

// SetObserver attaches the observer this Core should pause/resume during
// workspace switches (spec §4.3 step 2/10).
func (c *Core) SetObserver(obs observer.Observer) {
	c.obs = obs
}

// WorkspaceSummary describes one occupied workspace for --list-workspaces.
type WorkspaceSummary struct {
	Monitor     MonitorID
	Workspace   WorkspaceNumber
	WindowCount int
	Active      bool
}

// ListWorkspaces returns a summary of every occupied workspace across every
// registered monitor, in monitor-registration order, for the panelessd
// --list-workspaces surface.
func (c *Core) ListWorkspaces() []WorkspaceSummary {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []WorkspaceSummary
	for _, monitor := range c.monitorOrder {
		active := c.store.Active(monitor)
		for _, n := range c.store.WorkspacesWithWindows(monitor) {
			out = append(out, WorkspaceSummary{
				Monitor:     monitor,
				Workspace:   n,
				WindowCount: c.store.WindowCount(monitor, n),
				Active:      n == active,
			})
		}
	}
	return out
}

// primaryMonitor returns the first registered monitor. Multi-monitor
// focus/move actions (spec §6's focus_monitor/move_to_monitor) operate
// relative to this ordering.
func (c *Core) primaryMonitor() MonitorID {
	if len(c.monitorOrder) == 0 {
		return ""
	}
	return c.monitorOrder[0]
}

// region returns monitor's usable tiling area: its full registered region
// inset by rules.OuterGap (spec §6 "outer_gap" — the padding between the
// monitor edge and the tiled area, distinct from inner_gap between tiles).
func (c *Core) region(monitor MonitorID) geom.Region {
	return c.monitorRegion[monitor].Inset(c.rules.OuterGap)
}

// activeMonitorLocked returns the monitor that monitor-relative actions
// (focus, move, tile) apply to: the one focus_monitor last landed on, or
// the primary monitor if none has been selected yet or it was removed.
func (c *Core) activeMonitorLocked() MonitorID {
	if _, ok := c.monitorRegion[c.currentMonitor]; ok {
		return c.currentMonitor
	}
	return c.primaryMonitor()
}

// monitorIndexLocked returns c.monitorOrder's index of monitor, or -1.
func (c *Core) monitorIndexLocked(monitor MonitorID) int {
	for i, id := range c.monitorOrder {
		if id == monitor {
			return i
		}
	}
	return -1
}

// Handle is the single entry point every action source funnels into
// (spec §9: "All entry points ... funnel into a single handle(Action)
// method").
func (c *Core) Handle(a router.Action) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handleLocked(a)
}

func (c *Core) handleLocked(a router.Action) {
	monitor := c.activeMonitorLocked()
	if monitor == "" {
		return
	}

	switch a.Kind {
	case router.FocusLeft:
		c.focusHorizontalLocked(monitor, -1, layout.Left)
	case router.FocusRight:
		c.focusHorizontalLocked(monitor, 1, layout.Right)
	case router.FocusUp:
		c.focusVerticalLocked(monitor, -1, layout.Up)
	case router.FocusDown:
		c.focusVerticalLocked(monitor, 1, layout.Down)
	case router.FocusNext:
		c.focusCycleLocked(monitor, 1)
	case router.FocusPrev:
		c.focusCycleLocked(monitor, -1)
	case router.SwapMaster:
		c.swapMasterLocked(monitor)
	case router.RotateNext:
		c.rotateLocked(monitor, 1)
	case router.RotatePrev:
		c.rotateLocked(monitor, -1)
	case router.CycleLayout:
		c.cycleLayoutLocked(monitor)
	case router.ToggleFloat:
		c.toggleFloatLocked(monitor)
	case router.ToggleFullscreen:
		c.toggleFullscreenLocked(monitor)
	case router.Close:
		c.closeFocusedLocked(monitor)
	case router.Retile:
		c.retileLocked(monitor)
	case router.ReloadConfig:
		c.reloadConfigLocked()
	case router.FocusMonitorLeft:
		c.focusMonitorLocked(monitor, -1)
	case router.FocusMonitorRight:
		c.focusMonitorLocked(monitor, 1)
	case router.MoveToMonitorLeft:
		c.moveToMonitorLocked(monitor, -1)
	case router.MoveToMonitorRight:
		c.moveToMonitorLocked(monitor, 1)
	case router.IncreaseGap:
		c.adjustGapLocked(monitor, 2)
	case router.DecreaseGap:
		c.adjustGapLocked(monitor, -2)
	case router.GrowFocused:
		c.adjustSplitLocked(monitor, 0.05)
	case router.ShrinkFocused:
		c.adjustSplitLocked(monitor, -0.05)
	case router.SwitchWorkspace:
		c.switchWorkspaceLocked(monitor, WorkspaceNumber(a.Workspace))
	case router.MoveToWorkspace:
		c.moveToWorkspaceLocked(monitor, WorkspaceNumber(a.Workspace))
	case router.Minimize:
		c.toggleMinimizeLocked(monitor)
	case router.SetMark:
		c.setMarkLocked(monitor, a.Mark)
	case router.JumpMark:
		c.jumpMarkLocked(a.Mark)
	case router.NiriConsume:
		c.consumeLocked(monitor)
	case router.NiriExpel:
		c.expelLocked(monitor)
	case router.PositionLeft, router.PositionRight, router.PositionUp, router.PositionDown, router.PositionFill, router.PositionCenter:
		c.positionFocusedLocked(monitor, a.Kind)
	default:
		c.log.Debug("action.unhandled", wmlog.Fields{"kind": a.Kind})
	}
}

// OnWindowEvent dispatches one observer notification (spec §3 "Lifecycle",
// §4.3).
func (c *Core) OnWindowEvent(ev observer.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch ev.Kind {
	case observer.WindowCreated:
		c.onCreateLocked(ev)
	case observer.WindowDestroyed:
		c.onDestroyLocked(ev.WindowID)
	case observer.AppActivated:
		c.onAppActivatedLocked(ev)
	case observer.AppTerminated:
		c.onAppTerminatedLocked(ev.OwnerPID)
	case observer.FocusChanged:
		// Informational only: the compositor already moved focus: the
		// Core's own focus field is only authoritative for windows it
		// manages, and other focus changes (e.g. to an excluded app)
		// don't require any model update.
	}
}
