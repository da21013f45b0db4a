// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/panelessd/main.go
// Summary: panelessd command tree. Root runs the daemon; --focus-workspace
// and --list-workspaces are one-shot CLI actions against persisted state.

package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		focusWorkspace int
		listWorkspaces bool
		configPath     string
		logLevel       string
	)

	cmd := &cobra.Command{
		Use:   "panelessd",
		Short: "panelessd is a tiling window manager daemon",
		Long:  "panelessd arranges windows into master-stack or scrolling-column layouts across per-monitor virtual workspaces.",
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				level = logrus.InfoLevel
			}

			switch {
			case listWorkspaces:
				return runListWorkspaces(configPath, level)
			case cmd.Flags().Changed("focus-workspace"):
				return runFocusWorkspace(configPath, level, focusWorkspace)
			default:
				return runDaemon(configPath, level)
			}
		},
	}

	cmd.Flags().IntVar(&focusWorkspace, "focus-workspace", 0, "switch to workspace N, run the event loop briefly, and exit")
	cmd.Flags().BoolVar(&listWorkspaces, "list-workspaces", false, "print every occupied workspace and exit")
	cmd.Flags().StringVar(&configPath, "config", "", "path to config.ini (default: $XDG_CONFIG_HOME/paneless/config.ini)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	return cmd
}
