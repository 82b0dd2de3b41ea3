/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/omx-store/pkg/logging"
)

const (
	name           = "omxctl"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// New assembles the root command with all subcommands attached.
func New() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "OMX store resource tooling",
		Version: version,
		Description: fmt.Sprintf(`%s - OMX store CLI

Version: %s
Commit:  %s
Built:   %s

Tooling to inspect, validate, and serve OMX store resources:

roles      - list codec roles with their preference-ordered node lists
attributes - list service-scoped attributes
resolve    - resolve a provider by name
validate   - validate store resource files
serve      - run the registry query server`, name, version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date,
			)
			return ctx, nil
		},
		Commands: []*cli.Command{
			rolesCmd(),
			attributesCmd(),
			resolveCmd(),
			validateCmd(),
			serveCmd(),
		},
	}
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := New().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
