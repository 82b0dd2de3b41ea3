/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/omx-store/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the registry query server",
		Description: `Run the registry query server over the given store resource files.
Each file defines one deployment ("platform" or "vendor"); both can be
hosted side by side and are selected by the {instance} path segment.

The server blocks until SIGINT or SIGTERM, then shuts down gracefully.
A resource that fails to load aborts startup before the listener opens.

Examples:
  omxctl serve -c platform.yaml -c vendor.yaml
  omxctl serve -c platform.yaml --port 9090`,
		Flags: []cli.Flag{
			configFlag,
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   8080,
				Usage:   "HTTP server port",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.Serve(int(cmd.Int("port")), cmd.StringSlice("config")...)
		},
	}
}
