/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// ResolveOutput is the resolve command result.
type ResolveOutput struct {
	Instance string `json:"instance" yaml:"instance"`
	Name     string `json:"name" yaml:"name"`

	// OwnedNodes are the node names attributed to this provider across
	// all declared roles, in role order.
	OwnedNodes []string `json:"ownedNodes,omitempty" yaml:"ownedNodes,omitempty"`
}

func resolveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "resolve",
		EnableShellCompletion: true,
		Usage:                 "Resolve a provider by name",
		ArgsUsage:             "NAME",
		Description: `Resolve a provider name against a store instance. A registered provider
is reported along with the node names it owns. An unregistered name
fails with a non-zero exit: the same distinction the query API makes
between absence (404) and a fault (5xx).

Examples:
  omxctl resolve platform-omx -c platform.yaml
  omxctl resolve vendor-omx -c platform.yaml -c vendor.yaml -i vendor`,
		Flags: []cli.Flag{
			configFlag,
			instanceFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			providerName := cmd.Args().First()
			if providerName == "" {
				return fmt.Errorf("provider name argument is required")
			}

			st, err := selectStore(cmd)
			if err != nil {
				return err
			}

			handle, ok := st.GetOmx(providerName)
			if !ok {
				return fmt.Errorf("provider %q not registered with instance %q",
					providerName, st.Name())
			}

			var owned []string
			for _, role := range st.Roles() {
				for _, node := range role.Nodes {
					if node.Owner == handle.Name() {
						owned = append(owned, node.Name)
					}
				}
			}

			return serialize(ctx, cmd, ResolveOutput{
				Instance:   st.Name(),
				Name:       handle.Name(),
				OwnedNodes: owned,
			})
		},
	}
}
