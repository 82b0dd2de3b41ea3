/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/omx-store/pkg/store"
)

// AttributesOutput is the attributes command result.
type AttributesOutput struct {
	Instance   string            `json:"instance" yaml:"instance"`
	Attributes []store.Attribute `json:"attributes" yaml:"attributes"`
}

func attributesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "attributes",
		EnableShellCompletion: true,
		Usage:                 "List service-scoped attributes",
		Description: `List the service-scoped attributes a store instance declares, in the
order they were configured.

Examples:
  omxctl attributes -c platform.yaml
  omxctl attributes -c platform.yaml --key-prefix supports-`,
		Flags: []cli.Flag{
			configFlag,
			instanceFlag,
			&cli.StringFlag{
				Name:  "key-prefix",
				Usage: "Only report attributes whose key starts with this prefix",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			st, err := selectStore(cmd)
			if err != nil {
				return err
			}

			attrs, err := st.ServiceAttributes()
			if err != nil {
				return err
			}

			if prefix := cmd.String("key-prefix"); prefix != "" {
				kept := make([]store.Attribute, 0, len(attrs))
				for _, a := range attrs {
					if strings.HasPrefix(a.Key, prefix) {
						kept = append(kept, a)
					}
				}
				attrs = kept
			}

			return serialize(ctx, cmd, AttributesOutput{
				Instance:   st.Name(),
				Attributes: attrs,
			})
		},
	}
}
