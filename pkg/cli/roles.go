/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/omx-store/pkg/store"
)

// RolesOutput is the roles command result.
type RolesOutput struct {
	Instance string           `json:"instance" yaml:"instance"`
	Prefix   string           `json:"prefix" yaml:"prefix"`
	Roles    []store.RoleInfo `json:"roles" yaml:"roles"`
}

func rolesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "roles",
		EnableShellCompletion: true,
		Usage:                 "List codec roles with their preference-ordered node lists",
		Description: `List the codec roles a store instance declares, each with its media type
and node list in preference order. Node order is reported exactly as
configured; consumers pick the first node they can instantiate.

Examples:
  omxctl roles -c platform.yaml
  omxctl roles -c platform.yaml -c vendor.yaml -i vendor
  omxctl roles -c platform.yaml --role video_decoder.avc -o roles.json --format json`,
		Flags: []cli.Flag{
			configFlag,
			instanceFlag,
			&cli.StringFlag{
				Name:  "role",
				Usage: "Only report the role with this exact name (e.g. video_decoder.avc)",
			},
			&cli.StringFlag{
				Name:  "media-type",
				Usage: "Only report roles with this media type (e.g. video/avc)",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			st, err := selectStore(cmd)
			if err != nil {
				return err
			}

			roles := st.Roles()

			if roleName := cmd.String("role"); roleName != "" {
				roles = filterRoles(roles, func(r store.RoleInfo) bool {
					return r.Role == roleName
				})
				if len(roles) == 0 {
					return fmt.Errorf("role %q not declared by instance %q", roleName, st.Name())
				}
			}

			if mediaType := cmd.String("media-type"); mediaType != "" {
				roles = filterRoles(roles, func(r store.RoleInfo) bool {
					return r.Type == mediaType
				})
			}

			return serialize(ctx, cmd, RolesOutput{
				Instance: st.Name(),
				Prefix:   st.NodePrefix(),
				Roles:    roles,
			})
		},
	}
}

func filterRoles(roles []store.RoleInfo, keep func(store.RoleInfo) bool) []store.RoleInfo {
	out := make([]store.RoleInfo, 0, len(roles))
	for _, r := range roles {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
