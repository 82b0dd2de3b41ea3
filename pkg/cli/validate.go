/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/omx-store/pkg/attr"
	"github.com/NVIDIA/omx-store/pkg/config"
)

// ValidationStatus is the outcome of validating a single resource file.
type ValidationStatus string

const (
	ValidationStatusPass ValidationStatus = "pass"
	ValidationStatusFail ValidationStatus = "fail"
)

// ResourceValidation is the per-file validation result.
type ResourceValidation struct {
	Path     string           `json:"path" yaml:"path"`
	Instance string           `json:"instance,omitempty" yaml:"instance,omitempty"`
	Status   ValidationStatus `json:"status" yaml:"status"`
	Errors   []string         `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// ValidationOutput is the validate command result.
type ValidationOutput struct {
	Results []ResourceValidation `json:"results" yaml:"results"`
	Summary ValidationSummary    `json:"summary" yaml:"summary"`
}

// ValidationSummary aggregates the per-file outcomes.
type ValidationSummary struct {
	Total  int              `json:"total" yaml:"total"`
	Passed int              `json:"passed" yaml:"passed"`
	Failed int              `json:"failed" yaml:"failed"`
	Status ValidationStatus `json:"status" yaml:"status"`
}

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate store resource files",
		Description: `Validate store resource files against the constraints the registry
enforces at startup: resource envelope (kind, apiVersion, instance name),
node-name prefix, provider referential integrity, and duplicate
detection. Files that fail here would abort the server before it opens
its listener.

With --grammar, attribute keys and values are additionally checked
against the attribute naming conventions (supports-* and feature-*
prefixes, numeric, size, ratio, range, and list value forms).

Examples:
  omxctl validate -c platform.yaml -c vendor.yaml
  omxctl validate -c platform.yaml --grammar --fail-on-error`,
		Flags: []cli.Flag{
			configFlag,
			&cli.BoolFlag{
				Name:  "grammar",
				Usage: "Also lint attribute keys and values against naming conventions",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if any resource fails validation",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			paths := cmd.StringSlice("config")
			lintGrammar := cmd.Bool("grammar")

			out := ValidationOutput{
				Results: make([]ResourceValidation, 0, len(paths)),
			}

			seen := make(map[string]string, len(paths))
			for _, path := range paths {
				result := validateResource(path, lintGrammar)

				if result.Instance != "" {
					if prev, ok := seen[result.Instance]; ok {
						result.Status = ValidationStatusFail
						result.Errors = append(result.Errors,
							fmt.Sprintf("instance %q already defined in %q", result.Instance, prev))
					} else {
						seen[result.Instance] = path
					}
				}

				out.Results = append(out.Results, result)
			}

			out.Summary.Total = len(out.Results)
			out.Summary.Status = ValidationStatusPass
			for _, r := range out.Results {
				if r.Status == ValidationStatusPass {
					out.Summary.Passed++
				} else {
					out.Summary.Failed++
					out.Summary.Status = ValidationStatusFail
				}
			}

			if err := serialize(ctx, cmd, out); err != nil {
				return err
			}

			slog.Info("validation completed",
				"status", out.Summary.Status,
				"passed", out.Summary.Passed,
				"failed", out.Summary.Failed,
			)

			if cmd.Bool("fail-on-error") && out.Summary.Status == ValidationStatusFail {
				return fmt.Errorf("validation failed: %d resource(s) did not pass", out.Summary.Failed)
			}
			return nil
		},
	}
}

// validateResource checks a single resource file; all findings are collected
// rather than stopping at the first.
func validateResource(path string, lintGrammar bool) ResourceValidation {
	result := ResourceValidation{
		Path:   path,
		Status: ValidationStatusPass,
	}

	r, err := config.LoadResource(path)
	if err != nil {
		result.Status = ValidationStatusFail
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	result.Instance = r.Metadata.Name

	if _, err := r.Build(); err != nil {
		result.Status = ValidationStatusFail
		result.Errors = append(result.Errors, err.Error())
	}

	if lintGrammar {
		for _, a := range r.Spec.ServiceAttributes {
			if err := attr.Lint(a.Key, a.Value); err != nil {
				result.Status = ValidationStatusFail
				result.Errors = append(result.Errors,
					fmt.Sprintf("service attribute %q: %v", a.Key, err))
			}
		}
		for _, role := range r.Spec.Roles {
			for _, node := range role.Nodes {
				for _, a := range node.Attributes {
					if err := attr.Lint(a.Key, a.Value); err != nil {
						result.Status = ValidationStatusFail
						result.Errors = append(result.Errors,
							fmt.Sprintf("node %q attribute %q: %v", node.Name, a.Key, err))
					}
				}
			}
		}
	}

	return result
}
