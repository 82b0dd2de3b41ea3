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

	"github.com/NVIDIA/omx-store/pkg/config"
	"github.com/NVIDIA/omx-store/pkg/serializer"
	"github.com/NVIDIA/omx-store/pkg/store"
)

// flags shared across query commands
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write output to file instead of stdout",
	}

	formatFlag = &cli.StringFlag{
		Name:  "format",
		Value: string(serializer.FormatYAML),
		Usage: fmt.Sprintf("Output format (supported values: %s)", serializer.SupportedFormats()),
	}

	configFlag = &cli.StringSliceFlag{
		Name:     "config",
		Aliases:  []string{"c"},
		Required: true,
		Usage:    "Path to a store resource file (repeatable)",
	}

	instanceFlag = &cli.StringFlag{
		Name:    "instance",
		Aliases: []string{"i"},
		Usage:   "Store instance to query (platform or vendor); optional when a single resource is given",
	}
)

// parseFormat validates the --format flag value.
func parseFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return f, fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}

// selectStore loads the resource files given via --config and returns the
// instance named by --instance. When the flag is omitted and exactly one
// instance was loaded, that instance is selected.
func selectStore(cmd *cli.Command) (*store.Store, error) {
	instances, err := config.LoadInstances(cmd.StringSlice("config")...)
	if err != nil {
		return nil, err
	}

	instName := cmd.String("instance")
	if instName == "" {
		if len(instances) != 1 {
			return nil, fmt.Errorf("multiple instances loaded, select one with --instance")
		}
		for _, st := range instances {
			return st, nil
		}
	}

	st, ok := instances[instName]
	if !ok {
		return nil, fmt.Errorf("instance %q not found in the given resources", instName)
	}
	return st, nil
}

// serialize writes data in the requested format to --output or stdout.
func serialize(ctx context.Context, cmd *cli.Command, data any) error {
	outFormat, err := parseFormat(cmd)
	if err != nil {
		return err
	}

	ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, data)
}
