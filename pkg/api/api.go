// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/coreos/go-systemd/v22/daemon"

	"github.com/NVIDIA/omx-store/pkg/config"
	"github.com/NVIDIA/omx-store/pkg/logging"
	"github.com/NVIDIA/omx-store/pkg/server"
)

const (
	name           = "omx-store-server"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/omx-store/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve loads the store instances from the given resource files, starts the
// API server, and blocks until shutdown. A configuration failure aborts
// before the listener opens: an instance that fails to load never serves.
func Serve(port int, configPaths ...string) error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	instances, err := config.LoadInstances(configPaths...)
	if err != nil {
		slog.Error("failed to load store configuration", "error", err)
		return err
	}

	h := NewHandler(instances)

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithPort(port),
		server.WithHandler(h.Routes()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Tell the service manager we are ready; harmless off-systemd.
	if sent, notifyErr := daemon.SdNotify(false, daemon.SdNotifyReady); notifyErr != nil {
		slog.Warn("sd_notify failed", "error", notifyErr)
	} else if sent {
		slog.Debug("sd_notify readiness sent")
	}

	defer func() {
		if _, notifyErr := daemon.SdNotify(false, daemon.SdNotifyStopping); notifyErr != nil {
			slog.Warn("sd_notify stopping failed", "error", notifyErr)
		}
	}()

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}
	return nil
}
