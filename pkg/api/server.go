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
	"net/http"

	// registers the HDP stacks
	_ "github.com/NVIDIA/stack-advisor/pkg/advisor/hdp"
	"github.com/NVIDIA/stack-advisor/pkg/logging"
	"github.com/NVIDIA/stack-advisor/pkg/server"
)

const (
	name           = "advisord"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/stack-advisor/pkg/api.buildVersion=1.0.0"
	buildVersion = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, buildVersion)
	slog.Info("starting",
		"name", name,
		"version", buildVersion,
		"commit", commit,
		"date", date,
	)

	s := server.New(
		server.WithName(name),
		server.WithVersion(buildVersion),
		server.WithHandler(routes(newHandlers(buildVersion))),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

func routes(h *handlers) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/validate":  h.handleValidate,
		"/v1/recommend": h.handleRecommend,
		"/v1/stacks":    h.handleStacks,
	}
}
