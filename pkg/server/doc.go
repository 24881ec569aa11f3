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

// Package server provides the HTTP server shared by the advisor API.
//
// Applications register their handlers with WithHandler; each one is wrapped
// in the middleware chain:
//
//	metrics -> API version -> request ID -> panic recovery -> rate limit -> body limit -> logging
//
// The server also serves, without rate limiting:
//
//	GET /         name, version, readiness and the registered routes
//	GET /health   liveness probe
//	GET /ready    readiness probe (503 until the listener is up)
//	GET /metrics  Prometheus metrics
//
// Errors are written as ErrorResponse bodies carrying the request ID. Codes
// from pkg/errors map to HTTP status codes through HTTPStatusFromCode.
//
// Configuration defaults come from pkg/defaults and can be overridden with
// the PORT, SHUTDOWN_TIMEOUT_SECONDS, RATE_LIMIT and RATE_LIMIT_BURST
// environment variables.
//
// Usage:
//
//	s := server.New(
//	    server.WithName("advisord"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{"/v1/validate": validate}),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
package server
