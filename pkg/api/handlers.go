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
	stderrors "errors"
	"log/slog"
	"net/http"

	playground "github.com/go-playground/validator/v10"

	"github.com/NVIDIA/stack-advisor/pkg/advisor"
	"github.com/NVIDIA/stack-advisor/pkg/defaults"
	"github.com/NVIDIA/stack-advisor/pkg/errors"
	"github.com/NVIDIA/stack-advisor/pkg/recommender"
	"github.com/NVIDIA/stack-advisor/pkg/serializer"
	"github.com/NVIDIA/stack-advisor/pkg/server"
	"github.com/NVIDIA/stack-advisor/pkg/validator"
)

type handlers struct {
	version  string
	validate *playground.Validate
}

func newHandlers(version string) *handlers {
	return &handlers{
		version:  version,
		validate: newRequestValidator(),
	}
}

func (h *handlers) handleValidate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	req, err := h.decodeRequest(r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid request", nil)
		return
	}

	rs, err := advisor.Resolve(req.stack())
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to resolve stack", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.ValidateHandlerTimeout)
	defer cancel()

	v := validator.New(
		validator.WithVersion(h.version),
		validator.WithServices(req.Services...),
	)

	result, err := v.Validate(ctx, rs.Stack, rs.ConfigurationValidators(), req.Snapshot)
	if err != nil {
		server.WriteErrorFromErr(w, r, contextError(err), "Validation failed", map[string]any{"stack": rs.Stack})
		return
	}

	slog.Debug("validation served",
		"requestID", server.RequestIDFromRequest(r),
		"stack", result.Stack,
		"status", result.Summary.Status)

	serializer.RespondJSON(w, http.StatusOK, result)
}

func (h *handlers) handleRecommend(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	req, err := h.decodeRequest(r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid request", nil)
		return
	}

	rs, err := advisor.Resolve(req.stack())
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to resolve stack", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.RecommendHandlerTimeout)
	defer cancel()

	rec := recommender.New(
		recommender.WithVersion(h.version),
		recommender.WithServices(req.Services...),
	)

	out, err := rec.Recommend(ctx, rs.Stack, rs.ConfigurationRecommenders(), req.Snapshot)
	if err != nil {
		server.WriteErrorFromErr(w, r, contextError(err), "Recommendation failed", map[string]any{"stack": rs.Stack})
		return
	}

	slog.Debug("recommendation served",
		"requestID", server.RequestIDFromRequest(r),
		"stack", out.Stack,
		"changes", len(out.Changes))

	serializer.RespondJSON(w, http.StatusOK, out)
}

// handleStacks lists every registered stack, or describes the one named by
// the stack query parameter.
func (h *handlers) handleStacks(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	stack := r.URL.Query().Get("stack")
	if stack == "" {
		serializer.RespondJSON(w, http.StatusOK, advisor.GetCatalog())
		return
	}

	info, err := advisor.Describe(stack)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to describe stack", nil)
		return
	}
	serializer.RespondJSON(w, http.StatusOK, info)
}

func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{"method": r.Method, "allowed": method})
	return false
}

func contextError(err error) error {
	switch {
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.Wrap(errors.ErrCodeTimeout, "request timed out", err)
	case stderrors.Is(err, context.Canceled):
		return errors.Wrap(errors.ErrCodeUnavailable, "request canceled", err)
	default:
		return err
	}
}
