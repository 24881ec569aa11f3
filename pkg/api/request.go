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
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/NVIDIA/stack-advisor/pkg/configuration"
	"github.com/NVIDIA/stack-advisor/pkg/errors"
	"github.com/NVIDIA/stack-advisor/pkg/version"
)

// AdvisorRequest is the body of POST /v1/validate and POST /v1/recommend.
type AdvisorRequest struct {
	// Stack overrides the stack named in the snapshot, e.g. HDP-2.2.
	Stack string `json:"stack,omitempty" yaml:"stack,omitempty" validate:"omitempty,stackid"`

	// Services limits evaluation to the named services.
	Services []string `json:"services,omitempty" yaml:"services,omitempty" validate:"omitempty,dive,required"`

	// Snapshot is the cluster configuration to evaluate.
	Snapshot *configuration.Snapshot `json:"snapshot" yaml:"snapshot" validate:"required"`
}

// stack returns the effective stack identifier of the request.
func (r *AdvisorRequest) stack() string {
	if r.Stack != "" {
		return r.Stack
	}
	return r.Snapshot.Stack
}

func newRequestValidator() *playground.Validate {
	v := playground.New(playground.WithRequiredStructEnabled())
	if err := v.RegisterValidation("stackid", isStackID); err != nil {
		panic(fmt.Sprintf("failed to register stackid validation: %v", err))
	}
	return v
}

func isStackID(fl playground.FieldLevel) bool {
	_, err := version.ParseStackID(fl.Field().String())
	return err == nil
}

// decodeRequest reads and validates an AdvisorRequest from the body of r.
func (h *handlers) decodeRequest(r *http.Request) (*AdvisorRequest, error) {
	var req AdvisorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest, "request body too large",
				map[string]any{"limit": tooLarge.Limit})
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid request body", err)
	}

	if err := h.validate.Struct(&req); err != nil {
		return nil, requestError(err)
	}

	if req.stack() == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "stack is required in the request or the snapshot")
	}
	return &req, nil
}

// requestError turns validator failures into an INVALID_REQUEST error that
// lists each failing field with the rule it broke.
func requestError(err error) error {
	var verrs playground.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.Wrap(errors.ErrCodeInvalidRequest, "invalid request", err)
	}

	fields := make(map[string]any, len(verrs))
	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field())] = fe.Tag()
	}
	return errors.NewWithContext(errors.ErrCodeInvalidRequest, "invalid request", map[string]any{"fields": fields})
}
