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

package validator

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/NVIDIA/stack-advisor/pkg/configuration"
	"github.com/NVIDIA/stack-advisor/pkg/header"
)

const (
	// APIVersion is the API version for validation results.
	APIVersion = "advisor.nvidia.com/v1"
)

// Validator runs the service validators of a rule set against a snapshot.
type Validator struct {
	// Version is the validator version (typically the CLI version).
	Version string

	// Services limits the run to these services. Empty means all.
	Services []string
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithVersion returns an Option that sets the Validator version string.
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.Version = version
	}
}

// WithServices returns an Option that limits validation to the named services.
func WithServices(services ...string) Option {
	return func(v *Validator) {
		v.Services = services
	}
}

// New creates a new Validator with the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate evaluates every service validator whose service is installed and
// whose namespace is present in the snapshot. Services run in name order and
// items keep the order each validator produced them in.
func (v *Validator) Validate(ctx context.Context, stack string, validators map[string]Entry, snap *configuration.Snapshot) (*ValidationResult, error) {
	start := time.Now()

	if snap == nil {
		return nil, fmt.Errorf("snapshot cannot be nil")
	}

	result := NewValidationResult()
	result.Init(header.KindValidationResult, APIVersion, v.Version)
	result.Stack = stack

	for _, service := range slices.Sorted(maps.Keys(validators)) {
		select {
		case <-ctx.Done():
			validationRunsTotal.WithLabelValues("canceled").Inc()
			return nil, ctx.Err()
		default:
		}

		if !v.selected(service) || !snap.HasService(service) {
			continue
		}

		entry := validators[service]
		if entry.Validate == nil || !snap.Configurations.HasSite(entry.Namespace) {
			slog.Debug("skipping service validator",
				"service", service,
				"namespace", entry.Namespace)
			continue
		}

		serviceStart := time.Now()
		items := entry.Validate(snap.Configurations.Site(entry.Namespace), snap.Configurations)
		validatorDuration.WithLabelValues(service).Observe(time.Since(serviceStart).Seconds())

		result.Summary.Services = append(result.Summary.Services, service)
		result.add(items)
	}

	result.finalize()
	result.Summary.Duration = time.Since(start)

	validationRunsTotal.WithLabelValues(string(result.Summary.Status)).Inc()
	validationItemsTotal.WithLabelValues(string(SeverityWarn)).Add(float64(result.Summary.Warnings))
	validationItemsTotal.WithLabelValues(string(SeverityError)).Add(float64(result.Summary.Errors))

	slog.Debug("validation completed",
		"stack", stack,
		"services", result.Summary.Services,
		"warnings", result.Summary.Warnings,
		"errors", result.Summary.Errors,
		"status", result.Summary.Status,
		"duration", result.Summary.Duration)

	return result, nil
}

func (v *Validator) selected(service string) bool {
	if len(v.Services) == 0 {
		return true
	}
	return slices.ContainsFunc(v.Services, func(s string) bool {
		return strings.EqualFold(s, service)
	})
}
