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
	"time"

	"github.com/NVIDIA/stack-advisor/pkg/header"
)

// ValidationStatus represents the overall validation outcome.
type ValidationStatus string

const (
	// ValidationStatusPass indicates no diagnostics were produced.
	ValidationStatusPass ValidationStatus = "pass"

	// ValidationStatusWarn indicates only warnings were produced.
	ValidationStatusWarn ValidationStatus = "warn"

	// ValidationStatusFail indicates at least one error was produced.
	ValidationStatusFail ValidationStatus = "fail"
)

// ValidationResult represents the complete validation outcome.
type ValidationResult struct {
	header.Header `json:",inline" yaml:",inline"`

	// Stack is the rule set the snapshot was validated against.
	Stack string `json:"stack" yaml:"stack"`

	// Summary contains aggregate validation statistics.
	Summary ValidationSummary `json:"summary" yaml:"summary"`

	// Items contains the diagnostics in rule order.
	Items []Item `json:"items" yaml:"items"`
}

// ValidationSummary contains aggregate statistics about the validation.
type ValidationSummary struct {
	// Services is the list of services whose validators ran.
	Services []string `json:"services" yaml:"services"`

	// Warnings is the count of WARN items.
	Warnings int `json:"warnings" yaml:"warnings"`

	// Errors is the count of ERROR items.
	Errors int `json:"errors" yaml:"errors"`

	// Total is the total number of items.
	Total int `json:"total" yaml:"total"`

	// Status is the overall validation status.
	Status ValidationStatus `json:"status" yaml:"status"`

	// Duration is how long the validation took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// NewValidationResult creates a new ValidationResult with initialized slices.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Summary: ValidationSummary{Services: make([]string, 0)},
		Items:   make([]Item, 0),
	}
}

// add appends items and updates the counters.
func (r *ValidationResult) add(items []Item) {
	for _, it := range items {
		switch it.Severity {
		case SeverityError:
			r.Summary.Errors++
		default:
			r.Summary.Warnings++
		}
	}
	r.Items = append(r.Items, items...)
	r.Summary.Total = len(r.Items)
}

// finalize derives the overall status from the counters.
func (r *ValidationResult) finalize() {
	switch {
	case r.Summary.Errors > 0:
		r.Summary.Status = ValidationStatusFail
	case r.Summary.Warnings > 0:
		r.Summary.Status = ValidationStatusWarn
	default:
		r.Summary.Status = ValidationStatusPass
	}
}

// ShouldFail reports whether the result breaches the given thresholds.
func (r *ValidationResult) ShouldFail(failOnWarn, failOnError bool) bool {
	if failOnError && r.Summary.Errors > 0 {
		return true
	}
	return failOnWarn && r.Summary.Warnings > 0
}

// ForNamespace returns the items reported against the given namespace.
func (r *ValidationResult) ForNamespace(namespace string) []Item {
	out := make([]Item, 0)
	for _, it := range r.Items {
		if it.Namespace == namespace {
			out = append(out, it)
		}
	}
	return out
}

// TableHeader returns the column names used for table output.
func (r *ValidationResult) TableHeader() []string {
	return []string{"NAMESPACE", "PROPERTY", "LEVEL", "MESSAGE"}
}

// TableRows returns one row per diagnostic, in rule order.
func (r *ValidationResult) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Items))
	for _, it := range r.Items {
		rows = append(rows, []string{it.Namespace, it.Property, string(it.Severity), it.Message})
	}
	return rows
}
