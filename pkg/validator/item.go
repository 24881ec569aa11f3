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
	"github.com/NVIDIA/stack-advisor/pkg/configuration"
)

// Severity is the level of a diagnostic.
type Severity string

const (
	// SeverityWarn flags a configuration that works but violates a recommendation.
	SeverityWarn Severity = "WARN"

	// SeverityError flags a configuration that will not work.
	SeverityError Severity = "ERROR"
)

// IsValid reports whether s is a known severity.
func (s Severity) IsValid() bool {
	return s == SeverityWarn || s == SeverityError
}

// Finding is a severity and message not yet attached to a property.
type Finding struct {
	Severity Severity `json:"level" yaml:"level"`
	Message  string   `json:"message" yaml:"message"`
}

// WarnItem returns a WARN finding.
func WarnItem(message string) Finding {
	return Finding{Severity: SeverityWarn, Message: message}
}

// ErrorItem returns an ERROR finding.
func ErrorItem(message string) Finding {
	return Finding{Severity: SeverityError, Message: message}
}

// PropertyItem attaches a finding to a property of the namespace under validation.
type PropertyItem struct {
	Property string `json:"property" yaml:"property"`
	Finding  `json:",inline" yaml:",inline"`
}

// Item is a single diagnostic about one property of one namespace.
// The property may be absent from the snapshot; it is always a known key.
type Item struct {
	Namespace string   `json:"namespace" yaml:"namespace"`
	Property  string   `json:"property" yaml:"property"`
	Severity  Severity `json:"level" yaml:"level"`
	Message   string   `json:"message" yaml:"message"`
}

// ToProblems attaches the namespace to every property item, preserving order.
func ToProblems(items []PropertyItem, namespace string) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		out = append(out, Item{
			Namespace: namespace,
			Property:  it.Property,
			Severity:  it.Severity,
			Message:   it.Message,
		})
	}
	return out
}

// ValidateFunc validates the properties of one namespace. The full configuration
// set is passed along for cross-namespace rules. Implementations must not
// modify either argument.
type ValidateFunc func(properties configuration.Properties, configurations configuration.Configurations) []Item

// Entry binds a validate function to the namespace it inspects.
type Entry struct {
	Namespace string
	Validate  ValidateFunc
}
