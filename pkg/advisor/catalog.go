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

package advisor

import (
	"strings"
)

// StackInfo describes the effective rules of a registered stack.
type StackInfo struct {
	Stack    string   `json:"stack" yaml:"stack"`
	Parent   string   `json:"parent,omitempty" yaml:"parent,omitempty"`
	Lineage  []string `json:"lineage" yaml:"lineage"`
	Services []string `json:"services" yaml:"services"`

	// Validated maps each validated service to the namespace its rules read.
	Validated map[string]string `json:"validated,omitempty" yaml:"validated,omitempty"`

	// Recommended lists the services with a recommend function.
	Recommended []string `json:"recommended,omitempty" yaml:"recommended,omitempty"`
}

// Catalog is the list of registered stacks in release order.
type Catalog struct {
	Stacks []StackInfo `json:"stacks" yaml:"stacks"`
}

// Describe resolves stack in r and summarizes its effective rules.
func (r *Registry) Describe(stack string) (*StackInfo, error) {
	rs, err := r.Resolve(stack)
	if err != nil {
		return nil, err
	}

	info := &StackInfo{
		Stack:       rs.Stack,
		Parent:      rs.Parent,
		Lineage:     rs.Lineage,
		Services:    rs.Services(),
		Validated:   make(map[string]string, len(rs.Validators)),
		Recommended: sortedKeys(rs.Recommenders),
	}
	for svc, entry := range rs.Validators {
		info.Validated[svc] = entry.Namespace
	}
	return info, nil
}

// Catalog describes every registered stack. Stacks whose parent chain is
// broken are skipped.
func (r *Registry) Catalog() *Catalog {
	c := &Catalog{Stacks: make([]StackInfo, 0)}
	for _, stack := range r.List() {
		info, err := r.Describe(stack)
		if err != nil {
			continue
		}
		c.Stacks = append(c.Stacks, *info)
	}
	return c
}

// Describe summarizes a stack from the global registry.
func Describe(stack string) (*StackInfo, error) {
	return global.Describe(stack)
}

// GetCatalog describes every stack in the global registry.
func GetCatalog() *Catalog {
	return global.Catalog()
}

// TableHeader returns the column names used for table output.
func (c *Catalog) TableHeader() []string {
	return []string{"STACK", "PARENT", "VALIDATED", "RECOMMENDED"}
}

// TableRows returns one row per stack.
func (c *Catalog) TableRows() [][]string {
	rows := make([][]string, 0, len(c.Stacks))
	for _, s := range c.Stacks {
		validated := make([]string, 0, len(s.Validated))
		for _, svc := range sortedKeys(s.Validated) {
			validated = append(validated, svc+"("+s.Validated[svc]+")")
		}
		parent := s.Parent
		if parent == "" {
			parent = "-"
		}
		rows = append(rows, []string{
			s.Stack,
			parent,
			joinOrDash(validated),
			joinOrDash(s.Recommended),
		})
	}
	return rows
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ",")
}
