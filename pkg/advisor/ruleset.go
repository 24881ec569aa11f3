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
	"maps"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/NVIDIA/stack-advisor/pkg/recommender"
	"github.com/NVIDIA/stack-advisor/pkg/validator"
)

// NormalizeService returns the canonical form of a service name ("hdfs" -> "HDFS").
// A Caser holds state, so each call gets its own.
func NormalizeService(name string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(name))
}

// RuleSet holds the recommend and validate functions of one stack release,
// keyed by service name. A rule set names its parent; Resolve merges the
// chain so the effective rules of HDP-2.2 include everything HDP-2.1 defines
// unless HDP-2.2 overrides it.
type RuleSet struct {
	// Stack is the release identifier, e.g. HDP-2.2.
	Stack string

	// Parent is the release this one builds on. Empty for a root.
	Parent string

	// Recommenders maps service names to recommend functions.
	Recommenders map[string]recommender.RecommendFunc

	// Validators maps service names to (namespace, validate function) entries.
	Validators map[string]validator.Entry

	// Lineage lists the stacks merged into a resolved rule set, root first.
	Lineage []string
}

// NewRuleSet returns an empty rule set for the given stack and parent.
func NewRuleSet(stack, parent string) *RuleSet {
	return &RuleSet{
		Stack:        stack,
		Parent:       parent,
		Recommenders: make(map[string]recommender.RecommendFunc),
		Validators:   make(map[string]validator.Entry),
	}
}

// WithRecommender adds or replaces the recommend function of a service.
func (r *RuleSet) WithRecommender(service string, fn recommender.RecommendFunc) *RuleSet {
	r.Recommenders[NormalizeService(service)] = fn
	return r
}

// WithValidator adds or replaces the validator of a service.
func (r *RuleSet) WithValidator(service, namespace string, fn validator.ValidateFunc) *RuleSet {
	r.Validators[NormalizeService(service)] = validator.Entry{Namespace: namespace, Validate: fn}
	return r
}

// ConfigurationRecommenders returns a copy of the service to recommend function map.
func (r *RuleSet) ConfigurationRecommenders() map[string]recommender.RecommendFunc {
	out := make(map[string]recommender.RecommendFunc, len(r.Recommenders))
	maps.Copy(out, r.Recommenders)
	return out
}

// ConfigurationValidators returns a copy of the service to validator entry map.
func (r *RuleSet) ConfigurationValidators() map[string]validator.Entry {
	out := make(map[string]validator.Entry, len(r.Validators))
	maps.Copy(out, r.Validators)
	return out
}

// Services returns every service with a recommender or validator.
func (r *RuleSet) Services() []string {
	seen := make(map[string]struct{}, len(r.Recommenders)+len(r.Validators))
	for s := range r.Recommenders {
		seen[s] = struct{}{}
	}
	for s := range r.Validators {
		seen[s] = struct{}{}
	}
	return sortedKeys(seen)
}

// Extend layers child over parent: child entries replace parent entries for
// the same service, parent entries for other services are kept. Neither input
// is modified. The result carries the child's identity.
func Extend(parent, child *RuleSet) *RuleSet {
	if parent == nil {
		parent = NewRuleSet("", "")
	}
	out := NewRuleSet(child.Stack, child.Parent)

	maps.Copy(out.Recommenders, parent.Recommenders)
	maps.Copy(out.Recommenders, child.Recommenders)
	maps.Copy(out.Validators, parent.Validators)
	maps.Copy(out.Validators, child.Validators)

	out.Lineage = append(append([]string{}, parent.Lineage...), child.Stack)
	return out
}
