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
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/NVIDIA/stack-advisor/pkg/errors"
	"github.com/NVIDIA/stack-advisor/pkg/version"
)

// Global registry for stack rule sets.
// Stack packages register themselves via init() functions.
var global = NewRegistry()

// Register registers a rule set in the global registry.
func Register(rs *RuleSet) error {
	return global.Register(rs)
}

// MustRegister is a convenience function that panics on registration error.
// Use this in init() functions where registration must succeed.
func MustRegister(rs *RuleSet) {
	if err := Register(rs); err != nil {
		panic(err)
	}
}

// Resolve returns the effective rule set of a stack from the global registry.
func Resolve(stack string) (*RuleSet, error) {
	return global.Resolve(stack)
}

// List returns all globally registered stacks in release order.
func List() []string {
	return global.List()
}

// Registry manages registered rule sets with thread-safe operations.
type Registry struct {
	sets map[string]*RuleSet
	mu   sync.RWMutex
}

// NewRegistry creates a new empty Registry instance.
func NewRegistry() *Registry {
	return &Registry{
		sets: make(map[string]*RuleSet),
	}
}

// canonical returns the registry key of a stack identifier.
func canonical(stack string) (string, error) {
	id, err := version.ParseStackID(stack)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidRequest, "invalid stack identifier", err)
	}
	return id.String(), nil
}

// Register adds a rule set. The stack must be a valid NAME-VERSION identifier
// and must not already be registered. The parent does not need to be
// registered yet; it is looked up at Resolve time.
func (r *Registry) Register(rs *RuleSet) error {
	if rs == nil {
		return errors.New(errors.ErrCodeInvalidRequest, "rule set cannot be nil")
	}

	key, err := canonical(rs.Stack)
	if err != nil {
		return err
	}
	if rs.Parent != "" {
		if _, err := canonical(rs.Parent); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sets[key]; exists {
		return errors.New(errors.ErrCodeInvalidRequest, fmt.Sprintf("stack %s already registered", key))
	}

	r.sets[key] = rs
	return nil
}

// Get returns the rule set registered for stack, without merging its parents.
func (r *Registry) Get(stack string) (*RuleSet, bool) {
	key, err := canonical(stack)
	if err != nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	rs, ok := r.sets[key]
	return rs, ok
}

// Resolve walks the parent chain of stack and merges it root first, so each
// release overrides the services its ancestors define.
func (r *Registry) Resolve(stack string) (*RuleSet, error) {
	key, err := canonical(stack)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var chain []*RuleSet
	seen := make(map[string]bool)
	for cur := key; cur != ""; {
		if seen[cur] {
			return nil, errors.NewWithContext(errors.ErrCodeInternal,
				"stack inheritance cycle", map[string]any{"stack": key, "at": cur})
		}
		seen[cur] = true

		rs, ok := r.sets[cur]
		if !ok {
			if cur == key {
				return nil, errors.NewWithContext(errors.ErrCodeNotFound,
					fmt.Sprintf("stack %s is not registered", key), map[string]any{"available": r.listLocked()})
			}
			return nil, errors.NewWithContext(errors.ErrCodeInternal,
				fmt.Sprintf("parent stack %s of %s is not registered", cur, key), nil)
		}
		chain = append(chain, rs)

		cur = ""
		if rs.Parent != "" {
			cur, _ = canonical(rs.Parent)
		}
	}

	var resolved *RuleSet
	for i := len(chain) - 1; i >= 0; i-- {
		resolved = Extend(resolved, chain[i])
	}
	return resolved, nil
}

// List returns all registered stacks ordered by name, then version.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listLocked()
}

func (r *Registry) listLocked() []string {
	ids := make([]version.StackID, 0, len(r.sets))
	for key := range r.sets {
		id, err := version.ParseStackID(key)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	slices.SortFunc(ids, version.CompareStackIDs)

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

// Count returns the number of registered stacks.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sets)
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
