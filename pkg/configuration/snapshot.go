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

package configuration

import (
	"slices"
	"strings"

	"github.com/NVIDIA/stack-advisor/pkg/header"
)

// APIVersion is the schema version of snapshot documents.
const APIVersion = "advisor.nvidia.com/v1"

// Snapshot is the configuration of one cluster as seen by the advisor.
// It is read-only while rules evaluate it.
type Snapshot struct {
	header.Header `json:",inline" yaml:",inline"`

	// Stack identifies the distribution release, e.g. HDP-2.2.
	Stack string `json:"stack,omitempty" yaml:"stack,omitempty"`

	// Services lists the installed services, e.g. HDFS.
	Services []string `json:"services,omitempty" yaml:"services,omitempty"`

	// Configurations holds every configuration namespace keyed by name.
	Configurations Configurations `json:"configurations" yaml:"configurations"`
}

// SnapshotOption configures a Snapshot.
type SnapshotOption func(*Snapshot)

// WithStack sets the stack identifier.
func WithStack(stack string) SnapshotOption {
	return func(s *Snapshot) {
		s.Stack = stack
	}
}

// WithServices sets the installed services.
func WithServices(services ...string) SnapshotOption {
	return func(s *Snapshot) {
		s.Services = services
	}
}

// WithSite adds or replaces a configuration namespace.
func WithSite(name string, props Properties) SnapshotOption {
	return func(s *Snapshot) {
		s.Configurations[name] = props
	}
}

// NewSnapshot returns an initialized snapshot stamped with the given tool version.
func NewSnapshot(version string, opts ...SnapshotOption) *Snapshot {
	s := &Snapshot{
		Configurations: make(Configurations),
	}
	s.Init(header.KindConfigSnapshot, APIVersion, version)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HasService reports whether the named service is installed (case-insensitive).
// An empty service list is treated as "all services", matching snapshots
// built from bare site files.
func (s *Snapshot) HasService(name string) bool {
	if len(s.Services) == 0 {
		return true
	}
	return slices.ContainsFunc(s.Services, func(svc string) bool {
		return strings.EqualFold(svc, name)
	})
}
