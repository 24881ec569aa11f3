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

package recommender

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

// APIVersion is the API version for recommendation documents.
const APIVersion = "advisor.nvidia.com/v1"

// ClusterData is the cluster-wide context handed to every recommend function.
type ClusterData struct {
	Stack    string   `json:"stack" yaml:"stack"`
	Services []string `json:"services" yaml:"services"`
}

// RecommendFunc fills in recommended values for one service.
// It works on a private copy of the configurations and may modify it freely.
type RecommendFunc func(configurations configuration.Configurations, cluster ClusterData)

// Change records one property the recommenders added or modified.
type Change struct {
	Namespace string `json:"namespace" yaml:"namespace"`
	Property  string `json:"property" yaml:"property"`
	Previous  string `json:"previous,omitempty" yaml:"previous,omitempty"`
	Value     string `json:"value" yaml:"value"`
	Added     bool   `json:"added" yaml:"added"`
}

// Recommendation is the configuration set after all recommend functions ran,
// together with the properties they changed.
type Recommendation struct {
	header.Header `json:",inline" yaml:",inline"`

	Stack          string                       `json:"stack" yaml:"stack"`
	Services       []string                     `json:"services" yaml:"services"`
	Configurations configuration.Configurations `json:"configurations" yaml:"configurations"`
	Changes        []Change                     `json:"changes" yaml:"changes"`
}

// ConfigurationRecommender runs the service recommenders of a rule set.
type ConfigurationRecommender struct {
	Version  string
	Services []string
}

// Option is a functional option for configuring the ConfigurationRecommender.
type Option func(*ConfigurationRecommender)

// WithVersion sets the version stamped on produced recommendations.
func WithVersion(version string) Option {
	return func(r *ConfigurationRecommender) {
		r.Version = version
	}
}

// WithServices limits the run to the named services.
func WithServices(services ...string) Option {
	return func(r *ConfigurationRecommender) {
		r.Services = services
	}
}

// New creates a new ConfigurationRecommender with the provided options.
func New(opts ...Option) *ConfigurationRecommender {
	r := &ConfigurationRecommender{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Recommend runs every selected, installed service recommender against a copy
// of the snapshot configurations. The snapshot itself is never modified.
func (r *ConfigurationRecommender) Recommend(ctx context.Context, stack string, recommenders map[string]RecommendFunc, snap *configuration.Snapshot) (*Recommendation, error) {
	if snap == nil {
		return nil, fmt.Errorf("snapshot cannot be nil")
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	start := time.Now()
	defer func() {
		recommendGenerateDuration.Observe(time.Since(start).Seconds())
	}()

	working := snap.Configurations.Clone()
	cluster := ClusterData{Stack: stack, Services: snap.Services}

	rec := &Recommendation{
		Stack:    stack,
		Services: make([]string, 0),
	}
	rec.Init(header.KindRecommendation, APIVersion, r.Version)

	for _, service := range slices.Sorted(maps.Keys(recommenders)) {
		if err := ctx.Err(); err != nil {
			recommendGenerateTotal.WithLabelValues("canceled").Inc()
			return nil, err
		}

		fn := recommenders[service]
		if fn == nil || !r.selected(service) || !snap.HasService(service) {
			continue
		}

		fn(working, cluster)
		rec.Services = append(rec.Services, service)
	}

	rec.Configurations = working
	rec.Changes = Diff(snap.Configurations, working)

	recommendGenerateTotal.WithLabelValues("success").Inc()
	recommendChangesTotal.Add(float64(len(rec.Changes)))

	slog.Debug("recommendation completed",
		"stack", stack,
		"services", rec.Services,
		"changes", len(rec.Changes),
		"duration", time.Since(start))

	return rec, nil
}

func (r *ConfigurationRecommender) selected(service string) bool {
	if len(r.Services) == 0 {
		return true
	}
	return slices.ContainsFunc(r.Services, func(s string) bool {
		return strings.EqualFold(s, service)
	})
}

// Diff lists the properties that are new or different in after, ordered by
// namespace and property name. Removed properties are not reported.
func Diff(before, after configuration.Configurations) []Change {
	changes := make([]Change, 0)
	for _, ns := range after.Names() {
		prev := before.Site(ns)
		props := after[ns]
		for _, key := range props.Keys() {
			old, existed := prev.Get(key)
			if existed && old == props[key] {
				continue
			}
			changes = append(changes, Change{
				Namespace: ns,
				Property:  key,
				Previous:  old,
				Value:     props[key],
				Added:     !existed,
			})
		}
	}
	return changes
}

// TableHeader returns the column names used for table output.
func (r *Recommendation) TableHeader() []string {
	return []string{"NAMESPACE", "PROPERTY", "VALUE", "PREVIOUS"}
}

// TableRows returns one row per changed property. Added properties show
// "<unset>" as their previous value.
func (r *Recommendation) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Changes))
	for _, c := range r.Changes {
		prev := c.Previous
		if c.Added {
			prev = "<unset>"
		}
		rows = append(rows, []string{c.Namespace, c.Property, c.Value, prev})
	}
	return rows
}
