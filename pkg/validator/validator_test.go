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
	"errors"
	"testing"

	"github.com/NVIDIA/stack-advisor/pkg/configuration"
	"github.com/NVIDIA/stack-advisor/pkg/header"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantVer string
		wantSvc int
	}{
		{name: "default"},
		{name: "with version", opts: []Option{WithVersion("v1.2.3")}, wantVer: "v1.2.3"},
		{name: "with services", opts: []Option{WithServices("HDFS", "YARN")}, wantSvc: 2},
		{name: "last option wins", opts: []Option{WithVersion("v1"), WithVersion("v2")}, wantVer: "v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.opts...)
			if got.Version != tt.wantVer {
				t.Errorf("New() version = %v, want %v", got.Version, tt.wantVer)
			}
			if len(got.Services) != tt.wantSvc {
				t.Errorf("New() services = %v, want %d", got.Services, tt.wantSvc)
			}
		})
	}
}

func TestToProblems(t *testing.T) {
	items := []PropertyItem{
		{Property: "b", Finding: WarnItem("second")},
		{Property: "a", Finding: ErrorItem("first")},
	}

	got := ToProblems(items, "hdfs-site")
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].Property != "b" || got[1].Property != "a" {
		t.Errorf("order not preserved: %+v", got)
	}
	for _, it := range got {
		if it.Namespace != "hdfs-site" {
			t.Errorf("namespace = %q", it.Namespace)
		}
	}
	if got[0].Severity != SeverityWarn || got[1].Severity != SeverityError {
		t.Errorf("severities = %s, %s", got[0].Severity, got[1].Severity)
	}

	if empty := ToProblems(nil, "hdfs-site"); empty == nil || len(empty) != 0 {
		t.Errorf("ToProblems(nil) = %#v, want empty slice", empty)
	}
}

func TestSeverityIsValid(t *testing.T) {
	if !SeverityWarn.IsValid() || !SeverityError.IsValid() {
		t.Error("known severities should be valid")
	}
	if Severity("INFO").IsValid() {
		t.Error("INFO should not be valid")
	}
}

// staticValidator returns fixed items and records what it was given.
func staticValidator(items []PropertyItem, namespace string, seen *configuration.Properties) ValidateFunc {
	return func(props configuration.Properties, _ configuration.Configurations) []Item {
		if seen != nil {
			*seen = props
		}
		return ToProblems(items, namespace)
	}
}

func TestValidator_Validate(t *testing.T) {
	validators := map[string]Entry{
		"HDFS": {
			Namespace: "hdfs-site",
			Validate: staticValidator([]PropertyItem{
				{Property: "dfs.http.policy", Finding: WarnItem("w1")},
				{Property: "dfs.datanode.address", Finding: WarnItem("w2")},
			}, "hdfs-site", nil),
		},
		"YARN": {
			Namespace: "yarn-site",
			Validate: staticValidator([]PropertyItem{
				{Property: "yarn.nodemanager.resource.memory-mb", Finding: ErrorItem("e1")},
			}, "yarn-site", nil),
		},
		"HIVE": {
			Namespace: "hive-site",
			Validate:  staticValidator([]PropertyItem{{Property: "x", Finding: ErrorItem("never")}}, "hive-site", nil),
		},
		"NOOP": {Namespace: "noop-site"},
	}

	tests := []struct {
		name         string
		opts         []Option
		snap         *configuration.Snapshot
		wantStatus   ValidationStatus
		wantWarnings int
		wantErrors   int
		wantServices []string
		wantErr      bool
	}{
		{
			name: "all namespaces present",
			snap: configuration.NewSnapshot("",
				configuration.WithSite("hdfs-site", configuration.Properties{"dfs.http.policy": "FOO"}),
				configuration.WithSite("yarn-site", configuration.Properties{}),
				configuration.WithSite("noop-site", configuration.Properties{}),
			),
			wantStatus:   ValidationStatusFail,
			wantWarnings: 2,
			wantErrors:   1,
			wantServices: []string{"HDFS", "YARN"},
		},
		{
			name: "only hdfs-site present",
			snap: configuration.NewSnapshot("",
				configuration.WithSite("hdfs-site", configuration.Properties{}),
			),
			wantStatus:   ValidationStatusWarn,
			wantWarnings: 2,
			wantServices: []string{"HDFS"},
		},
		{
			name: "service filter",
			opts: []Option{WithServices("yarn")},
			snap: configuration.NewSnapshot("",
				configuration.WithSite("hdfs-site", configuration.Properties{}),
				configuration.WithSite("yarn-site", configuration.Properties{}),
			),
			wantStatus:   ValidationStatusFail,
			wantErrors:   1,
			wantServices: []string{"YARN"},
		},
		{
			name: "service not installed",
			snap: configuration.NewSnapshot("",
				configuration.WithServices("YARN"),
				configuration.WithSite("hdfs-site", configuration.Properties{}),
			),
			wantStatus:   ValidationStatusPass,
			wantServices: []string{},
		},
		{
			name:         "no namespaces",
			snap:         configuration.NewSnapshot(""),
			wantStatus:   ValidationStatusPass,
			wantServices: []string{},
		},
		{
			name:    "nil snapshot",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(append([]Option{WithVersion("test")}, tt.opts...)...)
			result, err := v.Validate(context.Background(), "HDP-2.2", validators, tt.snap)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result.Kind != header.KindValidationResult {
				t.Errorf("Kind = %q", result.Kind)
			}
			if result.Stack != "HDP-2.2" {
				t.Errorf("Stack = %q", result.Stack)
			}
			if result.Summary.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", result.Summary.Status, tt.wantStatus)
			}
			if result.Summary.Warnings != tt.wantWarnings {
				t.Errorf("Warnings = %d, want %d", result.Summary.Warnings, tt.wantWarnings)
			}
			if result.Summary.Errors != tt.wantErrors {
				t.Errorf("Errors = %d, want %d", result.Summary.Errors, tt.wantErrors)
			}
			if result.Summary.Total != len(result.Items) {
				t.Errorf("Total = %d, items = %d", result.Summary.Total, len(result.Items))
			}
			if len(result.Summary.Services) != len(tt.wantServices) {
				t.Fatalf("Services = %v, want %v", result.Summary.Services, tt.wantServices)
			}
			for i := range tt.wantServices {
				if result.Summary.Services[i] != tt.wantServices[i] {
					t.Errorf("Services = %v, want %v", result.Summary.Services, tt.wantServices)
				}
			}
		})
	}
}

func TestValidator_ValidatePassesNamespace(t *testing.T) {
	var seen configuration.Properties
	validators := map[string]Entry{
		"HDFS": {Namespace: "hdfs-site", Validate: staticValidator(nil, "hdfs-site", &seen)},
	}
	snap := configuration.NewSnapshot("",
		configuration.WithSite("hdfs-site", configuration.Properties{"dfs.http.policy": "FOO"}),
		configuration.WithSite("core-site", configuration.Properties{"hadoop.security.authorization": "true"}),
	)

	if _, err := New().Validate(context.Background(), "", validators, snap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen["dfs.http.policy"] != "FOO" {
		t.Errorf("hdfs validator did not receive hdfs-site properties: %v", seen)
	}
	if seen.Has("hadoop.security.authorization") {
		t.Error("hdfs validator received core-site properties as its own")
	}
}

func TestValidator_ValidateItemOrder(t *testing.T) {
	validators := map[string]Entry{
		"HDFS": {
			Namespace: "hdfs-site",
			Validate: staticValidator([]PropertyItem{
				{Property: "z", Finding: WarnItem("1")},
				{Property: "a", Finding: WarnItem("2")},
			}, "hdfs-site", nil),
		},
	}
	snap := configuration.NewSnapshot("", configuration.WithSite("hdfs-site", configuration.Properties{}))

	result, err := New().Validate(context.Background(), "", validators, snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Items[0].Property != "z" || result.Items[1].Property != "a" {
		t.Errorf("items reordered: %+v", result.Items)
	}
	if got := result.ForNamespace("hdfs-site"); len(got) != 2 {
		t.Errorf("ForNamespace(hdfs-site) = %d items", len(got))
	}
	if got := result.ForNamespace("core-site"); len(got) != 0 {
		t.Errorf("ForNamespace(core-site) = %d items", len(got))
	}
}

func TestValidator_ValidateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	validators := map[string]Entry{
		"HDFS": {Namespace: "hdfs-site", Validate: staticValidator(nil, "hdfs-site", nil)},
	}
	_, err := New().Validate(ctx, "", validators, configuration.NewSnapshot(""))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestValidationResult_ShouldFail(t *testing.T) {
	tests := []struct {
		name        string
		warnings    int
		errs        int
		failOnWarn  bool
		failOnError bool
		want        bool
	}{
		{name: "clean", failOnWarn: true, failOnError: true, want: false},
		{name: "warn ignored", warnings: 1, failOnError: true, want: false},
		{name: "warn fails", warnings: 1, failOnWarn: true, want: true},
		{name: "error fails", errs: 1, failOnError: true, want: true},
		{name: "error ignored", errs: 1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewValidationResult()
			r.Summary.Warnings = tt.warnings
			r.Summary.Errors = tt.errs
			if got := r.ShouldFail(tt.failOnWarn, tt.failOnError); got != tt.want {
				t.Errorf("ShouldFail() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidationResult_TableRows(t *testing.T) {
	r := NewValidationResult()
	r.add([]Item{
		{Namespace: "hdfs-site", Property: "dfs.http.policy", Severity: SeverityWarn, Message: "bad policy"},
		{Namespace: "hdfs-site", Property: "dfs.datanode.address", Severity: SeverityError, Message: "bad port"},
	})

	if got := r.TableHeader(); len(got) != 4 || got[2] != "LEVEL" {
		t.Errorf("TableHeader() = %v", got)
	}
	rows := r.TableRows()
	if len(rows) != 2 {
		t.Fatalf("TableRows() returned %d rows, want 2", len(rows))
	}
	if rows[0][1] != "dfs.http.policy" || rows[1][2] != "ERROR" {
		t.Errorf("TableRows() = %v", rows)
	}
	if got := NewValidationResult().TableRows(); got == nil || len(got) != 0 {
		t.Errorf("empty result rows = %v", got)
	}
}
