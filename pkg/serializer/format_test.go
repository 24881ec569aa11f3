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

package serializer

import (
	"strings"
	"testing"
)

type testConfig struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

type testRows struct {
	rows [][]string
}

func (r testRows) TableHeader() []string { return []string{"NAME", "LEVEL"} }
func (r testRows) TableRows() [][]string { return r.rows }

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"table", FormatTable, false},
		{"xml", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"snapshot.json", FormatJSON},
		{"/tmp/SNAPSHOT.YAML", FormatYAML},
		{"cluster.yml", FormatYAML},
		{"out.txt", FormatTable},
		{"out.table", FormatTable},
		{"noext", FormatJSON},
	}
	for _, tt := range tests {
		if got := FormatFromPath(tt.path); got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	if got := FormatTable.Extension(); got != "txt" {
		t.Errorf("table extension = %q, want txt", got)
	}
	if got := FormatYAML.Extension(); got != "yaml" {
		t.Errorf("yaml extension = %q, want yaml", got)
	}
	if !Format("csv").IsUnknown() {
		t.Error("csv should be unknown")
	}
	if len(SupportedFormats()) != 3 {
		t.Errorf("SupportedFormats() = %v", SupportedFormats())
	}
}

func TestEncodeTable_Tabular(t *testing.T) {
	out, err := encode(FormatTable, testRows{rows: [][]string{
		{"dfs.http.policy", "WARN"},
		{"dfs.datanode.address", "WARN"},
	}})
	if err != nil {
		t.Fatalf("encode() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %q", out)
	}
	if !strings.HasPrefix(lines[0], "NAME") || !strings.Contains(lines[0], "LEVEL") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "dfs.http.policy") {
		t.Errorf("rows must keep their order, got %q", lines[1])
	}
}

func TestEncodeTable_EmptyTabular(t *testing.T) {
	out, err := encode(FormatTable, testRows{})
	if err != nil {
		t.Fatalf("encode() error = %v", err)
	}
	if string(out) != "<empty>\n" {
		t.Errorf("encode() = %q, want <empty>", out)
	}
}

func TestEncodeTable_Flattened(t *testing.T) {
	type inner struct {
		Port int
	}
	type embedded struct {
		Kind string
	}
	doc := struct {
		embedded
		Name  string
		Inner inner
		Tags  []string
		Props map[string]string
	}{
		embedded: embedded{Kind: "Snapshot"},
		Name:     "nn",
		Inner:    inner{Port: 1019},
		Tags:     []string{"a"},
		Props:    map[string]string{"k": "v"},
	}

	out, err := encode(FormatTable, doc)
	if err != nil {
		t.Fatalf("encode() error = %v", err)
	}
	s := string(out)
	for _, want := range []string{"FIELD", "Name", "Inner.Port", "1019", "Tags.[0]", "Props.k"} {
		if !strings.Contains(s, want) {
			t.Errorf("table output missing %q:\n%s", want, s)
		}
	}
	// unexported embedded struct fields are skipped
	if strings.Contains(s, "Snapshot") {
		t.Errorf("unexported embedded field leaked into table:\n%s", s)
	}
}

func TestEncodeTable_Scalar(t *testing.T) {
	out, err := encode(FormatTable, 42)
	if err != nil {
		t.Fatalf("encode() error = %v", err)
	}
	if !strings.Contains(string(out), defaultValueKey) || !strings.Contains(string(out), "42") {
		t.Errorf("unexpected scalar table %q", out)
	}
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	if _, err := encode(Format("xml"), testConfig{}); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestJoinKey(t *testing.T) {
	tests := []struct{ prefix, suffix, want string }{
		{"", "a", "a"},
		{"a", "", "a"},
		{"a", "b", "a.b"},
	}
	for _, tt := range tests {
		if got := joinKey(tt.prefix, tt.suffix); got != tt.want {
			t.Errorf("joinKey(%q, %q) = %q, want %q", tt.prefix, tt.suffix, got, tt.want)
		}
	}
}
