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
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testConfig{
		{Name: "namenode", Value: 8020},
		{Name: "datanode", Value: 1019},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testConfig
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if len(result) != 2 || result[1].Value != 1019 {
		t.Errorf("Unexpected data: %+v", result)
	}
	if !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
		t.Error("JSON output should end with a newline")
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	if err := writer.Serialize(context.Background(), testConfig{Name: "namenode", Value: 8020}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testConfig
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}
	if result.Name != "namenode" || result.Value != 8020 {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_UnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("xml"), &buf)
	if writer.format != FormatJSON {
		t.Fatalf("format = %q, want json", writer.format)
	}
	if err := writer.Serialize(context.Background(), testConfig{Name: "x"}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !json.Valid(buf.Bytes()) {
		t.Errorf("expected JSON output, got %q", buf.String())
	}
}

func TestWriter_CanceledContext(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := writer.Serialize(ctx, testConfig{}); err == nil {
		t.Fatal("expected error for canceled context")
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be written on a canceled context, got %q", buf.String())
	}
}

func TestWriter_EncodeFailureWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	if err := writer.Serialize(context.Background(), map[string]any{"ch": make(chan int)}); err == nil {
		t.Fatal("expected encode error")
	}
	if buf.Len() != 0 {
		t.Errorf("partial output written: %q", buf.String())
	}
}

func TestNewWriter_NilOutputUsesStdout(t *testing.T) {
	w := NewWriter(FormatJSON, nil)
	if w.output != os.Stdout {
		t.Error("nil output should default to stdout")
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		for _, path := range []string{"", "-", "  "} {
			s, err := NewFileWriterOrStdout(FormatJSON, path)
			if err != nil {
				t.Fatalf("NewFileWriterOrStdout(%q) error = %v", path, err)
			}
			w, ok := s.(*Writer)
			if !ok || w.output != os.Stdout {
				t.Errorf("path %q should write to stdout", path)
			}
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "result.yaml")
		s, err := NewFileWriterOrStdout(FormatYAML, path)
		if err != nil {
			t.Fatalf("NewFileWriterOrStdout() error = %v", err)
		}
		if err := s.Serialize(context.Background(), testConfig{Name: "nn", Value: 1}); err != nil {
			t.Fatalf("Serialize() error = %v", err)
		}
		c, ok := s.(Closer)
		if !ok {
			t.Fatal("file writer should implement Closer")
		}
		if err := c.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
		if err := c.Close(); err != nil {
			t.Errorf("second Close() error = %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if !strings.Contains(string(data), "name: nn") {
			t.Errorf("unexpected file content %q", data)
		}
	})

	t.Run("configmap", func(t *testing.T) {
		s, err := NewFileWriterOrStdout(FormatJSON, "cm://hadoop/advice")
		if err != nil {
			t.Fatalf("NewFileWriterOrStdout() error = %v", err)
		}
		cw, ok := s.(*ConfigMapWriter)
		if !ok {
			t.Fatalf("expected *ConfigMapWriter, got %T", s)
		}
		if cw.namespace != "hadoop" || cw.name != "advice" {
			t.Errorf("unexpected target %s/%s", cw.namespace, cw.name)
		}
	})

	t.Run("bad configmap uri", func(t *testing.T) {
		if _, err := NewFileWriterOrStdout(FormatJSON, "cm://only-namespace"); err == nil {
			t.Error("expected error for malformed ConfigMap URI")
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "out.json")
		if _, err := NewFileWriterOrStdout(FormatJSON, path); err == nil {
			t.Error("expected error for missing directory")
		}
	})
}
