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
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Reader decodes a JSON or YAML document from an io.Reader.
// Table output cannot be read back.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a new Reader for the given format. If input implements
// io.Closer it is closed by Reader.Close.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}

	r := &Reader{
		format: format,
		input:  input,
	}
	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}
	return r, nil
}

// Deserialize decodes the input into v, which must be a pointer.
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return fmt.Errorf("reader is nil")
	}
	if r.input == nil {
		return fmt.Errorf("input source is nil")
	}

	switch r.format {
	case FormatJSON:
		if err := json.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil
	case FormatYAML:
		if err := yaml.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
}

// Close releases the underlying input if it is closeable. Safe to call
// multiple times and on a nil Reader.
func (r *Reader) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// SourceOption configures FromSource.
type SourceOption func(*sourceOptions)

type sourceOptions struct {
	http      *HttpReader
	configMap []ConfigMapOption
}

// WithHTTPReader uses the given reader for http(s) sources.
func WithHTTPReader(r *HttpReader) SourceOption {
	return func(o *sourceOptions) {
		o.http = r
	}
}

// WithConfigMapOptions passes options to cm:// sources.
func WithConfigMapOptions(opts ...ConfigMapOption) SourceOption {
	return func(o *sourceOptions) {
		o.configMap = append(o.configMap, opts...)
	}
}

// FromSource reads and decodes a document into T. Supported sources:
//   - local paths: ./cluster.yaml, /tmp/snapshot.json ("-" reads stdin)
//   - http(s) URLs: format from the URL extension, then the Content-Type
//   - ConfigMap URIs: cm://namespace/name, as written by ConfigMapWriter
func FromSource[T any](ctx context.Context, source string, opts ...SourceOption) (*T, error) {
	o := &sourceOptions{}
	for _, opt := range opts {
		opt(o)
	}

	source = strings.TrimSpace(source)
	var (
		content []byte
		format  Format
	)

	switch {
	case source == "":
		return nil, fmt.Errorf("source is empty")

	case source == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		content, format = data, sniffFormat(data)

	case strings.HasPrefix(source, ConfigMapURIScheme):
		namespace, name, err := parseConfigMapURI(source)
		if err != nil {
			return nil, err
		}
		c, err := newConfigMapOptions(o.configMap).kubeClient()
		if err != nil {
			return nil, err
		}
		data, f, err := readConfigMap(ctx, c, namespace, name)
		if err != nil {
			return nil, err
		}
		content, format = []byte(data), f

	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		hr := o.http
		if hr == nil {
			hr = NewHttpReader()
		}
		data, contentType, err := hr.ReadWithContext(ctx, source)
		if err != nil {
			return nil, err
		}
		content, format = data, formatFromURL(source, contentType, data)

	default:
		data, err := os.ReadFile(filepath.Clean(source))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", source, err)
		}
		content, format = data, FormatFromPath(source)
		if format == FormatTable {
			return nil, fmt.Errorf("table format does not support deserialization: %s", source)
		}
	}

	slog.Debug("decoding document",
		"source", source,
		"format", format,
		"size", len(content))

	reader, err := NewReader(format, bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	var out T
	if err := reader.Deserialize(&out); err != nil {
		return nil, fmt.Errorf("failed to deserialize %s: %w", source, err)
	}
	return &out, nil
}

// formatFromURL picks the format from the URL path extension, then the
// Content-Type, then the payload itself.
func formatFromURL(raw, contentType string, data []byte) Format {
	if u, err := url.Parse(raw); err == nil {
		lower := strings.ToLower(u.Path)
		switch {
		case strings.HasSuffix(lower, ".json"):
			return FormatJSON
		case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
			return FormatYAML
		}
	}
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		switch {
		case strings.HasSuffix(mt, "json"):
			return FormatJSON
		case strings.HasSuffix(mt, "yaml"):
			return FormatYAML
		}
	}
	return sniffFormat(data)
}

// sniffFormat treats a payload starting with '{' as JSON and anything else as YAML.
func sniffFormat(data []byte) Format {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return FormatJSON
	}
	return FormatYAML
}
