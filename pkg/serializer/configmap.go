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
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"

	"github.com/NVIDIA/stack-advisor/pkg/defaults"
	"github.com/NVIDIA/stack-advisor/pkg/header"
	"github.com/NVIDIA/stack-advisor/pkg/k8s/client"
)

const (
	// ConfigMapURIScheme prefixes ConfigMap locations: cm://namespace/name.
	ConfigMapURIScheme = "cm://"

	// configMapDataPrefix is the data key prefix; the format extension follows.
	configMapDataPrefix = "document."

	fieldManager = "advisorctl"
)

// ConfigMapOption configures ConfigMap access.
type ConfigMapOption func(*configMapOptions)

type configMapOptions struct {
	client     client.Interface
	kubeconfig string
}

// WithKubeClient uses the given client instead of discovering one.
func WithKubeClient(c client.Interface) ConfigMapOption {
	return func(o *configMapOptions) {
		o.client = c
	}
}

// WithKubeconfig discovers the client from an explicit kubeconfig path.
func WithKubeconfig(path string) ConfigMapOption {
	return func(o *configMapOptions) {
		o.kubeconfig = path
	}
}

func (o *configMapOptions) kubeClient() (client.Interface, error) {
	if o.client != nil {
		return o.client, nil
	}
	var (
		c   client.Interface
		err error
	)
	if o.kubeconfig != "" {
		c, _, err = client.GetKubeClientWithConfig(o.kubeconfig)
	} else {
		c, _, err = client.GetKubeClient()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kubernetes client: %w", err)
	}
	return c, nil
}

func newConfigMapOptions(opts []ConfigMapOption) *configMapOptions {
	o := &configMapOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ConfigMapWriter writes serialized data to a Kubernetes ConfigMap.
// The ConfigMap is created if it doesn't exist, or updated if it does.
type ConfigMapWriter struct {
	namespace string
	name      string
	format    Format
	opts      *configMapOptions
}

// NewConfigMapWriter creates a new ConfigMapWriter that writes to the specified
// namespace and ConfigMap name in the given format.
func NewConfigMapWriter(namespace, name string, format Format, opts ...ConfigMapOption) *ConfigMapWriter {
	return &ConfigMapWriter{
		namespace: namespace,
		name:      name,
		format:    knownOrJSON(format),
		opts:      newConfigMapOptions(opts),
	}
}

// Serialize stores doc in the ConfigMap using server-side apply.
// The ConfigMap will have:
//   - data.document.{json|yaml|txt}: the serialized document
//   - data.format: the format used
//   - data.timestamp: when the document was produced
func (w *ConfigMapWriter) Serialize(ctx context.Context, doc any) error {
	writeCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	c, err := w.opts.kubeClient()
	if err != nil {
		return err
	}

	content, err := encode(w.format, doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	kind, docVersion, timestamp := "Document", "unknown", time.Now().UTC().Format(time.RFC3339)
	if h, ok := headerOf(doc); ok {
		if h.Kind != "" {
			kind = h.Kind.String()
		}
		if v := h.Metadata["version"]; v != "" {
			docVersion = v
		}
		if ts := h.Metadata["timestamp"]; ts != "" {
			timestamp = ts
		}
	}

	configMap := accorev1.ConfigMap(w.name, w.namespace).
		WithLabels(map[string]string{
			"app.kubernetes.io/name":      "stack-advisor",
			"app.kubernetes.io/component": strings.ToLower(kind),
			"app.kubernetes.io/version":   docVersion,
		}).
		WithData(map[string]string{
			configMapDataPrefix + w.format.Extension(): string(content),
			"format":    string(w.format),
			"timestamp": timestamp,
		})

	slog.Info("applying ConfigMap",
		"namespace", w.namespace,
		"name", w.name,
		"kind", kind,
		"format", w.format)

	_, err = c.CoreV1().ConfigMaps(w.namespace).Apply(writeCtx, configMap, metav1.ApplyOptions{
		FieldManager: fieldManager,
		Force:        true,
	})
	if err != nil {
		return fmt.Errorf("failed to apply ConfigMap %s/%s: %w", w.namespace, w.name, err)
	}
	return nil
}

// Close is a no-op for ConfigMapWriter as there are no resources to release.
func (w *ConfigMapWriter) Close() error {
	return nil
}

// headerOf extracts the document header from advisor documents, which all
// embed header.Header.
func headerOf(doc any) (*header.Header, bool) {
	type headered interface{ GetHeader() *header.Header }
	if h, ok := doc.(headered); ok {
		return h.GetHeader(), true
	}
	return nil, false
}

// readConfigMap fetches a document stored by ConfigMapWriter and returns its
// content and format.
func readConfigMap(ctx context.Context, c client.Interface, namespace, name string) (string, Format, error) {
	readCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapReadTimeout)
	defer cancel()

	cm, err := c.CoreV1().ConfigMaps(namespace).Get(readCtx, name, metav1.GetOptions{})
	if err != nil {
		return "", "", fmt.Errorf("failed to get ConfigMap %s/%s: %w", namespace, name, err)
	}

	format := FormatYAML
	if f, err := ParseFormat(cm.Data["format"]); err == nil && f != FormatTable {
		format = f
	}
	if content, ok := cm.Data[configMapDataPrefix+format.Extension()]; ok {
		return content, format, nil
	}

	for _, f := range []Format{FormatYAML, FormatJSON} {
		if content, ok := cm.Data[configMapDataPrefix+f.Extension()]; ok {
			return content, f, nil
		}
	}
	return "", "", fmt.Errorf("ConfigMap %s/%s has no readable document", namespace, name)
}

// parseConfigMapURI parses a ConfigMap URI in the format cm://namespace/name
// and returns the namespace and name components.
func parseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	path := strings.TrimPrefix(uri, ConfigMapURIScheme)
	namespace, name, found := strings.Cut(path, "/")
	if !found {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}

	namespace = strings.TrimSpace(namespace)
	name = strings.TrimSpace(name)

	if namespace == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: name cannot be empty")
	}

	return namespace, name, nil
}
