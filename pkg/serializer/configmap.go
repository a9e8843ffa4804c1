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

	"github.com/winkit-dev/winkit/pkg/defaults"
	"github.com/winkit-dev/winkit/pkg/header"
	"github.com/winkit-dev/winkit/pkg/k8s/client"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"
	"k8s.io/client-go/rest"
)

const (
	// ConfigMapFieldManager owns the fields written by server-side apply.
	ConfigMapFieldManager = "winkit"

	defaultConfigMapDataName = "output"
)

// ConfigMapOption configures a ConfigMapWriter.
type ConfigMapOption func(*ConfigMapWriter)

// WithConfigMapClient injects the Kubernetes client instead of the shared one.
func WithConfigMapClient(c client.Interface) ConfigMapOption {
	return func(w *ConfigMapWriter) {
		w.client = c
	}
}

// WithDataName sets the base name of the data key; the format extension is
// appended, e.g. "file_version_info" becomes "file_version_info.txt".
func WithDataName(name string) ConfigMapOption {
	return func(w *ConfigMapWriter) {
		if name = strings.TrimSpace(name); name != "" {
			w.dataName = name
		}
	}
}

// WithTimestamp fixes the timestamp recorded in the ConfigMap.
func WithTimestamp(ts time.Time) ConfigMapOption {
	return func(w *ConfigMapWriter) {
		w.timestamp = ts
	}
}

// ConfigMapWriter writes serialized data to a Kubernetes ConfigMap using
// server-side apply, creating or updating it atomically.
type ConfigMapWriter struct {
	namespace string
	name      string
	format    Format
	dataName  string
	timestamp time.Time
	client    client.Interface
}

// NewConfigMapWriter creates a writer for the namespace/name ConfigMap.
func NewConfigMapWriter(namespace, name string, format Format, opts ...ConfigMapOption) *ConfigMapWriter {
	w := &ConfigMapWriter{
		namespace: namespace,
		name:      name,
		format:    normalizeFormat(format),
		dataName:  defaultConfigMapDataName,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// DataKey returns the ConfigMap data key the payload is stored under.
func (w *ConfigMapWriter) DataKey() string {
	return w.dataName + "." + w.format.Extension()
}

// Serialize writes v to the ConfigMap. The ConfigMap data holds:
//   - <name>.<ext>: the serialized content
//   - format: the format used
//   - timestamp: RFC 3339 time of the write
func (w *ConfigMapWriter) Serialize(ctx context.Context, v any) error {
	writeCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	cs := w.client
	if cs == nil {
		var (
			config *rest.Config
			err    error
		)
		cs, config, err = client.GetKubeClient()
		if err != nil {
			return fmt.Errorf("failed to get kubernetes client: %w", err)
		}
		slog.Debug("configmap client", "auth_method", client.AuthMethod(config))
	}

	content, err := Encode(w.format, v)
	if err != nil {
		return fmt.Errorf("failed to serialize ConfigMap content: %w", err)
	}

	kind, version := documentInfo(v)

	ts := w.timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	cm := accorev1.ConfigMap(w.name, w.namespace).
		WithLabels(map[string]string{
			"app.kubernetes.io/name":      "winkit",
			"app.kubernetes.io/component": kind,
			"app.kubernetes.io/version":   version,
		}).
		WithData(map[string]string{
			w.DataKey():  string(content),
			"format":    string(w.format),
			"timestamp": ts.UTC().Format(time.RFC3339),
		})

	slog.Info("applying ConfigMap",
		"namespace", w.namespace,
		"name", w.name,
		"key", w.DataKey(),
		"format", w.format)

	_, err = cs.CoreV1().ConfigMaps(w.namespace).Apply(writeCtx, cm, metav1.ApplyOptions{
		FieldManager: ConfigMapFieldManager,
		Force:        true,
	})
	if err != nil {
		return fmt.Errorf("failed to apply ConfigMap %s/%s: %w", w.namespace, w.name, err)
	}
	return nil
}

// Close is a no-op; ConfigMapWriter holds no resources.
func (w *ConfigMapWriter) Close() error {
	return nil
}

// documentInfo reads kind and version labels from documents carrying a header.
func documentInfo(v any) (kind, version string) {
	kind, version = "output", "unknown"
	h, ok := v.(interface {
		GetKind() header.Kind
		GetMetadata() map[string]string
	})
	if !ok {
		return kind, version
	}
	if k := h.GetKind(); k != "" {
		kind = k.String()
	}
	if ver := h.GetMetadata()[header.MetadataVersion]; ver != "" {
		version = ver
	}
	return kind, version
}

// parseConfigMapURI splits cm://namespace/name into its components.
func parseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	parts := strings.SplitN(strings.TrimPrefix(uri, ConfigMapURIScheme), "/", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}

	namespace = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])

	if namespace == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: name cannot be empty")
	}
	return namespace, name, nil
}
