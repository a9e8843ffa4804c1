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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"config.json", FormatJSON},
		{"CONFIG.JSON", FormatJSON},
		{"config.yaml", FormatYAML},
		{"config.yml", FormatYAML},
		{"CONFIG.YAML", FormatYAML},
		{"file_version_info.txt", FormatText},
		{"config", FormatJSON},
		{"dir.yaml/config.json", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatFromPath(tt.path))
		})
	}
}

func TestNewReader(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"table", FormatTable, true},
		{"text", FormatText, true},
		{"unknown", Format("xml"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReader(tt.format, strings.NewReader("{}"))
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestReader_Deserialize(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		r, err := NewReader(FormatJSON, strings.NewReader(`{"name":"test1","value":7}`))
		require.NoError(t, err)
		var got testConfig
		require.NoError(t, r.Deserialize(&got))
		assert.Equal(t, testConfig{Name: test1Name, Value: 7}, got)
		assert.NoError(t, r.Close())
	})

	t.Run("yaml", func(t *testing.T) {
		r, err := NewReader(FormatYAML, strings.NewReader("name: test1\nvalue: 7\n"))
		require.NoError(t, err)
		var got testConfig
		require.NoError(t, r.Deserialize(&got))
		assert.Equal(t, testConfig{Name: test1Name, Value: 7}, got)
	})

	t.Run("invalid json", func(t *testing.T) {
		r, err := NewReader(FormatJSON, strings.NewReader(`{"name":`))
		require.NoError(t, err)
		var got testConfig
		assert.Error(t, r.Deserialize(&got))
	})

	t.Run("nil reader", func(t *testing.T) {
		var r *Reader
		assert.Error(t, r.Deserialize(&testConfig{}))
		assert.NoError(t, r.Close())
	})
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("name: from-yaml\nvalue: 3\n"), 0o600))
	got, err := FromFile[testConfig](yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "from-yaml", got.Name)

	jsonPath := filepath.Join(dir, "cookiecutter.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"name":"from-json","value":4}`), 0o600))
	got, err = FromFile[testConfig](jsonPath)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Value)

	_, err = FromFile[testConfig](filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = FromFile[testConfig](filepath.Join(dir, "notes.txt"))
	assert.Error(t, err)
}
