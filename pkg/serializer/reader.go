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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormatFromPath determines the format from a file extension, case-insensitively:
// .json is JSON, .yaml and .yml are YAML, .txt is text and anything else is
// treated as JSON.
func FormatFromPath(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".txt":
		return FormatText
	default:
		return FormatJSON
	}
}

// Reader deserializes JSON or YAML documents from an io.Reader.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a Reader over input. Only JSON and YAML can be read.
// If input implements io.Closer it is closed by Reader.Close.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format != FormatJSON && format != FormatYAML {
		return nil, fmt.Errorf("format %q does not support deserialization", format)
	}
	r := &Reader{format: format, input: input}
	if c, ok := input.(io.Closer); ok {
		r.closer = c
	}
	return r, nil
}

// NewFileReader opens filePath for reading in the given format.
func NewFileReader(format Format, filePath string) (*Reader, error) {
	if format != FormatJSON && format != FormatYAML {
		return nil, fmt.Errorf("format %q does not support deserialization", format)
	}
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return &Reader{format: format, input: f, closer: f}, nil
}

// Deserialize decodes the next document into v, which must be a pointer.
func (r *Reader) Deserialize(v any) error {
	if r == nil || r.input == nil {
		return fmt.Errorf("reader has no input")
	}

	switch r.format {
	case FormatJSON:
		if err := json.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
	return nil
}

// Close releases the input if it is closeable. Safe to call more than once.
func (r *Reader) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// FromFile loads a JSON or YAML file into a new T, detecting the format from
// the extension.
func FromFile[T any](path string) (*T, error) {
	format := FormatFromPath(path)
	if format == FormatText {
		return nil, fmt.Errorf("cannot deserialize %s: unsupported extension", path)
	}

	r, err := NewFileReader(format, path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var v T
	if err := r.Deserialize(&v); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return &v, nil
}
