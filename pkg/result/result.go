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

package result

import (
	"fmt"
	"sort"
	"time"

	"github.com/winkit-dev/winkit/pkg/header"
)

// Operation names the command that produced a Result.
type Operation string

const (
	OperationGitignore Operation = "gitignore"
	OperationScaffold  Operation = "scaffold"
)

// Result records the files written by one generation run.
type Result struct {
	header.Header `json:",inline" yaml:",inline"`

	// Operation is the command that produced the result.
	Operation Operation `json:"operation" yaml:"operation"`

	// OutputDir is the root the files were written under, if any.
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`

	// Files lists written paths in the order they were written.
	Files []string `json:"files" yaml:"files"`

	// Size is the total size in bytes of Files.
	Size int64 `json:"size_bytes" yaml:"size_bytes"`

	// Checksum is the path of the generated checksum file, if any.
	Checksum string `json:"checksum,omitempty" yaml:"checksum,omitempty"`

	// Reference is the OCI reference the output was pushed to, if any.
	Reference string `json:"reference,omitempty" yaml:"reference,omitempty"`

	// Duration is the wall time of the run.
	Duration time.Duration `json:"duration" yaml:"duration"`

	// Errors holds per-target failures that did not stop the run.
	Errors []string `json:"errors,omitempty" yaml:"errors,omitempty"`

	// Success is set by MarkSuccess once every step finished.
	Success bool `json:"success" yaml:"success"`
}

// New creates an empty result for op.
func New(op Operation) *Result {
	r := &Result{
		Operation: op,
		Files:     make([]string, 0),
		Errors:    make([]string, 0),
	}
	r.Kind = header.KindGenerationResult
	r.APIVersion = header.APIVersion
	return r
}

// AddFile records a written file and its size.
func (r *Result) AddFile(path string, size int64) {
	r.Files = append(r.Files, path)
	r.Size += size
}

// AddError records a non-fatal failure.
func (r *Result) AddError(err error) {
	if err != nil {
		r.Errors = append(r.Errors, err.Error())
	}
}

// HasErrors reports whether any failure was recorded.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// MarkSuccess marks the run as successful when no errors were recorded.
func (r *Result) MarkSuccess() {
	r.Success = !r.HasErrors()
}

// SortedFiles returns a sorted copy of Files.
func (r *Result) SortedFiles() []string {
	files := append([]string(nil), r.Files...)
	sort.Strings(files)
	return files
}

// Summary returns a one-line human-readable summary.
func (r *Result) Summary() string {
	status := "succeeded"
	if !r.Success {
		status = "failed"
	}
	s := fmt.Sprintf("%s %s: %d files (%s) in %v",
		r.Operation, status, len(r.Files), formatBytes(r.Size), r.Duration.Round(time.Millisecond))
	if n := len(r.Errors); n > 0 {
		s += fmt.Sprintf(", %d errors", n)
	}
	return s
}

// formatBytes formats bytes into human-readable format.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
