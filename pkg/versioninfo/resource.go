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

package versioninfo

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"k8s.io/utils/clock"

	"github.com/winkit-dev/winkit/pkg/version"
)

const (
	// DefaultCompany is the company name used when none is given.
	DefaultCompany = "My Company"

	// DefaultFileName is the default output file name for the resource file.
	DefaultFileName = "file_version_info.txt"

	// firstCopyrightYear starts the default copyright range.
	firstCopyrightYear = 2020
)

//go:embed templates/file_version_info.txt.tmpl
var resourceTemplateText string

var resourceTemplate = template.Must(template.New("file_version_info").Parse(resourceTemplateText))

// DefaultCopyrightYears returns "2020-<current year>" according to clk.
// A nil clock uses the wall clock.
func DefaultCopyrightYears(clk clock.PassiveClock) string {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return fmt.Sprintf("%d-%d", firstCopyrightYear, clk.Now().Year())
}

// ProductName derives the product name from a script path: the base name
// without its extension, so "src/my_app.py" becomes "my_app".
func ProductName(path string) string {
	if path == "" {
		return ""
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Options are the inputs of a version resource file.
type Options struct {
	// Product is the executable name without the .exe suffix.
	Product string
	// Version is the raw version string, normalized before use.
	Version string
	// Company defaults to DefaultCompany when empty.
	Company string
	// CopyrightYears defaults to DefaultCopyrightYears when empty.
	CopyrightYears string
	// Clock supplies the build time embedded in the file version. Nil means the wall clock.
	Clock clock.PassiveClock
}

// Resource holds the computed values of a version resource file.
type Resource struct {
	Product             string `json:"product" yaml:"product"`
	Company             string `json:"company" yaml:"company"`
	CopyrightYears      string `json:"copyrightYears" yaml:"copyrightYears"`
	ProductVersion      string `json:"productVersion" yaml:"productVersion"`
	ProductVersionTuple string `json:"productVersionTuple" yaml:"productVersionTuple"`
	FileVersion         string `json:"fileVersion" yaml:"fileVersion"`
	FileVersionTuple    string `json:"fileVersionTuple" yaml:"fileVersionTuple"`
}

// NewResource computes the resource values for opts.
//
// The file version is the product display version followed by the hour and
// minute of the clock, so version "1.2.3" built at 09:15 has the file version
// "1.2.3.0915" and the file tuple (1, 2, 3, 915).
func NewResource(opts Options) Resource {
	clk := opts.Clock
	if clk == nil {
		clk = clock.RealClock{}
	}

	company := opts.Company
	if strings.TrimSpace(company) == "" {
		company = DefaultCompany
	}
	years := opts.CopyrightYears
	if strings.TrimSpace(years) == "" {
		years = DefaultCopyrightYears(clk)
	}

	prod := version.Normalize(opts.Version)
	now := clk.Now()
	fileVersion := fmt.Sprintf("%s.%02d%02d", prod.String(), now.Hour(), now.Minute())

	return Resource{
		Product:             strings.TrimSpace(opts.Product),
		Company:             strings.TrimSpace(company),
		CopyrightYears:      strings.TrimSpace(years),
		ProductVersion:      prod.String(),
		ProductVersionTuple: prod.Tuple(),
		FileVersion:         fileVersion,
		FileVersionTuple:    version.Normalize(fileVersion).Tuple(),
	}
}

// Render returns the text of the version resource file, the VSVersionInfo
// structure read by pyi-set_version.
func (r Resource) Render() (string, error) {
	var buf strings.Builder
	if err := resourceTemplate.Execute(&buf, r); err != nil {
		return "", fmt.Errorf("failed to render version resource for %s: %w", r.Product, err)
	}
	return buf.String(), nil
}

// Render computes the resource for opts and renders it.
func Render(opts Options) (string, error) {
	return NewResource(opts).Render()
}
