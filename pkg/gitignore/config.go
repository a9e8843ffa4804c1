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

package gitignore

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/winkit-dev/winkit/pkg/serializer"
)

// DefaultTemplateFile is the template looked up when none is configured.
// When it does not exist the built-in template is used.
const DefaultTemplateFile = "dot_gitignore.jinja2"

const (
	pythonGitignoreURL = "https://raw.githubusercontent.com/github/gitignore/main/Python.gitignore"
	vscodeGitignoreURL = "https://raw.githubusercontent.com/github/gitignore/main/Global/VisualStudioCode.gitignore"
)

// Source is a named upstream gitignore file.
type Source struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// Config describes which upstream files are combined and where the result goes.
type Config struct {
	// Template is the Jinja2 template file rendered with the fetched sources.
	Template string `json:"template" yaml:"template"`

	// Sources are fetched and exposed to the template as .config.<name>
	// and .config.<name>_url.
	Sources []Source `json:"sources" yaml:"sources"`

	// Targets are the files overwritten with the rendered content, relative
	// to the updater root.
	Targets []string `json:"targets" yaml:"targets"`
}

// DefaultConfig returns the configuration for the bundled project templates.
func DefaultConfig() *Config {
	return &Config{
		Template: DefaultTemplateFile,
		Sources: []Source{
			{Name: "python_gitignore", URL: pythonGitignoreURL},
			{Name: "vscode_gitignore", URL: vscodeGitignoreURL},
		},
		Targets: []string{
			"windows_qt/{{cookiecutter.repo_name}}/.gitignore",
			"windows_standalone_exe/{{cookiecutter.repo_name}}/.gitignore",
			"vscode/{{cookiecutter.repo_name}}/.gitignore",
			"windows_package/{{cookiecutter.repo_name}}/.gitignore",
		},
	}
}

// LoadConfig reads a YAML or JSON config file. Fields left empty take their
// values from DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	cfg, err := serializer.FromFile[Config](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load gitignore config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gitignore config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if strings.TrimSpace(c.Template) == "" {
		c.Template = d.Template
	}
	if len(c.Sources) == 0 {
		c.Sources = d.Sources
	}
	if len(c.Targets) == 0 {
		c.Targets = d.Targets
	}
}

// Validate checks that every source has a unique name and an http(s) URL.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Sources))
	for _, s := range c.Sources {
		if s.Name == "" {
			return fmt.Errorf("source with url %q has no name", s.URL)
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate source %q", s.Name)
		}
		seen[s.Name] = true

		u, err := url.Parse(s.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("source %q has invalid url %q", s.Name, s.URL)
		}
	}
	for _, t := range c.Targets {
		if strings.TrimSpace(t) == "" {
			return fmt.Errorf("empty target path")
		}
	}
	return nil
}
