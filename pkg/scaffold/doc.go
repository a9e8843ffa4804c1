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

// Package scaffold generates projects from cookiecutter style template
// directories.
//
// A template directory holds a cookiecutter.json (or cookiecutter.yaml) with
// the variable defaults and exactly one top-level project directory whose
// name is itself a template, for example {{cookiecutter.repo_name}}.
//
// Variables are resolved in order: defaults, rendered in declaration order so
// later defaults can use earlier values, then key=value overrides, then
// interactive prompts. List values are choices whose first entry is the
// default. Names starting with "_" are never prompted.
//
// Path segments and file contents are Jinja2 templates rendered by
// pkg/jinja with {"cookiecutter": vars} as context:
//
//	{{ cookiecutter.repo_name }}              variable lookup
//	{% if cookiecutter.x %}...{% endif %}     statements
//	{% arrow_now 'utc', 'YYYY' %}             current date, Arrow tokens
//	{% arrow_now 'local' + 'days=7' %}        shifted date
//
// Every rendered path segment must be a single name: empty, ".", ".." or a
// value containing a path separator is rejected.
//
// Binary files and files matching _copy_without_render are copied verbatim.
//
// Usage:
//
//	gen := scaffold.NewGenerator(scaffold.Options{
//	    TemplateDir: "templates/windows_standalone_exe",
//	    OutputDir:   ".",
//	    Overrides:   map[string]string{"repo_name": "my_tool"},
//	    NoInput:     true,
//	})
//	res, err := gen.Generate(ctx)
package scaffold
