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

// Package jinja renders Jinja2 style templates, as used by cookiecutter
// project templates, on top of pongo2.
//
// Rendering adds what cookiecutter templates rely on beyond pongo2's
// defaults: output is not HTML escaped, {% raw %} blocks and multi-line
// {# #} comments are supported, unknown attributes of top-level mappings
// are errors, and the arrow_now tag formats the current time:
//
//	{% arrow_now 'local' %}                         2025.6.1
//	{% arrow_now 'utc', 'YYYY' %}                   2025
//	{% arrow_now 'utc' + 'days=1', 'YYYY-MM-DD' %}  2025-06-02
//
// The snake, camel, lower_camel and kebab filters convert case; title uses
// golang.org/x/text/cases.
package jinja
