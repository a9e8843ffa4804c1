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

package scaffold

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
	"k8s.io/utils/clock"

	"github.com/winkit-dev/winkit/pkg/errors"
	"github.com/winkit-dev/winkit/pkg/jinja"
)

// Context file names, in lookup order.
var ContextFiles = []string{"cookiecutter.json", "cookiecutter.yaml", "cookiecutter.yml"}

// CopyWithoutRenderKey lists glob patterns for files copied verbatim.
const CopyWithoutRenderKey = "_copy_without_render"

// Variable is one entry of the template context.
type Variable struct {
	Name string
	// Default is a string, bool, number or map value.
	Default any
	// Choices holds the options of a choice variable; the first is the default.
	Choices []string
}

// IsChoice reports whether the variable offers a list of options.
func (v Variable) IsChoice() bool {
	return len(v.Choices) > 0
}

// Private reports whether the variable is hidden from prompts.
// Names starting with "_" are neither prompted nor rendered,
// names starting with "__" are rendered but not prompted.
func (v Variable) Private() bool {
	return strings.HasPrefix(v.Name, "_")
}

// Context is the ordered variable set declared by a template directory.
type Context struct {
	// Path is the file the context was loaded from.
	Path string
	// Variables in declaration order.
	Variables []Variable
	// CopyWithoutRender holds glob patterns matched against relative paths.
	CopyWithoutRender []string
}

// LoadContext reads the cookiecutter.json (or .yaml) file in dir.
// JSON is parsed as YAML so both formats keep their key order.
func LoadContext(dir string) (*Context, error) {
	var path string
	for _, name := range ContextFiles {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			path = p
			break
		}
	}
	if path == "" {
		return nil, errors.NewWithContext(errors.ErrCodeNotFound,
			fmt.Sprintf("no cookiecutter.json found in '%s'", dir),
			map[string]any{"dir": dir})
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to read template context", err)
	}
	cc, err := ParseContext(data)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid template context", err,
			map[string]any{"path": path})
	}
	cc.Path = path
	return cc, nil
}

// ParseContext parses context file content.
func ParseContext(data []byte) (*Context, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return &Context{}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("context must be a mapping, got %s", kindName(root.Kind))
	}

	cc := &Context{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i].Value, root.Content[i+1]

		if key == CopyWithoutRenderKey {
			if err := val.Decode(&cc.CopyWithoutRender); err != nil {
				return nil, fmt.Errorf("%s must be a list of patterns: %w", key, err)
			}
			continue
		}

		v := Variable{Name: key}
		switch {
		case v.Private() || val.Kind != yaml.SequenceNode:
			var def any
			if err := val.Decode(&def); err != nil {
				return nil, fmt.Errorf("variable %s: %w", key, err)
			}
			v.Default = def
		default:
			for _, item := range val.Content {
				if item.Kind != yaml.ScalarNode {
					return nil, fmt.Errorf("choice variable %s must only contain scalars", key)
				}
				v.Choices = append(v.Choices, item.Value)
			}
			if len(v.Choices) == 0 {
				return nil, fmt.Errorf("choice variable %s has no options", key)
			}
			v.Default = v.Choices[0]
		}
		cc.Variables = append(cc.Variables, v)
	}
	return cc, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "document"
}

// ParseOverrides parses "key=value" pairs as given on the command line.
func ParseOverrides(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, errors.New(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("invalid override '%s', expected key=value", p))
		}
		out[k] = v
	}
	return out, nil
}

// Resolve computes the final variable values. Defaults are rendered in
// declaration order so later defaults can refer to earlier values, then
// overrides are applied, then p is asked for every public variable not
// overridden. A nil p disables prompting.
func (c *Context) Resolve(overrides map[string]string, p Prompter, clk clock.PassiveClock) (map[string]any, error) {
	vars := make(map[string]any, len(c.Variables))

	known := make(map[string]bool, len(c.Variables))
	for _, v := range c.Variables {
		known[v.Name] = true
	}
	for k := range overrides {
		if !known[k] {
			slog.Warn("ignoring override for unknown variable", "name", k)
		}
	}

	for _, v := range c.Variables {
		if over, ok := overrides[v.Name]; ok {
			val, err := coerce(v, over)
			if err != nil {
				return nil, err
			}
			vars[v.Name] = val
			continue
		}

		val, choices, err := c.renderDefault(v, vars, clk)
		if err != nil {
			return nil, err
		}

		if p != nil && !v.Private() {
			val, err = ask(p, v, val, choices)
			if err != nil {
				return nil, err
			}
		}
		vars[v.Name] = val
	}

	if len(c.CopyWithoutRender) > 0 {
		vars[CopyWithoutRenderKey] = slices.Clone(c.CopyWithoutRender)
	}
	return vars, nil
}

func (c *Context) renderDefault(v Variable, vars map[string]any, clk clock.PassiveClock) (any, []string, error) {
	if strings.HasPrefix(v.Name, "_") && !strings.HasPrefix(v.Name, "__") {
		return v.Default, v.Choices, nil
	}

	if v.IsChoice() {
		choices := make([]string, len(v.Choices))
		for i, opt := range v.Choices {
			r, err := renderString(v.Name, opt, vars, clk)
			if err != nil {
				return nil, nil, err
			}
			choices[i] = r
		}
		return choices[0], choices, nil
	}

	s, ok := v.Default.(string)
	if !ok {
		return v.Default, nil, nil
	}
	r, err := renderString(v.Name, s, vars, clk)
	if err != nil {
		return nil, nil, err
	}
	return r, nil, nil
}

func renderString(name, text string, vars map[string]any, clk clock.PassiveClock) (string, error) {
	if !jinja.IsTemplated(text) {
		return text, nil
	}
	out, err := jinja.Render(name, text, map[string]any{"cookiecutter": vars}, clk)
	if err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeInvalidRequest, "failed to render variable default", err,
			map[string]any{"variable": name})
	}
	return out, nil
}

func coerce(v Variable, raw string) (any, error) {
	if v.IsChoice() && !slices.Contains(v.Choices, raw) {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid value '%s' for %s", raw, v.Name),
			map[string]any{"choices": v.Choices})
	}
	if _, ok := v.Default.(bool); ok {
		b, err := parseYesNo(raw)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("invalid boolean for %s", v.Name), err)
		}
		return b, nil
	}
	return raw, nil
}

func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "on":
		return true, nil
	case "n", "no", "off":
		return false, nil
	}
	return strconv.ParseBool(s)
}

func ask(p Prompter, v Variable, def any, choices []string) (any, error) {
	switch d := def.(type) {
	case bool:
		return p.Confirm(v.Name, d)
	case map[string]any:
		return d, nil
	}
	if len(choices) > 0 {
		return p.Select(v.Name, choices, fmt.Sprint(def))
	}
	return p.Input(v.Name, fmt.Sprint(def))
}
