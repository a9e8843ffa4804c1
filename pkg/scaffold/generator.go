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
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"k8s.io/utils/clock"

	"github.com/winkit-dev/winkit/pkg/checksum"
	"github.com/winkit-dev/winkit/pkg/errors"
	"github.com/winkit-dev/winkit/pkg/jinja"
	"github.com/winkit-dev/winkit/pkg/result"
)

// binarySniffLen is how many leading bytes are checked for NUL to detect binary files.
const binarySniffLen = 8000

// Options configures a Generator.
type Options struct {
	// TemplateDir contains cookiecutter.json and the project template directory.
	TemplateDir string
	// OutputDir is the parent directory of the generated project. Defaults to ".".
	OutputDir string
	// Overrides are variable values given with --set.
	Overrides map[string]string
	// Prompter asks for values. Nil, or NoInput, uses defaults and overrides only.
	Prompter Prompter
	NoInput  bool
	// Overwrite allows writing into an existing project directory.
	Overwrite bool
	// Checksums writes checksums.txt into the generated project.
	Checksums bool
	// Clock is used by the date template functions.
	Clock clock.PassiveClock
}

// Generator renders a project template directory into a new project.
type Generator struct {
	opts Options
}

// NewGenerator creates a generator.
func NewGenerator(opts Options) *Generator {
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	return &Generator{opts: opts}
}

// FindProjectTemplate returns the name of the single templated directory
// directly under dir.
func FindProjectTemplate(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeNotFound, fmt.Sprintf("cannot read template directory '%s'", dir), err)
	}
	var found []string
	for _, e := range entries {
		if e.IsDir() && strings.Contains(e.Name(), "cookiecutter") && jinja.IsTemplated(e.Name()) {
			found = append(found, e.Name())
		}
	}
	switch len(found) {
	case 0:
		return "", errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("no project template directory found in '%s'", dir))
	case 1:
		return found[0], nil
	}
	return "", errors.NewWithContext(errors.ErrCodeInvalidRequest,
		fmt.Sprintf("more than one project template directory in '%s'", dir),
		map[string]any{"candidates": found})
}

// Generate resolves the variables and writes the project.
func (g *Generator) Generate(ctx context.Context) (*result.Result, error) {
	start := time.Now()
	res := result.New(result.OperationScaffold)

	cc, err := LoadContext(g.opts.TemplateDir)
	if err != nil {
		return nil, err
	}

	var p Prompter
	if !g.opts.NoInput {
		p = g.opts.Prompter
	}
	vars, err := cc.Resolve(g.opts.Overrides, p, g.opts.Clock)
	if err != nil {
		return nil, err
	}

	projectTmpl, err := FindProjectTemplate(g.opts.TemplateDir)
	if err != nil {
		return nil, err
	}

	data := map[string]any{"cookiecutter": vars}
	projectName, err := g.render(projectTmpl, projectTmpl, data)
	if err != nil {
		return nil, err
	}
	projectName = strings.TrimSpace(projectName)
	if !validSegment(projectName) {
		return nil, errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("project directory name renders to invalid value '%s'", projectName))
	}

	dest := filepath.Join(g.opts.OutputDir, projectName)
	if _, statErr := os.Stat(dest); statErr == nil {
		if !g.opts.Overwrite {
			return nil, errors.NewWithContext(errors.ErrCodeConflict,
				fmt.Sprintf("project directory '%s' already exists", dest),
				map[string]any{"hint": "use --overwrite to write into it"})
		}
		slog.Warn("writing into existing project directory", "path", dest)
	}
	res.OutputDir = dest

	slog.Info("generating project",
		"template", g.opts.TemplateDir,
		"project", projectName,
		"output", dest,
	)

	src := filepath.Join(g.opts.TemplateDir, projectTmpl)
	walkErr := filepath.WalkDir(src, func(walkPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Wrap(errors.ErrCodeTimeout, "generation cancelled", ctxErr)
		}

		rel, err := filepath.Rel(src, walkPath)
		if err != nil {
			return err
		}
		target, skip, err := g.targetPath(rel, data)
		if err != nil {
			return err
		}
		if skip {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		out := filepath.Join(dest, target)

		info, err := d.Info()
		if err != nil {
			return err
		}
		if d.IsDir() {
			return os.MkdirAll(out, info.Mode().Perm()|0o700)
		}
		if !info.Mode().IsRegular() {
			slog.Debug("skipping non-regular file", "path", walkPath)
			return nil
		}
		return g.writeFile(walkPath, out, filepath.ToSlash(rel), info.Mode().Perm(), cc.CopyWithoutRender, data, res)
	})
	if walkErr != nil {
		return nil, errors.Wrap(errors.CodeOf(walkErr), "failed to generate project", walkErr)
	}

	if g.opts.Checksums {
		sumPath, sumErr := checksum.GenerateChecksums(ctx, dest, res.Files)
		if sumErr != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, "failed to write checksums", sumErr)
		}
		res.Checksum = sumPath
	}

	res.Duration = time.Since(start)
	res.MarkSuccess()

	slog.Debug("project generated",
		"files", len(res.Files),
		"size_bytes", res.Size,
		"duration", res.Duration.Round(time.Millisecond),
	)
	return res, nil
}

// targetPath renders each segment of the template relative path.
// A segment that renders empty drops the entry.
func (g *Generator) targetPath(rel string, data map[string]any) (string, bool, error) {
	if rel == "." {
		return ".", false, nil
	}
	parts := strings.Split(rel, string(filepath.Separator))
	for i, seg := range parts {
		if !jinja.IsTemplated(seg) {
			continue
		}
		r, err := g.render(rel, seg, data)
		if err != nil {
			return "", false, err
		}
		r = strings.TrimSpace(r)
		if r == "" {
			return "", true, nil
		}
		if !validSegment(r) {
			return "", false, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("path segment renders to invalid value '%s'", r),
				map[string]any{"template": rel})
		}
		parts[i] = r
	}
	return filepath.Join(parts...), false, nil
}

// validSegment reports whether a rendered name stays a single path element.
func validSegment(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

func (g *Generator) writeFile(src, dst, rel string, perm fs.FileMode, verbatim []string, data map[string]any, res *result.Result) error {
	content, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	if !isBinary(content) && !matchesAny(verbatim, rel) {
		rendered, renderErr := g.render(rel, string(content), data)
		if renderErr != nil {
			return renderErr
		}
		content = []byte(rendered)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(dst, content, perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	// WriteFile keeps the mode of an existing file
	if err := os.Chmod(dst, perm); err != nil {
		return err
	}
	res.AddFile(dst, int64(len(content)))

	slog.Debug("file written",
		"path", dst,
		"size_bytes", len(content),
		"permissions", perm,
	)
	return nil
}

func (g *Generator) render(name, text string, data map[string]any) (string, error) {
	return jinja.Render(name, text, data, g.opts.Clock)
}

func isBinary(content []byte) bool {
	return bytes.IndexByte(content[:min(len(content), binarySniffLen)], 0) >= 0
}

// matchesAny matches rel, relative to the project template, and its base name
// against the glob patterns.
func matchesAny(patterns []string, rel string) bool {
	base := path.Base(rel)
	for _, pat := range patterns {
		if ok, _ := path.Match(pat, rel); ok {
			return true
		}
		if ok, _ := path.Match(pat, base); ok {
			return true
		}
	}
	return false
}
