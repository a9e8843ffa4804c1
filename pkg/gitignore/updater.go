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
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/winkit-dev/winkit/pkg/defaults"
	"github.com/winkit-dev/winkit/pkg/jinja"
	"github.com/winkit-dev/winkit/pkg/result"
	"github.com/winkit-dev/winkit/pkg/serializer"
)

//go:embed templates/dot_gitignore.jinja2
var builtinTemplate string

// Fetcher retrieves the body of a URL.
type Fetcher interface {
	ReadWithContext(ctx context.Context, url string) ([]byte, error)
}

// Option configures an Updater.
type Option func(*Updater)

// WithRoot sets the directory targets and the template path are relative to.
func WithRoot(dir string) Option {
	return func(u *Updater) {
		u.root = dir
	}
}

// WithFetcher replaces the HTTP reader used for sources.
func WithFetcher(f Fetcher) Option {
	return func(u *Updater) {
		u.fetcher = f
	}
}

// WithFetchTimeout bounds fetching all sources.
func WithFetchTimeout(d time.Duration) Option {
	return func(u *Updater) {
		u.fetchTimeout = d
	}
}

// Updater regenerates the .gitignore files of the project templates.
type Updater struct {
	cfg          *Config
	root         string
	fetcher      Fetcher
	fetchTimeout time.Duration
}

// NewUpdater creates an Updater for cfg. A nil cfg means DefaultConfig.
func NewUpdater(cfg *Config, opts ...Option) *Updater {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	u := &Updater{
		cfg:          cfg,
		root:         ".",
		fetchTimeout: defaults.GitignoreFetchTimeout,
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.fetcher == nil {
		u.fetcher = serializer.NewHTTPReader()
	}
	return u
}

// Fetch downloads every source concurrently and returns the template data:
//
//	{"config": {"<name>": content, "<name>_url": url}}
//
// The first failing source cancels the rest and fails the fetch.
func (u *Updater) Fetch(ctx context.Context) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, u.fetchTimeout)
	defer cancel()

	var mu sync.Mutex
	config := make(map[string]any, 2*len(u.cfg.Sources))

	g, gctx := errgroup.WithContext(ctx)
	for _, src := range u.cfg.Sources {
		g.Go(func() error {
			slog.Info("fetching gitignore source", "name", src.Name, "url", src.URL)
			data, err := u.fetcher.ReadWithContext(gctx, src.URL)
			if err != nil {
				return fmt.Errorf("failed to fetch %s: %w", src.Name, err)
			}
			mu.Lock()
			config[src.Name] = string(data)
			config[src.Name+"_url"] = src.URL
			mu.Unlock()
			slog.Debug("fetched gitignore source", "name", src.Name, "bytes", len(data))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return map[string]any{"config": config}, nil
}

// loadTemplate returns the configured template text. A missing
// DefaultTemplateFile falls back to the built-in template.
func (u *Updater) loadTemplate() (name, text string, err error) {
	path := u.cfg.Template
	if path == "" {
		path = DefaultTemplateFile
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(u.root, path)
	}

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		return filepath.Base(path), string(b), nil
	case errors.Is(err, fs.ErrNotExist) && filepath.Base(path) == DefaultTemplateFile:
		slog.Debug("template not found, using built-in", "path", path)
		return DefaultTemplateFile, builtinTemplate, nil
	default:
		return "", "", fmt.Errorf("failed to read template %s: %w", path, err)
	}
}

// Render executes the Jinja2 template with data. Unknown config keys are errors.
func (u *Updater) Render(data map[string]any) (string, error) {
	name, text, err := u.loadTemplate()
	if err != nil {
		return "", err
	}

	out, err := jinja.Render(name, text, data, nil)
	if err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return out, nil
}

// Write overwrites every target with content. All targets are attempted;
// failures are recorded in res and returned together.
func (u *Updater) Write(content string, res *result.Result) error {
	var merr *multierror.Error
	for _, target := range u.cfg.Targets {
		path := filepath.Join(u.root, target)
		slog.Info("writing gitignore", "path", path)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil { //nolint:gosec // checked into the templates
			err = fmt.Errorf("failed to write %s: %w", path, err)
			res.AddError(err)
			merr = multierror.Append(merr, err)
			continue
		}
		res.AddFile(path, int64(len(content)))
	}
	return merr.ErrorOrNil()
}

// Run fetches, renders and writes. The returned result is non-nil even on
// error and lists the targets that were written.
func (u *Updater) Run(ctx context.Context) (*result.Result, error) {
	start := time.Now()
	res := result.New(result.OperationGitignore)
	res.OutputDir = u.root
	defer func() {
		res.Duration = time.Since(start)
	}()

	data, err := u.Fetch(ctx)
	if err != nil {
		res.AddError(err)
		return res, err
	}

	slog.Info("rendering gitignore template")
	content, err := u.Render(data)
	if err != nil {
		res.AddError(err)
		return res, err
	}

	err = u.Write(content, res)
	res.MarkSuccess()
	return res, err
}
