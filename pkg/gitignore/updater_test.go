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
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winkit-dev/winkit/pkg/serializer"
)

const repoDir = "{{cookiecutter.repo_name}}"

func upstream(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/Python.gitignore":
			_, _ = w.Write([]byte("__pycache__/\n*.py[cod]\n"))
		case "/VisualStudioCode.gitignore":
			_, _ = w.Write([]byte(".vscode/*\n"))
		case "/slow":
			<-r.Context().Done()
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(srv *httptest.Server) *Config {
	return &Config{
		Template: DefaultTemplateFile,
		Sources: []Source{
			{Name: "python_gitignore", URL: srv.URL + "/Python.gitignore"},
			{Name: "vscode_gitignore", URL: srv.URL + "/VisualStudioCode.gitignore"},
		},
		Targets: []string{
			filepath.Join("windows_qt", repoDir, ".gitignore"),
			filepath.Join("vscode", repoDir, ".gitignore"),
		},
	}
}

func mkTargets(t *testing.T, root string, cfg *Config) {
	t.Helper()
	for _, target := range cfg.Targets {
		require.NoError(t, os.MkdirAll(filepath.Dir(filepath.Join(root, target)), 0o755))
	}
}

func newTestUpdater(srv *httptest.Server, cfg *Config, root string) *Updater {
	return NewUpdater(cfg,
		WithRoot(root),
		WithFetcher(serializer.NewHTTPReader(serializer.WithClient(srv.Client()))),
	)
}

func TestUpdater_Fetch(t *testing.T) {
	srv := upstream(t)
	cfg := testConfig(srv)

	data, err := newTestUpdater(srv, cfg, t.TempDir()).Fetch(context.Background())
	require.NoError(t, err)

	config, ok := data["config"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "__pycache__/\n*.py[cod]\n", config["python_gitignore"])
	assert.Equal(t, srv.URL+"/Python.gitignore", config["python_gitignore_url"])
	assert.Equal(t, ".vscode/*\n", config["vscode_gitignore"])
	assert.Len(t, config, 4)
}

func TestUpdater_FetchFailure(t *testing.T) {
	srv := upstream(t)

	t.Run("non-200 fails the run", func(t *testing.T) {
		cfg := testConfig(srv)
		cfg.Sources = append(cfg.Sources, Source{Name: "missing", URL: srv.URL + "/missing"})

		_, err := newTestUpdater(srv, cfg, t.TempDir()).Fetch(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing")
	})

	t.Run("timeout", func(t *testing.T) {
		cfg := testConfig(srv)
		cfg.Sources = []Source{{Name: "slow", URL: srv.URL + "/slow"}}

		u := NewUpdater(cfg,
			WithFetcher(serializer.NewHTTPReader(serializer.WithClient(srv.Client()))),
			WithFetchTimeout(50*time.Millisecond))
		_, err := u.Fetch(context.Background())
		assert.Error(t, err)
	})
}

func TestUpdater_Render(t *testing.T) {
	data := map[string]any{"config": map[string]any{
		"python_gitignore":     "__pycache__/",
		"python_gitignore_url": "https://example.com/Python.gitignore",
		"vscode_gitignore":     ".vscode/*",
		"vscode_gitignore_url": "https://example.com/VisualStudioCode.gitignore",
	}}

	t.Run("built-in template", func(t *testing.T) {
		out, err := NewUpdater(nil, WithRoot(t.TempDir())).Render(data)
		require.NoError(t, err)
		assert.Contains(t, out, "# source: https://example.com/Python.gitignore\n#\n__pycache__/\n")
		assert.Contains(t, out, ".vscode/*")
	})

	t.Run("template file", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "custom.jinja2"),
			[]byte("{{ config.vscode_gitignore }}|{{ config.python_gitignore }}"), 0o600))

		cfg := DefaultConfig()
		cfg.Template = "custom.jinja2"
		out, err := NewUpdater(cfg, WithRoot(root)).Render(data)
		require.NoError(t, err)
		assert.Equal(t, ".vscode/*|__pycache__/", out)
	})

	t.Run("statements and filters", func(t *testing.T) {
		root := t.TempDir()
		text := "{# header #}{% if config.vscode_gitignore %}{{ config.vscode_gitignore|upper }}\n{% endif %}" +
			"{% for k in keys %}{{ k|kebab }};{% endfor %}"
		require.NoError(t, os.WriteFile(filepath.Join(root, "custom.jinja2"), []byte(text), 0o600))

		cfg := DefaultConfig()
		cfg.Template = "custom.jinja2"
		in := map[string]any{"config": data["config"], "keys": []string{"python_gitignore", "vscode_gitignore"}}
		out, err := NewUpdater(cfg, WithRoot(root)).Render(in)
		require.NoError(t, err)
		assert.Equal(t, ".VSCODE/*\npython-gitignore;vscode-gitignore;", out)
	})

	t.Run("missing custom template", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Template = "nope.jinja2"
		_, err := NewUpdater(cfg, WithRoot(t.TempDir())).Render(data)
		assert.Error(t, err)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := NewUpdater(nil, WithRoot(t.TempDir())).Render(map[string]any{"config": map[string]any{}})
		assert.Error(t, err)
	})
}

func TestUpdater_Run(t *testing.T) {
	srv := upstream(t)
	root := t.TempDir()
	cfg := testConfig(srv)
	mkTargets(t, root, cfg)

	res, err := newTestUpdater(srv, cfg, root).Run(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Len(t, res.Files, 2)

	for _, target := range cfg.Targets {
		got, err := os.ReadFile(filepath.Join(root, target))
		require.NoError(t, err)
		assert.Contains(t, string(got), "*.py[cod]")
		assert.Contains(t, string(got), ".vscode/*")
	}
	// placeholder directories are used literally
	assert.DirExists(t, filepath.Join(root, "vscode", repoDir))
}

func TestUpdater_RunPartialWriteFailure(t *testing.T) {
	srv := upstream(t)
	root := t.TempDir()
	cfg := testConfig(srv)
	// only the first target directory exists
	require.NoError(t, os.MkdirAll(filepath.Join(root, "windows_qt", repoDir), 0o755))

	res, err := newTestUpdater(srv, cfg, root).Run(context.Background())
	require.Error(t, err)
	assert.False(t, res.Success)
	assert.Len(t, res.Files, 1)
	require.Len(t, res.Errors, 1)
	assert.True(t, strings.Contains(res.Errors[0], "vscode"))
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("partial config takes defaults", func(t *testing.T) {
		path := filepath.Join(dir, "gitignore.yaml")
		require.NoError(t, os.WriteFile(path, []byte("targets:\n  - a/.gitignore\n"), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"a/.gitignore"}, cfg.Targets)
		assert.Equal(t, DefaultConfig().Sources, cfg.Sources)
		assert.Equal(t, DefaultTemplateFile, cfg.Template)
	})

	t.Run("invalid source url", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("sources:\n  - name: x\n    url: ftp://example.com/x\n"), 0o600))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "default", cfg: *DefaultConfig()},
		{name: "unnamed source", cfg: Config{Sources: []Source{{URL: "https://x/y"}}}, wantErr: true},
		{name: "duplicate source", cfg: Config{Sources: []Source{{Name: "a", URL: "https://x/a"}, {Name: "a", URL: "https://x/b"}}}, wantErr: true},
		{name: "relative url", cfg: Config{Sources: []Source{{Name: "a", URL: "/a"}}}, wantErr: true},
		{name: "blank target", cfg: Config{Targets: []string{" "}}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			assert.Equal(t, tt.wantErr, err != nil, "Validate() error = %v", err)
		})
	}
}
