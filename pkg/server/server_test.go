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

package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func serve(s *Server, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestNew_Defaults(t *testing.T) {
	s := New()

	if s.config.Name != "server" {
		t.Errorf("expected default name 'server', got %s", s.config.Name)
	}
	if s.httpServer == nil || s.rateLimiter == nil {
		t.Fatal("expected httpServer and rateLimiter to be initialized")
	}
	if s.httpServer.Addr != ":8080" {
		t.Errorf("expected addr :8080, got %s", s.httpServer.Addr)
	}
}

func TestNew_Options(t *testing.T) {
	s := New(
		WithName("winkitd"),
		WithVersion("1.2.3"),
		WithHandler(map[string]http.HandlerFunc{"/v1/a": okHandler}),
		WithHandler(map[string]http.HandlerFunc{"/v1/b": okHandler}),
	)

	if s.config.Name != "winkitd" {
		t.Errorf("expected name winkitd, got %s", s.config.Name)
	}
	if s.config.Version != "1.2.3" {
		t.Errorf("expected version 1.2.3, got %s", s.config.Version)
	}
	for _, p := range []string{"/v1/a", "/v1/b"} {
		if _, ok := s.config.Handlers[p]; !ok {
			t.Errorf("expected handler %s to be registered", p)
		}
	}
}

func TestWithConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Address = "127.0.0.1"
	cfg.Port = 9090
	cfg.RateLimit = 500

	s := New(WithConfig(cfg), WithName("custom"))

	if s.config.Name != "custom" {
		t.Errorf("expected option after WithConfig to apply, got %s", s.config.Name)
	}
	if s.httpServer.Addr != "127.0.0.1:9090" {
		t.Errorf("expected addr 127.0.0.1:9090, got %s", s.httpServer.Addr)
	}
	if s.rateLimiter.Limit() != 500 {
		t.Errorf("expected rate limit 500, got %v", s.rateLimiter.Limit())
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := New()

	w := serve(s, http.MethodGet, "/health")
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}

	w = serve(s, http.MethodPost, "/health")
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, w.Code)
	}
}

func TestReadyEndpoint(t *testing.T) {
	s := New()

	tests := []struct {
		name   string
		ready  bool
		status int
		want   string
	}{
		{"ready", true, http.StatusOK, "ready"},
		{"not ready", false, http.StatusServiceUnavailable, "not_ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.setReady(tt.ready)

			w := serve(s, http.MethodGet, "/ready")
			if w.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, w.Code)
			}

			var resp HealthResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Status != tt.want {
				t.Errorf("expected status %q, got %q", tt.want, resp.Status)
			}
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := New(WithHandler(map[string]http.HandlerFunc{"/v1/test": okHandler}))

	// generate at least one observation
	serve(s, http.MethodGet, "/v1/test")

	w := serve(s, http.MethodGet, "/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if !strings.Contains(w.Body.String(), "winkit_http_requests_total") {
		t.Error("expected winkit_http_requests_total in metrics output")
	}
}

func TestDefaultRoute(t *testing.T) {
	s := New(
		WithName("winkitd"),
		WithHandler(map[string]http.HandlerFunc{"/v1/normalize": okHandler}),
	)

	w := serve(s, http.MethodGet, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp struct {
		Name   string   `json:"name"`
		Routes []string `json:"routes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Name != "winkitd" {
		t.Errorf("expected name winkitd, got %s", resp.Name)
	}
	want := []string{"/v1/normalize", "/health", "/ready", "/metrics"}
	if strings.Join(resp.Routes, ",") != strings.Join(want, ",") {
		t.Errorf("expected routes %v, got %v", want, resp.Routes)
	}

	if w.Header().Get("X-Request-Id") == "" {
		t.Error("expected default route to pass through middleware")
	}
}

func TestDefaultRoute_Errors(t *testing.T) {
	s := New()

	if w := serve(s, http.MethodPost, "/"); w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, w.Code)
	}
	if w := serve(s, http.MethodGet, "/nope"); w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestCustomRootHandlerNotOverridden(t *testing.T) {
	called := false
	s := New(WithHandler(map[string]http.HandlerFunc{
		"/": func(w http.ResponseWriter, _ *http.Request) {
			called = true
			w.WriteHeader(http.StatusTeapot)
		},
	}))

	w := serve(s, http.MethodGet, "/")
	if !called || w.Code != http.StatusTeapot {
		t.Errorf("expected custom root handler, got status %d", w.Code)
	}
}

func TestRateLimiting(t *testing.T) {
	cfg := NewConfig()
	cfg.RateLimit = 1
	cfg.RateLimitBurst = 1
	cfg.Handlers = map[string]http.HandlerFunc{"/v1/test": okHandler}

	s := New(WithConfig(cfg))

	if w := serve(s, http.MethodGet, "/v1/test"); w.Code != http.StatusOK {
		t.Errorf("expected first request to succeed, got %d", w.Code)
	}

	w := serve(s, http.MethodGet, "/v1/test")
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header to be set")
	}

	// system endpoints bypass the limiter
	if w := serve(s, http.MethodGet, "/health"); w.Code != http.StatusOK {
		t.Errorf("expected health to bypass rate limit, got %d", w.Code)
	}
}

func TestServe_GracefulShutdown(t *testing.T) {
	cfg := NewConfig()
	cfg.ShutdownTimeout = 500 * time.Millisecond
	cfg.Handlers = map[string]http.HandlerFunc{"/v1/test": okHandler}
	s := New(WithConfig(cfg))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.serve(ctx, ln)
	}()

	url := "http://" + ln.Addr().String() + "/ready"
	deadline := time.Now().Add(2 * time.Second)
	for {
		resp, err := http.Get(url) //nolint:gosec,noctx // test server
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				break
			}
		}
		if time.Now().After(deadline) {
			t.Fatal("server did not become ready")
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()

	select {
	case err := <-errChan:
		if err != nil {
			t.Errorf("expected clean shutdown, got error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown timed out")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ready {
		t.Error("expected server to be not ready after shutdown")
	}
}
