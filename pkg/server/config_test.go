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
	"testing"
	"time"

	"github.com/winkit-dev/winkit/pkg/defaults"
)

func TestParseConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := parseConfig()

		if cfg.Address != "" {
			t.Errorf("expected empty address, got %s", cfg.Address)
		}
		if cfg.Port != 8080 {
			t.Errorf("expected port 8080, got %d", cfg.Port)
		}
		if cfg.RateLimit != 100 || cfg.RateLimitBurst != 200 {
			t.Errorf("expected 100/200 rate limit, got %v/%d", cfg.RateLimit, cfg.RateLimitBurst)
		}
		if cfg.ReadTimeout != defaults.ServerReadTimeout {
			t.Errorf("expected read timeout %v, got %v", defaults.ServerReadTimeout, cfg.ReadTimeout)
		}
		if cfg.ShutdownTimeout != defaults.ServerShutdownTimeout {
			t.Errorf("expected shutdown timeout %v, got %v", defaults.ServerShutdownTimeout, cfg.ShutdownTimeout)
		}
		if cfg.Handlers == nil {
			t.Error("expected handlers map to be initialized")
		}
	})

	tests := []struct {
		name     string
		port     string
		shutdown string
		wantPort int
		wantStop time.Duration
	}{
		{"port from env", "9090", "", 9090, defaults.ServerShutdownTimeout},
		{"invalid port ignored", "invalid", "", 8080, defaults.ServerShutdownTimeout},
		{"out of range port ignored", "70000", "", 8080, defaults.ServerShutdownTimeout},
		{"shutdown from env", "", "45", 8080, 45 * time.Second},
		{"zero shutdown ignored", "", "0", 8080, defaults.ServerShutdownTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvPort, tt.port)
			t.Setenv(EnvShutdownTimeout, tt.shutdown)

			cfg := parseConfig()
			if cfg.Port != tt.wantPort {
				t.Errorf("expected port %d, got %d", tt.wantPort, cfg.Port)
			}
			if cfg.ShutdownTimeout != tt.wantStop {
				t.Errorf("expected shutdown timeout %v, got %v", tt.wantStop, cfg.ShutdownTimeout)
			}
		})
	}
}
