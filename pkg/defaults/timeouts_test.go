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

package defaults

import (
	"testing"
	"time"
)

func TestTimeoutsInRange(t *testing.T) {
	ranges := map[string]struct {
		got      time.Duration
		min, max time.Duration
	}{
		"GitignoreFetchTimeout":     {GitignoreFetchTimeout, 10 * time.Second, 5 * time.Minute},
		"VersionInfoHandlerTimeout": {VersionInfoHandlerTimeout, time.Second, 30 * time.Second},
		"ServerReadTimeout":         {ServerReadTimeout, 5 * time.Second, 30 * time.Second},
		"ServerWriteTimeout":        {ServerWriteTimeout, 15 * time.Second, time.Minute},
		"ServerIdleTimeout":         {ServerIdleTimeout, 30 * time.Second, 5 * time.Minute},
		"ServerShutdownTimeout":     {ServerShutdownTimeout, 10 * time.Second, time.Minute},
		"HTTPClientTimeout":         {HTTPClientTimeout, 10 * time.Second, time.Minute},
		"HTTPConnectTimeout":        {HTTPConnectTimeout, time.Second, 15 * time.Second},
		"ConfigMapWriteTimeout":     {ConfigMapWriteTimeout, 10 * time.Second, time.Minute},
		"OCIPushTimeout":            {OCIPushTimeout, time.Minute, 10 * time.Minute},
	}

	for name, r := range ranges {
		t.Run(name, func(t *testing.T) {
			if r.got < r.min || r.got > r.max {
				t.Errorf("%s = %v, want within [%v, %v]", name, r.got, r.min, r.max)
			}
		})
	}
}

func TestTimeoutOrdering(t *testing.T) {
	// each pair is (shorter, longer)
	pairs := []struct {
		name            string
		shorter, longer time.Duration
	}{
		{"read header before read", ServerReadHeaderTimeout, ServerReadTimeout},
		{"read before write", ServerReadTimeout, ServerWriteTimeout},
		{"write before idle", ServerWriteTimeout, ServerIdleTimeout},
		{"render before write", VersionInfoHandlerTimeout, ServerWriteTimeout},
		{"connect before client", HTTPConnectTimeout, HTTPClientTimeout},
		{"tls before client", HTTPTLSHandshakeTimeout, HTTPClientTimeout},
		{"client before gitignore fetch", HTTPClientTimeout, GitignoreFetchTimeout},
	}

	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			if p.shorter > p.longer {
				t.Errorf("%v should not exceed %v", p.shorter, p.longer)
			}
		})
	}
}
