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

import "time"

// winkitd HTTP server.
const (
	ServerReadHeaderTimeout = 5 * time.Second
	ServerReadTimeout       = 10 * time.Second
	ServerWriteTimeout      = 30 * time.Second
	ServerIdleTimeout       = 2 * time.Minute

	// ServerShutdownTimeout bounds draining in-flight requests on SIGTERM.
	ServerShutdownTimeout = 30 * time.Second

	// VersionInfoHandlerTimeout caps a single /v1/versioninfo render.
	VersionInfoHandlerTimeout = 10 * time.Second
)

// Outbound HTTP used by the gitignore fetcher and the generic HTTP reader.
const (
	HTTPClientTimeout         = 30 * time.Second
	HTTPConnectTimeout        = 5 * time.Second
	HTTPKeepAlive             = 30 * time.Second
	HTTPTLSHandshakeTimeout   = 5 * time.Second
	HTTPResponseHeaderTimeout = 10 * time.Second
	HTTPExpectContinueTimeout = time.Second
	HTTPIdleConnTimeout       = 90 * time.Second

	// GitignoreFetchTimeout covers fetching every configured source.
	GitignoreFetchTimeout = time.Minute
)

// Remote sinks.
const (
	ConfigMapWriteTimeout = 30 * time.Second

	// OCIPushTimeout covers packaging and pushing a generated project.
	OCIPushTimeout = 5 * time.Minute
)
