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

// Package server provides the HTTP server used by winkitd.
//
// Callers register API handlers by route; every API handler is wrapped with
// a fixed middleware chain:
//
//	metrics -> version -> requestID -> panicRecovery -> rateLimit -> logging
//
// The server also exposes system endpoints that bypass the chain:
//
//	GET /health   liveness, always 200
//	GET /ready    readiness, 503 until the listener is up and during shutdown
//	GET /metrics  Prometheus metrics (winkit_http_*)
//
// When no "/" handler is registered, a default route lists the registered
// routes along with the server name and version.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("winkitd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/normalize": handleNormalize,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run blocks until SIGINT or SIGTERM and then drains in-flight requests for
// up to ShutdownTimeout. PORT and SHUTDOWN_TIMEOUT_SECONDS override the
// listen port and the shutdown timeout.
//
// # Errors
//
// Every error is returned as JSON:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "product is required",
//	  "details": {"parameter": "product"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-06-01T12:00:00Z",
//	  "retryable": false
//	}
//
// The HTTP status is derived from the code via errors.ErrorCode.HTTPStatus.
// Requests may carry an X-Request-Id (UUID) which is echoed back; otherwise
// one is generated.
package server
