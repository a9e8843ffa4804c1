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

// Package api wires the winkit version endpoints into the HTTP server.
//
// Endpoints:
//
//	GET /v1/normalize?version=1.2.dev3
//	    {"input":"1.2.dev3","display":"1.2.3","tuple":"(1, 2, 3, 0)","components":[1,2,3,0]}
//
//	GET /v1/versioninfo?product=my_app&version=1.2.3[&company=...][&copyright=...]
//	    the rendered file_version_info.txt as text/plain
//
// product and version are required; a missing parameter returns 400 with
// code INVALID_REQUEST. Health, readiness, metrics and the route index are
// provided by pkg/server.
package api
