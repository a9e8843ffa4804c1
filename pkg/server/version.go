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
	"mime"
	"net/http"
	"slices"
	"strings"
)

const (
	// DefaultAPIVersion is used when the Accept header names no supported version.
	DefaultAPIVersion = "v1"

	// vendorMediaPrefix starts vendor media types, e.g. application/vnd.winkit.v1+json.
	vendorMediaPrefix = "application/vnd.winkit."
	vendorMediaSuffix = "+json"

	headerAPIVersion = "X-API-Version"
)

var supportedAPIVersions = []string{"v1"}

// negotiateAPIVersion picks the first supported version named by a vendor
// media type in the Accept header.
func negotiateAPIVersion(r *http.Request) string {
	for _, entry := range strings.Split(r.Header.Get("Accept"), ",") {
		mt, _, err := mime.ParseMediaType(strings.TrimSpace(entry))
		if err != nil || !strings.HasPrefix(mt, vendorMediaPrefix) || !strings.HasSuffix(mt, vendorMediaSuffix) {
			continue
		}
		v := strings.TrimSuffix(strings.TrimPrefix(mt, vendorMediaPrefix), vendorMediaSuffix)
		if isValidAPIVersion(v) {
			return v
		}
	}
	return DefaultAPIVersion
}

func isValidAPIVersion(version string) bool {
	return slices.Contains(supportedAPIVersions, version)
}

// SetAPIVersionHeader reports the negotiated API version on the response.
func SetAPIVersionHeader(w http.ResponseWriter, version string) {
	w.Header().Set(headerAPIVersion, version)
}
