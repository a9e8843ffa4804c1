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

package api

import (
	"net/http"
	"strings"

	"k8s.io/utils/clock"

	"github.com/winkit-dev/winkit/pkg/defaults"
	"github.com/winkit-dev/winkit/pkg/errors"
	"github.com/winkit-dev/winkit/pkg/serializer"
	"github.com/winkit-dev/winkit/pkg/server"
	"github.com/winkit-dev/winkit/pkg/versioninfo"
)

// Handler serves the version endpoints.
type Handler struct {
	clock clock.PassiveClock
}

// NewHandler returns a Handler. A nil clock uses the wall clock.
func NewHandler(clk clock.PassiveClock) *Handler {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &Handler{clock: clk}
}

// Routes returns the API routes served by h.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	render := http.TimeoutHandler(http.HandlerFunc(h.HandleVersionInfo),
		defaults.VersionInfoHandlerTimeout, "version resource rendering timed out")
	return map[string]http.HandlerFunc{
		"/v1/normalize":   h.HandleNormalize,
		"/v1/versioninfo": render.ServeHTTP,
	}
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{"method": r.Method})
	return false
}

func requireParam(r *http.Request, name string) (string, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest,
			name+" is required", map[string]any{"parameter": name})
	}
	return v, nil
}

// HandleNormalize handles GET /v1/normalize?version=X.
func (h *Handler) HandleNormalize(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	v, err := requireParam(r, "version")
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "invalid request", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, versioninfo.NewEntry(v))
}

// HandleVersionInfo handles GET /v1/versioninfo and returns the rendered
// version resource file as plain text.
func (h *Handler) HandleVersionInfo(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	product, err := requireParam(r, "product")
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "invalid request", nil)
		return
	}
	ver, err := requireParam(r, "version")
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "invalid request", nil)
		return
	}

	q := r.URL.Query()
	text, err := versioninfo.Render(versioninfo.Options{
		Product:        product,
		Version:        ver,
		Company:        q.Get("company"),
		CopyrightYears: q.Get("copyright"),
		Clock:          h.clock,
	})
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "failed to render version resource", map[string]any{"product": product})
		return
	}

	serializer.RespondText(w, http.StatusOK, text)
}
