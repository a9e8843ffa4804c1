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
	stderrors "errors"
	"maps"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/winkit-dev/winkit/pkg/errors"
	"github.com/winkit-dev/winkit/pkg/serializer"
)

// ErrorResponse is the JSON body of every error returned by the server.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// HTTPStatusFromCode maps an error code to its HTTP status.
func HTTPStatusFromCode(code errors.ErrorCode) int {
	return code.HTTPStatus()
}

var retryableCodes = map[errors.ErrorCode]bool{
	errors.ErrCodeTimeout:           true,
	errors.ErrCodeUnavailable:       true,
	errors.ErrCodeRateLimitExceeded: true,
	errors.ErrCodeInternal:          true,
}

func retryableFromCode(code errors.ErrorCode) bool {
	return retryableCodes[code]
}

// mergeDetails combines the maps left to right, later keys winning.
// It returns nil when every map is empty.
func mergeDetails(parts ...map[string]any) map[string]any {
	var out map[string]any
	for _, p := range parts {
		if len(p) == 0 {
			continue
		}
		if out == nil {
			out = make(map[string]any, len(p))
		}
		maps.Copy(out, p)
	}
	return out
}

// WriteError writes an ErrorResponse with the request ID from the context.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code errors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, ok := r.Context().Value(contextKeyRequestID).(string)
	if !ok || requestID == "" {
		requestID = uuid.NewString()
	}

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// WriteErrorFromErr writes err as an ErrorResponse. Structured errors keep
// their code, message and context; anything else becomes INTERNAL with
// fallbackMessage. The cause, if any, is reported as details["error"].
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, extra map[string]any) {
	var cause map[string]any
	var se *errors.StructuredError
	if !stderrors.As(err, &se) {
		if err != nil {
			cause = map[string]any{"error": err.Error()}
		}
		WriteError(w, r, http.StatusInternalServerError, errors.ErrCodeInternal,
			fallbackMessage, true, mergeDetails(extra, cause))
		return
	}

	if se.Cause != nil {
		cause = map[string]any{"error": se.Cause.Error()}
	}
	WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message,
		retryableFromCode(se.Code), mergeDetails(se.Context, extra, cause))
}
