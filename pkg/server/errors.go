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
	"errors"
	"net/http"
	"time"

	omxerrors "github.com/NVIDIA/omx-store/pkg/errors"
	"github.com/NVIDIA/omx-store/pkg/serializer"
	"github.com/google/uuid"
)

// WriteError writes a structured error response.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code omxerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr maps an application error to an HTTP error response.
// StructuredError codes select the status; anything else is an internal fault.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, message string, details map[string]any) {
	code := omxerrors.ErrCodeInternal

	var structured *omxerrors.StructuredError
	if errors.As(err, &structured) {
		code = structured.Code
		if details == nil && structured.Context != nil {
			details = structured.Context
		}
	}

	status, retryable := statusForCode(code)
	WriteError(w, r, status, code, message, retryable, details)
}

// statusForCode maps error codes to HTTP status and retryability.
func statusForCode(code omxerrors.ErrorCode) (int, bool) {
	switch code {
	case omxerrors.ErrCodeNotFound:
		return http.StatusNotFound, false
	case omxerrors.ErrCodeInvalidRequest, omxerrors.ErrCodeInvalidConfig:
		return http.StatusBadRequest, false
	case omxerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed, false
	case omxerrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests, true
	case omxerrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable, true
	default:
		return http.StatusInternalServerError, true
	}
}
