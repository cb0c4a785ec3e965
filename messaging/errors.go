// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package messaging

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidOneTimeKey is returned when a one-time key is neither a
// string nor an object with key and signatures fields.
var ErrInvalidOneTimeKey = errors.New("messaging: one-time key must be a string or a signed key object")

// MatrixError represents a structured error response from the Matrix homeserver.
// Callers can use errors.As to extract the structured information:
//
//	var matrixErr *MatrixError
//	if errors.As(err, &matrixErr) {
//	    if matrixErr.Code == ErrCodeNotFound { ... }
//	}
type MatrixError struct {
	// Code is the Matrix error code (e.g., "M_FORBIDDEN", "M_NOT_FOUND").
	Code string `json:"errcode"`
	// Message is the human-readable error description from the server.
	Message string `json:"error"`
	// StatusCode is the HTTP status code of the response.
	StatusCode int `json:"-"`
}

func (e *MatrixError) Error() string {
	return fmt.Sprintf("matrix: %s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// Standard Matrix error codes.
const (
	ErrCodeForbidden     = "M_FORBIDDEN"
	ErrCodeUnknownToken  = "M_UNKNOWN_TOKEN"
	ErrCodeNotFound      = "M_NOT_FOUND"
	ErrCodeLimitExceeded = "M_LIMIT_EXCEEDED"
	ErrCodeUnrecognized  = "M_UNRECOGNIZED"
	ErrCodeUnknown       = "M_UNKNOWN"
	ErrCodeInvalidParam  = "M_INVALID_PARAM"
	ErrCodeMissingParam  = "M_MISSING_PARAM"
	ErrCodeBadJSON       = "M_BAD_JSON"
	ErrCodeNotJSON       = "M_NOT_JSON"
)

// ParseErrorResponse decodes the body of a non-2xx response. A body in
// the standard error shape becomes a *MatrixError carrying statusCode.
// Any other body is reported verbatim, since it means the response did
// not come from a compliant homeserver.
func ParseErrorResponse(statusCode int, body []byte) error {
	var matrixErr MatrixError
	if err := json.Unmarshal(body, &matrixErr); err != nil || matrixErr.Code == "" {
		return fmt.Errorf("messaging: unexpected %d response: %s", statusCode, body)
	}
	matrixErr.StatusCode = statusCode
	return &matrixErr
}

// IsMatrixError checks whether err is a *MatrixError with the given error code.
func IsMatrixError(err error, code string) bool {
	var matrixErr *MatrixError
	if errors.As(err, &matrixErr) {
		return matrixErr.Code == code
	}
	return false
}
