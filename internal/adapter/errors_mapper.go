// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/jackc/pgerrcode"
)

// codeRowNotFound is returned by PostgREST when a single-object read
// matches no row.
const codeRowNotFound = "PGRST116"

// errorBody is the union of the error shapes of the table, storage and auth
// endpoints.
type errorBody struct {
	Code             json.RawMessage `json:"code"`
	ErrorCode        string          `json:"error_code"`
	StatusCode       string          `json:"statusCode"`
	Message          string          `json:"message"`
	Msg              string          `json:"msg"`
	Error            string          `json:"error"`
	ErrorDescription string          `json:"error_description"`
	Details          string          `json:"details"`
	Hint             string          `json:"hint"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{Status: resp.StatusCode()}
	body := strings.TrimSpace(string(resp.Body()))

	var eb errorBody
	if body != "" && json.Unmarshal([]byte(body), &eb) == nil {
		apiErr.Code = eb.code()
		apiErr.Message = firstNonEmpty(eb.Message, eb.Msg, eb.ErrorDescription, eb.Error)
		apiErr.Details = eb.Details
		apiErr.Hint = eb.Hint
	} else {
		apiErr.Message = body
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode())
	}

	status := resp.StatusCode()
	// storage reports some failures as 400 with the real status in the body
	if s, err := strconv.Atoi(eb.StatusCode); err == nil && s >= http.StatusBadRequest {
		status = s
	}

	apiErr.Err = classifyCode(apiErr.Code)
	if apiErr.Err == nil {
		apiErr.Err = classifyStatus(status)
	}

	return apiErr
}

func (eb errorBody) code() string {
	if len(eb.Code) > 0 {
		var s string
		if json.Unmarshal(eb.Code, &s) == nil && s != "" {
			return s
		}
	}
	// auth errors carry a numeric code and the name in error_code or error
	return firstNonEmpty(eb.ErrorCode, eb.Error)
}

func classifyStatus(status int) error {
	switch status {
	case http.StatusBadRequest, http.StatusNotAcceptable, http.StatusUnprocessableEntity:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusRequestEntityTooLarge:
		return ErrPayloadTooLarge
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrUnavailable
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return ErrUnexpectedStatus
	}
}

// classifyCode maps PostgREST and SQLSTATE codes. It returns nil for codes
// that carry no more information than the HTTP status.
func classifyCode(code string) error {
	switch code {
	case "":
		return nil
	case codeRowNotFound:
		return ErrNotFound
	case pgerrcode.InsufficientPrivilege:
		// row level security rejection
		return ErrForbidden
	case pgerrcode.UndefinedTable, pgerrcode.UndefinedColumn:
		return ErrNotFound
	}

	if len(code) != 5 {
		return nil
	}

	switch {
	case pgerrcode.IsIntegrityConstraintViolation(code):
		return ErrConflict
	case pgerrcode.IsDataException(code), pgerrcode.IsSyntaxErrororAccessRuleViolation(code):
		return ErrBadRequest
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsInsufficientResources(code),
		pgerrcode.IsOperatorIntervention(code):
		return ErrUnavailable
	case pgerrcode.IsTransactionRollback(code):
		return ErrConflict
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
