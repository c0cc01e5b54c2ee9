package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	apperrors "github.com/careerai/go-careerai/internal/errors"
)

// Error is a structured API rejection. The CareerAI backend reports
// validation failures as a field -> messages map and everything else under a
// single detail key, so both shapes are preserved here.
type Error struct {
	StatusCode int
	Detail     string
	Fields     map[string][]string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Detail)
	}
	if len(e.Fields) > 0 {
		return fmt.Sprintf("api: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.fieldSummary())
	}
	return fmt.Sprintf("api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Unwrap maps authorization rejections onto the shared sentinel so callers
// can use errors.Is without inspecting status codes.
func (e *Error) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return apperrors.ErrUnauthorized
	}
	return nil
}

// Unauthorized reports whether the server rejected the access token.
func (e *Error) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

func (e *Error) fieldSummary() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], "; ")))
	}
	return strings.Join(parts, ", ")
}

// IsUnauthorized reports whether err (anywhere in its chain) is an API
// authorization failure.
func IsUnauthorized(err error) bool {
	return apperrors.Is(err, apperrors.ErrUnauthorized)
}

// decodeError turns an error response body into an *Error. The backend uses
// a few shapes: {"detail": "..."}, {"error": "..."}, {"message": "..."}, and
// per-field arrays like {"email": ["..."], "non_field_errors": ["..."]}.
func decodeError(statusCode int, body []byte) *Error {
	apiErr := &Error{StatusCode: statusCode}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		apiErr.Detail = strings.TrimSpace(string(body))
		return apiErr
	}

	for key, raw := range payload {
		var str string
		if err := json.Unmarshal(raw, &str); err == nil {
			switch key {
			case "detail", "error", "message":
				apiErr.Detail = str
			default:
				apiErr.addField(key, str)
			}
			continue
		}

		var list []string
		if err := json.Unmarshal(raw, &list); err == nil {
			for _, msg := range list {
				apiErr.addField(key, msg)
			}
		}
	}

	if apiErr.Detail == "" {
		if msgs, ok := apiErr.Fields["non_field_errors"]; ok && len(msgs) > 0 {
			apiErr.Detail = msgs[0]
		}
	}

	return apiErr
}

func (e *Error) addField(key, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[key] = append(e.Fields[key], msg)
}
