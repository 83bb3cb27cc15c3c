package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/yameogo/gestock/internal/common"
)

// Error is a decoded API failure: the HTTP status plus either a
// field-level validation map or a generic message, depending on the
// body shape the backend produced.
type Error struct {
	Status  int
	Fields  map[string][]string
	Message string

	sentinel error
}

func (e *Error) Error() string {
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], "; ")))
		}
		return fmt.Sprintf("api error %d: %s", e.Status, strings.Join(parts, ", "))
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Unwrap exposes the matching sentinel so callers can use errors.Is
// against common.ErrUnauthorized, common.ErrNotFound, etc.
func (e *Error) Unwrap() error { return e.sentinel }

// IsValidation reports whether the backend rejected the payload with
// per-field messages.
func (e *Error) IsValidation() bool { return len(e.Fields) > 0 }

// decodeError classifies an error response body. The backend emits
// either a flat {field: [messages...]} validation map or a generic
// {"error": ...} / {"message": ...} / {"detail": ...} object.
func decodeError(status int, body []byte) *Error {
	e := &Error{Status: status, sentinel: sentinelFor(status)}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || len(raw) == 0 {
		e.Message = http.StatusText(status)
		return e
	}

	for _, key := range []string{"error", "message", "detail"} {
		var s string
		if msg, ok := raw[key]; ok && json.Unmarshal(msg, &s) == nil {
			e.Message = s
			return e
		}
	}

	fields := make(map[string][]string, len(raw))
	for field, msg := range raw {
		var many []string
		if json.Unmarshal(msg, &many) == nil {
			fields[field] = many
			continue
		}
		var one string
		if json.Unmarshal(msg, &one) == nil {
			fields[field] = []string{one}
		}
	}
	if len(fields) == 0 {
		e.Message = http.StatusText(status)
		return e
	}

	e.Fields = fields
	if status >= 400 && status < 500 && e.sentinel == nil {
		e.sentinel = common.ErrValidation
	}
	return e
}

func sentinelFor(status int) error {
	switch {
	case status == http.StatusUnauthorized:
		return common.ErrUnauthorized
	case status == http.StatusNotFound:
		return common.ErrNotFound
	case status >= 500:
		return common.ErrUnavailable
	default:
		return nil
	}
}
