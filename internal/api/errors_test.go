package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yameogo/gestock/internal/common"
)

func TestDecodeError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantMsg    string
		wantFields map[string][]string
		sentinel   error
	}{
		{
			name:     "generic error key",
			status:   http.StatusBadRequest,
			body:     `{"error":"stock insuffisant"}`,
			wantMsg:  "stock insuffisant",
			sentinel: nil,
		},
		{
			name:    "message key",
			status:  http.StatusConflict,
			body:    `{"message":"doublon"}`,
			wantMsg: "doublon",
		},
		{
			name:     "detail key",
			status:   http.StatusUnauthorized,
			body:     `{"detail":"token expired"}`,
			wantMsg:  "token expired",
			sentinel: common.ErrUnauthorized,
		},
		{
			name:       "validation map with arrays",
			status:     http.StatusBadRequest,
			body:       `{"name":["obligatoire"],"balance":["montant invalide","trop grand"]}`,
			wantFields: map[string][]string{"name": {"obligatoire"}, "balance": {"montant invalide", "trop grand"}},
			sentinel:   common.ErrValidation,
		},
		{
			name:       "validation map with bare strings",
			status:     http.StatusBadRequest,
			body:       `{"name":"obligatoire"}`,
			wantFields: map[string][]string{"name": {"obligatoire"}},
			sentinel:   common.ErrValidation,
		},
		{
			name:     "not found",
			status:   http.StatusNotFound,
			body:     `{}`,
			wantMsg:  "Not Found",
			sentinel: common.ErrNotFound,
		},
		{
			name:     "server error with unparseable body",
			status:   http.StatusBadGateway,
			body:     `<html>bad gateway</html>`,
			wantMsg:  "Bad Gateway",
			sentinel: common.ErrUnavailable,
		},
		{
			name:    "object values are ignored",
			status:  http.StatusBadRequest,
			body:    `{"nested":{"a":1}}`,
			wantMsg: "Bad Request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := decodeError(tt.status, []byte(tt.body))
			require.NotNil(t, e)
			assert.Equal(t, tt.status, e.Status)
			assert.Equal(t, tt.wantMsg, e.Message)
			assert.Equal(t, tt.wantFields, e.Fields)
			if tt.sentinel != nil {
				assert.ErrorIs(t, e, tt.sentinel)
			}
		})
	}
}

func TestError_ErrorString(t *testing.T) {
	e := &Error{Status: 400, Fields: map[string][]string{"name": {"obligatoire"}}}
	assert.Equal(t, "api error 400: name: obligatoire", e.Error())

	e = &Error{Status: 503, Message: "maintenance"}
	assert.Equal(t, "api error 503: maintenance", e.Error())
}
