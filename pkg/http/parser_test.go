package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeader(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		header   string
		expected uuid.UUID
		err      error
	}{
		{name: "present", header: id.String(), expected: id},
		{name: "absent", err: ErrParsingError},
		{name: "invalid", header: "not-a-valid-id", err: ErrParsingError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set(RequestIDHeader, tt.header)
			}

			value, err := ParseRequest(r, Header[uuid.UUID](RequestIDHeader), nil)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestJSONBody(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected echoBody
		err      error
	}{
		{name: "object", body: `{"value":"ok"}`, expected: echoBody{Value: "ok"}},
		{name: "empty body", body: ""},
		{name: "malformed", body: `{"value":`, err: ErrParsingError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			value, err := ParseRequest(r, JSONBody[echoBody](), nil)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestParseRequest_SkipsOnPreviousError(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestIDHeader, "req-1")

	_, err := ParseRequest(r, Header[string](RequestIDHeader), ErrParsingError)
	assert.ErrorIs(t, err, ErrParsingError)
}
