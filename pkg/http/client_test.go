package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/phonebook/pkg/log"
)

func TestClient_RequestLogging(t *testing.T) {
	srv := NewServer(":0", WithHealthCheck())
	srv.Register(testHandler{
		method: http.MethodGet,
		path:   "/fail",
		handle: func(w ResponseWriter, _ *http.Request) error {
			w.SetStatusCode(http.StatusServiceUnavailable)
			return nil
		},
	})
	testServer := httptest.NewServer(srv)
	defer testServer.Close()

	var out bytes.Buffer
	client := NewClient(
		WithClientDestination("phonebook", testServer.URL),
		WithRequestLogging(log.New(log.LevelDebug, log.WithOutput(&out)), log.LevelDebug, log.LevelError),
	)

	tests := []struct {
		path          string
		expectedCode  int
		expectedLevel string
		expectedMsg   string
	}{
		{
			path:          HealthPath,
			expectedCode:  http.StatusOK,
			expectedLevel: "DEBUG",
			expectedMsg:   "http call completed",
		},
		{
			path:          "/fail",
			expectedCode:  http.StatusServiceUnavailable,
			expectedLevel: "ERROR",
			expectedMsg:   "http call completed with internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			out.Reset()
			resp, err := client.NewRequest(context.Background()).Get(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCode, resp.StatusCode())

			var entry map[string]any
			require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
			assert.Equal(t, tt.expectedLevel, entry["level"])
			assert.Equal(t, tt.expectedMsg, entry["msg"])
			assert.Equal(t, "phonebook", entry["destination"])
			assert.Equal(t, http.MethodGet, entry["method"])
			assert.EqualValues(t, tt.expectedCode, entry["code"])
		})
	}
}
