package http

import (
	"encoding/json"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	HealthPath      = "/healthz"
	RequestIDHeader = "X-Request-ID"
)

func WithMW(mw ServerMiddleware) ServerOption {
	return func(router *mux.Router) {
		router.Use(mux.MiddlewareFunc(mw))
	}
}

func WithHealthCheck() ServerOption {
	handler := func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(struct {
			Status string `json:"status"`
		}{
			Status: "OK",
		})
	}

	return func(router *mux.Router) {
		router.
			Name(getRouteName(http.MethodGet, HealthPath)).
			Methods(http.MethodGet).
			Path(HealthPath).
			HandlerFunc(handler)
	}
}

// WithRequestID takes the request id from the X-Request-ID header or generates one.
func WithRequestID() ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := ParseRequest(r, Header[string](RequestIDHeader), nil)
			if err != nil {
				id = uuid.NewString()
			}

			getHandlerMetadata(r.Context()).RequestID = id
			w.Header().Set(RequestIDHeader, id)
			handler.ServeHTTP(w, r)
		})
	})
}

// WithStaticFiles serves existing files from dir ahead of registered handlers.
// A directory request is served only when it has an index.html.
func WithStaticFiles(dir string) ServerOption {
	fileServer := http.FileServer(http.Dir(dir))
	return func(router *mux.Router) {
		router.
			Name("static_files").
			Methods(http.MethodGet, http.MethodHead).
			MatcherFunc(func(r *http.Request, _ *mux.RouteMatch) bool {
				return staticFileExists(dir, r.URL.Path)
			}).
			Handler(fileServer)
	}
}

func staticFileExists(dir, urlPath string) bool {
	name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+urlPath)))
	info, err := os.Stat(name)
	if err != nil {
		return false
	}
	if !info.IsDir() {
		return true
	}

	info, err = os.Stat(filepath.Join(name, "index.html"))
	return err == nil && !info.IsDir()
}
