package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gorilla/mux"
)

// WithCORS allows any origin and answers preflight requests with the methods
// registered for the requested path.
func WithCORS() ServerOption {
	return func(router *mux.Router) {
		router.Use(func(handler http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Access-Control-Allow-Origin", "*")
				handler.ServeHTTP(w, r)
			})
		})

		router.
			Name("options_preflight").
			Methods(http.MethodOptions).
			HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				methods := getAllowedMethods(router, r)
				if len(methods) == 0 {
					w.WriteHeader(http.StatusNotFound)
					return
				}

				w.Header().Set("Access-Control-Allow-Methods", strings.Join(append(methods, http.MethodOptions), ","))
				if headers := r.Header.Get("Access-Control-Request-Headers"); headers != "" {
					w.Header().Set("Access-Control-Allow-Headers", headers)
				}
				w.WriteHeader(http.StatusNoContent)
			})
	}
}

func getAllowedMethods(router *mux.Router, r *http.Request) []string {
	var result []string
	_ = router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		methods, err := route.GetMethods()
		if err != nil {
			return nil
		}

		for _, method := range methods {
			if method == http.MethodOptions || slices.Contains(result, method) {
				continue
			}

			candidate := r.Clone(r.Context())
			candidate.Method = method
			if route.Match(candidate, &mux.RouteMatch{}) {
				result = append(result, method)
			}
		}
		return nil
	})

	return result
}
