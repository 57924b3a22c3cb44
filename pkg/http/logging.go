package http

import (
	"bytes"
	"io"
	"net/http"
	"slices"

	"github.com/klwxsrx/phonebook/pkg/log"
)

const maxLoggedBodySize = 4 << 10

type loggingResponseWriter struct {
	http.ResponseWriter
	code int
}

func (w *loggingResponseWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

// WithLogging logs every request with its body and response code.
func WithLogging(logger log.Logger, excludedPaths ...string) ServerOption {
	excludedPaths = append(excludedPaths, HealthPath)

	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if slices.Contains(excludedPaths, r.URL.Path) {
				handler.ServeHTTP(w, r)
				return
			}

			body := readBodyForLogging(r)

			ctx := r.Context()
			if id, ok := RequestID(ctx); ok {
				ctx = logger.WithContext(ctx, log.Fields{"requestID": id})
				r = r.WithContext(ctx)
			}

			lrw := &loggingResponseWriter{ResponseWriter: w, code: http.StatusOK}
			handler.ServeHTTP(lrw, r)

			meta := getHandlerMetadata(ctx)
			entry := logger.With(log.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
				"body":   body,
				"code":   lrw.code,
			})

			switch {
			case meta.Panic != nil:
				entry.
					WithField("panic", meta.Panic.Message).
					WithField("stacktrace", string(meta.Panic.Stacktrace)).
					Error(ctx, "request handled with panic")
			case lrw.code >= http.StatusInternalServerError:
				entry.WithError(meta.Error).Error(ctx, "request handled with internal error")
			case meta.Error != nil:
				entry.WithError(meta.Error).Info(ctx, "request handled with error")
			default:
				entry.Info(ctx, "request handled")
			}
		})
	})
}

func readBodyForLogging(r *http.Request) string {
	if r.Body == nil || r.Body == http.NoBody {
		return ""
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxLoggedBodySize+1))
	if err != nil {
		return ""
	}

	r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(data), r.Body))
	if len(data) > maxLoggedBodySize {
		return string(data[:maxLoggedBodySize])
	}
	return string(data)
}
