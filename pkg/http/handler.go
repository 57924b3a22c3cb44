package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
)

type Handler interface {
	Method() string
	Path() string
	Handle(w ResponseWriter, r *http.Request) error
}

type ResponseWriter interface {
	SetStatusCode(httpCode int) ResponseWriter
	SetJSONBody(data any) ResponseWriter
	SetHTMLBody(html string) ResponseWriter
}

type responseWriter struct {
	impl http.ResponseWriter

	contentType string
	body        func() ([]byte, error)
	httpCode    int
	codeIsSet   bool
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = httpCode
	w.codeIsSet = true
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	w.contentType = "application/json; charset=utf-8"
	w.body = func() ([]byte, error) {
		return json.Marshal(data)
	}
	return w
}

func (w *responseWriter) SetHTMLBody(html string) ResponseWriter {
	w.contentType = "text/html; charset=utf-8"
	w.body = func() ([]byte, error) {
		return []byte(html), nil
	}
	return w
}

// Write flushes the response. A handler error keeps an explicitly set status code and body,
// otherwise parsing errors become 400 and the rest 500 without a body.
func (w *responseWriter) Write(ctx context.Context, err error) {
	httpCode := w.httpCode
	switch {
	case err != nil && !w.codeIsSet && errors.Is(err, ErrParsingError):
		httpCode = http.StatusBadRequest
		w.body = nil
	case err != nil && !w.codeIsSet:
		httpCode = http.StatusInternalServerError
		w.body = nil
	}

	var body []byte
	if w.body != nil {
		var encodeErr error
		body, encodeErr = w.body()
		if encodeErr != nil {
			err = errors.Join(err, fmt.Errorf("encode body: %w", encodeErr))
			httpCode = http.StatusInternalServerError
			body = nil
		}
	}

	meta := getHandlerMetadata(ctx)
	meta.Code = httpCode
	meta.Error = err

	if body != nil {
		w.impl.Header().Set("Content-Type", w.contentType)
	}
	w.impl.WriteHeader(httpCode)
	if body != nil {
		_, _ = w.impl.Write(body)
	}
}

func (w *responseWriter) WritePanic(ctx context.Context, p Panic) {
	meta := getHandlerMetadata(ctx)
	meta.Code = http.StatusInternalServerError
	meta.Panic = &p

	w.impl.WriteHeader(http.StatusInternalServerError)
}

func httpHandlerWrapper(handler Handler) http.HandlerFunc {
	recoverPanic := func(r *http.Request, respWriter *responseWriter) {
		msg := recover()
		if msg == nil {
			return
		}

		respWriter.WritePanic(r.Context(), Panic{
			Message:    fmt.Sprintf("%v", msg),
			Stacktrace: debug.Stack(),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respWriter := &responseWriter{
			impl:     w,
			httpCode: http.StatusOK,
		}

		defer recoverPanic(r, respWriter)
		err := handler.Handle(respWriter, r)
		respWriter.Write(r.Context(), err)
	}
}
