package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/klwxsrx/phonebook/pkg/strings"
)

type (
	DataExtractor[T any] func(*http.Request) (T, error)

	supportedParsingTypes interface {
		strings.SupportedValueParsingTypes | strings.SupportedPointerParsingTypes
	}
)

var ErrParsingError = errors.New("parsing error")

// ParseRequest skips extraction when lastErr is set, so extractors can be chained.
func ParseRequest[T any](r *http.Request, extractor DataExtractor[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	return extractor(r)
}

func PathParameter[T supportedParsingTypes](param string) DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		paramValue, ok := mux.Vars(r)[param]
		if !ok {
			var result T
			return result, fmt.Errorf("%w: path parameter %s not found", ErrParsingError, param)
		}

		v, err := strings.ParseTypedValue[T](paramValue)
		if err != nil {
			return v, fmt.Errorf("%w: path parameter %s: %w", ErrParsingError, param, err)
		}

		return v, nil
	}
}

func Header[T supportedParsingTypes](key string) DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		value := r.Header.Get(key)
		if value == "" {
			var result T
			return result, fmt.Errorf("%w: header %s not found", ErrParsingError, key)
		}

		v, err := strings.ParseTypedValue[T](value)
		if err != nil {
			return v, fmt.Errorf("%w: header %s: %w", ErrParsingError, key, err)
		}

		return v, nil
	}
}

// JSONBody decodes an empty body into the zero value of T.
func JSONBody[T any]() DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		var result T
		if r.Body == nil {
			return result, nil
		}

		err := json.NewDecoder(r.Body).Decode(&result)
		if errors.Is(err, io.EOF) {
			return result, nil
		}
		if err != nil {
			return result, fmt.Errorf("%w: decode json body: %w", ErrParsingError, err)
		}

		return result, nil
	}
}
