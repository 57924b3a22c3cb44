package env

import (
	"fmt"
	"os"

	"github.com/klwxsrx/phonebook/pkg/strings"
)

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("parse environment: %w", err))
	}

	return val
}

func Parse[T strings.SupportedValueParsingTypes](key string) (T, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		var blank T
		return blank, fmt.Errorf("env %s with type %T not found", key, blank)
	}

	return parseImpl[T](key, str)
}

// ParseOptional returns nil pointer if the variable is not set.
func ParseOptional[T strings.SupportedPointerParsingTypes](key string) (T, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		var blank T
		return blank, nil
	}

	return parseImpl[T](key, str)
}

func ParseDefault[T strings.SupportedValueParsingTypes](key string, defaultValue T) (T, error) {
	str, ok := os.LookupEnv(key)
	if !ok || str == "" {
		return defaultValue, nil
	}

	return parseImpl[T](key, str)
}

func parseImpl[T strings.SupportedValueParsingTypes | strings.SupportedPointerParsingTypes](key, str string) (T, error) {
	v, err := strings.ParseTypedValue[T](str)
	if err != nil {
		return v, fmt.Errorf("env %s has invalid value: %w", key, err)
	}

	return v, nil
}
