package http

import (
	"strings"
	"unicode"

	pkgstrings "github.com/klwxsrx/phonebook/pkg/strings"
)

// getRouteName turns "GET /api/persons/{id}" into "get_api_persons_id".
func getRouteName(method, path string) string {
	path = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Latin, r) || unicode.IsDigit(r) {
			return r
		}

		if r == '{' || r == '}' {
			return -1
		}

		return ' '
	}, strings.Trim(path, "/"))

	if path == "" {
		path = "root"
	}

	return pkgstrings.ToSnakeCase(method + " " + path)
}
