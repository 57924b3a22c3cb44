package http

import (
	"net/http"

	pkghttp "github.com/klwxsrx/phonebook/pkg/http"
)

type BannerHandler struct{}

func NewBannerHandler() BannerHandler {
	return BannerHandler{}
}

func (h BannerHandler) Method() string {
	return http.MethodGet
}

func (h BannerHandler) Path() string {
	return "/"
}

func (h BannerHandler) Handle(w pkghttp.ResponseWriter, _ *http.Request) error {
	w.SetHTMLBody("<h1>API REST FROM PERSONS</h1>")
	return nil
}
