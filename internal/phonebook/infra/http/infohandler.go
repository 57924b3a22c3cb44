package http

import (
	"fmt"
	"html"
	"net/http"

	"github.com/klwxsrx/phonebook/internal/phonebook/api"
	pkghttp "github.com/klwxsrx/phonebook/pkg/http"
)

const infoTimeLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

type InfoHandler struct {
	personService api.PersonService
}

func NewInfoHandler(personService api.PersonService) InfoHandler {
	return InfoHandler{personService: personService}
}

func (h InfoHandler) Method() string {
	return http.MethodGet
}

func (h InfoHandler) Path() string {
	return "/info"
}

func (h InfoHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	info, err := h.personService.Info(r.Context())
	if err != nil {
		w.SetStatusCode(http.StatusInternalServerError).SetJSONBody(ErrorOut{Error: "Failed to fetch info"})
		return err
	}

	w.SetHTMLBody(fmt.Sprintf(
		"<p>Phonebook has info for %d people</p><p>%s</p>",
		info.PersonsCount,
		html.EscapeString(info.Time.Format(infoTimeLayout)),
	))
	return nil
}
