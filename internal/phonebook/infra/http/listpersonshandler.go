package http

import (
	"net/http"

	"github.com/klwxsrx/phonebook/internal/phonebook/api"
	pkghttp "github.com/klwxsrx/phonebook/pkg/http"
)

type ListPersonsHandler struct {
	personService api.PersonService
}

func NewListPersonsHandler(personService api.PersonService) ListPersonsHandler {
	return ListPersonsHandler{personService: personService}
}

func (h ListPersonsHandler) Method() string {
	return http.MethodGet
}

func (h ListPersonsHandler) Path() string {
	return "/api/persons"
}

func (h ListPersonsHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	persons, err := h.personService.List(r.Context())
	if err != nil {
		w.SetStatusCode(http.StatusInternalServerError).SetJSONBody(ErrorOut{Error: "Failed to fetch persons"})
		return err
	}

	w.SetJSONBody(toPersonsOut(persons))
	return nil
}
