package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/phonebook/internal/phonebook/api"
	pkghttp "github.com/klwxsrx/phonebook/pkg/http"
)

type GetPersonHandler struct {
	personService api.PersonService
}

func NewGetPersonHandler(personService api.PersonService) GetPersonHandler {
	return GetPersonHandler{personService: personService}
}

func (h GetPersonHandler) Method() string {
	return http.MethodGet
}

func (h GetPersonHandler) Path() string {
	return "/api/persons/{personID}"
}

func (h GetPersonHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	personID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("personID"), err)
	if err != nil {
		return err
	}

	person, err := h.personService.Get(r.Context(), personID)
	switch {
	case errors.Is(err, api.ErrMalformedPersonID):
		w.SetStatusCode(http.StatusBadRequest).SetJSONBody(ErrorOut{Error: errorMalformedID})
	case errors.Is(err, api.ErrPersonNotFound):
		w.SetStatusCode(http.StatusNotFound).SetJSONBody(ErrorOut{Error: errorPersonNotFound})
	case err != nil:
		w.SetStatusCode(http.StatusInternalServerError).SetJSONBody(ErrorOut{Error: "Failed to fetch person"})
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(toPersonOut(person))
	return nil
}
