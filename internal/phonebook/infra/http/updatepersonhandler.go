package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/phonebook/internal/phonebook/api"
	pkghttp "github.com/klwxsrx/phonebook/pkg/http"
)

type UpdatePersonHandler struct {
	personService api.PersonService
}

func NewUpdatePersonHandler(personService api.PersonService) UpdatePersonHandler {
	return UpdatePersonHandler{personService: personService}
}

func (h UpdatePersonHandler) Method() string {
	return http.MethodPut
}

func (h UpdatePersonHandler) Path() string {
	return "/api/persons/{personID}"
}

func (h UpdatePersonHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	personID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("personID"), err)
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[PersonPatchIn](), err)
	if err != nil {
		return err
	}

	person, err := h.personService.Update(r.Context(), personID, api.PersonPatch{
		Name:   in.Name,
		Number: in.Number,
	})
	switch {
	case errors.Is(err, api.ErrMalformedPersonID):
		w.SetStatusCode(http.StatusBadRequest).SetJSONBody(ErrorOut{Error: errorMalformedID})
	case errors.Is(err, api.ErrPersonNotFound):
		w.SetStatusCode(http.StatusNotFound)
	case errors.Is(err, api.ErrInvalidPerson):
		w.SetStatusCode(http.StatusBadRequest).SetJSONBody(ErrorOut{Error: errorNameOrNumberAbsent})
	case err != nil:
		w.SetStatusCode(http.StatusInternalServerError).SetJSONBody(ErrorOut{Error: "Failed to update person"})
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(toPersonOut(person))
	return nil
}
