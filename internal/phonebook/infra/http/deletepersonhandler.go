package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/phonebook/internal/phonebook/api"
	pkghttp "github.com/klwxsrx/phonebook/pkg/http"
)

type DeletePersonHandler struct {
	personService api.PersonService
}

func NewDeletePersonHandler(personService api.PersonService) DeletePersonHandler {
	return DeletePersonHandler{personService: personService}
}

func (h DeletePersonHandler) Method() string {
	return http.MethodDelete
}

func (h DeletePersonHandler) Path() string {
	return "/api/persons/{personID}"
}

func (h DeletePersonHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	personID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("personID"), err)
	if err != nil {
		return err
	}

	err = h.personService.Delete(r.Context(), personID)
	if errors.Is(err, api.ErrPersonNotFound) {
		w.SetStatusCode(http.StatusNotFound).SetJSONBody(ErrorOut{Error: errorPersonNotFound})
		return err
	}
	if err != nil {
		w.SetStatusCode(http.StatusBadRequest).SetJSONBody(ErrorOut{Error: "Invalid ID format or delete failed"})
		return err
	}

	w.SetStatusCode(http.StatusNoContent)
	return nil
}
