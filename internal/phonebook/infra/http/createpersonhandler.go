package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/phonebook/internal/phonebook/api"
	pkghttp "github.com/klwxsrx/phonebook/pkg/http"
)

type CreatePersonHandler struct {
	personService api.PersonService
}

func NewCreatePersonHandler(personService api.PersonService) CreatePersonHandler {
	return CreatePersonHandler{personService: personService}
}

func (h CreatePersonHandler) Method() string {
	return http.MethodPost
}

func (h CreatePersonHandler) Path() string {
	return "/api/persons"
}

func (h CreatePersonHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[PersonIn](), err)
	if err != nil {
		return err
	}

	person, err := h.personService.Create(r.Context(), api.PersonInput{
		Name:   in.Name,
		Number: in.Number,
	})
	if errors.Is(err, api.ErrInvalidPerson) {
		w.SetStatusCode(http.StatusBadRequest).SetJSONBody(ErrorOut{Error: errorNameOrNumberAbsent})
		return err
	}
	if err != nil {
		w.SetStatusCode(http.StatusInternalServerError).SetJSONBody(ErrorOut{Error: "Failed to save person"})
		return err
	}

	w.SetJSONBody(toPersonOut(person))
	return nil
}
