package http

import (
	"github.com/google/uuid"

	"github.com/klwxsrx/phonebook/internal/phonebook/api"
)

const (
	errorMalformedID        = "malformatted id"
	errorPersonNotFound     = "Person not found"
	errorNameOrNumberAbsent = "Name or number is missing"
)

type (
	PersonOut struct {
		ID     uuid.UUID `json:"id"`
		Name   string    `json:"name"`
		Number string    `json:"number"`
	}

	PersonIn struct {
		Name   string `json:"name"`
		Number string `json:"number"`
	}

	PersonPatchIn struct {
		Name   *string `json:"name"`
		Number *string `json:"number"`
	}

	ErrorOut struct {
		Error string `json:"error"`
	}
)

func toPersonOut(data *api.PersonData) PersonOut {
	return PersonOut{
		ID:     data.ID,
		Name:   data.Name,
		Number: data.Number,
	}
}

func toPersonsOut(data []api.PersonData) []PersonOut {
	result := make([]PersonOut, 0, len(data))
	for _, person := range data {
		result = append(result, toPersonOut(&person))
	}

	return result
}
