//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "PersonService=PersonService"
package api

import (
	"context"

	"github.com/klwxsrx/phonebook/internal/phonebook/app/service"
)

var (
	ErrInvalidPerson     = service.ErrInvalidPerson
	ErrMalformedPersonID = service.ErrMalformedPersonID
	ErrPersonNotFound    = service.ErrPersonNotFound
	ErrPersistence       = service.ErrPersistence
)

type (
	PersonData  = service.PersonData
	PersonInput = service.PersonInput
	PersonPatch = service.PersonPatch
	InfoData    = service.InfoData
)

type PersonService interface {
	List(context.Context) ([]PersonData, error)
	Get(ctx context.Context, id string) (*PersonData, error)
	Create(context.Context, PersonInput) (*PersonData, error)
	Update(ctx context.Context, id string, patch PersonPatch) (*PersonData, error)
	Delete(ctx context.Context, id string) error
	Info(context.Context) (*InfoData, error)
}
