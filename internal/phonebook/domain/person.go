//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "PersonRepository=PersonRepository"
package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

var (
	ErrPersonNotFound    = errors.New("person not found")
	ErrInvalidPerson     = errors.New("name or number is missing")
	ErrMalformedPersonID = errors.New("malformed person id")
)

type (
	Person struct {
		ID     PersonID
		Name   string
		Number string
	}

	PersonRepository interface {
		NextID() PersonID
		// Store inserts new persons and overwrites existing ones, preserving the insertion order.
		Store(ctx context.Context, persons ...Person) error
		// Find returns persons in insertion order.
		Find(context.Context, FindPersonSpecification) ([]Person, error)
		FindOne(context.Context, FindPersonSpecification) (*Person, error)
		// Delete returns ErrPersonNotFound if nothing was removed.
		Delete(context.Context, PersonID) error
		Count(context.Context) (int, error)
	}

	FindPersonSpecification struct {
		IDs []PersonID
	}

	PersonID struct{ uuid.UUID }
)

func ParsePersonID(s string) (PersonID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return PersonID{}, fmt.Errorf("%w: %w", ErrMalformedPersonID, err)
	}

	return PersonID{UUID: id}, nil
}

func NewPerson(id PersonID, name, number string) (*Person, error) {
	person := &Person{
		ID:     id,
		Name:   strings.TrimSpace(name),
		Number: strings.TrimSpace(number),
	}

	return person, person.Validate()
}

// Change applies the supplied fields only and revalidates the result.
func (p *Person) Change(name, number *string) error {
	if name != nil {
		p.Name = strings.TrimSpace(*name)
	}
	if number != nil {
		p.Number = strings.TrimSpace(*number)
	}

	return p.Validate()
}

func (p Person) Validate() error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Number, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPerson, err)
	}

	return nil
}
