package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/klwxsrx/phonebook/internal/phonebook/domain"
	"github.com/klwxsrx/phonebook/pkg/log"
	"github.com/klwxsrx/phonebook/pkg/persistence"
	pkgtime "github.com/klwxsrx/phonebook/pkg/time"
)

var (
	ErrInvalidPerson     = errors.New("name or number is missing")
	ErrMalformedPersonID = errors.New("malformed person id")
	ErrPersonNotFound    = errors.New("person not found")
	ErrPersistence       = errors.New("person store failure")
)

const seedPersonsLockName = "seed_persons"

// SeedPersons are stored on startup when the phonebook is empty.
var SeedPersons = []PersonInput{
	{Name: "Arto Hellas", Number: "040-123456"},
	{Name: "Ada Lovelace", Number: "39-44-5323523"},
	{Name: "Dan Abramov", Number: "12-43-234345"},
	{Name: "Mary Poppendieck", Number: "39-23-6423122"},
}

type (
	Person interface {
		List(context.Context) ([]PersonData, error)
		Get(ctx context.Context, id string) (*PersonData, error)
		Create(context.Context, PersonInput) (*PersonData, error)
		Update(ctx context.Context, id string, patch PersonPatch) (*PersonData, error)
		Delete(ctx context.Context, id string) error
		Info(context.Context) (*InfoData, error)
		// SeedIfEmpty returns the number of stored persons, zero if the phonebook already has entries.
		SeedIfEmpty(context.Context) (int, error)
	}

	PersonData struct {
		ID     uuid.UUID
		Name   string
		Number string
	}

	PersonInput struct {
		Name   string
		Number string
	}

	PersonPatch struct {
		Name   *string
		Number *string
	}

	InfoData struct {
		PersonsCount int
		Time         time.Time
	}

	personService struct {
		personRepo  domain.PersonRepository
		transaction persistence.Transaction
		clock       pkgtime.Clock
		logger      log.Logger
	}
)

func NewPerson(
	personRepo domain.PersonRepository,
	transaction persistence.Transaction,
	clock pkgtime.Clock,
	logger log.Logger,
) Person {
	return &personService{
		personRepo:  personRepo,
		transaction: transaction,
		clock:       clock,
		logger:      logger,
	}
}

func (s *personService) List(ctx context.Context) ([]PersonData, error) {
	persons, err := s.personRepo.Find(ctx, domain.FindPersonSpecification{})
	if err != nil {
		return nil, persistenceError("find persons", err)
	}

	result := make([]PersonData, 0, len(persons))
	for _, person := range persons {
		result = append(result, toPersonData(&person))
	}

	return result, nil
}

func (s *personService) Get(ctx context.Context, id string) (*PersonData, error) {
	personID, err := domain.ParsePersonID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPersonID, err)
	}

	person, err := s.findOne(ctx, personID)
	if err != nil {
		return nil, err
	}

	data := toPersonData(person)
	return &data, nil
}

func (s *personService) Create(ctx context.Context, input PersonInput) (*PersonData, error) {
	person, err := domain.NewPerson(s.personRepo.NextID(), input.Name, input.Number)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPerson, err)
	}

	err = s.personRepo.Store(ctx, *person)
	if err != nil {
		return nil, persistenceError("store person", err)
	}

	data := toPersonData(person)
	return &data, nil
}

func (s *personService) Update(ctx context.Context, id string, patch PersonPatch) (*PersonData, error) {
	personID, err := domain.ParsePersonID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPersonID, err)
	}

	data, err := persistence.WithinTransactionWithResult(ctx, s.transaction, func(ctx context.Context) (*PersonData, error) {
		person, err := s.findOne(s.transaction.WithLock(ctx), personID)
		if err != nil {
			return nil, err
		}

		err = person.Change(patch.Name, patch.Number)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPerson, err)
		}

		err = s.personRepo.Store(ctx, *person)
		if err != nil {
			return nil, persistenceError("store person", err)
		}

		data := toPersonData(person)
		return &data, nil
	})
	if errors.Is(err, ErrPersonNotFound) || errors.Is(err, ErrInvalidPerson) {
		return nil, err
	}
	if err != nil {
		return nil, persistenceError("update person", err)
	}

	return data, nil
}

func (s *personService) Delete(ctx context.Context, id string) error {
	personID, err := domain.ParsePersonID(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedPersonID, err)
	}

	err = s.transaction.WithinContext(ctx, func(ctx context.Context) error {
		return s.personRepo.Delete(ctx, personID)
	})
	if errors.Is(err, domain.ErrPersonNotFound) {
		return ErrPersonNotFound
	}
	if err != nil {
		return persistenceError("delete person", err)
	}

	s.logger.WithField("personID", personID.String()).Info(ctx, "person deleted")
	return nil
}

func (s *personService) Info(ctx context.Context) (*InfoData, error) {
	count, err := s.personRepo.Count(ctx)
	if err != nil {
		return nil, persistenceError("count persons", err)
	}

	return &InfoData{
		PersonsCount: count,
		Time:         s.clock.Now(ctx),
	}, nil
}

func (s *personService) SeedIfEmpty(ctx context.Context) (int, error) {
	seeded, err := persistence.WithinTransactionWithResult(ctx, s.transaction, func(ctx context.Context) (int, error) {
		count, err := s.personRepo.Count(ctx)
		if err != nil {
			return 0, fmt.Errorf("count persons: %w", err)
		}
		if count > 0 {
			return 0, nil
		}

		persons := make([]domain.Person, 0, len(SeedPersons))
		for _, input := range SeedPersons {
			person, err := domain.NewPerson(s.personRepo.NextID(), input.Name, input.Number)
			if err != nil {
				return 0, err
			}
			persons = append(persons, *person)
		}

		err = s.personRepo.Store(ctx, persons...)
		if err != nil {
			return 0, fmt.Errorf("store persons: %w", err)
		}

		return len(persons), nil
	}, seedPersonsLockName)
	if err != nil {
		return 0, persistenceError("seed persons", err)
	}

	return seeded, nil
}

func (s *personService) findOne(ctx context.Context, id domain.PersonID) (*domain.Person, error) {
	person, err := s.personRepo.FindOne(ctx, domain.FindPersonSpecification{IDs: []domain.PersonID{id}})
	if errors.Is(err, domain.ErrPersonNotFound) {
		return nil, ErrPersonNotFound
	}
	if err != nil {
		return nil, persistenceError("find person", err)
	}

	return person, nil
}

func persistenceError(op string, err error) error {
	if errors.Is(err, ErrPersistence) {
		return err
	}

	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}

func toPersonData(person *domain.Person) PersonData {
	return PersonData{
		ID:     person.ID.UUID,
		Name:   person.Name,
		Number: person.Number,
	}
}
