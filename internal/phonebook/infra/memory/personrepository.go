package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/klwxsrx/phonebook/internal/phonebook/domain"
)

type personRepository struct {
	mu      sync.RWMutex
	index   map[domain.PersonID]int
	persons []domain.Person
}

func NewPersonRepository(persons ...domain.Person) domain.PersonRepository {
	repo := &personRepository{index: make(map[domain.PersonID]int, len(persons))}
	repo.storeImpl(persons)
	return repo
}

func (r *personRepository) NextID() domain.PersonID {
	return domain.PersonID{UUID: uuid.New()}
}

func (r *personRepository) Store(_ context.Context, persons ...domain.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.storeImpl(persons)
	return nil
}

func (r *personRepository) Find(_ context.Context, spec domain.FindPersonSpecification) ([]domain.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.findImpl(spec), nil
}

func (r *personRepository) FindOne(_ context.Context, spec domain.FindPersonSpecification) (*domain.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	persons := r.findImpl(spec)
	if len(persons) == 0 {
		return nil, domain.ErrPersonNotFound
	}

	return &persons[0], nil
}

func (r *personRepository) Delete(_ context.Context, id domain.PersonID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return domain.ErrPersonNotFound
	}

	delete(r.index, id)
	r.persons = slices.Delete(r.persons, i, i+1)
	for j := i; j < len(r.persons); j++ {
		r.index[r.persons[j].ID] = j
	}
	return nil
}

func (r *personRepository) Count(context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.persons), nil
}

func (r *personRepository) storeImpl(persons []domain.Person) {
	for _, person := range persons {
		if i, ok := r.index[person.ID]; ok {
			r.persons[i] = person
			continue
		}

		r.index[person.ID] = len(r.persons)
		r.persons = append(r.persons, person)
	}
}

func (r *personRepository) findImpl(spec domain.FindPersonSpecification) []domain.Person {
	if len(spec.IDs) == 0 {
		return slices.Clone(r.persons)
	}

	result := make([]domain.Person, 0, len(spec.IDs))
	for _, person := range r.persons {
		if slices.Contains(spec.IDs, person.ID) {
			result = append(result, person)
		}
	}
	return result
}
