package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/phonebook/internal/phonebook/app/service"
	"github.com/klwxsrx/phonebook/internal/phonebook/domain"
	"github.com/klwxsrx/phonebook/internal/phonebook/infra/memory"
	"github.com/klwxsrx/phonebook/pkg/log"
	pkgtime "github.com/klwxsrx/phonebook/pkg/time"
)

func newPerson(name string) domain.Person {
	return domain.Person{ID: domain.PersonID{UUID: uuid.New()}, Name: name, Number: "1"}
}

func TestPersonRepository_StoreAndFind(t *testing.T) {
	ctx := context.Background()
	arto, ada, dan := newPerson("Arto"), newPerson("Ada"), newPerson("Dan")

	repo := memory.NewPersonRepository()
	require.NoError(t, repo.Store(ctx, arto, ada))
	require.NoError(t, repo.Store(ctx, dan))

	persons, err := repo.Find(ctx, domain.FindPersonSpecification{})
	require.NoError(t, err)
	assert.Equal(t, []domain.Person{arto, ada, dan}, persons)

	ada.Number = "2"
	require.NoError(t, repo.Store(ctx, ada))

	persons, err = repo.Find(ctx, domain.FindPersonSpecification{})
	require.NoError(t, err)
	assert.Equal(t, []domain.Person{arto, ada, dan}, persons, "overwrite keeps insertion order")

	found, err := repo.FindOne(ctx, domain.FindPersonSpecification{IDs: []domain.PersonID{ada.ID}})
	require.NoError(t, err)
	assert.Equal(t, &ada, found)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestPersonRepository_FindOne_NotFound(t *testing.T) {
	repo := memory.NewPersonRepository(newPerson("Arto"))

	_, err := repo.FindOne(context.Background(), domain.FindPersonSpecification{
		IDs: []domain.PersonID{{UUID: uuid.New()}},
	})
	assert.ErrorIs(t, err, domain.ErrPersonNotFound)
}

func TestPersonRepository_Delete(t *testing.T) {
	ctx := context.Background()
	arto, ada, dan := newPerson("Arto"), newPerson("Ada"), newPerson("Dan")
	repo := memory.NewPersonRepository(arto, ada, dan)

	require.NoError(t, repo.Delete(ctx, arto.ID))
	assert.ErrorIs(t, repo.Delete(ctx, arto.ID), domain.ErrPersonNotFound)

	found, err := repo.FindOne(ctx, domain.FindPersonSpecification{IDs: []domain.PersonID{dan.ID}})
	require.NoError(t, err)
	assert.Equal(t, &dan, found)

	require.NoError(t, repo.Delete(ctx, dan.ID))
	persons, err := repo.Find(ctx, domain.FindPersonSpecification{})
	require.NoError(t, err)
	assert.Equal(t, []domain.Person{ada}, persons)
}

func TestTransaction_SerializesAndJoinsNested(t *testing.T) {
	transaction := memory.NewTransaction()
	ctx := context.Background()

	counter := 0
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = transaction.WithinContext(ctx, func(ctx context.Context) error {
				return transaction.WithinContext(ctx, func(context.Context) error {
					counter++
					return nil
				})
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

// deleteOnReadRepository starts a concurrent delete of the person being read,
// then holds the reader long enough for an unserialized delete to complete.
type deleteOnReadRepository struct {
	domain.PersonRepository
	once     sync.Once
	onRead   func()
	deleting chan struct{}
}

func (r *deleteOnReadRepository) FindOne(ctx context.Context, spec domain.FindPersonSpecification) (*domain.Person, error) {
	person, err := r.PersonRepository.FindOne(ctx, spec)
	r.once.Do(func() {
		go r.onRead()
		<-r.deleting
		time.Sleep(50 * time.Millisecond)
	})
	return person, err
}

func TestTransaction_DeleteDuringUpdateIsNotUndone(t *testing.T) {
	ctx := context.Background()
	ada := newPerson("Ada")

	repo := &deleteOnReadRepository{
		PersonRepository: memory.NewPersonRepository(ada),
		deleting:         make(chan struct{}),
	}
	svc := service.NewPerson(
		repo,
		memory.NewTransaction(),
		pkgtime.NewFixedClock(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)),
		log.New(log.LevelDisabled),
	)

	deleteErr := make(chan error, 1)
	repo.onRead = func() {
		close(repo.deleting)
		deleteErr <- svc.Delete(ctx, ada.ID.String())
	}

	number := "2"
	updated, err := svc.Update(ctx, ada.ID.String(), service.PersonPatch{Number: &number})
	require.NoError(t, err)
	assert.Equal(t, number, updated.Number)
	require.NoError(t, <-deleteErr)

	persons, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, persons, "delete acknowledged after the update must stay applied")
}
