//go:build integration

package sql_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/klwxsrx/phonebook/data/sql/phonebook"
	"github.com/klwxsrx/phonebook/internal/phonebook/app/service"
	"github.com/klwxsrx/phonebook/internal/phonebook/domain"
	phonebooksql "github.com/klwxsrx/phonebook/internal/phonebook/infra/sql"
	"github.com/klwxsrx/phonebook/pkg/log"
	pkgsql "github.com/klwxsrx/phonebook/pkg/sql"
	pkgtime "github.com/klwxsrx/phonebook/pkg/time"
)

func newDatabase(t *testing.T) pkgsql.Database {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("phonebook"),
		postgres.WithUsername("phonebook"),
		postgres.WithPassword("phonebook"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	logger := log.New(log.LevelDisabled)
	db, err := pkgsql.NewDatabase(ctx, &pkgsql.Config{
		DSN:               pkgsql.DSN{Raw: dsn},
		ConnectionTimeout: 30 * time.Second,
	}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close(ctx) })

	require.NoError(t, pkgsql.NewMigrator(db, logger).Execute(ctx, phonebook.Migrations))
	require.NoError(t, pkgsql.NewMigrator(db, logger).Execute(ctx, phonebook.Migrations), "migrations are idempotent")
	return db
}

func TestPersonRepository(t *testing.T) {
	ctx := context.Background()
	db := newDatabase(t)
	repo := phonebooksql.NewPersonRepository(db, pkgtime.NewClock())

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	arto := domain.Person{ID: repo.NextID(), Name: "Arto Hellas", Number: "040-123456"}
	ada := domain.Person{ID: repo.NextID(), Name: "Ada Lovelace", Number: "39-44-5323523"}
	dan := domain.Person{ID: repo.NextID(), Name: "Dan Abramov", Number: "12-43-234345"}
	require.NoError(t, repo.Store(ctx, arto, ada))
	require.NoError(t, repo.Store(ctx, dan))

	t.Run("find keeps insertion order", func(t *testing.T) {
		persons, err := repo.Find(ctx, domain.FindPersonSpecification{})
		require.NoError(t, err)
		assert.Equal(t, []domain.Person{arto, ada, dan}, persons)
	})

	t.Run("find one", func(t *testing.T) {
		found, err := repo.FindOne(ctx, domain.FindPersonSpecification{IDs: []domain.PersonID{ada.ID}})
		require.NoError(t, err)
		assert.Equal(t, &ada, found)

		_, err = repo.FindOne(ctx, domain.FindPersonSpecification{IDs: []domain.PersonID{{UUID: uuid.New()}}})
		assert.ErrorIs(t, err, domain.ErrPersonNotFound)
	})

	t.Run("store overwrites existing", func(t *testing.T) {
		changed := ada
		changed.Number = "000"
		require.NoError(t, repo.Store(ctx, changed))

		persons, err := repo.Find(ctx, domain.FindPersonSpecification{})
		require.NoError(t, err)
		assert.Equal(t, []domain.Person{arto, changed, dan}, persons)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, dan.ID))
		assert.ErrorIs(t, repo.Delete(ctx, dan.ID), domain.ErrPersonNotFound)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}

func TestPersonService_SeedIfEmpty(t *testing.T) {
	ctx := context.Background()
	db := newDatabase(t)
	clock := pkgtime.NewClock()
	logger := log.New(log.LevelDisabled)

	newService := func() service.Person {
		return service.NewPerson(
			phonebooksql.NewPersonRepository(db, clock),
			pkgsql.NewTransaction(db),
			clock,
			logger,
		)
	}

	seeded, err := newService().SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(service.SeedPersons), seeded)

	seeded, err = newService().SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.Zero(t, seeded, "second boot adds nothing")

	persons, err := newService().List(ctx)
	require.NoError(t, err)
	require.Len(t, persons, len(service.SeedPersons))
	for i, person := range persons {
		assert.Equal(t, service.SeedPersons[i].Name, person.Name)
		assert.Equal(t, service.SeedPersons[i].Number, person.Number)
	}

	number := "111"
	updated, err := newService().Update(ctx, persons[0].ID.String(), service.PersonPatch{Number: &number})
	require.NoError(t, err)
	assert.Equal(t, persons[0].Name, updated.Name)
	assert.Equal(t, number, updated.Number)
}
