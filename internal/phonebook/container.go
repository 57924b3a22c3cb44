package phonebook

import (
	"context"
	"fmt"

	sqlmigrations "github.com/klwxsrx/phonebook/data/sql/phonebook"
	"github.com/klwxsrx/phonebook/internal/phonebook/api"
	"github.com/klwxsrx/phonebook/internal/phonebook/app/service"
	"github.com/klwxsrx/phonebook/internal/phonebook/domain"
	"github.com/klwxsrx/phonebook/internal/phonebook/infra/http"
	"github.com/klwxsrx/phonebook/internal/phonebook/infra/memory"
	phonebooksql "github.com/klwxsrx/phonebook/internal/phonebook/infra/sql"
	"github.com/klwxsrx/phonebook/internal/pkg/cmd"
	pkghttp "github.com/klwxsrx/phonebook/pkg/http"
	"github.com/klwxsrx/phonebook/pkg/lazy"
	"github.com/klwxsrx/phonebook/pkg/log"
	"github.com/klwxsrx/phonebook/pkg/persistence"
	"github.com/klwxsrx/phonebook/pkg/sql"
	pkgtime "github.com/klwxsrx/phonebook/pkg/time"
)

type DependencyContainer struct {
	PersonService lazy.Loader[api.PersonService]

	personService lazy.Loader[service.Person]
	logger        lazy.Loader[log.Logger]

	bannerHandler       lazy.Loader[http.BannerHandler]
	infoHandler         lazy.Loader[http.InfoHandler]
	listPersonsHandler  lazy.Loader[http.ListPersonsHandler]
	getPersonHandler    lazy.Loader[http.GetPersonHandler]
	createPersonHandler lazy.Loader[http.CreatePersonHandler]
	updatePersonHandler lazy.Loader[http.UpdatePersonHandler]
	deletePersonHandler lazy.Loader[http.DeletePersonHandler]
}

type storage struct {
	personRepo  domain.PersonRepository
	transaction persistence.Transaction
}

func NewDependencyContainer(
	ctx context.Context,
	storageKind lazy.Loader[cmd.StorageKind],
	db lazy.Loader[sql.Database],
	dbMigrator lazy.Loader[*sql.Migrator],
	clock lazy.Loader[pkgtime.Clock],
	logger lazy.Loader[log.Logger],
) DependencyContainer {
	personStorage := storageProvider(ctx, storageKind, db, dbMigrator, clock)
	personService := personServiceProvider(personStorage, clock, logger)

	return DependencyContainer{
		PersonService: lazy.New(func() (api.PersonService, error) {
			return personService.Load()
		}),
		personService: personService,
		logger:        logger,
		bannerHandler: lazy.New(func() (http.BannerHandler, error) {
			return http.NewBannerHandler(), nil
		}),
		infoHandler: lazy.New(func() (http.InfoHandler, error) {
			return http.NewInfoHandler(personService.MustLoad()), nil
		}),
		listPersonsHandler: lazy.New(func() (http.ListPersonsHandler, error) {
			return http.NewListPersonsHandler(personService.MustLoad()), nil
		}),
		getPersonHandler: lazy.New(func() (http.GetPersonHandler, error) {
			return http.NewGetPersonHandler(personService.MustLoad()), nil
		}),
		createPersonHandler: lazy.New(func() (http.CreatePersonHandler, error) {
			return http.NewCreatePersonHandler(personService.MustLoad()), nil
		}),
		updatePersonHandler: lazy.New(func() (http.UpdatePersonHandler, error) {
			return http.NewUpdatePersonHandler(personService.MustLoad()), nil
		}),
		deletePersonHandler: lazy.New(func() (http.DeletePersonHandler, error) {
			return http.NewDeletePersonHandler(personService.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.Register(c.bannerHandler.MustLoad())
	registry.Register(c.infoHandler.MustLoad())
	registry.Register(c.listPersonsHandler.MustLoad())
	registry.Register(c.getPersonHandler.MustLoad())
	registry.Register(c.createPersonHandler.MustLoad())
	registry.Register(c.updatePersonHandler.MustLoad())
	registry.Register(c.deletePersonHandler.MustLoad())
}

// SeedPersons fills an empty phonebook, a failure is logged and does not stop the service.
func (c *DependencyContainer) SeedPersons(ctx context.Context) {
	logger := c.logger.MustLoad()

	seeded, err := c.personService.MustLoad().SeedIfEmpty(ctx)
	if err != nil {
		logger.WithError(err).Error(ctx, "failed to seed persons")
		return
	}
	if seeded > 0 {
		logger.WithField("count", seeded).Info(ctx, "persons seeded")
	}
}

func storageProvider(
	ctx context.Context,
	storageKind lazy.Loader[cmd.StorageKind],
	db lazy.Loader[sql.Database],
	dbMigrator lazy.Loader[*sql.Migrator],
	clock lazy.Loader[pkgtime.Clock],
) lazy.Loader[storage] {
	return lazy.New(func() (storage, error) {
		if storageKind.MustLoad() == cmd.StorageMemory {
			return storage{
				personRepo:  memory.NewPersonRepository(),
				transaction: memory.NewTransaction(),
			}, nil
		}

		err := dbMigrator.MustLoad().Execute(ctx, sqlmigrations.Migrations)
		if err != nil {
			panic(fmt.Errorf("execute phonebook migrations: %w", err))
		}

		return storage{
			personRepo:  phonebooksql.NewPersonRepository(db.MustLoad(), clock.MustLoad()),
			transaction: sql.NewTransaction(db.MustLoad()),
		}, nil
	})
}

func personServiceProvider(
	personStorage lazy.Loader[storage],
	clock lazy.Loader[pkgtime.Clock],
	logger lazy.Loader[log.Logger],
) lazy.Loader[service.Person] {
	return lazy.New(func() (service.Person, error) {
		s := personStorage.MustLoad()
		return service.NewPerson(
			s.personRepo,
			s.transaction,
			clock.MustLoad(),
			logger.MustLoad(),
		), nil
	})
}
