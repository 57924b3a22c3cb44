package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/klwxsrx/phonebook/internal/phonebook/domain"
	pkgsql "github.com/klwxsrx/phonebook/pkg/sql"
	pkgtime "github.com/klwxsrx/phonebook/pkg/time"
)

const personTable = "person"

type personRepository struct {
	db    pkgsql.Client
	clock pkgtime.Clock
}

func NewPersonRepository(db pkgsql.Client, clock pkgtime.Clock) domain.PersonRepository {
	return personRepository{db: db, clock: clock}
}

func (r personRepository) NextID() domain.PersonID {
	return domain.PersonID{UUID: uuid.New()}
}

func (r personRepository) Store(ctx context.Context, persons ...domain.Person) error {
	if len(persons) == 0 {
		return nil
	}

	now := r.clock.Now(ctx)
	qb := pkgsql.QueryBuilder.
		Insert(personTable).
		Columns("id", "name", "number", "created_at", "updated_at")
	for i, person := range persons {
		// keeps bulk inserts ordered by created_at
		createdAt := now.Add(time.Duration(i) * time.Microsecond)
		qb = qb.Values(person.ID, person.Name, person.Number, createdAt, createdAt)
	}

	query, args, err := qb.
		Suffix(`on conflict (id) do update set
			name = excluded.name,
			number = excluded.number,
			updated_at = excluded.updated_at
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r personRepository) Find(ctx context.Context, spec domain.FindPersonSpecification) ([]domain.Person, error) {
	query, args, err := r.buildFindQuery(ctx, spec).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sqlxPerson
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Person, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}

	return result, nil
}

func (r personRepository) FindOne(ctx context.Context, spec domain.FindPersonSpecification) (*domain.Person, error) {
	query, args, err := r.buildFindQuery(ctx, spec).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row sqlxPerson
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPersonNotFound
	}
	if err != nil {
		return nil, err
	}

	person := row.toDomain()
	return &person, nil
}

func (r personRepository) Delete(ctx context.Context, id domain.PersonID) error {
	query, args, err := pkgsql.QueryBuilder.
		Delete(personTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrPersonNotFound
	}

	return nil
}

func (r personRepository) Count(ctx context.Context) (int, error) {
	query, args, err := pkgsql.QueryBuilder.
		Select("count(*)").
		From(personTable).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var count int
	err = r.db.GetContext(ctx, &count, query, args...)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r personRepository) buildFindQuery(ctx context.Context, spec domain.FindPersonSpecification) sq.SelectBuilder {
	qb := pkgsql.QueryBuilder.
		Select("id", "name", "number").
		From(personTable).
		OrderBy("created_at", "id")
	if len(spec.IDs) > 0 {
		qb = qb.Where(sq.Eq{"id": spec.IDs})
	}
	if pkgsql.IsLockRequested(ctx) {
		qb = qb.Suffix("for update")
	}

	return qb
}

type sqlxPerson struct {
	ID     domain.PersonID `db:"id"`
	Name   string          `db:"name"`
	Number string          `db:"number"`
}

func (p sqlxPerson) toDomain() domain.Person {
	return domain.Person{
		ID:     p.ID,
		Name:   p.Name,
		Number: p.Number,
	}
}
