package sql

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/klwxsrx/phonebook/pkg/log"
)

const (
	migrationLock = "perform_migration_lock"

	migrationTableDDL = `
		create table if not exists migration (
			id          text primary key,
			executed_at timestamptz not null default current_timestamp
		)
	`
)

type (
	Migration struct {
		ID  string
		SQL string
	}

	MigrationSource func() ([]Migration, error)

	Migrator struct {
		db     Database
		logger log.Logger
	}
)

// FSMigrations reads *.sql files, file name without extension is the migration id.
func FSMigrations(fsys fs.ReadDirFS) MigrationSource {
	return func() ([]Migration, error) {
		entries, err := fsys.ReadDir(".")
		if err != nil {
			return nil, fmt.Errorf("read migrations dir: %w", err)
		}

		result := make([]Migration, 0, len(entries))
		for _, entry := range entries {
			if entry.IsDir() || path.Ext(entry.Name()) != ".sql" {
				continue
			}

			content, err := fs.ReadFile(fsys, entry.Name())
			if err != nil {
				return nil, fmt.Errorf("read migration %s: %w", entry.Name(), err)
			}

			result = append(result, Migration{
				ID:  strings.TrimSuffix(entry.Name(), ".sql"),
				SQL: string(content),
			})
		}

		return result, nil
	}
}

func NewMigrator(db Database, logger log.Logger) *Migrator {
	return &Migrator{db: db, logger: logger}
}

func (m *Migrator) Execute(ctx context.Context, sources ...MigrationSource) error {
	migrations, err := collectMigrations(sources)
	if err != nil {
		return err
	}
	if len(migrations) == 0 {
		return nil
	}

	return NewTransaction(m.db).WithinContext(ctx, func(ctx context.Context) error {
		_, err := m.db.ExecContext(ctx, migrationTableDDL)
		if err != nil {
			return fmt.Errorf("create migration table: %w", err)
		}

		performed, err := m.getPerformedMigrationIDs(ctx)
		if err != nil {
			return err
		}

		for _, migration := range migrations {
			if _, ok := performed[migration.ID]; ok {
				continue
			}

			err = m.performMigration(ctx, migration)
			if err != nil {
				return fmt.Errorf("migration %s failed: %w", migration.ID, err)
			}

			m.logger.WithField("migrationID", migration.ID).Info(ctx, "migration executed successfully")
		}

		return nil
	}, migrationLock)
}

func (m *Migrator) getPerformedMigrationIDs(ctx context.Context) (map[string]struct{}, error) {
	query, args, err := QueryBuilder.Select("id").From("migration").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var ids []string
	err = m.db.SelectContext(ctx, &ids, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select performed migrations: %w", err)
	}

	result := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		result[id] = struct{}{}
	}

	return result, nil
}

func (m *Migrator) performMigration(ctx context.Context, migration Migration) error {
	if strings.TrimSpace(migration.SQL) == "" {
		return errors.New("empty migration")
	}

	_, err := m.db.ExecContext(ctx, migration.SQL)
	if err != nil {
		return err
	}

	query, args, err := QueryBuilder.
		Insert("migration").
		Columns("id").
		Values(migration.ID).
		Suffix("on conflict do nothing").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = m.db.ExecContext(ctx, query, args...)
	return err
}

func collectMigrations(sources []MigrationSource) ([]Migration, error) {
	var result []Migration
	for _, source := range sources {
		migrations, err := source()
		if err != nil {
			return nil, err
		}

		result = append(result, migrations...)
	}

	slices.SortStableFunc(result, func(a, b Migration) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result, nil
}
