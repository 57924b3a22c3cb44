package phonebook

import (
	"embed"

	"github.com/klwxsrx/phonebook/pkg/sql"
)

var Migrations = sql.FSMigrations(migrationFiles)

//go:embed *.sql
var migrationFiles embed.FS
