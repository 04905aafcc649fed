// Package migrations holds the embedded schema of every supported database
// dialect and applies it on startup.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// migrationDirs maps a database/sql driver name to its migration directory
// and goose dialect.
var migrationDirs = map[string]struct {
	dir     string
	dialect string
}{
	"pgx":     {dir: "postgres", dialect: "pgx"},
	"sqlite3": {dir: "sqlite", dialect: "sqlite3"},
}

// Migrate applies all pending migrations for the given driver
// ("pgx" or "sqlite3"). Migrations only ever create missing objects,
// so running it against an up-to-date schema is a no-op.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	target, ok := migrationDirs[driver]
	if !ok {
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(target.dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, target.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
