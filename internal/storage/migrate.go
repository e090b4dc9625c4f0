package storage

import (
	"database/sql"
	"fmt"

	"github.com/guttosm/putpricer/migrations"
	goose "github.com/pressly/goose/v3"
)

// Migrate applies every embedded goose migration to db.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}
