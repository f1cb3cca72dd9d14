// internal/migrations/migrations.go
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Up applies all pending migrations. Both the API server and the seeding
// tool call this on startup so either one can bootstrap an empty database.
func Up(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
