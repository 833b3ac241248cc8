package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateSearchIndexes creates trigram indexes for PostgreSQL so that
// case-insensitive substring recall over node content stays fast as the
// graph grows. Ent schema indexes cannot express these.
func CreateSearchIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS pg_trgm`)
	if err != nil {
		return fmt.Errorf("failed to enable pg_trgm: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_memory_nodes_content_trgm
		ON memory_nodes USING gin(lower(content) gin_trgm_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create content trigram index: %w", err)
	}

	return nil
}
