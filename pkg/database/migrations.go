package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. These must match the constraints in
// 000001_initial_schema.up.sql.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one live primary asset per (episode, type)
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS asset_episode_id_type_primary_live
		ON assets (episode_id, type)
		WHERE is_primary AND deleted_at IS NULL`)
	if err != nil {
		return fmt.Errorf("failed to create primary asset index: %w", err)
	}

	// Channel slugs are unique among live channels only
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS channel_slug_live
		ON channels (slug)
		WHERE deleted_at IS NULL`)
	if err != nil {
		return fmt.Errorf("failed to create channel slug index: %w", err)
	}

	return nil
}
