package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/rs/zerolog/log"
)

//go:embed schema.sql
var schemaSQL string

// Schema returns the embedded DDL applied by Migrate.
func Schema() string {
	return schemaSQL
}

// Migrate applies schema.sql. Every statement is IF NOT EXISTS so it is
// safe to run on each start.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	log.Info().Msg("[DATABASE] Applying schema...")

	// simple protocol: cho phép nhiều statements trong một Exec
	conn, err := db.Pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Conn().PgConn().Exec(ctx, schemaSQL).ReadAll(); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	log.Info().Msg("[DATABASE] Schema up to date")
	return nil
}
