package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		category TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		short_description TEXT NOT NULL DEFAULT '',
		specs_json TEXT NOT NULL DEFAULT '{}',
		images_json TEXT NOT NULL DEFAULT '[]',
		rental_price TEXT NOT NULL DEFAULT '',
		is_new BOOLEAN NOT NULL DEFAULT FALSE,
		is_featured BOOLEAN NOT NULL DEFAULT FALSE,
		status TEXT NOT NULL DEFAULT 'Active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS inquiries (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		company TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL DEFAULT '',
		source TEXT NOT NULL DEFAULT 'contact_page',
		product TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'new',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}

// EnsureSchema creates the backing tables when missing. There is no seed
// step: the settings defaults layer makes an empty database fully usable.
func EnsureSchema(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to prepare schema: %w", err)
		}
	}
	return nil
}
