package repo

import (
	"context"
	"database/sql"
	"time"
)

// PostgresSettingsRepository is the table-backed implementation of
// SettingsRepository.
type PostgresSettingsRepository struct {
	db *sql.DB
}

func NewPostgresSettingsRepository(db *sql.DB) *PostgresSettingsRepository {
	return &PostgresSettingsRepository{db: db}
}

func (r *PostgresSettingsRepository) GetAll() (map[string]string, error) {
	query := `SELECT key, value FROM settings`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stored := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		stored[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return applyDefaults(stored), nil
}

// UpsertMany writes each key independently, matching the original
// system: a failure partway leaves earlier keys written.
func (r *PostgresSettingsRepository) UpsertMany(values map[string]string) error {
	query := `INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	for k, v := range values {
		if _, err := r.db.ExecContext(ctx, query, k, v); err != nil {
			return err
		}
	}
	return nil
}
