package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version the application expects.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS merchants (
					id TEXT PRIMARY KEY,
					user_id TEXT NOT NULL,
					slug TEXT NOT NULL,
					canonical_name TEXT NOT NULL,
					cnpj TEXT,
					use_count INTEGER DEFAULT 0,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					UNIQUE(user_id, slug)
				)`,
				`CREATE INDEX idx_merchants_user ON merchants(user_id)`,

				`CREATE TABLE IF NOT EXISTS correction_rules (
					id TEXT PRIMARY KEY,
					user_id TEXT NOT NULL,
					pattern TEXT NOT NULL,
					merchant_id TEXT NOT NULL,
					canonical_name TEXT NOT NULL,
					category TEXT,
					cnpj TEXT,
					confidence REAL NOT NULL DEFAULT 0.98,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					FOREIGN KEY (merchant_id) REFERENCES merchants(id)
				)`,
				`CREATE INDEX idx_correction_rules_user ON correction_rules(user_id)`,

				`CREATE TABLE IF NOT EXISTS transactions (
					id TEXT PRIMARY KEY,
					hash TEXT UNIQUE NOT NULL,
					user_id TEXT NOT NULL,
					date DATETIME NOT NULL,
					raw_description TEXT NOT NULL,
					merchant_raw TEXT,
					merchant_norm TEXT,
					merchant_slug TEXT,
					merchant_id TEXT,
					canonical_name TEXT,
					category TEXT,
					cnpj TEXT,
					account_id TEXT,
					tx_type TEXT NOT NULL,
					nature TEXT NOT NULL,
					amount REAL NOT NULL,
					confidence REAL DEFAULT 0,
					sources TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					FOREIGN KEY (merchant_id) REFERENCES merchants(id)
				)`,
				`CREATE INDEX idx_transactions_user_date ON transactions(user_id, date)`,
				`CREATE INDEX idx_transactions_merchant ON transactions(merchant_id)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Index transactions by slug for per-merchant history",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`CREATE INDEX IF NOT EXISTS idx_transactions_user_slug ON transactions(user_id, merchant_slug)`)
			return err
		},
	},
}

// Migrate applies any pending schema migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			description TEXT,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	var current int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration transaction: %w", err)
		}

		if err := m.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Description, err)
		}

		if _, err := tx.Exec(
			`INSERT INTO schema_migrations (version, description) VALUES (?, ?)`,
			m.Version, m.Description); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}

		slog.Info("Applied migration", "version", m.Version, "description", m.Description)
	}

	return nil
}
