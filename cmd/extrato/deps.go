package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/abarbosa/extrato/internal/dictionary"
	"github.com/abarbosa/extrato/internal/engine"
	"github.com/abarbosa/extrato/internal/rules"
	"github.com/abarbosa/extrato/internal/service"
	"github.com/abarbosa/extrato/internal/storage"
)

// databasePath resolves the SQLite path from flag/config, defaulting to the
// XDG data directory.
func databasePath() (string, error) {
	if path := viper.GetString("database.path"); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".local", "share", "extrato", "extrato.db"), nil
}

// openStorage opens the database and brings the schema up to date. Migrations
// are idempotent, so every command can call this safely.
func openStorage(ctx context.Context) (service.Storage, error) {
	dbPath, err := databasePath()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// buildEngine assembles the classification engine with the built-in merchant
// dictionary and category rules.
func buildEngine(store service.Storage) (*engine.Engine, error) {
	ruleEngine, err := rules.NewEngine(rules.DefaultRules())
	if err != nil {
		return nil, fmt.Errorf("failed to compile category rules: %w", err)
	}

	return engine.New(store, dictionary.New(dictionary.DefaultEntries()), ruleEngine), nil
}
