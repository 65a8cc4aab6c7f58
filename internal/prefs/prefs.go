// Package prefs is the on-device key-value store. It persists the two pieces
// of UI state that survive restarts: the selected view mode and the selected
// currency. Missing keys are not errors; callers supply a fallback.
package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"moneta/internal/core"
	applog "moneta/internal/log"

	_ "modernc.org/sqlite"
)

const (
	keyViewMode = "view_mode"
	keyCurrency = "currency"
)

type Store struct {
	db *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	slog.Debug("Preferences store ready",
		applog.FieldComponent, applog.ComponentPrefs, "path", dbPath)
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get returns the stored value for key and whether it was present.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get pref %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores or replaces the value for key.
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO prefs (key, value, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("set pref %s: %w", key, err)
	}
	slog.DebugContext(ctx, "Pref saved",
		applog.FieldComponent, applog.ComponentPrefs, "key", key)
	return nil
}

// ViewMode returns the persisted view mode, or fallback when none is stored
// or the stored value no longer parses.
func (s *Store) ViewMode(ctx context.Context, fallback core.ViewMode) (core.ViewMode, error) {
	raw, ok, err := s.Get(ctx, keyViewMode)
	if err != nil {
		return fallback, err
	}
	if !ok {
		return fallback, nil
	}
	if vm := core.ParseViewMode(raw); vm.Valid() {
		return vm, nil
	}
	return fallback, nil
}

func (s *Store) SetViewMode(ctx context.Context, vm core.ViewMode) error {
	return s.Set(ctx, keyViewMode, string(vm))
}

// Currency returns the persisted currency code, or fallback when unset.
func (s *Store) Currency(ctx context.Context, fallback string) (string, error) {
	raw, ok, err := s.Get(ctx, keyCurrency)
	if err != nil {
		return fallback, err
	}
	if !ok || raw == "" {
		return fallback, nil
	}
	return raw, nil
}

func (s *Store) SetCurrency(ctx context.Context, currency string) error {
	return s.Set(ctx, keyCurrency, currency)
}
