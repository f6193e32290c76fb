// Package testhelper provides a migrated SQLite database for tests.
package testhelper

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/heartmarshall/logbook/internal/adapter/sqlite"
	"github.com/heartmarshall/logbook/internal/config"
)

// SetupTestDB opens a fresh database file in t.TempDir(), applies goose
// migrations, and returns the handle. The handle is closed via t.Cleanup.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := sqlite.Open(ctx, config.SQLiteConfig{
		Path:        filepath.Join(t.TempDir(), "logbook.db"),
		BusyTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("testhelper: open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := sqlite.Migrate(ctx, db, slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		t.Fatalf("testhelper: migrate: %v", err)
	}

	return db
}
