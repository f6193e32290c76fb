package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UniqueName returns a record name that does not collide with other tests
// sharing the container.
func UniqueName(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedRecord inserts a log record with the given properties and returns its id.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, name string, props map[string]string) int64 {
	t.Helper()
	ctx := context.Background()

	var id int64
	err := pool.QueryRow(ctx,
		`INSERT INTO logs (name, description) VALUES ($1, '') RETURNING id`,
		name,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord insert log: %v", err)
	}

	for k, v := range props {
		_, err := pool.Exec(ctx,
			`INSERT INTO log_props (log_id, key, value) VALUES ($1, $2, $3)`,
			id, k, v,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedRecord insert prop %q: %v", k, err)
		}
	}

	return id
}
