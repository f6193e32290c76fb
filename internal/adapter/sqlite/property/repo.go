// Package property implements the log property repository using SQLite.
// Properties are append-only: writing an existing key adds a new row.
package property

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/heartmarshall/logbook/internal/adapter/sqlite"
	"github.com/heartmarshall/logbook/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// Repo provides log property persistence backed by SQLite.
type Repo struct {
	db *sql.DB
}

// New creates a new property repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

type propRow struct {
	ID    int64  `db:"id"`
	LogID int64  `db:"log_id"`
	Key   string `db:"key"`
	Value string `db:"value"`
}

// Add appends a property row to the record logID. A logID with no record
// fails with domain.ErrNotFound.
func (r *Repo) Add(ctx context.Context, logID int64, key, value string) (domain.Property, error) {
	query, args, err := builder.
		Insert("log_props").
		Columns("log_id", "key", "value").
		Values(logID, key, value).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return domain.Property{}, fmt.Errorf("build insert log_prop: %w", err)
	}

	var id int64
	if err := sqlite.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return domain.Property{}, sqlite.MapError(err, "log", logID)
	}

	return domain.Property{ID: id, LogID: logID, Key: key, Value: value}, nil
}

// ListByLog returns the properties of logID in insertion order.
func (r *Repo) ListByLog(ctx context.Context, logID int64) ([]domain.Property, error) {
	query, args, err := builder.
		Select("id", "log_id", "key", "value").
		From("log_props").
		Where(sq.Eq{"log_id": logID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select log_props: %w", err)
	}

	var rows []propRow
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list log_props for log %d: %w", logID, err)
	}

	props := make([]domain.Property, len(rows))
	for i, row := range rows {
		props[i] = domain.Property(row)
	}
	return props, nil
}
