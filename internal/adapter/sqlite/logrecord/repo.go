// Package logrecord implements the log record repository using SQLite.
// Records are append-only.
package logrecord

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/heartmarshall/logbook/internal/adapter/sqlite"
	"github.com/heartmarshall/logbook/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// Repo provides log record persistence backed by SQLite.
type Repo struct {
	db  *sql.DB
	now func() time.Time
}

// New creates a new log record repository.
func New(db *sql.DB) *Repo {
	return &Repo{
		db:  db,
		now: func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

type logRow struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r logRow) toDomain() domain.LogRecord {
	return domain.LogRecord{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt.UTC(),
	}
}

// Create inserts a new record stamped with the current time and returns it
// with its assigned id.
func (r *Repo) Create(ctx context.Context, name, description string) (domain.LogRecord, error) {
	createdAt := r.now()

	query, args, err := builder.
		Insert("logs").
		Columns("name", "description", "created_at").
		Values(name, description, createdAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return domain.LogRecord{}, fmt.Errorf("build insert log: %w", err)
	}

	var id int64
	if err := sqlite.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return domain.LogRecord{}, sqlite.MapError(err, "log", 0)
	}

	return domain.LogRecord{
		ID:          id,
		Name:        name,
		Description: description,
		CreatedAt:   createdAt,
	}, nil
}

// List returns all records ordered by id ascending.
func (r *Repo) List(ctx context.Context) ([]domain.LogRecord, error) {
	query, args, err := builder.
		Select("id", "name", "description", "created_at").
		From("logs").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select logs: %w", err)
	}

	var rows []logRow
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	records := make([]domain.LogRecord, len(rows))
	for i, row := range rows {
		records[i] = row.toDomain()
	}
	return records, nil
}
