// Package logrecord implements the log record repository using PostgreSQL.
package logrecord

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/logbook/internal/adapter/postgres"
	"github.com/heartmarshall/logbook/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides log record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new log record repository. db is usually a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
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

// Create inserts a new record and returns it with the id and creation time
// assigned by the database.
func (r *Repo) Create(ctx context.Context, name, description string) (domain.LogRecord, error) {
	query, args, err := builder.
		Insert("logs").
		Columns("name", "description").
		Values(name, description).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return domain.LogRecord{}, fmt.Errorf("build insert log: %w", err)
	}

	rec := domain.LogRecord{Name: name, Description: description}
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&rec.ID, &rec.CreatedAt); err != nil {
		return domain.LogRecord{}, postgres.MapError(err, "log", 0)
	}
	rec.CreatedAt = rec.CreatedAt.UTC()

	return rec, nil
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
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	records := make([]domain.LogRecord, len(rows))
	for i, row := range rows {
		records[i] = row.toDomain()
	}
	return records, nil
}
