// Package logstore persists log records and their properties.
//
// The Store is backend-agnostic: it drives a record repository and a
// property repository through a transaction manager, so both the SQLite and
// the PostgreSQL adapters can serve it. Writes are serialized by the Store;
// that serialization point defines the order of assigned record ids.
package logstore

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/heartmarshall/logbook/internal/domain"
)

type recordRepo interface {
	Create(ctx context.Context, name, description string) (domain.LogRecord, error)
	List(ctx context.Context) ([]domain.LogRecord, error)
}

type propertyRepo interface {
	Add(ctx context.Context, logID int64, key, value string) (domain.Property, error)
	ListByLog(ctx context.Context, logID int64) ([]domain.Property, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Store is the durable log store.
type Store struct {
	records recordRepo
	props   propertyRepo
	tx      txManager
	log     *slog.Logger

	mu sync.RWMutex
}

// NewStore creates a Store over the given repositories.
func NewStore(
	log *slog.Logger,
	records recordRepo,
	props propertyRepo,
	tx txManager,
) *Store {
	return &Store{
		records: records,
		props:   props,
		tx:      tx,
		log:     log.With("service", "logstore"),
	}
}

// CreateRecord inserts a record with no properties and returns its id.
func (s *Store) CreateRecord(ctx context.Context, name, description string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.records.Create(ctx, name, description)
	if err != nil {
		return 0, domain.NewStorageError("create record", err)
	}

	s.log.DebugContext(ctx, "record created", slog.Int64("log_id", rec.ID))
	return rec.ID, nil
}

// AddProperty appends a property row to an existing record. An id that does
// not belong to any record yields a StorageError matching domain.ErrNotFound;
// nothing is written in that case.
func (s *Store) AddProperty(ctx context.Context, id int64, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.props.Add(ctx, id, key, value); err != nil {
		return domain.NewStorageError("add property", err)
	}
	return nil
}

// RecordWithProperties creates a record and all of its properties in a
// single transaction. Readers see either none or all of the rows.
// Properties are written in key order.
func (s *Store) RecordWithProperties(ctx context.Context, name, description string, props map[string]string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var id int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rec, err := s.records.Create(txCtx, name, description)
		if err != nil {
			return fmt.Errorf("create record: %w", err)
		}

		for _, k := range keys {
			if _, err := s.props.Add(txCtx, rec.ID, k, props[k]); err != nil {
				return fmt.Errorf("add property %q: %w", k, err)
			}
		}

		id = rec.ID
		return nil
	})
	if err != nil {
		return 0, domain.NewStorageError("record with properties", err)
	}

	s.log.DebugContext(ctx, "record created",
		slog.Int64("log_id", id),
		slog.Int("properties", len(keys)),
	)
	return id, nil
}

// ListRecords returns every record ordered by id.
func (s *Store) ListRecords(ctx context.Context) ([]domain.LogRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records, err := s.records.List(ctx)
	if err != nil {
		return nil, domain.NewStorageError("list records", err)
	}
	if records == nil {
		records = []domain.LogRecord{}
	}
	return records, nil
}

// Properties returns the raw property rows of a record in storage order,
// including repeated keys.
func (s *Store) Properties(ctx context.Context, id int64) ([]domain.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	props, err := s.props.ListByLog(ctx, id)
	if err != nil {
		return nil, domain.NewStorageError("list properties", err)
	}
	return props, nil
}

// PropertiesFor returns the properties of a record as a map. When a key was
// written more than once, the most recently written value wins. An unknown
// id yields an empty map.
func (s *Store) PropertiesFor(ctx context.Context, id int64) (map[string]string, error) {
	props, err := s.Properties(ctx, id)
	if err != nil {
		return nil, err
	}
	return domain.FlattenProperties(props), nil
}
