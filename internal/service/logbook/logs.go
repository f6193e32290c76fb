package logbook

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/logbook/internal/domain"
)

// AddLog records an untyped log without properties.
func (s *Service) AddLog(ctx context.Context, name, description string) (int64, error) {
	id, err := s.store.CreateRecord(ctx, name, description)
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "log recorded",
		slog.Int64("log_id", id),
		slog.String("name", name),
	)
	return id, nil
}

// AddLogWithProps records an untyped log with its properties in one
// transaction. No schema is consulted.
func (s *Service) AddLogWithProps(ctx context.Context, name, description string, props map[string]string) (int64, error) {
	return s.RecordLog(ctx, RecordLogInput{Name: name, Description: description, Props: props})
}

// SetProp appends a property to an existing log. Setting a key twice keeps
// both rows; reads return the latest value.
func (s *Service) SetProp(ctx context.Context, id int64, key, value string) error {
	if err := s.store.AddProperty(ctx, id, key, value); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "property set",
		slog.Int64("log_id", id),
		slog.String("key", key),
	)
	return nil
}

// ListLogs returns every log ordered by id.
func (s *Service) ListLogs(ctx context.Context) ([]domain.LogRecord, error) {
	return s.store.ListRecords(ctx)
}

// PropsFor returns the flattened properties of a log.
func (s *Service) PropsFor(ctx context.Context, id int64) (map[string]string, error) {
	return s.store.PropertiesFor(ctx, id)
}

// PropHistory returns every property row of a log, repeated keys included.
func (s *Service) PropHistory(ctx context.Context, id int64) ([]domain.Property, error) {
	return s.store.Properties(ctx, id)
}
