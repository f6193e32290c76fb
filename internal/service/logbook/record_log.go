package logbook

import (
	"context"
	"log/slog"
)

// RecordLog resolves input.Props against input.Type and persists the record
// with the resolved properties in one transaction.
//
// Resolution errors (*domain.UnknownLogTypeError, *domain.MissingFieldError)
// are returned unchanged and nothing is written.
func (s *Service) RecordLog(ctx context.Context, input RecordLogInput) (int64, error) {
	props, err := s.resolver.Resolve(input.Type, input.Props, input.Conform)
	if err != nil {
		s.log.DebugContext(ctx, "log rejected",
			slog.String("name", input.Name),
			slog.String("type", input.typeLabel()),
			slog.String("error", err.Error()),
		)
		return 0, err
	}

	id, err := s.store.RecordWithProperties(ctx, input.Name, input.Description, props)
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "log recorded",
		slog.Int64("log_id", id),
		slog.String("name", input.Name),
		slog.String("type", input.typeLabel()),
		slog.Bool("conform", input.Conform),
		slog.Int("properties", len(props)),
	)

	return id, nil
}
