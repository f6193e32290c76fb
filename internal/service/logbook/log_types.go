package logbook

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/logbook/internal/domain"
)

// RegisterLogType inserts or replaces the schema of one log type.
func (s *Service) RegisterLogType(ctx context.Context, t domain.LogType) {
	s.registry.Register(t)

	s.log.InfoContext(ctx, "log type registered",
		slog.String("type", t.Name),
		slog.Int("attrs", len(t.Attrs)),
	)
}

// RegisterLogTypes registers every entry of types.
func (s *Service) RegisterLogTypes(ctx context.Context, types domain.LogTypes) {
	s.registry.RegisterMany(types)

	s.log.InfoContext(ctx, "log types registered", slog.Int("count", len(types)))
}

// GetLogType returns the schema registered under name.
func (s *Service) GetLogType(name string) (domain.LogAttrs, bool) {
	return s.registry.Lookup(name)
}

// ListLogTypes returns a snapshot of every registered log type.
func (s *Service) ListLogTypes() domain.LogTypes {
	return s.registry.List()
}
