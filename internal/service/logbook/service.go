// Package logbook is the recording facade: the one entry point a host uses
// to manage log types and record logs.
//
// Typed recordings go through the conformance engine first; nothing is
// written unless resolution succeeds.
package logbook

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/logbook/internal/domain"
)

type schemaRegistry interface {
	Register(t domain.LogType)
	RegisterMany(types domain.LogTypes)
	Lookup(name string) (domain.LogAttrs, bool)
	List() domain.LogTypes
}

type resolver interface {
	Resolve(typeName *string, props map[string]string, conform bool) (map[string]string, error)
}

type logStore interface {
	CreateRecord(ctx context.Context, name, description string) (int64, error)
	AddProperty(ctx context.Context, id int64, key, value string) error
	RecordWithProperties(ctx context.Context, name, description string, props map[string]string) (int64, error)
	ListRecords(ctx context.Context) ([]domain.LogRecord, error)
	PropertiesFor(ctx context.Context, id int64) (map[string]string, error)
	Properties(ctx context.Context, id int64) ([]domain.Property, error)
}

// Service exposes the log registry and the log store to a host.
type Service struct {
	registry schemaRegistry
	resolver resolver
	store    logStore
	log      *slog.Logger
}

// NewService creates a new logbook service.
func NewService(
	log *slog.Logger,
	registry schemaRegistry,
	resolver resolver,
	store logStore,
) *Service {
	return &Service{
		registry: registry,
		resolver: resolver,
		store:    store,
		log:      log.With("service", "logbook"),
	}
}
