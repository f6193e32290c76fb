package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))

	switch c.Storage.Driver {
	case DriverSQLite:
		if err := c.SQLite.validate(); err != nil {
			return fmt.Errorf("sqlite: %w", err)
		}
	case DriverPostgres:
		if err := c.Database.validate(); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	default:
		return fmt.Errorf("storage.driver must be %q or %q (got %q)", DriverSQLite, DriverPostgres, c.Storage.Driver)
	}

	return nil
}

func (s *SQLiteConfig) validate() error {
	if strings.TrimSpace(s.Path) == "" {
		return fmt.Errorf("path is required")
	}
	if s.BusyTimeout < 0 {
		return fmt.Errorf("busy_timeout must be >= 0 (got %s)", s.BusyTimeout)
	}
	return nil
}

func (d *DatabaseConfig) validate() error {
	if d.DSN == "" {
		return fmt.Errorf("dsn is required when storage.driver is %q", DriverPostgres)
	}
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be within [0, max_conns] (got %d)", d.MinConns)
	}
	return nil
}
