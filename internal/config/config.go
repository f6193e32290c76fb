package config

import (
	"time"
)

// Storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config is the root application configuration.
type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	Database DatabaseConfig `yaml:"database"`
	Types    TypesConfig    `yaml:"types"`
	Log      LogConfig      `yaml:"log"`
}

// StorageConfig selects the log store backend.
type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sqlite"`
}

// SQLiteConfig holds settings of the local-disk store.
type SQLiteConfig struct {
	Path        string        `yaml:"path"         env:"SQLITE_PATH"         env-default:"logbook.db"`
	BusyTimeout time.Duration `yaml:"busy_timeout" env:"SQLITE_BUSY_TIMEOUT" env-default:"5s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// TypesConfig points at the optional YAML file of log type definitions
// registered at start-up.
type TypesConfig struct {
	Path string `yaml:"path" env:"LOG_TYPES_PATH"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
