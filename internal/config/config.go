// Package config loads service settings from a YAML file with APP_* env overrides.
package config

import (
	"github.com/maxviazov/hydra-paging/internal/logger"
)

type Config struct {
	App      AppConfig           `mapstructure:"app"`
	Logger   logger.LoggerConfig `mapstructure:"logger"`
	Postgres PostgresConfig      `mapstructure:"postgres"`
	Paging   PagingConfig        `mapstructure:"paging"`
}

type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env"`
	Port    int    `mapstructure:"port" validate:"gt=0,lte=65535"`
}

// PostgresConfig carries connection and pool tuning. Secrets are expected from env.
type PostgresConfig struct {
	Host              string `mapstructure:"host" validate:"required"`
	Port              int    `mapstructure:"port" validate:"gt=0,lte=65535"`
	User              string `mapstructure:"user" validate:"required"`
	Password          string `mapstructure:"password" validate:"required"`
	DBName            string `mapstructure:"db" validate:"required"`
	SSLMode           string `mapstructure:"sslmode"`
	MaxConns          int32  `mapstructure:"max_conns"`
	MinConns          int32  `mapstructure:"min_conns"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime"`   // seconds
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time"`  // seconds
	HealthCheckPeriod int    `mapstructure:"health_check_period"` // seconds
}

// PagingConfig drives how list endpoints number and link their pages.
type PagingConfig struct {
	DefaultItemsPerPage int    `mapstructure:"default_items_per_page" validate:"gt=0"`
	MaxItemsPerPage     int    `mapstructure:"max_items_per_page" validate:"gtefield=DefaultItemsPerPage"`
	ZeroBased           bool   `mapstructure:"zero_based"`
	PageParam           string `mapstructure:"page_param" validate:"required"`
	ItemsPerPageParam   string `mapstructure:"items_per_page_param" validate:"required,nefield=PageParam"`
	TrustForwarded      bool   `mapstructure:"trust_forwarded"`
}
