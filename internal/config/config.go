package config

import (
	"time"

	"github.com/maxviazov/tournament-standings-service/internal/logger"
)

type Config struct {
	App      AppConfig           `mapstructure:"app"`
	Logger   logger.LoggerConfig `mapstructure:"logger" validate:"-"` // validated by logger.New after defaults
	Postgres PostgresConfig      `mapstructure:"postgres"`
	Redis    RedisConfig         `mapstructure:"redis"`
	Live     LiveConfig          `mapstructure:"live"`
}

type AppConfig struct {
	Name            string `mapstructure:"name"`
	Version         string `mapstructure:"version"`
	Env             string `mapstructure:"env"`
	Port            int    `mapstructure:"port" validate:"min=1,max=65535"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" validate:"min=0"` // seconds
}

// PostgresConfig holds connection and pool tuning. Durations are in seconds.
type PostgresConfig struct {
	Host              string `mapstructure:"host" validate:"required"`
	Port              int    `mapstructure:"port" validate:"min=1,max=65535"`
	User              string `mapstructure:"user" validate:"required"`
	Password          string `mapstructure:"password" validate:"required"`
	DBName            string `mapstructure:"dbname" validate:"required"`
	SSLMode           string `mapstructure:"sslmode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	MaxConns          int32  `mapstructure:"max_conns" validate:"min=0"`
	MinConns          int32  `mapstructure:"min_conns" validate:"min=0"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time"`
	HealthCheckPeriod int    `mapstructure:"health_check_period"`
	MigrationsDir     string `mapstructure:"migrations_dir"`
	AutoMigrate       bool   `mapstructure:"auto_migrate"`
}

type RedisConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	Addr         string `mapstructure:"addr" validate:"required_if=Enabled true"`
	Password     string `mapstructure:"password"`
	DB           int    `mapstructure:"db" validate:"min=0"`
	PoolSize     int    `mapstructure:"pool_size" validate:"min=0"`
	StandingsTTL int    `mapstructure:"standings_ttl" validate:"min=0"` // seconds
}

// LiveConfig controls the websocket feed of standings updates.
type LiveConfig struct {
	Enabled        bool     `mapstructure:"enabled"`
	SendBuffer     int      `mapstructure:"send_buffer" validate:"min=0"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (c AppConfig) ShutdownGrace() time.Duration {
	return time.Duration(c.ShutdownTimeout) * time.Second
}

func (c RedisConfig) TTL() time.Duration {
	return time.Duration(c.StandingsTTL) * time.Second
}
