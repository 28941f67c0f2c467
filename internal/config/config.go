package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type DatabaseDriver string

const (
	DriverSQLite   DatabaseDriver = "sqlite"   // Embedded file database (default)
	DriverPostgres DatabaseDriver = "postgres" // External PostgreSQL server
)

type (
	Config struct {
		HTTP
		CORS
		Global
		Database
		Log
	}

	HTTP struct {
		Port    int32
		Host    string
		GinMode string
	}
	CORS struct {
		AllowedOrigins []string
		AllowAll       bool // Permit every origin, ignoring AllowedOrigins
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Driver          DatabaseDriver
		Path            string // SQLite file, used when Driver is sqlite
		DSN             string // Connection string, used when Driver is postgres
		MaxOpenConns    int
		MaxIdleConns    int
		ConnMaxLifetime time.Duration
		LogLevel        string // gorm logger level: silent, error, warn, info
	}
	Log struct {
		Level  string
		Format string // json or console
	}
)

// splitList parses a comma-separated env value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("shutdown_timeout_in_seconds", 5)

	// CORS defaults
	v.SetDefault("cors_allowed_origins", DefaultAllowedOrigin)
	v.SetDefault("cors_allow_all", false)

	// Database defaults
	v.SetDefault("database_driver", string(DriverSQLite))
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_dsn", "")
	v.SetDefault("database_max_open_conns", 10)
	v.SetDefault("database_max_idle_conns", 5)
	v.SetDefault("database_conn_max_lifetime", "5m")
	v.SetDefault("database_log_level", "warn")

	// Logging defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	return &Config{
		HTTP: HTTP{
			Port:    v.GetInt32("PORT"),
			Host:    v.GetString("HOST"),
			GinMode: v.GetString("GIN_MODE"),
		},
		CORS: CORS{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			AllowAll:       v.GetBool("CORS_ALLOW_ALL"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Driver:          DatabaseDriver(strings.ToLower(v.GetString("DATABASE_DRIVER"))),
			Path:            v.GetString("DATABASE_PATH"),
			DSN:             v.GetString("DATABASE_DSN"),
			MaxOpenConns:    v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DATABASE_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DATABASE_CONN_MAX_LIFETIME"),
			LogLevel:        v.GetString("DATABASE_LOG_LEVEL"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}
}
