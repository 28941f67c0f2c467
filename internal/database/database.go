package database

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/catalog/internal/config"
	"github.com/mrlokans/catalog/internal/entities"
)

// sqliteParams turn on foreign key enforcement for every pooled connection and
// let concurrent readers proceed while a write is in flight.
const sqliteParams = "_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000"

type Database struct {
	DB  *gorm.DB
	log *zap.Logger
}

// Stats holds row counts for the three catalog tables.
type Stats struct {
	Authors int64 `json:"authors"`
	Genres  int64 `json:"genres"`
	Books   int64 `json:"books"`
}

// NewDatabase opens the configured backend, creates the schema and seeds the
// reference data. A seeding failure is logged and does not fail construction.
func NewDatabase(cfg config.Database, log *zap.Logger) (*Database, error) {
	database, err := Open(cfg, log)
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(); err != nil {
		database.Close()
		return nil, err
	}

	if err := database.Seed(context.Background()); err != nil {
		database.log.Error("Failed to seed catalog, continuing with existing data", zap.Error(err))
	}

	database.log.Info("Database initialized successfully",
		zap.String("driver", string(cfg.Driver)),
		zap.String("path", cfg.Path),
	)
	return database, nil
}

// Open connects to the database without touching the schema.
func Open(cfg config.Database, log *zap.Logger) (*Database, error) {
	if log == nil {
		log = zap.NewNop()
	}

	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return &Database{DB: db, log: log}, nil
}

func openDialector(cfg config.Database) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSQLite, "":
		if cfg.Path == "" {
			return nil, fmt.Errorf("database path is not set")
		}
		return sqlite.Open(sqliteDSN(cfg.Path)), nil
	case config.DriverPostgres:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("database DSN is required for the postgres driver")
		}
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + sqliteParams
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// Migrate creates the authors, genres and books tables if they do not exist.
func (d *Database) Migrate() error {
	err := d.DB.AutoMigrate(
		&entities.Author{},
		&entities.Genre{},
		&entities.Book{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping verifies the connection is alive.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Stats counts the rows in every catalog table.
func (d *Database) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	db := d.DB.WithContext(ctx)
	if err := db.Model(&entities.Author{}).Count(&stats.Authors).Error; err != nil {
		return stats, fmt.Errorf("failed to count authors: %w", err)
	}
	if err := db.Model(&entities.Genre{}).Count(&stats.Genres).Error; err != nil {
		return stats, fmt.Errorf("failed to count genres: %w", err)
	}
	if err := db.Model(&entities.Book{}).Count(&stats.Books).Error; err != nil {
		return stats, fmt.Errorf("failed to count books: %w", err)
	}
	return stats, nil
}
