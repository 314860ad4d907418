package database

import (
	"fmt"

	"github.com/lshigami/Tally/config"
	"github.com/lshigami/Tally/internal/logger"
	"github.com/lshigami/Tally/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDatabase opens the configured store. The pool is capped at one
// connection: every store operation runs serially behind the writer gate,
// and an in-memory sqlite database only exists on the connection that
// created it.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	return Open(cfg.Database)
}

func Open(cfg config.Database) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(sqliteDSN(cfg.Path))
	case config.DriverPostgres:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port)
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.NewGorm(),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if cfg.Driver == config.DriverSQLite {
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	}

	log.Info().Str("driver", cfg.Driver).Msg("Database connected")
	return db, nil
}

// sqliteDSN keeps foreign keys on and waits on a locked file instead of
// failing with SQLITE_BUSY.
func sqliteDSN(path string) string {
	if path == ":memory:" {
		return ":memory:?_foreign_keys=on"
	}
	return path + "?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL"
}

// Migrate creates or updates the tests, entries and templates tables.
func Migrate(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(
		&model.Test{},
		&model.SubjectEntry{},
		&model.Template{},
	); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
