package service

import (
	"testing"

	"github.com/lshigami/Tally/config"
	"github.com/lshigami/Tally/database"
	"github.com/lshigami/Tally/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(tb testing.TB) *gorm.DB {
	tb.Helper()
	db, err := database.Open(config.Database{Driver: config.DriverSQLite, Path: ":memory:"})
	require.NoError(tb, err)
	require.NoError(tb, database.Migrate(db))
	tb.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newTestServices(tb testing.TB) (RecordService, TemplateService, *gorm.DB) {
	tb.Helper()
	db := openTestDB(tb)
	gate := database.NewGate(&config.Config{})
	records := NewRecordService(db, gate, repository.NewTestRepository(db), repository.NewSubjectEntryRepository(db))
	templates := NewTemplateService(db, gate, repository.NewTemplateRepository(db))
	return records, templates, db
}

func ptr[T any](v T) *T {
	return &v
}
