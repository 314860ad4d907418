package repository

import (
	"context"

	"github.com/lshigami/Tally/internal/model"
	"gorm.io/gorm"
)

type TestRepository interface {
	WithTx(tx *gorm.DB) TestRepository
	Create(ctx context.Context, test *model.Test) error
	FindByID(ctx context.Context, id uint) (*model.Test, error)
	FindByIDWithEntries(ctx context.Context, id uint) (*model.Test, error)
	FindAllWithEntries(ctx context.Context) ([]model.Test, error)
	UpdateConfig(ctx context.Context, id uint, date string, name *string, marking model.Marking) (int64, error)
	UpdateDerived(ctx context.Context, id uint, scorePct, accuracyPct float64) error
	Delete(ctx context.Context, id uint) (int64, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) WithTx(tx *gorm.DB) TestRepository {
	return &testRepository{db: tx}
}

// Create inserts the test together with test.Entries.
func (r *testRepository) Create(ctx context.Context, test *model.Test) error {
	return r.db.WithContext(ctx).Create(test).Error
}

func (r *testRepository) FindByID(ctx context.Context, id uint) (*model.Test, error) {
	var test model.Test
	if err := r.db.WithContext(ctx).First(&test, id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindByIDWithEntries(ctx context.Context, id uint) (*model.Test, error) {
	var test model.Test
	err := r.db.WithContext(ctx).Preload("Entries", func(db *gorm.DB) *gorm.DB {
		return db.Order("entries.id ASC")
	}).First(&test, id).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

// FindAllWithEntries returns every test, newest date first with id as the
// tie-break, each with its entries in insertion order.
func (r *testRepository) FindAllWithEntries(ctx context.Context) ([]model.Test, error) {
	var tests []model.Test
	err := r.db.WithContext(ctx).Preload("Entries", func(db *gorm.DB) *gorm.DB {
		return db.Order("entries.id ASC")
	}).Order("tests.date DESC").Order("tests.id DESC").Find(&tests).Error
	return tests, err
}

// UpdateConfig writes date, name and marking, leaving the derived columns to
// UpdateDerived. It reports the number of rows matched.
func (r *testRepository) UpdateConfig(ctx context.Context, id uint, date string, name *string, marking model.Marking) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Test{}).Where("id = ?", id).Updates(map[string]interface{}{
		"date":           date,
		"name":           name,
		"correct_points": marking.CorrectPoints,
		"wrong_points":   marking.WrongPoints,
		"is_negative":    marking.IsNegative,
	})
	return res.RowsAffected, res.Error
}

func (r *testRepository) UpdateDerived(ctx context.Context, id uint, scorePct, accuracyPct float64) error {
	return r.db.WithContext(ctx).Model(&model.Test{}).Where("id = ?", id).Updates(map[string]interface{}{
		"score_pct":    scorePct,
		"accuracy_pct": accuracyPct,
	}).Error
}

// Delete removes the test and its entries. Entries are deleted explicitly as
// well as through the foreign key so the cascade holds on connections that
// were opened without foreign key enforcement.
func (r *testRepository) Delete(ctx context.Context, id uint) (int64, error) {
	db := r.db.WithContext(ctx)
	if err := db.Where("test_id = ?", id).Delete(&model.SubjectEntry{}).Error; err != nil {
		return 0, err
	}
	res := db.Delete(&model.Test{}, id)
	return res.RowsAffected, res.Error
}
