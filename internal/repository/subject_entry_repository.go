package repository

import (
	"context"

	"github.com/lshigami/Tally/internal/model"
	"gorm.io/gorm"
)

type SubjectEntryRepository interface {
	WithTx(tx *gorm.DB) SubjectEntryRepository
	Create(ctx context.Context, entry *model.SubjectEntry) error
	FindByID(ctx context.Context, id uint) (*model.SubjectEntry, error)
	FindByTestID(ctx context.Context, testID uint) ([]model.SubjectEntry, error)
	Update(ctx context.Context, entry *model.SubjectEntry) error
	Delete(ctx context.Context, id uint) error
}

type subjectEntryRepository struct {
	db *gorm.DB
}

func NewSubjectEntryRepository(db *gorm.DB) SubjectEntryRepository {
	return &subjectEntryRepository{db: db}
}

func (r *subjectEntryRepository) WithTx(tx *gorm.DB) SubjectEntryRepository {
	return &subjectEntryRepository{db: tx}
}

func (r *subjectEntryRepository) Create(ctx context.Context, entry *model.SubjectEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *subjectEntryRepository) FindByID(ctx context.Context, id uint) (*model.SubjectEntry, error) {
	var entry model.SubjectEntry
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *subjectEntryRepository) FindByTestID(ctx context.Context, testID uint) ([]model.SubjectEntry, error) {
	var entries []model.SubjectEntry
	err := r.db.WithContext(ctx).Where("test_id = ?", testID).Order("id ASC").Find(&entries).Error
	return entries, err
}

// Update rewrites the raw counts and name; the owning test never changes.
func (r *subjectEntryRepository) Update(ctx context.Context, entry *model.SubjectEntry) error {
	return r.db.WithContext(ctx).Model(&model.SubjectEntry{}).Where("id = ?", entry.ID).Updates(map[string]interface{}{
		"subject_name": entry.Name,
		"total_q":      entry.TotalQ,
		"attempted_q":  entry.AttemptedQ,
		"correct_q":    entry.CorrectQ,
	}).Error
}

func (r *subjectEntryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.SubjectEntry{}, id).Error
}
