package repository

import (
	"context"

	"github.com/lshigami/Tally/internal/model"
	"gorm.io/gorm"
)

type TemplateRepository interface {
	WithTx(tx *gorm.DB) TemplateRepository
	Create(ctx context.Context, tmpl *model.Template) error
	FindByID(ctx context.Context, id uint) (*model.Template, error)
	FindAll(ctx context.Context) ([]model.Template, error)
	NameTaken(ctx context.Context, name string, exceptID uint) (bool, error)
	Update(ctx context.Context, tmpl *model.Template) error
	Delete(ctx context.Context, id uint) error
}

type templateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) WithTx(tx *gorm.DB) TemplateRepository {
	return &templateRepository{db: tx}
}

func (r *templateRepository) Create(ctx context.Context, tmpl *model.Template) error {
	return r.db.WithContext(ctx).Create(tmpl).Error
}

func (r *templateRepository) FindByID(ctx context.Context, id uint) (*model.Template, error) {
	var tmpl model.Template
	if err := r.db.WithContext(ctx).First(&tmpl, id).Error; err != nil {
		return nil, err
	}
	return &tmpl, nil
}

func (r *templateRepository) FindAll(ctx context.Context) ([]model.Template, error) {
	var templates []model.Template
	err := r.db.WithContext(ctx).Order("name ASC").Find(&templates).Error
	return templates, err
}

// NameTaken reports whether another template (id != exceptID) uses name.
func (r *templateRepository) NameTaken(ctx context.Context, name string, exceptID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Template{}).
		Where("name = ? AND id <> ?", name, exceptID).
		Count(&count).Error
	return count > 0, err
}

func (r *templateRepository) Update(ctx context.Context, tmpl *model.Template) error {
	return r.db.WithContext(ctx).Model(&model.Template{}).Where("id = ?", tmpl.ID).Updates(map[string]interface{}{
		"name":           tmpl.Name,
		"correct_points": tmpl.Marking.CorrectPoints,
		"wrong_points":   tmpl.Marking.WrongPoints,
		"is_negative":    tmpl.Marking.IsNegative,
		"subjects_json":  tmpl.SubjectPresets,
	}).Error
}

func (r *templateRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Template{}, id).Error
}
