package service

import (
	"context"
	"errors"
	"strings"

	"github.com/lshigami/Tally/database"
	"github.com/lshigami/Tally/internal/apperr"
	"github.com/lshigami/Tally/internal/dto"
	"github.com/lshigami/Tally/internal/model"
	"github.com/lshigami/Tally/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// TemplateService stores named presets of marking configuration and subject
// lists used to prefill new tests.
type TemplateService interface {
	CreateTemplate(ctx context.Context, req dto.TemplateRequestDTO) (uint, error)
	UpdateTemplate(ctx context.Context, id uint, req dto.TemplateRequestDTO) error
	DeleteTemplate(ctx context.Context, id uint) error
	ListTemplates(ctx context.Context) ([]dto.TemplateDTO, error)
}

type templateService struct {
	db   *gorm.DB
	gate *database.Gate
	repo repository.TemplateRepository
}

func NewTemplateService(db *gorm.DB, gate *database.Gate, repo repository.TemplateRepository) TemplateService {
	return &templateService{db: db, gate: gate, repo: repo}
}

// inTx runs fn in the writer gate and one transaction. A unique index
// violation that slips past the NameTaken check is still reported as
// DuplicateName.
func (s *templateService) inTx(ctx context.Context, op, name string, fn func(ctx context.Context, repo repository.TemplateRepository) error) error {
	err := s.gate.Run(ctx, op, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(ctx, s.repo.WithTx(tx))
		})
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.DuplicateName(op, name)
	}
	return apperr.Storage(op, err)
}

func toTemplateModel(op string, req dto.TemplateRequestDTO) (model.Template, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return model.Template{}, apperr.InvalidArgument(op, "template name is required")
	}
	presets := make([]model.TemplateSubject, 0, len(req.Subjects))
	for _, sub := range req.Subjects {
		presets = append(presets, model.TemplateSubject{Name: sub.Name, DefaultTotal: sub.DefaultTotal})
	}
	return model.Template{
		Name:           name,
		Marking:        markingFromDTO(req.MarkingDTO),
		SubjectPresets: presets,
	}, nil
}

// CreateTemplate fails with DuplicateName when the name is taken; the
// existing template is left untouched.
func (s *templateService) CreateTemplate(ctx context.Context, req dto.TemplateRequestDTO) (uint, error) {
	const op = "template.CreateTemplate"

	tmpl, err := toTemplateModel(op, req)
	if err != nil {
		return 0, err
	}
	err = s.inTx(ctx, op, tmpl.Name, func(ctx context.Context, repo repository.TemplateRepository) error {
		taken, err := repo.NameTaken(ctx, tmpl.Name, 0)
		if err != nil {
			return err
		}
		if taken {
			return apperr.DuplicateName(op, tmpl.Name)
		}
		return repo.Create(ctx, &tmpl)
	})
	if err != nil {
		log.Error().Err(err).Str("name", tmpl.Name).Msg("Failed to create template")
		return 0, err
	}
	return tmpl.ID, nil
}

func (s *templateService) UpdateTemplate(ctx context.Context, id uint, req dto.TemplateRequestDTO) error {
	const op = "template.UpdateTemplate"

	tmpl, err := toTemplateModel(op, req)
	if err != nil {
		return err
	}
	tmpl.ID = id
	err = s.inTx(ctx, op, tmpl.Name, func(ctx context.Context, repo repository.TemplateRepository) error {
		if _, err := repo.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound(op, "template %d", id)
			}
			return err
		}
		taken, err := repo.NameTaken(ctx, tmpl.Name, id)
		if err != nil {
			return err
		}
		if taken {
			return apperr.DuplicateName(op, tmpl.Name)
		}
		return repo.Update(ctx, &tmpl)
	})
	if err != nil {
		log.Error().Err(err).Uint("templateID", id).Msg("Failed to update template")
	}
	return err
}

// DeleteTemplate is a no-op for a missing id.
func (s *templateService) DeleteTemplate(ctx context.Context, id uint) error {
	const op = "template.DeleteTemplate"

	err := s.inTx(ctx, op, "", func(ctx context.Context, repo repository.TemplateRepository) error {
		return repo.Delete(ctx, id)
	})
	if err != nil {
		log.Error().Err(err).Uint("templateID", id).Msg("Failed to delete template")
	}
	return err
}

// ListTemplates returns all templates ordered by name.
func (s *templateService) ListTemplates(ctx context.Context) ([]dto.TemplateDTO, error) {
	const op = "template.ListTemplates"

	var templates []model.Template
	err := s.gate.Run(ctx, op, func(ctx context.Context) error {
		var err error
		templates, err = s.repo.FindAll(ctx)
		return err
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to list templates")
		return nil, apperr.Storage(op, err)
	}

	out := make([]dto.TemplateDTO, 0, len(templates))
	for _, t := range templates {
		subjects := make([]dto.TemplateSubjectDTO, 0, len(t.SubjectPresets))
		for _, p := range t.SubjectPresets {
			subjects = append(subjects, dto.TemplateSubjectDTO{Name: p.Name, DefaultTotal: p.DefaultTotal})
		}
		out = append(out, dto.TemplateDTO{
			ID:         t.ID,
			Name:       t.Name,
			MarkingDTO: markingToDTO(t.Marking),
			Subjects:   subjects,
		})
	}
	return out, nil
}
