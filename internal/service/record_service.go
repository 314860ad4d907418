package service

import (
	"context"
	"errors"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Tally/database"
	"github.com/lshigami/Tally/internal/apperr"
	"github.com/lshigami/Tally/internal/dto"
	"github.com/lshigami/Tally/internal/model"
	"github.com/lshigami/Tally/internal/repository"
	"github.com/lshigami/Tally/internal/scoring"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// RecordService stores tests and their subject entries. Every mutation runs
// in one transaction that also refreshes the test's cached score_pct and
// accuracy_pct, so no caller ever sees them out of step with the entries.
type RecordService interface {
	CreateTest(ctx context.Context, req dto.CreateTestDTO) (uint, error)
	UpdateTestConfig(ctx context.Context, id uint, req dto.UpdateTestConfigDTO) error
	DeleteTest(ctx context.Context, id uint) error
	AddSubjectEntry(ctx context.Context, testID uint, req dto.SubjectEntryDTO) (uint, error)
	UpdateSubjectEntry(ctx context.Context, id uint, req dto.SubjectEntryDTO) error
	DeleteSubjectEntry(ctx context.Context, id uint) error
	GetTest(ctx context.Context, id uint) (*dto.TestRecordDTO, error)
	ListHistory(ctx context.Context) ([]dto.TestRecordDTO, error)
}

type recordService struct {
	db        *gorm.DB
	gate      *database.Gate
	testRepo  repository.TestRepository
	entryRepo repository.SubjectEntryRepository
}

func NewRecordService(
	db *gorm.DB,
	gate *database.Gate,
	testRepo repository.TestRepository,
	entryRepo repository.SubjectEntryRepository,
) RecordService {
	return &recordService{db: db, gate: gate, testRepo: testRepo, entryRepo: entryRepo}
}

// inTx runs fn inside the writer gate and a single transaction. Any error
// rolls the whole unit back.
func (s *recordService) inTx(ctx context.Context, op string, fn func(ctx context.Context, tests repository.TestRepository, entries repository.SubjectEntryRepository) error) error {
	err := s.gate.Run(ctx, op, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(ctx, s.testRepo.WithTx(tx), s.entryRepo.WithTx(tx))
		})
	})
	return apperr.Storage(op, err)
}

// refresh re-reads a test's marking and entries and rewrites its cached
// percentages.
func refresh(ctx context.Context, op string, tests repository.TestRepository, entries repository.SubjectEntryRepository, testID uint) error {
	test, err := tests.FindByID(ctx, testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound(op, "test %d", testID)
		}
		return err
	}
	rows, err := entries.FindByTestID(ctx, testID)
	if err != nil {
		return err
	}
	sum := scoring.Aggregate(test.Marking.Scheme(), model.EntryCounts(rows))
	return tests.UpdateDerived(ctx, testID, sum.ScorePct, sum.AccuracyPct)
}

// CreateTest derives the grand percentages from the supplied subjects and
// inserts the test and its entries in one step.
func (s *recordService) CreateTest(ctx context.Context, req dto.CreateTestDTO) (uint, error) {
	const op = "record.CreateTest"

	var entries []model.SubjectEntry
	if len(req.Subjects) > 0 {
		if err := copier.Copy(&entries, &req.Subjects); err != nil {
			log.Error().Err(err).Msg("Failed to copy subject DTOs to entry models")
			return 0, apperr.InvalidArgument(op, "subjects: %v", err)
		}
	}

	test := model.Test{
		Date:    req.Date,
		Name:    req.Name,
		Marking: markingFromDTO(req.MarkingDTO),
		Entries: entries,
	}
	sum := scoring.Aggregate(test.Marking.Scheme(), model.EntryCounts(entries))
	test.ScorePct = sum.ScorePct
	test.AccuracyPct = sum.AccuracyPct

	err := s.inTx(ctx, op, func(ctx context.Context, tests repository.TestRepository, _ repository.SubjectEntryRepository) error {
		return tests.Create(ctx, &test)
	})
	if err != nil {
		log.Error().Err(err).Str("date", req.Date).Int("subjects", len(entries)).Msg("Failed to create test")
		return 0, err
	}
	log.Info().Uint("testID", test.ID).Int("subjects", len(entries)).Msg("Test created")
	return test.ID, nil
}

func (s *recordService) UpdateTestConfig(ctx context.Context, id uint, req dto.UpdateTestConfigDTO) error {
	const op = "record.UpdateTestConfig"

	err := s.inTx(ctx, op, func(ctx context.Context, tests repository.TestRepository, entries repository.SubjectEntryRepository) error {
		n, err := tests.UpdateConfig(ctx, id, req.Date, req.Name, markingFromDTO(req.MarkingDTO))
		if err != nil {
			return err
		}
		if n == 0 {
			return apperr.NotFound(op, "test %d", id)
		}
		return refresh(ctx, op, tests, entries, id)
	})
	if err != nil {
		log.Error().Err(err).Uint("testID", id).Msg("Failed to update test config")
	}
	return err
}

// DeleteTest removes the test and all its entries. A missing id is not an
// error.
func (s *recordService) DeleteTest(ctx context.Context, id uint) error {
	const op = "record.DeleteTest"

	var deleted int64
	err := s.inTx(ctx, op, func(ctx context.Context, tests repository.TestRepository, _ repository.SubjectEntryRepository) error {
		var err error
		deleted, err = tests.Delete(ctx, id)
		return err
	})
	if err != nil {
		log.Error().Err(err).Uint("testID", id).Msg("Failed to delete test")
		return err
	}
	if deleted == 0 {
		log.Debug().Uint("testID", id).Msg("DeleteTest: no such test, nothing to do")
	}
	return nil
}

func (s *recordService) AddSubjectEntry(ctx context.Context, testID uint, req dto.SubjectEntryDTO) (uint, error) {
	const op = "record.AddSubjectEntry"

	var entry model.SubjectEntry
	if err := copier.Copy(&entry, &req); err != nil {
		return 0, apperr.InvalidArgument(op, "subject: %v", err)
	}
	entry.TestID = testID

	err := s.inTx(ctx, op, func(ctx context.Context, tests repository.TestRepository, entries repository.SubjectEntryRepository) error {
		// parent must exist
		if _, err := tests.FindByID(ctx, testID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound(op, "test %d", testID)
			}
			return err
		}
		if err := entries.Create(ctx, &entry); err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return apperr.NotFound(op, "test %d", testID)
			}
			return err
		}
		return refresh(ctx, op, tests, entries, testID)
	})
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("Failed to add subject entry")
		return 0, err
	}
	return entry.ID, nil
}

func (s *recordService) UpdateSubjectEntry(ctx context.Context, id uint, req dto.SubjectEntryDTO) error {
	const op = "record.UpdateSubjectEntry"

	err := s.inTx(ctx, op, func(ctx context.Context, tests repository.TestRepository, entries repository.SubjectEntryRepository) error {
		existing, err := findEntry(ctx, op, entries, id)
		if err != nil {
			return err
		}
		if err := copier.Copy(existing, &req); err != nil {
			return apperr.InvalidArgument(op, "subject: %v", err)
		}
		if err := entries.Update(ctx, existing); err != nil {
			return err
		}
		return refresh(ctx, op, tests, entries, existing.TestID)
	})
	if err != nil {
		log.Error().Err(err).Uint("entryID", id).Msg("Failed to update subject entry")
	}
	return err
}

func (s *recordService) DeleteSubjectEntry(ctx context.Context, id uint) error {
	const op = "record.DeleteSubjectEntry"

	err := s.inTx(ctx, op, func(ctx context.Context, tests repository.TestRepository, entries repository.SubjectEntryRepository) error {
		existing, err := findEntry(ctx, op, entries, id)
		if err != nil {
			return err
		}
		if err := entries.Delete(ctx, id); err != nil {
			return err
		}
		return refresh(ctx, op, tests, entries, existing.TestID)
	})
	if err != nil {
		log.Error().Err(err).Uint("entryID", id).Msg("Failed to delete subject entry")
	}
	return err
}

func findEntry(ctx context.Context, op string, entries repository.SubjectEntryRepository, id uint) (*model.SubjectEntry, error) {
	entry, err := entries.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(op, "subject entry %d", id)
		}
		return nil, err
	}
	return entry, nil
}

func (s *recordService) GetTest(ctx context.Context, id uint) (*dto.TestRecordDTO, error) {
	const op = "record.GetTest"

	var test *model.Test
	err := s.gate.Run(ctx, op, func(ctx context.Context) error {
		var err error
		test, err = s.testRepo.FindByIDWithEntries(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound(op, "test %d", id)
		}
		return err
	})
	if err != nil {
		return nil, apperr.Storage(op, err)
	}
	rec := toRecord(*test)
	return &rec, nil
}

// ListHistory returns every test, newest first. Subject percentages are
// recomputed from the stored counts; only the grand percentages come from
// the cached columns.
func (s *recordService) ListHistory(ctx context.Context) ([]dto.TestRecordDTO, error) {
	const op = "record.ListHistory"

	var tests []model.Test
	err := s.gate.Run(ctx, op, func(ctx context.Context) error {
		var err error
		tests, err = s.testRepo.FindAllWithEntries(ctx)
		return err
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to load history")
		return nil, apperr.Storage(op, err)
	}

	records := make([]dto.TestRecordDTO, 0, len(tests))
	for _, t := range tests {
		records = append(records, toRecord(t))
	}
	return records, nil
}

func toRecord(t model.Test) dto.TestRecordDTO {
	scheme := t.Marking.Scheme()
	sum := scoring.Aggregate(scheme, model.EntryCounts(t.Entries))

	subjects := make([]dto.SubjectStatsDTO, len(t.Entries))
	for i, e := range t.Entries {
		st := sum.Subjects[i]
		subjects[i] = dto.SubjectStatsDTO{
			ID:          e.ID,
			Name:        e.Name,
			AttemptsPct: st.AttemptsPct,
			AccuracyPct: st.AccuracyPct,
			ScorePct:    st.ScorePct,
			Raw:         dto.SubjectRawDTO{Total: e.TotalQ, Attempted: e.AttemptedQ, Correct: e.CorrectQ},
		}
	}
	return dto.TestRecordDTO{
		ID:               t.ID,
		Date:             t.Date,
		Name:             t.Name,
		MarkingDisplay:   scheme.Display(),
		TotalScorePct:    t.ScorePct,
		TotalAccuracyPct: t.AccuracyPct,
		Subjects:         subjects,
	}
}

func markingFromDTO(m dto.MarkingDTO) model.Marking {
	return model.Marking{CorrectPoints: m.CorrectPoints, WrongPoints: m.WrongPoints, IsNegative: m.IsNegative}
}

func markingToDTO(m model.Marking) dto.MarkingDTO {
	return dto.MarkingDTO{CorrectPoints: m.CorrectPoints, WrongPoints: m.WrongPoints, IsNegative: m.IsNegative}
}
