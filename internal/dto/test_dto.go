package dto

// SubjectEntryDTO carries one subject's raw counts. It is the body of
// AddSubjectEntry and UpdateSubjectEntry and an element of CreateTestDTO.
type SubjectEntryDTO struct {
	Name       string `json:"name" binding:"required"`
	TotalQ     uint   `json:"total_q"`
	AttemptedQ uint   `json:"attempted_q"`
	CorrectQ   uint   `json:"correct_q"`
}

// MarkingDTO is the marking configuration shared by tests and templates.
type MarkingDTO struct {
	CorrectPoints float64 `json:"correct_points"`
	WrongPoints   float64 `json:"wrong_points"`
	IsNegative    bool    `json:"is_negative"`
}

// CreateTestDTO creates a test together with its full initial subject list.
type CreateTestDTO struct {
	Date string  `json:"date" binding:"required"`
	Name *string `json:"name"`
	MarkingDTO
	Subjects []SubjectEntryDTO `json:"subjects" binding:"omitempty,dive"`
}

// UpdateTestConfigDTO replaces a test's date, name and marking configuration.
type UpdateTestConfigDTO struct {
	Date string  `json:"date" binding:"required"`
	Name *string `json:"name"`
	MarkingDTO
}

type CreatedResponse struct {
	ID uint `json:"id"`
}

type SubjectRawDTO struct {
	Total     uint `json:"total"`
	Attempted uint `json:"attempted"`
	Correct   uint `json:"correct"`
}

// SubjectStatsDTO is one subject of a history record; percentages are
// recomputed from Raw on every read.
type SubjectStatsDTO struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	AttemptsPct float64       `json:"attempts_pct"`
	AccuracyPct float64       `json:"accuracy_pct"`
	ScorePct    float64       `json:"score_pct"`
	Raw         SubjectRawDTO `json:"raw"`
}

// TestRecordDTO is a fully materialised test as returned by history.
type TestRecordDTO struct {
	ID               uint              `json:"id"`
	Date             string            `json:"date"`
	Name             *string           `json:"name"`
	MarkingDisplay   string            `json:"marking_display"`
	TotalScorePct    float64           `json:"total_score_pct"`
	TotalAccuracyPct float64           `json:"total_accuracy_pct"`
	Subjects         []SubjectStatsDTO `json:"subjects"`
}
