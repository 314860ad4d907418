package model

import (
	"time"

	"github.com/lshigami/Tally/internal/scoring"
)

// Marking is the scoring configuration stored on tests and templates.
type Marking struct {
	CorrectPoints float64 `json:"correct_points" gorm:"column:correct_points;not null"`
	WrongPoints   float64 `json:"wrong_points" gorm:"column:wrong_points;not null"`
	IsNegative    bool    `json:"is_negative" gorm:"column:is_negative;not null"`
}

func (m Marking) Scheme() scoring.Marking {
	return scoring.Marking{CorrectPoints: m.CorrectPoints, WrongPoints: m.WrongPoints, Negative: m.IsNegative}
}

// Test is one exam attempt. ScorePct and AccuracyPct are a cached projection
// of Marking and Entries and are only written by the record service.
type Test struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Date        string         `json:"date" gorm:"not null;index"`
	Name        *string        `json:"name,omitempty"`
	Marking     Marking        `json:"marking" gorm:"embedded"`
	ScorePct    float64        `json:"score_pct" gorm:"column:score_pct;not null"`
	AccuracyPct float64        `json:"accuracy_pct" gorm:"column:accuracy_pct;not null"`
	Entries     []SubjectEntry `json:"entries,omitempty" gorm:"foreignKey:TestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
