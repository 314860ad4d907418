package model

import "github.com/lshigami/Tally/internal/scoring"

// SubjectEntry is one subject's raw counts within a test.
type SubjectEntry struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	TestID     uint   `json:"test_id" gorm:"not null;index"`
	Name       string `json:"name" gorm:"column:subject_name;not null"`
	TotalQ     uint   `json:"total_q" gorm:"not null"`
	AttemptedQ uint   `json:"attempted_q" gorm:"not null"`
	CorrectQ   uint   `json:"correct_q" gorm:"not null"`
}

func (SubjectEntry) TableName() string { return "entries" }

func (e SubjectEntry) Counts() scoring.Counts {
	return scoring.Counts{Total: e.TotalQ, Attempted: e.AttemptedQ, Correct: e.CorrectQ}
}

// EntryCounts projects entries onto the aggregator input, keeping their order.
func EntryCounts(entries []SubjectEntry) []scoring.Counts {
	counts := make([]scoring.Counts, len(entries))
	for i, e := range entries {
		counts[i] = e.Counts()
	}
	return counts
}
