package model

import (
	"time"

	"gorm.io/datatypes"
)

// TemplateSubject is one preset subject row. The list is stored as a JSON
// column and never interpreted by the store.
type TemplateSubject struct {
	Name         string `json:"name"`
	DefaultTotal uint   `json:"default_total"`
}

type Template struct {
	ID             uint                                `gorm:"primarykey" json:"id"`
	Name           string                              `json:"name" gorm:"not null;uniqueIndex"`
	Marking        Marking                             `json:"marking" gorm:"embedded"`
	SubjectPresets datatypes.JSONSlice[TemplateSubject] `json:"subjects" gorm:"column:subjects_json;not null"`
	CreatedAt      time.Time                           `json:"created_at"`
	UpdatedAt      time.Time                           `json:"updated_at"`
}
