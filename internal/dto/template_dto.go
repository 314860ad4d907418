package dto

type TemplateSubjectDTO struct {
	Name         string `json:"name" binding:"required"`
	DefaultTotal uint   `json:"default_total"`
}

// TemplateRequestDTO is the body of CreateTemplate and UpdateTemplate.
type TemplateRequestDTO struct {
	Name string `json:"name" binding:"required"`
	MarkingDTO
	Subjects []TemplateSubjectDTO `json:"subjects" binding:"omitempty,dive"`
}

type TemplateDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	MarkingDTO
	Subjects []TemplateSubjectDTO `json:"subjects"`
}
