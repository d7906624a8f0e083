package dto

import "jobstreet_backend/internal/models"

type CreateSkillRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

type AttachJobSkillRequest struct {
	SkillID    uint              `json:"skill_id" validate:"required"`
	Level      models.SkillLevel `json:"level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced expert"`
	IsRequired *bool             `json:"is_required,omitempty"`
	Priority   int               `json:"priority,omitempty" validate:"omitempty,gte=0"`
}

type UpsertUserSkillRequest struct {
	SkillID           uint              `json:"skill_id" validate:"required"`
	Level             models.SkillLevel `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	YearsOfExperience float64           `json:"years_of_experience,omitempty" validate:"omitempty,gte=0"`
	IsMainSkill       bool              `json:"is_main_skill,omitempty"`
}
