package dto

import (
	"time"

	"jobstreet_backend/internal/models"
)

type CreateInterviewRequest struct {
	JobID         uint                 `json:"job_id" validate:"required"`
	CompanyID     uint                 `json:"company_id" validate:"required"`
	InterviewDate time.Time            `json:"interview_date" validate:"required"`
	InterviewType models.InterviewType `json:"interview_type" validate:"required,oneof=online offline phone"`
	Process       string               `json:"process,omitempty"`
	Question      string               `json:"question,omitempty"`
	Duration      int                  `json:"duration,omitempty" validate:"omitempty,gte=0"`
}

type InterviewListQuery struct {
	Status string `form:"status" validate:"omitempty,oneof=scheduled completed canceled no_show"`
	Result string `form:"result" validate:"omitempty,oneof=pass fail pending"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

type UpdateInterviewStatusRequest struct {
	Status models.InterviewStatus `json:"status" validate:"required,oneof=completed canceled no_show"`
}

type UpdateInterviewResultRequest struct {
	Result     models.InterviewResult `json:"result" validate:"required,oneof=pass fail pending"`
	Difficulty *int                   `json:"difficulty,omitempty" validate:"omitempty,gte=1,lte=5"`
	Experience string                 `json:"experience,omitempty"`
}
