package dto

import "jobstreet_backend/internal/models"

type ApplyRequest struct {
	JobID         uint   `json:"job_id" validate:"required"`
	ResumeVersion string `json:"resume_version,omitempty"`
	CoverLetter   string `json:"cover_letter,omitempty"`
}

type ApplicationListQuery struct {
	Status string `form:"status" validate:"omitempty,oneof=pending reviewed accepted rejected"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

type UpdateApplicationStatusRequest struct {
	Status          models.ApplicationStatus `json:"status" validate:"required,oneof=reviewed accepted rejected"`
	ReviewerComment string                   `json:"reviewer_comment,omitempty"`
}
