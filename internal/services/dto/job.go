package dto

import (
	"time"

	"jobstreet_backend/internal/models"
)

type CreateJobRequest struct {
	CompanyID       uint       `json:"company_id" validate:"required"`
	Title           string     `json:"title" validate:"required,min=2,max=200"`
	Description     string     `json:"description,omitempty"`
	Requirements    string     `json:"requirements,omitempty"`
	Location        string     `json:"location,omitempty"`
	EmploymentType  string     `json:"employment_type,omitempty" validate:"omitempty,oneof=full-time part-time contract internship"`
	ExperienceLevel string     `json:"experience_level,omitempty"`
	SalaryMin       int        `json:"salary_min,omitempty" validate:"omitempty,gte=0"`
	SalaryMax       int        `json:"salary_max,omitempty" validate:"omitempty,gte=0"`
	TechStack       []string   `json:"tech_stack,omitempty"`
	Deadline        *time.Time `json:"deadline,omitempty"`
}

type UpdateJobRequest struct {
	Title           *string           `json:"title,omitempty" validate:"omitempty,min=2,max=200"`
	Description     *string           `json:"description,omitempty"`
	Requirements    *string           `json:"requirements,omitempty"`
	Location        *string           `json:"location,omitempty"`
	EmploymentType  *string           `json:"employment_type,omitempty" validate:"omitempty,oneof=full-time part-time contract internship"`
	ExperienceLevel *string           `json:"experience_level,omitempty"`
	SalaryMin       *int              `json:"salary_min,omitempty" validate:"omitempty,gte=0"`
	SalaryMax       *int              `json:"salary_max,omitempty" validate:"omitempty,gte=0"`
	TechStack       []string          `json:"tech_stack,omitempty"`
	Deadline        *time.Time        `json:"deadline,omitempty"`
	Status          *models.JobStatus `json:"status,omitempty" validate:"omitempty,oneof=active closed"`
}

type JobListQuery struct {
	Search         string   `form:"search"`
	Location       string   `form:"location"`
	Experience     string   `form:"experience"`
	SalaryMin      *int     `form:"salary_min"`
	SalaryMax      *int     `form:"salary_max"`
	EmploymentType string   `form:"employment_type"`
	TechStack      []string `form:"tech_stack"`
	Page           int      `form:"page"`
	Limit          int      `form:"limit"`
	SortBy         string   `form:"sortBy"`
	SortOrder      string   `form:"sortOrder"`
}

type JobDetailResponse struct {
	Job         *models.Job  `json:"job"`
	RelatedJobs []models.Job `json:"related_jobs"`
}
