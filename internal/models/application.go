package models

import "time"

type Application struct {
	BaseModel
	UserID          uint              `gorm:"not null;uniqueIndex:idx_applications_user_job" json:"user_id"`
	JobID           uint              `gorm:"not null;uniqueIndex:idx_applications_user_job" json:"job_id"`
	Status          ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	ResumeVersion   string            `json:"resume_version,omitempty"`
	CoverLetter     string            `gorm:"type:text" json:"cover_letter,omitempty"`
	AppliedAt       time.Time         `json:"applied_at"`
	ReviewedAt      *time.Time        `json:"reviewed_at,omitempty"`
	ReviewerComment string            `gorm:"type:text" json:"reviewer_comment,omitempty"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"-"`
	Job  *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
}
