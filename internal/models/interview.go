package models

import "time"

type Interview struct {
	BaseModel
	UserID        uint            `gorm:"not null;uniqueIndex:idx_interviews_user_job" json:"user_id"`
	JobID         uint            `gorm:"not null;uniqueIndex:idx_interviews_user_job" json:"job_id"`
	CompanyID     uint            `gorm:"not null;index" json:"company_id"`
	Status        InterviewStatus `gorm:"type:varchar(20);default:'scheduled'" json:"status"`
	Result        InterviewResult `gorm:"type:varchar(20);default:'pending'" json:"result"`
	InterviewDate time.Time       `gorm:"not null" json:"interview_date"`
	InterviewType InterviewType   `gorm:"type:varchar(20)" json:"interview_type"`
	Difficulty    int             `json:"difficulty,omitempty"` // 1..5, set with the result
	Process       string          `gorm:"type:text" json:"process,omitempty"`
	Question      string          `gorm:"type:text" json:"question,omitempty"`
	Experience    string          `gorm:"type:text" json:"experience,omitempty"`
	Duration      int             `json:"duration,omitempty"` // minutes

	// Relations
	User    *User    `gorm:"foreignKey:UserID" json:"-"`
	Job     *Job     `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}
