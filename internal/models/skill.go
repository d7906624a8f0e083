package models

type Skill struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Category    string `json:"category,omitempty"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

type JobSkill struct {
	BaseModel
	JobID      uint       `gorm:"not null;uniqueIndex:idx_job_skills_job_skill" json:"job_id"`
	SkillID    uint       `gorm:"not null;uniqueIndex:idx_job_skills_job_skill" json:"skill_id"`
	Level      SkillLevel `gorm:"type:varchar(20);default:'intermediate'" json:"level"`
	IsRequired bool       `gorm:"default:true" json:"is_required"`
	Priority   int        `gorm:"default:0" json:"priority"`

	// Relations
	Skill *Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}

type UserSkill struct {
	BaseModel
	UserID            uint       `gorm:"not null;uniqueIndex:idx_user_skills_user_skill" json:"user_id"`
	SkillID           uint       `gorm:"not null;uniqueIndex:idx_user_skills_user_skill" json:"skill_id"`
	Level             SkillLevel `gorm:"type:varchar(20);default:'beginner'" json:"level"`
	YearsOfExperience float64    `gorm:"default:0" json:"years_of_experience"`
	IsMainSkill       bool       `gorm:"default:false" json:"is_main_skill"`

	// Relations
	Skill *Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}
