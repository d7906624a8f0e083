package models

import (
	"time"

	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	CompanyID       uint           `gorm:"not null;index" json:"company_id"`
	Title           string         `gorm:"not null" json:"title"`
	Description     string         `gorm:"type:text" json:"description,omitempty"`
	Requirements    string         `gorm:"type:text" json:"requirements,omitempty"`
	Location        string         `json:"location,omitempty"`
	EmploymentType  string         `gorm:"type:varchar(30)" json:"employment_type,omitempty"`
	ExperienceLevel string         `gorm:"type:varchar(30)" json:"experience_level,omitempty"`
	SalaryMin       int            `json:"salary_min,omitempty"`
	SalaryMax       int            `json:"salary_max,omitempty"`
	TechStack       datatypes.JSON `json:"tech_stack,omitempty"`
	Deadline        *time.Time     `json:"deadline,omitempty"`
	Status          JobStatus      `gorm:"type:varchar(20);default:'active';index" json:"status"`
	Views           int            `gorm:"default:0" json:"views"`

	// Relations
	Company      *Company      `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Applications []Application `gorm:"foreignKey:JobID" json:"-"`
	Bookmarks    []Bookmark    `gorm:"foreignKey:JobID" json:"-"`
	Interviews   []Interview   `gorm:"foreignKey:JobID" json:"-"`
	JobSkills    []JobSkill    `gorm:"foreignKey:JobID" json:"-"`
	Benefits     []Benefit     `gorm:"foreignKey:JobID" json:"benefits,omitempty"`
	Salary       *Salary       `gorm:"foreignKey:JobID" json:"salary,omitempty"`
	Stat         *JobStat      `gorm:"foreignKey:JobID" json:"-"`
}

// JobStat is a derived per-job counter row, refreshed by the stats worker
// and on demand. Eventually consistent with the source tables.
type JobStat struct {
	BaseModel
	JobID        uint      `gorm:"uniqueIndex;not null" json:"job_id"`
	Views        int       `gorm:"default:0" json:"views"`
	Applications int       `gorm:"default:0" json:"applications"`
	Bookmarks    int       `gorm:"default:0" json:"bookmarks"`
	LastUpdated  time.Time `json:"last_updated"`
}

type Benefit struct {
	BaseModel
	JobID       uint   `gorm:"not null;index" json:"job_id"`
	Name        string `gorm:"not null" json:"name"`
	Category    string `json:"category,omitempty"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

type Salary struct {
	BaseModel
	JobID      uint       `gorm:"uniqueIndex;not null" json:"job_id"`
	Amount     int        `json:"amount,omitempty"`
	Year       int        `json:"year,omitempty"`
	Position   string     `json:"position,omitempty"`
	Experience string     `json:"experience,omitempty"`
	MinSalary  int        `json:"min_salary,omitempty"`
	MaxSalary  int        `json:"max_salary,omitempty"`
	Currency   string     `gorm:"type:varchar(10);default:'KRW'" json:"currency"`
	SalaryType SalaryType `gorm:"type:varchar(20);default:'yearly'" json:"salary_type"`
	Negotiable bool       `gorm:"default:false" json:"negotiable"`
}
