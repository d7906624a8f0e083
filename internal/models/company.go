package models

type Company struct {
	BaseModel
	Name               string        `gorm:"uniqueIndex;not null" json:"name"`
	RegistrationNumber string        `gorm:"uniqueIndex;not null" json:"registration_number"`
	Location           string        `json:"location,omitempty"`
	Size               CompanySize   `gorm:"type:varchar(20)" json:"size,omitempty"`
	Industry           string        `json:"industry,omitempty"`
	Description        string        `gorm:"type:text" json:"description,omitempty"`
	LogoURL            string        `json:"logo_url,omitempty"`
	FoundedYear        int           `json:"founded_year,omitempty"`
	EmployeeCount      int           `json:"employee_count,omitempty"`
	Website            string        `json:"website,omitempty"`
	Status             CompanyStatus `gorm:"type:varchar(20);default:'active'" json:"status"`

	// Relations
	Jobs []Job `gorm:"foreignKey:CompanyID" json:"jobs,omitempty"`
}
