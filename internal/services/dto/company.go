package dto

import "jobstreet_backend/internal/models"

type CreateCompanyRequest struct {
	Name               string             `json:"name" validate:"required,min=2,max=200"`
	RegistrationNumber string             `json:"registration_number" validate:"required"`
	Location           string             `json:"location,omitempty"`
	Size               models.CompanySize `json:"size,omitempty" validate:"omitempty,oneof=startup small medium large enterprise"`
	Industry           string             `json:"industry,omitempty"`
	Description        string             `json:"description,omitempty"`
	LogoURL            string             `json:"logo_url,omitempty" validate:"omitempty,url"`
	FoundedYear        int                `json:"founded_year,omitempty" validate:"omitempty,gte=1800"`
	EmployeeCount      int                `json:"employee_count,omitempty" validate:"omitempty,gte=0"`
	Website            string             `json:"website,omitempty" validate:"omitempty,url"`
}

type UpdateCompanyRequest struct {
	Location      *string             `json:"location,omitempty"`
	Size          *models.CompanySize `json:"size,omitempty" validate:"omitempty,oneof=startup small medium large enterprise"`
	Industry      *string             `json:"industry,omitempty"`
	Description   *string             `json:"description,omitempty"`
	LogoURL       *string             `json:"logo_url,omitempty" validate:"omitempty,url"`
	FoundedYear   *int                `json:"founded_year,omitempty" validate:"omitempty,gte=1800"`
	EmployeeCount *int                `json:"employee_count,omitempty" validate:"omitempty,gte=0"`
	Website       *string             `json:"website,omitempty" validate:"omitempty,url"`
}

type CompanyListQuery struct {
	Search string `form:"search"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}
