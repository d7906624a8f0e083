package services

import (
	"context"
	"errors"

	"jobstreet_backend/internal/logger"
	"jobstreet_backend/internal/models"
	"jobstreet_backend/internal/repositories"
	"jobstreet_backend/internal/response"
	"jobstreet_backend/internal/services/dto"
	"jobstreet_backend/pkg/apperrors"
)

type CompanyService interface {
	List(ctx context.Context, query *dto.CompanyListQuery) ([]models.Company, response.Pagination, error)
	Get(ctx context.Context, id uint) (*models.Company, error)
	Create(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error)
	Update(ctx context.Context, id uint, req *dto.UpdateCompanyRequest) (*models.Company, error)
}

type CompanyServiceImpl struct {
	companyRepo repositories.CompanyRepository
}

func NewCompanyService(companyRepo repositories.CompanyRepository) CompanyService {
	return &CompanyServiceImpl{companyRepo: companyRepo}
}

func (s *CompanyServiceImpl) List(ctx context.Context, query *dto.CompanyListQuery) ([]models.Company, response.Pagination, error) {
	page, limit := normalizePaging(query.Page, query.Limit)

	companies, total, err := s.companyRepo.List(ctx, query.Search, page, limit)
	if err != nil {
		return nil, response.Pagination{}, apperrors.DatabaseError(err)
	}

	return companies, response.NewPagination(page, limit, total), nil
}

func (s *CompanyServiceImpl) Get(ctx context.Context, id uint) (*models.Company, error) {
	company, err := s.companyRepo.FindByIDWithJobs(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	return company, nil
}

func (s *CompanyServiceImpl) Create(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error) {
	exists, err := s.companyRepo.ExistsByNameOrRegistration(ctx, req.Name, req.RegistrationNumber)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if exists {
		return nil, apperrors.ErrCompanyAlreadyExists
	}

	company := &models.Company{
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		Location:           req.Location,
		Size:               req.Size,
		Industry:           req.Industry,
		Description:        req.Description,
		LogoURL:            req.LogoURL,
		FoundedYear:        req.FoundedYear,
		EmployeeCount:      req.EmployeeCount,
		Website:            req.Website,
		Status:             models.CompanyStatusActive,
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperrors.ErrCompanyAlreadyExists
		}
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "company created", "company_id", company.ID, "name", company.Name)
	return company, nil
}

func (s *CompanyServiceImpl) Update(ctx context.Context, id uint, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	if req.Location != nil {
		company.Location = *req.Location
	}
	if req.Size != nil {
		company.Size = *req.Size
	}
	if req.Industry != nil {
		company.Industry = *req.Industry
	}
	if req.Description != nil {
		company.Description = *req.Description
	}
	if req.LogoURL != nil {
		company.LogoURL = *req.LogoURL
	}
	if req.FoundedYear != nil {
		company.FoundedYear = *req.FoundedYear
	}
	if req.EmployeeCount != nil {
		company.EmployeeCount = *req.EmployeeCount
	}
	if req.Website != nil {
		company.Website = *req.Website
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return company, nil
}
