package repositories

import (
	"context"
	"errors"

	"jobstreet_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCompanyNotFound = errors.New("company not found")

type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	FindByID(ctx context.Context, id uint) (*models.Company, error)
	FindByIDWithJobs(ctx context.Context, id uint) (*models.Company, error)
	List(ctx context.Context, search string, page, limit int) ([]models.Company, int64, error)
	Update(ctx context.Context, company *models.Company) error
	ExistsByNameOrRegistration(ctx context.Context, name, registrationNumber string) (bool, error)
}

type CompanyRepositoryImpl struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &CompanyRepositoryImpl{db: db}
}

func (r *CompanyRepositoryImpl) Create(ctx context.Context, company *models.Company) error {
	err := r.db.WithContext(ctx).Create(company).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	return err
}

func (r *CompanyRepositoryImpl) FindByID(ctx context.Context, id uint) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).First(&company, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindByIDWithJobs(ctx context.Context, id uint) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).
		Preload("Jobs", "status = ?", models.JobStatusActive).
		First(&company, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) List(ctx context.Context, search string, page, limit int) ([]models.Company, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Company{}).
		Where("status = ?", models.CompanyStatusActive)

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name LIKE ? OR industry LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var companies []models.Company
	err := query.Order("name ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&companies).Error
	return companies, total, err
}

func (r *CompanyRepositoryImpl) Update(ctx context.Context, company *models.Company) error {
	err := r.db.WithContext(ctx).Save(company).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	return err
}

func (r *CompanyRepositoryImpl) ExistsByNameOrRegistration(ctx context.Context, name, registrationNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Company{}).
		Where("name = ? OR registration_number = ?", name, registrationNumber).
		Count(&count).Error
	return count > 0, err
}
