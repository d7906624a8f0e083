package repositories

import (
	"context"
	"errors"

	"jobstreet_backend/internal/models"

	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	FindByID(ctx context.Context, id uint) (*models.Application, error)
	FindByIDAndUser(ctx context.Context, id, userID uint) (*models.Application, error)
	FindByUserAndJob(ctx context.Context, userID, jobID uint) (*models.Application, error)
	ListByUser(ctx context.Context, userID uint, status models.ApplicationStatus, page, limit int) ([]models.Application, int64, error)
	Update(ctx context.Context, application *models.Application) error
	CountByJob(ctx context.Context, jobID uint) (int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(ctx context.Context, application *models.Application) error {
	err := r.db.WithContext(ctx).Create(application).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	return err
}

func (r *ApplicationRepositoryImpl) FindByID(ctx context.Context, id uint) (*models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Job.Company").
		First(&application, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByIDAndUser(ctx context.Context, id, userID uint) (*models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Job.Company").
		Where("id = ? AND user_id = ?", id, userID).
		First(&application).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByUserAndJob(ctx context.Context, userID, jobID uint) (*models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		First(&application).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) ListByUser(ctx context.Context, userID uint, status models.ApplicationStatus, page, limit int) ([]models.Application, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("user_id = ?", userID)

	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var applications []models.Application
	err := query.Preload("Job").
		Preload("Job.Company").
		Order("applied_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&applications).Error
	return applications, total, err
}

func (r *ApplicationRepositoryImpl) Update(ctx context.Context, application *models.Application) error {
	return r.db.WithContext(ctx).Save(application).Error
}

func (r *ApplicationRepositoryImpl) CountByJob(ctx context.Context, jobID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("job_id = ?", jobID).
		Count(&count).Error
	return count, err
}
