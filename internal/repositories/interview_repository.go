package repositories

import (
	"context"
	"errors"

	"jobstreet_backend/internal/models"

	"gorm.io/gorm"
)

var ErrInterviewNotFound = errors.New("interview not found")

type InterviewRepository interface {
	Create(ctx context.Context, interview *models.Interview) error
	FindByIDAndUser(ctx context.Context, id, userID uint) (*models.Interview, error)
	ExistsByUserAndJob(ctx context.Context, userID, jobID uint) (bool, error)
	ListByUser(ctx context.Context, userID uint, status models.InterviewStatus, result models.InterviewResult, page, limit int) ([]models.Interview, int64, error)
	Update(ctx context.Context, interview *models.Interview) error
}

type InterviewRepositoryImpl struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &InterviewRepositoryImpl{db: db}
}

func (r *InterviewRepositoryImpl) Create(ctx context.Context, interview *models.Interview) error {
	err := r.db.WithContext(ctx).Create(interview).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	return err
}

func (r *InterviewRepositoryImpl) FindByIDAndUser(ctx context.Context, id, userID uint) (*models.Interview, error) {
	var interview models.Interview
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Company").
		Where("id = ? AND user_id = ?", id, userID).
		First(&interview).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInterviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *InterviewRepositoryImpl) ExistsByUserAndJob(ctx context.Context, userID, jobID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Interview{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error
	return count > 0, err
}

func (r *InterviewRepositoryImpl) ListByUser(ctx context.Context, userID uint, status models.InterviewStatus, result models.InterviewResult, page, limit int) ([]models.Interview, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Interview{}).
		Where("user_id = ?", userID)

	if status != "" {
		query = query.Where("status = ?", status)
	}
	if result != "" {
		query = query.Where("result = ?", result)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var interviews []models.Interview
	err := query.Preload("Job").
		Preload("Company").
		Order("interview_date ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&interviews).Error
	return interviews, total, err
}

func (r *InterviewRepositoryImpl) Update(ctx context.Context, interview *models.Interview) error {
	return r.db.WithContext(ctx).Save(interview).Error
}
