package repositories

import (
	"context"
	"errors"

	"jobstreet_backend/internal/models"

	"gorm.io/gorm"
)

var ErrBookmarkNotFound = errors.New("bookmark not found")

type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *models.Bookmark) error
	FindByIDAndUser(ctx context.Context, id, userID uint) (*models.Bookmark, error)
	FindByUserAndJob(ctx context.Context, userID, jobID uint) (*models.Bookmark, error)
	ListByUser(ctx context.Context, userID uint, page, limit int) ([]models.Bookmark, int64, error)
	Update(ctx context.Context, bookmark *models.Bookmark) error
	Delete(ctx context.Context, id uint) error
	CountByJob(ctx context.Context, jobID uint) (int64, error)
}

type BookmarkRepositoryImpl struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &BookmarkRepositoryImpl{db: db}
}

func (r *BookmarkRepositoryImpl) Create(ctx context.Context, bookmark *models.Bookmark) error {
	err := r.db.WithContext(ctx).Create(bookmark).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	return err
}

func (r *BookmarkRepositoryImpl) FindByIDAndUser(ctx context.Context, id, userID uint) (*models.Bookmark, error) {
	var bookmark models.Bookmark
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&bookmark).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookmarkNotFound
	}
	if err != nil {
		return nil, err
	}
	return &bookmark, nil
}

func (r *BookmarkRepositoryImpl) FindByUserAndJob(ctx context.Context, userID, jobID uint) (*models.Bookmark, error) {
	var bookmark models.Bookmark
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		First(&bookmark).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookmarkNotFound
	}
	if err != nil {
		return nil, err
	}
	return &bookmark, nil
}

func (r *BookmarkRepositoryImpl) ListByUser(ctx context.Context, userID uint, page, limit int) ([]models.Bookmark, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Bookmark{}).
		Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookmarks []models.Bookmark
	err := query.Preload("Job").
		Preload("Job.Company").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&bookmarks).Error
	return bookmarks, total, err
}

func (r *BookmarkRepositoryImpl) Update(ctx context.Context, bookmark *models.Bookmark) error {
	return r.db.WithContext(ctx).Save(bookmark).Error
}

func (r *BookmarkRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Bookmark{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookmarkNotFound
	}
	return nil
}

func (r *BookmarkRepositoryImpl) CountByJob(ctx context.Context, jobID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Bookmark{}).
		Where("job_id = ?", jobID).
		Count(&count).Error
	return count, err
}
