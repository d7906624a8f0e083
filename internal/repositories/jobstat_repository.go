package repositories

import (
	"context"
	"errors"
	"time"

	"jobstreet_backend/internal/models"

	"gorm.io/gorm"
)

type JobStatRepository interface {
	FindByJobID(ctx context.Context, jobID uint) (*models.JobStat, error)
	// Refresh recomputes the stat row for one job from the source
	// tables inside a transaction.
	Refresh(ctx context.Context, jobID uint) (*models.JobStat, error)
	// RefreshAllActive recomputes stats for every active job. Used by
	// the background worker.
	RefreshAllActive(ctx context.Context) (int, error)
}

type JobStatRepositoryImpl struct {
	db *gorm.DB
}

func NewJobStatRepository(db *gorm.DB) JobStatRepository {
	return &JobStatRepositoryImpl{db: db}
}

func (r *JobStatRepositoryImpl) FindByJobID(ctx context.Context, jobID uint) (*models.JobStat, error) {
	var stat models.JobStat
	err := r.db.WithContext(ctx).Where("job_id = ?", jobID).First(&stat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &stat, nil
}

func (r *JobStatRepositoryImpl) Refresh(ctx context.Context, jobID uint) (*models.JobStat, error) {
	var stat *models.JobStat
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		stat, err = refreshOne(tx, jobID)
		return err
	})
	return stat, err
}

func (r *JobStatRepositoryImpl) RefreshAllActive(ctx context.Context) (int, error) {
	var jobIDs []uint
	err := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("status = ?", models.JobStatusActive).
		Pluck("id", &jobIDs).Error
	if err != nil {
		return 0, err
	}

	refreshed := 0
	for _, jobID := range jobIDs {
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			_, err := refreshOne(tx, jobID)
			return err
		})
		if err != nil {
			return refreshed, err
		}
		refreshed++
	}
	return refreshed, nil
}

func refreshOne(tx *gorm.DB, jobID uint) (*models.JobStat, error) {
	var job models.Job
	if err := tx.Select("id", "views").First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	var applications, bookmarks int64
	if err := tx.Model(&models.Application{}).Where("job_id = ?", jobID).Count(&applications).Error; err != nil {
		return nil, err
	}
	if err := tx.Model(&models.Bookmark{}).Where("job_id = ?", jobID).Count(&bookmarks).Error; err != nil {
		return nil, err
	}

	var stat models.JobStat
	err := tx.Where("job_id = ?", jobID).First(&stat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		stat = models.JobStat{JobID: jobID}
	} else if err != nil {
		return nil, err
	}

	stat.Views = job.Views
	stat.Applications = int(applications)
	stat.Bookmarks = int(bookmarks)
	stat.LastUpdated = time.Now()

	if err := tx.Save(&stat).Error; err != nil {
		return nil, err
	}
	return &stat, nil
}
