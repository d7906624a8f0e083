package repositories

import (
	"context"
	"errors"
	"strings"

	"jobstreet_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter collects the query parameters of the job listing. Filters
// combine conjunctively; zero values are skipped.
type JobFilter struct {
	Search         string
	Location       string
	Experience     string
	SalaryMin      *int
	SalaryMax      *int
	EmploymentType string
	TechStack      []string
	Page           int
	Limit          int
	SortBy         string
	SortOrder      string
}

// jobSortColumns is the allow-list for sortBy. Anything else falls back
// to created_at DESC.
var jobSortColumns = map[string]string{
	"created_at": "created_at",
	"deadline":   "deadline",
	"views":      "views",
	"salary_min": "salary_min",
	"salary_max": "salary_max",
	"title":      "title",
}

type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	FindByID(ctx context.Context, id uint) (*models.Job, error)
	List(ctx context.Context, filter JobFilter) ([]models.Job, int64, error)
	FindRelated(ctx context.Context, job *models.Job, limit int) ([]models.Job, error)
	Update(ctx context.Context, job *models.Job) error
	Delete(ctx context.Context, id uint) error
	IncrementViews(ctx context.Context, id uint) error
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Benefits").
		Preload("Salary").
		First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) List(ctx context.Context, filter JobFilter) ([]models.Job, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("status = ?", models.JobStatusActive)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"title LIKE ? OR description LIKE ? OR requirements LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.Location != "" {
		query = query.Where("location LIKE ?", "%"+filter.Location+"%")
	}
	if filter.Experience != "" {
		query = query.Where("experience_level LIKE ?", "%"+filter.Experience+"%")
	}
	if filter.SalaryMin != nil {
		query = query.Where("salary_min >= ?", *filter.SalaryMin)
	}
	if filter.SalaryMax != nil {
		query = query.Where("salary_max <= ?", *filter.SalaryMax)
	}
	if filter.EmploymentType != "" {
		query = query.Where("employment_type = ?", filter.EmploymentType)
	}
	if len(filter.TechStack) > 0 {
		// Set overlap: a job matches when its JSON tech stack mentions
		// any of the requested technologies.
		var clauses []string
		var args []interface{}
		for _, tech := range filter.TechStack {
			clauses = append(clauses, "tech_stack LIKE ?")
			args = append(args, `%"`+tech+`"%`)
		}
		query = query.Where(strings.Join(clauses, " OR "), args...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := jobSortColumns[filter.SortBy]
	order := "DESC"
	if !ok {
		column = "created_at"
	} else if strings.EqualFold(filter.SortOrder, "asc") {
		order = "ASC"
	}

	var jobs []models.Job
	err := query.Preload("Company").
		Order(column + " " + order).
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&jobs).Error
	return jobs, total, err
}

// FindRelated returns active jobs sharing the company or the experience
// level, excluding the job itself.
func (r *JobRepositoryImpl) FindRelated(ctx context.Context, job *models.Job, limit int) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Where("id <> ? AND status = ?", job.ID, models.JobStatusActive).
		Where("company_id = ? OR experience_level = ?", job.CompanyID, job.ExperienceLevel).
		Order("created_at DESC").
		Limit(limit).
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) Update(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

// Delete removes the job and its dependent rows in one transaction.
func (r *JobRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, dependent := range []interface{}{
			&models.Application{},
			&models.Bookmark{},
			&models.Interview{},
			&models.JobSkill{},
			&models.Benefit{},
			&models.Salary{},
			&models.JobStat{},
		} {
			if err := tx.Where("job_id = ?", id).Delete(dependent).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&models.Job{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobNotFound
		}
		return nil
	})
}

// IncrementViews bumps the counter in SQL so concurrent reads never
// lose an increment.
func (r *JobRepositoryImpl) IncrementViews(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.Job{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}
