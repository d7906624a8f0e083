package repositories

import (
	"context"
	"errors"

	"jobstreet_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSkillNotFound = errors.New("skill not found")

type SkillRepository interface {
	Create(ctx context.Context, skill *models.Skill) error
	FindByID(ctx context.Context, id uint) (*models.Skill, error)
	List(ctx context.Context, category string) ([]models.Skill, error)

	AttachToJob(ctx context.Context, jobSkill *models.JobSkill) error
	ListByJob(ctx context.Context, jobID uint) ([]models.JobSkill, error)

	UpsertUserSkill(ctx context.Context, userSkill *models.UserSkill) error
	ListByUser(ctx context.Context, userID uint) ([]models.UserSkill, error)
	DeleteUserSkill(ctx context.Context, userID, skillID uint) error
}

type SkillRepositoryImpl struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &SkillRepositoryImpl{db: db}
}

func (r *SkillRepositoryImpl) Create(ctx context.Context, skill *models.Skill) error {
	err := r.db.WithContext(ctx).Create(skill).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	return err
}

func (r *SkillRepositoryImpl) FindByID(ctx context.Context, id uint) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.WithContext(ctx).First(&skill, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSkillNotFound
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepositoryImpl) List(ctx context.Context, category string) ([]models.Skill, error) {
	query := r.db.WithContext(ctx).Model(&models.Skill{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	var skills []models.Skill
	err := query.Order("name ASC").Find(&skills).Error
	return skills, err
}

func (r *SkillRepositoryImpl) AttachToJob(ctx context.Context, jobSkill *models.JobSkill) error {
	err := r.db.WithContext(ctx).Create(jobSkill).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	return err
}

func (r *SkillRepositoryImpl) ListByJob(ctx context.Context, jobID uint) ([]models.JobSkill, error) {
	var jobSkills []models.JobSkill
	err := r.db.WithContext(ctx).
		Preload("Skill").
		Where("job_id = ?", jobID).
		Order("priority DESC").
		Find(&jobSkills).Error
	return jobSkills, err
}

// UpsertUserSkill creates the row or updates level, years and main flag
// when the (user, skill) pair already exists.
func (r *SkillRepositoryImpl) UpsertUserSkill(ctx context.Context, userSkill *models.UserSkill) error {
	var existing models.UserSkill
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND skill_id = ?", userSkill.UserID, userSkill.SkillID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(userSkill).Error
	}
	if err != nil {
		return err
	}

	existing.Level = userSkill.Level
	existing.YearsOfExperience = userSkill.YearsOfExperience
	existing.IsMainSkill = userSkill.IsMainSkill
	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return err
	}
	*userSkill = existing
	return nil
}

func (r *SkillRepositoryImpl) ListByUser(ctx context.Context, userID uint) ([]models.UserSkill, error) {
	var userSkills []models.UserSkill
	err := r.db.WithContext(ctx).
		Preload("Skill").
		Where("user_id = ?", userID).
		Order("is_main_skill DESC, years_of_experience DESC").
		Find(&userSkills).Error
	return userSkills, err
}

func (r *SkillRepositoryImpl) DeleteUserSkill(ctx context.Context, userID, skillID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND skill_id = ?", userID, skillID).
		Delete(&models.UserSkill{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSkillNotFound
	}
	return nil
}
