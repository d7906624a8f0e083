package services

import (
	"context"
	"errors"

	"jobstreet_backend/internal/models"
	"jobstreet_backend/internal/repositories"
	"jobstreet_backend/internal/services/dto"
	"jobstreet_backend/pkg/apperrors"
)

type SkillService interface {
	List(ctx context.Context, category string) ([]models.Skill, error)
	Create(ctx context.Context, req *dto.CreateSkillRequest) (*models.Skill, error)

	AttachToJob(ctx context.Context, jobID uint, req *dto.AttachJobSkillRequest) (*models.JobSkill, error)
	ListByJob(ctx context.Context, jobID uint) ([]models.JobSkill, error)

	UpsertUserSkill(ctx context.Context, userID uint, req *dto.UpsertUserSkillRequest) (*models.UserSkill, error)
	ListByUser(ctx context.Context, userID uint) ([]models.UserSkill, error)
	DeleteUserSkill(ctx context.Context, userID, skillID uint) error
}

type SkillServiceImpl struct {
	skillRepo repositories.SkillRepository
	jobRepo   repositories.JobRepository
}

func NewSkillService(skillRepo repositories.SkillRepository, jobRepo repositories.JobRepository) SkillService {
	return &SkillServiceImpl{skillRepo: skillRepo, jobRepo: jobRepo}
}

func (s *SkillServiceImpl) List(ctx context.Context, category string) ([]models.Skill, error) {
	skills, err := s.skillRepo.List(ctx, category)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return skills, nil
}

func (s *SkillServiceImpl) Create(ctx context.Context, req *dto.CreateSkillRequest) (*models.Skill, error) {
	skill := &models.Skill{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
	}

	if err := s.skillRepo.Create(ctx, skill); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperrors.ErrSkillAlreadyExists
		}
		return nil, apperrors.DatabaseError(err)
	}
	return skill, nil
}

func (s *SkillServiceImpl) AttachToJob(ctx context.Context, jobID uint, req *dto.AttachJobSkillRequest) (*models.JobSkill, error) {
	if _, err := s.jobRepo.FindByID(ctx, jobID); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	if _, err := s.skillRepo.FindByID(ctx, req.SkillID); err != nil {
		if errors.Is(err, repositories.ErrSkillNotFound) {
			return nil, apperrors.ErrSkillNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	jobSkill := &models.JobSkill{
		JobID:    jobID,
		SkillID:  req.SkillID,
		Priority: req.Priority,
	}
	if req.Level != "" {
		jobSkill.Level = req.Level
	} else {
		jobSkill.Level = models.SkillLevelIntermediate
	}
	if req.IsRequired != nil {
		jobSkill.IsRequired = *req.IsRequired
	} else {
		jobSkill.IsRequired = true
	}

	if err := s.skillRepo.AttachToJob(ctx, jobSkill); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperrors.NewBadRequestError("Skill is already attached to this job")
		}
		return nil, apperrors.DatabaseError(err)
	}
	return jobSkill, nil
}

func (s *SkillServiceImpl) ListByJob(ctx context.Context, jobID uint) ([]models.JobSkill, error) {
	if _, err := s.jobRepo.FindByID(ctx, jobID); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	jobSkills, err := s.skillRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return jobSkills, nil
}

func (s *SkillServiceImpl) UpsertUserSkill(ctx context.Context, userID uint, req *dto.UpsertUserSkillRequest) (*models.UserSkill, error) {
	if _, err := s.skillRepo.FindByID(ctx, req.SkillID); err != nil {
		if errors.Is(err, repositories.ErrSkillNotFound) {
			return nil, apperrors.ErrSkillNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	userSkill := &models.UserSkill{
		UserID:            userID,
		SkillID:           req.SkillID,
		Level:             req.Level,
		YearsOfExperience: req.YearsOfExperience,
		IsMainSkill:       req.IsMainSkill,
	}

	if err := s.skillRepo.UpsertUserSkill(ctx, userSkill); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return userSkill, nil
}

func (s *SkillServiceImpl) ListByUser(ctx context.Context, userID uint) ([]models.UserSkill, error) {
	userSkills, err := s.skillRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return userSkills, nil
}

func (s *SkillServiceImpl) DeleteUserSkill(ctx context.Context, userID, skillID uint) error {
	if err := s.skillRepo.DeleteUserSkill(ctx, userID, skillID); err != nil {
		if errors.Is(err, repositories.ErrSkillNotFound) {
			return apperrors.ErrSkillNotFound
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}
