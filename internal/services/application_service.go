package services

import (
	"context"
	"errors"
	"time"

	"jobstreet_backend/internal/email"
	"jobstreet_backend/internal/logger"
	"jobstreet_backend/internal/models"
	"jobstreet_backend/internal/repositories"
	"jobstreet_backend/internal/response"
	"jobstreet_backend/internal/services/dto"
	"jobstreet_backend/pkg/apperrors"
)

// cancelComment marks an application the applicant withdrew. The row
// keeps status=rejected so a re-apply stays blocked by the unique index.
const cancelComment = "cancelled by applicant"

type ApplicationService interface {
	Apply(ctx context.Context, userID uint, req *dto.ApplyRequest) (*models.Application, error)
	List(ctx context.Context, userID uint, query *dto.ApplicationListQuery) ([]models.Application, response.Pagination, error)
	Get(ctx context.Context, id, userID uint) (*models.Application, error)
	Cancel(ctx context.Context, id, userID uint) (*models.Application, error)
	UpdateStatus(ctx context.Context, id uint, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	userRepo        repositories.UserRepository
	emailProvider   email.Provider
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
		emailProvider:   emailProvider,
	}
}

func (s *ApplicationServiceImpl) Apply(ctx context.Context, userID uint, req *dto.ApplyRequest) (*models.Application, error) {
	if _, err := s.jobRepo.FindByID(ctx, req.JobID); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	if _, err := s.applicationRepo.FindByUserAndJob(ctx, userID, req.JobID); err == nil {
		return nil, apperrors.ErrAlreadyApplied
	} else if !errors.Is(err, repositories.ErrApplicationNotFound) {
		return nil, apperrors.DatabaseError(err)
	}

	application := &models.Application{
		UserID:        userID,
		JobID:         req.JobID,
		Status:        models.ApplicationStatusPending,
		ResumeVersion: req.ResumeVersion,
		CoverLetter:   req.CoverLetter,
		AppliedAt:     time.Now(),
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		// Two concurrent applies race past the pre-check; the unique
		// index decides and both callers see the same error.
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "application created", "application_id", application.ID, "job_id", req.JobID)
	return application, nil
}

func (s *ApplicationServiceImpl) List(ctx context.Context, userID uint, query *dto.ApplicationListQuery) ([]models.Application, response.Pagination, error) {
	page, limit := normalizePaging(query.Page, query.Limit)

	applications, total, err := s.applicationRepo.ListByUser(ctx, userID, models.ApplicationStatus(query.Status), page, limit)
	if err != nil {
		return nil, response.Pagination{}, apperrors.DatabaseError(err)
	}

	return applications, response.NewPagination(page, limit, total), nil
}

func (s *ApplicationServiceImpl) Get(ctx context.Context, id, userID uint) (*models.Application, error) {
	application, err := s.applicationRepo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	return application, nil
}

// Cancel withdraws a pending application. The record is kept with
// status=rejected and a system comment rather than deleted.
func (s *ApplicationServiceImpl) Cancel(ctx context.Context, id, userID uint) (*models.Application, error) {
	application, err := s.applicationRepo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	if application.Status != models.ApplicationStatusPending {
		return nil, apperrors.ErrInvalidState("application", "Only pending applications can be cancelled")
	}

	now := time.Now()
	application.Status = models.ApplicationStatusRejected
	application.ReviewedAt = &now
	application.ReviewerComment = cancelComment

	if err := s.applicationRepo.Update(ctx, application); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "application cancelled", "application_id", id)
	return application, nil
}

func (s *ApplicationServiceImpl) UpdateStatus(ctx context.Context, id uint, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	application, err := s.applicationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	if !models.IsValidApplicationTransition(application.Status, req.Status) {
		return nil, apperrors.ErrInvalidState("application",
			"Cannot change status from "+string(application.Status)+" to "+string(req.Status))
	}

	now := time.Now()
	application.Status = req.Status
	application.ReviewedAt = &now
	application.ReviewerComment = req.ReviewerComment

	if err := s.applicationRepo.Update(ctx, application); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.notifyStatusChange(ctx, application)
	return application, nil
}

// notifyStatusChange mails the applicant asynchronously, best effort.
func (s *ApplicationServiceImpl) notifyStatusChange(ctx context.Context, application *models.Application) {
	user, err := s.userRepo.FindByID(ctx, application.UserID)
	if err != nil {
		logger.CtxWithError(ctx, "failed to load applicant for notification", err, "application_id", application.ID)
		return
	}

	jobTitle := ""
	if application.Job != nil {
		jobTitle = application.Job.Title
	}

	go func(to, title, status string) {
		if err := s.emailProvider.SendApplicationStatus(to, title, status); err != nil {
			logger.WithError(err).Warn("application status email failed", "to", to)
		}
	}(user.Email, jobTitle, string(application.Status))
}
