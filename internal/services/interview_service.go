package services

import (
	"context"
	"errors"
	"time"

	"jobstreet_backend/internal/logger"
	"jobstreet_backend/internal/models"
	"jobstreet_backend/internal/repositories"
	"jobstreet_backend/internal/response"
	"jobstreet_backend/internal/services/dto"
	"jobstreet_backend/pkg/apperrors"
)

type InterviewService interface {
	Create(ctx context.Context, userID uint, req *dto.CreateInterviewRequest) (*models.Interview, error)
	List(ctx context.Context, userID uint, query *dto.InterviewListQuery) ([]models.Interview, response.Pagination, error)
	Get(ctx context.Context, id, userID uint) (*models.Interview, error)
	UpdateStatus(ctx context.Context, id, userID uint, req *dto.UpdateInterviewStatusRequest) (*models.Interview, error)
	UpdateResult(ctx context.Context, id, userID uint, req *dto.UpdateInterviewResultRequest) (*models.Interview, error)
}

type InterviewServiceImpl struct {
	interviewRepo repositories.InterviewRepository
	jobRepo       repositories.JobRepository
	companyRepo   repositories.CompanyRepository
}

func NewInterviewService(
	interviewRepo repositories.InterviewRepository,
	jobRepo repositories.JobRepository,
	companyRepo repositories.CompanyRepository,
) InterviewService {
	return &InterviewServiceImpl{
		interviewRepo: interviewRepo,
		jobRepo:       jobRepo,
		companyRepo:   companyRepo,
	}
}

func (s *InterviewServiceImpl) Create(ctx context.Context, userID uint, req *dto.CreateInterviewRequest) (*models.Interview, error) {
	if !req.InterviewDate.After(time.Now()) {
		return nil, apperrors.ErrInvalidInterviewDate
	}

	if _, err := s.jobRepo.FindByID(ctx, req.JobID); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	if _, err := s.companyRepo.FindByID(ctx, req.CompanyID); err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	exists, err := s.interviewRepo.ExistsByUserAndJob(ctx, userID, req.JobID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateInterview
	}

	interview := &models.Interview{
		UserID:        userID,
		JobID:         req.JobID,
		CompanyID:     req.CompanyID,
		Status:        models.InterviewStatusScheduled,
		Result:        models.InterviewResultPending,
		InterviewDate: req.InterviewDate,
		InterviewType: req.InterviewType,
		Process:       req.Process,
		Question:      req.Question,
		Duration:      req.Duration,
	}

	if err := s.interviewRepo.Create(ctx, interview); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperrors.ErrDuplicateInterview
		}
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "interview scheduled", "interview_id", interview.ID, "job_id", req.JobID)
	return interview, nil
}

func (s *InterviewServiceImpl) List(ctx context.Context, userID uint, query *dto.InterviewListQuery) ([]models.Interview, response.Pagination, error) {
	page, limit := normalizePaging(query.Page, query.Limit)

	interviews, total, err := s.interviewRepo.ListByUser(ctx, userID,
		models.InterviewStatus(query.Status), models.InterviewResult(query.Result), page, limit)
	if err != nil {
		return nil, response.Pagination{}, apperrors.DatabaseError(err)
	}

	return interviews, response.NewPagination(page, limit, total), nil
}

func (s *InterviewServiceImpl) Get(ctx context.Context, id, userID uint) (*models.Interview, error) {
	interview, err := s.interviewRepo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrInterviewNotFound) {
			return nil, apperrors.ErrInterviewNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	return interview, nil
}

func (s *InterviewServiceImpl) UpdateStatus(ctx context.Context, id, userID uint, req *dto.UpdateInterviewStatusRequest) (*models.Interview, error) {
	interview, err := s.interviewRepo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrInterviewNotFound) {
			return nil, apperrors.ErrInterviewNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	if !models.IsValidInterviewTransition(interview.Status, req.Status) {
		return nil, apperrors.ErrInvalidState("interview",
			"Cannot change status from "+string(interview.Status)+" to "+string(req.Status))
	}

	interview.Status = req.Status
	if err := s.interviewRepo.Update(ctx, interview); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return interview, nil
}

// UpdateResult records the outcome. Only completed interviews carry a
// result.
func (s *InterviewServiceImpl) UpdateResult(ctx context.Context, id, userID uint, req *dto.UpdateInterviewResultRequest) (*models.Interview, error) {
	interview, err := s.interviewRepo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrInterviewNotFound) {
			return nil, apperrors.ErrInterviewNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	if interview.Status != models.InterviewStatusCompleted {
		return nil, apperrors.ErrInvalidState("interview", "Result can only be set on a completed interview")
	}

	interview.Result = req.Result
	if req.Difficulty != nil {
		interview.Difficulty = *req.Difficulty
	}
	if req.Experience != "" {
		interview.Experience = req.Experience
	}

	if err := s.interviewRepo.Update(ctx, interview); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return interview, nil
}
