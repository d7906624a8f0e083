package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobstreet_backend/internal/cache"
	"jobstreet_backend/internal/logger"
	"jobstreet_backend/internal/models"
	"jobstreet_backend/internal/repositories"
	"jobstreet_backend/internal/response"
	"jobstreet_backend/internal/services/dto"
	"jobstreet_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
	relatedJobsLimit = 5

	jobListCachePrefix = "jobs:list:"
)

type JobService interface {
	List(ctx context.Context, query *dto.JobListQuery) ([]models.Job, response.Pagination, error)
	Get(ctx context.Context, id uint) (*dto.JobDetailResponse, error)
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	Update(ctx context.Context, id uint, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context, id uint) (*models.JobStat, error)
}

type JobServiceImpl struct {
	jobRepo     repositories.JobRepository
	companyRepo repositories.CompanyRepository
	statRepo    repositories.JobStatRepository
	cache       *cache.Cache
}

func NewJobService(
	jobRepo repositories.JobRepository,
	companyRepo repositories.CompanyRepository,
	statRepo repositories.JobStatRepository,
	c *cache.Cache,
) JobService {
	return &JobServiceImpl{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		statRepo:    statRepo,
		cache:       c,
	}
}

// normalizePaging clamps page/limit to sane values: page >= 1, limit
// default 20, cap 100.
func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

type cachedJobList struct {
	Jobs       []models.Job        `json:"jobs"`
	Pagination response.Pagination `json:"pagination"`
}

func jobListCacheKey(f repositories.JobFilter) string {
	var sb strings.Builder
	sb.WriteString(jobListCachePrefix)
	fmt.Fprintf(&sb, "s=%s|l=%s|e=%s|t=%s|et=%s",
		f.Search, f.Location, f.Experience,
		strings.Join(f.TechStack, ","), f.EmploymentType)
	if f.SalaryMin != nil {
		fmt.Fprintf(&sb, "|smin=%d", *f.SalaryMin)
	}
	if f.SalaryMax != nil {
		fmt.Fprintf(&sb, "|smax=%d", *f.SalaryMax)
	}
	fmt.Fprintf(&sb, "|p=%d|n=%d|sb=%s|so=%s", f.Page, f.Limit, f.SortBy, f.SortOrder)
	return sb.String()
}

func (s *JobServiceImpl) List(ctx context.Context, query *dto.JobListQuery) ([]models.Job, response.Pagination, error) {
	page, limit := normalizePaging(query.Page, query.Limit)

	filter := repositories.JobFilter{
		Search:         query.Search,
		Location:       query.Location,
		Experience:     query.Experience,
		SalaryMin:      query.SalaryMin,
		SalaryMax:      query.SalaryMax,
		EmploymentType: query.EmploymentType,
		TechStack:      query.TechStack,
		Page:           page,
		Limit:          limit,
		SortBy:         query.SortBy,
		SortOrder:      query.SortOrder,
	}

	key := jobListCacheKey(filter)
	var cached cachedJobList
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached.Jobs, cached.Pagination, nil
	}

	jobs, total, err := s.jobRepo.List(ctx, filter)
	if err != nil {
		return nil, response.Pagination{}, apperrors.DatabaseError(err)
	}

	pagination := response.NewPagination(page, limit, total)

	if err := s.cache.SetJSON(ctx, key, cachedJobList{Jobs: jobs, Pagination: pagination}); err != nil {
		logger.CtxWarn(ctx, "job list cache write failed", "error", err.Error())
	}

	return jobs, pagination, nil
}

func (s *JobServiceImpl) Get(ctx context.Context, id uint) (*dto.JobDetailResponse, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	if err := s.jobRepo.IncrementViews(ctx, id); err != nil {
		logger.CtxWithError(ctx, "failed to increment job views", err, "job_id", id)
	} else {
		job.Views++
	}

	related, err := s.jobRepo.FindRelated(ctx, job, relatedJobsLimit)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return &dto.JobDetailResponse{Job: job, RelatedJobs: related}, nil
}

func (s *JobServiceImpl) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	if req.Deadline != nil && !req.Deadline.After(time.Now()) {
		return nil, apperrors.ErrInvalidDeadline
	}

	if _, err := s.companyRepo.FindByID(ctx, req.CompanyID); err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	techStack, err := marshalTechStack(req.TechStack)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	job := &models.Job{
		CompanyID:       req.CompanyID,
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Location:        req.Location,
		EmploymentType:  req.EmploymentType,
		ExperienceLevel: req.ExperienceLevel,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		TechStack:       techStack,
		Deadline:        req.Deadline,
		Status:          models.JobStatusActive,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.invalidateListCache(ctx)
	logger.CtxInfo(ctx, "job created", "job_id", job.ID, "company_id", job.CompanyID)
	return job, nil
}

func (s *JobServiceImpl) Update(ctx context.Context, id uint, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	if req.Deadline != nil && !req.Deadline.After(time.Now()) {
		return nil, apperrors.ErrInvalidDeadline
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.EmploymentType != nil {
		job.EmploymentType = *req.EmploymentType
	}
	if req.ExperienceLevel != nil {
		job.ExperienceLevel = *req.ExperienceLevel
	}
	if req.SalaryMin != nil {
		job.SalaryMin = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = *req.SalaryMax
	}
	if req.TechStack != nil {
		techStack, err := marshalTechStack(req.TechStack)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		job.TechStack = techStack
	}
	if req.Deadline != nil {
		job.Deadline = req.Deadline
	}
	if req.Status != nil {
		job.Status = *req.Status
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.invalidateListCache(ctx)
	return job, nil
}

func (s *JobServiceImpl) Delete(ctx context.Context, id uint) error {
	if err := s.jobRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.DatabaseError(err)
	}
	s.invalidateListCache(ctx)
	logger.CtxInfo(ctx, "job deleted", "job_id", id)
	return nil
}

// Stats refreshes the derived counters on read so clients always see a
// value no older than this request.
func (s *JobServiceImpl) Stats(ctx context.Context, id uint) (*models.JobStat, error) {
	stat, err := s.statRepo.Refresh(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	return stat, nil
}

func (s *JobServiceImpl) invalidateListCache(ctx context.Context) {
	if err := s.cache.DeleteByPattern(ctx, jobListCachePrefix+"*"); err != nil {
		logger.CtxWarn(ctx, "job list cache invalidation failed", "error", err.Error())
	}
}

func marshalTechStack(stack []string) (datatypes.JSON, error) {
	if stack == nil {
		return nil, nil
	}
	b, err := json.Marshal(stack)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
