package services

import (
	"context"
	"errors"

	"jobstreet_backend/internal/logger"
	"jobstreet_backend/internal/models"
	"jobstreet_backend/internal/repositories"
	"jobstreet_backend/internal/response"
	"jobstreet_backend/internal/services/dto"
	"jobstreet_backend/pkg/apperrors"
)

type BookmarkService interface {
	Toggle(ctx context.Context, userID uint, req *dto.ToggleBookmarkRequest) (*dto.ToggleBookmarkResponse, error)
	List(ctx context.Context, userID uint, query *dto.BookmarkListQuery) ([]models.Bookmark, response.Pagination, error)
	Status(ctx context.Context, userID, jobID uint) (*dto.BookmarkStatusResponse, error)
	Update(ctx context.Context, id, userID uint, req *dto.UpdateBookmarkRequest) (*models.Bookmark, error)
}

type BookmarkServiceImpl struct {
	bookmarkRepo repositories.BookmarkRepository
	jobRepo      repositories.JobRepository
}

func NewBookmarkService(bookmarkRepo repositories.BookmarkRepository, jobRepo repositories.JobRepository) BookmarkService {
	return &BookmarkServiceImpl{bookmarkRepo: bookmarkRepo, jobRepo: jobRepo}
}

// Toggle creates the bookmark when absent and removes it when present.
func (s *BookmarkServiceImpl) Toggle(ctx context.Context, userID uint, req *dto.ToggleBookmarkRequest) (*dto.ToggleBookmarkResponse, error) {
	if _, err := s.jobRepo.FindByID(ctx, req.JobID); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	existing, err := s.bookmarkRepo.FindByUserAndJob(ctx, userID, req.JobID)
	if err == nil {
		if err := s.bookmarkRepo.Delete(ctx, existing.ID); err != nil && !errors.Is(err, repositories.ErrBookmarkNotFound) {
			return nil, apperrors.DatabaseError(err)
		}
		return &dto.ToggleBookmarkResponse{Bookmarked: false}, nil
	}
	if !errors.Is(err, repositories.ErrBookmarkNotFound) {
		return nil, apperrors.DatabaseError(err)
	}

	bookmark := &models.Bookmark{
		UserID: userID,
		JobID:  req.JobID,
		Note:   req.Note,
	}
	if req.Notification != nil {
		bookmark.Notification = *req.Notification
	}

	if err := s.bookmarkRepo.Create(ctx, bookmark); err != nil {
		// A concurrent toggle created the row first; collapse to the
		// "already present" branch and remove it.
		if errors.Is(err, repositories.ErrDuplicateKey) {
			if existing, ferr := s.bookmarkRepo.FindByUserAndJob(ctx, userID, req.JobID); ferr == nil {
				if derr := s.bookmarkRepo.Delete(ctx, existing.ID); derr != nil && !errors.Is(derr, repositories.ErrBookmarkNotFound) {
					return nil, apperrors.DatabaseError(derr)
				}
			}
			return &dto.ToggleBookmarkResponse{Bookmarked: false}, nil
		}
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "bookmark created", "bookmark_id", bookmark.ID, "job_id", req.JobID)
	return &dto.ToggleBookmarkResponse{Bookmarked: true, BookmarkID: &bookmark.ID}, nil
}

func (s *BookmarkServiceImpl) List(ctx context.Context, userID uint, query *dto.BookmarkListQuery) ([]models.Bookmark, response.Pagination, error) {
	page, limit := normalizePaging(query.Page, query.Limit)

	bookmarks, total, err := s.bookmarkRepo.ListByUser(ctx, userID, page, limit)
	if err != nil {
		return nil, response.Pagination{}, apperrors.DatabaseError(err)
	}

	return bookmarks, response.NewPagination(page, limit, total), nil
}

func (s *BookmarkServiceImpl) Status(ctx context.Context, userID, jobID uint) (*dto.BookmarkStatusResponse, error) {
	bookmark, err := s.bookmarkRepo.FindByUserAndJob(ctx, userID, jobID)
	if errors.Is(err, repositories.ErrBookmarkNotFound) {
		return &dto.BookmarkStatusResponse{Bookmarked: false}, nil
	}
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return &dto.BookmarkStatusResponse{
		Bookmarked:   true,
		BookmarkID:   &bookmark.ID,
		Note:         bookmark.Note,
		Notification: &bookmark.Notification,
	}, nil
}

// Update applies a partial update; omitted fields keep their values.
func (s *BookmarkServiceImpl) Update(ctx context.Context, id, userID uint, req *dto.UpdateBookmarkRequest) (*models.Bookmark, error) {
	bookmark, err := s.bookmarkRepo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrBookmarkNotFound) {
			return nil, apperrors.ErrBookmarkNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	if req.Note != nil {
		bookmark.Note = *req.Note
	}
	if req.Notification != nil {
		bookmark.Notification = *req.Notification
	}

	if err := s.bookmarkRepo.Update(ctx, bookmark); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return bookmark, nil
}
