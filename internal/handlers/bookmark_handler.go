package handlers

import (
	"net/http"

	"jobstreet_backend/internal/middleware"
	"jobstreet_backend/internal/response"
	"jobstreet_backend/internal/services"
	"jobstreet_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BookmarkHandler struct {
	*BaseHandler
	bookmarkService services.BookmarkService
}

func NewBookmarkHandler(base *BaseHandler, bookmarkService services.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{
		BaseHandler:     base,
		bookmarkService: bookmarkService,
	}
}

func (h *BookmarkHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookmarks := r.Group("/bookmarks")
	bookmarks.Use(middleware.AuthMiddleware())
	{
		bookmarks.POST("", h.ToggleBookmark)
		bookmarks.GET("", h.ListBookmarks)
		bookmarks.GET("/status/:jobId", h.GetBookmarkStatus)
		bookmarks.PUT("/:id", h.UpdateBookmark)
	}
}

func (h *BookmarkHandler) ToggleBookmark(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ToggleBookmarkRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.bookmarkService.Toggle(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *BookmarkHandler) ListBookmarks(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.BookmarkListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	bookmarks, pagination, err := h.bookmarkService.List(c.Request.Context(), userID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.SuccessList(c, http.StatusOK, gin.H{"bookmarks": bookmarks}, pagination)
}

func (h *BookmarkHandler) GetBookmarkStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	jobID, ok := h.ParseParamUint(c, "jobId")
	if !ok {
		return
	}

	status, err := h.bookmarkService.Status(c.Request.Context(), userID, jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, status)
}

func (h *BookmarkHandler) UpdateBookmark(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBookmarkRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	bookmark, err := h.bookmarkService.Update(c.Request.Context(), id, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookmark": bookmark})
}
