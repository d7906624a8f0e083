package handlers

import (
	"net/http"

	"jobstreet_backend/internal/middleware"
	"jobstreet_backend/internal/response"
	"jobstreet_backend/internal/services"
	"jobstreet_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	*BaseHandler
	interviewService services.InterviewService
}

func NewInterviewHandler(base *BaseHandler, interviewService services.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		BaseHandler:      base,
		interviewService: interviewService,
	}
}

func (h *InterviewHandler) RegisterRoutes(r *gin.RouterGroup) {
	interviews := r.Group("/interviews")
	interviews.Use(middleware.AuthMiddleware())
	{
		interviews.POST("", h.CreateInterview)
		interviews.GET("", h.ListInterviews)
		interviews.GET("/:id", h.GetInterview)
		interviews.PUT("/:id/status", h.UpdateInterviewStatus)
		interviews.PUT("/:id/result", h.UpdateInterviewResult)
	}
}

func (h *InterviewHandler) CreateInterview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateInterviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	interview, err := h.interviewService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"interview": interview})
}

func (h *InterviewHandler) ListInterviews(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.InterviewListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	interviews, pagination, err := h.interviewService.List(c.Request.Context(), userID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.SuccessList(c, http.StatusOK, gin.H{"interviews": interviews}, pagination)
}

func (h *InterviewHandler) GetInterview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	interview, err := h.interviewService.Get(c.Request.Context(), id, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"interview": interview})
}

func (h *InterviewHandler) UpdateInterviewStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateInterviewStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	interview, err := h.interviewService.UpdateStatus(c.Request.Context(), id, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"interview": interview})
}

func (h *InterviewHandler) UpdateInterviewResult(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateInterviewResultRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	interview, err := h.interviewService.UpdateResult(c.Request.Context(), id, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"interview": interview})
}
