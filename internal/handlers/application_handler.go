package handlers

import (
	"net/http"

	"jobstreet_backend/internal/middleware"
	"jobstreet_backend/internal/response"
	"jobstreet_backend/internal/services"
	"jobstreet_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	applications := r.Group("/applications")
	applications.Use(middleware.AuthMiddleware())
	{
		applications.POST("", h.Apply)
		applications.GET("", h.ListApplications)
		applications.GET("/:id", h.GetApplication)
		applications.DELETE("/:id", h.CancelApplication)
		applications.PUT("/:id/status", h.UpdateApplicationStatus)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.applicationService.Apply(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"application": application})
}

func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.ApplicationListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	applications, pagination, err := h.applicationService.List(c.Request.Context(), userID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.SuccessList(c, http.StatusOK, gin.H{"applications": applications}, pagination)
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	application, err := h.applicationService.Get(c.Request.Context(), id, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"application": application})
}

func (h *ApplicationHandler) CancelApplication(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	application, err := h.applicationService.Cancel(c.Request.Context(), id, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, gin.H{"application": application}, "Application cancelled")
}

func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.applicationService.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"application": application})
}
