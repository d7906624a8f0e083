package handlers

import (
	"net/http"

	"jobstreet_backend/internal/middleware"
	"jobstreet_backend/internal/response"
	"jobstreet_backend/internal/services"
	"jobstreet_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService   services.JobService
	skillService services.SkillService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService, skillService services.SkillService) *JobHandler {
	return &JobHandler{
		BaseHandler:  base,
		jobService:   jobService,
		skillService: skillService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/jobs")
	{
		public.GET("", h.ListJobs)
		public.GET("/:id", h.GetJob)
		public.GET("/:id/stats", h.GetJobStats)
		public.GET("/:id/skills", h.ListJobSkills)
	}

	protected := r.Group("/jobs")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", h.CreateJob)
		protected.PUT("/:id", h.UpdateJob)
		protected.DELETE("/:id", h.DeleteJob)
		protected.POST("/:id/skills", h.AttachJobSkill)
	}
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	jobs, pagination, err := h.jobService.List(c.Request.Context(), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.SuccessList(c, http.StatusOK, gin.H{"jobs": jobs}, pagination)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	detail, err := h.jobService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, detail)
}

func (h *JobHandler) GetJobStats(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	stat, err := h.jobService.Stats(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stat})
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"job": job})
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"job": job})
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	if err := h.jobService.Delete(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, nil, "Job deleted")
}

func (h *JobHandler) AttachJobSkill(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	var req dto.AttachJobSkillRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	jobSkill, err := h.skillService.AttachToJob(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"job_skill": jobSkill})
}

func (h *JobHandler) ListJobSkills(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	jobSkills, err := h.skillService.ListByJob(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"skills": jobSkills})
}
