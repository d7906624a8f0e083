package handlers

import (
	"net/http"

	"jobstreet_backend/internal/middleware"
	"jobstreet_backend/internal/response"
	"jobstreet_backend/internal/services"
	"jobstreet_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	*BaseHandler
	skillService services.SkillService
}

func NewSkillHandler(base *BaseHandler, skillService services.SkillService) *SkillHandler {
	return &SkillHandler{
		BaseHandler:  base,
		skillService: skillService,
	}
}

func (h *SkillHandler) RegisterRoutes(r *gin.RouterGroup) {
	skills := r.Group("/skills")
	{
		skills.GET("", h.ListSkills)
	}

	protected := r.Group("/skills")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", h.CreateSkill)
	}

	userSkills := r.Group("/users/me/skills")
	userSkills.Use(middleware.AuthMiddleware())
	{
		userSkills.GET("", h.ListUserSkills)
		userSkills.PUT("", h.UpsertUserSkill)
		userSkills.DELETE("/:skillId", h.DeleteUserSkill)
	}
}

func (h *SkillHandler) ListSkills(c *gin.Context) {
	category := c.Query("category")

	skills, err := h.skillService.List(c.Request.Context(), category)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"skills": skills})
}

func (h *SkillHandler) CreateSkill(c *gin.Context) {
	var req dto.CreateSkillRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	skill, err := h.skillService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"skill": skill})
}

func (h *SkillHandler) ListUserSkills(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	userSkills, err := h.skillService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"skills": userSkills})
}

func (h *SkillHandler) UpsertUserSkill(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpsertUserSkillRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	userSkill, err := h.skillService.UpsertUserSkill(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"skill": userSkill})
}

func (h *SkillHandler) DeleteUserSkill(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	skillID, ok := h.ParseParamUint(c, "skillId")
	if !ok {
		return
	}

	if err := h.skillService.DeleteUserSkill(c.Request.Context(), userID, skillID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, nil, "Skill removed")
}
