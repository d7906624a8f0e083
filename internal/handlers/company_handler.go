package handlers

import (
	"net/http"

	"jobstreet_backend/internal/middleware"
	"jobstreet_backend/internal/response"
	"jobstreet_backend/internal/services"
	"jobstreet_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	*BaseHandler
	companyService services.CompanyService
}

func NewCompanyHandler(base *BaseHandler, companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:    base,
		companyService: companyService,
	}
}

func (h *CompanyHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/companies")
	{
		public.GET("", h.ListCompanies)
		public.GET("/:id", h.GetCompany)
	}

	protected := r.Group("/companies")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", h.CreateCompany)
		protected.PUT("/:id", h.UpdateCompany)
	}
}

func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	var query dto.CompanyListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	companies, pagination, err := h.companyService.List(c.Request.Context(), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.SuccessList(c, http.StatusOK, gin.H{"companies": companies}, pagination)
}

func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	company, err := h.companyService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"company": company})
}

func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	company, err := h.companyService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"company": company})
}

func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCompanyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	company, err := h.companyService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"company": company})
}
