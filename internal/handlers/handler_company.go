package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/gstnote/gstnote_backend/internal/core/ports/services"
	"github.com/gstnote/gstnote_backend/internal/dto"
	"github.com/gstnote/gstnote_backend/internal/middleware"
)

// companyHandler handles HTTP requests related to companies.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

func newCompanyHandler(cs portssvc.CompanySvcFacade) *companyHandler {
	return &companyHandler{companyService: cs}
}

// registerCompanyRoutes registers all company-related routes. Every read and
// write is pinned to the caller's own company; any other id reads as not
// found.
func registerCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvcFacade) {
	h := newCompanyHandler(companyService)

	companies := rg.Group("/companies")
	{
		companies.POST("", h.createCompany)
		companies.GET("", h.listCompanies)
		companies.GET("/:id", h.getCompany)
		companies.PUT("/:id", h.updateCompany)
	}
}

// createCompany godoc
// @Summary Create a company
// @Description Creates a bare company record. Signup (company plus admin user) goes through /auth/register instead.
// @Tags companies
// @Accept json
// @Produce json
// @Param company body dto.CreateCompanyRequest true "Company details"
// @Success 201 {object} dto.CompanyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create company request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create company")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCompanyResponse(company))
}

// ownCompanyID parses the path id and checks it against the caller's tenant.
// A mismatch reports not-found, never forbidden, so existence of other
// tenants is not confirmed.
func ownCompanyID(c *gin.Context) (int64, bool) {
	companyID, ok := companyScope(c)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id != companyID {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found"})
		return 0, false
	}
	return companyID, true
}

// listCompanies godoc
// @Summary List visible companies
// @Description Returns the companies visible to the caller (their own).
// @Tags companies
// @Produce json
// @Success 200 {array} dto.CompanyResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies [get]
func (h *companyHandler) listCompanies(c *gin.Context) {
	companyID, ok := companyScope(c)
	if !ok {
		return
	}

	company, err := h.companyService.GetCompany(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err, "Failed to list companies")
		return
	}
	c.JSON(http.StatusOK, []dto.CompanyResponse{dto.ToCompanyResponse(company)})
}

// getCompany godoc
// @Summary Get a company
// @Description Retrieves the caller's company by id.
// @Tags companies
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} dto.CompanyResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{id} [get]
func (h *companyHandler) getCompany(c *gin.Context) {
	companyID, ok := ownCompanyID(c)
	if !ok {
		return
	}

	company, err := h.companyService.GetCompany(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err, "Failed to retrieve company")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// updateCompany godoc
// @Summary Update a company
// @Description Applies a partial update to the caller's company.
// @Tags companies
// @Accept json
// @Produce json
// @Param id path int true "Company ID"
// @Param company body dto.UpdateCompanyRequest true "Fields to update"
// @Success 200 {object} dto.CompanyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{id} [put]
func (h *companyHandler) updateCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := ownCompanyID(c)
	if !ok {
		return
	}

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update company request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	company, err := h.companyService.UpdateCompany(c.Request.Context(), companyID, req)
	if err != nil {
		respondError(c, err, "Failed to update company")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}
