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

// vendorHandler handles HTTP requests related to vendors.
type vendorHandler struct {
	vendorService portssvc.VendorSvcFacade
}

func newVendorHandler(vs portssvc.VendorSvcFacade) *vendorHandler {
	return &vendorHandler{vendorService: vs}
}

// registerVendorRoutes registers all vendor-related routes.
func registerVendorRoutes(rg *gin.RouterGroup, vendorService portssvc.VendorSvcFacade) {
	h := newVendorHandler(vendorService)

	vendors := rg.Group("/vendors")
	{
		vendors.POST("", h.createVendor)
		vendors.GET("", h.listVendors)
		vendors.GET("/:id", h.getVendor)
		vendors.PUT("/:id", h.updateVendor)
		vendors.DELETE("/:id", h.deleteVendor)
	}
}

// vendorIDParam parses the numeric vendor id from the path. A non-numeric id
// cannot name any vendor, so it reads as not found.
func vendorIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found"})
		return 0, false
	}
	return id, true
}

// createVendor godoc
// @Summary Create a vendor
// @Description Creates a vendor in the caller's company, allocating its VDR code.
// @Tags vendors
// @Accept json
// @Produce json
// @Param vendor body dto.CreateVendorRequest true "Vendor details"
// @Success 201 {object} dto.CreateVendorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vendors [post]
func (h *vendorHandler) createVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyScope(c)
	if !ok {
		return
	}

	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create vendor request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), companyID, req)
	if err != nil {
		respondError(c, err, "Failed to create vendor")
		return
	}
	c.JSON(http.StatusCreated, dto.CreateVendorResponse{
		Ok:         true,
		VendorID:   vendor.VendorID,
		VendorCode: vendor.Profile.VendorCode,
	})
}

// listVendors godoc
// @Summary List vendors
// @Description Retrieves all vendors of the caller's company.
// @Tags vendors
// @Produce json
// @Success 200 {array} dto.VendorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vendors [get]
func (h *vendorHandler) listVendors(c *gin.Context) {
	companyID, ok := companyScope(c)
	if !ok {
		return
	}

	vendors, err := h.vendorService.ListVendors(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err, "Failed to list vendors")
		return
	}
	c.JSON(http.StatusOK, dto.ToVendorResponses(vendors))
}

// getVendor godoc
// @Summary Get a vendor
// @Description Retrieves a vendor within the caller's company.
// @Tags vendors
// @Produce json
// @Param id path int true "Vendor ID"
// @Success 200 {object} dto.VendorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vendors/{id} [get]
func (h *vendorHandler) getVendor(c *gin.Context) {
	companyID, ok := companyScope(c)
	if !ok {
		return
	}
	vendorID, ok := vendorIDParam(c)
	if !ok {
		return
	}

	vendor, err := h.vendorService.GetVendorByID(c.Request.Context(), companyID, vendorID)
	if err != nil {
		respondError(c, err, "Failed to retrieve vendor")
		return
	}
	c.JSON(http.StatusOK, dto.ToVendorResponse(vendor))
}

// updateVendor godoc
// @Summary Update a vendor
// @Description Applies a partial update; the stored vendor code always survives.
// @Tags vendors
// @Accept json
// @Produce json
// @Param id path int true "Vendor ID"
// @Param vendor body dto.UpdateVendorRequest true "Fields to update"
// @Success 200 {object} dto.VendorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vendors/{id} [put]
func (h *vendorHandler) updateVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyScope(c)
	if !ok {
		return
	}
	vendorID, ok := vendorIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update vendor request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	vendor, err := h.vendorService.UpdateVendor(c.Request.Context(), companyID, vendorID, req)
	if err != nil {
		respondError(c, err, "Failed to update vendor")
		return
	}
	c.JSON(http.StatusOK, dto.ToVendorResponse(vendor))
}

// deleteVendor godoc
// @Summary Delete a vendor
// @Description Removes a vendor within the caller's company.
// @Tags vendors
// @Produce json
// @Param id path int true "Vendor ID"
// @Success 200 {object} dto.OkResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vendors/{id} [delete]
func (h *vendorHandler) deleteVendor(c *gin.Context) {
	companyID, ok := companyScope(c)
	if !ok {
		return
	}
	vendorID, ok := vendorIDParam(c)
	if !ok {
		return
	}

	if err := h.vendorService.DeleteVendor(c.Request.Context(), companyID, vendorID); err != nil {
		respondError(c, err, "Failed to delete vendor")
		return
	}
	c.JSON(http.StatusOK, dto.OkResponse{Ok: true, Message: "Vendor deleted"})
}
