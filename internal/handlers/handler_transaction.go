package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/gstnote/gstnote_backend/internal/core/ports/services"
	"github.com/gstnote/gstnote_backend/internal/dto"
	"github.com/gstnote/gstnote_backend/internal/middleware"
	"github.com/gstnote/gstnote_backend/internal/pdf"
)

// transactionHandler handles HTTP requests related to debit/credit notes.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers the note routes and the separate
// item-group routes.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.POST("/:id/cancel", h.cancelTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
		transactions.GET("/:id/pdf", h.generatePDF)

		transactions.GET("/:id/items", h.getItems)
		transactions.PUT("/:id/items", h.updateItems)
	}
	rg.POST("/items", h.saveItems)
}

// createTransaction godoc
// @Summary Create a note
// @Description Creates a debit or credit note, allocating the next number from the shared sequence.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Note details"
// @Success 201 {object} dto.CreateTransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyScope(c)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create note request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), companyID, req)
	if err != nil {
		respondError(c, err, "Failed to create transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.CreateTransactionResponse{Ok: true, TransactionID: txn.TransactionID})
}

// listTransactions godoc
// @Summary List notes
// @Description Retrieves all notes of the caller's company with vendor names, newest first.
// @Tags transactions
// @Produce json
// @Success 200 {array} dto.TransactionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	companyID, ok := companyScope(c)
	if !ok {
		return
	}

	listings, err := h.transactionService.ListTransactions(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionListingResponses(listings))
}

// getTransaction godoc
// @Summary Get a note
// @Description Retrieves a note by number within the caller's company.
// @Tags transactions
// @Produce json
// @Param id path string true "Note number (e.g. DBN001)"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	companyID, ok := companyScope(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a note
// @Description Replaces the note's details document wholesale. Canceled notes reject the update.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Note number"
// @Param transaction body dto.UpdateTransactionRequest true "New details"
// @Success 200 {object} dto.OkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyScope(c)
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update note request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.transactionService.UpdateTransaction(c.Request.Context(), companyID, c.Param("id"), req); err != nil {
		respondError(c, err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.OkResponse{Ok: true, Message: "Transaction updated"})
}

// cancelTransaction godoc
// @Summary Cancel a note
// @Description Flips the note's status to Canceled. Canceled is terminal.
// @Tags transactions
// @Produce json
// @Param id path string true "Note number"
// @Success 200 {object} dto.OkResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id}/cancel [post]
func (h *transactionHandler) cancelTransaction(c *gin.Context) {
	companyID, ok := companyScope(c)
	if !ok {
		return
	}

	if err := h.transactionService.CancelTransaction(c.Request.Context(), companyID, c.Param("id")); err != nil {
		respondError(c, err, "Failed to cancel transaction")
		return
	}
	c.JSON(http.StatusOK, dto.OkResponse{Ok: true, Message: "Transaction canceled"})
}

// deleteTransaction godoc
// @Summary Delete a note
// @Description Removes the note and its item-group snapshot.
// @Tags transactions
// @Produce json
// @Param id path string true "Note number"
// @Success 200 {object} dto.OkResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	companyID, ok := companyScope(c)
	if !ok {
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), companyID, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete transaction")
		return
	}
	c.JSON(http.StatusOK, dto.OkResponse{Ok: true, Message: "Transaction deleted"})
}

// generatePDF godoc
// @Summary Export a note as PDF
// @Description Renders the note as an inline PDF document.
// @Tags transactions
// @Produce application/pdf
// @Param id path string true "Note number"
// @Success 200 {file} file
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id}/pdf [get]
func (h *transactionHandler) generatePDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyScope(c)
	if !ok {
		return
	}
	transactionID := c.Param("id")

	doc, err := h.transactionService.AssembleNoteDocument(c.Request.Context(), companyID, transactionID)
	if err != nil {
		respondError(c, err, "Failed to assemble note document")
		return
	}

	rendered, err := pdf.Render(doc)
	if err != nil {
		logger.Error("Failed to render note pdf", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate PDF: " + err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%s.pdf", transactionID))
	c.Header("Content-Length", strconv.Itoa(len(rendered)))
	c.Data(http.StatusOK, "application/pdf", rendered)
}

// saveItems godoc
// @Summary Create or replace note items
// @Description Replaces the line items of the named note through the item-group path.
// @Tags items
// @Accept json
// @Produce json
// @Param items body dto.SaveItemsRequest true "Note id and items"
// @Success 200 {object} dto.OkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /items [post]
func (h *transactionHandler) saveItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyScope(c)
	if !ok {
		return
	}

	var req dto.SaveItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for save items request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.transactionService.SaveItems(c.Request.Context(), companyID, req.TransactionID, req.Items); err != nil {
		respondError(c, err, "Failed to save items")
		return
	}
	c.JSON(http.StatusOK, dto.OkResponse{Ok: true, Message: "Items saved"})
}

// getItems godoc
// @Summary Get note items
// @Description Retrieves the item-group document of a note.
// @Tags items
// @Produce json
// @Param id path string true "Note number"
// @Success 200 {object} dto.ItemGroupResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id}/items [get]
func (h *transactionHandler) getItems(c *gin.Context) {
	companyID, ok := companyScope(c)
	if !ok {
		return
	}

	group, err := h.transactionService.GetItems(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve items")
		return
	}
	c.JSON(http.StatusOK, dto.ToItemGroupResponse(group))
}

// updateItems godoc
// @Summary Update note items
// @Description Replaces the item-group document of a note.
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Note number"
// @Param items body dto.UpdateItemsRequest true "New items"
// @Success 200 {object} dto.OkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id}/items [put]
func (h *transactionHandler) updateItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyScope(c)
	if !ok {
		return
	}

	var req dto.UpdateItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update items request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.transactionService.SaveItems(c.Request.Context(), companyID, c.Param("id"), req.Items); err != nil {
		respondError(c, err, "Failed to update items")
		return
	}
	c.JSON(http.StatusOK, dto.OkResponse{Ok: true, Message: "Items updated"})
}
