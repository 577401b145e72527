// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/usecase/transaction"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
	"github.com/fintrack/backend/internal/integration/entrypoint/dto"
)

// MaxImportBodyBytes caps the size of an uploaded import file.
const MaxImportBodyBytes = 1 << 20

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	recentUseCase *transaction.ListRecentTransactionsUseCase
	getUseCase    *transaction.GetTransactionUseCase
	createUseCase *transaction.CreateTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
	clearUseCase  *transaction.ClearTransactionsUseCase
	exportUseCase *transaction.ExportTransactionsUseCase
	importUseCase *transaction.ImportTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	recentUseCase *transaction.ListRecentTransactionsUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	clearUseCase *transaction.ClearTransactionsUseCase,
	exportUseCase *transaction.ExportTransactionsUseCase,
	importUseCase *transaction.ImportTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		recentUseCase: recentUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		clearUseCase:  clearUseCase,
		exportUseCase: exportUseCase,
		importUseCase: importUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	txnType, ok := parseTypeQuery(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{
		Type: txnType,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}

// Recent handles GET /transactions/recent requests.
func (c *TransactionController) Recent(ctx *gin.Context) {
	limit, ok := parseIntQuery(ctx, "limit")
	if !ok {
		return
	}

	output, err := c.recentUseCase.Execute(ctx.Request.Context(), transaction.ListRecentTransactionsInput{
		Limit: limit,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RecentTransactionsResponse{
		Transactions: dto.ToTransactionResponses(output.Transactions),
		Limit:        output.Limit,
	})
}

// Get handles GET /transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	id, ok := parseTransactionID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), transaction.GetTransactionInput{
		TransactionID: id,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse(dto.DateLayout, req.Date)
		if err != nil {
			respondInvalidDate(ctx)
			return
		}
		date = parsed
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		Type:         entity.TransactionType(req.Type),
		Amount:       req.Amount,
		CategoryName: req.Category,
		Date:         date,
		Note:         req.Note,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PATCH /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	id, ok := parseTransactionID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	input := transaction.UpdateTransactionInput{
		TransactionID: id,
		Amount:        req.Amount,
		CategoryName:  req.Category,
		Note:          req.Note,
	}

	if req.Type != nil {
		txnType := entity.TransactionType(*req.Type)
		input.Type = &txnType
	}

	if req.Date != nil {
		date, err := time.Parse(dto.DateLayout, *req.Date)
		if err != nil {
			respondInvalidDate(ctx)
			return
		}
		input.Date = &date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
// Unknown ids still answer 204.
func (c *TransactionController) Delete(ctx *gin.Context) {
	id, ok := parseTransactionID(ctx)
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		TransactionID: id,
	}); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Clear handles DELETE /transactions requests.
func (c *TransactionController) Clear(ctx *gin.Context) {
	output, err := c.clearUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ClearTransactionsResponse{
		DeletedCount: output.DeletedCount,
	})
}

// Export handles GET /transactions/export requests.
func (c *TransactionController) Export(ctx *gin.Context) {
	output, err := c.exportUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", output.Data)
}

// Import handles POST /transactions/import requests. The body is a CSV file in export format.
func (c *TransactionController) Import(ctx *gin.Context) {
	output, err := c.importUseCase.Execute(ctx.Request.Context(), transaction.ImportTransactionsInput{
		Reader: http.MaxBytesReader(ctx.Writer, ctx.Request.Body, MaxImportBodyBytes),
	})
	if err != nil {
		if output != nil && output.Imported > 0 {
			slog.Warn("Import stopped after partial load", "imported", output.Imported, "error", err)
		}
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ImportTransactionsResponse{
		Imported: output.Imported,
	})
}

// handleTransactionError handles transaction-specific errors.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		response := dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		}

		var validationErr *domainerror.ValidationError
		if errors.As(err, &validationErr) {
			response.Details = validationErr.Field
		}

		ctx.JSON(c.getStatusCodeForTransactionError(txnErr.Code), response)
		return
	}

	slog.Error("Unhandled transaction error", "error", err, "path", ctx.FullPath())

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeInternalServer),
	})
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTransactionDate,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeMissingCategory,
		domainerror.ErrCodeNotesTooLong,
		domainerror.ErrCodeMissingTransactionFields,
		domainerror.ErrCodeInvalidTransactionID,
		domainerror.ErrCodeInvalidImportFile:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseTransactionID reads the :id path parameter, answering 400 when it is not a UUID.
func parseTransactionID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid transaction ID format",
			Code:    string(domainerror.ErrCodeInvalidTransactionID),
			Details: "id",
		})
		return uuid.Nil, false
	}
	return id, true
}

// parseTypeQuery reads the optional ?type filter.
func parseTypeQuery(ctx *gin.Context) (*entity.TransactionType, bool) {
	raw := ctx.Query("type")
	if raw == "" {
		return nil, true
	}

	txnType := entity.TransactionType(raw)
	if !txnType.IsValid() {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "type must be 'expense' or 'income'",
			Code:    string(domainerror.ErrCodeInvalidQuery),
			Details: domainerror.FieldType,
		})
		return nil, false
	}
	return &txnType, true
}

// parseIntQuery reads an optional integer query parameter.
func parseIntQuery(ctx *gin.Context, name string) (*int, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   name + " must be an integer",
			Code:    string(domainerror.ErrCodeInvalidQuery),
			Details: name,
		})
		return nil, false
	}
	return &value, true
}

func respondInvalidDate(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid date format. Use YYYY-MM-DD",
		Code:    string(domainerror.ErrCodeInvalidTransactionDate),
		Details: domainerror.FieldDate,
	})
}
