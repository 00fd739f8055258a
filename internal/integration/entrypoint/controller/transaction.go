// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/farmlink/backend/internal/application/usecase/ledger"
	"github.com/farmlink/backend/internal/domain/entity"
	domainerror "github.com/farmlink/backend/internal/domain/error"
	"github.com/farmlink/backend/internal/integration/entrypoint/dto"
	"github.com/farmlink/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles income/expense ledger endpoints.
type TransactionController struct {
	recordTransactionUseCase *ledger.RecordTransactionUseCase
	listTransactionsUseCase  *ledger.ListTransactionsUseCase
	monthlySummaryUseCase    *ledger.GetMonthlySummaryUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	recordTransactionUseCase *ledger.RecordTransactionUseCase,
	listTransactionsUseCase *ledger.ListTransactionsUseCase,
	monthlySummaryUseCase *ledger.GetMonthlySummaryUseCase,
) *TransactionController {
	return &TransactionController{
		recordTransactionUseCase: recordTransactionUseCase,
		listTransactionsUseCase:  listTransactionsUseCase,
		monthlySummaryUseCase:    monthlySummaryUseCase,
	}
}

// Record handles POST /transactions requests.
func (c *TransactionController) Record(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.RecordTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(
			"Invalid amount",
			string(domainerror.ErrCodeInvalidTransactionAmount),
			"amount must be a decimal number",
		))
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	input := ledger.RecordTransactionInput{
		UserID:      userID,
		Type:        req.Type,
		Category:    req.Category,
		Amount:      amount,
		Description: req.Description,
		Date:        date,
	}

	output, err := c.recordTransactionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessEnvelope("Transaction recorded", dto.ToTransactionResponse(output.Transaction)))
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	page, limit := parsePageQuery(ctx)
	month, _ := strconv.Atoi(ctx.DefaultQuery("month", "0"))
	year, _ := strconv.Atoi(ctx.DefaultQuery("year", "0"))

	input := ledger.ListTransactionsInput{
		UserID: userID,
		Month:  month,
		Year:   year,
		Page:   page,
		Limit:  limit,
	}
	if typeQuery := ctx.Query("type"); typeQuery != "" {
		transactionType := entity.TransactionType(typeQuery)
		if !entity.IsValidTransactionType(transactionType) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(
				"Invalid transaction type",
				string(domainerror.ErrCodeInvalidTransactionType),
				"type must be either income or expense",
			))
			return
		}
		input.Type = &transactionType
	}

	output, err := c.listTransactionsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	result := output.Result
	ctx.JSON(http.StatusOK, dto.NewPaginatedEnvelope(
		"Transactions fetched",
		dto.ToTransactionResponses(result.Transactions),
		dto.NewPagination(result.Page, result.Limit, result.TotalPages, result.Total),
	))
}

// MonthlySummary handles GET /transactions/summary requests.
func (c *TransactionController) MonthlySummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	now := time.Now().UTC()
	month, _ := strconv.Atoi(ctx.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	year, _ := strconv.Atoi(ctx.DefaultQuery("year", strconv.Itoa(now.Year())))

	output, err := c.monthlySummaryUseCase.Execute(ctx.Request.Context(), ledger.GetMonthlySummaryInput{
		UserID: userID,
		Month:  month,
		Year:   year,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope("Monthly summary computed", dto.ToMonthlySummaryResponse(output.Summary)))
}

// handleTransactionError handles ledger errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var transactionErr *domainerror.TransactionError
	if errors.As(err, &transactionErr) {
		statusCode := c.getStatusCodeForTransactionError(transactionErr.Code)
		ctx.JSON(statusCode, dto.NewErrorEnvelope(
			transactionErr.Message,
			string(transactionErr.Code),
			transactionErr.Message,
		))
		return
	}

	respondInternalError(ctx)
}

// getStatusCodeForTransactionError maps ledger error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeFutureTransactionDate,
		domainerror.ErrCodeInvalidPeriod,
		domainerror.ErrCodeMissingTransactionFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
