package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "finplanner/internal/errors"
	"finplanner/internal/models"
	"finplanner/internal/pagination"
	"finplanner/internal/services"
)

// TransactionHandler handles the activity log.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for a ledger entry.
type CreateTransactionRequest struct {
	Description string                 `json:"description" binding:"required,max=500"`
	Amount      *decimal.Decimal       `json:"amount" binding:"required"`
	Type        models.TransactionType `json:"type" binding:"required,transaction_type"`
	Category    string                 `json:"category" binding:"max=100"`
	Date        *string                `json:"date"`
}

// CreateTransaction records a ledger entry
// @Summary     Create a transaction
// @Description Record an income, expense, investment or goal contribution. The entry does not change expenses or stats.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if !bindJSON(c, &req) {
		return
	}

	fields := services.TransactionFields{
		Description: req.Description,
		Amount:      *req.Amount,
		Type:        req.Type,
		Category:    req.Category,
	}
	if req.Date != nil && *req.Date != "" {
		if fields.Date, err = parseDate(*req.Date); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid date format, use RFC3339 or YYYY-MM-DD"))
			return
		}
	}

	transaction, err := h.transactionService.AddTransaction(ownerID, fields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// ListRecentTransactions returns the newest entries
// @Summary     Recent transactions
// @Description List the newest ledger entries for the dashboard
// @Tags        transactions
// @Produce     json
// @Param       limit query int false "Number of entries (default 10)"
// @Success     200 {array}  models.Transaction "Transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/recent [get]
func (h *TransactionHandler) ListRecentTransactions(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil || limit < 0 || limit > pagination.MaxPageSize {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid limit"))
			return
		}
	}

	transactions, err := h.transactionService.ListRecentTransactions(ownerID, limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

// ListTransactions returns one page of the ledger
// @Summary     List transactions
// @Description Get a paginated list of ledger entries with optional filters, newest first
// @Tags        transactions
// @Produce     json
// @Param       page     query int    false "Page number (default 1)"
// @Param       pageSize query int    false "Items per page (default 20, max 100)"
// @Param       fromDate query string false "Filter by start date (RFC3339 or YYYY-MM-DD)"
// @Param       toDate   query string false "Filter by end date (RFC3339 or YYYY-MM-DD)"
// @Param       type     query string false "Filter by type (income, expense, investment, goal_contribution)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	page.Defaults()

	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.ListTransactions(ownerID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseTransactionFilter(c *gin.Context) (services.TransactionFilter, error) {
	var filter services.TransactionFilter

	if v := c.Query("fromDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid fromDate format, use RFC3339 or YYYY-MM-DD")
		}
		filter.FromDate = &t
	}

	if v := c.Query("toDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid toDate format, use RFC3339 or YYYY-MM-DD")
		}
		if len(v) == len("2006-01-02") {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		filter.ToDate = &t
	}

	if v := c.Query("type"); v != "" {
		txType := models.TransactionType(v)
		if !txType.Valid() {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid type, must be income, expense, investment, or goal_contribution")
		}
		filter.Type = &txType
	}

	return filter, nil
}
