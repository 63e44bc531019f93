package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "finplanner/internal/errors"
	"finplanner/internal/services"
)

// ExpenseHandler handles monthly expense rows.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpenseRequest represents the request payload for adding an expense.
// With merge set, the amount is added to the first row of the same category.
type CreateExpenseRequest struct {
	Category string           `json:"category" binding:"required,max=100"`
	Amount   *decimal.Decimal `json:"amount" binding:"required"`
	Merge    bool             `json:"merge"`
}

// UpdateExpenseRequest represents the request payload for editing an expense.
type UpdateExpenseRequest struct {
	Category *string          `json:"category" binding:"omitempty,min=1,max=100"`
	Amount   *decimal.Decimal `json:"amount"`
}

// ListExpenses returns every expense row
// @Summary     List expenses
// @Description List the owner's expense rows in insertion order
// @Tags        expenses
// @Produce     json
// @Success     200 {array}  models.ExpenseItem "Expenses"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenses, err := h.expenseService.ListExpenses(ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// CreateExpense adds an expense
// @Summary     Add an expense
// @Description Add an expense row, or add to an existing category when merge is true. Stats are recomputed.
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     201 {object} map[string]interface{} "Expense id"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateExpenseRequest
	if !bindJSON(c, &req) {
		return
	}
	if !req.Amount.IsPositive() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive"))
		return
	}

	var id uint
	if req.Merge {
		id, err = h.expenseService.AddToCategory(ownerID, req.Category, *req.Amount)
	} else {
		id, err = h.expenseService.AddExpense(ownerID, req.Category, *req.Amount)
	}
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateExpense edits an expense
// @Summary     Update an expense
// @Description Change the category or amount of an expense. Unknown ids are ignored. Stats are recomputed.
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       id      path int                  true "Expense ID"
// @Param       request body UpdateExpenseRequest true "Expense fields"
// @Success     200 {array}  models.ExpenseItem "Expenses after the update"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateExpenseRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Amount != nil && req.Amount.IsNegative() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative"))
		return
	}

	if err := h.expenseService.UpdateExpense(ownerID, expenseID, services.ExpenseUpdate{Category: req.Category, Amount: req.Amount}); err != nil {
		respondWithError(c, err)
		return
	}

	h.ListExpenses(c)
}

// DeleteExpense removes an expense
// @Summary     Delete an expense
// @Description Delete an expense row. Unknown ids are ignored. Stats are recomputed.
// @Tags        expenses
// @Produce     json
// @Param       id path int true "Expense ID"
// @Success     200 {array}  models.ExpenseItem "Expenses after the delete"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(ownerID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	h.ListExpenses(c)
}
