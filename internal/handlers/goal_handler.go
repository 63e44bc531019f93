package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "finplanner/internal/errors"
	"finplanner/internal/models"
	"finplanner/internal/services"
)

// GoalHandler handles financial goals.
type GoalHandler struct {
	goalService services.GoalServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.GoalServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// CreateGoalRequest represents the request payload for a new goal.
type CreateGoalRequest struct {
	Name          string              `json:"name" binding:"required,max=100"`
	TargetAmount  *decimal.Decimal    `json:"targetAmount" binding:"required"`
	CurrentAmount *decimal.Decimal    `json:"currentAmount"`
	TargetDate    *string             `json:"targetDate"`
	Category      models.GoalCategory `json:"category" binding:"omitempty,goal_category"`
}

// GoalProgressRequest represents the request payload for setting a goal's saved amount.
type GoalProgressRequest struct {
	CurrentAmount *decimal.Decimal `json:"currentAmount" binding:"required"`
}

// ListGoals returns the active goals
// @Summary     List goals
// @Description List the owner's active financial goals. Archived goals are hidden.
// @Tags        goals
// @Produce     json
// @Success     200 {array}  models.FinancialGoal "Goals"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [get]
func (h *GoalHandler) ListGoals(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goals, err := h.goalService.ListActiveGoals(ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// CreateGoal adds a goal
// @Summary     Create a goal
// @Description Create a financial goal. Category defaults to other.
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       request body CreateGoalRequest true "Goal details"
// @Success     201 {object} models.FinancialGoal "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateGoalRequest
	if !bindJSON(c, &req) {
		return
	}
	if !req.TargetAmount.IsPositive() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "targetAmount must be positive"))
		return
	}

	fields := services.GoalFields{
		Name:          req.Name,
		TargetAmount:  *req.TargetAmount,
		CurrentAmount: decimal.Zero,
		Category:      req.Category,
	}
	if req.CurrentAmount != nil {
		fields.CurrentAmount = *req.CurrentAmount
	}
	if req.TargetDate != nil && *req.TargetDate != "" {
		var parsed time.Time
		if parsed, err = parseDate(*req.TargetDate); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid targetDate format, use RFC3339 or YYYY-MM-DD"))
			return
		}
		fields.TargetDate = &parsed
	}

	goal, err := h.goalService.AddGoal(ownerID, fields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// SetGoalProgress sets how much has been saved toward a goal
// @Summary     Set goal progress
// @Description Set a goal's current amount. Unknown ids are ignored.
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       id      path int                 true "Goal ID"
// @Param       request body GoalProgressRequest true "Saved amount"
// @Success     200 {array}  models.FinancialGoal "Goals after the update"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id}/progress [put]
func (h *GoalHandler) SetGoalProgress(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req GoalProgressRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.CurrentAmount.IsNegative() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "currentAmount must not be negative"))
		return
	}

	if err := h.goalService.SetGoalProgress(ownerID, goalID, *req.CurrentAmount); err != nil {
		respondWithError(c, err)
		return
	}

	h.ListGoals(c)
}

// ArchiveGoal hides a goal
// @Summary     Archive a goal
// @Description Mark a goal inactive. Unknown ids are ignored.
// @Tags        goals
// @Produce     json
// @Param       id path int true "Goal ID"
// @Success     200 {array}  models.FinancialGoal "Goals after the archive"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id} [delete]
func (h *GoalHandler) ArchiveGoal(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.goalService.ArchiveGoal(ownerID, goalID); err != nil {
		respondWithError(c, err)
		return
	}

	h.ListGoals(c)
}
