package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "finplanner/internal/errors"
	"finplanner/internal/services"
)

// ProfileHandler handles the owner's profile and dashboard stats.
type ProfileHandler struct {
	profileService services.ProfileServicer
	statsService   services.StatsServicer
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService services.ProfileServicer, statsService services.StatsServicer) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, statsService: statsService}
}

// UpdateProfileRequest represents the request payload for editing the profile.
type UpdateProfileRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Email         *string          `json:"email" binding:"omitempty,email"`
	MonthlyIncome *decimal.Decimal `json:"monthlyIncome"`
}

// UpdateStatsRequest represents the request payload for the user-entered dashboard fields.
type UpdateStatsRequest struct {
	TotalBalance *decimal.Decimal `json:"totalBalance" binding:"required"`
}

// GetProfile returns the owner's profile
// @Summary     Get profile
// @Description Get the owner's profile. Before seeding the profile is null.
// @Tags        profile
// @Produce     json
// @Success     200 {object} models.UserProfile "Profile"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	profile, err := h.profileService.GetProfile(ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UpdateProfile edits the profile
// @Summary     Update profile
// @Description Update name, email or monthly income. An income change recomputes the dashboard stats.
// @Tags        profile
// @Accept      json
// @Produce     json
// @Param       request body UpdateProfileRequest true "Profile fields"
// @Success     200 {object} models.UserProfile "Updated profile"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.MonthlyIncome != nil && req.MonthlyIncome.IsNegative() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "monthlyIncome must not be negative"))
		return
	}

	update := services.ProfileUpdate{Name: req.Name, Email: req.Email, MonthlyIncome: req.MonthlyIncome}
	if err := h.profileService.UpdateProfile(ownerID, update); err != nil {
		respondWithError(c, err)
		return
	}

	h.GetProfile(c)
}

// GetStats returns the cached dashboard aggregates
// @Summary     Get dashboard stats
// @Description Get monthly income, expenses, savings and the user-entered total balance
// @Tags        stats
// @Produce     json
// @Success     200 {object} models.DashboardStats "Dashboard stats"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats [get]
func (h *ProfileHandler) GetStats(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stats, err := h.statsService.GetStats(ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// UpdateStats sets the total balance
// @Summary     Update dashboard stats
// @Description Set the total balance. Income, expenses and savings are derived and cannot be set.
// @Tags        stats
// @Accept      json
// @Produce     json
// @Param       request body UpdateStatsRequest true "Stats fields"
// @Success     200 {object} models.DashboardStats "Updated stats"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats [put]
func (h *ProfileHandler) UpdateStats(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateStatsRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.statsService.UpdateStats(ownerID, services.StatsUpdate{TotalBalance: req.TotalBalance}); err != nil {
		respondWithError(c, err)
		return
	}

	h.GetStats(c)
}

// RecomputeStats rederives the dashboard aggregates
// @Summary     Recompute dashboard stats
// @Description Recompute monthly expenses and savings from the profile and expense rows
// @Tags        stats
// @Produce     json
// @Success     200 {object} models.DashboardStats "Recomputed stats"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats/recompute [post]
func (h *ProfileHandler) RecomputeStats(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.statsService.RecomputeStats(ownerID); err != nil {
		respondWithError(c, err)
		return
	}

	h.GetStats(c)
}
