package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "finplanner/internal/errors"
	"finplanner/internal/services"
)

// SipHandler handles SIP plans.
type SipHandler struct {
	sipService services.SipServicer
}

// NewSipHandler creates a new SipHandler.
func NewSipHandler(sipService services.SipServicer) *SipHandler {
	return &SipHandler{sipService: sipService}
}

// CreateSipRequest represents the request payload for a new SIP plan.
type CreateSipRequest struct {
	Name              string           `json:"name" binding:"required,max=100"`
	MonthlyInvestment *decimal.Decimal `json:"monthlyInvestment" binding:"required"`
	ExpectedReturn    *decimal.Decimal `json:"expectedReturn" binding:"required"`
	InvestmentPeriod  int              `json:"investmentPeriod" binding:"required,min=1,max=50"`
	Activate          bool             `json:"activate"`
}

// UpdateSipRequest represents the request payload for editing the active plan.
type UpdateSipRequest struct {
	Name              *string          `json:"name" binding:"omitempty,min=1,max=100"`
	MonthlyInvestment *decimal.Decimal `json:"monthlyInvestment"`
	ExpectedReturn    *decimal.Decimal `json:"expectedReturn"`
	InvestmentPeriod  *int             `json:"investmentPeriod" binding:"omitempty,min=1,max=50"`
}

// GetActiveSip returns the active plan
// @Summary     Get the active SIP
// @Description Get the owner's active SIP plan, or null when none is active
// @Tags        sip
// @Produce     json
// @Success     200 {object} models.SipInvestment "Active SIP"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sip [get]
func (h *SipHandler) GetActiveSip(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	sip, err := h.sipService.GetActiveSip(ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sip": sip})
}

// UpdateActiveSip edits the active plan
// @Summary     Update the active SIP
// @Description Edit the active SIP plan in place. Does nothing when no plan is active.
// @Tags        sip
// @Accept      json
// @Produce     json
// @Param       request body UpdateSipRequest true "SIP fields"
// @Success     200 {object} models.SipInvestment "Active SIP after the update"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sip [put]
func (h *SipHandler) UpdateActiveSip(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSipRequest
	if !bindJSON(c, &req) {
		return
	}

	update := services.SipUpdate{
		Name:              req.Name,
		MonthlyInvestment: req.MonthlyInvestment,
		ExpectedReturn:    req.ExpectedReturn,
		InvestmentPeriod:  req.InvestmentPeriod,
	}
	if err := h.sipService.UpdateActiveSip(ownerID, update); err != nil {
		respondWithError(c, err)
		return
	}

	h.GetActiveSip(c)
}

// ListSips returns every plan
// @Summary     List SIP plans
// @Description List all SIP plans of the owner, active or not
// @Tags        sip
// @Produce     json
// @Success     200 {array}  models.SipInvestment "SIP plans"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sips [get]
func (h *SipHandler) ListSips(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	sips, err := h.sipService.ListSips(ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sips": sips})
}

// CreateSip adds a plan
// @Summary     Create a SIP plan
// @Description Create a SIP plan. With activate set, every other plan is deactivated.
// @Tags        sip
// @Accept      json
// @Produce     json
// @Param       request body CreateSipRequest true "SIP details"
// @Success     201 {object} models.SipInvestment "SIP created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sips [post]
func (h *SipHandler) CreateSip(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateSipRequest
	if !bindJSON(c, &req) {
		return
	}
	if !req.MonthlyInvestment.IsPositive() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "monthlyInvestment must be positive"))
		return
	}

	fields := services.SipFields{
		Name:              req.Name,
		MonthlyInvestment: *req.MonthlyInvestment,
		ExpectedReturn:    *req.ExpectedReturn,
		InvestmentPeriod:  req.InvestmentPeriod,
	}
	sip, err := h.sipService.CreateSip(ownerID, fields, req.Activate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"sip": sip})
}

// ActivateSip makes a plan the active one
// @Summary     Activate a SIP plan
// @Description Activate the plan and deactivate every other plan of the owner
// @Tags        sip
// @Produce     json
// @Param       id path int true "SIP ID"
// @Success     200 {object} models.SipInvestment "Active SIP"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sips/{id}/activate [post]
func (h *SipHandler) ActivateSip(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	sipID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.sipService.ActivateSip(ownerID, sipID); err != nil {
		respondWithError(c, err)
		return
	}

	h.GetActiveSip(c)
}
