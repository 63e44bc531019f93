package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "finplanner/internal/errors"
	"finplanner/internal/models"
	"finplanner/internal/services"
)

// IncomeItemKey addresses the monthly income row shown at the top of the
// portfolio. It is backed by the profile, not by a stored holding.
const IncomeItemKey = "income"

// PortfolioHandler handles manually valued holdings.
type PortfolioHandler struct {
	portfolioService services.PortfolioServicer
	profileService   services.ProfileServicer
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService services.PortfolioServicer, profileService services.ProfileServicer) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService, profileService: profileService}
}

// CreatePortfolioItemRequest represents the request payload for a new holding.
type CreatePortfolioItemRequest struct {
	ItemID      string           `json:"itemId" binding:"omitempty,item_key"`
	Name        string           `json:"name" binding:"required,max=100"`
	Category    string           `json:"category" binding:"required,max=100"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Icon        string           `json:"icon" binding:"max=50"`
	Color       string           `json:"color" binding:"max=100"`
	Description string           `json:"description" binding:"max=500"`
}

// UpdatePortfolioItemRequest represents the request payload for editing a holding.
type UpdatePortfolioItemRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Category    *string          `json:"category" binding:"omitempty,min=1,max=100"`
	Amount      *decimal.Decimal `json:"amount"`
	Icon        *string          `json:"icon" binding:"omitempty,max=50"`
	Color       *string          `json:"color" binding:"omitempty,max=100"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
}

// PortfolioResponse lists the income row, the holdings and their summary.
type PortfolioResponse struct {
	Income  models.PortfolioItem       `json:"income"`
	Items   []models.PortfolioItem     `json:"items"`
	Summary *services.PortfolioSummary `json:"summary"`
}

// ListPortfolio returns the holdings with the income row and summary
// @Summary     List portfolio
// @Description List the owner's holdings, the monthly income row and the net worth split by category
// @Tags        portfolio
// @Produce     json
// @Success     200 {object} PortfolioResponse "Portfolio"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio [get]
func (h *PortfolioHandler) ListPortfolio(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	items, err := h.portfolioService.ListPortfolioItems(ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	summary, err := h.portfolioService.PortfolioSummary(ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	profile, err := h.profileService.GetProfile(ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if items == nil {
		items = []models.PortfolioItem{}
	}
	c.JSON(http.StatusOK, PortfolioResponse{Income: incomeItem(ownerID, profile), Items: items, Summary: summary})
}

// GetPortfolioItem returns one holding by key
// @Summary     Get a portfolio item
// @Description Get one holding by its item key
// @Tags        portfolio
// @Produce     json
// @Param       itemId path string true "Item key"
// @Success     200 {object} models.PortfolioItem "Portfolio item"
// @Failure     404 {object} ErrorResponse "Item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/{itemId} [get]
func (h *PortfolioHandler) GetPortfolioItem(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	itemID := c.Param("itemId")
	if itemID == IncomeItemKey {
		profile, err := h.profileService.GetProfile(ownerID)
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"item": incomeItem(ownerID, profile)})
		return
	}

	item, err := h.portfolioService.FindPortfolioItemByKey(ownerID, itemID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if item == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrNotFound, "Portfolio item not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// CreatePortfolioItem adds a holding
// @Summary     Create a portfolio item
// @Description Add a holding. Without itemId a key is generated.
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Param       request body CreatePortfolioItemRequest true "Holding details"
// @Success     201 {object} models.PortfolioItem "Item created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate item key"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio [post]
func (h *PortfolioHandler) CreatePortfolioItem(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreatePortfolioItemRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.ItemID == IncomeItemKey {
		respondWithError(c, apperrors.ErrDuplicateItemKey)
		return
	}
	if req.Amount.IsNegative() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative"))
		return
	}

	item, err := h.portfolioService.AddPortfolioItem(ownerID, services.PortfolioItemFields{
		ItemID:      req.ItemID,
		Name:        req.Name,
		Category:    req.Category,
		Amount:      *req.Amount,
		Icon:        req.Icon,
		Color:       req.Color,
		Description: req.Description,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// UpdatePortfolioItem edits a holding by key
// @Summary     Update a portfolio item
// @Description Edit a holding. The income key updates the profile's monthly income instead. Unknown keys are ignored.
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Param       itemId  path string                     true "Item key"
// @Param       request body UpdatePortfolioItemRequest true "Holding fields"
// @Success     200 {object} PortfolioResponse "Portfolio after the update"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/{itemId} [put]
func (h *PortfolioHandler) UpdatePortfolioItem(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePortfolioItemRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Amount != nil && req.Amount.IsNegative() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative"))
		return
	}

	itemID := c.Param("itemId")
	if itemID == IncomeItemKey {
		if req.Amount == nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "only the amount of the income row can change"))
			return
		}
		err = h.profileService.UpdateProfile(ownerID, services.ProfileUpdate{MonthlyIncome: req.Amount})
	} else {
		err = h.portfolioService.UpdatePortfolioItem(ownerID, itemID, services.PortfolioItemUpdate{
			Name:        req.Name,
			Category:    req.Category,
			Amount:      req.Amount,
			Icon:        req.Icon,
			Color:       req.Color,
			Description: req.Description,
		})
	}
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.ListPortfolio(c)
}

// DeletePortfolioItem removes a holding by key
// @Summary     Delete a portfolio item
// @Description Delete a holding. Unknown keys are ignored. The income row cannot be deleted.
// @Tags        portfolio
// @Produce     json
// @Param       itemId path string true "Item key"
// @Success     200 {object} PortfolioResponse "Portfolio after the delete"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/{itemId} [delete]
func (h *PortfolioHandler) DeletePortfolioItem(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	itemID := c.Param("itemId")
	if itemID == IncomeItemKey {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "the income row cannot be deleted"))
		return
	}

	if err := h.portfolioService.DeletePortfolioItem(ownerID, itemID); err != nil {
		respondWithError(c, err)
		return
	}

	h.ListPortfolio(c)
}

func incomeItem(ownerID uint, profile *models.UserProfile) models.PortfolioItem {
	item := models.PortfolioItem{
		ItemID:      IncomeItemKey,
		Name:        "Monthly Income",
		Category:    "Income",
		Amount:      decimal.Zero,
		Icon:        "DollarSign",
		Color:       "bg-green-100 text-green-600",
		Description: "Your total monthly income from all sources",
		Owned:       models.Owned{OwnerID: ownerID},
	}
	if profile != nil {
		item.Amount = profile.MonthlyIncome
	}
	return item
}
