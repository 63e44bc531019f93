package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "finplanner/internal/errors"
	"finplanner/internal/models"
)

// portfolioService handles manually valued holdings, addressed by item key.
type portfolioService struct {
	db *gorm.DB
}

// NewPortfolioService creates a new PortfolioServicer.
func NewPortfolioService(db *gorm.DB) PortfolioServicer {
	return &portfolioService{db: db}
}

// ListPortfolioItems returns the owner's holdings in insertion order.
func (s *portfolioService) ListPortfolioItems(ownerID uint) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	if err := s.db.Where("owner_id = ?", ownerID).Order("id").Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return items, nil
}

// FindPortfolioItemByKey returns the holding with the given key, or nil.
func (s *portfolioService) FindPortfolioItemByKey(ownerID uint, itemID string) (*models.PortfolioItem, error) {
	return findPortfolioItem(s.db, ownerID, itemID)
}

// AddPortfolioItem stores a new holding. An empty key is replaced by a
// generated one; a key already used by the owner is rejected.
func (s *portfolioService) AddPortfolioItem(ownerID uint, fields PortfolioItemFields) (*models.PortfolioItem, error) {
	if strings.TrimSpace(fields.Name) == "" || strings.TrimSpace(fields.Category) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name and category are required")
	}

	if fields.ItemID == "" {
		key, err := uuid.NewV7()
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		fields.ItemID = key.String()
	}

	item := &models.PortfolioItem{
		ItemID:      fields.ItemID,
		Name:        fields.Name,
		Category:    fields.Category,
		Amount:      fields.Amount,
		Icon:        fields.Icon,
		Color:       fields.Color,
		Description: fields.Description,
		Owned:       models.Owned{OwnerID: ownerID},
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		existing, err := findPortfolioItem(tx, ownerID, item.ItemID)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperrors.ErrDuplicateItemKey
		}
		if err := tx.Create(item).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrStorage, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// UpdatePortfolioItem changes the holding with the given key, if it exists.
func (s *portfolioService) UpdatePortfolioItem(ownerID uint, itemID string, update PortfolioItemUpdate) error {
	updates := map[string]interface{}{"updated_at": time.Now()}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Category != nil {
		updates["category"] = *update.Category
	}
	if update.Amount != nil {
		updates["amount"] = *update.Amount
	}
	if update.Icon != nil {
		updates["icon"] = *update.Icon
	}
	if update.Color != nil {
		updates["color"] = *update.Color
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		item, err := findPortfolioItem(tx, ownerID, itemID)
		if err != nil || item == nil {
			return err
		}
		if err := tx.Model(item).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrStorage, err)
		}
		return nil
	})
}

// DeletePortfolioItem removes the holding with the given key, if it exists.
func (s *portfolioService) DeletePortfolioItem(ownerID uint, itemID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		item, err := findPortfolioItem(tx, ownerID, itemID)
		if err != nil || item == nil {
			return err
		}
		if err := tx.Delete(item).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrStorage, err)
		}
		return nil
	})
}

// PortfolioSummary totals the holdings and splits them by category, largest first.
func (s *portfolioService) PortfolioSummary(ownerID uint) (*PortfolioSummary, error) {
	items, err := s.ListPortfolioItems(ownerID)
	if err != nil {
		return nil, err
	}
	return summarizePortfolio(items), nil
}

func summarizePortfolio(items []models.PortfolioItem) *PortfolioSummary {
	summary := &PortfolioSummary{NetWorth: decimal.Zero, ItemCount: len(items), Allocations: []CategoryAllocation{}}

	index := make(map[string]int)
	for _, item := range items {
		summary.NetWorth = summary.NetWorth.Add(item.Amount)
		i, ok := index[item.Category]
		if !ok {
			i = len(summary.Allocations)
			index[item.Category] = i
			summary.Allocations = append(summary.Allocations, CategoryAllocation{Category: item.Category, Amount: decimal.Zero})
		}
		summary.Allocations[i].Amount = summary.Allocations[i].Amount.Add(item.Amount)
		summary.Allocations[i].Count++
	}

	for i := range summary.Allocations {
		summary.Allocations[i].Percentage = percentOf(summary.Allocations[i].Amount, summary.NetWorth)
	}
	sort.SliceStable(summary.Allocations, func(a, b int) bool {
		return summary.Allocations[a].Amount.GreaterThan(summary.Allocations[b].Amount)
	})
	return summary
}

func findPortfolioItem(db *gorm.DB, ownerID uint, itemID string) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	if err := db.Where("owner_id = ? AND item_id = ?", ownerID, itemID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return &item, nil
}

// percentOf returns part/whole*100, zero for a zero whole.
func percentOf(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	pct, _ := part.Div(whole).Mul(decimal.NewFromInt(100)).Round(2).Float64()
	return pct
}
