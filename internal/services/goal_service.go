package services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "finplanner/internal/errors"
	"finplanner/internal/models"
)

// goalService handles financial goals.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// ListActiveGoals returns the owner's active goals in insertion order.
func (s *goalService) ListActiveGoals(ownerID uint) ([]models.FinancialGoal, error) {
	var goals []models.FinancialGoal
	err := s.db.Where("owner_id = ? AND is_active = ?", ownerID, true).Order("id").Find(&goals).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return goals, nil
}

// SetGoalProgress replaces the amount saved so far.
func (s *goalService) SetGoalProgress(ownerID, goalID uint, currentAmount decimal.Decimal) error {
	if currentAmount.IsNegative() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "current amount must not be negative")
	}
	return s.updateGoal(ownerID, goalID, map[string]interface{}{"current_amount": currentAmount})
}

// AddGoal stores a new active goal.
func (s *goalService) AddGoal(ownerID uint, fields GoalFields) (*models.FinancialGoal, error) {
	if strings.TrimSpace(fields.Name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if fields.Category == "" {
		fields.Category = models.GoalCategoryOther
	}
	if !fields.Category.Valid() {
		return nil, apperrors.ErrInvalidGoalCategory
	}
	if fields.TargetAmount.IsNegative() || fields.CurrentAmount.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amounts must not be negative")
	}

	goal := &models.FinancialGoal{
		Name:          fields.Name,
		TargetAmount:  fields.TargetAmount,
		CurrentAmount: fields.CurrentAmount,
		TargetDate:    fields.TargetDate,
		Category:      fields.Category,
		IsActive:      true,
		Owned:         models.Owned{OwnerID: ownerID},
	}
	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return goal, nil
}

// ArchiveGoal hides a goal from listings without deleting it.
func (s *goalService) ArchiveGoal(ownerID, goalID uint) error {
	return s.updateGoal(ownerID, goalID, map[string]interface{}{"is_active": false})
}

func (s *goalService) updateGoal(ownerID, goalID uint, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	err := s.db.Model(&models.FinancialGoal{}).
		Where("id = ? AND owner_id = ?", goalID, ownerID).
		Updates(updates).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}
