package services

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "finplanner/internal/errors"
	"finplanner/internal/models"
)

// expenseService handles monthly expense rows.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// ListExpenses returns every expense row of the owner in insertion order.
func (s *expenseService) ListExpenses(ownerID uint) ([]models.ExpenseItem, error) {
	var expenses []models.ExpenseItem
	if err := s.db.Where("owner_id = ?", ownerID).Order("id").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return expenses, nil
}

// AddExpense appends a new expense row and recomputes the stats.
func (s *expenseService) AddExpense(ownerID uint, category string, amount decimal.Decimal) (uint, error) {
	if strings.TrimSpace(category) == "" {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}

	var id uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		id, txErr = createExpense(tx, ownerID, category, amount)
		if txErr != nil {
			return txErr
		}
		return recomputeStats(tx, ownerID)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// AddToCategory adds amount to the first row whose category matches exactly,
// or appends a new row when none does. It returns the id of the row written.
func (s *expenseService) AddToCategory(ownerID uint, category string, amount decimal.Decimal) (uint, error) {
	if strings.TrimSpace(category) == "" {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}

	var id uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.ExpenseItem
		err := tx.Where("owner_id = ? AND category = ?", ownerID, category).Order("id").First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			var txErr error
			if id, txErr = createExpense(tx, ownerID, category, amount); txErr != nil {
				return txErr
			}
		case err != nil:
			return apperrors.Wrap(apperrors.ErrStorage, err)
		default:
			id = existing.ID
			if err := tx.Model(&existing).Update("amount", existing.Amount.Add(amount)).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrStorage, err)
			}
		}
		return recomputeStats(tx, ownerID)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateExpense changes an expense row and recomputes the stats.
func (s *expenseService) UpdateExpense(ownerID, expenseID uint, update ExpenseUpdate) error {
	updates := make(map[string]interface{})
	if update.Category != nil {
		if strings.TrimSpace(*update.Category) == "" {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "category must not be empty")
		}
		updates["category"] = *update.Category
	}
	if update.Amount != nil {
		updates["amount"] = *update.Amount
	}
	if len(updates) == 0 {
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ExpenseItem{}).
			Where("id = ? AND owner_id = ?", expenseID, ownerID).
			Updates(updates)
		if result.Error != nil {
			return apperrors.Wrap(apperrors.ErrStorage, result.Error)
		}
		if result.RowsAffected == 0 {
			return nil
		}
		return recomputeStats(tx, ownerID)
	})
}

// DeleteExpense removes an expense row and recomputes the stats.
func (s *expenseService) DeleteExpense(ownerID, expenseID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND owner_id = ?", expenseID, ownerID).Delete(&models.ExpenseItem{})
		if result.Error != nil {
			return apperrors.Wrap(apperrors.ErrStorage, result.Error)
		}
		if result.RowsAffected == 0 {
			return nil
		}
		return recomputeStats(tx, ownerID)
	})
}

func createExpense(tx *gorm.DB, ownerID uint, category string, amount decimal.Decimal) (uint, error) {
	expense := &models.ExpenseItem{
		Category: category,
		Amount:   amount,
		Owned:    models.Owned{OwnerID: ownerID},
	}
	if err := tx.Create(expense).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return expense.ID, nil
}
