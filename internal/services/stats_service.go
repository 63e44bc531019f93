package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "finplanner/internal/errors"
	"finplanner/internal/models"
)

// statsService maintains the cached dashboard aggregates.
type statsService struct {
	db *gorm.DB
}

// NewStatsService creates a new StatsServicer.
func NewStatsService(db *gorm.DB) StatsServicer {
	return &statsService{db: db}
}

// GetStats returns the owner's stats row, or nil if none exists.
func (s *statsService) GetStats(ownerID uint) (*models.DashboardStats, error) {
	return findStats(s.db, ownerID)
}

// RecomputeStats rederives income, expenses and savings from the profile and
// the expense rows. It does nothing when the owner has no profile.
func (s *statsService) RecomputeStats(ownerID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return recomputeStats(tx, ownerID)
	})
}

// UpdateStats sets the user-entered balance. It does nothing when the owner has no stats row.
func (s *statsService) UpdateStats(ownerID uint, update StatsUpdate) error {
	updates := map[string]interface{}{"last_updated": time.Now()}
	if update.TotalBalance != nil {
		updates["total_balance"] = *update.TotalBalance
	}

	err := s.db.Model(&models.DashboardStats{}).
		Where("owner_id = ?", ownerID).
		Updates(updates).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}

func findStats(db *gorm.DB, ownerID uint) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := db.Where("owner_id = ?", ownerID).Order("id").First(&stats).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return &stats, nil
}

func findProfile(db *gorm.DB, ownerID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := db.Where("id = ?", ownerID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return &profile, nil
}

// recomputeStats runs inside the caller's transaction so a write and the
// aggregates it changes commit together.
func recomputeStats(tx *gorm.DB, ownerID uint) error {
	profile, err := findProfile(tx, ownerID)
	if err != nil || profile == nil {
		return err
	}

	var expenses []models.ExpenseItem
	if err := tx.Where("owner_id = ?", ownerID).Find(&expenses).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	total := models.SumExpenses(expenses)

	stats, err := findStats(tx, ownerID)
	if err != nil {
		return err
	}

	creating := stats == nil
	if creating {
		stats = &models.DashboardStats{
			ID:           ownerID,
			TotalBalance: decimal.Zero,
			Owned:        models.Owned{OwnerID: ownerID},
		}
	}
	stats.MonthlyIncome = profile.MonthlyIncome
	stats.MonthlyExpenses = total
	stats.MonthlySavings = profile.MonthlyIncome.Sub(total)
	stats.LastUpdated = time.Now()

	if creating {
		err = tx.Create(stats).Error
	} else {
		err = tx.Save(stats).Error
	}
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}
