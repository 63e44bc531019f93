package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "finplanner/internal/errors"
	"finplanner/internal/models"
)

// profileService handles the owner's profile.
type profileService struct {
	db *gorm.DB
}

// NewProfileService creates a new ProfileServicer.
func NewProfileService(db *gorm.DB) ProfileServicer {
	return &profileService{db: db}
}

// GetProfile returns the owner's profile, or nil before seeding.
func (s *profileService) GetProfile(ownerID uint) (*models.UserProfile, error) {
	return findProfile(s.db, ownerID)
}

// UpdateProfile applies the update and stamps updatedAt. An income change
// recomputes the dashboard stats in the same transaction.
func (s *profileService) UpdateProfile(ownerID uint, update ProfileUpdate) error {
	updates := map[string]interface{}{"updated_at": time.Now()}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Email != nil {
		updates["email"] = *update.Email
	}
	if update.MonthlyIncome != nil {
		updates["monthly_income"] = *update.MonthlyIncome
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.UserProfile{}).Where("id = ?", ownerID).Updates(updates)
		if result.Error != nil {
			return apperrors.Wrap(apperrors.ErrStorage, result.Error)
		}
		if result.RowsAffected == 0 || update.MonthlyIncome == nil {
			return nil
		}
		return recomputeStats(tx, ownerID)
	})
}
