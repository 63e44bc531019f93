package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "finplanner/internal/errors"
	"finplanner/internal/models"
)

// sipService handles SIP plans.
type sipService struct {
	db *gorm.DB
}

// NewSipService creates a new SipServicer.
func NewSipService(db *gorm.DB) SipServicer {
	return &sipService{db: db}
}

// GetActiveSip returns the owner's active plan, or nil if none is active.
// If an import left several rows active, the lowest id wins.
func (s *sipService) GetActiveSip(ownerID uint) (*models.SipInvestment, error) {
	var sip models.SipInvestment
	err := s.db.Where("owner_id = ? AND is_active = ?", ownerID, true).Order("id").First(&sip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return &sip, nil
}

// ListSips returns every plan of the owner, active or not.
func (s *sipService) ListSips(ownerID uint) ([]models.SipInvestment, error) {
	var sips []models.SipInvestment
	if err := s.db.Where("owner_id = ?", ownerID).Order("id").Find(&sips).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return sips, nil
}

// UpdateActiveSip changes the active plan in place. It never creates a row.
func (s *sipService) UpdateActiveSip(ownerID uint, update SipUpdate) error {
	if err := validateSipUpdate(update); err != nil {
		return err
	}

	active, err := s.GetActiveSip(ownerID)
	if err != nil || active == nil {
		return err
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.MonthlyInvestment != nil {
		updates["monthly_investment"] = *update.MonthlyInvestment
	}
	if update.ExpectedReturn != nil {
		updates["expected_return"] = *update.ExpectedReturn
	}
	if update.InvestmentPeriod != nil {
		updates["investment_period"] = *update.InvestmentPeriod
	}

	if err := s.db.Model(active).Updates(updates).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}

// CreateSip stores a new plan. When activate is set, every other plan of the
// owner is deactivated in the same transaction.
func (s *sipService) CreateSip(ownerID uint, fields SipFields, activate bool) (*models.SipInvestment, error) {
	if strings.TrimSpace(fields.Name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if fields.MonthlyInvestment.IsNegative() || fields.ExpectedReturn.IsNegative() || fields.InvestmentPeriod < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amounts and period must not be negative")
	}

	sip := &models.SipInvestment{
		Name:              fields.Name,
		MonthlyInvestment: fields.MonthlyInvestment,
		ExpectedReturn:    fields.ExpectedReturn,
		InvestmentPeriod:  fields.InvestmentPeriod,
		IsActive:          activate,
		Owned:             models.Owned{OwnerID: ownerID},
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if activate {
			if err := deactivateSips(tx, ownerID); err != nil {
				return err
			}
		}
		if err := tx.Create(sip).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrStorage, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sip, nil
}

// ActivateSip makes the given plan the only active one. It does nothing when
// the plan does not belong to the owner.
func (s *sipService) ActivateSip(ownerID, sipID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.SipInvestment{}).Where("id = ? AND owner_id = ?", sipID, ownerID).Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrStorage, err)
		}
		if count == 0 {
			return nil
		}

		if err := deactivateSips(tx, ownerID); err != nil {
			return err
		}
		err := tx.Model(&models.SipInvestment{}).
			Where("id = ?", sipID).
			Updates(map[string]interface{}{"is_active": true, "updated_at": time.Now()}).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrStorage, err)
		}
		return nil
	})
}

func deactivateSips(tx *gorm.DB, ownerID uint) error {
	err := tx.Model(&models.SipInvestment{}).
		Where("owner_id = ? AND is_active = ?", ownerID, true).
		Updates(map[string]interface{}{"is_active": false, "updated_at": time.Now()}).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}

func validateSipUpdate(update SipUpdate) error {
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "name must not be empty")
	}
	if update.MonthlyInvestment != nil && update.MonthlyInvestment.IsNegative() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "monthly investment must not be negative")
	}
	if update.ExpectedReturn != nil && update.ExpectedReturn.IsNegative() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "expected return must not be negative")
	}
	if update.InvestmentPeriod != nil && *update.InvestmentPeriod < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "investment period must not be negative")
	}
	return nil
}
