package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "finplanner/internal/errors"
	"finplanner/internal/models"
	"finplanner/internal/pagination"
)

// DefaultRecentLimit is the number of ledger rows shown on the dashboard.
const DefaultRecentLimit = 10

// transactionService handles the activity log.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// ListRecentTransactions returns the newest rows first. A limit of zero or
// less means DefaultRecentLimit.
func (s *transactionService) ListRecentTransactions(ownerID uint, limit int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	var transactions []models.Transaction
	err := s.db.Where("owner_id = ?", ownerID).
		Order("date DESC").Order("id DESC").
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return transactions, nil
}

// ListTransactions returns one page of the owner's ledger, newest first.
func (s *transactionService) ListTransactions(
	ownerID uint,
	page pagination.PageRequest,
	filter TransactionFilter,
) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("owner_id = ?", ownerID)
	if filter.FromDate != nil {
		base = base.Where("date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		base = base.Where("date <= ?", *filter.ToDate)
	}
	if filter.Type != nil {
		base = base.Where("type = ?", *filter.Type)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	var transactions []models.Transaction
	err := base.Order("date DESC").Order("id DESC").
		Scopes(pagination.Paginate(page)).
		Find(&transactions).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// AddTransaction appends a ledger row. Amounts are signed and never checked
// against the expense rows.
func (s *transactionService) AddTransaction(ownerID uint, fields TransactionFields) (*models.Transaction, error) {
	if strings.TrimSpace(fields.Description) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if !fields.Type.Valid() {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if fields.Date.IsZero() {
		fields.Date = time.Now()
	}

	tx := &models.Transaction{
		Description: fields.Description,
		Amount:      fields.Amount,
		Type:        fields.Type,
		Category:    fields.Category,
		Date:        fields.Date,
		Owned:       models.Owned{OwnerID: ownerID},
	}
	if err := s.db.Create(tx).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return tx, nil
}
