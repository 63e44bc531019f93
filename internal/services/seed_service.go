package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "finplanner/internal/errors"
	"finplanner/internal/logger"
	"finplanner/internal/models"
)

// Default data written to an empty store.
var (
	defaultProfileName   = "User"
	defaultMonthlyIncome = decimal.NewFromInt(85000)
	defaultTotalBalance  = decimal.NewFromInt(245000)

	defaultExpenses = []struct {
		category string
		amount   int64
	}{
		{"Housing", 25000},
		{"Food", 8000},
		{"Transportation", 5000},
		{"Utilities", 3000},
	}

	defaultSip = models.SipInvestment{
		Name:              "Default SIP",
		MonthlyInvestment: decimal.NewFromInt(10000),
		ExpectedReturn:    decimal.NewFromInt(12),
		InvestmentPeriod:  15,
		IsActive:          true,
	}

	defaultGoals = []models.FinancialGoal{
		{Name: "Emergency Fund", TargetAmount: decimal.NewFromInt(500000), CurrentAmount: decimal.NewFromInt(375000), Category: models.GoalCategoryEmergency, IsActive: true},
		{Name: "Home Down Payment", TargetAmount: decimal.NewFromInt(2000000), CurrentAmount: decimal.NewFromInt(900000), Category: models.GoalCategoryHouse, IsActive: true},
		{Name: "Vacation Fund", TargetAmount: decimal.NewFromInt(150000), CurrentAmount: decimal.NewFromInt(135000), Category: models.GoalCategoryVacation, IsActive: true},
	}

	starterPortfolio = []models.PortfolioItem{
		{ItemID: "savings", Name: "Savings Account", Category: "Cash", Amount: decimal.NewFromInt(150000), Icon: "PiggyBank", Color: "bg-blue-100 text-blue-600", Description: "Bank savings and cash"},
		{ItemID: "mutual-funds", Name: "Mutual Funds", Category: "Equity", Amount: decimal.NewFromInt(500000), Icon: "TrendingUp", Color: "bg-purple-100 text-purple-600", Description: "SIP and lump sum holdings"},
		{ItemID: "stocks", Name: "Stocks", Category: "Equity", Amount: decimal.NewFromInt(250000), Icon: "TrendingUp", Color: "bg-orange-100 text-orange-600", Description: "Direct equity"},
		{ItemID: "fixed-deposits", Name: "Fixed Deposits", Category: "Debt", Amount: decimal.NewFromInt(200000), Icon: "Wallet", Color: "bg-teal-100 text-teal-600", Description: "Bank and corporate FDs"},
		{ItemID: "gold", Name: "Gold", Category: "Commodities", Amount: decimal.NewFromInt(100000), Icon: "Target", Color: "bg-yellow-100 text-yellow-600", Description: "Physical gold and gold bonds"},
	}
)

// seedService creates default data for an owner.
type seedService struct {
	db *gorm.DB
}

// NewSeedService creates a new SeedServicer.
func NewSeedService(db *gorm.DB) SeedServicer {
	return &seedService{db: db}
}

// SeedIfEmpty writes the default profile, expenses, SIP, goals, stats and
// starter holdings. It does nothing when the owner already has a profile.
func (s *seedService) SeedIfEmpty(ownerID uint) error {
	log := logger.For("seed")

	seeded := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		profile, err := findProfile(tx, ownerID)
		if err != nil || profile != nil {
			return err
		}

		if err := seedDefaults(tx, ownerID); err != nil {
			return err
		}
		if _, err := seedPortfolio(tx, ownerID); err != nil {
			return err
		}
		seeded = true
		return recomputeStats(tx, ownerID)
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrSeedFailed, err)
	}

	if seeded {
		log.Infow("Seeded default data", "owner_id", ownerID)
	}
	return nil
}

// SeedPortfolioIfEmpty writes the starter holdings when the owner has none
// and reports how many rows were inserted.
func (s *seedService) SeedPortfolioIfEmpty(ownerID uint) (int, error) {
	var inserted int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		inserted, err = seedPortfolio(tx, ownerID)
		return err
	})
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrSeedFailed, err)
	}

	if inserted > 0 {
		logger.For("seed").Infow("Seeded starter portfolio", "owner_id", ownerID, "items", inserted)
	}
	return inserted, nil
}

// SeedSampleTransactions appends a handful of example ledger rows dated over
// the past week. It is not idempotent.
func (s *seedService) SeedSampleTransactions(ownerID uint) error {
	now := time.Now()
	day := 24 * time.Hour
	samples := []models.Transaction{
		{Description: "Salary Credit", Amount: decimal.NewFromInt(85000), Type: models.TransactionTypeIncome, Category: "Salary", Date: now},
		{Description: "Rent Payment", Amount: decimal.NewFromInt(-25000), Type: models.TransactionTypeExpense, Category: "Housing", Date: now.Add(-day)},
		{Description: "SIP Investment", Amount: decimal.NewFromInt(-10000), Type: models.TransactionTypeInvestment, Category: "Mutual Funds", Date: now.Add(-2 * day)},
		{Description: "Grocery Shopping", Amount: decimal.NewFromInt(-3500), Type: models.TransactionTypeExpense, Category: "Food", Date: now.Add(-3 * day)},
		{Description: "Emergency Fund Contribution", Amount: decimal.NewFromInt(-5000), Type: models.TransactionTypeGoalContribution, Category: "Emergency Fund", Date: now.Add(-5 * day)},
	}
	for i := range samples {
		samples[i].OwnerID = ownerID
	}

	if err := s.db.Create(&samples).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrSeedFailed, err)
	}
	return nil
}

func seedDefaults(tx *gorm.DB, ownerID uint) error {
	owned := models.Owned{OwnerID: ownerID}

	profile := &models.UserProfile{ID: ownerID, Name: defaultProfileName, MonthlyIncome: defaultMonthlyIncome}
	if err := tx.Create(profile).Error; err != nil {
		return err
	}

	expenses := make([]models.ExpenseItem, 0, len(defaultExpenses))
	for _, e := range defaultExpenses {
		expenses = append(expenses, models.ExpenseItem{Category: e.category, Amount: decimal.NewFromInt(e.amount), Owned: owned})
	}
	if err := tx.Create(&expenses).Error; err != nil {
		return err
	}

	sip := defaultSip
	sip.Owned = owned
	if err := tx.Create(&sip).Error; err != nil {
		return err
	}

	goals := make([]models.FinancialGoal, len(defaultGoals))
	copy(goals, defaultGoals)
	for i := range goals {
		goals[i].Owned = owned
	}
	if err := tx.Create(&goals).Error; err != nil {
		return err
	}

	var statsCount int64
	if err := tx.Model(&models.DashboardStats{}).Where("owner_id = ?", ownerID).Count(&statsCount).Error; err != nil {
		return err
	}
	if statsCount > 0 {
		return nil
	}
	stats := &models.DashboardStats{
		ID:           ownerID,
		TotalBalance: defaultTotalBalance,
		LastUpdated:  time.Now(),
		Owned:        owned,
	}
	return tx.Create(stats).Error
}

func seedPortfolio(tx *gorm.DB, ownerID uint) (int, error) {
	var count int64
	if err := tx.Model(&models.PortfolioItem{}).Where("owner_id = ?", ownerID).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	items := make([]models.PortfolioItem, len(starterPortfolio))
	copy(items, starterPortfolio)
	for i := range items {
		items[i].OwnerID = ownerID
	}
	if err := tx.Create(&items).Error; err != nil {
		return 0, err
	}
	return len(items), nil
}
