package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"finplanner/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Dec parses a decimal literal and panics on malformed input.
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// CreateTestProfile creates the profile of the given owner with the given monthly income.
func CreateTestProfile(t *testing.T, db *gorm.DB, ownerID uint, income string) *models.UserProfile {
	t.Helper()

	profile := &models.UserProfile{
		ID:            ownerID,
		Name:          fmt.Sprintf("Test User %d", nextID()),
		MonthlyIncome: Dec(income),
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}
	return profile
}

// CreateTestStats creates the stats row of the given owner with the given balance.
func CreateTestStats(t *testing.T, db *gorm.DB, ownerID uint, balance string) *models.DashboardStats {
	t.Helper()

	stats := &models.DashboardStats{
		ID:           ownerID,
		TotalBalance: Dec(balance),
		LastUpdated:  time.Now(),
		Owned:        models.Owned{OwnerID: ownerID},
	}
	if err := db.Create(stats).Error; err != nil {
		t.Fatalf("failed to create test stats: %v", err)
	}
	return stats
}

// CreateTestExpense inserts an expense row directly, bypassing recomputation.
func CreateTestExpense(t *testing.T, db *gorm.DB, ownerID uint, category, amount string) *models.ExpenseItem {
	t.Helper()

	expense := &models.ExpenseItem{
		Category: category,
		Amount:   Dec(amount),
		Owned:    models.Owned{OwnerID: ownerID},
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestSip creates a SIP plan with 10000/month at 12% for 15 years.
func CreateTestSip(t *testing.T, db *gorm.DB, ownerID uint, active bool) *models.SipInvestment {
	t.Helper()

	sip := &models.SipInvestment{
		Name:              fmt.Sprintf("Test SIP %d", nextID()),
		MonthlyInvestment: Dec("10000"),
		ExpectedReturn:    Dec("12"),
		InvestmentPeriod:  15,
		IsActive:          active,
		Owned:             models.Owned{OwnerID: ownerID},
	}
	if err := db.Create(sip).Error; err != nil {
		t.Fatalf("failed to create test sip: %v", err)
	}
	return sip
}

// CreateTestGoal creates an active goal with the given target and progress.
func CreateTestGoal(t *testing.T, db *gorm.DB, ownerID uint, target, current string) *models.FinancialGoal {
	t.Helper()

	goal := &models.FinancialGoal{
		Name:          fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount:  Dec(target),
		CurrentAmount: Dec(current),
		Category:      models.GoalCategoryOther,
		IsActive:      true,
		Owned:         models.Owned{OwnerID: ownerID},
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CreateTestTransaction creates a ledger row of the given type and signed amount.
func CreateTestTransaction(t *testing.T, db *gorm.DB, ownerID uint, txType models.TransactionType, amount string, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
		Amount:      Dec(amount),
		Type:        txType,
		Category:    "Test",
		Date:        date,
		Owned:       models.Owned{OwnerID: ownerID},
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestPortfolioItem creates a holding with the given business key.
func CreateTestPortfolioItem(t *testing.T, db *gorm.DB, ownerID uint, itemID, category, amount string) *models.PortfolioItem {
	t.Helper()

	item := &models.PortfolioItem{
		ItemID:   itemID,
		Name:     fmt.Sprintf("Test Holding %d", nextID()),
		Category: category,
		Amount:   Dec(amount),
		Owned:    models.Owned{OwnerID: ownerID},
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test portfolio item: %v", err)
	}
	return item
}
