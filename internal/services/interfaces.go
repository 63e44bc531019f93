package services

import (
	"time"

	"github.com/shopspring/decimal"

	"finplanner/internal/models"
	"finplanner/internal/pagination"
)

// Every servicer call takes the owner scope explicitly. Updates and deletes
// of records that do not exist in that scope are silent no-ops.

// ProfileUpdate holds the profile fields to change. Nil fields are left as-is.
type ProfileUpdate struct {
	Name          *string
	Email         *string
	MonthlyIncome *decimal.Decimal
}

// ProfileServicer defines the contract for the owner's profile.
type ProfileServicer interface {
	GetProfile(ownerID uint) (*models.UserProfile, error)
	UpdateProfile(ownerID uint, update ProfileUpdate) error
}

// ExpenseUpdate holds the expense fields to change. Nil fields are left as-is.
type ExpenseUpdate struct {
	Category *string
	Amount   *decimal.Decimal
}

// ExpenseServicer defines the contract for monthly expense rows. Every write
// recomputes the owner's dashboard stats in the same store transaction.
type ExpenseServicer interface {
	ListExpenses(ownerID uint) ([]models.ExpenseItem, error)
	AddExpense(ownerID uint, category string, amount decimal.Decimal) (uint, error)
	AddToCategory(ownerID uint, category string, amount decimal.Decimal) (uint, error)
	UpdateExpense(ownerID, expenseID uint, update ExpenseUpdate) error
	DeleteExpense(ownerID, expenseID uint) error
}

// SipFields describes a new SIP plan.
type SipFields struct {
	Name              string
	MonthlyInvestment decimal.Decimal
	ExpectedReturn    decimal.Decimal
	InvestmentPeriod  int
}

// SipUpdate holds the SIP fields to change. Nil fields are left as-is.
type SipUpdate struct {
	Name              *string
	MonthlyInvestment *decimal.Decimal
	ExpectedReturn    *decimal.Decimal
	InvestmentPeriod  *int
}

// SipServicer defines the contract for SIP plans. At most one plan per owner is active.
type SipServicer interface {
	GetActiveSip(ownerID uint) (*models.SipInvestment, error)
	ListSips(ownerID uint) ([]models.SipInvestment, error)
	UpdateActiveSip(ownerID uint, update SipUpdate) error
	CreateSip(ownerID uint, fields SipFields, activate bool) (*models.SipInvestment, error)
	ActivateSip(ownerID, sipID uint) error
}

// GoalFields describes a new financial goal.
type GoalFields struct {
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    *time.Time
	Category      models.GoalCategory
}

// GoalServicer defines the contract for financial goals.
type GoalServicer interface {
	ListActiveGoals(ownerID uint) ([]models.FinancialGoal, error)
	SetGoalProgress(ownerID, goalID uint, currentAmount decimal.Decimal) error
	AddGoal(ownerID uint, fields GoalFields) (*models.FinancialGoal, error)
	ArchiveGoal(ownerID, goalID uint) error
}

// StatsUpdate holds the user-entered dashboard fields.
type StatsUpdate struct {
	TotalBalance *decimal.Decimal
}

// StatsServicer defines the contract for the cached dashboard aggregates.
type StatsServicer interface {
	GetStats(ownerID uint) (*models.DashboardStats, error)
	RecomputeStats(ownerID uint) error
	UpdateStats(ownerID uint, update StatsUpdate) error
}

// TransactionFields describes a new ledger entry. A zero Date means now.
type TransactionFields struct {
	Description string
	Amount      decimal.Decimal
	Type        models.TransactionType
	Category    string
	Date        time.Time
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Type     *models.TransactionType
}

// TransactionServicer defines the contract for the activity log.
type TransactionServicer interface {
	ListRecentTransactions(ownerID uint, limit int) ([]models.Transaction, error)
	ListTransactions(ownerID uint, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	AddTransaction(ownerID uint, fields TransactionFields) (*models.Transaction, error)
}

// PortfolioItemFields describes a new holding. An empty ItemID is generated.
type PortfolioItemFields struct {
	ItemID      string
	Name        string
	Category    string
	Amount      decimal.Decimal
	Icon        string
	Color       string
	Description string
}

// PortfolioItemUpdate holds the holding fields to change. Nil fields are left as-is.
type PortfolioItemUpdate struct {
	Name        *string
	Category    *string
	Amount      *decimal.Decimal
	Icon        *string
	Color       *string
	Description *string
}

// PortfolioSummary contains the owner's net worth and its split by category.
type PortfolioSummary struct {
	NetWorth    decimal.Decimal      `json:"netWorth"`
	ItemCount   int                  `json:"itemCount"`
	Allocations []CategoryAllocation `json:"allocations"`
}

// CategoryAllocation is the share of net worth held in one category.
type CategoryAllocation struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Count      int             `json:"count"`
	Percentage float64         `json:"percentage"`
}

// PortfolioServicer defines the contract for manually valued holdings.
type PortfolioServicer interface {
	ListPortfolioItems(ownerID uint) ([]models.PortfolioItem, error)
	FindPortfolioItemByKey(ownerID uint, itemID string) (*models.PortfolioItem, error)
	AddPortfolioItem(ownerID uint, fields PortfolioItemFields) (*models.PortfolioItem, error)
	UpdatePortfolioItem(ownerID uint, itemID string, update PortfolioItemUpdate) error
	DeletePortfolioItem(ownerID uint, itemID string) error
	PortfolioSummary(ownerID uint) (*PortfolioSummary, error)
}

// SeedServicer defines the contract for default data creation.
type SeedServicer interface {
	SeedIfEmpty(ownerID uint) error
	SeedPortfolioIfEmpty(ownerID uint) (int, error)
	SeedSampleTransactions(ownerID uint) error
}

// DataServicer defines the contract for whole-store export, import and reset.
// It works on raw rows of every owner and bypasses per-collection rules.
type DataServicer interface {
	ExportAll() (*Document, error)
	ImportAll(doc *Document) error
	ClearAll() error
	ResetToDefaults(ownerID uint) error
	Stats() (map[string]int64, error)
}

// AnalysisServicer defines the contract for the derived planning views.
type AnalysisServicer interface {
	BudgetSummary(ownerID uint) (*BudgetSummary, error)
	SipProjection(ownerID uint, req SipProjectionRequest) (*SipProjection, error)
	GoalProjection(ownerID uint, req GoalProjectionRequest) (*GoalProjection, error)
}
