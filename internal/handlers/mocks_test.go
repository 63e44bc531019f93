package handlers

import (
	"github.com/shopspring/decimal"

	"finplanner/internal/models"
	"finplanner/internal/pagination"
	"finplanner/internal/services"
)

// --- mock profile service ---

type mockProfileService struct {
	getProfileFn    func(ownerID uint) (*models.UserProfile, error)
	updateProfileFn func(ownerID uint, update services.ProfileUpdate) error
}

func (m *mockProfileService) GetProfile(ownerID uint) (*models.UserProfile, error) {
	if m.getProfileFn != nil {
		return m.getProfileFn(ownerID)
	}
	return &models.UserProfile{ID: ownerID, Name: "User", MonthlyIncome: decimal.NewFromInt(85000)}, nil
}

func (m *mockProfileService) UpdateProfile(ownerID uint, update services.ProfileUpdate) error {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ownerID, update)
	}
	return nil
}

var _ services.ProfileServicer = (*mockProfileService)(nil)

// --- mock stats service ---

type mockStatsService struct {
	getStatsFn       func(ownerID uint) (*models.DashboardStats, error)
	recomputeStatsFn func(ownerID uint) error
	updateStatsFn    func(ownerID uint, update services.StatsUpdate) error
}

func (m *mockStatsService) GetStats(ownerID uint) (*models.DashboardStats, error) {
	if m.getStatsFn != nil {
		return m.getStatsFn(ownerID)
	}
	return &models.DashboardStats{ID: ownerID}, nil
}

func (m *mockStatsService) RecomputeStats(ownerID uint) error {
	if m.recomputeStatsFn != nil {
		return m.recomputeStatsFn(ownerID)
	}
	return nil
}

func (m *mockStatsService) UpdateStats(ownerID uint, update services.StatsUpdate) error {
	if m.updateStatsFn != nil {
		return m.updateStatsFn(ownerID, update)
	}
	return nil
}

var _ services.StatsServicer = (*mockStatsService)(nil)

// --- mock expense service ---

type mockExpenseService struct {
	listExpensesFn  func(ownerID uint) ([]models.ExpenseItem, error)
	addExpenseFn    func(ownerID uint, category string, amount decimal.Decimal) (uint, error)
	addToCategoryFn func(ownerID uint, category string, amount decimal.Decimal) (uint, error)
	updateExpenseFn func(ownerID, expenseID uint, update services.ExpenseUpdate) error
	deleteExpenseFn func(ownerID, expenseID uint) error
}

func (m *mockExpenseService) ListExpenses(ownerID uint) ([]models.ExpenseItem, error) {
	if m.listExpensesFn != nil {
		return m.listExpensesFn(ownerID)
	}
	return []models.ExpenseItem{}, nil
}

func (m *mockExpenseService) AddExpense(ownerID uint, category string, amount decimal.Decimal) (uint, error) {
	if m.addExpenseFn != nil {
		return m.addExpenseFn(ownerID, category, amount)
	}
	return 1, nil
}

func (m *mockExpenseService) AddToCategory(ownerID uint, category string, amount decimal.Decimal) (uint, error) {
	if m.addToCategoryFn != nil {
		return m.addToCategoryFn(ownerID, category, amount)
	}
	return 1, nil
}

func (m *mockExpenseService) UpdateExpense(ownerID, expenseID uint, update services.ExpenseUpdate) error {
	if m.updateExpenseFn != nil {
		return m.updateExpenseFn(ownerID, expenseID, update)
	}
	return nil
}

func (m *mockExpenseService) DeleteExpense(ownerID, expenseID uint) error {
	if m.deleteExpenseFn != nil {
		return m.deleteExpenseFn(ownerID, expenseID)
	}
	return nil
}

var _ services.ExpenseServicer = (*mockExpenseService)(nil)

// --- mock sip service ---

type mockSipService struct {
	getActiveSipFn    func(ownerID uint) (*models.SipInvestment, error)
	listSipsFn        func(ownerID uint) ([]models.SipInvestment, error)
	updateActiveSipFn func(ownerID uint, update services.SipUpdate) error
	createSipFn       func(ownerID uint, fields services.SipFields, activate bool) (*models.SipInvestment, error)
	activateSipFn     func(ownerID, sipID uint) error
}

func (m *mockSipService) GetActiveSip(ownerID uint) (*models.SipInvestment, error) {
	if m.getActiveSipFn != nil {
		return m.getActiveSipFn(ownerID)
	}
	return nil, nil
}

func (m *mockSipService) ListSips(ownerID uint) ([]models.SipInvestment, error) {
	if m.listSipsFn != nil {
		return m.listSipsFn(ownerID)
	}
	return []models.SipInvestment{}, nil
}

func (m *mockSipService) UpdateActiveSip(ownerID uint, update services.SipUpdate) error {
	if m.updateActiveSipFn != nil {
		return m.updateActiveSipFn(ownerID, update)
	}
	return nil
}

func (m *mockSipService) CreateSip(ownerID uint, fields services.SipFields, activate bool) (*models.SipInvestment, error) {
	if m.createSipFn != nil {
		return m.createSipFn(ownerID, fields, activate)
	}
	return &models.SipInvestment{ID: 1, Name: fields.Name, IsActive: activate}, nil
}

func (m *mockSipService) ActivateSip(ownerID, sipID uint) error {
	if m.activateSipFn != nil {
		return m.activateSipFn(ownerID, sipID)
	}
	return nil
}

var _ services.SipServicer = (*mockSipService)(nil)

// --- mock goal service ---

type mockGoalService struct {
	listActiveGoalsFn func(ownerID uint) ([]models.FinancialGoal, error)
	setGoalProgressFn func(ownerID, goalID uint, currentAmount decimal.Decimal) error
	addGoalFn         func(ownerID uint, fields services.GoalFields) (*models.FinancialGoal, error)
	archiveGoalFn     func(ownerID, goalID uint) error
}

func (m *mockGoalService) ListActiveGoals(ownerID uint) ([]models.FinancialGoal, error) {
	if m.listActiveGoalsFn != nil {
		return m.listActiveGoalsFn(ownerID)
	}
	return []models.FinancialGoal{}, nil
}

func (m *mockGoalService) SetGoalProgress(ownerID, goalID uint, currentAmount decimal.Decimal) error {
	if m.setGoalProgressFn != nil {
		return m.setGoalProgressFn(ownerID, goalID, currentAmount)
	}
	return nil
}

func (m *mockGoalService) AddGoal(ownerID uint, fields services.GoalFields) (*models.FinancialGoal, error) {
	if m.addGoalFn != nil {
		return m.addGoalFn(ownerID, fields)
	}
	return &models.FinancialGoal{ID: 1, Name: fields.Name, Category: fields.Category}, nil
}

func (m *mockGoalService) ArchiveGoal(ownerID, goalID uint) error {
	if m.archiveGoalFn != nil {
		return m.archiveGoalFn(ownerID, goalID)
	}
	return nil
}

var _ services.GoalServicer = (*mockGoalService)(nil)

// --- mock transaction service ---

type mockTransactionService struct {
	listRecentFn     func(ownerID uint, limit int) ([]models.Transaction, error)
	listFn           func(ownerID uint, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	addTransactionFn func(ownerID uint, fields services.TransactionFields) (*models.Transaction, error)
}

func (m *mockTransactionService) ListRecentTransactions(ownerID uint, limit int) ([]models.Transaction, error) {
	if m.listRecentFn != nil {
		return m.listRecentFn(ownerID, limit)
	}
	return []models.Transaction{}, nil
}

func (m *mockTransactionService) ListTransactions(ownerID uint, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	if m.listFn != nil {
		return m.listFn(ownerID, page, filter)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, page.Page, page.PageSize, 0)
	return &resp, nil
}

func (m *mockTransactionService) AddTransaction(ownerID uint, fields services.TransactionFields) (*models.Transaction, error) {
	if m.addTransactionFn != nil {
		return m.addTransactionFn(ownerID, fields)
	}
	return &models.Transaction{ID: 1, Description: fields.Description, Amount: fields.Amount, Type: fields.Type}, nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

// --- mock portfolio service ---

type mockPortfolioService struct {
	listFn    func(ownerID uint) ([]models.PortfolioItem, error)
	findFn    func(ownerID uint, itemID string) (*models.PortfolioItem, error)
	addFn     func(ownerID uint, fields services.PortfolioItemFields) (*models.PortfolioItem, error)
	updateFn  func(ownerID uint, itemID string, update services.PortfolioItemUpdate) error
	deleteFn  func(ownerID uint, itemID string) error
	summaryFn func(ownerID uint) (*services.PortfolioSummary, error)
}

func (m *mockPortfolioService) ListPortfolioItems(ownerID uint) ([]models.PortfolioItem, error) {
	if m.listFn != nil {
		return m.listFn(ownerID)
	}
	return []models.PortfolioItem{}, nil
}

func (m *mockPortfolioService) FindPortfolioItemByKey(ownerID uint, itemID string) (*models.PortfolioItem, error) {
	if m.findFn != nil {
		return m.findFn(ownerID, itemID)
	}
	return nil, nil
}

func (m *mockPortfolioService) AddPortfolioItem(ownerID uint, fields services.PortfolioItemFields) (*models.PortfolioItem, error) {
	if m.addFn != nil {
		return m.addFn(ownerID, fields)
	}
	return &models.PortfolioItem{ID: 1, ItemID: fields.ItemID, Name: fields.Name, Amount: fields.Amount}, nil
}

func (m *mockPortfolioService) UpdatePortfolioItem(ownerID uint, itemID string, update services.PortfolioItemUpdate) error {
	if m.updateFn != nil {
		return m.updateFn(ownerID, itemID, update)
	}
	return nil
}

func (m *mockPortfolioService) DeletePortfolioItem(ownerID uint, itemID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ownerID, itemID)
	}
	return nil
}

func (m *mockPortfolioService) PortfolioSummary(ownerID uint) (*services.PortfolioSummary, error) {
	if m.summaryFn != nil {
		return m.summaryFn(ownerID)
	}
	return &services.PortfolioSummary{NetWorth: decimal.Zero, Allocations: []services.CategoryAllocation{}}, nil
}

var _ services.PortfolioServicer = (*mockPortfolioService)(nil)

// --- mock data service ---

type mockDataService struct {
	exportAllFn func() (*services.Document, error)
	importAllFn func(doc *services.Document) error
	clearAllFn  func() error
	resetFn     func(ownerID uint) error
	statsFn     func() (map[string]int64, error)
}

func (m *mockDataService) ExportAll() (*services.Document, error) {
	if m.exportAllFn != nil {
		return m.exportAllFn()
	}
	return &services.Document{}, nil
}

func (m *mockDataService) ImportAll(doc *services.Document) error {
	if m.importAllFn != nil {
		return m.importAllFn(doc)
	}
	return nil
}

func (m *mockDataService) ClearAll() error {
	if m.clearAllFn != nil {
		return m.clearAllFn()
	}
	return nil
}

func (m *mockDataService) ResetToDefaults(ownerID uint) error {
	if m.resetFn != nil {
		return m.resetFn(ownerID)
	}
	return nil
}

func (m *mockDataService) Stats() (map[string]int64, error) {
	if m.statsFn != nil {
		return m.statsFn()
	}
	return map[string]int64{}, nil
}

var _ services.DataServicer = (*mockDataService)(nil)

// --- mock analysis service ---

type mockAnalysisService struct {
	budgetFn func(ownerID uint) (*services.BudgetSummary, error)
	sipFn    func(ownerID uint, req services.SipProjectionRequest) (*services.SipProjection, error)
	goalFn   func(ownerID uint, req services.GoalProjectionRequest) (*services.GoalProjection, error)
}

func (m *mockAnalysisService) BudgetSummary(ownerID uint) (*services.BudgetSummary, error) {
	if m.budgetFn != nil {
		return m.budgetFn(ownerID)
	}
	return &services.BudgetSummary{}, nil
}

func (m *mockAnalysisService) SipProjection(ownerID uint, req services.SipProjectionRequest) (*services.SipProjection, error) {
	if m.sipFn != nil {
		return m.sipFn(ownerID, req)
	}
	return &services.SipProjection{}, nil
}

func (m *mockAnalysisService) GoalProjection(ownerID uint, req services.GoalProjectionRequest) (*services.GoalProjection, error) {
	if m.goalFn != nil {
		return m.goalFn(ownerID, req)
	}
	return &services.GoalProjection{}, nil
}

var _ services.AnalysisServicer = (*mockAnalysisService)(nil)
