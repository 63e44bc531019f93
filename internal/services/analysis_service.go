package services

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"finplanner/internal/models"
	"finplanner/internal/planner"
)

// Planning defaults used when a request leaves a parameter out.
const (
	DefaultGoalTarget     = 10000000 // 1 crore
	DefaultGoalReturn     = 0.12
	DefaultGoalInflation  = 0.06
	DefaultGoalYears      = 10
	DefaultLumpSum        = 100000
	DefaultSipMonthly     = 10000
	DefaultSipReturnPct   = 12
	DefaultSipPeriodYears = 15
)

// Budget thresholds, in percent of income.
const (
	expenseWarningRate = 80
	healthySavingsRate = 20
)

// BudgetSummary splits the month's income into expenses and savings.
type BudgetSummary struct {
	MonthlyIncome   decimal.Decimal     `json:"monthlyIncome"`
	TotalExpenses   decimal.Decimal     `json:"totalExpenses"`
	Savings         decimal.Decimal     `json:"savings"`
	SavingsRate     float64             `json:"savingsRate"`
	ExpenseRate     float64             `json:"expenseRate"`
	ExpenseWarning  bool                `json:"expenseWarning"`
	SavingsHealthy  bool                `json:"savingsHealthy"`
	Needs           decimal.Decimal     `json:"needs"`
	Wants           decimal.Decimal     `json:"wants"`
	NeedsPercentage float64             `json:"needsPercentage"`
	WantsPercentage float64             `json:"wantsPercentage"`
	Categories      []CategoryBreakdown `json:"categories"`
}

// CategoryBreakdown is one expense category's share of total expenses.
type CategoryBreakdown struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
	Need       bool            `json:"need"`
}

// SipProjectionRequest overrides the active plan for a what-if projection.
type SipProjectionRequest struct {
	MonthlyInvestment *decimal.Decimal
	ExpectedReturn    *decimal.Decimal
	InvestmentPeriod  *int
	LumpSum           *decimal.Decimal
	StepUpRate        *float64
}

// SipProjection compares a plain SIP, a lump sum and a step-up SIP over the same period.
type SipProjection struct {
	SipID             *uint              `json:"sipId,omitempty"`
	MonthlyInvestment float64            `json:"monthlyInvestment"`
	ExpectedReturn    float64            `json:"expectedReturn"`
	InvestmentPeriod  int                `json:"investmentPeriod"`
	Sip               planner.Projection `json:"sip"`
	LumpSumAmount     float64            `json:"lumpSumAmount"`
	LumpSum           planner.Projection `json:"lumpSum"`
	StepUpRate        float64            `json:"stepUpRate"`
	StepUp            planner.Projection `json:"stepUp"`
	MaturityDisplay   string             `json:"maturityDisplay"`
}

// GoalProjectionRequest parameterizes the net-worth goal. Rates are fractions.
type GoalProjectionRequest struct {
	TargetAmount        *decimal.Decimal
	MonthlyContribution *decimal.Decimal
	ExpectedReturn      *float64
	InflationRate       *float64
	TargetYears         *int
	InflationAdjusted   bool
}

// GoalProjection estimates when the portfolio reaches the target.
type GoalProjection struct {
	CurrentNetWorth           float64 `json:"currentNetWorth"`
	TargetAmount              float64 `json:"targetAmount"`
	InflatedTarget            float64 `json:"inflatedTarget"`
	MonthlyContribution       float64 `json:"monthlyContribution"`
	Reachable                 bool    `json:"reachable"`
	MonthsWithoutInflation    int     `json:"monthsWithoutInflation"`
	YearsWithoutInflation     int     `json:"yearsWithoutInflation"`
	MonthsWithInflation       int     `json:"monthsWithInflation"`
	YearsWithInflation        int     `json:"yearsWithInflation"`
	Progress                  float64 `json:"progress"`
	TargetYears               int     `json:"targetYears"`
	RequiredMonthlyInvestment float64 `json:"requiredMonthlyInvestment"`
	Shortfall                 float64 `json:"shortfall"`
	NetWorthDisplay           string  `json:"netWorthDisplay"`
	TargetDisplay             string  `json:"targetDisplay"`
}

// analysisService derives planning views from stored records. It never writes.
type analysisService struct {
	db        *gorm.DB
	needs     []string
	sips      SipServicer
	portfolio PortfolioServicer
}

// NewAnalysisService creates a new AnalysisServicer. Expense categories that
// match needsCategories (ignoring case) count as needs, the rest as wants.
func NewAnalysisService(db *gorm.DB, needsCategories []string) AnalysisServicer {
	return &analysisService{
		db:        db,
		needs:     needsCategories,
		sips:      NewSipService(db),
		portfolio: NewPortfolioService(db),
	}
}

// BudgetSummary computes savings and expense rates, the needs/wants split
// and a per-category breakdown from the profile and the expense rows.
func (s *analysisService) BudgetSummary(ownerID uint) (*BudgetSummary, error) {
	profile, err := findProfile(s.db, ownerID)
	if err != nil {
		return nil, err
	}
	expenses, err := NewExpenseService(s.db).ListExpenses(ownerID)
	if err != nil {
		return nil, err
	}

	income := decimal.Zero
	if profile != nil {
		income = profile.MonthlyIncome
	}
	total := models.SumExpenses(expenses)

	summary := &BudgetSummary{
		MonthlyIncome: income,
		TotalExpenses: total,
		Savings:       income.Sub(total),
		Needs:         decimal.Zero,
		Wants:         decimal.Zero,
		Categories:    []CategoryBreakdown{},
	}
	summary.SavingsRate = percentOf(summary.Savings, income)
	summary.ExpenseRate = percentOf(total, income)
	summary.ExpenseWarning = summary.ExpenseRate > expenseWarningRate
	summary.SavingsHealthy = summary.SavingsRate >= healthySavingsRate

	index := make(map[string]int)
	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			i = len(summary.Categories)
			index[e.Category] = i
			summary.Categories = append(summary.Categories, CategoryBreakdown{
				Category: e.Category,
				Amount:   decimal.Zero,
				Need:     s.isNeed(e.Category),
			})
		}
		summary.Categories[i].Amount = summary.Categories[i].Amount.Add(e.Amount)
		if summary.Categories[i].Need {
			summary.Needs = summary.Needs.Add(e.Amount)
		} else {
			summary.Wants = summary.Wants.Add(e.Amount)
		}
	}
	for i := range summary.Categories {
		summary.Categories[i].Percentage = percentOf(summary.Categories[i].Amount, total)
	}
	sort.SliceStable(summary.Categories, func(a, b int) bool {
		return summary.Categories[a].Amount.GreaterThan(summary.Categories[b].Amount)
	})
	summary.NeedsPercentage = percentOf(summary.Needs, total)
	summary.WantsPercentage = percentOf(summary.Wants, total)

	return summary, nil
}

// SipProjection projects the active plan, or the default plan when none is
// active. Request fields override the plan's values.
func (s *analysisService) SipProjection(ownerID uint, req SipProjectionRequest) (*SipProjection, error) {
	active, err := s.sips.GetActiveSip(ownerID)
	if err != nil {
		return nil, err
	}

	p := &SipProjection{
		MonthlyInvestment: DefaultSipMonthly,
		ExpectedReturn:    DefaultSipReturnPct,
		InvestmentPeriod:  DefaultSipPeriodYears,
		LumpSumAmount:     DefaultLumpSum,
		StepUpRate:        planner.DefaultStepUpRate,
	}
	if active != nil {
		id := active.ID
		p.SipID = &id
		p.MonthlyInvestment = active.MonthlyInvestment.InexactFloat64()
		p.ExpectedReturn = active.ExpectedReturn.InexactFloat64()
		p.InvestmentPeriod = active.InvestmentPeriod
	}
	if req.MonthlyInvestment != nil {
		p.MonthlyInvestment = req.MonthlyInvestment.InexactFloat64()
	}
	if req.ExpectedReturn != nil {
		p.ExpectedReturn = req.ExpectedReturn.InexactFloat64()
	}
	if req.InvestmentPeriod != nil {
		p.InvestmentPeriod = *req.InvestmentPeriod
	}
	if req.LumpSum != nil {
		p.LumpSumAmount = req.LumpSum.InexactFloat64()
	}
	if req.StepUpRate != nil {
		p.StepUpRate = *req.StepUpRate
	}

	p.Sip = planner.SIPMaturity(p.MonthlyInvestment, p.ExpectedReturn, p.InvestmentPeriod)
	p.LumpSum = planner.LumpSum(p.LumpSumAmount, p.ExpectedReturn, p.InvestmentPeriod)
	p.StepUp = planner.StepUpSIP(p.MonthlyInvestment, p.ExpectedReturn, p.InvestmentPeriod, p.StepUpRate)
	p.MaturityDisplay = planner.FormatIndian(p.Sip.Maturity)
	return p, nil
}

// GoalProjection measures the portfolio's net worth against a target. The
// monthly contribution defaults to the dashboard's monthly savings.
func (s *analysisService) GoalProjection(ownerID uint, req GoalProjectionRequest) (*GoalProjection, error) {
	summary, err := s.portfolio.PortfolioSummary(ownerID)
	if err != nil {
		return nil, err
	}

	target := float64(DefaultGoalTarget)
	if req.TargetAmount != nil {
		target = req.TargetAmount.InexactFloat64()
	}
	annualReturn := DefaultGoalReturn
	if req.ExpectedReturn != nil {
		annualReturn = *req.ExpectedReturn
	}
	inflation := DefaultGoalInflation
	if req.InflationRate != nil {
		inflation = *req.InflationRate
	}
	years := DefaultGoalYears
	if req.TargetYears != nil {
		years = *req.TargetYears
	}

	var contribution float64
	if req.MonthlyContribution != nil {
		contribution = req.MonthlyContribution.InexactFloat64()
	} else {
		stats, err := findStats(s.db, ownerID)
		if err != nil {
			return nil, err
		}
		if stats != nil {
			contribution = stats.MonthlySavings.InexactFloat64()
		}
	}

	current := summary.NetWorth.InexactFloat64()
	g := &GoalProjection{
		CurrentNetWorth:     current,
		MonthlyContribution: contribution,
		TargetYears:         years,
	}

	g.MonthsWithoutInflation, g.Reachable = planner.MonthsToGoal(current, target, contribution, annualReturn, 0)
	g.YearsWithoutInflation = g.MonthsWithoutInflation / 12
	g.InflatedTarget = planner.InflateTarget(target, inflation, g.YearsWithoutInflation)
	g.MonthsWithInflation, _ = planner.MonthsToGoal(current, g.InflatedTarget, contribution, annualReturn, inflation)
	g.YearsWithInflation = g.MonthsWithInflation / 12

	g.TargetAmount = target
	if req.InflationAdjusted {
		g.TargetAmount = g.InflatedTarget
	}
	if g.TargetAmount > 0 {
		g.Progress = current / g.TargetAmount * 100
	}
	g.RequiredMonthlyInvestment = planner.RequiredMonthlyInvestment(current, g.TargetAmount, years, annualReturn)
	if g.RequiredMonthlyInvestment > contribution {
		g.Shortfall = g.RequiredMonthlyInvestment - contribution
	}
	g.NetWorthDisplay = planner.FormatIndian(current)
	g.TargetDisplay = planner.FormatIndian(g.TargetAmount)
	return g, nil
}

func (s *analysisService) isNeed(category string) bool {
	category = strings.TrimSpace(category)
	for _, n := range s.needs {
		if strings.EqualFold(n, category) {
			return true
		}
	}
	return false
}
