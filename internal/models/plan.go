package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SipInvestment is a systematic investment plan. Only one row per owner may be active.
type SipInvestment struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	Name              string          `gorm:"not null" json:"name"`
	MonthlyInvestment decimal.Decimal `gorm:"type:numeric;not null" json:"monthlyInvestment"`
	ExpectedReturn    decimal.Decimal `gorm:"type:numeric;not null" json:"expectedReturn"` // annual %
	InvestmentPeriod  int             `gorm:"not null" json:"investmentPeriod"`            // years
	IsActive          bool            `gorm:"not null" json:"isActive"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
	Owned
}

func (SipInvestment) TableName() string { return "sip_investments" }

// GoalCategory classifies a financial goal.
type GoalCategory string

const (
	GoalCategoryEmergency  GoalCategory = "emergency"
	GoalCategoryHouse      GoalCategory = "house"
	GoalCategoryVacation   GoalCategory = "vacation"
	GoalCategoryRetirement GoalCategory = "retirement"
	GoalCategoryOther      GoalCategory = "other"
)

// Valid reports whether c is one of the known goal categories.
func (c GoalCategory) Valid() bool {
	switch c {
	case GoalCategoryEmergency, GoalCategoryHouse, GoalCategoryVacation, GoalCategoryRetirement, GoalCategoryOther:
		return true
	}
	return false
}

// FinancialGoal tracks progress towards a target amount.
type FinancialGoal struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"not null" json:"name"`
	TargetAmount  decimal.Decimal `gorm:"type:numeric;not null" json:"targetAmount"`
	CurrentAmount decimal.Decimal `gorm:"type:numeric;not null" json:"currentAmount"`
	TargetDate    *time.Time      `json:"targetDate,omitempty"`
	Category      GoalCategory    `gorm:"not null" json:"category"`
	IsActive      bool            `gorm:"not null" json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	Owned
}

func (FinancialGoal) TableName() string { return "financial_goals" }

// Progress returns current/target as a percentage, zero for a zero target.
func (g *FinancialGoal) Progress() float64 {
	if g.TargetAmount.IsZero() {
		return 0
	}
	pct, _ := g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}
