package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome           TransactionType = "income"
	TransactionTypeExpense          TransactionType = "expense"
	TransactionTypeInvestment       TransactionType = "investment"
	TransactionTypeGoalContribution TransactionType = "goal_contribution"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeInvestment, TransactionTypeGoalContribution:
		return true
	}
	return false
}

// Transaction is an activity-log entry. It is not reconciled against expenses.
type Transaction struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Description string          `gorm:"not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Category    string          `json:"category"`
	Date        time.Time       `gorm:"not null" json:"date"`
	Owned
}

func (Transaction) TableName() string { return "transactions" }
