package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseItem is one monthly expense row. Category is free text and not
// unique: totals always sum every row of a category.
type ExpenseItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Category  string          `gorm:"not null" json:"category"`
	Amount    decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
	Owned
}

func (ExpenseItem) TableName() string { return "expenses" }

// SumExpenses returns the exact total of the given rows.
func SumExpenses(items []ExpenseItem) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].Amount)
	}
	return total
}
