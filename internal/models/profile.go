package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserProfile is the single profile row of an owner. Its ID equals the owner ID.
type UserProfile struct {
	ID            uint            `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name          string          `gorm:"not null" json:"name"`
	Email         *string         `json:"email,omitempty"`
	MonthlyIncome decimal.Decimal `gorm:"type:numeric;not null" json:"monthlyIncome"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// TableName pins the collection name used by migrations and export files.
func (UserProfile) TableName() string { return "user_profiles" }

// DashboardStats is the cached aggregate row of an owner. Its ID equals the owner ID.
// MonthlyExpenses and MonthlySavings are derived; TotalBalance is user-entered.
type DashboardStats struct {
	ID              uint            `gorm:"primaryKey;autoIncrement:false" json:"id"`
	TotalBalance    decimal.Decimal `gorm:"type:numeric;not null" json:"totalBalance"`
	MonthlyIncome   decimal.Decimal `gorm:"type:numeric;not null" json:"monthlyIncome"`
	MonthlyExpenses decimal.Decimal `gorm:"type:numeric;not null" json:"monthlyExpenses"`
	MonthlySavings  decimal.Decimal `gorm:"type:numeric;not null" json:"monthlySavings"`
	LastUpdated     time.Time       `gorm:"not null" json:"lastUpdated"`
	Owned
}

func (DashboardStats) TableName() string { return "dashboard_stats" }
