package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioItem is a manually valued holding. ItemID is the stable business
// key used by updates and deletes; ID is only the storage key.
// Icon and Color are opaque to the store and resolved by the UI.
type PortfolioItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	ItemID      string          `gorm:"column:item_id;not null" json:"itemId"`
	Name        string          `gorm:"not null" json:"name"`
	Category    string          `gorm:"not null" json:"category"`
	Amount      decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	Icon        string          `json:"icon"`
	Color       string          `json:"color"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Owned
}

func (PortfolioItem) TableName() string { return "portfolio_items" }
