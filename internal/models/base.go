package models

import "github.com/shopspring/decimal"

func init() {
	// Amounts travel as JSON numbers, matching files written by the browser app.
	decimal.MarshalJSONWithoutQuotes = true
}

// Owned is embedded by every record. The JSON key stays "userId" so export
// files produced before the owner scope was introduced import unchanged.
type Owned struct {
	OwnerID uint `gorm:"column:owner_id;not null;index" json:"userId"`
}

// AdoptOwner sets the owner of a record that was stored without one, such as
// a row from an export file written before owners existed.
func (o *Owned) AdoptOwner(ownerID uint) {
	if o.OwnerID == 0 {
		o.OwnerID = ownerID
	}
}
