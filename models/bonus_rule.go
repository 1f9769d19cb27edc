package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BonusRule grants a percentage on top of the potential winning when a
// ticket carries enough qualifying selections. Rules are evaluated by
// MinSelections descending, ties broken by creation order.
type BonusRule struct {
	gorm.Model

	Name               string          `gorm:"size:255" json:"name"`
	MinSelections      int             `gorm:"default:1" json:"min_selections"`
	MinOddPerSelection decimal.Decimal `gorm:"type:numeric(8,2);default:1.01" json:"min_odd_per_selection"`
	// BonusPercentage is a fraction, e.g. 0.10 for a 10% bonus.
	BonusPercentage decimal.Decimal `gorm:"type:numeric(8,2);default:0" json:"bonus_percentage"`
}
