package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model

	UserCode     string          `gorm:"uniqueIndex;size:32" json:"user_code"`
	Balance      decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"balance"`
	Currency     string          `gorm:"size:8" json:"currency"`
	IsActive     bool            `gorm:"default:true" json:"is_active"`
	Transactions []Transaction   `gorm:"foreignKey:UserID"`
}

// Ledger transaction types.
const (
	TrxBetPlacement = "bet_placement"
	TrxBetPayout    = "bet_payout"
	TrxTicketRefund = "ticket_refund"
	TrxDeposit      = "deposit"
	TrxWithdraw     = "withdraw"
)

// Transaction is an append-only ledger entry. Rows are only ever created;
// corrections are new entries in the opposite direction. User.Balance stays
// the authoritative value, the ledger is the audit trail.
type Transaction struct {
	gorm.Model

	UserID   uint   `gorm:"index"`
	UserCode string `gorm:"size:32;index"`
	TrxType  string `gorm:"size:16;index"`

	Amount        decimal.Decimal `gorm:"type:numeric(12,2)" json:"amount"`
	BalanceBefore decimal.Decimal `gorm:"type:numeric(12,2)" json:"balance_before"`
	BalanceAfter  decimal.Decimal `gorm:"type:numeric(12,2)" json:"balance_after"`
	Currency      string          `gorm:"size:8" json:"currency"`

	TicketID *uint  `gorm:"index"`
	RefID    string `gorm:"size:64;index"`
	Note     string `gorm:"size:255"`

	ExtraInfo datatypes.JSON `gorm:"type:jsonb"`
}
