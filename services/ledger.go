package services

import (
	"encoding/json"
	"errors"

	"poolbet/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrInsufficientFunds = errors.New("insufficient balance")

// Lock ordering: money movement always locks the ticket row (when one is
// involved) before the wallet row, and never touches two wallets in one
// transaction, so no lock cycle is possible.

// Credit adds amount to the user's balance inside the caller's transaction
// and appends the matching ledger entry. The wallet row is locked for the
// rest of the transaction.
func Credit(tx *gorm.DB, userID uint, amount decimal.Decimal, trxType, note string, ticketID *uint, extra map[string]any) error {
	var user models.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&user, userID).Error; err != nil {
		return err
	}

	before := user.Balance
	after := before.Add(amount)
	if err := tx.Model(&user).Update("balance", after).Error; err != nil {
		return err
	}

	return appendEntry(tx, &user, trxType, amount, before, after, note, ticketID, extra)
}

// DebitIfSufficient subtracts amount from the user's balance, failing with
// ErrInsufficientFunds (and writing no ledger entry) when the balance would
// go negative.
func DebitIfSufficient(tx *gorm.DB, userID uint, amount decimal.Decimal, trxType, note string, ticketID *uint, extra map[string]any) error {
	var user models.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&user, userID).Error; err != nil {
		return err
	}

	before := user.Balance
	if before.LessThan(amount) {
		return ErrInsufficientFunds
	}
	after := before.Sub(amount)
	if err := tx.Model(&user).Update("balance", after).Error; err != nil {
		return err
	}

	return appendEntry(tx, &user, trxType, amount, before, after, note, ticketID, extra)
}

func appendEntry(tx *gorm.DB, user *models.User, trxType string, amount, before, after decimal.Decimal, note string, ticketID *uint, extra map[string]any) error {
	entry := models.Transaction{
		UserID:        user.ID,
		UserCode:      user.UserCode,
		TrxType:       trxType,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  after,
		Currency:      user.Currency,
		TicketID:      ticketID,
		RefID:         uuid.New().String(),
		Note:          note,
	}
	if len(extra) > 0 {
		raw, err := json.Marshal(extra)
		if err != nil {
			return err
		}
		entry.ExtraInfo = raw
	}
	return tx.Create(&entry).Error
}
