package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"poolbet/database"
	"poolbet/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// conflictRetries bounds the internal retry on serialization conflicts.
const conflictRetries = 3

// RecalculateFixture re-derives every open ticket touching the fixture
// after its status or score changed. Each ticket runs in its own
// transaction so one bad ticket never blocks the rest; the handler is
// idempotent and safe to invoke repeatedly with the same status.
func RecalculateFixture(fixtureID uint) error {
	var ticketIDs []uint
	err := database.DB.Model(&models.Ticket{}).
		Distinct("tickets.id").
		Joins("JOIN selections ON selections.ticket_id = tickets.id").
		Where("selections.fixture_id = ? AND tickets.status = ?", fixtureID, models.TicketPending).
		Pluck("tickets.id", &ticketIDs).Error
	if err != nil {
		return err
	}

	var failed int
	for _, id := range ticketIDs {
		if err := recalcTicketWithRetry(id); err != nil {
			failed++
			log.Printf("❌ recalc ticket %d for fixture %d: %v", id, fixtureID, err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("recalculation left %d of %d tickets unprocessed", failed, len(ticketIDs))
	}
	return nil
}

func recalcTicketWithRetry(ticketID uint) error {
	var err error
	for attempt := 0; attempt < conflictRetries; attempt++ {
		err = RecalculateTicket(ticketID)
		if err == nil || !isConflict(err) {
			return err
		}
	}
	return err
}

// isConflict matches the postgres failures worth retrying: deadlocks and
// serialization aborts surface through the driver as plain errors.
func isConflict(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "deadlock detected") ||
		strings.Contains(msg, "could not serialize access")
}

// RecalculateTicket reloads one ticket under an exclusive row lock, grades
// its selections from current fixture state, recomputes the payout fields
// and attempts settlement, all in one transaction, so a failed money
// movement rolls the status back with it.
func RecalculateTicket(ticketID uint) error {
	settings := LoadSettings()

	return database.DB.Transaction(func(tx *gorm.DB) error {
		var ticket models.Ticket
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&ticket, ticketID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTicketNotFound
			}
			return err
		}
		if ticket.IsTerminal() {
			// terminal tickets are immutable
			return nil
		}

		if err := tx.Preload("Fixture").
			Where("ticket_id = ?", ticket.ID).
			Order("id ASC").
			Find(&ticket.Selections).Error; err != nil {
			return err
		}
		if len(ticket.Selections) == 0 {
			return ErrEmptySelections
		}

		// grade selections against final scores before deciding anything
		for i := range ticket.Selections {
			s := &ticket.Selections[i]
			if ApplySelectionResult(s) {
				if err := tx.Model(&models.Selection{}).
					Where("id = ?", s.ID).
					Update("result", s.Result).Error; err != nil {
					return err
				}
			}
		}

		var rules []models.BonusRule
		if err := tx.Find(&rules).Error; err != nil {
			return err
		}

		payout, err := ComputePayout(&ticket, rules, settings)
		if err != nil {
			return err
		}
		if payout.AllVoid {
			return CancelAndRefund(tx, &ticket, "All selections void")
		}

		res := tx.Model(&models.Ticket{}).
			Where("id = ? AND status = ?", ticket.ID, models.TicketPending).
			Updates(map[string]any{
				"total_odd":         payout.TotalOdd,
				"potential_winning": payout.PotentialWinning,
				"bonus_amount":      payout.BonusAmount,
				"max_winning":       payout.MaxWinning,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		ticket.TotalOdd = payout.TotalOdd
		ticket.PotentialWinning = payout.PotentialWinning
		ticket.BonusAmount = payout.BonusAmount
		ticket.MaxWinning = payout.MaxWinning

		return SettleTicket(tx, &ticket, rules, settings)
	})
}
