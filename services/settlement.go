package services

import (
	"errors"
	"fmt"

	"poolbet/database"
	"poolbet/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrTicketNotFound  = errors.New("ticket not found")
	ErrAlreadyTerminal = errors.New("ticket already settled")
	ErrInvalidOutcome  = errors.New("outcome must be won or deleted")
)

// Decision is the settlement verdict for a ticket in its current state.
type Decision int8

const (
	DecidePending Decision = iota
	DecideWon
	DecideLost
	DecideCancelled
)

// DecideTicket grades a ticket. Selections must have fixtures loaded.
//
// single/multiple: one lost non-void selection loses the ticket
// immediately, without waiting for the remaining fixtures; the ticket wins
// only once every non-void selection resolved won.
//
// system: a line is dead as soon as one of its members is lost and won once
// all its members are won or void. The ticket is decided when no line is
// still open: won if at least one line won, lost otherwise. All lines dead
// therefore loses the ticket even while other fixtures are unresolved.
func DecideTicket(t *models.Ticket) Decision {
	n := len(t.Selections)
	if n == 0 {
		return DecidePending
	}

	numVoid := 0
	for i := range t.Selections {
		if t.Selections[i].Outcome() == models.OutcomeVoid {
			numVoid++
		}
	}
	if numVoid == n {
		return DecideCancelled
	}

	if t.BetKind != models.BetSystem {
		unresolved := false
		for i := range t.Selections {
			switch t.Selections[i].Outcome() {
			case models.OutcomeLost:
				return DecideLost
			case models.OutcomeUnresolved:
				unresolved = true
			}
		}
		if unresolved {
			return DecidePending
		}
		return DecideWon
	}

	k := 0
	if t.SystemK != nil {
		k = *t.SystemK
	}
	lines, err := GenerateLines(t.Selections, t.BetKind, k)
	if err != nil {
		return DecidePending
	}

	anyWon := false
	for _, line := range lines {
		switch lineState(line) {
		case DecidePending:
			return DecidePending
		case DecideWon:
			anyWon = true
		}
	}
	if anyWon {
		return DecideWon
	}
	return DecideLost
}

func lineState(line Line) Decision {
	open := false
	for _, s := range line.Selections {
		switch s.Outcome() {
		case models.OutcomeLost:
			return DecideLost
		case models.OutcomeUnresolved:
			open = true
		}
	}
	if open {
		return DecidePending
	}
	return DecideWon
}

// SystemWinnings sums the payout of every winning line, per-line stakes
// unquantized and the total rounded once.
func SystemWinnings(t *models.Ticket) (decimal.Decimal, int) {
	k := 0
	if t.SystemK != nil {
		k = *t.SystemK
	}
	lines, err := GenerateLines(t.Selections, t.BetKind, k)
	if err != nil {
		return decimal.Zero, 0
	}

	perLine := LineStake(t.Stake, len(lines))
	sum := decimal.Zero
	won := 0
	for _, line := range lines {
		if lineState(line) != DecideWon {
			continue
		}
		won++
		sum = sum.Add(perLine.Mul(line.Multiplier()))
	}
	return sum.Round(2), won
}

// SettleTicket drives a pending ticket to its terminal state when its
// selections allow it, crediting winnings or refunding the stake exactly
// once. Runs inside the caller's transaction with the ticket row already
// locked; the status-guarded update keeps a concurrent settlement from
// paying twice.
func SettleTicket(tx *gorm.DB, t *models.Ticket, rules []models.BonusRule, cfg Settings) error {
	if t.IsTerminal() {
		return nil
	}

	switch DecideTicket(t) {
	case DecidePending:
		return nil

	case DecideCancelled:
		return CancelAndRefund(tx, t, "All selections void")

	case DecideLost:
		res := tx.Model(&models.Ticket{}).
			Where("id = ? AND status = ?", t.ID, models.TicketPending).
			Updates(map[string]any{
				"status":            models.TicketLost,
				"potential_winning": decimal.Zero,
				"bonus_amount":      decimal.Zero,
				"max_winning":       decimal.Zero,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 1 {
			t.Status = models.TicketLost
			t.PotentialWinning = decimal.Zero
			t.BonusAmount = decimal.Zero
			t.MaxWinning = decimal.Zero
		}
		return nil

	case DecideWon:
		var payout Payout
		if t.BetKind == models.BetSystem {
			winnings, _ := SystemWinnings(t)
			payout = Payout{
				TotalOdd:         decimal.Zero,
				PotentialWinning: winnings,
				MaxWinning:       winnings,
			}
			if limit, ok := cfg.Ceiling(); ok && payout.MaxWinning.GreaterThan(limit) {
				payout.MaxWinning = limit
			}
		} else {
			p, err := ComputePayout(t, rules, cfg)
			if err != nil {
				return err
			}
			payout = p
		}

		res := tx.Model(&models.Ticket{}).
			Where("id = ? AND status = ?", t.ID, models.TicketPending).
			Updates(map[string]any{
				"status":            models.TicketWon,
				"total_odd":         payout.TotalOdd,
				"potential_winning": payout.PotentialWinning,
				"bonus_amount":      payout.BonusAmount,
				"max_winning":       payout.MaxWinning,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// another writer settled first
			return nil
		}

		t.Status = models.TicketWon
		t.TotalOdd = payout.TotalOdd
		t.PotentialWinning = payout.PotentialWinning
		t.BonusAmount = payout.BonusAmount
		t.MaxWinning = payout.MaxWinning

		return Credit(tx, t.UserID, t.MaxWinning, models.TrxBetPayout,
			fmt.Sprintf("Winnings for ticket %s", t.TicketCode), &t.ID,
			map[string]any{"ticket_code": t.TicketCode, "bet_kind": t.BetKind})
	}
	return nil
}

// CancelAndRefund moves a pending ticket to cancelled and returns its stake.
// The status-guarded update makes re-entrant calls no-ops: an already
// cancelled ticket is never refunded twice.
func CancelAndRefund(tx *gorm.DB, t *models.Ticket, reason string) error {
	res := tx.Model(&models.Ticket{}).
		Where("id = ? AND status = ?", t.ID, models.TicketPending).
		Updates(map[string]any{
			"status":            models.TicketCancelled,
			"total_odd":         oneOdd,
			"potential_winning": t.Stake,
			"bonus_amount":      decimal.Zero,
			"max_winning":       t.Stake,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return nil
	}

	t.Status = models.TicketCancelled
	t.TotalOdd = oneOdd
	t.PotentialWinning = t.Stake
	t.MaxWinning = t.Stake

	return Credit(tx, t.UserID, t.Stake, models.TrxTicketRefund,
		fmt.Sprintf("Refund for ticket %s (%s)", t.TicketCode, reason), &t.ID,
		map[string]any{"ticket_code": t.TicketCode, "reason": reason})
}

// SettleManually is the administrative override. Only pending tickets can be
// forced, and the single money movement matches the forced outcome: the
// stored max_winning for won, the stake for deleted.
func SettleManually(ticketCode, outcome string) (*models.Ticket, error) {
	if outcome != models.TicketWon && outcome != models.TicketDeleted {
		return nil, ErrInvalidOutcome
	}

	var ticket models.Ticket
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("ticket_code = ?", ticketCode).
			First(&ticket).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTicketNotFound
			}
			return err
		}
		if ticket.IsTerminal() {
			return ErrAlreadyTerminal
		}

		res := tx.Model(&models.Ticket{}).
			Where("id = ? AND status = ?", ticket.ID, models.TicketPending).
			Update("status", outcome)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyTerminal
		}
		ticket.Status = outcome

		if outcome == models.TicketWon {
			return Credit(tx, ticket.UserID, ticket.MaxWinning, models.TrxBetPayout,
				fmt.Sprintf("Manual payout for ticket %s", ticket.TicketCode), &ticket.ID,
				map[string]any{"ticket_code": ticket.TicketCode, "manual": true})
		}
		return Credit(tx, ticket.UserID, ticket.Stake, models.TrxTicketRefund,
			fmt.Sprintf("Manual void refund for ticket %s", ticket.TicketCode), &ticket.ID,
			map[string]any{"ticket_code": ticket.TicketCode, "manual": true})
	})
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}
