package ticket

import (
	"errors"
	"fmt"

	"poolbet/database"
	"poolbet/helpers"
	"poolbet/models"
	"poolbet/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SelectionRequest struct {
	FixtureID uint   `json:"fixture_id"`
	Pick      string `json:"pick"`
	Odd       string `json:"odd"`
}

type CreateTicketRequest struct {
	UserCode   string             `json:"user_code"`
	Stake      string             `json:"stake"`
	BetKind    string             `json:"bet_kind"`
	SystemK    *int               `json:"system_k"`
	Selections []SelectionRequest `json:"selections"`
}

// CreateTicket validates the wager, debits the stake and creates the ticket
// with its selections and ledger entry in one transaction. The submitted
// odds must match the fixture's current odds so a stale price is rejected
// instead of honored.
func CreateTicket(c *fiber.Ctx) error {
	var req CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.UserCode == "" {
		return helpers.JSONError(c, "USER_CODE_REQUIRED")
	}
	stake, err := decimal.NewFromString(req.Stake)
	if err != nil || !stake.IsPositive() {
		return helpers.JSONError(c, "STAKE_MUST_BE_POSITIVE")
	}
	if len(req.Selections) == 0 {
		return helpers.JSONError(c, "SELECTIONS_REQUIRED")
	}

	betKind := req.BetKind
	switch betKind {
	case models.BetSystem:
		if req.SystemK == nil {
			return helpers.JSONError(c, "SYSTEM_K_REQUIRED")
		}
	case models.BetSingle, models.BetMultiple, "":
		// normalize from the selection count
		if len(req.Selections) > 1 {
			betKind = models.BetMultiple
		} else {
			betKind = models.BetSingle
		}
		req.SystemK = nil
	default:
		return helpers.JSONError(c, "INVALID_BET_KIND")
	}

	var (
		ticket  models.Ticket
		balance decimal.Decimal
	)

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_code = ? AND is_active = true", req.UserCode).
			First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("USER_NOT_FOUND")
			}
			return err
		}

		selections := make([]models.Selection, 0, len(req.Selections))
		seen := make(map[uint]bool, len(req.Selections))
		for _, sel := range req.Selections {
			if seen[sel.FixtureID] {
				return errors.New("DUPLICATE_FIXTURE_IN_TICKET")
			}
			seen[sel.FixtureID] = true

			var fixture models.Fixture
			if err := tx.First(&fixture, sel.FixtureID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errors.New("FIXTURE_NOT_FOUND")
				}
				return err
			}
			if fixture.Status != models.FixtureScheduled {
				return errors.New("BETTING_CLOSED_FOR_FIXTURE")
			}

			current, ok := fixture.OddFor(sel.Pick)
			if !ok {
				return errors.New("INVALID_PICK")
			}
			submitted, err := decimal.NewFromString(sel.Odd)
			if err != nil || !submitted.Equal(current) {
				return errors.New("ODDS_CHANGED")
			}

			selections = append(selections, models.Selection{
				FixtureID:   fixture.ID,
				Pick:        sel.Pick,
				OddSelected: current,
				Fixture:     fixture,
			})
		}

		systemK := 0
		if req.SystemK != nil {
			systemK = *req.SystemK
		}
		if _, err := services.GenerateLines(selections, betKind, systemK); err != nil {
			return err
		}

		ticket = models.Ticket{
			TicketCode: helpers.NewTicketCode(),
			UserID:     user.ID,
			UserCode:   user.UserCode,
			BetKind:    betKind,
			SystemK:    req.SystemK,
			Stake:      stake,
			Status:     models.TicketPending,
			Selections: selections,
		}

		var rules []models.BonusRule
		if err := tx.Find(&rules).Error; err != nil {
			return err
		}
		payout, err := services.ComputePayout(&ticket, rules, services.LoadSettings())
		if err != nil {
			return err
		}
		ticket.TotalOdd = payout.TotalOdd
		ticket.PotentialWinning = payout.PotentialWinning
		ticket.BonusAmount = payout.BonusAmount
		ticket.MaxWinning = payout.MaxWinning

		// fixtures were read-only input, never written through the ticket
		if err := tx.Omit("Selections.Fixture").Create(&ticket).Error; err != nil {
			return err
		}

		if err := services.DebitIfSufficient(tx, user.ID, stake, models.TrxBetPlacement,
			fmt.Sprintf("Placed %s bet, ticket %s", betKind, ticket.TicketCode), &ticket.ID,
			map[string]any{"ticket_code": ticket.TicketCode, "bet_kind": betKind}); err != nil {
			return err
		}

		var fresh models.User
		if err := tx.First(&fresh, user.ID).Error; err != nil {
			return err
		}
		balance = fresh.Balance
		return nil
	})

	if err != nil {
		if errors.Is(err, services.ErrInsufficientFunds) {
			return helpers.JSONError(c, "INSUFFICIENT_BALANCE")
		}
		if errors.Is(err, services.ErrInvalidSystemParameter) {
			return helpers.JSONError(c, "INVALID_SYSTEM_K")
		}
		if errors.Is(err, services.ErrEmptySelections) {
			return helpers.JSONError(c, "SELECTIONS_REQUIRED")
		}
		return helpers.JSONError(c, err.Error())
	}

	return helpers.JSONSuccess(c, "Ticket placed successfully", fiber.Map{
		"ticket_code":       ticket.TicketCode,
		"bet_kind":          ticket.BetKind,
		"stake":             ticket.Stake,
		"total_odd":         ticket.TotalOdd,
		"potential_winning": ticket.PotentialWinning,
		"bonus_amount":      ticket.BonusAmount,
		"max_winning":       ticket.MaxWinning,
		"balance":           balance,
	})
}
