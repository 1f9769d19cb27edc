package admin

import (
	"errors"

	"poolbet/helpers"
	"poolbet/services"

	"github.com/gofiber/fiber/v2"
)

type ManualSettleRequest struct {
	TicketCode string `json:"ticket_code"`
	// Outcome is "won" (pay out the stored max_winning) or "deleted"
	// (void the ticket and refund the stake).
	Outcome string `json:"outcome"`
}

func ManualSettle(c *fiber.Ctx) error {
	var req ManualSettleRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.TicketCode == "" {
		return helpers.JSONError(c, "TICKET_CODE_REQUIRED")
	}

	ticket, err := services.SettleManually(req.TicketCode, req.Outcome)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTicketNotFound):
			return helpers.JSONError(c, "TICKET_NOT_FOUND")
		case errors.Is(err, services.ErrAlreadyTerminal):
			return helpers.JSONError(c, "TICKET_ALREADY_SETTLED")
		case errors.Is(err, services.ErrInvalidOutcome):
			return helpers.JSONError(c, "INVALID_OUTCOME")
		}
		return helpers.JSONError(c, "SETTLEMENT_FAILED")
	}

	return helpers.JSONSuccess(c, "Ticket settled successfully", fiber.Map{
		"ticket_code": ticket.TicketCode,
		"status":      ticket.Status,
		"max_winning": ticket.MaxWinning,
	})
}
