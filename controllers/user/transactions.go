package user

import (
	"poolbet/database"
	"poolbet/helpers"
	"poolbet/models"

	"github.com/gofiber/fiber/v2"
)

type ListTransactionsRequest struct {
	UserCode   string `json:"user_code"`
	TicketCode string `json:"ticket_code"`
	Limit      int    `json:"limit"`
}

// ListTransactions returns ledger entries for reporting, newest first,
// optionally narrowed to one ticket.
func ListTransactions(c *fiber.Ctx) error {
	var req ListTransactionsRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.UserCode == "" {
		return helpers.JSONError(c, "USER_CODE_REQUIRED")
	}
	if req.Limit <= 0 || req.Limit > 500 {
		req.Limit = 100
	}

	q := database.DB.
		Where("user_code = ?", req.UserCode).
		Order("id DESC").
		Limit(req.Limit)

	if req.TicketCode != "" {
		var ticket models.Ticket
		if err := database.DB.Where("ticket_code = ?", req.TicketCode).First(&ticket).Error; err != nil {
			return helpers.JSONError(c, "TICKET_NOT_FOUND")
		}
		q = q.Where("ticket_id = ?", ticket.ID)
	}

	var entries []models.Transaction
	if err := q.Find(&entries).Error; err != nil {
		return helpers.JSONError(c, "DB_ERROR")
	}

	out := make([]fiber.Map, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		out = append(out, fiber.Map{
			"ref_id":         e.RefID,
			"trx_type":       e.TrxType,
			"amount":         e.Amount,
			"balance_before": e.BalanceBefore,
			"balance_after":  e.BalanceAfter,
			"ticket_id":      e.TicketID,
			"note":           e.Note,
			"created_at":     e.CreatedAt,
		})
	}

	return helpers.JSONSuccess(c, "Transactions retrieved successfully", fiber.Map{
		"user_code":    req.UserCode,
		"transactions": out,
	})
}
