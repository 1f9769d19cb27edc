package ticket

import (
	"errors"

	"poolbet/database"
	"poolbet/helpers"
	"poolbet/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TicketDetailRequest struct {
	TicketCode string `json:"ticket_code"`
}

func TicketDetail(c *fiber.Ctx) error {
	var req TicketDetailRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.TicketCode == "" {
		return helpers.JSONError(c, "TICKET_CODE_REQUIRED")
	}

	var ticket models.Ticket
	if err := database.DB.
		Preload("Selections", func(db *gorm.DB) *gorm.DB { return db.Order("selections.id ASC") }).
		Preload("Selections.Fixture").
		Where("ticket_code = ?", req.TicketCode).
		First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JSONError(c, "TICKET_NOT_FOUND")
		}
		return helpers.JSONError(c, "DB_ERROR")
	}

	selections := make([]fiber.Map, 0, len(ticket.Selections))
	for i := range ticket.Selections {
		s := &ticket.Selections[i]
		selections = append(selections, fiber.Map{
			"fixture_id":     s.FixtureID,
			"home_team":      s.Fixture.HomeTeam,
			"away_team":      s.Fixture.AwayTeam,
			"fixture_status": s.Fixture.Status,
			"pick":           s.Pick,
			"odd_selected":   s.OddSelected,
			"result":         s.Result,
		})
	}

	return helpers.JSONSuccess(c, "Ticket retrieved successfully", fiber.Map{
		"ticket_code":       ticket.TicketCode,
		"user_code":         ticket.UserCode,
		"bet_kind":          ticket.BetKind,
		"system_k":          ticket.SystemK,
		"status":            ticket.Status,
		"stake":             ticket.Stake,
		"total_odd":         ticket.TotalOdd,
		"potential_winning": ticket.PotentialWinning,
		"bonus_amount":      ticket.BonusAmount,
		"max_winning":       ticket.MaxWinning,
		"selections":        selections,
	})
}
