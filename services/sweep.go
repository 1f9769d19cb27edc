package services

import (
	"log"

	"poolbet/database"
	"poolbet/models"
)

// SweepPendingTickets re-drives settlement for pending tickets that no
// longer wait on any fixture: every selection sits on a void fixture or one
// with usable final scores. A fixture marked finished/settled without both
// scores is still open here, otherwise its tickets would be re-selected
// every sweep and eat into the limit without ever settling. Settlement is
// idempotent, so re-driving a ticket another caller already handled is
// harmless. Returns the number of tickets processed.
func SweepPendingTickets(limit int) (int, error) {
	open := []string{models.FixtureScheduled, models.FixtureLive}
	scored := []string{models.FixtureFinished, models.FixtureSettled}

	var ticketIDs []uint
	err := database.DB.Model(&models.Ticket{}).
		Distinct("tickets.id").
		Joins("JOIN selections ON selections.ticket_id = tickets.id").
		Where("tickets.status = ?", models.TicketPending).
		Where(`NOT EXISTS (
			SELECT 1 FROM selections s
			JOIN fixtures f ON f.id = s.fixture_id
			WHERE s.ticket_id = tickets.id
			  AND (f.status IN ? OR (f.status IN ? AND (f.home_score IS NULL OR f.away_score IS NULL)))
		)`, open, scored).
		Limit(limit).
		Pluck("tickets.id", &ticketIDs).Error
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, id := range ticketIDs {
		if err := recalcTicketWithRetry(id); err != nil {
			log.Printf("❌ sweep ticket %d: %v", id, err)
			continue
		}
		processed++
	}
	return processed, nil
}
