package jobs

import (
	"log"
	"time"

	"poolbet/services"
	"poolbet/task"
)

// StartSettlementSweeper re-drives settlement for tickets whose fixtures
// have all resolved, and expires fixtures stuck without a result. Both are
// idempotent, so overlapping with the fixture-update path is harmless.
func StartSettlementSweeper() {
	tickerSweep := time.NewTicker(1 * time.Minute)
	go func() {
		for {
			<-tickerSweep.C
			n, err := services.SweepPendingTickets(200)
			if err != nil {
				log.Printf("❌ error sweeping pending tickets: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("✅ settlement sweep processed %d tickets", n)
			}
		}
	}()

	tickerExpire := time.NewTicker(30 * time.Minute)
	go func() {
		for {
			<-tickerExpire.C
			if err := task.ExpireStaleFixtures(); err != nil {
				log.Printf("❌ error expiring stale fixtures: %v", err)
			}
		}
	}()
}
