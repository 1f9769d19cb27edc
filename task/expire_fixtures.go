package task

import (
	"log"
	"time"

	"poolbet/database"
	"poolbet/models"
	"poolbet/services"
)

// staleAfter is how long past kickoff a fixture may sit without a result
// before it is written off.
const staleAfter = 48 * time.Hour

// ExpireStaleFixtures marks fixtures long past kickoff and still without a
// result as no_result, then recalculates the tickets touching them so the
// void-substitution and refund rules apply.
func ExpireStaleFixtures() error {
	cutoff := time.Now().Add(-staleAfter)

	var fixtures []models.Fixture
	if err := database.DB.
		Where("status IN ? AND kickoff_at < ?",
			[]string{models.FixtureScheduled, models.FixtureLive}, cutoff).
		Find(&fixtures).Error; err != nil {
		return err
	}

	for i := range fixtures {
		f := &fixtures[i]
		res := database.DB.Model(&models.Fixture{}).
			Where("id = ? AND status = ?", f.ID, f.Status).
			Update("status", models.FixtureNoResult)
		if res.Error != nil {
			log.Printf("❌ expire fixture %d: %v", f.ID, res.Error)
			continue
		}
		if res.RowsAffected == 0 {
			continue
		}

		log.Printf("⚠️  fixture %d (%s vs %s) expired without result", f.ID, f.HomeTeam, f.AwayTeam)
		if err := services.RecalculateFixture(f.ID); err != nil {
			log.Printf("❌ recalc after expiring fixture %d: %v", f.ID, err)
		}
	}
	return nil
}
