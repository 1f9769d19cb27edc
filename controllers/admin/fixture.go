package admin

import (
	"errors"
	"log"
	"time"

	"poolbet/database"
	"poolbet/helpers"
	"poolbet/models"
	"poolbet/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateFixtureRequest struct {
	SerialNumber string            `json:"serial_number"`
	HomeTeam     string            `json:"home_team"`
	AwayTeam     string            `json:"away_team"`
	KickoffAt    time.Time         `json:"kickoff_at"`
	Odds         map[string]string `json:"odds"`
}

// CreateFixture registers a fixture with its externally priced odds.
func CreateFixture(c *fiber.Ctx) error {
	var req CreateFixtureRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.HomeTeam == "" || req.AwayTeam == "" {
		return helpers.JSONError(c, "TEAMS_REQUIRED")
	}

	fixture := models.Fixture{
		SerialNumber: req.SerialNumber,
		HomeTeam:     req.HomeTeam,
		AwayTeam:     req.AwayTeam,
		KickoffAt:    req.KickoffAt,
		Status:       models.FixtureScheduled,
	}
	if err := applyOdds(&fixture, req.Odds); err != nil {
		return helpers.JSONError(c, err.Error())
	}

	if err := database.DB.Create(&fixture).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_CREATE_FIXTURE")
	}

	return helpers.JSONSuccess(c, "Fixture created successfully", fiber.Map{
		"fixture_id": fixture.ID,
		"home_team":  fixture.HomeTeam,
		"away_team":  fixture.AwayTeam,
		"status":     fixture.Status,
	})
}

type FixtureResultRequest struct {
	FixtureID uint   `json:"fixture_id"`
	Status    string `json:"status"`
	HomeScore *int   `json:"home_score"`
	AwayScore *int   `json:"away_score"`
}

// FixtureResult is the status-change entry point: persists the new fixture
// status and scores, then recalculates every open ticket touching the
// fixture. Safe to call repeatedly with the same status.
func FixtureResult(c *fiber.Ctx) error {
	var req FixtureResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if !models.ValidFixtureStatus(req.Status) {
		return helpers.JSONError(c, "INVALID_FIXTURE_STATUS")
	}

	var fixture models.Fixture
	if err := database.DB.First(&fixture, req.FixtureID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JSONError(c, "FIXTURE_NOT_FOUND")
		}
		return helpers.JSONError(c, "DB_ERROR")
	}

	updates := map[string]any{"status": req.Status}
	if req.HomeScore != nil {
		updates["home_score"] = *req.HomeScore
	}
	if req.AwayScore != nil {
		updates["away_score"] = *req.AwayScore
	}
	if err := database.DB.Model(&fixture).Updates(updates).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_UPDATE_FIXTURE")
	}

	if err := services.RecalculateFixture(fixture.ID); err != nil {
		// fixture state is persisted; the sweeper re-drives what failed
		log.Printf("⚠️  recalculation after fixture %d update: %v", fixture.ID, err)
		return helpers.JSONError(c, "RECALCULATION_INCOMPLETE")
	}

	return helpers.JSONSuccess(c, "Fixture updated and tickets recalculated", fiber.Map{
		"fixture_id": fixture.ID,
		"status":     req.Status,
	})
}
