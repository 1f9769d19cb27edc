package services

import (
	"poolbet/models"
)

// ResolvePick grades one outcome tag against final scores. Draw-no-bet
// variants resolve to void on an exact draw: the selection's flag stays
// null and the fixture keeps its non-void status, which is why the void
// here is returned explicitly rather than inferred.
func ResolvePick(pick string, homeScore, awayScore int) models.SelectionOutcome {
	total := homeScore + awayScore

	won := false
	switch pick {
	case models.PickHomeWin:
		won = homeScore > awayScore
	case models.PickDraw:
		won = homeScore == awayScore
	case models.PickAwayWin:
		won = homeScore < awayScore
	case models.PickOver15:
		won = total >= 2
	case models.PickUnder15:
		won = total <= 1
	case models.PickOver25:
		won = total >= 3
	case models.PickUnder25:
		won = total <= 2
	case models.PickOver35:
		won = total >= 4
	case models.PickUnder35:
		won = total <= 3
	case models.PickBttsYes:
		won = homeScore > 0 && awayScore > 0
	case models.PickBttsNo:
		won = homeScore == 0 || awayScore == 0
	case models.PickHomeDnb:
		if homeScore == awayScore {
			return models.OutcomeVoid
		}
		won = homeScore > awayScore
	case models.PickAwayDnb:
		if homeScore == awayScore {
			return models.OutcomeVoid
		}
		won = homeScore < awayScore
	default:
		return models.OutcomeUnresolved
	}

	if won {
		return models.OutcomeWon
	}
	return models.OutcomeLost
}

// ApplySelectionResult grades a selection from its fixture, mutating the
// tri-state flag. Returns true when the flag changed. Fixtures without a
// usable final score leave the flag untouched.
func ApplySelectionResult(s *models.Selection) bool {
	if !s.Fixture.IsResolved() {
		return false
	}
	switch ResolvePick(s.Pick, *s.Fixture.HomeScore, *s.Fixture.AwayScore) {
	case models.OutcomeWon:
		if s.Result == nil || !*s.Result {
			v := true
			s.Result = &v
			return true
		}
	case models.OutcomeLost:
		if s.Result == nil || *s.Result {
			v := false
			s.Result = &v
			return true
		}
	case models.OutcomeVoid:
		// DNB draw: flag stays null permanently
		if s.Result != nil {
			s.Result = nil
			return true
		}
	}
	return false
}
