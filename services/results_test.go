package services

import (
	"testing"

	"poolbet/models"
)

func TestResolvePick(t *testing.T) {
	cases := []struct {
		pick       string
		home, away int
		want       models.SelectionOutcome
	}{
		{models.PickHomeWin, 2, 1, models.OutcomeWon},
		{models.PickHomeWin, 1, 1, models.OutcomeLost},
		{models.PickDraw, 1, 1, models.OutcomeWon},
		{models.PickDraw, 2, 0, models.OutcomeLost},
		{models.PickAwayWin, 0, 3, models.OutcomeWon},

		{models.PickOver15, 1, 1, models.OutcomeWon},
		{models.PickOver15, 1, 0, models.OutcomeLost},
		{models.PickUnder15, 1, 0, models.OutcomeWon},
		{models.PickOver25, 2, 1, models.OutcomeWon},
		{models.PickOver25, 1, 1, models.OutcomeLost},
		{models.PickUnder25, 1, 1, models.OutcomeWon},
		{models.PickOver35, 2, 2, models.OutcomeWon},
		{models.PickUnder35, 2, 1, models.OutcomeWon},

		{models.PickBttsYes, 1, 1, models.OutcomeWon},
		{models.PickBttsYes, 2, 0, models.OutcomeLost},
		{models.PickBttsNo, 2, 0, models.OutcomeWon},
		{models.PickBttsNo, 1, 2, models.OutcomeLost},

		{models.PickHomeDnb, 2, 1, models.OutcomeWon},
		{models.PickHomeDnb, 1, 2, models.OutcomeLost},
		{models.PickHomeDnb, 1, 1, models.OutcomeVoid},
		{models.PickAwayDnb, 1, 2, models.OutcomeWon},
		{models.PickAwayDnb, 2, 2, models.OutcomeVoid},

		{"unknown_pick", 1, 0, models.OutcomeUnresolved},
	}

	for _, tc := range cases {
		if got := ResolvePick(tc.pick, tc.home, tc.away); got != tc.want {
			t.Errorf("ResolvePick(%s, %d-%d) = %d, want %d", tc.pick, tc.home, tc.away, got, tc.want)
		}
	}
}

func TestApplySelectionResult(t *testing.T) {
	home, away := 2, 1
	s := models.Selection{
		Pick: models.PickHomeWin,
		Fixture: models.Fixture{
			Status:    models.FixtureFinished,
			HomeScore: &home,
			AwayScore: &away,
		},
	}

	if !ApplySelectionResult(&s) {
		t.Fatal("flag should change on first grading")
	}
	if s.Result == nil || !*s.Result {
		t.Fatal("home_win with 2-1 must resolve won")
	}
	if ApplySelectionResult(&s) {
		t.Error("regrading the same result must be a no-op")
	}
}

func TestApplySelectionResultWaitsForScores(t *testing.T) {
	s := models.Selection{
		Pick:    models.PickHomeWin,
		Fixture: models.Fixture{Status: models.FixtureLive},
	}
	if ApplySelectionResult(&s) || s.Result != nil {
		t.Error("live fixture without final scores must not grade the selection")
	}
}

func TestDnbDrawIsVoidNotUnresolved(t *testing.T) {
	home, away := 1, 1
	s := models.Selection{
		Pick: models.PickHomeDnb,
		Fixture: models.Fixture{
			Status:    models.FixtureSettled,
			HomeScore: &home,
			AwayScore: &away,
		},
	}

	ApplySelectionResult(&s)
	if s.Result != nil {
		t.Fatal("DNB draw must leave the tri-state flag null")
	}
	if s.Outcome() != models.OutcomeVoid {
		t.Fatalf("DNB draw outcome = %d, want void", s.Outcome())
	}
}
