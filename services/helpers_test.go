package services

import (
	"poolbet/models"

	"github.com/shopspring/decimal"
)

func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int    { return &v }

// pick builds a selection on a scheduled fixture with the given odd.
func pick(odd string) models.Selection {
	return models.Selection{
		Pick:        models.PickHomeWin,
		OddSelected: decimal.RequireFromString(odd),
		Fixture:     models.Fixture{Status: models.FixtureScheduled},
	}
}

// voidPick builds a selection on a postponed fixture.
func voidPick(odd string) models.Selection {
	s := pick(odd)
	s.Fixture.Status = models.FixturePostponed
	return s
}

// wonPick / lostPick build resolved selections on settled fixtures.
func wonPick(odd string) models.Selection {
	s := pick(odd)
	s.Fixture.Status = models.FixtureSettled
	s.Result = boolPtr(true)
	return s
}

func lostPick(odd string) models.Selection {
	s := pick(odd)
	s.Fixture.Status = models.FixtureSettled
	s.Result = boolPtr(false)
	return s
}

func testTicket(kind string, k *int, stake string, sels ...models.Selection) *models.Ticket {
	return &models.Ticket{
		TicketCode: "TEST01",
		BetKind:    kind,
		SystemK:    k,
		Stake:      decimal.RequireFromString(stake),
		Status:     models.TicketPending,
		Selections: sels,
	}
}

func mustEqual(t interface{ Errorf(string, ...any) }, name string, got, want decimal.Decimal) {
	if !got.Equal(want) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}
