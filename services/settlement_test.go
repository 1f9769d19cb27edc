package services

import (
	"testing"

	"poolbet/models"

	"github.com/shopspring/decimal"
)

func TestOneLossDecidesImmediately(t *testing.T) {
	// one confirmed loss settles the ticket even with fixtures still open
	tk := testTicket(models.BetMultiple, nil, "100",
		lostPick("1.50"), pick("3.20"), pick("2.80"))

	if got := DecideTicket(tk); got != DecideLost {
		t.Fatalf("decision = %d, want lost", got)
	}
}

func TestUnresolvedSelectionKeepsTicketPending(t *testing.T) {
	tk := testTicket(models.BetMultiple, nil, "100", wonPick("1.50"), pick("3.20"))
	if got := DecideTicket(tk); got != DecidePending {
		t.Fatalf("decision = %d, want pending", got)
	}
}

func TestAllWonDecidesWon(t *testing.T) {
	tk := testTicket(models.BetMultiple, nil, "100", wonPick("1.50"), wonPick("3.20"))
	if got := DecideTicket(tk); got != DecideWon {
		t.Fatalf("decision = %d, want won", got)
	}
}

func TestVoidSelectionNeverLosesTheTicket(t *testing.T) {
	// postponed fixture: neutralized, not lost
	tk := testTicket(models.BetMultiple, nil, "100", wonPick("1.50"), voidPick("3.20"))
	if got := DecideTicket(tk); got != DecideWon {
		t.Fatalf("decision = %d, want won", got)
	}

	p, err := ComputePayout(tk, nil, Settings{})
	if err != nil {
		t.Fatal(err)
	}
	mustEqual(t, "total_odd", p.TotalOdd, decimal.RequireFromString("1.50"))
}

func TestAllVoidDecidesCancelled(t *testing.T) {
	tk := testTicket(models.BetMultiple, nil, "100", voidPick("1.50"), voidPick("3.20"))
	if got := DecideTicket(tk); got != DecideCancelled {
		t.Fatalf("decision = %d, want cancelled", got)
	}
}

func TestSystemTicketWinsOnSurvivingLine(t *testing.T) {
	// k=2 over [won 1.5, lost 3.2, won 2.8]: only the 1.5×2.8 line survives
	tk := testTicket(models.BetSystem, intPtr(2), "100",
		wonPick("1.50"), lostPick("3.20"), wonPick("2.80"))

	if got := DecideTicket(tk); got != DecideWon {
		t.Fatalf("decision = %d, want won", got)
	}

	winnings, wonLines := SystemWinnings(tk)
	if wonLines != 1 {
		t.Fatalf("won lines = %d, want 1", wonLines)
	}
	// 100/3 × 4.20 = 140.00
	mustEqual(t, "winnings", winnings, decimal.RequireFromString("140.00"))
}

func TestSystemTicketAllLinesDeadLosesEarly(t *testing.T) {
	// both losses kill every 2-of-3 line; the open selection cannot save it
	tk := testTicket(models.BetSystem, intPtr(2), "100",
		lostPick("1.50"), lostPick("3.20"), pick("2.80"))

	if got := DecideTicket(tk); got != DecideLost {
		t.Fatalf("decision = %d, want lost", got)
	}
}

func TestSystemTicketWaitsForOpenLines(t *testing.T) {
	tk := testTicket(models.BetSystem, intPtr(2), "100",
		wonPick("1.50"), lostPick("3.20"), pick("2.80"))

	if got := DecideTicket(tk); got != DecidePending {
		t.Fatalf("decision = %d, want pending (the 1.5/2.8 line is still open)", got)
	}
}

func TestSystemVoidMemberContributesOne(t *testing.T) {
	tk := testTicket(models.BetSystem, intPtr(2), "90",
		wonPick("2.00"), voidPick("3.00"), wonPick("4.00"))

	if got := DecideTicket(tk); got != DecideWon {
		t.Fatalf("decision = %d, want won", got)
	}

	winnings, wonLines := SystemWinnings(tk)
	if wonLines != 3 {
		t.Fatalf("won lines = %d, want 3 (void members neutralized)", wonLines)
	}
	// 30×(2.00) + 30×(4.00) + 30×(2.00×4.00) = 60 + 120 + 240 = 420
	mustEqual(t, "winnings", winnings, decimal.RequireFromString("420.00"))
}
