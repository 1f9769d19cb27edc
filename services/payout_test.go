package services

import (
	"testing"

	"poolbet/models"

	"github.com/shopspring/decimal"
)

func TestSinglePayout(t *testing.T) {
	tk := testTicket(models.BetSingle, nil, "100", pick("1.50"))

	p, err := ComputePayout(tk, nil, Settings{})
	if err != nil {
		t.Fatal(err)
	}
	mustEqual(t, "total_odd", p.TotalOdd, decimal.RequireFromString("1.50"))
	mustEqual(t, "potential_winning", p.PotentialWinning, decimal.RequireFromString("150.00"))
	mustEqual(t, "max_winning", p.MaxWinning, decimal.RequireFromString("150.00"))
}

func TestAccumulatorPayout(t *testing.T) {
	tk := testTicket(models.BetMultiple, nil, "100", pick("1.50"), pick("3.20"))

	p, err := ComputePayout(tk, nil, Settings{})
	if err != nil {
		t.Fatal(err)
	}
	mustEqual(t, "total_odd", p.TotalOdd, decimal.RequireFromString("4.80"))
	mustEqual(t, "potential_winning", p.PotentialWinning, decimal.RequireFromString("480.00"))
}

// 3 selections [1.5, 3.2, 2.8], stake 100, k=2: three lines at an unrounded
// 33.33... stake each, line multipliers 4.80 + 4.20 + 8.96 = 17.96, summed
// before the single final rounding: 100/3 * 17.96 = 598.67.
func TestSystemPayoutRoundsOnlyAtTheSum(t *testing.T) {
	tk := testTicket(models.BetSystem, intPtr(2), "100",
		pick("1.50"), pick("3.20"), pick("2.80"))

	p, err := ComputePayout(tk, nil, Settings{})
	if err != nil {
		t.Fatal(err)
	}
	mustEqual(t, "potential_winning", p.PotentialWinning, decimal.RequireFromString("598.67"))
	// total_odd is meaningless across independent lines
	mustEqual(t, "total_odd", p.TotalOdd, decimal.Zero)
	mustEqual(t, "bonus_amount", p.BonusAmount, decimal.Zero)
}

func TestVoidSelectionContributesOne(t *testing.T) {
	tk := testTicket(models.BetMultiple, nil, "100", voidPick("1.50"), pick("3.20"))

	p, err := ComputePayout(tk, nil, Settings{})
	if err != nil {
		t.Fatal(err)
	}
	mustEqual(t, "total_odd", p.TotalOdd, decimal.RequireFromString("3.20"))
	mustEqual(t, "potential_winning", p.PotentialWinning, decimal.RequireFromString("320.00"))
}

func TestAllVoidShortCircuitsToStakeRefund(t *testing.T) {
	tk := testTicket(models.BetMultiple, nil, "250", voidPick("1.50"), voidPick("3.20"))

	p, err := ComputePayout(tk, nil, Settings{})
	if err != nil {
		t.Fatal(err)
	}
	if !p.AllVoid {
		t.Fatal("ticket with only void selections must short-circuit")
	}
	mustEqual(t, "total_odd", p.TotalOdd, decimal.RequireFromString("1.00"))
	mustEqual(t, "potential_winning", p.PotentialWinning, decimal.RequireFromString("250"))
	mustEqual(t, "max_winning", p.MaxWinning, decimal.RequireFromString("250"))
}

func TestBonusAppliedToAccumulator(t *testing.T) {
	rules := []models.BonusRule{{
		MinSelections:      2,
		MinOddPerSelection: decimal.RequireFromString("1.20"),
		BonusPercentage:    decimal.RequireFromString("0.10"),
	}}
	tk := testTicket(models.BetMultiple, nil, "100", pick("1.50"), pick("3.20"))

	p, err := ComputePayout(tk, rules, Settings{})
	if err != nil {
		t.Fatal(err)
	}
	mustEqual(t, "bonus_amount", p.BonusAmount, decimal.RequireFromString("48.00"))
	mustEqual(t, "max_winning", p.MaxWinning, decimal.RequireFromString("528.00"))
}

func TestBonusSuppressedByVoidCount(t *testing.T) {
	rules := []models.BonusRule{{
		MinSelections:      1,
		MinOddPerSelection: decimal.RequireFromString("1.01"),
		BonusPercentage:    decimal.RequireFromString("0.25"),
	}}
	// 4 of 6 selections void: over the threshold, bonus forced to zero
	tk := testTicket(models.BetMultiple, nil, "100",
		pick("2.00"), pick("2.00"),
		voidPick("2.00"), voidPick("2.00"), voidPick("2.00"), voidPick("2.00"))

	p, err := ComputePayout(tk, rules, Settings{})
	if err != nil {
		t.Fatal(err)
	}
	mustEqual(t, "bonus_amount", p.BonusAmount, decimal.Zero)

	// at exactly 3 voids the bonus still applies
	tk = testTicket(models.BetMultiple, nil, "100",
		pick("2.00"), pick("2.00"), pick("2.00"),
		voidPick("2.00"), voidPick("2.00"), voidPick("2.00"))
	p, err = ComputePayout(tk, rules, Settings{})
	if err != nil {
		t.Fatal(err)
	}
	if p.BonusAmount.IsZero() {
		t.Error("3 void selections must not suppress the bonus")
	}
}

func TestNoBonusForSystemBets(t *testing.T) {
	rules := []models.BonusRule{{
		MinSelections:      1,
		MinOddPerSelection: decimal.RequireFromString("1.01"),
		BonusPercentage:    decimal.RequireFromString("0.25"),
	}}
	tk := testTicket(models.BetSystem, intPtr(2), "100",
		pick("1.50"), pick("3.20"), pick("2.80"))

	p, err := ComputePayout(tk, rules, Settings{})
	if err != nil {
		t.Fatal(err)
	}
	mustEqual(t, "bonus_amount", p.BonusAmount, decimal.Zero)
}

func TestPayoutCeiling(t *testing.T) {
	tk := testTicket(models.BetSingle, nil, "1000", pick("7.00"))

	p, err := ComputePayout(tk, nil, Settings{MaxWinningPerTicket: "5000"})
	if err != nil {
		t.Fatal(err)
	}
	mustEqual(t, "max_winning", p.MaxWinning, decimal.RequireFromString("5000"))
	// potential_winning reports the uncapped figure
	mustEqual(t, "potential_winning", p.PotentialWinning, decimal.RequireFromString("7000.00"))
}

func TestMalformedCeilingMeansNoCap(t *testing.T) {
	tk := testTicket(models.BetSingle, nil, "1000", pick("7.00"))

	p, err := ComputePayout(tk, nil, Settings{MaxWinningPerTicket: "abc"})
	if err != nil {
		t.Fatal(err)
	}
	mustEqual(t, "max_winning", p.MaxWinning, decimal.RequireFromString("7000.00"))

	p, err = ComputePayout(tk, nil, Settings{})
	if err != nil {
		t.Fatal(err)
	}
	mustEqual(t, "max_winning (empty ceiling)", p.MaxWinning, decimal.RequireFromString("7000.00"))
}
