package services

import (
	"log"
	"os"

	"poolbet/database"
	"poolbet/models"

	"github.com/shopspring/decimal"
)

// voidBonusThreshold suppresses the bonus once a ticket carries more void
// selections than this. Fixed, not configurable.
const voidBonusThreshold = 3

// Settings carries the global knobs the calculator consumes. Passed in
// explicitly so the payout math runs without any database.
type Settings struct {
	// MaxWinningPerTicket is the raw configured ceiling. Empty or
	// unparseable means no cap.
	MaxWinningPerTicket string
}

// Ceiling parses the configured per-ticket payout cap. A malformed value is
// logged and treated as "no cap", never as a calculation failure.
func (s Settings) Ceiling() (decimal.Decimal, bool) {
	if s.MaxWinningPerTicket == "" {
		return decimal.Zero, false
	}
	limit, err := decimal.NewFromString(s.MaxWinningPerTicket)
	if err != nil {
		log.Printf("⚠️  Invalid max_winning_per_ticket %q, payout cap disabled", s.MaxWinningPerTicket)
		return decimal.Zero, false
	}
	return limit, true
}

// LoadSettings resolves the runtime settings: the settings table wins,
// the environment is the fallback.
func LoadSettings() Settings {
	return Settings{
		MaxWinningPerTicket: models.GetSetting(
			database.DB,
			models.SettingMaxWinningPerTicket,
			os.Getenv("MAX_WINNING_PER_TICKET"),
		),
	}
}

// Payout is the recomputed money view of a ticket.
type Payout struct {
	TotalOdd         decimal.Decimal
	PotentialWinning decimal.Decimal
	BonusAmount      decimal.Decimal
	MaxWinning       decimal.Decimal
	// AllVoid marks a ticket whose every selection sits on a void fixture.
	// The caller cancels the ticket and refunds the stake instead of
	// settling it.
	AllVoid bool
}

var (
	oneOdd = decimal.RequireFromString("1.00")
)

// ComputePayout derives total_odd, potential_winning, bonus and max_winning
// for a ticket from the current fixture state. A selection on a void
// fixture contributes a 1.00 multiplier, at placement and at every
// recalculation alike. Selections must have their Fixture loaded.
func ComputePayout(t *models.Ticket, rules []models.BonusRule, cfg Settings) (Payout, error) {
	n := len(t.Selections)
	if n == 0 {
		return Payout{}, ErrEmptySelections
	}

	numVoid := 0
	var nonVoidOdds []decimal.Decimal
	for i := range t.Selections {
		if t.Selections[i].Outcome() == models.OutcomeVoid {
			numVoid++
			continue
		}
		nonVoidOdds = append(nonVoidOdds, t.Selections[i].OddSelected)
	}

	if numVoid == n {
		// Full refund path: the ticket is worth exactly its stake.
		return Payout{
			TotalOdd:         oneOdd,
			PotentialWinning: t.Stake,
			MaxWinning:       t.Stake,
			AllVoid:          true,
		}, nil
	}

	var out Payout
	if t.BetKind == models.BetSystem {
		k := 0
		if t.SystemK != nil {
			k = *t.SystemK
		}
		lines, err := GenerateLines(t.Selections, t.BetKind, k)
		if err != nil {
			return Payout{}, err
		}
		perLine := LineStake(t.Stake, len(lines))
		sum := decimal.Zero
		for _, line := range lines {
			sum = sum.Add(perLine.Mul(line.Multiplier()))
		}
		out.PotentialWinning = sum.Round(2)
		// total_odd has no meaning across independent lines
		out.TotalOdd = decimal.Zero
	} else {
		total := decimal.NewFromInt(1)
		for _, odd := range nonVoidOdds {
			total = total.Mul(odd)
		}
		out.TotalOdd = total.Round(2)
		out.PotentialWinning = t.Stake.Mul(out.TotalOdd).Round(2)

		if numVoid <= voidBonusThreshold {
			pct := BonusPercentage(rules, nonVoidOdds)
			out.BonusAmount = out.PotentialWinning.Mul(pct).Round(2)
		}
	}

	out.MaxWinning = out.PotentialWinning.Add(out.BonusAmount)
	if limit, ok := cfg.Ceiling(); ok && out.MaxWinning.GreaterThan(limit) {
		out.MaxWinning = limit
	}
	return out, nil
}
