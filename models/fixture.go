package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Fixture statuses.
const (
	FixtureScheduled = "scheduled"
	FixtureLive      = "live"
	FixtureFinished  = "finished"
	FixturePostponed = "postponed"
	FixtureCancelled = "cancelled"
	FixtureSettled   = "settled"
	FixtureAbandoned = "abandoned"
	FixtureNoResult  = "no_result"
)

// Selection outcome tags.
const (
	PickHomeWin = "home_win"
	PickDraw    = "draw"
	PickAwayWin = "away_win"
	PickOver15  = "over_1_5"
	PickUnder15 = "under_1_5"
	PickOver25  = "over_2_5"
	PickUnder25 = "under_2_5"
	PickOver35  = "over_3_5"
	PickUnder35 = "under_3_5"
	PickBttsYes = "btts_yes"
	PickBttsNo  = "btts_no"
	PickHomeDnb = "home_dnb"
	PickAwayDnb = "away_dnb"
)

type Fixture struct {
	gorm.Model

	SerialNumber string    `gorm:"size:50;index" json:"serial_number"`
	HomeTeam     string    `gorm:"size:255" json:"home_team"`
	AwayTeam     string    `gorm:"size:255" json:"away_team"`
	KickoffAt    time.Time `gorm:"index" json:"kickoff_at"`

	Status    string `gorm:"size:20;index;default:scheduled" json:"status"`
	HomeScore *int   `json:"home_score"`
	AwayScore *int   `json:"away_score"`

	HomeWinOdd decimal.Decimal `gorm:"type:numeric(8,2);default:1.00" json:"home_win_odd"`
	DrawOdd    decimal.Decimal `gorm:"type:numeric(8,2);default:1.00" json:"draw_odd"`
	AwayWinOdd decimal.Decimal `gorm:"type:numeric(8,2);default:1.00" json:"away_win_odd"`
	Over15Odd  decimal.Decimal `gorm:"type:numeric(8,2);default:1.00" json:"over_1_5_odd"`
	Under15Odd decimal.Decimal `gorm:"type:numeric(8,2);default:1.00" json:"under_1_5_odd"`
	Over25Odd  decimal.Decimal `gorm:"type:numeric(8,2);default:1.00" json:"over_2_5_odd"`
	Under25Odd decimal.Decimal `gorm:"type:numeric(8,2);default:1.00" json:"under_2_5_odd"`
	Over35Odd  decimal.Decimal `gorm:"type:numeric(8,2);default:1.00" json:"over_3_5_odd"`
	Under35Odd decimal.Decimal `gorm:"type:numeric(8,2);default:1.00" json:"under_3_5_odd"`
	BttsYesOdd decimal.Decimal `gorm:"type:numeric(8,2);default:1.00" json:"btts_yes_odd"`
	BttsNoOdd  decimal.Decimal `gorm:"type:numeric(8,2);default:1.00" json:"btts_no_odd"`
	HomeDnbOdd decimal.Decimal `gorm:"type:numeric(8,2);default:1.00" json:"home_dnb_odd"`
	AwayDnbOdd decimal.Decimal `gorm:"type:numeric(8,2);default:1.00" json:"away_dnb_odd"`
}

// IsVoid reports whether the fixture is in a status where its outcome can
// never be determined. Selections on a void fixture are neutralized to a
// 1.00 multiplier.
func (f *Fixture) IsVoid() bool {
	switch f.Status {
	case FixturePostponed, FixtureCancelled, FixtureAbandoned, FixtureNoResult:
		return true
	}
	return false
}

// IsResolved reports whether final scores for the fixture are usable.
func (f *Fixture) IsResolved() bool {
	return (f.Status == FixtureFinished || f.Status == FixtureSettled) &&
		f.HomeScore != nil && f.AwayScore != nil
}

// OddFor returns the current odd for an outcome tag, or false for an
// unknown tag.
func (f *Fixture) OddFor(pick string) (decimal.Decimal, bool) {
	switch pick {
	case PickHomeWin:
		return f.HomeWinOdd, true
	case PickDraw:
		return f.DrawOdd, true
	case PickAwayWin:
		return f.AwayWinOdd, true
	case PickOver15:
		return f.Over15Odd, true
	case PickUnder15:
		return f.Under15Odd, true
	case PickOver25:
		return f.Over25Odd, true
	case PickUnder25:
		return f.Under25Odd, true
	case PickOver35:
		return f.Over35Odd, true
	case PickUnder35:
		return f.Under35Odd, true
	case PickBttsYes:
		return f.BttsYesOdd, true
	case PickBttsNo:
		return f.BttsNoOdd, true
	case PickHomeDnb:
		return f.HomeDnbOdd, true
	case PickAwayDnb:
		return f.AwayDnbOdd, true
	}
	return decimal.Zero, false
}

// ValidFixtureStatus reports whether s is one of the known fixture statuses.
func ValidFixtureStatus(s string) bool {
	switch s {
	case FixtureScheduled, FixtureLive, FixtureFinished, FixturePostponed,
		FixtureCancelled, FixtureSettled, FixtureAbandoned, FixtureNoResult:
		return true
	}
	return false
}
