package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Ticket statuses. Everything except pending is terminal.
const (
	TicketPending   = "pending"
	TicketWon       = "won"
	TicketLost      = "lost"
	TicketCancelled = "cancelled"
	TicketDeleted   = "deleted"
)

// Bet kinds.
const (
	BetSingle   = "single"
	BetMultiple = "multiple"
	BetSystem   = "system"
)

type Ticket struct {
	gorm.Model

	TicketCode string `gorm:"uniqueIndex;size:8" json:"ticket_code"`
	UserID     uint   `gorm:"index" json:"user_id"`
	UserCode   string `gorm:"size:32;index" json:"user_code"`

	BetKind string `gorm:"size:16;default:single" json:"bet_kind"`
	// SystemK is the k in a k-of-n system bet, nil for single/multiple.
	SystemK *int `json:"system_k"`

	Stake            decimal.Decimal `gorm:"type:numeric(12,2)" json:"stake"`
	TotalOdd         decimal.Decimal `gorm:"type:numeric(12,2);default:1.00" json:"total_odd"`
	PotentialWinning decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"potential_winning"`
	BonusAmount      decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"bonus_amount"`
	MaxWinning       decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"max_winning"`

	Status string `gorm:"size:20;index;default:pending" json:"status"`

	Selections []Selection `gorm:"foreignKey:TicketID" json:"selections"`
}

// IsTerminal reports whether the ticket has left the pending state. Terminal
// tickets are immutable: recalculation and settlement skip them.
func (t *Ticket) IsTerminal() bool {
	return t.Status != TicketPending
}

type Selection struct {
	gorm.Model

	TicketID  uint `gorm:"index"`
	FixtureID uint `gorm:"index"`

	Pick        string          `gorm:"size:50" json:"pick"`
	OddSelected decimal.Decimal `gorm:"type:numeric(8,2)" json:"odd_selected"`

	// Result is the persisted tri-state resolution flag: nil while
	// unresolved, true/false once the fixture result is known. A selection
	// on a void fixture keeps Result nil forever; Outcome() tells the two
	// cases apart via the fixture status.
	Result *bool `json:"result"`

	Fixture Fixture `json:"fixture"`
}

// SelectionOutcome is the four-variant view over (Result, fixture status).
type SelectionOutcome int8

const (
	OutcomeUnresolved SelectionOutcome = iota
	OutcomeWon
	OutcomeLost
	OutcomeVoid
)

// Outcome derives the selection state. Void-ness is keyed off the fixture
// status, never off the nullable flag, so an unresolved selection on a
// postponed fixture reads as void, not as pending. A draw-no-bet pick on a
// fixture that resolved to an exact draw is the one void whose fixture is
// not in a void status. Requires s.Fixture to be loaded.
func (s *Selection) Outcome() SelectionOutcome {
	if s.Fixture.IsVoid() {
		return OutcomeVoid
	}
	if s.Result == nil {
		if (s.Pick == PickHomeDnb || s.Pick == PickAwayDnb) && s.Fixture.IsResolved() &&
			*s.Fixture.HomeScore == *s.Fixture.AwayScore {
			return OutcomeVoid
		}
		return OutcomeUnresolved
	}
	if *s.Result {
		return OutcomeWon
	}
	return OutcomeLost
}
