package services

import (
	"errors"

	"poolbet/models"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptySelections        = errors.New("ticket has no selections")
	ErrInvalidSystemParameter = errors.New("system k must be between 2 and the selection count")
)

// Line is one wager line: the whole selection set for single/multiple
// tickets, a k-combination for system tickets.
type Line struct {
	Selections []*models.Selection
}

// Multiplier is the product of the line's odds with void selections
// neutralized to 1.00.
func (l Line) Multiplier() decimal.Decimal {
	m := decimal.NewFromInt(1)
	for _, s := range l.Selections {
		if s.Outcome() == models.OutcomeVoid {
			continue
		}
		m = m.Mul(s.OddSelected)
	}
	return m
}

// GenerateLines enumerates the wager lines of a ticket. single/multiple
// yield exactly one line over all selections; system yields every
// k-combination in ascending selection-index order, so repeated
// recomputation always walks the same lines.
func GenerateLines(selections []models.Selection, betKind string, systemK int) ([]Line, error) {
	n := len(selections)
	if n == 0 {
		return nil, ErrEmptySelections
	}

	if betKind != models.BetSystem {
		line := Line{Selections: make([]*models.Selection, n)}
		for i := range selections {
			line.Selections[i] = &selections[i]
		}
		return []Line{line}, nil
	}

	if systemK < 2 || systemK > n {
		return nil, ErrInvalidSystemParameter
	}

	var lines []Line
	idx := make([]int, systemK)
	for i := range idx {
		idx[i] = i
	}
	for {
		line := Line{Selections: make([]*models.Selection, systemK)}
		for i, j := range idx {
			line.Selections[i] = &selections[j]
		}
		lines = append(lines, line)

		// advance to the next combination
		i := systemK - 1
		for i >= 0 && idx[i] == n-systemK+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < systemK; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return lines, nil
}

// LineStake splits the total stake evenly across lines. The result is left
// unquantized; rounding happens once, after per-line winnings are summed.
func LineStake(stake decimal.Decimal, numLines int) decimal.Decimal {
	return stake.Div(decimal.NewFromInt(int64(numLines)))
}
