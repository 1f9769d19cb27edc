package services

import (
	"sort"

	"poolbet/models"

	"github.com/shopspring/decimal"
)

// BonusPercentage evaluates the bonus rules against the odds of a ticket's
// non-void selections. Rules are tried by MinSelections descending (ties by
// ID, i.e. declaration order); the first rule whose qualifying count
// (selections with odd >= the rule's MinOddPerSelection) reaches its
// MinSelections wins. No match yields zero.
func BonusPercentage(rules []models.BonusRule, odds []decimal.Decimal) decimal.Decimal {
	ordered := make([]models.BonusRule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].MinSelections != ordered[j].MinSelections {
			return ordered[i].MinSelections > ordered[j].MinSelections
		}
		return ordered[i].ID < ordered[j].ID
	})

	for _, rule := range ordered {
		qualifying := 0
		for _, odd := range odds {
			if odd.GreaterThanOrEqual(rule.MinOddPerSelection) {
				qualifying++
			}
		}
		if qualifying >= rule.MinSelections {
			return rule.BonusPercentage
		}
	}
	return decimal.Zero
}
