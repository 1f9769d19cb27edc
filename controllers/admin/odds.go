package admin

import (
	"errors"

	"poolbet/models"

	"github.com/shopspring/decimal"
)

// applyOdds copies the tag->odd map onto the fixture's odd columns.
// Missing tags keep their 1.00 default.
func applyOdds(f *models.Fixture, odds map[string]string) error {
	for pick, raw := range odds {
		odd, err := decimal.NewFromString(raw)
		if err != nil || odd.LessThan(decimal.NewFromInt(1)) {
			return errors.New("INVALID_ODD_VALUE")
		}
		switch pick {
		case models.PickHomeWin:
			f.HomeWinOdd = odd
		case models.PickDraw:
			f.DrawOdd = odd
		case models.PickAwayWin:
			f.AwayWinOdd = odd
		case models.PickOver15:
			f.Over15Odd = odd
		case models.PickUnder15:
			f.Under15Odd = odd
		case models.PickOver25:
			f.Over25Odd = odd
		case models.PickUnder25:
			f.Under25Odd = odd
		case models.PickOver35:
			f.Over35Odd = odd
		case models.PickUnder35:
			f.Under35Odd = odd
		case models.PickBttsYes:
			f.BttsYesOdd = odd
		case models.PickBttsNo:
			f.BttsNoOdd = odd
		case models.PickHomeDnb:
			f.HomeDnbOdd = odd
		case models.PickAwayDnb:
			f.AwayDnbOdd = odd
		default:
			return errors.New("INVALID_PICK")
		}
	}
	return nil
}
