package user

import (
	"errors"

	"poolbet/database"
	"poolbet/helpers"
	"poolbet/models"
	"poolbet/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AdjustBalanceRequest struct {
	UserCode string `json:"user_code"`
	// Amount is signed: positive deposits, negative withdraws.
	Amount string `json:"amount"`
	Note   string `json:"note"`
}

func AdjustBalance(c *fiber.Ctx) error {
	var req AdjustBalanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.IsZero() {
		return helpers.JSONError(c, "USER_CODE_AND_AMOUNT_REQUIRED")
	}
	if req.UserCode == "" {
		return helpers.JSONError(c, "USER_CODE_AND_AMOUNT_REQUIRED")
	}

	var user models.User
	if err := database.DB.
		Where("user_code = ? AND is_active = true", req.UserCode).
		First(&user).Error; err != nil {
		return helpers.JSONError(c, "USER_NOT_FOUND")
	}

	trxType := models.TrxDeposit
	note := req.Note
	if note == "" {
		note = "Deposit via API"
	}
	if amount.IsNegative() {
		trxType = models.TrxWithdraw
		if req.Note == "" {
			note = "Withdraw via API"
		}
	}

	var balance decimal.Decimal
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if amount.IsPositive() {
			if err := services.Credit(tx, user.ID, amount, trxType, note, nil, nil); err != nil {
				return err
			}
		} else {
			if err := services.DebitIfSufficient(tx, user.ID, amount.Neg(), trxType, note, nil, nil); err != nil {
				return err
			}
		}
		var fresh models.User
		if err := tx.First(&fresh, user.ID).Error; err != nil {
			return err
		}
		balance = fresh.Balance
		return nil
	})
	if err != nil {
		if errors.Is(err, services.ErrInsufficientFunds) {
			return helpers.JSONError(c, "INSUFFICIENT_BALANCE")
		}
		return helpers.JSONError(c, "FAILED_TO_UPDATE_BALANCE")
	}

	return helpers.JSONSuccess(c, "Balance updated successfully", fiber.Map{
		"user_code": user.UserCode,
		"balance":   balance,
	})
}
