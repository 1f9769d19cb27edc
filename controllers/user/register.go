package user

import (
	"strings"

	"poolbet/database"
	"poolbet/helpers"
	"poolbet/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type RegisterUserRequest struct {
	UserCode string `json:"user_code"`
	Currency string `json:"currency"`
}

func RegisterUser(c *fiber.Ctx) error {
	var req RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	req.UserCode = strings.TrimSpace(req.UserCode)
	if req.UserCode == "" {
		return helpers.JSONError(c, "USER_CODE_REQUIRED")
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "NGN"
	}

	var existing models.User
	if err := database.DB.Where("user_code = ?", req.UserCode).First(&existing).Error; err == nil {
		return helpers.JSONError(c, "USER_CODE_ALREADY_EXISTS")
	}

	user := models.User{
		UserCode: req.UserCode,
		Balance:  decimal.Zero,
		Currency: currency,
		IsActive: true,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_CREATE_USER")
	}

	return helpers.JSONSuccess(c, "User registered successfully", fiber.Map{
		"user_code": user.UserCode,
		"balance":   user.Balance,
		"currency":  user.Currency,
	})
}
