package middlewares

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"os"

	"github.com/gofiber/fiber/v2"
)

// AdminAuth guards the administrative endpoints (fixture results, manual
// settlement). The caller signs the raw request body with the shared admin
// secret and sends the hex digest in X-Admin-Signature.
func AdminAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		secret := os.Getenv("ADMIN_API_SECRET")
		if secret == "" {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"success": false,
				"message": "ADMIN_API_NOT_CONFIGURED",
			})
		}

		h := hmac.New(sha256.New, []byte(secret))
		h.Write(c.Body())
		expected := hex.EncodeToString(h.Sum(nil))

		sig := c.Get("X-Admin-Signature")
		if sig == "" || !hmac.Equal([]byte(sig), []byte(expected)) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "INVALID_SIGNATURE",
			})
		}

		return c.Next()
	}
}
