package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the bearer token and upserts the player row so
// every downstream write can rely on the user existing.
func (h *GameHandler) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing or malformed token",
			})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := h.tokenService.VerifyAccessToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}
		if claims.UserID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}

		if err := h.gameService.EnsureUser(c.Context(), claims.UserID, claims.Email); err != nil {
			return internalError(c, err)
		}

		c.Locals("userID", claims.UserID)
		c.Locals("email", claims.Email)

		return c.Next()
	}
}

// RequireAdmin gates the seeding endpoint on the configured email
// allow-list. Runs after RequireAuth.
func (h *GameHandler) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)
		if !h.cfg.IsAdminEmail(email) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "forbidden",
			})
		}

		return c.Next()
	}
}
