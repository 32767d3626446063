package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *GameHandler) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	api := app.Group("/api/v1", h.RequireAuth())
	api.Post("/daily/guess", h.GuessDaily)
	api.Post("/puzzles", h.CreatePuzzle)
	api.Post("/puzzles/:id/guess", h.GuessPuzzle)
	api.Get("/puzzles/:id/scores", h.PuzzleScores)
	api.Get("/dashboard", h.Dashboard)

	// Admin-only endpoints
	admin := app.Group("/api/v1/admin", h.RequireAuth(), h.RequireAdmin())
	admin.Post("/daily-word", h.SeedDailyWord)
}
