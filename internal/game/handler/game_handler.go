package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hendriwan/wordduel-service/config"
	apperrors "github.com/hendriwan/wordduel-service/internal/errors"
	"github.com/hendriwan/wordduel-service/internal/game/dto"
	"github.com/hendriwan/wordduel-service/internal/game/service"
	"github.com/hendriwan/wordduel-service/internal/gamestate"
)

const (
	dailyCookieMaxAge  = 7 * 24 * time.Hour
	puzzleCookieMaxAge = 30 * 24 * time.Hour
)

type GameHandler struct {
	gameService  *service.GameService
	tokenService service.TokenVerifier
	cfg          *config.Config
}

func NewGameHandler(gameService *service.GameService, tokenService service.TokenVerifier,
	cfg *config.Config) *GameHandler {
	return &GameHandler{gameService: gameService, tokenService: tokenService, cfg: cfg}
}

func (h *GameHandler) GuessDaily(c *fiber.Ctx) error {
	var input dto.GuessInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	date := gamestate.TodayUTC()

	result, err := h.gameService.GuessDaily(c.Context(), service.GuessCommand{
		UserID:     userID(c),
		Guess:      input.Guess,
		StateToken: c.Cookies(gamestate.DailyCookieName(date)),
	})
	if err != nil {
		return guessError(c, err)
	}

	if result.StateToken != "" {
		setStateCookie(c, gamestate.DailyCookieName(date), result.StateToken, dailyCookieMaxAge)
	}

	if result.AlreadyCompleted {
		return alreadyCompleted(c, result)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *GameHandler) GuessPuzzle(c *fiber.Ctx) error {
	var input dto.GuessInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	puzzleID := c.Params("id")

	result, err := h.gameService.GuessPuzzle(c.Context(), service.GuessCommand{
		UserID:     userID(c),
		PuzzleID:   puzzleID,
		Guess:      input.Guess,
		StateToken: c.Cookies(gamestate.PuzzleCookieName(puzzleID)),
	})
	if err != nil {
		return guessError(c, err)
	}

	if result.StateToken != "" {
		setStateCookie(c, gamestate.PuzzleCookieName(puzzleID), result.StateToken, puzzleCookieMaxAge)
	}

	if result.AlreadyCompleted {
		return alreadyCompleted(c, result)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *GameHandler) CreatePuzzle(c *fiber.Ctx) error {
	var input dto.CreatePuzzleInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	resp, err := h.gameService.CreatePuzzle(c.Context(), userID(c), input.Word)
	if err != nil {
		var quotaErr *apperrors.QuotaExceededError
		if errors.As(err, &quotaErr) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":           quotaErr.Error(),
				"nextCreateAtUtc": quotaErr.NextCreateAt.UTC(),
			})
		}
		if errors.Is(err, apperrors.ErrInvalidSecretWord) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		return internalError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *GameHandler) Dashboard(c *fiber.Ctx) error {
	resp, err := h.gameService.Dashboard(c.Context(), userID(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}

		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *GameHandler) PuzzleScores(c *fiber.Ctx) error {
	rows, err := h.gameService.PuzzleScores(c.Context(), userID(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrPuzzleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}

		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"scores": rows})
}

func (h *GameHandler) SeedDailyWord(c *fiber.Ctx) error {
	var input dto.AdminSeedInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	resp, err := h.gameService.SeedDailyWord(c.Context(), input.Date, input.Word)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDate) ||
			errors.Is(err, apperrors.ErrWordNotInDictionary) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// alreadyCompleted reports a replayed game distinctly from a fresh
// evaluation. The answer ships only when the stored outcome was a loss.
func alreadyCompleted(c *fiber.Ctx, result *dto.GuessResult) error {
	body := fiber.Map{
		"error":     "game already completed",
		"completed": true,
		"won":       result.Won,
	}
	if result.Answer != "" {
		body["answer"] = result.Answer
	}

	return c.Status(fiber.StatusConflict).JSON(body)
}

func guessError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrInvalidGuess):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, apperrors.ErrPuzzleNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNoAttemptsRemaining):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		return internalError(c, err)
	}
}

func internalError(c *fiber.Ctx, _ error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal server error",
	})
}

func setStateCookie(c *fiber.Ctx, name, value string, maxAge time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func userID(c *fiber.Ctx) string {
	id, _ := c.Locals("userID").(string)
	return id
}
