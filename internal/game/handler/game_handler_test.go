package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/hendriwan/wordduel-service/config"
	"github.com/hendriwan/wordduel-service/internal/game/domain"
	"github.com/hendriwan/wordduel-service/internal/game/dto"
	"github.com/hendriwan/wordduel-service/internal/game/handler"
	"github.com/hendriwan/wordduel-service/internal/game/service"
	"github.com/hendriwan/wordduel-service/internal/gamestate"
	"github.com/hendriwan/wordduel-service/internal/mocks"
	"github.com/hendriwan/wordduel-service/internal/wordcrypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const puzzleID = "3b241101-e2bb-4255-8caf-4136c566a962"

type testEnv struct {
	app    *fiber.App
	repo   *mocks.MockGameRepository
	tokens *mocks.MockTokenVerifier
	codec  *wordcrypto.Codec
	signer *gamestate.Signer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockGameRepository(ctrl)
	tokens := mocks.NewMockTokenVerifier(ctrl)

	codec, err := wordcrypto.NewCodec("word-secret")
	require.NoError(t, err)
	signer, err := gamestate.NewSigner("state-secret")
	require.NoError(t, err)

	cfg := &config.Config{
		WordSecret:    "word-secret",
		StateSecret:   "state-secret",
		AdminEmails:   []string{"admin@example.com"},
		DailySeedDays: config.DefaultDailySeedDays,
		HistoryLimit:  config.DefaultHistoryLimit,
		ScoresLimit:   config.DefaultScoresLimit,
	}

	gameService := service.NewGameService(repo, codec, signer, cfg, nopLogger{})
	gameHandler := handler.NewGameHandler(gameService, tokens, cfg)

	app := fiber.New()
	handler.RegisterRoutes(app, gameHandler)

	return &testEnv{app: app, repo: repo, tokens: tokens, codec: codec, signer: signer}
}

// authorize wires one authenticated request: token verification plus the
// per-request player upsert done by the middleware.
func (e *testEnv) authorize(userID, email string) {
	e.tokens.EXPECT().VerifyAccessToken("valid-token").
		Return(&service.JWTCustomClaims{UserID: userID, Email: email}, nil)
	e.repo.EXPECT().EnsureUser(gomock.Any(), userID, email).Return(nil)
}

func jsonRequest(t *testing.T, method, path string, payload any) *http.Request {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-token")

	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAuth(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		env := newTestEnv(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed header", func(t *testing.T) {
		env := newTestEnv(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
		req.Header.Set("Authorization", "BearerNoSpace")
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("rejected token", func(t *testing.T) {
		env := newTestEnv(t)

		env.tokens.EXPECT().VerifyAccessToken("bad-token").
			Return(nil, assert.AnError)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestGuessPuzzleEndpoint(t *testing.T) {
	t.Run("winning guess sets the state cookie", func(t *testing.T) {
		env := newTestEnv(t)
		env.authorize("player-1", "p1@example.com")

		ciphertext, err := env.codec.Encrypt("crane")
		require.NoError(t, err)

		env.repo.EXPECT().GetPuzzle(gomock.Any(), puzzleID).
			Return(&domain.Puzzle{ID: puzzleID, CreatorUserID: "creator-1", WordCiphertext: ciphertext}, nil)
		env.repo.EXPECT().GetPuzzleAttempt(gomock.Any(), puzzleID, "player-1").Return(nil, nil)
		env.repo.EXPECT().InsertPuzzleAttempt(gomock.Any(), gomock.Any()).Return(nil)

		req := jsonRequest(t, http.MethodPost, "/api/v1/puzzles/"+puzzleID+"/guess",
			dto.GuessInput{Guess: "CRANE"})
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result dto.GuessResult
		decodeBody(t, resp, &result)
		assert.True(t, result.Won)
		assert.Equal(t, []string{"correct", "correct", "correct", "correct", "correct"}, result.Tiles)

		var stateCookie *http.Cookie
		for _, cookie := range resp.Cookies() {
			if cookie.Name == gamestate.PuzzleCookieName(puzzleID) {
				stateCookie = cookie
			}
		}
		require.NotNil(t, stateCookie)
		assert.True(t, stateCookie.HttpOnly)
		assert.Equal(t, "/", stateCookie.Path)

		state := env.signer.Decode(stateCookie.Value)
		require.NotNil(t, state)
		assert.True(t, state.Completed)
	})

	t.Run("completed cookie replays as conflict", func(t *testing.T) {
		env := newTestEnv(t)
		env.authorize("player-1", "p1@example.com")

		ciphertext, err := env.codec.Encrypt("crane")
		require.NoError(t, err)
		env.repo.EXPECT().GetPuzzle(gomock.Any(), puzzleID).
			Return(&domain.Puzzle{ID: puzzleID, WordCiphertext: ciphertext}, nil)

		won := true
		token, err := env.signer.Encode(gamestate.State{Attempts: 2, Completed: true, Won: &won})
		require.NoError(t, err)

		req := jsonRequest(t, http.MethodPost, "/api/v1/puzzles/"+puzzleID+"/guess",
			dto.GuessInput{Guess: "CRANE"})
		req.AddCookie(&http.Cookie{Name: gamestate.PuzzleCookieName(puzzleID), Value: token})

		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		var result dto.GuessResult
		decodeBody(t, resp, &result)
		assert.True(t, result.Won)
		assert.Empty(t, result.Answer)
	})

	t.Run("invalid guess", func(t *testing.T) {
		env := newTestEnv(t)
		env.authorize("player-1", "p1@example.com")

		req := jsonRequest(t, http.MethodPost, "/api/v1/puzzles/"+puzzleID+"/guess",
			dto.GuessInput{Guess: "XY"})
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown puzzle", func(t *testing.T) {
		env := newTestEnv(t)
		env.authorize("player-1", "p1@example.com")

		env.repo.EXPECT().GetPuzzle(gomock.Any(), puzzleID).Return(nil, nil)

		req := jsonRequest(t, http.MethodPost, "/api/v1/puzzles/"+puzzleID+"/guess",
			dto.GuessInput{Guess: "CRANE"})
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGuessDailyEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.authorize("player-1", "p1@example.com")

	today := gamestate.TodayUTC()
	ciphertext, err := env.codec.Encrypt("crane")
	require.NoError(t, err)

	env.repo.EXPECT().GetDailyAttempt(gomock.Any(), today, "player-1").Return(nil, nil)
	env.repo.EXPECT().GetDailyWord(gomock.Any(), today).
		Return(&domain.DailyWord{Date: today, WordCiphertext: ciphertext}, nil)

	req := jsonRequest(t, http.MethodPost, "/api/v1/daily/guess", dto.GuessInput{Guess: "TRACE"})
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result dto.GuessResult
	decodeBody(t, resp, &result)
	assert.Equal(t, []string{"absent", "correct", "correct", "present", "correct"}, result.Tiles)
	assert.False(t, result.Completed)

	var found bool
	for _, cookie := range resp.Cookies() {
		if cookie.Name == gamestate.DailyCookieName(today) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCreatePuzzleEndpoint(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		env := newTestEnv(t)
		env.authorize("creator-1", "c1@example.com")

		env.repo.EXPECT().ConsumeCreateQuota(gomock.Any(), "creator-1", gomock.Any()).Return(true, nil)
		env.repo.EXPECT().CreatePuzzle(gomock.Any(), gomock.Any()).Return(nil)

		req := jsonRequest(t, http.MethodPost, "/api/v1/puzzles", dto.CreatePuzzleInput{Word: "CRANE"})
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var created dto.CreatePuzzleResponse
		decodeBody(t, resp, &created)
		assert.NotEmpty(t, created.PuzzleID)
		assert.Equal(t, "/play/"+created.PuzzleID, created.ShareURL)
	})

	t.Run("quota exhausted", func(t *testing.T) {
		env := newTestEnv(t)
		env.authorize("creator-1", "c1@example.com")

		env.repo.EXPECT().ConsumeCreateQuota(gomock.Any(), "creator-1", gomock.Any()).Return(false, nil)

		req := jsonRequest(t, http.MethodPost, "/api/v1/puzzles", dto.CreatePuzzleInput{Word: "CRANE"})
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

		var body map[string]any
		decodeBody(t, resp, &body)
		assert.Contains(t, body, "nextCreateAtUtc")
	})
}

func TestDashboardEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.authorize("creator-1", "c1@example.com")

	env.repo.EXPECT().GetUser(gomock.Any(), "creator-1").
		Return(&domain.User{ID: "creator-1", Plan: domain.PlanFree, DailyStreak: 2}, nil)
	env.repo.EXPECT().CountPuzzlesByCreator(gomock.Any(), "creator-1").Return(3, nil)
	env.repo.EXPECT().ListPuzzleHistory(gomock.Any(), "creator-1", config.DefaultHistoryLimit).
		Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var dashboard dto.DashboardResponse
	decodeBody(t, resp, &dashboard)
	assert.Equal(t, "free", dashboard.Plan)
	assert.Equal(t, 2, dashboard.DailyStreak)
	assert.Equal(t, 3, dashboard.TotalCreated)
	assert.False(t, dashboard.CreateLocked)
}

func TestPuzzleScoresEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.authorize("stranger", "s@example.com")

	env.repo.EXPECT().GetPuzzleByCreator(gomock.Any(), puzzleID, "stranger").Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/puzzles/"+puzzleID+"/scores", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSeedDailyWordEndpoint(t *testing.T) {
	t.Run("forbidden for non-admin", func(t *testing.T) {
		env := newTestEnv(t)
		env.authorize("player-1", "p1@example.com")

		req := jsonRequest(t, http.MethodPost, "/api/v1/admin/daily-word",
			dto.AdminSeedInput{Date: "2026-09-01", Word: "CRANE"})
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin seeds explicit word", func(t *testing.T) {
		env := newTestEnv(t)
		env.authorize("admin-1", "admin@example.com")

		env.repo.EXPECT().UpsertDailyWord(gomock.Any(), gomock.Any()).Return(nil)

		req := jsonRequest(t, http.MethodPost, "/api/v1/admin/daily-word",
			dto.AdminSeedInput{Date: "2026-09-01", Word: "crane"})
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var seeded dto.AdminSeedResponse
		decodeBody(t, resp, &seeded)
		assert.Equal(t, "2026-09-01", seeded.Date)
		assert.Equal(t, "CRANE", seeded.Word)
	})
}
