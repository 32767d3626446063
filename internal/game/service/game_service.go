package service

//go:generate mockgen -destination=../../mocks/mock_game_repository.go -package=mocks github.com/hendriwan/wordduel-service/internal/game/domain GameRepository

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hendriwan/wordduel-service/config"
	"github.com/hendriwan/wordduel-service/internal/dictionary"
	apperrors "github.com/hendriwan/wordduel-service/internal/errors"
	"github.com/hendriwan/wordduel-service/internal/evaluator"
	"github.com/hendriwan/wordduel-service/internal/game/domain"
	"github.com/hendriwan/wordduel-service/internal/game/dto"
	"github.com/hendriwan/wordduel-service/internal/gamestate"
	"github.com/hendriwan/wordduel-service/internal/logging"
	"github.com/hendriwan/wordduel-service/internal/wordcrypto"
)

var alphaRe = regexp.MustCompile(`^[a-zA-Z]+$`)

// GameService orchestrates both game modes: it composes the codec, the
// evaluator and the signed-state token around the repository, and owns
// quota enforcement and streak upkeep.
type GameService struct {
	repo   domain.GameRepository
	codec  *wordcrypto.Codec
	signer *gamestate.Signer
	cfg    *config.Config
	log    logging.Logger
}

func NewGameService(repo domain.GameRepository, codec *wordcrypto.Codec,
	signer *gamestate.Signer, cfg *config.Config, log logging.Logger) *GameService {
	return &GameService{repo: repo, codec: codec, signer: signer, cfg: cfg, log: log}
}

// GuessCommand carries one guess submission. PuzzleID is empty in daily
// mode; StateToken is the raw cookie value and may be absent or forged.
type GuessCommand struct {
	UserID     string
	PuzzleID   string
	Guess      string
	StateToken string
}

func (s *GameService) EnsureUser(ctx context.Context, id, email string) error {
	return s.repo.EnsureUser(ctx, id, email)
}

// GuessPuzzle runs one guess against a shared puzzle.
func (s *GameService) GuessPuzzle(ctx context.Context, cmd GuessCommand) (*dto.GuessResult, error) {
	if !isValidWord(cmd.Guess) {
		return nil, apperrors.ErrInvalidGuess
	}
	if _, err := uuid.Parse(cmd.PuzzleID); err != nil {
		return nil, apperrors.ErrPuzzleNotFound
	}

	puzzle, err := s.repo.GetPuzzle(ctx, cmd.PuzzleID)
	if err != nil {
		return nil, err
	}
	if puzzle == nil {
		return nil, apperrors.ErrPuzzleNotFound
	}

	state := s.loadState(cmd.StateToken)

	// Token already terminal: short-circuit without touching storage.
	if state.Completed {
		return s.completedResult(state.WonValue(), puzzle.WordCiphertext, "")
	}
	if state.Attempts >= gamestate.MaxAttempts {
		return nil, apperrors.ErrNoAttemptsRemaining
	}

	// The store record wins over the token: another device may have
	// finished this game already.
	already, err := s.repo.GetPuzzleAttempt(ctx, puzzle.ID, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if already != nil {
		token := s.syncToken(state, already.Won)
		return s.completedResult(already.Won, puzzle.WordCiphertext, token)
	}

	secret, err := s.codec.Decrypt(puzzle.WordCiphertext)
	if err != nil {
		return nil, err
	}

	result, nextState, err := s.evaluate(state, cmd.Guess, secret)
	if err != nil {
		return nil, err
	}

	if result.Completed {
		attempt := &domain.PuzzleAttempt{
			ID:            uuid.NewString(),
			PuzzleID:      puzzle.ID,
			PlayerUserID:  cmd.UserID,
			AttemptsCount: result.AttemptNumber,
			Won:           result.Won,
			CreatedAt:     time.Now(),
		}
		if err := s.repo.InsertPuzzleAttempt(ctx, attempt); err != nil {
			return nil, err
		}
	}

	result.StateToken, err = s.signer.Encode(nextState)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GuessDaily runs one guess against today's global word, auto-seeding the
// daily table on first need and keeping the player's streak current.
func (s *GameService) GuessDaily(ctx context.Context, cmd GuessCommand) (*dto.GuessResult, error) {
	if !isValidWord(cmd.Guess) {
		return nil, apperrors.ErrInvalidGuess
	}

	date := gamestate.TodayUTC()
	state := s.loadState(cmd.StateToken)

	if state.Completed {
		result, err := s.completedResult(state.WonValue(), s.dailyCiphertext(ctx, date), "")
		if err != nil {
			return nil, err
		}
		result.Date = date
		return result, nil
	}
	if state.Attempts >= gamestate.MaxAttempts {
		return nil, apperrors.ErrNoAttemptsRemaining
	}

	already, err := s.repo.GetDailyAttempt(ctx, date, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if already != nil {
		token := s.syncToken(state, already.Won)
		result, err := s.completedResult(already.Won, s.dailyCiphertext(ctx, date), token)
		if err != nil {
			return nil, err
		}
		result.Date = date
		return result, nil
	}

	daily, err := s.repo.GetDailyWord(ctx, date)
	if err != nil {
		return nil, err
	}
	if daily == nil {
		// No admin seeding required: fill today plus upcoming days from
		// the fixed pool and read back the winning row.
		if err := s.EnsureSeeded(ctx, date, s.cfg.DailySeedDays); err != nil {
			return nil, err
		}
		if daily, err = s.repo.GetDailyWord(ctx, date); err != nil {
			return nil, err
		}
		if daily == nil {
			return nil, apperrors.ErrDailyWordNotConfigured
		}
	}

	secret, err := s.codec.Decrypt(daily.WordCiphertext)
	if err != nil {
		return nil, err
	}

	result, nextState, err := s.evaluate(state, cmd.Guess, secret)
	if err != nil {
		return nil, err
	}
	result.Date = date

	if result.Completed {
		attempt := &domain.DailyAttempt{
			Date:          date,
			UserID:        cmd.UserID,
			AttemptsCount: result.AttemptNumber,
			Won:           result.Won,
			CreatedAt:     time.Now(),
		}
		if err := s.repo.InsertDailyAttempt(ctx, attempt); err != nil {
			return nil, err
		}

		s.updateStreak(ctx, cmd.UserID, date, result.Won)
	}

	result.StateToken, err = s.signer.Encode(nextState)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// CreatePuzzle validates the secret, consumes the creator's daily quota
// and stores the encrypted word.
func (s *GameService) CreatePuzzle(ctx context.Context, userID, word string) (*dto.CreatePuzzleResponse, error) {
	if !isValidWord(word) {
		return nil, apperrors.ErrInvalidSecretWord
	}

	today := gamestate.TodayUTC()

	eligible, err := s.repo.ConsumeCreateQuota(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, &apperrors.QuotaExceededError{NextCreateAt: nextUTCMidnight(today)}
	}

	normalized := dictionary.Normalize(word)

	ciphertext, err := s.codec.Encrypt(strings.ToLower(normalized))
	if err != nil {
		return nil, err
	}

	puzzle := &domain.Puzzle{
		ID:             uuid.NewString(),
		CreatorUserID:  userID,
		WordHash:       s.codec.Hash(normalized),
		WordCiphertext: ciphertext,
		CreatedAt:      time.Now(),
	}
	if err := s.repo.CreatePuzzle(ctx, puzzle); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "puzzle created", "puzzle_id", puzzle.ID, "creator", userID)

	return &dto.CreatePuzzleResponse{
		PuzzleID: puzzle.ID,
		ShareURL: "/play/" + puzzle.ID,
	}, nil
}

// Dashboard aggregates the creator's stats; secret words are decrypted
// here because only the creator sees this view.
func (s *GameService) Dashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	today := gamestate.TodayUTC()
	usedToday := user.LastCreateDate != nil &&
		user.LastCreateDate.Format("2006-01-02") == today &&
		user.DailyCreateCount >= 1
	locked := user.EffectivePlan() == domain.PlanFree && usedToday

	var nextCreateAt *time.Time
	if locked {
		next := nextUTCMidnight(today)
		nextCreateAt = &next
	}

	total, err := s.repo.CountPuzzlesByCreator(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListPuzzleHistory(ctx, userID, s.cfg.HistoryLimit)
	if err != nil {
		return nil, err
	}

	history := make([]dto.HistoryItem, 0, len(rows))
	for _, row := range rows {
		word, err := s.codec.Decrypt(row.WordCiphertext)
		if err != nil {
			return nil, err
		}
		history = append(history, dto.HistoryItem{
			ID:           row.ID,
			CreatedAt:    row.CreatedAt,
			PlayersCount: row.PlayersCount,
			Word:         strings.ToUpper(word),
		})
	}

	return &dto.DashboardResponse{
		Plan:            string(user.EffectivePlan()),
		DailyStreak:     user.DailyStreak,
		TotalCreated:    total,
		CreateLocked:    locked,
		NextCreateAtUTC: nextCreateAt,
		History:         history,
	}, nil
}

// PuzzleScores lists finished games on a puzzle, restricted to its creator.
func (s *GameService) PuzzleScores(ctx context.Context, userID, puzzleID string) ([]dto.ScoreRow, error) {
	if _, err := uuid.Parse(puzzleID); err != nil {
		return nil, apperrors.ErrPuzzleNotFound
	}

	puzzle, err := s.repo.GetPuzzleByCreator(ctx, puzzleID, userID)
	if err != nil {
		return nil, err
	}
	if puzzle == nil {
		return nil, apperrors.ErrPuzzleNotFound
	}

	scores, err := s.repo.ListPuzzleScores(ctx, puzzleID, s.cfg.ScoresLimit)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.ScoreRow, 0, len(scores))
	for _, score := range scores {
		rows = append(rows, dto.ScoreRow{
			AttemptsCount: score.AttemptsCount,
			Won:           score.Won,
			CreatedAt:     score.CreatedAt,
		})
	}

	return rows, nil
}

// SeedDailyWord sets the word for an explicit date, overwriting any
// existing row. Empty date defaults to today; empty word to a random pool
// entry.
func (s *GameService) SeedDailyWord(ctx context.Context, dateISO, word string) (*dto.AdminSeedResponse, error) {
	if dateISO == "" {
		dateISO = gamestate.TodayUTC()
	}
	if !dictionary.IsISODate(dateISO) {
		return nil, apperrors.ErrInvalidDate
	}

	if word == "" {
		word = dictionary.Random()
	}
	normalized := dictionary.Normalize(word)
	if !dictionary.Contains(normalized) {
		return nil, apperrors.ErrWordNotInDictionary
	}

	ciphertext, err := s.codec.Encrypt(strings.ToLower(normalized))
	if err != nil {
		return nil, err
	}

	daily := &domain.DailyWord{
		Date:           dateISO,
		WordHash:       s.codec.Hash(normalized),
		WordCiphertext: ciphertext,
	}
	if err := s.repo.UpsertDailyWord(ctx, daily); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "daily word seeded", "date", dateISO)

	return &dto.AdminSeedResponse{Date: dateISO, Word: normalized}, nil
}

// EnsureSeeded fills daily_words for count consecutive dates starting at
// fromDate. Selection is deterministic, inserts are first-write-wins, so
// concurrent seeders converge without errors.
func (s *GameService) EnsureSeeded(ctx context.Context, fromDate string, count int) error {
	if !dictionary.IsISODate(fromDate) {
		return apperrors.ErrInvalidDate
	}
	if count < 1 {
		count = 1
	}
	if count > 365 {
		count = 365
	}

	words := make([]domain.DailyWord, 0, count)
	date := fromDate
	for i := 0; i < count; i++ {
		word, err := dictionary.SelectForDate(s.cfg.WordSecret, date)
		if err != nil {
			return err
		}

		ciphertext, err := s.codec.Encrypt(strings.ToLower(word))
		if err != nil {
			return err
		}

		words = append(words, domain.DailyWord{
			Date:           date,
			WordHash:       s.codec.Hash(word),
			WordCiphertext: ciphertext,
		})

		if date, err = dictionary.AddDays(date, 1); err != nil {
			return err
		}
	}

	return s.repo.SeedDailyWords(ctx, words)
}

// evaluate runs the shared tail of both guess flows: score the guess,
// advance the state, and decide completion.
func (s *GameService) evaluate(state gamestate.State, guess, secret string) (*dto.GuessResult, gamestate.State, error) {
	normalized := dictionary.Normalize(guess)

	tiles, err := evaluator.Evaluate(secret, normalized)
	if err != nil {
		return nil, state, err
	}

	attemptNumber := state.Attempts + 1
	won := strings.EqualFold(normalized, secret)
	completed := won || attemptNumber >= gamestate.MaxAttempts

	delta := gamestate.Delta{Attempts: &attemptNumber, Completed: &completed}
	if completed {
		delta.Won = &won
	}
	next := gamestate.Next(state, delta)

	result := &dto.GuessResult{
		Guess:         normalized,
		Tiles:         tileStrings(tiles),
		AttemptNumber: attemptNumber,
		Completed:     completed,
		Won:           won,
		MaxAttempts:   gamestate.MaxAttempts,
	}
	if completed && !won {
		result.Answer = strings.ToUpper(secret)
	}

	return result, next, nil
}

// loadState treats a missing or forged token as a fresh game.
func (s *GameService) loadState(token string) gamestate.State {
	if decoded := s.signer.Decode(token); decoded != nil {
		return *decoded
	}

	return gamestate.Initial()
}

// syncToken rewrites the client token to match the authoritative store
// record. Encoding only fails on a marshal error, so a failure here just
// leaves the old cookie in place.
func (s *GameService) syncToken(state gamestate.State, won bool) string {
	completed := true
	token, err := s.signer.Encode(gamestate.Next(state, gamestate.Delta{
		Completed: &completed,
		Won:       &won,
	}))
	if err != nil {
		return ""
	}

	return token
}

// completedResult builds the already-completed response, revealing the
// answer only on a loss.
func (s *GameService) completedResult(won bool, ciphertext, token string) (*dto.GuessResult, error) {
	result := &dto.GuessResult{
		Completed:        true,
		Won:              won,
		MaxAttempts:      gamestate.MaxAttempts,
		AlreadyCompleted: true,
		StateToken:       token,
	}

	if !won && ciphertext != "" {
		word, err := s.codec.Decrypt(ciphertext)
		if err != nil {
			return nil, err
		}
		result.Answer = strings.ToUpper(word)
	}

	return result, nil
}

// dailyCiphertext fetches today's ciphertext for answer reveal on the
// already-completed path; an absent row simply omits the answer.
func (s *GameService) dailyCiphertext(ctx context.Context, date string) string {
	daily, err := s.repo.GetDailyWord(ctx, date)
	if err != nil || daily == nil {
		return ""
	}

	return daily.WordCiphertext
}

// updateStreak is best-effort: the terminal record is already durable and
// a failed streak update must not fail the guess.
func (s *GameService) updateStreak(ctx context.Context, userID, date string, won bool) {
	if !won {
		if err := s.repo.SetDailyStreak(ctx, userID, 0); err != nil {
			s.log.Warn(ctx, "failed to reset daily streak", "user", userID, "error", err)
		}
		return
	}

	yesterday, err := dictionary.AddDays(date, -1)
	if err != nil {
		s.log.Warn(ctx, "failed to compute yesterday", "date", date, "error", err)
		return
	}

	wonYesterday, err := s.repo.HasDailyWinOn(ctx, yesterday, userID)
	if err != nil {
		s.log.Warn(ctx, "failed to check yesterday's win", "user", userID, "error", err)
		return
	}

	if wonYesterday {
		err = s.repo.IncrementDailyStreak(ctx, userID)
	} else {
		err = s.repo.SetDailyStreak(ctx, userID, 1)
	}
	if err != nil {
		s.log.Warn(ctx, "failed to update daily streak", "user", userID, "error", err)
	}
}

func tileStrings(tiles []evaluator.Tile) []string {
	out := make([]string, len(tiles))
	for i, tile := range tiles {
		out[i] = string(tile)
	}

	return out
}

func isValidWord(word string) bool {
	return len(word) == gamestate.WordLength && alphaRe.MatchString(word)
}

func nextUTCMidnight(todayISO string) time.Time {
	day, err := time.Parse("2006-01-02", todayISO)
	if err != nil {
		day = time.Now().UTC().Truncate(24 * time.Hour)
	}

	return day.AddDate(0, 0, 1)
}
