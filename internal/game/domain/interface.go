package domain

import "context"

// GameRepository is the single storage port for the game core. Lookups
// return (nil, nil) when no row exists; inserts marked insert-or-ignore
// absorb conflicts silently so concurrent race losers do not error.
type GameRepository interface {
	// Users
	EnsureUser(ctx context.Context, id, email string) error
	GetUser(ctx context.Context, id string) (*User, error)

	// ConsumeCreateQuota atomically checks eligibility and bumps the
	// daily creation counter in one conditional update. It returns false
	// when the update matched no row, i.e. the caller is over quota.
	ConsumeCreateQuota(ctx context.Context, userID, todayISO string) (bool, error)

	// Puzzles
	CreatePuzzle(ctx context.Context, p *Puzzle) error
	GetPuzzle(ctx context.Context, id string) (*Puzzle, error)
	GetPuzzleByCreator(ctx context.Context, id, creatorUserID string) (*Puzzle, error)
	CountPuzzlesByCreator(ctx context.Context, creatorUserID string) (int, error)
	ListPuzzleHistory(ctx context.Context, creatorUserID string, limit int) ([]PuzzleHistoryItem, error)
	ListPuzzleScores(ctx context.Context, puzzleID string, limit int) ([]PuzzleScore, error)
	GetPuzzleAttempt(ctx context.Context, puzzleID, playerUserID string) (*PuzzleAttempt, error)
	InsertPuzzleAttempt(ctx context.Context, a *PuzzleAttempt) error // insert-or-ignore

	// Daily words
	GetDailyWord(ctx context.Context, dateISO string) (*DailyWord, error)
	UpsertDailyWord(ctx context.Context, w *DailyWord) error
	SeedDailyWords(ctx context.Context, words []DailyWord) error // insert-or-ignore
	GetDailyAttempt(ctx context.Context, dateISO, userID string) (*DailyAttempt, error)
	InsertDailyAttempt(ctx context.Context, a *DailyAttempt) error // insert-or-ignore

	// Streaks
	HasDailyWinOn(ctx context.Context, dateISO, userID string) (bool, error)
	IncrementDailyStreak(ctx context.Context, userID string) error
	SetDailyStreak(ctx context.Context, userID string, value int) error
}
