package domain

import "time"

// Puzzle is a creator-authored secret word. The ciphertext is the only
// source of the plaintext; the hash exists for audit and is never used to
// validate guesses.
type Puzzle struct {
	ID             string
	CreatorUserID  string
	WordHash       string
	WordCiphertext string
	CreatedAt      time.Time
}

// PuzzleAttempt is the terminal record of one player's completed game on a
// shared puzzle. At most one row exists per (puzzle, player); it is never
// updated after creation.
type PuzzleAttempt struct {
	ID            string
	PuzzleID      string
	PlayerUserID  string
	AttemptsCount int
	Won           bool
	CreatedAt     time.Time
}

// PuzzleHistoryItem is a creator dashboard row. The word stays encrypted
// until the service decrypts it for the creator.
type PuzzleHistoryItem struct {
	ID             string
	CreatedAt      time.Time
	PlayersCount   int
	WordCiphertext string
}

// PuzzleScore is one finished game on a puzzle, shown to its creator.
type PuzzleScore struct {
	AttemptsCount int
	Won           bool
	CreatedAt     time.Time
}
