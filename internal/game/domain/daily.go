package domain

import "time"

// DailyWord is the global puzzle for one UTC calendar date. At most one
// row per date; concurrent seeders converge because selection is
// deterministic and inserts are first-write-wins.
type DailyWord struct {
	Date           string
	WordHash       string
	WordCiphertext string
}

// DailyAttempt is the terminal record of a user's daily game, keyed by
// (date, user).
type DailyAttempt struct {
	Date          string
	UserID        string
	AttemptsCount int
	Won           bool
	CreatedAt     time.Time
}
