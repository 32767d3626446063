package errors

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidGuess           = errors.New("guess must be 5 letters (A-Z)")
	ErrInvalidSecretWord      = errors.New("secret word must be 5 letters (A-Z)")
	ErrInvalidDate            = errors.New("invalid date (expected YYYY-MM-DD)")
	ErrWordNotInDictionary    = errors.New("word must be in dictionary")
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrForbidden              = errors.New("forbidden")
	ErrPuzzleNotFound         = errors.New("puzzle not found")
	ErrNoAttemptsRemaining    = errors.New("no attempts remaining")
	ErrMissingServerSecret    = errors.New("missing server secret")
	ErrInvalidEnvelope        = errors.New("invalid ciphertext envelope")
	ErrAuthenticationFailed   = errors.New("ciphertext authentication failed")
	ErrLengthMismatch         = errors.New("secret and guess must be same length")
	ErrPoolTooSmall           = errors.New("daily word pool must contain at least 50 words")
	ErrDailyWordNotConfigured = errors.New("daily word not configured")
	ErrUserNotFound           = errors.New("user record not found")
	ErrAdminNotConfigured     = errors.New("admin email allow-list is not configured")
)

// QuotaExceededError is returned when a free-plan user has already used
// today's creation allowance. NextCreateAt is the start of the next UTC day.
type QuotaExceededError struct {
	NextCreateAt time.Time
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("free plan limit reached, try again at %s UTC",
		e.NextCreateAt.UTC().Format("15:04:05"))
}
