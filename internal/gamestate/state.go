// Package gamestate carries game progress between requests as a compact,
// HMAC-signed token held by the client. The token is an optimistic cache:
// the store's terminal attempt records always win reconciliation.
package gamestate

import (
	"fmt"
	"time"
)

const (
	WordLength  = 5
	MaxAttempts = 6
)

// State is the client-held progress record for one puzzle or daily date.
// Won is meaningful only when Completed is true.
type State struct {
	Attempts  int   `json:"a"`
	Completed bool  `json:"c"`
	Won       *bool `json:"w,omitempty"`
	UpdatedAt int64 `json:"t"`
}

// Delta is a partial update applied by Next.
type Delta struct {
	Attempts  *int
	Completed *bool
	Won       *bool
}

// Initial returns the state for a player's first interaction.
func Initial() State {
	return State{Attempts: 0, Completed: false, UpdatedAt: time.Now().UnixMilli()}
}

// Next merges delta into prev, refreshes the timestamp and clamps the
// attempt counter into [0, MaxAttempts] regardless of what delta claims.
func Next(prev State, delta Delta) State {
	next := prev

	if delta.Attempts != nil {
		next.Attempts = *delta.Attempts
	}
	if delta.Completed != nil {
		next.Completed = *delta.Completed
	}
	if delta.Won != nil {
		next.Won = delta.Won
	}

	if next.Attempts < 0 {
		next.Attempts = 0
	}
	if next.Attempts > MaxAttempts {
		next.Attempts = MaxAttempts
	}

	next.UpdatedAt = time.Now().UnixMilli()

	return next
}

// WonValue unwraps Won, defaulting to false when unset.
func (s State) WonValue() bool {
	return s.Won != nil && *s.Won
}

// TodayUTC returns the current UTC calendar date as YYYY-MM-DD.
func TodayUTC() string {
	return time.Now().UTC().Format("2006-01-02")
}

// DailyCookieName names the state cookie for a daily date.
func DailyCookieName(date string) string {
	return fmt.Sprintf("daily_state_%s", date)
}

// PuzzleCookieName names the state cookie for a shared puzzle.
func PuzzleCookieName(puzzleID string) string {
	return fmt.Sprintf("puzzle_state_%s", puzzleID)
}
