package dto

type GuessInput struct {
	Guess string `json:"guess"`
}

// GuessResult is what a guess flow hands back to the handler. When
// AlreadyCompleted is set the handler answers 409 with the stored outcome
// instead of a fresh evaluation.
type GuessResult struct {
	Guess         string   `json:"guess"`
	Tiles         []string `json:"tiles"`
	AttemptNumber int      `json:"attemptNumber"`
	Completed     bool     `json:"completed"`
	Won           bool     `json:"won"`
	MaxAttempts   int      `json:"maxAttempts"`
	// Answer is revealed only once the game is completed with a loss.
	Answer string `json:"answer,omitempty"`

	AlreadyCompleted bool   `json:"-"`
	StateToken       string `json:"-"`
	// Date is set by the daily flow so the handler can name the cookie.
	Date string `json:"-"`
}
