package dto

// AdminSeedInput seeds or overwrites the daily word for an explicit date.
// Both fields are optional: date defaults to today (UTC), word to a random
// dictionary entry.
type AdminSeedInput struct {
	Date string `json:"date"`
	Word string `json:"word"`
}

// AdminSeedResponse echoes the word back; the endpoint is admin-only so
// returning it is safe and lets admins verify the seed.
type AdminSeedResponse struct {
	Date string `json:"date"`
	Word string `json:"word"`
}
