package dto

import "time"

type HistoryItem struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	PlayersCount int       `json:"playersCount"`
	Word         string    `json:"word"`
}

type DashboardResponse struct {
	Plan            string        `json:"plan"`
	DailyStreak     int           `json:"dailyStreak"`
	TotalCreated    int           `json:"totalCreated"`
	CreateLocked    bool          `json:"createLocked"`
	NextCreateAtUTC *time.Time    `json:"nextCreateAtUtc"`
	History         []HistoryItem `json:"history"`
}

type ScoreRow struct {
	AttemptsCount int       `json:"attemptsCount"`
	Won           bool      `json:"won"`
	CreatedAt     time.Time `json:"createdAt"`
}
