package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultPort          = "8080"
	DefaultDailySeedDays = 50
	DefaultHistoryLimit  = 25
	DefaultScoresLimit   = 200
)

type Config struct {
	Env  string
	Port string
	DBURL string

	// WordSecret keys word encryption, word hashing and daily selection.
	WordSecret string
	// StateSecret keys the signed game-state cookie.
	StateSecret string
	// AccessTokenSecret verifies bearer tokens from the identity provider.
	AccessTokenSecret string

	// AdminEmails is the allow-list for the daily-word admin endpoint.
	AdminEmails []string

	DailySeedDays int
	HistoryLimit  int
	ScoresLimit   int
}

func Load() *Config {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		Env:               getEnv("ENV", "development"),
		Port:              getEnv("PORT", DefaultPort),
		DBURL:             mustGetEnv("DB_URL"),
		WordSecret:        mustGetEnv("WORD_SECRET"),
		StateSecret:       mustGetEnv("STATE_SECRET"),
		AccessTokenSecret: mustGetEnv("ACCESS_TOKEN_SECRET"),
		AdminEmails:       parseEmailList(os.Getenv("ADMIN_EMAILS")),
		DailySeedDays:     getEnvAsInt("DAILY_SEED_DAYS", DefaultDailySeedDays),
		HistoryLimit:      getEnvAsInt("HISTORY_LIMIT", DefaultHistoryLimit),
		ScoresLimit:       getEnvAsInt("SCORES_LIMIT", DefaultScoresLimit),
	}
}

// IsAdminEmail reports whether the email is on the allow-list,
// case-insensitively.
func (c *Config) IsAdminEmail(email string) bool {
	if email == "" {
		return false
	}
	for _, allowed := range c.AdminEmails {
		if strings.EqualFold(allowed, email) {
			return true
		}
	}

	return false
}

func parseEmailList(raw string) []string {
	var emails []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.ToLower(strings.TrimSpace(part)); trimmed != "" {
			emails = append(emails, trimmed)
		}
	}

	return emails
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
