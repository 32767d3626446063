// Package dictionary holds the fixed word pool used for validating
// secret words and for deterministic daily-word selection.
package dictionary

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"math/big"
	"regexp"
	"strings"
	"time"

	apperrors "github.com/hendriwan/wordduel-service/internal/errors"
	"github.com/hendriwan/wordduel-service/internal/gamestate"
)

// PoolSize is the number of pool entries the daily selector draws from.
const PoolSize = 50

// Words is the fixed allow-list, uppercase.
var Words = []string{
	"APPLE", "BRAIN", "CACHE", "CHAIR", "CLOUD",
	"DEBUG", "EARTH", "FAITH", "GRACE", "HOUSE",
	"INDEX", "JUICE", "KNIFE", "LIGHT", "MAGIC",
	"NERVE", "OCEAN", "PRIDE", "QUERY", "ROBOT",
	"SCALE", "SHARE", "TABLE", "UNITY", "VALUE",
	"WATER", "WORLD", "YOUTH", "ZEBRA", "ALERT",
	"BRAVE", "CRANE", "DRIVE", "ENJOY", "FRAME",
	"GLASS", "HEART", "INPUT", "LEVEL", "MONEY",
	"NORTH", "POWER", "QUICK", "RANGE", "SMART",
	"TRUST", "VOICE", "WRITE", "XENON", "ZONAL",
}

var wordSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Words))
	for _, w := range Words {
		set[w] = struct{}{}
	}
	return set
}()

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Normalize trims and uppercases a word.
func Normalize(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

// Contains reports whether the normalized word is in the allow-list.
func Contains(word string) bool {
	w := Normalize(word)
	if len(w) != gamestate.WordLength {
		return false
	}
	_, ok := wordSet[w]

	return ok
}

// Random picks a uniformly random pool word using crypto/rand.
func Random() string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(Words))))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken.
		return Words[0]
	}

	return Words[n.Int64()]
}

// IsISODate reports whether d looks like YYYY-MM-DD.
func IsISODate(d string) bool {
	if !isoDateRe.MatchString(d) {
		return false
	}
	_, err := time.Parse("2006-01-02", d)

	return err == nil
}

// AddDays shifts an ISO date by the given number of UTC days.
func AddDays(dateISO string, days int) (string, error) {
	d, err := time.Parse("2006-01-02", dateISO)
	if err != nil {
		return "", apperrors.ErrInvalidDate
	}

	return d.AddDate(0, 0, days).Format("2006-01-02"), nil
}

// SelectForDate deterministically maps a UTC calendar date to a pool word.
// The digest is keyed by the server secret so separate deployments do not
// share a daily sequence; any replica computes the same word for the same
// date without consulting storage.
func SelectForDate(secret, dateISO string) (string, error) {
	if !IsISODate(dateISO) {
		return "", apperrors.ErrInvalidDate
	}
	if secret == "" {
		return "", apperrors.ErrMissingServerSecret
	}
	if len(Words) < PoolSize {
		return "", apperrors.ErrPoolTooSmall
	}

	digest := sha256.Sum256([]byte(secret + ":daily:" + dateISO))
	idx := binary.BigEndian.Uint32(digest[:4]) % PoolSize

	return Words[idx], nil
}
