// Package evaluator scores a guess against a secret word.
package evaluator

import (
	"strings"

	apperrors "github.com/hendriwan/wordduel-service/internal/errors"
)

// Tile is the per-position outcome of evaluating a guess.
type Tile string

const (
	TileCorrect Tile = "correct"
	TilePresent Tile = "present"
	TileAbsent  Tile = "absent"
)

// Evaluate returns one tile per position using the classic two-pass
// algorithm: exact matches first, then present letters consuming a
// remaining-count per secret letter. A letter appearing more often in the
// guess than in the secret is marked present at most as many times as it
// occurs in the secret; the excess stays absent.
//
// Pure and deterministic; safe to call concurrently.
func Evaluate(secret, guess string) ([]Tile, error) {
	s := strings.ToLower(secret)
	g := strings.ToLower(guess)

	if len(s) != len(g) {
		return nil, apperrors.ErrLengthMismatch
	}

	n := len(s)
	tiles := make([]Tile, n)
	remaining := make(map[byte]int)

	for i := 0; i < n; i++ {
		if g[i] == s[i] {
			tiles[i] = TileCorrect
		} else {
			tiles[i] = TileAbsent
			remaining[s[i]]++
		}
	}

	for i := 0; i < n; i++ {
		if tiles[i] == TileCorrect {
			continue
		}
		if remaining[g[i]] > 0 {
			tiles[i] = TilePresent
			remaining[g[i]]--
		}
	}

	return tiles, nil
}
