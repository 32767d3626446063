package dictionary_test

import (
	"testing"

	"github.com/hendriwan/wordduel-service/internal/dictionary"
	apperrors "github.com/hendriwan/wordduel-service/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "CRANE", dictionary.Normalize(" crane "))
	assert.Equal(t, "CRANE", dictionary.Normalize("CrAnE"))
}

func TestContains(t *testing.T) {
	assert.True(t, dictionary.Contains("crane"))
	assert.True(t, dictionary.Contains("APPLE"))
	assert.False(t, dictionary.Contains("zzzzz"))
	assert.False(t, dictionary.Contains("cran"))
	assert.False(t, dictionary.Contains(""))
}

func TestRandom_ReturnsPoolWord(t *testing.T) {
	for i := 0; i < 20; i++ {
		assert.True(t, dictionary.Contains(dictionary.Random()))
	}
}

func TestIsISODate(t *testing.T) {
	assert.True(t, dictionary.IsISODate("2026-08-29"))
	assert.False(t, dictionary.IsISODate("2026-8-29"))
	assert.False(t, dictionary.IsISODate("2026-13-01"))
	assert.False(t, dictionary.IsISODate("not-a-date"))
	assert.False(t, dictionary.IsISODate(""))
}

func TestAddDays(t *testing.T) {
	next, err := dictionary.AddDays("2026-12-31", 1)
	require.NoError(t, err)
	assert.Equal(t, "2027-01-01", next)

	prev, err := dictionary.AddDays("2026-03-01", -1)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-28", prev)

	_, err = dictionary.AddDays("bad", 1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidDate)
}

func TestSelectForDate_Deterministic(t *testing.T) {
	first, err := dictionary.SelectForDate("secret-a", "2026-08-29")
	require.NoError(t, err)
	second, err := dictionary.SelectForDate("secret-a", "2026-08-29")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, dictionary.Contains(first))
}

// Different server secrets must not share a daily sequence.
func TestSelectForDate_SecretKeyed(t *testing.T) {
	date := "2026-01-01"
	var sequenceA, sequenceB []string

	for i := 0; i < 50; i++ {
		wordA, err := dictionary.SelectForDate("secret-a", date)
		require.NoError(t, err)
		wordB, err := dictionary.SelectForDate("secret-b", date)
		require.NoError(t, err)

		sequenceA = append(sequenceA, wordA)
		sequenceB = append(sequenceB, wordB)

		date, err = dictionary.AddDays(date, 1)
		require.NoError(t, err)
	}

	assert.NotEqual(t, sequenceA, sequenceB)
}

func TestSelectForDate_Validation(t *testing.T) {
	_, err := dictionary.SelectForDate("secret", "29-08-2026")
	assert.ErrorIs(t, err, apperrors.ErrInvalidDate)

	_, err = dictionary.SelectForDate("", "2026-08-29")
	assert.ErrorIs(t, err, apperrors.ErrMissingServerSecret)
}
