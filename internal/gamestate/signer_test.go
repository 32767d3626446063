package gamestate_test

import (
	"encoding/base64"
	"fmt"
	"testing"

	apperrors "github.com/hendriwan/wordduel-service/internal/errors"
	"github.com/hendriwan/wordduel-service/internal/gamestate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestNewSigner_MissingSecret(t *testing.T) {
	s, err := gamestate.NewSigner("")
	assert.Nil(t, s)
	assert.ErrorIs(t, err, apperrors.ErrMissingServerSecret)
}

func TestSigner_RoundTrip(t *testing.T) {
	signer, err := gamestate.NewSigner("state-secret")
	require.NoError(t, err)

	states := []gamestate.State{
		{Attempts: 0, Completed: false, UpdatedAt: 1700000000000},
		{Attempts: 3, Completed: false, UpdatedAt: 1700000000001},
		{Attempts: 6, Completed: true, Won: boolPtr(false), UpdatedAt: 1700000000002},
		{Attempts: 2, Completed: true, Won: boolPtr(true), UpdatedAt: 1700000000003},
	}

	for i, state := range states {
		t.Run(fmt.Sprintf("state_%d", i), func(t *testing.T) {
			token, err := signer.Encode(state)
			require.NoError(t, err)

			decoded := signer.Decode(token)
			require.NotNil(t, decoded)
			assert.Equal(t, state, *decoded)
		})
	}
}

// Flipping any single byte of a valid token must cause rejection.
func TestSigner_Decode_MutationSweep(t *testing.T) {
	signer, err := gamestate.NewSigner("state-secret")
	require.NoError(t, err)

	token, err := signer.Encode(gamestate.State{
		Attempts: 4, Completed: true, Won: boolPtr(true), UpdatedAt: 1700000000000,
	})
	require.NoError(t, err)

	for i := 0; i < len(token); i++ {
		mutated := []byte(token)
		mutated[i] ^= 0x01

		assert.Nil(t, signer.Decode(string(mutated)), "byte %d", i)
	}
}

func TestSigner_Decode_Invalid(t *testing.T) {
	signer, err := gamestate.NewSigner("state-secret")
	require.NoError(t, err)

	forged := base64.RawURLEncoding.EncodeToString([]byte(`{"a":0,"c":true,"w":true,"t":1}`))

	cases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"no separator", "abcdef"},
		{"empty signature", "abcdef."},
		{"empty payload", ".abcdef"},
		{"unsigned payload", forged + ".bm90LWEtc2lnbmF0dXJl"},
		{"garbage", "not.a.token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Nil(t, signer.Decode(tc.token))
		})
	}
}

func TestSigner_Decode_RejectsOtherKey(t *testing.T) {
	first, err := gamestate.NewSigner("state-secret")
	require.NoError(t, err)
	second, err := gamestate.NewSigner("different-secret")
	require.NoError(t, err)

	token, err := first.Encode(gamestate.Initial())
	require.NoError(t, err)

	assert.Nil(t, second.Decode(token))
	assert.NotNil(t, first.Decode(token))
}

func TestNext_ClampsAttempts(t *testing.T) {
	over := 99
	under := -3

	next := gamestate.Next(gamestate.Initial(), gamestate.Delta{Attempts: &over})
	assert.Equal(t, gamestate.MaxAttempts, next.Attempts)

	next = gamestate.Next(gamestate.Initial(), gamestate.Delta{Attempts: &under})
	assert.Equal(t, 0, next.Attempts)
}

func TestNext_MergesAndStamps(t *testing.T) {
	prev := gamestate.State{Attempts: 2, Completed: false, UpdatedAt: 1}

	attempts := 3
	completed := true
	won := true

	next := gamestate.Next(prev, gamestate.Delta{
		Attempts:  &attempts,
		Completed: &completed,
		Won:       &won,
	})

	assert.Equal(t, 3, next.Attempts)
	assert.True(t, next.Completed)
	assert.True(t, next.WonValue())
	assert.Greater(t, next.UpdatedAt, prev.UpdatedAt)

	// Fields absent from the delta carry over.
	unchanged := gamestate.Next(prev, gamestate.Delta{})
	assert.Equal(t, prev.Attempts, unchanged.Attempts)
	assert.Equal(t, prev.Completed, unchanged.Completed)
}
