package wordcrypto_test

import (
	"strings"
	"testing"

	apperrors "github.com/hendriwan/wordduel-service/internal/errors"
	"github.com/hendriwan/wordduel-service/internal/wordcrypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCodec_MissingSecret(t *testing.T) {
	c, err := wordcrypto.NewCodec("")
	assert.Nil(t, c)
	assert.ErrorIs(t, err, apperrors.ErrMissingServerSecret)
}

func TestCodec_RoundTrip(t *testing.T) {
	c, err := wordcrypto.NewCodec("test-secret")
	require.NoError(t, err)

	envelope, err := c.Encrypt("crane")
	require.NoError(t, err)

	parts := strings.Split(envelope, ".")
	require.Len(t, parts, 3)

	plaintext, err := c.Decrypt(envelope)
	require.NoError(t, err)
	assert.Equal(t, "crane", plaintext)
}

func TestCodec_NonceFreshness(t *testing.T) {
	c, err := wordcrypto.NewCodec("test-secret")
	require.NoError(t, err)

	first, err := c.Encrypt("apple")
	require.NoError(t, err)
	second, err := c.Encrypt("apple")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCodec_Decrypt_InvalidEnvelope(t *testing.T) {
	c, err := wordcrypto.NewCodec("test-secret")
	require.NoError(t, err)

	cases := []struct {
		name     string
		envelope string
	}{
		{"empty", ""},
		{"missing parts", "abc.def"},
		{"too many parts", "a.b.c.d"},
		{"empty part", "a..c"},
		{"bad base64", "!!!.def.ghi"},
		{"short nonce", "YWJj.ZGVm.Z2hp"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.Decrypt(tc.envelope)
			assert.ErrorIs(t, err, apperrors.ErrInvalidEnvelope)
		})
	}
}

func TestCodec_Decrypt_Tampered(t *testing.T) {
	c, err := wordcrypto.NewCodec("test-secret")
	require.NoError(t, err)

	envelope, err := c.Encrypt("crane")
	require.NoError(t, err)

	parts := strings.Split(envelope, ".")
	require.Len(t, parts, 3)

	t.Run("flipped ciphertext", func(t *testing.T) {
		mutated := []byte(parts[2])
		if mutated[0] == 'A' {
			mutated[0] = 'B'
		} else {
			mutated[0] = 'A'
		}
		tampered := parts[0] + "." + parts[1] + "." + string(mutated)

		_, err := c.Decrypt(tampered)
		assert.ErrorIs(t, err, apperrors.ErrAuthenticationFailed)
	})

	t.Run("wrong key", func(t *testing.T) {
		other, err := wordcrypto.NewCodec("another-secret")
		require.NoError(t, err)

		_, err = other.Decrypt(envelope)
		assert.ErrorIs(t, err, apperrors.ErrAuthenticationFailed)
	})
}

func TestCodec_Hash(t *testing.T) {
	c, err := wordcrypto.NewCodec("test-secret")
	require.NoError(t, err)

	t.Run("deterministic and case-insensitive", func(t *testing.T) {
		assert.Equal(t, c.Hash("CRANE"), c.Hash("crane"))
		assert.Len(t, c.Hash("crane"), 64)
	})

	t.Run("salted by secret", func(t *testing.T) {
		other, err := wordcrypto.NewCodec("another-secret")
		require.NoError(t, err)
		assert.NotEqual(t, c.Hash("crane"), other.Hash("crane"))
	})
}
