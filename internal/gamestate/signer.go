package gamestate

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"

	apperrors "github.com/hendriwan/wordduel-service/internal/errors"
)

// Signer encodes and decodes signed state tokens. The token format is
// base64url(JSON payload).base64url(HMAC-SHA256 signature), keyed by a
// SHA-256 digest of the state secret.
type Signer struct {
	key []byte
}

func NewSigner(secret string) (*Signer, error) {
	if secret == "" {
		return nil, apperrors.ErrMissingServerSecret
	}

	key := sha256.Sum256([]byte(secret))

	return &Signer{key: key[:]}, nil
}

// Encode serializes the state and appends its signature.
func (s *Signer) Encode(state State) (string, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return "", err
	}

	payload := base64.RawURLEncoding.EncodeToString(raw)

	return payload + "." + s.sign(payload), nil
}

// Decode verifies and deserializes a token. It returns nil on a missing
// token, malformed structure, signature mismatch, or a payload failing
// schema validation. Callers treat nil as "no prior state"; a forged or
// corrupted token never surfaces attacker-chosen fields.
func (s *Signer) Decode(token string) *State {
	if token == "" {
		return nil
	}

	parts := strings.Split(token, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil
	}

	expected := s.sign(parts[0])
	if !hmac.Equal([]byte(parts[1]), []byte(expected)) {
		return nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil
	}

	var state State

	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&state); err != nil {
		return nil
	}

	return &state
}

func (s *Signer) sign(payload string) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(payload))

	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
