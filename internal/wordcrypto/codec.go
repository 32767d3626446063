// Package wordcrypto handles at-rest confidentiality for secret words.
// Words are stored as AES-256-GCM envelopes plus a salted one-way hash
// used for audit lookups that must never reveal the plaintext.
package wordcrypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"

	apperrors "github.com/hendriwan/wordduel-service/internal/errors"
)

const nonceSize = 12

// Codec encrypts, decrypts and hashes secret words with a key derived
// from a single server-held secret.
type Codec struct {
	secret string
	key    []byte
}

func NewCodec(secret string) (*Codec, error) {
	if secret == "" {
		return nil, apperrors.ErrMissingServerSecret
	}

	key := sha256.Sum256([]byte(secret))

	return &Codec{secret: secret, key: key[:]}, nil
}

// Encrypt produces an envelope of the form
// base64url(nonce).base64url(tag).base64url(ciphertext).
// A fresh nonce is generated per call, so encrypting the same word twice
// yields different envelopes.
func (c *Codec) Encrypt(word string) (string, error) {
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	aesgcm, err := c.newGCM()
	if err != nil {
		return "", err
	}

	sealed := aesgcm.Seal(nil, nonce, []byte(word), nil)

	// Seal appends the 16-byte GCM tag after the ciphertext.
	tagStart := len(sealed) - aesgcm.Overhead()
	ciphertext := sealed[:tagStart]
	tag := sealed[tagStart:]

	enc := base64.RawURLEncoding
	parts := []string{
		enc.EncodeToString(nonce),
		enc.EncodeToString(tag),
		enc.EncodeToString(ciphertext),
	}

	return strings.Join(parts, "."), nil
}

// Decrypt reverses Encrypt. It returns ErrInvalidEnvelope when the
// envelope is malformed and ErrAuthenticationFailed when the tag does not
// verify. No partial plaintext is ever returned.
func (c *Codec) Decrypt(envelope string) (string, error) {
	parts := strings.Split(envelope, ".")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", apperrors.ErrInvalidEnvelope
	}

	enc := base64.RawURLEncoding

	nonce, err := enc.DecodeString(parts[0])
	if err != nil || len(nonce) != nonceSize {
		return "", apperrors.ErrInvalidEnvelope
	}
	tag, err := enc.DecodeString(parts[1])
	if err != nil {
		return "", apperrors.ErrInvalidEnvelope
	}
	ciphertext, err := enc.DecodeString(parts[2])
	if err != nil {
		return "", apperrors.ErrInvalidEnvelope
	}

	aesgcm, err := c.newGCM()
	if err != nil {
		return "", err
	}

	plaintext, err := aesgcm.Open(nil, nonce, append(ciphertext, tag...), nil)
	if err != nil {
		return "", apperrors.ErrAuthenticationFailed
	}

	return string(plaintext), nil
}

// Hash returns a deterministic hex digest of the word, salted with the
// server secret so the digest space cannot be brute-forced against a
// public dictionary. Used only for audit, never to validate guesses.
func (c *Codec) Hash(word string) string {
	sum := sha256.Sum256([]byte(c.secret + ":" + strings.ToLower(word)))
	return hex.EncodeToString(sum[:])
}

func (c *Codec) newGCM() (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}
