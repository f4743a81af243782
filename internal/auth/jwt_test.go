package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec("test-secret", 100*time.Hour)
	userID := uuid.New()

	token, err := codec.Issue(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	verified, err := codec.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, verified)
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour)
	other := NewTokenCodec("other-secret", time.Hour)

	token, err := codec.Issue(uuid.New())
	assert.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodec_Tampered(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour)

	token, err := codec.Issue(uuid.New())
	assert.NoError(t, err)

	// Flip a character in the payload segment.
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	_, err = codec.Verify(string(tampered))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodec_Expired(t *testing.T) {
	codec := NewTokenCodec("test-secret", -time.Minute)

	token, err := codec.Issue(uuid.New())
	assert.NoError(t, err)

	_, err = codec.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodec_Garbage(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour)

	_, err := codec.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
