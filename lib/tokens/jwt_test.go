package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vaulthive/vaulthive.go/db/models"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	secret := []byte("SECRET")
	user := &models.User{ID: "5c9f9a1b-0c1d-4e2f-8a3b-123456789abc", Email: "alice@example.com"}

	token, err := GenerateAccessToken(secret, 3600, user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken(secret, token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.ID)
	assert.Equal(t, user.Email, claims.Email)
}

func TestParseTokenWrongSecret(t *testing.T) {
	user := &models.User{ID: "abc"}
	token, err := GenerateAccessToken([]byte("SECRET"), 3600, user)
	assert.NoError(t, err)

	_, err = ParseToken([]byte("OTHER"), token)
	assert.Error(t, err)
}

func TestParseExpiredToken(t *testing.T) {
	user := &models.User{ID: "abc"}
	token, err := GenerateAccessToken([]byte("SECRET"), -60, user)
	assert.NoError(t, err)

	_, err = ParseToken([]byte("SECRET"), token)
	assert.Error(t, err)
}
