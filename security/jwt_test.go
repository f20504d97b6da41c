package security

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func setupToken(expire int) {
	viper.Set("token.secret", "test-secret")
	viper.Set("token.expire", expire)
}

func TestTokenRoundTrip(t *testing.T) {
	setupToken(3600)
	tests := []struct {
		name    string
		userID  uint
		isAdmin bool
	}{
		{
			name:    "Normal user",
			userID:  2,
			isAdmin: false,
		},
		{
			name:    "Admin user",
			userID:  1,
			isAdmin: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := IssueToken(tt.userID, tt.isAdmin)
			assert.Nil(t, err)

			claims, err := ParseToken(token)
			assert.Nil(t, err)
			assert.Equal(t, tt.isAdmin, claims.IsAdmin)
			id, err := claims.UserID()
			assert.Nil(t, err)
			assert.Equal(t, tt.userID, id)
		})
	}
}

func TestTokenExpired(t *testing.T) {
	setupToken(-1)
	token, err := IssueToken(1, false)
	assert.Nil(t, err)
	time.Sleep(time.Millisecond * 10)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenInvalid(t *testing.T) {
	setupToken(3600)
	token, err := IssueToken(1, true)
	assert.Nil(t, err)

	_, err = ParseToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	viper.Set("token.secret", "other-secret")
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
