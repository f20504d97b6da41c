package handler

import (
	"testing"

	"github.com/samko5sam/webapps/db"
	"github.com/samko5sam/webapps/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cleanUsers(t *testing.T) {
	require.Nil(t, db.GetDB().Where("1 = 1").Delete(&models.User{}).Error)
}

func TestRegisterBootstrapAdmin(t *testing.T) {
	cleanUsers(t)

	first, err := Register("alice", "password1")
	assert.Nil(t, err)
	assert.True(t, first.IsAdmin)

	second, err := Register("bob", "password2")
	assert.Nil(t, err)
	assert.False(t, second.IsAdmin)

	third, err := Register("carol", "password3")
	assert.Nil(t, err)
	assert.False(t, third.IsAdmin)
}

func TestRegisterDuplicate(t *testing.T) {
	cleanUsers(t)

	_, err := Register("alice", "password1")
	assert.Nil(t, err)

	_, err = Register("alice", "other-password")
	assert.ErrorIs(t, err, ErrUsernameExist)

	var count int64
	assert.Nil(t, db.GetDB().Model(&models.User{}).
		Where("username = ?", "alice").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCheckUserPass(t *testing.T) {
	cleanUsers(t)

	user, err := Register("alice", "password1")
	assert.Nil(t, err)
	// never store plaintext
	assert.NotContains(t, user.Password, "password1")

	rec, res, err := CheckUserPass("alice", "password1")
	assert.Nil(t, err)
	assert.Equal(t, 0, res)
	assert.Equal(t, user.ID, rec.ID)

	_, res, err = CheckUserPass("alice", "wrong")
	assert.Nil(t, err)
	assert.NotEqual(t, 0, res)

	_, res, err = CheckUserPass("nobody", "password1")
	assert.Nil(t, err)
	assert.NotEqual(t, 0, res)
}

func TestGetUser(t *testing.T) {
	cleanUsers(t)

	user, err := Register("alice", "password1")
	assert.Nil(t, err)

	rec, err := GetUser(user.ID)
	assert.Nil(t, err)
	assert.Equal(t, "alice", rec.Username)

	rec, err = GetUser(user.ID + 100)
	assert.Nil(t, err)
	assert.Nil(t, rec)
}
