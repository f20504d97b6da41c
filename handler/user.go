package handler

import (
	"github.com/samko5sam/webapps/db"
	"github.com/samko5sam/webapps/models"
	"github.com/samko5sam/webapps/utils/hash"

	"github.com/ztrue/tracerr"
	"gorm.io/gorm"
)

var ErrUsernameExist = tracerr.New("username already exists")

// Register creates a new user with a hashed password. The very first user
// ever created becomes admin, everyone after that does not. Runs in one
// transaction so that exactly one of two concurrent registrations with the
// same username wins.
func Register(username string, password string) (*models.User, error) {
	encoded, err := hash.Generate(password, hash.DefaultArgon2Params)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Username: username,
		Password: encoded,
	}
	err = db.GetDB().Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Count(&count).Error; err != nil {
			return tracerr.Wrap(err)
		}
		user.IsAdmin = count == 0

		var exist int64
		if err := tx.Model(&models.User{}).Where("username = ?", username).
			Count(&exist).Error; err != nil {
			return tracerr.Wrap(err)
		}
		if exist > 0 {
			return ErrUsernameExist
		}
		return tracerr.Wrap(tx.Create(user).Error)
	})
	if err != nil {
		if err != ErrUsernameExist && usernameTaken(username) {
			// lost the unique index race to a concurrent registration
			return nil, ErrUsernameExist
		}
		return nil, err
	}
	return user, nil
}

func usernameTaken(username string) bool {
	var count int64
	if err := db.GetDB().Model(&models.User{}).Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}

// CheckUserPass verifies user credential.
//
// return 0 when successful, 1 when user not found, 2 when password mismatch.
// Callers must not expose the difference between 1 and 2.
func CheckUserPass(user string, pass string) (*models.User, int, error) {
	var rec models.User
	err := db.GetDB().Where("username = ?", user).First(&rec).Error
	if err == gorm.ErrRecordNotFound {
		return nil, 1, nil
	} else if err != nil {
		return nil, -1, tracerr.Wrap(err)
	}
	ok, err := hash.Verify(pass, rec.Password)
	if err != nil {
		return nil, -1, err
	}
	if !ok {
		return nil, 2, nil
	}
	return &rec, 0, nil
}

// GetUser returns user by id, nil when not found.
func GetUser(id uint) (*models.User, error) {
	var rec models.User
	err := db.GetDB().First(&rec, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	} else if err != nil {
		return nil, tracerr.Wrap(err)
	}
	return &rec, nil
}
