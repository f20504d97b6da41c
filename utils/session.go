package utils

import (
	"github.com/samko5sam/webapps/db"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/spf13/viper"
)

// GetSession loads (or starts) the request session.
func GetSession(c *gin.Context) (*sessions.Session, error) {
	return db.GetSession().Get(c.Request, viper.GetString("session.cookie"))
}

// SaveSession flushes every session touched during the request.
func SaveSession(c *gin.Context) error {
	return sessions.Save(c.Request, c.Writer)
}

// CheckSignIn reports whether the request carries a signed in session and, if
// so, stores the user id and username in the gin context. A cookie pointing
// at an empty session is expired on the spot.
func CheckSignIn(c *gin.Context) (bool, error) {
	cookie, err := c.Cookie(viper.GetString("session.cookie"))
	if err != nil || cookie == "" {
		return false, nil
	}

	session, err := GetSession(c)
	if err != nil {
		return false, err
	}
	if session.Values["id"] == nil {
		session.Options.MaxAge = -1
		return false, SaveSession(c)
	}

	c.Set("id", session.Values["id"])
	c.Set("username", session.Values["username"])
	return true, nil
}
