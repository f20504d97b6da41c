package security

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/samko5sam/webapps/db"
	"github.com/samko5sam/webapps/utils"
	"github.com/samko5sam/webapps/utils/log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/spf13/viper"
	"github.com/ztrue/tracerr"
)

const (
	CSRF_COOKIE = "CSRF_TOKEN"
	CSRF_HEADER = "X-CSRF-Token"
)

func redisCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(),
		time.Duration(viper.GetInt("redis.timeout"))*time.Second)
}

// validateCSRF matches the double submit pair and burns the stored token.
func validateCSRF(c *gin.Context) (bool, error) {
	header := c.GetHeader(CSRF_HEADER)
	cookie, err := c.Cookie(CSRF_COOKIE)
	if header == "" || err != nil || header != cookie {
		return false, nil
	}
	return CheckCSRFToken(header)
}

// CSRFMiddleware guards every non-GET request with a one-time double submit
// token, see NewCSRFToken.
func CSRFMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}
		ok, err := validateCSRF(c)
		if err != nil {
			log.NewEntry(err).Error("Failed to check CSRF token")
			c.AbortWithStatus(500)
			return
		}
		if !ok {
			log.New().WithField("path", c.Request.URL.Path).Debug("CSRF check failed")
			c.AbortWithStatus(400)
			return
		}
		c.Next()
	}
}

// NewCSRFToken stores a fresh token in redis and returns it. The token is
// consumed by the first CheckCSRFToken call.
func NewCSRFToken() (string, error) {
	ctx, cancel := redisCtx()
	defer cancel()

	token := utils.RandString(32)
	err := db.GetRedis().SetEX(ctx, viper.GetString("csrf.prefix")+token, "1",
		time.Duration(viper.GetInt("csrf.expire"))*time.Second).Err()
	if err != nil {
		return "", tracerr.Wrap(err)
	}
	return token, nil
}

// CheckCSRFToken reports whether token is valid, deleting it on the way.
func CheckCSRFToken(token string) (bool, error) {
	ctx, cancel := redisCtx()
	defer cancel()

	ret, err := db.GetRedis().GetDel(ctx, viper.GetString("csrf.prefix")+token).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, tracerr.Wrap(err)
	}
	return ret == "1", nil
}
