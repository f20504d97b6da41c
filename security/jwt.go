package security

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/ztrue/tracerr"
)

var ErrInvalidToken = tracerr.New("invalid token")

// Claims is the claim set of vote service tokens. IsAdmin is baked in at
// issuance from the stored flag, it is not re-checked against the database
// until the token expires and the user signs in again.
type Claims struct {
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

// UserID parses the token subject.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, tracerr.Wrap(err)
	}
	return uint(id), nil
}

// IssueToken signs a new HS256 token for the user, expiring token.expire
// seconds from now.
func IssueToken(userID uint, isAdmin bool) (string, error) {
	now := time.Now()
	claims := &Claims{
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(viper.GetInt("token.expire")) * time.Second)),
		},
	}
	ret, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(viper.GetString("token.secret")))
	return ret, tracerr.Wrap(err)
}

// ParseToken verifies signature and expiry, expired and malformed tokens are
// both rejected with ErrInvalidToken.
func ParseToken(token string) (*Claims, error) {
	claims := new(Claims)
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(viper.GetString("token.secret")), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
