package api

import (
	"strconv"
	"strings"

	"github.com/samko5sam/webapps/security"
	"github.com/samko5sam/webapps/utils"
	"github.com/samko5sam/webapps/utils/log"

	"github.com/gin-gonic/gin"
)

// APIMethod is http method for API.
type APIMethod int

const (
	APIGet APIMethod = iota
	APIPost
	APIPut
	APIPatch
	APIDelete
)

// UserRole is the role required to call an API.
type UserRole int

const (
	RoleGuest UserRole = iota // no credential
	RoleUser                  // any signed in user
	RoleAdmin                 // admin claim required
)

// AuthScheme selects how RoleUser/RoleAdmin items authenticate.
type AuthScheme int

const (
	AuthToken   AuthScheme = iota // bearer token (vote service)
	AuthSession                   // cookie session (joke board)
)

// APIFunc is API function type.
//
// return http code and error, code is only used when error not nil.
//	// these are same
//	return 0, nil
//	return 200, nil
//	return 500, nil
type APIFunc func(c *gin.Context) (int, error)

// APIItem is one API route.
type APIItem struct {
	Path   string    // API path
	Method APIMethod // API http method
	Role   UserRole  // API allow role
	Func   APIFunc   // API function
}

// AddAPI registers items on the router group. The auth gate always runs
// before any handler logic, an unauthorized caller learns nothing about
// entity existence.
func AddAPI(r *gin.RouterGroup, scheme AuthScheme, items []*APIItem) {
	for _, v := range items {
		var fun gin.HandlerFunc
		switch {
		case v.Role == RoleGuest:
			fun = wrap(v.Func)
		case scheme == AuthSession:
			fun = WithSession(v.Func)
		default:
			fun = WithToken(v.Func, v.Role == RoleAdmin)
		}
		switch v.Method {
		case APIGet:
			r.GET(v.Path, fun)
		case APIPost:
			r.POST(v.Path, fun)
		case APIPut:
			r.PUT(v.Path, fun)
		case APIPatch:
			r.PATCH(v.Path, fun)
		case APIDelete:
			r.DELETE(v.Path, fun)
		}
	}
}

func wrap(f APIFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		code, err := f(c)
		if err != nil {
			log.NewEntry(err).WithField("request_id", log.RequestID(c)).Error("API error")
			c.AbortWithStatusJSON(code, gin.H{"msg": "An internal server error occurred"})
		}
	}
}

// WithToken verifies the bearer token, and the admin claim when admin is
// set. The claim is trusted as issued, no live role lookup.
func WithToken(f APIFunc, admin bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if !strings.HasPrefix(token, "Bearer ") {
			c.AbortWithStatusJSON(401, gin.H{"msg": "Missing or invalid token"})
			return
		}
		claims, err := security.ParseToken(strings.TrimPrefix(token, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"msg": "Missing or invalid token"})
			return
		}
		uid, err := claims.UserID()
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"msg": "Missing or invalid token"})
			return
		}
		if admin && !claims.IsAdmin {
			c.AbortWithStatusJSON(403, gin.H{"msg": "Admins only!"})
			return
		}
		c.Set("uid", uid)
		c.Set("is_admin", claims.IsAdmin)
		wrap(f)(c)
	}
}

// WithSession requires a signed in cookie session.
func WithSession(f APIFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := utils.CheckSignIn(c)
		if err != nil {
			log.NewEntry(err).Error("Failed to check session")
			c.AbortWithStatus(500)
			return
		}
		if !res {
			c.AbortWithStatusJSON(401, gin.H{"msg": "You need to sign in first"})
			return
		}
		wrap(f)(c)
	}
}

// UID returns the authenticated user id set by WithToken.
func UID(c *gin.Context) uint {
	return c.MustGet("uid").(uint)
}

// ParamID parses the :id uri parameter. Malformed ids are folded into the
// not-found path by callers.
func ParamID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
