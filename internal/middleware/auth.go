package middleware

import (
	"github.com/gin-gonic/gin"

	"warga-portal-svc/internal/auth"
	"warga-portal-svc/pkg/utils"
)

// sessionUserKey is the gin context key holding the resolved session user
const sessionUserKey = "session_user"

// RequireSession resolves the session cookie and rejects the request with a
// 401 when no valid session is present
func RequireSession(codec *auth.SessionCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := codec.SessionFromRequest(c)
		if user == nil {
			utils.UnauthorizedResponse(c, "Authentication required")
			c.Abort()
			return
		}
		c.Set(sessionUserKey, user)
		c.Next()
	}
}

// RequireRoles rejects authenticated requests whose role is not in the
// allowed set. Must run after RequireSession.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(c *gin.Context) {
		user := SessionUser(c)
		if user == nil {
			utils.UnauthorizedResponse(c, "Authentication required")
			c.Abort()
			return
		}
		if !allowed[user.Role] {
			utils.ForbiddenResponse(c, "Insufficient role for this action")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionUser returns the session user resolved by RequireSession, or nil
func SessionUser(c *gin.Context) *auth.SessionUser {
	value, exists := c.Get(sessionUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*auth.SessionUser)
	if !ok {
		return nil
	}
	return user
}
