package middleware

import "github.com/gin-gonic/gin"

// Keys under which the auth middleware stores the caller's identity in the
// request context. Every company-scoped handler reads the tenant from here,
// never from the request payload.
const (
	userIDKey    = contextKey("userID")
	companyIDKey = contextKey("companyID")
	roleKey      = contextKey("role")
)

// GetUserIDFromContext retrieves the authenticated user's code from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(userIDKey); v != nil {
		userID, ok := v.(string)
		return userID, ok
	}
	return "", false
}

// GetCompanyIDFromContext retrieves the authenticated user's company (the
// tenant scope) from the Gin context.
func GetCompanyIDFromContext(c *gin.Context) (int64, bool) {
	if v := c.Request.Context().Value(companyIDKey); v != nil {
		companyID, ok := v.(int64)
		return companyID, ok
	}
	return 0, false
}

// GetRoleFromContext retrieves the authenticated user's role from the Gin
// context.
func GetRoleFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(roleKey); v != nil {
		role, ok := v.(string)
		return role, ok
	}
	return "", false
}
