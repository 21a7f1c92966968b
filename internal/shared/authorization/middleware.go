package authorization

import (
	"github.com/gin-gonic/gin"
)

// ContextKeyUserID and ContextKeyUserRole are the gin context keys populated
// by the auth middleware from the identity provider's claims.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// RequireAdmin rejects requests whose role claim is not admin. Mutating
// admin endpoints fail closed: a missing or unknown role is a 403.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(ContextKeyUserRole)
		if userRole != string(RoleAdmin) {
			c.JSON(403, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func CanAccessResourceByOwnerID(userID uint, userRole UserRole, resourceOwnerID uint) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == resourceOwnerID
}
