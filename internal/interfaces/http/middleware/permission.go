package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecoride/helpdesk/internal/infrastructure/permission"
	"github.com/ecoride/helpdesk/internal/shared/authorization"
	"github.com/ecoride/helpdesk/internal/shared/logger"
	"github.com/ecoride/helpdesk/internal/shared/utils"
)

// RequirePermission checks the caller's role against the policy store for a
// resource/action pair. The role claim is the casbin subject.
func RequirePermission(enforcer *permission.Enforcer, log logger.Interface, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(authorization.ContextKeyUserRole)
		if role == "" {
			utils.ErrorResponse(c, http.StatusForbidden, "missing role claim")
			c.Abort()
			return
		}

		allowed, err := enforcer.Enforce(role, resource, action)
		if err != nil {
			log.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}
		if !allowed {
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
