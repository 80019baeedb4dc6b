package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beatystore/admin-gateway/internal/models"
	"github.com/beatystore/admin-gateway/internal/session"
)

// loginPath is where unauthenticated operators are sent.
const loginPath = "/admin/login"

// RequireSession gates the admin surface: without a hydrated, unexpired
// session the request is answered 401 with a redirect hint for the screen
// layer.
func RequireSession(sess *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sess.Active() {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":   statusFailure,
				"des":      "authentication required",
				"redirect": loginPath,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin additionally requires the Admin role; Staff sessions can
// reach every screen except user management.
func RequireAdmin(sess *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := sess.User()
		if !ok || user.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"status": statusFailure,
				"des":    "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
