// Package middleware provides request filters and security checks for the application.
// file: middleware/admin_required.go
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"mapao-magazine/logger"
)

// AdminSessionKey is the session flag set on successful admin login.
const AdminSessionKey = "admin_logged_in"

// AdminRequired guards every admin operation. An anonymous session is
// redirected to the login page before any handler side effect runs.
// Usage:
//
//	admin := router.Group("/admin", middleware.AdminRequired())
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		loggedIn, ok := session.Get(AdminSessionKey).(bool)

		if !ok || !loggedIn {
			logger.Warn.Printf("AdminRequired: unauthenticated request to %s blocked", c.Request.URL.Path)
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort() // prevents further execution
			return
		}

		logger.Debug.Println("AdminRequired: session authenticated, continuing request")
		c.Next()
	}
}
