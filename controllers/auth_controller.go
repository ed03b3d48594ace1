// Package controllers handles admin authentication and session management.
// File: controllers/auth_controller.go
package controllers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"mapao-magazine/config"
	"mapao-magazine/logger"
	"mapao-magazine/middleware"
)

// AuthController manages the Anonymous <-> Authenticated transitions of the
// admin session.
type AuthController struct {
	Cfg *config.Config
}

// NewAuthController initializes a new instance of AuthController.
func NewAuthController(cfg *config.Config) *AuthController {
	return &AuthController{Cfg: cfg}
}

// ------------------ authentication utilities ------------------

// checkPasswordHash verifies a plain-text password against a bcrypt hash.
func checkPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// credentialsMatch compares the submitted credentials against configuration.
// When ADMIN_PASSWORD_HASH is set it wins; otherwise the plaintext password
// is compared in constant time.
func (ac *AuthController) credentialsMatch(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(ac.Cfg.AdminUsername)) != 1 {
		return false
	}
	if ac.Cfg.AdminPasswordHash != "" {
		return checkPasswordHash(password, ac.Cfg.AdminPasswordHash)
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(ac.Cfg.AdminPassword)) == 1
}

// ------------------ login handling ------------------

// ShowLoginPage renders the admin login form. An already-authenticated
// session goes straight to the dashboard.
func (ac *AuthController) ShowLoginPage(c *gin.Context) {
	session := sessions.Default(c)
	if loggedIn, ok := session.Get(middleware.AdminSessionKey).(bool); ok && loggedIn {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.HTML(http.StatusOK, "admin_login.html", withFlashes(c, gin.H{}))
}

// PerformLogin authenticates the admin. A match sets the session flag and
// redirects to the dashboard; any mismatch re-renders the form with an
// error and leaves the session anonymous.
func (ac *AuthController) PerformLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if username == "" || password == "" {
		logger.Warn.Println("PerformLogin: missing username or password")
		c.HTML(http.StatusBadRequest, "admin_login.html", gin.H{
			"Error": "Please fill in all fields.",
		})
		return
	}

	if !ac.credentialsMatch(username, password) {
		logger.Warn.Printf("PerformLogin: invalid login attempt for user %s", username)
		c.HTML(http.StatusUnauthorized, "admin_login.html", gin.H{
			"Error": "Invalid username or password.",
		})
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.AdminSessionKey, true)
	if err := session.Save(); err != nil {
		logger.Error.Printf("PerformLogin: failed to save session: %v", err)
		c.HTML(http.StatusInternalServerError, "admin_login.html", gin.H{
			"Error": "Internal error, please try again.",
		})
		return
	}

	logger.Info.Printf("PerformLogin: admin %s authenticated", username)
	SetFlash(c, "success", "Logged in successfully.")
	c.Redirect(http.StatusFound, "/admin")
}

// Logout clears the admin session and returns to the login page.
func (ac *AuthController) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(middleware.AdminSessionKey)
	session.Clear()
	if err := session.Save(); err != nil {
		logger.Error.Printf("Logout: error saving session during logout: %v", err)
	} else {
		logger.Info.Println("Logout: admin session cleared")
	}
	c.Redirect(http.StatusFound, "/admin/login")
}
