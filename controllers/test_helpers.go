// file: controllers/test_helpers.go
//go:build unit
// +build unit

package controllers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// setupTestRouter creates a new Gin engine with session middleware and fake
// HTML templates.
func setupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()

	// Set up sessions with cookie store.
	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))

	// Create minimal templates to avoid panics during testing.
	tmpDir := t.TempDir()
	if err := createDummyTemplates(tmpDir); err != nil {
		t.Fatalf("Failed to create dummy templates: %v", err)
	}

	router.LoadHTMLGlob(filepath.Join(tmpDir, "*.html"))
	return router
}

// createDummyTemplates writes a set of minimal HTML templates to the provided directory.
func createDummyTemplates(dir string) error {
	templates := map[string]string{
		"home.html":               `<html><body>home {{len .Issues}}</body></html>`,
		"mapao.html":              `<html><body>mapao</body></html>`,
		"issue_detail.html":       `<html><body>{{.Issue.Title}}</body></html>`,
		"about.html":              `<html><body>about</body></html>`,
		"moments.html":            `<html><body>moments</body></html>`,
		"contact.html":            `<html><body>contact {{range .Flashes}}[{{.Category}}:{{.Message}}]{{end}}</body></html>`,
		"awards.html":             `<html><body>awards</body></html>`,
		"whos_who.html":           `<html><body>whos who</body></html>`,
		"admin_login.html":        `<html><body>login {{.Error}}</body></html>`,
		"admin_dashboard.html":    `<html><body>dashboard {{.Stats.TotalIssues}}</body></html>`,
		"admin_issues.html":       `<html><body>issues {{len .Issues}}</body></html>`,
		"admin_issue_form.html":   `<html><body>issue form</body></html>`,
		"admin_articles.html":     `<html><body>articles</body></html>`,
		"admin_article_form.html": `<html><body>article form</body></html>`,
		"admin_moments.html":      `<html><body>moments admin</body></html>`,
		"admin_moment_form.html":  `<html><body>moment form</body></html>`,
	}

	for name, content := range templates {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

// SetSession drives a helper route that stores the given values in the
// session, returning the resulting cookie.
func SetSession(router *gin.Engine, route string, data map[string]interface{}) *http.Cookie {
	router.GET(route, func(c *gin.Context) {
		session := sessions.Default(c)
		for key, value := range data {
			session.Set(key, value)
		}
		if err := session.Save(); err != nil {
			c.String(http.StatusInternalServerError, "session save failed")
			return
		}
		c.String(http.StatusOK, "session set")
	})

	req, _ := http.NewRequest("GET", route, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "testsession" {
			return cookie
		}
	}
	return nil
}
