// controllers/admin_controller_test.go
//go:build unit
// +build unit

package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mapao-magazine/middleware"
	"mapao-magazine/models"
	"mapao-magazine/services"
)

// setupAdminRouter wires the admin controller behind the session guard, the
// same shape main.go uses.
func setupAdminRouter(t *testing.T, gw *services.MockGateway) *gin.Engine {
	router := setupTestRouter(t)
	admin := NewAdminController(services.NewContentService(gw), gw)

	gated := router.Group("/admin", middleware.AdminRequired())
	{
		gated.GET("", admin.Dashboard)
		gated.GET("/issues", admin.ListIssues)
		gated.POST("/issues/new", admin.CreateIssue)
		gated.GET("/issues/:id/edit", admin.EditIssueForm)
		gated.POST("/issues/:id/edit", admin.UpdateIssue)
		gated.GET("/issues/:id/delete", admin.DeleteIssue)
		gated.POST("/articles/new", admin.CreateArticle)
		gated.GET("/articles/:id/delete", admin.DeleteArticle)
		gated.POST("/moments/new", admin.CreateMoment)
		gated.GET("/moments/:id/delete", admin.DeleteMoment)
	}

	return router
}

func adminCookie(t *testing.T, router *gin.Engine) *http.Cookie {
	cookie := SetSession(router, "/set-session", map[string]interface{}{
		middleware.AdminSessionKey: true,
	})
	require.NotNil(t, cookie, "session cookie not found")
	return cookie
}

func postForm(router *gin.Engine, cookie *http.Cookie, path, form string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ---------------- guard behaviour ----------------

func TestAdminRoutes_AnonymousRedirectsWithoutSideEffect(t *testing.T) {
	gw := new(services.MockGateway)
	router := setupAdminRouter(t, gw)

	paths := []struct {
		method string
		path   string
	}{
		{"GET", "/admin"},
		{"GET", "/admin/issues"},
		{"POST", "/admin/issues/new"},
		{"GET", "/admin/issues/1/delete"},
		{"POST", "/admin/moments/new"},
	}

	for _, p := range paths {
		req, _ := http.NewRequest(p.method, p.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code, "%s %s", p.method, p.path)
		assert.Equal(t, "/admin/login", w.Header().Get("Location"), "%s %s", p.method, p.path)
	}

	// no store operation may have run
	gw.AssertNotCalled(t, "ListIssues", mock.Anything)
	gw.AssertNotCalled(t, "CreateIssue", mock.Anything, mock.Anything)
	gw.AssertNotCalled(t, "DeleteIssue", mock.Anything, mock.Anything)
	gw.AssertNotCalled(t, "CreateMoment", mock.Anything, mock.Anything)
}

// ---------------- dashboard ----------------

func TestDashboard_RendersStats(t *testing.T) {
	gw := new(services.MockGateway)
	gw.On("ListIssues", mock.Anything).Return([]models.Issue{{ID: 1}}, nil)
	gw.On("ListArticlesByIssue", mock.Anything, int64(1)).Return([]models.Article{}, nil)
	gw.On("ListContributorsByIssue", mock.Anything, int64(1)).Return([]models.Contributor{}, nil)
	gw.On("ListPhotosByIssue", mock.Anything, int64(1)).Return([]models.Photo{}, nil)
	gw.On("ListMoments", mock.Anything).Return([]models.Moment{}, nil)

	router := setupAdminRouter(t, gw)
	cookie := adminCookie(t, router)

	req, _ := http.NewRequest("GET", "/admin", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dashboard 1")
}

// ---------------- issue CRUD ----------------

func TestListIssues_Authenticated(t *testing.T) {
	gw := new(services.MockGateway)
	gw.On("ListIssues", mock.Anything).Return([]models.Issue{{ID: 1}, {ID: 2}}, nil)

	router := setupAdminRouter(t, gw)
	cookie := adminCookie(t, router)

	req, _ := http.NewRequest("GET", "/admin/issues", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "issues 2")
	gw.AssertExpectations(t)
}

func TestCreateIssue_Success(t *testing.T) {
	gw := new(services.MockGateway)
	gw.On("CreateIssue", mock.Anything, mock.MatchedBy(func(issue *models.Issue) bool {
		return issue.Title == "Winter 2025" && issue.JournalType == models.JournalTypeLiterary
	})).Return(nil)

	router := setupAdminRouter(t, gw)
	cookie := adminCookie(t, router)

	w := postForm(router, cookie, "/admin/issues/new", "title=Winter+2025&release_date=2025-01-15")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/issues", w.Header().Get("Location"))
	gw.AssertExpectations(t)
}

func TestCreateIssue_MissingRequiredFields(t *testing.T) {
	gw := new(services.MockGateway)
	router := setupAdminRouter(t, gw)
	cookie := adminCookie(t, router)

	w := postForm(router, cookie, "/admin/issues/new", "description=no+title")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	gw.AssertNotCalled(t, "CreateIssue", mock.Anything, mock.Anything)
}

func TestCreateIssue_StoreFailureRerendersForm(t *testing.T) {
	gw := new(services.MockGateway)
	gw.On("CreateIssue", mock.Anything, mock.Anything).Return(assert.AnError)

	router := setupAdminRouter(t, gw)
	cookie := adminCookie(t, router)

	w := postForm(router, cookie, "/admin/issues/new", "title=T&release_date=2025-01-15")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "issue form")
}

func TestEditIssueForm_NotFoundRedirects(t *testing.T) {
	gw := new(services.MockGateway)
	gw.On("GetIssue", mock.Anything, int64(42)).Return(nil, assert.AnError)

	router := setupAdminRouter(t, gw)
	cookie := adminCookie(t, router)

	req, _ := http.NewRequest("GET", "/admin/issues/42/edit", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/issues", w.Header().Get("Location"))
}

func TestUpdateIssue_Success(t *testing.T) {
	gw := new(services.MockGateway)
	gw.On("UpdateIssue", mock.Anything, int64(7), mock.MatchedBy(func(issue *models.Issue) bool {
		return issue.Title == "Revised" && issue.JournalType == models.JournalTypeResearch
	})).Return(nil)

	router := setupAdminRouter(t, gw)
	cookie := adminCookie(t, router)

	w := postForm(router, cookie, "/admin/issues/7/edit",
		"title=Revised&release_date=2025-02-01&journal_type=research")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/issues", w.Header().Get("Location"))
	gw.AssertExpectations(t)
}

func TestDeleteIssue_SuccessAndFailureBothRedirect(t *testing.T) {
	gw := new(services.MockGateway)
	gw.On("DeleteIssue", mock.Anything, int64(1)).Return(nil)
	gw.On("DeleteIssue", mock.Anything, int64(2)).Return(assert.AnError)

	router := setupAdminRouter(t, gw)
	cookie := adminCookie(t, router)

	for _, id := range []string{"1", "2"} {
		req, _ := http.NewRequest("GET", "/admin/issues/"+id+"/delete", nil)
		req.AddCookie(cookie)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/admin/issues", w.Header().Get("Location"))
	}
	gw.AssertExpectations(t)
}

// ---------------- article CRUD ----------------

func TestCreateArticle_Success(t *testing.T) {
	gw := new(services.MockGateway)
	gw.On("CreateArticle", mock.Anything, mock.MatchedBy(func(a *models.Article) bool {
		return a.IssueID == 3 && a.Title == "The Hills"
	})).Return(nil)

	router := setupAdminRouter(t, gw)
	cookie := adminCookie(t, router)

	w := postForm(router, cookie, "/admin/articles/new",
		"issue_id=3&title=The+Hills&author=K.+Singh&category=Poetry")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/articles", w.Header().Get("Location"))
	gw.AssertExpectations(t)
}

func TestCreateArticle_BadIssueID(t *testing.T) {
	gw := new(services.MockGateway)
	router := setupAdminRouter(t, gw)
	cookie := adminCookie(t, router)

	w := postForm(router, cookie, "/admin/articles/new", "issue_id=abc&title=T")

	assert.Equal(t, http.StatusFound, w.Code)
	gw.AssertNotCalled(t, "CreateArticle", mock.Anything, mock.Anything)
}

// ---------------- moment CRUD ----------------

func TestCreateMoment_Success(t *testing.T) {
	gw := new(services.MockGateway)
	gw.On("CreateMoment", mock.Anything, mock.MatchedBy(func(m *models.Moment) bool {
		return m.Title == "First print run" && m.Date == "2020-03-01"
	})).Return(nil)

	router := setupAdminRouter(t, gw)
	cookie := adminCookie(t, router)

	w := postForm(router, cookie, "/admin/moments/new", "title=First+print+run&date=2020-03-01")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/moments", w.Header().Get("Location"))
	gw.AssertExpectations(t)
}

func TestDeleteMoment_Failure(t *testing.T) {
	gw := new(services.MockGateway)
	gw.On("DeleteMoment", mock.Anything, int64(9)).Return(assert.AnError)

	router := setupAdminRouter(t, gw)
	cookie := adminCookie(t, router)

	req, _ := http.NewRequest("GET", "/admin/moments/9/delete", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/moments", w.Header().Get("Location"))
}
