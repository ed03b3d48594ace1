// controllers/page_controller_test.go
//go:build unit
// +build unit

package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mapao-magazine/models"
	"mapao-magazine/services"
)

func setupPageRouter(t *testing.T, gw *services.MockGateway) *gin.Engine {
	router := setupTestRouter(t)
	pages := NewPageController(services.NewContentService(gw), gw)

	router.GET("/health", Health)
	router.GET("/", pages.Home)
	router.GET("/mapao", pages.Mapao)
	router.GET("/issue/:id", pages.IssueDetail)
	router.GET("/moments", pages.Moments)
	router.GET("/about", pages.About)
	router.GET("/awards", pages.Awards)
	router.GET("/awards/:year", pages.AwardsByYear)
	router.GET("/whos-who", pages.WhosWho)
	router.GET("/whos-who/:letter", pages.WhosWhoByLetter)

	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func stubIssueList(gw *services.MockGateway, issues []models.Issue) {
	gw.On("ListIssues", mock.Anything).Return(issues, nil)
	for _, issue := range issues {
		gw.On("ListArticlesByIssue", mock.Anything, issue.ID).Return([]models.Article{}, nil)
		gw.On("ListContributorsByIssue", mock.Anything, issue.ID).Return([]models.Contributor{}, nil)
		gw.On("ListPhotosByIssue", mock.Anything, issue.ID).Return([]models.Photo{}, nil)
	}
}

func TestHealth(t *testing.T) {
	router := setupPageRouter(t, new(services.MockGateway))

	w := get(router, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestHome_RendersIssues(t *testing.T) {
	gw := new(services.MockGateway)
	stubIssueList(gw, []models.Issue{{ID: 1}, {ID: 2}})

	router := setupPageRouter(t, gw)
	w := get(router, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "home 2")
}

func TestHome_StoreDownStillRenders(t *testing.T) {
	gw := new(services.MockGateway)
	gw.On("ListIssues", mock.Anything).Return(nil, assert.AnError)

	router := setupPageRouter(t, gw)
	w := get(router, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "home 0")
}

func TestIssueDetail_Found(t *testing.T) {
	gw := new(services.MockGateway)
	stubIssueList(gw, []models.Issue{{ID: 5, Title: "Monsoon Voices"}})

	router := setupPageRouter(t, gw)
	w := get(router, "/issue/5")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Monsoon Voices")
}

func TestIssueDetail_UnknownIDRedirectsToArchive(t *testing.T) {
	gw := new(services.MockGateway)
	stubIssueList(gw, []models.Issue{{ID: 5}})

	router := setupPageRouter(t, gw)
	w := get(router, "/issue/99")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/mapao", w.Header().Get("Location"))
}

func TestIssueDetail_NonNumericIDRedirectsToArchive(t *testing.T) {
	gw := new(services.MockGateway)

	router := setupPageRouter(t, gw)
	w := get(router, "/issue/latest")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/mapao", w.Header().Get("Location"))
	gw.AssertNotCalled(t, "ListIssues", mock.Anything)
}

func TestMoments_StoreDownStillRenders(t *testing.T) {
	gw := new(services.MockGateway)
	gw.On("ListMoments", mock.Anything).Return(nil, assert.AnError)

	router := setupPageRouter(t, gw)
	w := get(router, "/moments")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAbout_FetchesBothWings(t *testing.T) {
	gw := new(services.MockGateway)
	gw.On("ListEditorialTeam", mock.Anything, "research_wing").Return([]models.EditorialTeamMember{}, nil)
	gw.On("ListEditorialTeam", mock.Anything, "literary_wing").Return([]models.EditorialTeamMember{}, nil)

	router := setupPageRouter(t, gw)
	w := get(router, "/about")

	assert.Equal(t, http.StatusOK, w.Code)
	gw.AssertExpectations(t)
}

func TestAwardsByYear_BadYearRedirects(t *testing.T) {
	gw := new(services.MockGateway)

	router := setupPageRouter(t, gw)
	w := get(router, "/awards/nineteen")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/awards", w.Header().Get("Location"))
	gw.AssertNotCalled(t, "ListAwardsByYear", mock.Anything, mock.Anything)
}

func TestWhosWhoByLetter_RequiresSingleLetter(t *testing.T) {
	gw := new(services.MockGateway)
	router := setupPageRouter(t, gw)

	// multi-character, digit, and ILIKE wildcard parameters all bounce back
	for _, path := range []string{"/whos-who/abc", "/whos-who/7", "/whos-who/%25", "/whos-who/_"} {
		w := get(router, path)

		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/whos-who", w.Header().Get("Location"), path)
	}
	gw.AssertNotCalled(t, "ListWhosWhoByLetter", mock.Anything, mock.Anything)
}

func TestWhosWhoByLetter_AcceptsAccentedLetter(t *testing.T) {
	gw := new(services.MockGateway)
	gw.On("ListWhosWhoByLetter", mock.Anything, "Ñ").Return([]models.WhosWhoEntry{{ID: 1, Name: "Ñandú"}}, nil)
	gw.On("WhosWhoLetters", mock.Anything).Return([]string{"Ñ"}, nil)

	router := setupPageRouter(t, gw)
	w := get(router, "/whos-who/%C3%91")

	assert.Equal(t, http.StatusOK, w.Code)
	gw.AssertExpectations(t)
}

func TestWhosWhoByLetter_FetchesEntries(t *testing.T) {
	gw := new(services.MockGateway)
	gw.On("ListWhosWhoByLetter", mock.Anything, "K").Return([]models.WhosWhoEntry{{ID: 1, Name: "K. Singh"}}, nil)
	gw.On("WhosWhoLetters", mock.Anything).Return([]string{"K"}, nil)

	router := setupPageRouter(t, gw)
	w := get(router, "/whos-who/K")

	assert.Equal(t, http.StatusOK, w.Code)
	gw.AssertExpectations(t)
}
