// Package controllers provides HTTP handlers for the admin CRUD operations.
// File: controllers/admin_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"mapao-magazine/logger"
	"mapao-magazine/models"
	"mapao-magazine/services"
	"mapao-magazine/store"
)

// ---------------- Admin Controller ----------------

// AdminController provides the gated management operations for issues,
// articles, and moments. Every route it serves sits behind
// middleware.AdminRequired.
type AdminController struct {
	Content services.ContentServiceInterface
	Store   store.Gateway
}

// NewAdminController initializes a new instance of AdminController.
func NewAdminController(content services.ContentServiceInterface, gw store.Gateway) *AdminController {
	return &AdminController{Content: content, Store: gw}
}

// ---------------- dashboard ----------------

// Dashboard renders the content totals and the five most recent issues.
func (ac *AdminController) Dashboard(c *gin.Context) {
	stats := ac.Content.DashboardStats(c.Request.Context())
	c.HTML(http.StatusOK, "admin_dashboard.html", withFlashes(c, gin.H{
		"Stats": stats,
	}))
}

// ---------------- issue management ----------------

// ListIssues renders the issue management table.
func (ac *AdminController) ListIssues(c *gin.Context) {
	issues, err := ac.Store.ListIssues(c.Request.Context())
	if err != nil {
		logger.Error.Printf("ListIssues: failed to fetch issues: %v", err)
		SetFlash(c, "error", "Could not load issues.")
	}
	c.HTML(http.StatusOK, "admin_issues.html", withFlashes(c, gin.H{
		"Issues": issues,
	}))
}

// NewIssueForm renders an empty issue form.
func (ac *AdminController) NewIssueForm(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_issue_form.html", withFlashes(c, gin.H{}))
}

// issueFromForm parses the issue form fields shared by create and edit.
func (ac *AdminController) issueFromForm(c *gin.Context) *models.Issue {
	journalType := c.PostForm("journal_type")
	if journalType == "" {
		journalType = models.JournalTypeLiterary
	}
	return &models.Issue{
		Title:         c.PostForm("title"),
		Description:   c.PostForm("description"),
		ReleaseDate:   c.PostForm("release_date"),
		Editorial:     c.PostForm("editorial"),
		JournalType:   journalType,
		CoverImageURL: c.PostForm("cover_image_url"),
	}
}

// attachCoverUpload pushes an optional multipart cover image to the asset
// bucket and points the issue at its public URL. Upload failures keep the
// form's URL field; the issue is still saved.
func (ac *AdminController) attachCoverUpload(c *gin.Context, issue *models.Issue) {
	header, err := c.FormFile("cover_image")
	if err != nil {
		return // no file attached
	}
	file, err := header.Open()
	if err != nil {
		logger.Error.Printf("attachCoverUpload: failed to open upload: %v", err)
		return
	}
	defer file.Close()

	name := fmt.Sprintf("covers/%d%s", time.Now().UnixNano(), filepath.Ext(header.Filename))
	contentType := header.Header.Get("Content-Type")
	url, err := ac.Store.UploadFile(c.Request.Context(), name, file, header.Size, contentType)
	if err != nil {
		logger.Error.Printf("attachCoverUpload: failed to upload %s: %v", name, err)
		return
	}
	issue.CoverImageURL = url
}

// CreateIssue validates the form and inserts a new issue.
func (ac *AdminController) CreateIssue(c *gin.Context) {
	issue := ac.issueFromForm(c)
	if issue.Title == "" || issue.ReleaseDate == "" {
		SetFlash(c, "error", "Please fill in all required fields.")
		c.HTML(http.StatusBadRequest, "admin_issue_form.html", withFlashes(c, gin.H{"Issue": issue}))
		return
	}
	ac.attachCoverUpload(c, issue)

	if err := ac.Store.CreateIssue(c.Request.Context(), issue); err != nil {
		logger.Error.Printf("CreateIssue: %v", err)
		SetFlash(c, "error", "Could not create the issue.")
		c.HTML(http.StatusOK, "admin_issue_form.html", withFlashes(c, gin.H{"Issue": issue}))
		return
	}

	logger.Info.Printf("CreateIssue: issue %d (%s) created", issue.ID, issue.Title)
	SetFlash(c, "success", "Issue created successfully.")
	c.Redirect(http.StatusFound, "/admin/issues")
}

// EditIssueForm renders the form pre-filled with one issue.
func (ac *AdminController) EditIssueForm(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		SetFlash(c, "error", "Issue not found.")
		c.Redirect(http.StatusFound, "/admin/issues")
		return
	}
	issue, err := ac.Store.GetIssue(c.Request.Context(), id)
	if err != nil {
		logger.Warn.Printf("EditIssueForm: issue %d: %v", id, err)
		SetFlash(c, "error", "Issue not found.")
		c.Redirect(http.StatusFound, "/admin/issues")
		return
	}
	c.HTML(http.StatusOK, "admin_issue_form.html", withFlashes(c, gin.H{"Issue": issue}))
}

// UpdateIssue validates the form and rewrites an existing issue.
func (ac *AdminController) UpdateIssue(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		SetFlash(c, "error", "Issue not found.")
		c.Redirect(http.StatusFound, "/admin/issues")
		return
	}

	issue := ac.issueFromForm(c)
	issue.ID = id
	if issue.Title == "" || issue.ReleaseDate == "" {
		SetFlash(c, "error", "Please fill in all required fields.")
		c.HTML(http.StatusBadRequest, "admin_issue_form.html", withFlashes(c, gin.H{"Issue": issue}))
		return
	}
	ac.attachCoverUpload(c, issue)

	if err := ac.Store.UpdateIssue(c.Request.Context(), id, issue); err != nil {
		logger.Error.Printf("UpdateIssue: issue %d: %v", id, err)
		SetFlash(c, "error", "Could not update the issue.")
		c.HTML(http.StatusOK, "admin_issue_form.html", withFlashes(c, gin.H{"Issue": issue}))
		return
	}

	logger.Info.Printf("UpdateIssue: issue %d updated", id)
	SetFlash(c, "success", "Issue updated successfully.")
	c.Redirect(http.StatusFound, "/admin/issues")
}

// DeleteIssue removes an issue; unknown ids take the same failure path as a
// real delete failure.
func (ac *AdminController) DeleteIssue(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		SetFlash(c, "error", "Could not delete the issue.")
		c.Redirect(http.StatusFound, "/admin/issues")
		return
	}

	if err := ac.Store.DeleteIssue(c.Request.Context(), id); err != nil {
		logger.Error.Printf("DeleteIssue: issue %d: %v", id, err)
		SetFlash(c, "error", "Could not delete the issue.")
	} else {
		logger.Info.Printf("DeleteIssue: issue %d deleted", id)
		SetFlash(c, "success", "Issue deleted successfully.")
	}
	c.Redirect(http.StatusFound, "/admin/issues")
}

// ---------------- article management ----------------

// ListArticles renders every article grouped under its issue.
func (ac *AdminController) ListArticles(c *gin.Context) {
	issues := ac.Content.MagazineIssues(c.Request.Context())
	c.HTML(http.StatusOK, "admin_articles.html", withFlashes(c, gin.H{
		"Issues": issues,
	}))
}

// NewArticleForm renders an empty article form with the issue choices.
func (ac *AdminController) NewArticleForm(c *gin.Context) {
	issues, err := ac.Store.ListIssues(c.Request.Context())
	if err != nil {
		logger.Error.Printf("NewArticleForm: failed to fetch issues: %v", err)
	}
	c.HTML(http.StatusOK, "admin_article_form.html", withFlashes(c, gin.H{
		"Issues": issues,
	}))
}

// articleFromForm parses the article form fields shared by create and edit.
func articleFromForm(c *gin.Context) (*models.Article, bool) {
	issueID, err := strconv.ParseInt(c.PostForm("issue_id"), 10, 64)
	if err != nil {
		return nil, false
	}
	return &models.Article{
		IssueID:  issueID,
		Title:    c.PostForm("title"),
		Content:  c.PostForm("content"),
		Author:   c.PostForm("author"),
		Category: c.PostForm("category"),
	}, true
}

// CreateArticle validates the form and inserts a new article.
func (ac *AdminController) CreateArticle(c *gin.Context) {
	article, ok := articleFromForm(c)
	if !ok || article.Title == "" {
		SetFlash(c, "error", "Please fill in all required fields.")
		c.Redirect(http.StatusFound, "/admin/articles/new")
		return
	}

	if err := ac.Store.CreateArticle(c.Request.Context(), article); err != nil {
		logger.Error.Printf("CreateArticle: %v", err)
		SetFlash(c, "error", "Could not create the article.")
		c.Redirect(http.StatusFound, "/admin/articles")
		return
	}

	logger.Info.Printf("CreateArticle: article %d (%s) created for issue %d", article.ID, article.Title, article.IssueID)
	SetFlash(c, "success", "Article created successfully.")
	c.Redirect(http.StatusFound, "/admin/articles")
}

// EditArticleForm renders the form pre-filled with one article.
func (ac *AdminController) EditArticleForm(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		SetFlash(c, "error", "Article not found.")
		c.Redirect(http.StatusFound, "/admin/articles")
		return
	}
	article, err := ac.Store.GetArticle(c.Request.Context(), id)
	if err != nil {
		logger.Warn.Printf("EditArticleForm: article %d: %v", id, err)
		SetFlash(c, "error", "Article not found.")
		c.Redirect(http.StatusFound, "/admin/articles")
		return
	}
	issues, err := ac.Store.ListIssues(c.Request.Context())
	if err != nil {
		logger.Error.Printf("EditArticleForm: failed to fetch issues: %v", err)
	}
	c.HTML(http.StatusOK, "admin_article_form.html", withFlashes(c, gin.H{
		"Article": article,
		"Issues":  issues,
	}))
}

// UpdateArticle validates the form and rewrites an existing article.
func (ac *AdminController) UpdateArticle(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		SetFlash(c, "error", "Article not found.")
		c.Redirect(http.StatusFound, "/admin/articles")
		return
	}

	article, formOK := articleFromForm(c)
	if !formOK || article.Title == "" {
		SetFlash(c, "error", "Please fill in all required fields.")
		c.Redirect(http.StatusFound, "/admin/articles")
		return
	}
	article.ID = id

	if err := ac.Store.UpdateArticle(c.Request.Context(), id, article); err != nil {
		logger.Error.Printf("UpdateArticle: article %d: %v", id, err)
		SetFlash(c, "error", "Could not update the article.")
		c.Redirect(http.StatusFound, "/admin/articles")
		return
	}

	logger.Info.Printf("UpdateArticle: article %d updated", id)
	SetFlash(c, "success", "Article updated successfully.")
	c.Redirect(http.StatusFound, "/admin/articles")
}

// DeleteArticle removes an article; unknown ids take the failure path.
func (ac *AdminController) DeleteArticle(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		SetFlash(c, "error", "Could not delete the article.")
		c.Redirect(http.StatusFound, "/admin/articles")
		return
	}

	if err := ac.Store.DeleteArticle(c.Request.Context(), id); err != nil {
		logger.Error.Printf("DeleteArticle: article %d: %v", id, err)
		SetFlash(c, "error", "Could not delete the article.")
	} else {
		logger.Info.Printf("DeleteArticle: article %d deleted", id)
		SetFlash(c, "success", "Article deleted successfully.")
	}
	c.Redirect(http.StatusFound, "/admin/articles")
}

// ---------------- moment management ----------------

// ListMoments renders the moment management table.
func (ac *AdminController) ListMoments(c *gin.Context) {
	moments, err := ac.Store.ListMoments(c.Request.Context())
	if err != nil {
		logger.Error.Printf("ListMoments: failed to fetch moments: %v", err)
		SetFlash(c, "error", "Could not load moments.")
	}
	c.HTML(http.StatusOK, "admin_moments.html", withFlashes(c, gin.H{
		"Moments": moments,
	}))
}

// NewMomentForm renders an empty moment form.
func (ac *AdminController) NewMomentForm(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_moment_form.html", withFlashes(c, gin.H{}))
}

// momentFromForm parses the moment form fields shared by create and edit.
func momentFromForm(c *gin.Context) *models.Moment {
	return &models.Moment{
		Title:       c.PostForm("title"),
		Date:        c.PostForm("date"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		ImageURL:    c.PostForm("image_url"),
	}
}

// CreateMoment validates the form and inserts a new moment.
func (ac *AdminController) CreateMoment(c *gin.Context) {
	moment := momentFromForm(c)
	if moment.Title == "" || moment.Date == "" {
		SetFlash(c, "error", "Please fill in all required fields.")
		c.HTML(http.StatusBadRequest, "admin_moment_form.html", withFlashes(c, gin.H{"Moment": moment}))
		return
	}

	if err := ac.Store.CreateMoment(c.Request.Context(), moment); err != nil {
		logger.Error.Printf("CreateMoment: %v", err)
		SetFlash(c, "error", "Could not create the moment.")
		c.HTML(http.StatusOK, "admin_moment_form.html", withFlashes(c, gin.H{"Moment": moment}))
		return
	}

	logger.Info.Printf("CreateMoment: moment %d (%s) created", moment.ID, moment.Title)
	SetFlash(c, "success", "Moment created successfully.")
	c.Redirect(http.StatusFound, "/admin/moments")
}

// EditMomentForm renders the form pre-filled with one moment. Moments have
// no single-row fetch in the store, so the current list is searched.
func (ac *AdminController) EditMomentForm(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		SetFlash(c, "error", "Moment not found.")
		c.Redirect(http.StatusFound, "/admin/moments")
		return
	}

	moments, err := ac.Store.ListMoments(c.Request.Context())
	if err != nil {
		logger.Error.Printf("EditMomentForm: failed to fetch moments: %v", err)
	}
	for i := range moments {
		if moments[i].ID == id {
			c.HTML(http.StatusOK, "admin_moment_form.html", withFlashes(c, gin.H{"Moment": &moments[i]}))
			return
		}
	}

	SetFlash(c, "error", "Moment not found.")
	c.Redirect(http.StatusFound, "/admin/moments")
}

// UpdateMoment validates the form and rewrites an existing moment.
func (ac *AdminController) UpdateMoment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		SetFlash(c, "error", "Moment not found.")
		c.Redirect(http.StatusFound, "/admin/moments")
		return
	}

	moment := momentFromForm(c)
	moment.ID = id
	if moment.Title == "" || moment.Date == "" {
		SetFlash(c, "error", "Please fill in all required fields.")
		c.HTML(http.StatusBadRequest, "admin_moment_form.html", withFlashes(c, gin.H{"Moment": moment}))
		return
	}

	if err := ac.Store.UpdateMoment(c.Request.Context(), id, moment); err != nil {
		logger.Error.Printf("UpdateMoment: moment %d: %v", id, err)
		SetFlash(c, "error", "Could not update the moment.")
		c.HTML(http.StatusOK, "admin_moment_form.html", withFlashes(c, gin.H{"Moment": moment}))
		return
	}

	logger.Info.Printf("UpdateMoment: moment %d updated", id)
	SetFlash(c, "success", "Moment updated successfully.")
	c.Redirect(http.StatusFound, "/admin/moments")
}

// DeleteMoment removes a moment; unknown ids take the failure path.
func (ac *AdminController) DeleteMoment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		SetFlash(c, "error", "Could not delete the moment.")
		c.Redirect(http.StatusFound, "/admin/moments")
		return
	}

	if err := ac.Store.DeleteMoment(c.Request.Context(), id); err != nil {
		logger.Error.Printf("DeleteMoment: moment %d: %v", id, err)
		SetFlash(c, "error", "Could not delete the moment.")
	} else {
		logger.Info.Printf("DeleteMoment: moment %d deleted", id)
		SetFlash(c, "success", "Moment deleted successfully.")
	}
	c.Redirect(http.StatusFound, "/admin/moments")
}
