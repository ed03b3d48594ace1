// Package controllers file: controllers/page_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"mapao-magazine/logger"
	"mapao-magazine/services"
	"mapao-magazine/store"
)

// Public asset URLs served straight from the magazine-assets bucket.
const (
	ClubLogoURL  = "https://kxxlyyqrzsxrzfwjadvg.supabase.co/storage/v1/object/public/magazine-assets/logos/fiction-poetry-club-logo.png"
	HeroVideoURL = "https://kxxlyyqrzsxrzfwjadvg.supabase.co/storage/v1/object/public/magazine-assets/videos/purple_background.mp4"
)

// PageController renders every public page of the site.
type PageController struct {
	Content services.ContentServiceInterface
	Store   store.Gateway
}

// NewPageController initializes a new instance of PageController.
func NewPageController(content services.ContentServiceInterface, gw store.Gateway) *PageController {
	return &PageController{Content: content, Store: gw}
}

// Health is the load balancer health check.
func Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// ---------------- magazine pages ----------------

// Home renders the landing page with the latest issue and the full archive.
func (pc *PageController) Home(c *gin.Context) {
	issues := pc.Content.MagazineIssues(c.Request.Context())
	c.HTML(http.StatusOK, "home.html", withFlashes(c, gin.H{
		"LatestIssue":  services.LatestIssue(issues),
		"Issues":       issues,
		"ClubLogoURL":  ClubLogoURL,
		"HeroVideoURL": HeroVideoURL,
	}))
}

// Mapao renders the journal archive page.
func (pc *PageController) Mapao(c *gin.Context) {
	issues := pc.Content.MagazineIssues(c.Request.Context())
	c.HTML(http.StatusOK, "mapao.html", withFlashes(c, gin.H{
		"LatestIssue": services.LatestIssue(issues),
		"Issues":      issues,
	}))
}

// IssueDetail renders one issue with its articles grouped by category for
// the navigation dropdown. An unknown id flashes "not found" and sends the
// reader back to the archive.
func (pc *PageController) IssueDetail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		SetFlash(c, "error", "Issue not found!")
		c.Redirect(http.StatusFound, "/mapao")
		return
	}

	issues := pc.Content.MagazineIssues(c.Request.Context())
	issue, err := pc.Content.IssueByID(issues, id)
	if err != nil {
		logger.Warn.Printf("IssueDetail: issue %d not in current issue list", id)
		SetFlash(c, "error", "Issue not found!")
		c.Redirect(http.StatusFound, "/mapao")
		return
	}

	c.HTML(http.StatusOK, "issue_detail.html", withFlashes(c, gin.H{
		"Issue":              issue,
		"ArticlesByCategory": services.ArticlesByCategory(issue.FeaturedArticles),
	}))
}

// ---------------- standalone pages ----------------

// Moments renders the timeline page.
func (pc *PageController) Moments(c *gin.Context) {
	moments := pc.Content.Moments(c.Request.Context())
	c.HTML(http.StatusOK, "moments.html", withFlashes(c, gin.H{
		"Moments": moments,
	}))
}

// About renders both wings of the editorial team. Store failures degrade to
// empty team lists.
func (pc *PageController) About(c *gin.Context) {
	ctx := c.Request.Context()

	researchTeam, err := pc.Store.ListEditorialTeam(ctx, "research_wing")
	if err != nil {
		logger.Error.Printf("About: failed to fetch research wing: %v", err)
	}
	literaryTeam, err := pc.Store.ListEditorialTeam(ctx, "literary_wing")
	if err != nil {
		logger.Error.Printf("About: failed to fetch literary wing: %v", err)
	}

	c.HTML(http.StatusOK, "about.html", withFlashes(c, gin.H{
		"ResearchTeam": researchTeam,
		"LiteraryTeam": literaryTeam,
	}))
}

// Awards renders every award grouped by the year index.
func (pc *PageController) Awards(c *gin.Context) {
	ctx := c.Request.Context()

	awards, err := pc.Store.ListAwards(ctx)
	if err != nil {
		logger.Error.Printf("Awards: failed to fetch awards: %v", err)
	}
	years, err := pc.Store.AwardYears(ctx)
	if err != nil {
		logger.Error.Printf("Awards: failed to fetch award years: %v", err)
	}

	c.HTML(http.StatusOK, "awards.html", withFlashes(c, gin.H{
		"Awards": awards,
		"Years":  years,
	}))
}

// AwardsByYear renders the awards of one year.
func (pc *PageController) AwardsByYear(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.Redirect(http.StatusFound, "/awards")
		return
	}

	awards, err := pc.Store.ListAwardsByYear(c.Request.Context(), year)
	if err != nil {
		logger.Error.Printf("AwardsByYear: failed to fetch awards for %d: %v", year, err)
	}

	c.HTML(http.StatusOK, "awards.html", withFlashes(c, gin.H{
		"Awards": awards,
		"Year":   year,
	}))
}

// WhosWho renders the full directory with its A-Z letter index.
func (pc *PageController) WhosWho(c *gin.Context) {
	ctx := c.Request.Context()

	entries, err := pc.Store.ListWhosWho(ctx)
	if err != nil {
		logger.Error.Printf("WhosWho: failed to fetch entries: %v", err)
	}
	letters, err := pc.Store.WhosWhoLetters(ctx)
	if err != nil {
		logger.Error.Printf("WhosWho: failed to fetch letters: %v", err)
	}

	c.HTML(http.StatusOK, "whos_who.html", withFlashes(c, gin.H{
		"Entries": entries,
		"Letters": letters,
	}))
}

// WhosWhoByLetter renders the directory entries for one first letter. The
// parameter must be exactly one letter rune; anything else (multiple
// characters, digits, ILIKE wildcards) goes back to the full directory.
func (pc *PageController) WhosWhoByLetter(c *gin.Context) {
	letter := c.Param("letter")
	r, size := utf8.DecodeRuneInString(letter)
	if size != len(letter) || !unicode.IsLetter(r) {
		c.Redirect(http.StatusFound, "/whos-who")
		return
	}

	ctx := c.Request.Context()
	entries, err := pc.Store.ListWhosWhoByLetter(ctx, letter)
	if err != nil {
		logger.Error.Printf("WhosWhoByLetter: failed to fetch entries for %q: %v", letter, err)
	}
	letters, err := pc.Store.WhosWhoLetters(ctx)
	if err != nil {
		logger.Error.Printf("WhosWhoByLetter: failed to fetch letters: %v", err)
	}

	c.HTML(http.StatusOK, "whos_who.html", withFlashes(c, gin.H{
		"Entries": entries,
		"Letters": letters,
		"Letter":  letter,
	}))
}
