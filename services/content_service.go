// Package services: services/content_service.go
package services

import (
	"context"
	"errors"

	"mapao-magazine/logger"
	"mapao-magazine/models"
	"mapao-magazine/store"
)

// ErrIssueNotFound is returned when a requested issue id matches none of the
// currently fetched issues.
var ErrIssueNotFound = errors.New("issue not found")

// CategoryGroup holds the articles of one category, in fetch order. Groups
// are emitted in first-seen category order.
type CategoryGroup struct {
	Category string
	Articles []models.Article
}

// DashboardStats aggregates the counts shown on the admin dashboard.
type DashboardStats struct {
	TotalIssues       int
	TotalArticles     int
	TotalContributors int
	TotalMoments      int
	RecentIssues      []models.Issue
}

// ContentServiceInterface shapes raw store rows into the view objects the
// site renders.
type ContentServiceInterface interface {
	MagazineIssues(ctx context.Context) []models.Issue
	IssueByID(issues []models.Issue, id int64) (*models.Issue, error)
	Moments(ctx context.Context) []models.Moment
	DashboardStats(ctx context.Context) DashboardStats
}

// ContentService is the production implementation over the store gateway.
type ContentService struct {
	store store.Gateway
}

// NewContentService creates a ContentService backed by the given gateway.
func NewContentService(gw store.Gateway) *ContentService {
	return &ContentService{store: gw}
}

// ---------------- issue aggregation ----------------

// MagazineIssues returns every issue, newest release first, each enriched
// with its featured articles, contributor buckets, and gallery. Store
// failures degrade to empty data; pages render without content rather than
// erroring.
func (s *ContentService) MagazineIssues(ctx context.Context) []models.Issue {
	issues, err := s.store.ListIssues(ctx)
	if err != nil {
		logger.Error.Printf("MagazineIssues: failed to list issues: %v", err)
		return []models.Issue{}
	}

	// one articles + contributors + photos query per issue, matching the
	// store's per-issue access patterns
	for i := range issues {
		s.enrichIssue(ctx, &issues[i])
	}
	return issues
}

// enrichIssue attaches the issue's related rows and normalizes its
// classification so rendered issues never carry an empty journal_type.
func (s *ContentService) enrichIssue(ctx context.Context, issue *models.Issue) {
	articles, err := s.store.ListArticlesByIssue(ctx, issue.ID)
	if err != nil {
		logger.Error.Printf("enrichIssue: articles for issue %d: %v", issue.ID, err)
	}
	issue.FeaturedArticles = articles

	contributors, err := s.store.ListContributorsByIssue(ctx, issue.ID)
	if err != nil {
		logger.Error.Printf("enrichIssue: contributors for issue %d: %v", issue.ID, err)
	}
	issue.Contributors = GroupContributors(contributors)

	photos, err := s.store.ListPhotosByIssue(ctx, issue.ID)
	if err != nil {
		logger.Error.Printf("enrichIssue: photos for issue %d: %v", issue.ID, err)
	}
	issue.Gallery = photos

	if issue.JournalType == "" {
		issue.JournalType = models.JournalTypeLiterary
	}
}

// IssueByID finds an issue in the fetched list, or returns ErrIssueNotFound.
func (s *ContentService) IssueByID(issues []models.Issue, id int64) (*models.Issue, error) {
	for i := range issues {
		if issues[i].ID == id {
			return &issues[i], nil
		}
	}
	return nil, ErrIssueNotFound
}

// LatestIssue returns the first issue of the descending-by-release-date
// list, or nil when there are none.
func LatestIssue(issues []models.Issue) *models.Issue {
	if len(issues) == 0 {
		return nil
	}
	return &issues[0]
}

// GroupContributors buckets contributors by role. The result always has
// exactly the three role keys, each possibly empty. A missing role counts
// as featured_writers; unrecognized roles are dropped.
func GroupContributors(contributors []models.Contributor) map[string][]models.Contributor {
	buckets := map[string][]models.Contributor{
		models.RoleEditorialTeam:   {},
		models.RoleFeaturedWriters: {},
		models.RolePhotographers:   {},
	}
	for _, c := range contributors {
		role := c.RoleType
		if role == "" {
			role = models.RoleFeaturedWriters
		}
		if _, ok := buckets[role]; ok {
			buckets[role] = append(buckets[role], c)
		}
	}
	return buckets
}

// ArticlesByCategory groups an issue's articles by category for the
// navigation dropdown. Categories appear in the order they are first seen;
// articles without a category fall under "Other".
func ArticlesByCategory(articles []models.Article) []CategoryGroup {
	index := make(map[string]int)
	var groups []CategoryGroup
	for _, a := range articles {
		category := a.Category
		if category == "" {
			category = "Other"
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, CategoryGroup{Category: category})
		}
		groups[i].Articles = append(groups[i].Articles, a)
	}
	return groups
}

// ---------------- standalone content ----------------

// Moments returns every moment, newest first, degrading to empty on failure.
func (s *ContentService) Moments(ctx context.Context) []models.Moment {
	moments, err := s.store.ListMoments(ctx)
	if err != nil {
		logger.Error.Printf("Moments: failed to list moments: %v", err)
		return []models.Moment{}
	}
	return moments
}

// ---------------- admin dashboard ----------------

// DashboardStats totals the site's content. Article and contributor counts
// are summed across the enriched issue list.
func (s *ContentService) DashboardStats(ctx context.Context) DashboardStats {
	issues := s.MagazineIssues(ctx)

	stats := DashboardStats{TotalIssues: len(issues)}
	for _, issue := range issues {
		stats.TotalArticles += len(issue.FeaturedArticles)
		for _, bucket := range issue.Contributors {
			stats.TotalContributors += len(bucket)
		}
	}

	stats.TotalMoments = len(s.Moments(ctx))

	recent := issues
	if len(recent) > 5 {
		recent = recent[:5]
	}
	stats.RecentIssues = recent

	return stats
}
