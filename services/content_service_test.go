// file: services/content_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mapao-magazine/models"
	"mapao-magazine/services"
)

// expectEnrichment stubs the per-issue article/contributor/photo fetches.
func expectEnrichment(gw *services.MockGateway, issueID int64) {
	gw.On("ListArticlesByIssue", mock.Anything, issueID).Return([]models.Article{}, nil)
	gw.On("ListContributorsByIssue", mock.Anything, issueID).Return([]models.Contributor{}, nil)
	gw.On("ListPhotosByIssue", mock.Anything, issueID).Return([]models.Photo{}, nil)
}

func TestMagazineIssues_DefaultsJournalType(t *testing.T) {
	gw := new(services.MockGateway)
	gw.On("ListIssues", mock.Anything).Return([]models.Issue{
		{ID: 1, Title: "Monsoon Voices"},
	}, nil)
	expectEnrichment(gw, 1)

	svc := services.NewContentService(gw)
	issues := svc.MagazineIssues(context.Background())

	require.Len(t, issues, 1)
	assert.Equal(t, models.JournalTypeLiterary, issues[0].JournalType)
}

func TestMagazineIssues_PreservesResearchType(t *testing.T) {
	gw := new(services.MockGateway)
	gw.On("ListIssues", mock.Anything).Return([]models.Issue{
		{ID: 7, Title: "Annual Research Review", JournalType: models.JournalTypeResearch},
	}, nil)
	expectEnrichment(gw, 7)

	svc := services.NewContentService(gw)
	issues := svc.MagazineIssues(context.Background())

	require.Len(t, issues, 1)
	assert.Equal(t, models.JournalTypeResearch, issues[0].JournalType)
}

func TestMagazineIssues_StoreFailureDegradesToEmpty(t *testing.T) {
	gw := new(services.MockGateway)
	gw.On("ListIssues", mock.Anything).Return(nil, errors.New("connection refused"))

	svc := services.NewContentService(gw)
	issues := svc.MagazineIssues(context.Background())

	assert.Empty(t, issues)
}

func TestMagazineIssues_EnrichesEachIssue(t *testing.T) {
	gw := new(services.MockGateway)
	gw.On("ListIssues", mock.Anything).Return([]models.Issue{{ID: 3}}, nil)
	gw.On("ListArticlesByIssue", mock.Anything, int64(3)).Return([]models.Article{
		{ID: 10, IssueID: 3, Title: "The River"},
	}, nil)
	gw.On("ListContributorsByIssue", mock.Anything, int64(3)).Return([]models.Contributor{
		{ID: 20, IssueID: 3, Name: "L. Devi", RoleType: models.RolePhotographers},
	}, nil)
	gw.On("ListPhotosByIssue", mock.Anything, int64(3)).Return([]models.Photo{
		{ID: 30, IssueID: 3, URL: "https://example.com/p.jpg"},
	}, nil)

	svc := services.NewContentService(gw)
	issues := svc.MagazineIssues(context.Background())

	require.Len(t, issues, 1)
	assert.Len(t, issues[0].FeaturedArticles, 1)
	assert.Len(t, issues[0].Gallery, 1)
	assert.Len(t, issues[0].Contributors[models.RolePhotographers], 1)
	gw.AssertExpectations(t)
}

func TestLatestIssue_FirstOfDescendingList(t *testing.T) {
	// list arrives already ordered release_date descending
	issues := []models.Issue{
		{ID: 2, ReleaseDate: "2024-06-01"},
		{ID: 1, ReleaseDate: "2024-01-01"},
	}
	latest := services.LatestIssue(issues)
	require.NotNil(t, latest)
	assert.Equal(t, int64(2), latest.ID)
}

func TestLatestIssue_EmptyList(t *testing.T) {
	assert.Nil(t, services.LatestIssue(nil))
}

func TestIssueByID_Found(t *testing.T) {
	svc := services.NewContentService(new(services.MockGateway))
	issues := []models.Issue{{ID: 1}, {ID: 2}}

	issue, err := svc.IssueByID(issues, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), issue.ID)
}

func TestIssueByID_NotFound(t *testing.T) {
	svc := services.NewContentService(new(services.MockGateway))
	issues := []models.Issue{{ID: 1}}

	issue, err := svc.IssueByID(issues, 99)
	assert.Nil(t, issue)
	assert.ErrorIs(t, err, services.ErrIssueNotFound)
}

func TestGroupContributors_AlwaysThreeBuckets(t *testing.T) {
	buckets := services.GroupContributors(nil)

	assert.Len(t, buckets, 3)
	assert.NotNil(t, buckets[models.RoleEditorialTeam])
	assert.NotNil(t, buckets[models.RoleFeaturedWriters])
	assert.NotNil(t, buckets[models.RolePhotographers])
}

func TestGroupContributors_BucketsByRole(t *testing.T) {
	buckets := services.GroupContributors([]models.Contributor{
		{Name: "A", RoleType: models.RoleEditorialTeam},
		{Name: "B", RoleType: models.RoleFeaturedWriters},
		{Name: "C", RoleType: models.RolePhotographers},
		{Name: "D", RoleType: models.RoleFeaturedWriters},
	})

	assert.Len(t, buckets[models.RoleEditorialTeam], 1)
	assert.Len(t, buckets[models.RoleFeaturedWriters], 2)
	assert.Len(t, buckets[models.RolePhotographers], 1)
}

func TestGroupContributors_MissingRoleDefaultsToFeaturedWriters(t *testing.T) {
	buckets := services.GroupContributors([]models.Contributor{
		{Name: "Anonymous"},
	})

	require.Len(t, buckets[models.RoleFeaturedWriters], 1)
	assert.Equal(t, "Anonymous", buckets[models.RoleFeaturedWriters][0].Name)
}

func TestGroupContributors_UnknownRoleDropped(t *testing.T) {
	buckets := services.GroupContributors([]models.Contributor{
		{Name: "X", RoleType: "translators"},
	})

	for role, bucket := range buckets {
		assert.Empty(t, bucket, "bucket %s should be empty", role)
	}
	assert.Len(t, buckets, 3)
}

func TestArticlesByCategory_FirstSeenOrder(t *testing.T) {
	groups := services.ArticlesByCategory([]models.Article{
		{ID: 1, Category: "Poetry"},
		{ID: 2, Category: "Fiction"},
		{ID: 3, Category: "Poetry"},
		{ID: 4, Category: "Essay"},
	})

	require.Len(t, groups, 3)
	assert.Equal(t, "Poetry", groups[0].Category)
	assert.Equal(t, "Fiction", groups[1].Category)
	assert.Equal(t, "Essay", groups[2].Category)
	assert.Len(t, groups[0].Articles, 2)
	assert.Equal(t, int64(1), groups[0].Articles[0].ID)
	assert.Equal(t, int64(3), groups[0].Articles[1].ID)
}

func TestArticlesByCategory_EmptyCategoryBecomesOther(t *testing.T) {
	groups := services.ArticlesByCategory([]models.Article{
		{ID: 1},
	})

	require.Len(t, groups, 1)
	assert.Equal(t, "Other", groups[0].Category)
}

func TestDashboardStats_Totals(t *testing.T) {
	gw := new(services.MockGateway)
	gw.On("ListIssues", mock.Anything).Return([]models.Issue{{ID: 1}, {ID: 2}}, nil)
	gw.On("ListArticlesByIssue", mock.Anything, int64(1)).Return([]models.Article{{ID: 1}, {ID: 2}}, nil)
	gw.On("ListArticlesByIssue", mock.Anything, int64(2)).Return([]models.Article{{ID: 3}}, nil)
	gw.On("ListContributorsByIssue", mock.Anything, int64(1)).Return([]models.Contributor{
		{RoleType: models.RoleEditorialTeam},
		{RoleType: "unknown_role"},
	}, nil)
	gw.On("ListContributorsByIssue", mock.Anything, int64(2)).Return([]models.Contributor{
		{RoleType: models.RolePhotographers},
	}, nil)
	gw.On("ListPhotosByIssue", mock.Anything, mock.Anything).Return([]models.Photo{}, nil)
	gw.On("ListMoments", mock.Anything).Return([]models.Moment{{ID: 1}}, nil)

	svc := services.NewContentService(gw)
	stats := svc.DashboardStats(context.Background())

	assert.Equal(t, 2, stats.TotalIssues)
	assert.Equal(t, 3, stats.TotalArticles)
	// the unknown role is dropped from every bucket, so it never counts
	assert.Equal(t, 2, stats.TotalContributors)
	assert.Equal(t, 1, stats.TotalMoments)
	assert.Len(t, stats.RecentIssues, 2)
}

func TestDashboardStats_RecentIssuesCappedAtFive(t *testing.T) {
	var issues []models.Issue
	gw := new(services.MockGateway)
	for i := int64(1); i <= 7; i++ {
		issues = append(issues, models.Issue{ID: i})
		expectEnrichment(gw, i)
	}
	gw.On("ListIssues", mock.Anything).Return(issues, nil)
	gw.On("ListMoments", mock.Anything).Return([]models.Moment{}, nil)

	svc := services.NewContentService(gw)
	stats := svc.DashboardStats(context.Background())

	assert.Equal(t, 7, stats.TotalIssues)
	assert.Len(t, stats.RecentIssues, 5)
}
