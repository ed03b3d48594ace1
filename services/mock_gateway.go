// File: services/mock_gateway.go
package services

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"mapao-magazine/models"
	"mapao-magazine/store"
)

// MockGateway implements store.Gateway for testing.
type MockGateway struct {
	mock.Mock
}

var _ store.Gateway = (*MockGateway)(nil)

// ---------------- issues ----------------

func (m *MockGateway) ListIssues(ctx context.Context) ([]models.Issue, error) {
	args := m.Called(ctx)
	issues, _ := args.Get(0).([]models.Issue)
	return issues, args.Error(1)
}

func (m *MockGateway) ListIssuesByType(ctx context.Context, journalType string) ([]models.Issue, error) {
	args := m.Called(ctx, journalType)
	issues, _ := args.Get(0).([]models.Issue)
	return issues, args.Error(1)
}

func (m *MockGateway) GetIssue(ctx context.Context, id int64) (*models.Issue, error) {
	args := m.Called(ctx, id)
	issue, _ := args.Get(0).(*models.Issue)
	return issue, args.Error(1)
}

func (m *MockGateway) CreateIssue(ctx context.Context, issue *models.Issue) error {
	args := m.Called(ctx, issue)
	return args.Error(0)
}

func (m *MockGateway) UpdateIssue(ctx context.Context, id int64, issue *models.Issue) error {
	args := m.Called(ctx, id, issue)
	return args.Error(0)
}

func (m *MockGateway) DeleteIssue(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ---------------- articles ----------------

func (m *MockGateway) ListArticlesByIssue(ctx context.Context, issueID int64) ([]models.Article, error) {
	args := m.Called(ctx, issueID)
	articles, _ := args.Get(0).([]models.Article)
	return articles, args.Error(1)
}

func (m *MockGateway) GetArticle(ctx context.Context, id int64) (*models.Article, error) {
	args := m.Called(ctx, id)
	article, _ := args.Get(0).(*models.Article)
	return article, args.Error(1)
}

func (m *MockGateway) CreateArticle(ctx context.Context, article *models.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockGateway) UpdateArticle(ctx context.Context, id int64, article *models.Article) error {
	args := m.Called(ctx, id, article)
	return args.Error(0)
}

func (m *MockGateway) DeleteArticle(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ---------------- photos ----------------

func (m *MockGateway) ListPhotosByIssue(ctx context.Context, issueID int64) ([]models.Photo, error) {
	args := m.Called(ctx, issueID)
	photos, _ := args.Get(0).([]models.Photo)
	return photos, args.Error(1)
}

func (m *MockGateway) CreatePhoto(ctx context.Context, photo *models.Photo) error {
	args := m.Called(ctx, photo)
	return args.Error(0)
}

func (m *MockGateway) DeletePhoto(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ---------------- contributors ----------------

func (m *MockGateway) ListContributorsByIssue(ctx context.Context, issueID int64) ([]models.Contributor, error) {
	args := m.Called(ctx, issueID)
	contributors, _ := args.Get(0).([]models.Contributor)
	return contributors, args.Error(1)
}

// ---------------- moments ----------------

func (m *MockGateway) ListMoments(ctx context.Context) ([]models.Moment, error) {
	args := m.Called(ctx)
	moments, _ := args.Get(0).([]models.Moment)
	return moments, args.Error(1)
}

func (m *MockGateway) CreateMoment(ctx context.Context, moment *models.Moment) error {
	args := m.Called(ctx, moment)
	return args.Error(0)
}

func (m *MockGateway) UpdateMoment(ctx context.Context, id int64, moment *models.Moment) error {
	args := m.Called(ctx, id, moment)
	return args.Error(0)
}

func (m *MockGateway) DeleteMoment(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ---------------- editorial team ----------------

func (m *MockGateway) ListEditorialTeam(ctx context.Context, teamType string) ([]models.EditorialTeamMember, error) {
	args := m.Called(ctx, teamType)
	members, _ := args.Get(0).([]models.EditorialTeamMember)
	return members, args.Error(1)
}

// ---------------- awards ----------------

func (m *MockGateway) ListAwards(ctx context.Context) ([]models.Award, error) {
	args := m.Called(ctx)
	awards, _ := args.Get(0).([]models.Award)
	return awards, args.Error(1)
}

func (m *MockGateway) ListAwardsByYear(ctx context.Context, year int) ([]models.Award, error) {
	args := m.Called(ctx, year)
	awards, _ := args.Get(0).([]models.Award)
	return awards, args.Error(1)
}

func (m *MockGateway) GetAward(ctx context.Context, id int64) (*models.Award, error) {
	args := m.Called(ctx, id)
	award, _ := args.Get(0).(*models.Award)
	return award, args.Error(1)
}

func (m *MockGateway) AwardYears(ctx context.Context) ([]int, error) {
	args := m.Called(ctx)
	years, _ := args.Get(0).([]int)
	return years, args.Error(1)
}

func (m *MockGateway) CreateAward(ctx context.Context, award *models.Award) error {
	args := m.Called(ctx, award)
	return args.Error(0)
}

// ---------------- who's who ----------------

func (m *MockGateway) ListWhosWho(ctx context.Context) ([]models.WhosWhoEntry, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]models.WhosWhoEntry)
	return entries, args.Error(1)
}

func (m *MockGateway) ListWhosWhoByLetter(ctx context.Context, letter string) ([]models.WhosWhoEntry, error) {
	args := m.Called(ctx, letter)
	entries, _ := args.Get(0).([]models.WhosWhoEntry)
	return entries, args.Error(1)
}

func (m *MockGateway) GetWhosWhoEntry(ctx context.Context, id int64) (*models.WhosWhoEntry, error) {
	args := m.Called(ctx, id)
	entry, _ := args.Get(0).(*models.WhosWhoEntry)
	return entry, args.Error(1)
}

func (m *MockGateway) WhosWhoLetters(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	letters, _ := args.Get(0).([]string)
	return letters, args.Error(1)
}

func (m *MockGateway) CreateWhosWhoEntry(ctx context.Context, entry *models.WhosWhoEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// ---------------- asset bucket ----------------

func (m *MockGateway) UploadFile(ctx context.Context, fileName string, r io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, fileName, r, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) DeleteFile(ctx context.Context, fileName string) error {
	args := m.Called(ctx, fileName)
	return args.Error(0)
}
