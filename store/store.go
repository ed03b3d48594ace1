// Package store is the typed gateway to the hosted database and the object
// storage bucket that holds magazine assets. One method exists per
// (entity, access pattern) pair; every method returns an explicit error so
// callers can tell "no data" apart from "store failure".
// File: store/store.go
package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"mapao-magazine/logger"
	"mapao-magazine/models"
)

// ------------------------ table names ------------------------

const (
	issuesTable       = "magazine_issues"
	articlesTable     = "articles"
	photosTable       = "photos"
	contributorsTable = "contributors"
	momentsTable      = "moments"
	editorialTable    = "editorial_team"
	awardsTable       = "awards"
	whosWhoTable      = "whos_who"
)

// ------------------------ errors ------------------------

var (
	// ErrUnavailable is returned by every operation when the store was not
	// configured at startup (missing DATABASE_URL or unreachable database).
	ErrUnavailable = errors.New("store: database unavailable")

	// ErrNotFound is returned when a lookup by id matches no row.
	ErrNotFound = errors.New("store: not found")
)

// ------------------------ gateway ------------------------

// Options carries the credentials for the database and the asset bucket.
type Options struct {
	DatabaseURL      string
	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StorageUseSSL    bool
}

// Gateway is the full set of store operations. Controllers and services
// depend on this interface so tests can substitute a mock.
type Gateway interface {
	// issues
	ListIssues(ctx context.Context) ([]models.Issue, error)
	ListIssuesByType(ctx context.Context, journalType string) ([]models.Issue, error)
	GetIssue(ctx context.Context, id int64) (*models.Issue, error)
	CreateIssue(ctx context.Context, issue *models.Issue) error
	UpdateIssue(ctx context.Context, id int64, issue *models.Issue) error
	DeleteIssue(ctx context.Context, id int64) error

	// articles
	ListArticlesByIssue(ctx context.Context, issueID int64) ([]models.Article, error)
	GetArticle(ctx context.Context, id int64) (*models.Article, error)
	CreateArticle(ctx context.Context, article *models.Article) error
	UpdateArticle(ctx context.Context, id int64, article *models.Article) error
	DeleteArticle(ctx context.Context, id int64) error

	// photos
	ListPhotosByIssue(ctx context.Context, issueID int64) ([]models.Photo, error)
	CreatePhoto(ctx context.Context, photo *models.Photo) error
	DeletePhoto(ctx context.Context, id int64) error

	// contributors
	ListContributorsByIssue(ctx context.Context, issueID int64) ([]models.Contributor, error)

	// moments
	ListMoments(ctx context.Context) ([]models.Moment, error)
	CreateMoment(ctx context.Context, moment *models.Moment) error
	UpdateMoment(ctx context.Context, id int64, moment *models.Moment) error
	DeleteMoment(ctx context.Context, id int64) error

	// editorial team
	ListEditorialTeam(ctx context.Context, teamType string) ([]models.EditorialTeamMember, error)

	// awards
	ListAwards(ctx context.Context) ([]models.Award, error)
	ListAwardsByYear(ctx context.Context, year int) ([]models.Award, error)
	GetAward(ctx context.Context, id int64) (*models.Award, error)
	AwardYears(ctx context.Context) ([]int, error)
	CreateAward(ctx context.Context, award *models.Award) error

	// who's who
	ListWhosWho(ctx context.Context) ([]models.WhosWhoEntry, error)
	ListWhosWhoByLetter(ctx context.Context, letter string) ([]models.WhosWhoEntry, error)
	GetWhosWhoEntry(ctx context.Context, id int64) (*models.WhosWhoEntry, error)
	WhosWhoLetters(ctx context.Context) ([]string, error)
	CreateWhosWhoEntry(ctx context.Context, entry *models.WhosWhoEntry) error

	// asset bucket
	UploadFile(ctx context.Context, fileName string, r io.Reader, size int64, contentType string) (string, error)
	DeleteFile(ctx context.Context, fileName string) error
}

// Store implements Gateway over a pgx connection pool and a MinIO client.
// It is constructed once in main and injected everywhere it is needed; a
// Store built by Degraded answers every call with ErrUnavailable.
type Store struct {
	pool    *pgxpool.Pool
	objects *minio.Client
	bucket  string
}

var _ Gateway = (*Store)(nil)

// New connects to the database (fail fast when credentials are missing or
// the database does not answer a ping) and, when object-storage credentials
// are present, to the asset bucket.
func New(ctx context.Context, opts Options) (*Store, error) {
	if opts.DatabaseURL == "" {
		return nil, fmt.Errorf("store: DATABASE_URL is not configured")
	}

	pool, err := pgxpool.New(ctx, opts.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Store{pool: pool, bucket: opts.StorageBucket}

	// object storage is optional: without it, uploads fail but pages work
	if opts.StorageEndpoint != "" {
		client, err := minio.New(opts.StorageEndpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(opts.StorageAccessKey, opts.StorageSecretKey, ""),
			Secure: opts.StorageUseSSL,
		})
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("create object storage client: %w", err)
		}
		s.objects = client
	} else {
		logger.Warn.Println("New: STORAGE_ENDPOINT not set, file uploads are disabled")
	}

	return s, nil
}

// Degraded returns a Store with no backing connections. Every operation
// returns ErrUnavailable, which lets the site render empty pages instead of
// refusing to start when the database is not configured.
func Degraded() *Store {
	return &Store{}
}

// Close releases the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// available guards every database operation on a degraded store.
func (s *Store) available() error {
	if s.pool == nil {
		return ErrUnavailable
	}
	return nil
}
