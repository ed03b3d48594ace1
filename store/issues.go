// File: store/issues.go
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"mapao-magazine/models"
)

const issueColumns = `id, title, COALESCE(description, ''), COALESCE(release_date::text, ''),
	COALESCE(editorial, ''), COALESCE(journal_type, ''), COALESCE(cover_image_url, '')`

func scanIssue(row pgx.Row) (*models.Issue, error) {
	var issue models.Issue
	err := row.Scan(&issue.ID, &issue.Title, &issue.Description, &issue.ReleaseDate,
		&issue.Editorial, &issue.JournalType, &issue.CoverImageURL)
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

func (s *Store) queryIssues(ctx context.Context, query string, args ...any) ([]models.Issue, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query issues: %w", err)
	}
	defer rows.Close()

	var issues []models.Issue
	for rows.Next() {
		issue, err := scanIssue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan issue: %w", err)
		}
		issues = append(issues, *issue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate issues: %w", err)
	}
	return issues, nil
}

// ListIssues returns every issue, newest release first.
func (s *Store) ListIssues(ctx context.Context) ([]models.Issue, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	query := `SELECT ` + issueColumns + ` FROM ` + issuesTable + ` ORDER BY release_date DESC`
	return s.queryIssues(ctx, query)
}

// ListIssuesByType returns issues of one journal type, newest release first.
func (s *Store) ListIssuesByType(ctx context.Context, journalType string) ([]models.Issue, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	query := `SELECT ` + issueColumns + ` FROM ` + issuesTable +
		` WHERE journal_type = $1 ORDER BY release_date DESC`
	return s.queryIssues(ctx, query, journalType)
}

// GetIssue returns one issue by id, or ErrNotFound.
func (s *Store) GetIssue(ctx context.Context, id int64) (*models.Issue, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	query := `SELECT ` + issueColumns + ` FROM ` + issuesTable + ` WHERE id = $1`
	issue, err := scanIssue(s.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get issue %d: %w", id, err)
	}
	return issue, nil
}

// CreateIssue inserts a new issue and fills in its generated id.
func (s *Store) CreateIssue(ctx context.Context, issue *models.Issue) error {
	if err := s.available(); err != nil {
		return err
	}
	query := `INSERT INTO ` + issuesTable +
		` (title, description, release_date, editorial, journal_type, cover_image_url)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := s.pool.QueryRow(ctx, query, issue.Title, issue.Description, issue.ReleaseDate,
		issue.Editorial, issue.JournalType, issue.CoverImageURL).Scan(&issue.ID)
	if err != nil {
		return fmt.Errorf("create issue: %w", err)
	}
	return nil
}

// UpdateIssue rewrites an issue's fields; ErrNotFound when the id is unknown.
func (s *Store) UpdateIssue(ctx context.Context, id int64, issue *models.Issue) error {
	if err := s.available(); err != nil {
		return err
	}
	query := `UPDATE ` + issuesTable + ` SET title = $1, description = $2, release_date = $3,
		editorial = $4, journal_type = $5, cover_image_url = $6 WHERE id = $7`
	tag, err := s.pool.Exec(ctx, query, issue.Title, issue.Description, issue.ReleaseDate,
		issue.Editorial, issue.JournalType, issue.CoverImageURL, id)
	if err != nil {
		return fmt.Errorf("update issue %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteIssue removes an issue by id; ErrNotFound when the id is unknown.
func (s *Store) DeleteIssue(ctx context.Context, id int64) error {
	if err := s.available(); err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx, `DELETE FROM `+issuesTable+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete issue %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
