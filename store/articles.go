// File: store/articles.go
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"mapao-magazine/models"
)

const articleColumns = `id, issue_id, title, COALESCE(content, ''), COALESCE(author, ''),
	COALESCE(category, ''), created_at`

func scanArticle(row pgx.Row) (*models.Article, error) {
	var a models.Article
	err := row.Scan(&a.ID, &a.IssueID, &a.Title, &a.Content, &a.Author, &a.Category, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListArticlesByIssue returns an issue's articles, newest first.
func (s *Store) ListArticlesByIssue(ctx context.Context, issueID int64) ([]models.Article, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	query := `SELECT ` + articleColumns + ` FROM ` + articlesTable +
		` WHERE issue_id = $1 ORDER BY created_at DESC`
	rows, err := s.pool.Query(ctx, query, issueID)
	if err != nil {
		return nil, fmt.Errorf("query articles for issue %d: %w", issueID, err)
	}
	defer rows.Close()

	var articles []models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}
	return articles, nil
}

// GetArticle returns one article by id, or ErrNotFound.
func (s *Store) GetArticle(ctx context.Context, id int64) (*models.Article, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	query := `SELECT ` + articleColumns + ` FROM ` + articlesTable + ` WHERE id = $1`
	a, err := scanArticle(s.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get article %d: %w", id, err)
	}
	return a, nil
}

// CreateArticle inserts a new article and fills in its generated id.
func (s *Store) CreateArticle(ctx context.Context, article *models.Article) error {
	if err := s.available(); err != nil {
		return err
	}
	query := `INSERT INTO ` + articlesTable +
		` (issue_id, title, content, author, category) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := s.pool.QueryRow(ctx, query, article.IssueID, article.Title, article.Content,
		article.Author, article.Category).Scan(&article.ID)
	if err != nil {
		return fmt.Errorf("create article: %w", err)
	}
	return nil
}

// UpdateArticle rewrites an article's fields; ErrNotFound when the id is unknown.
func (s *Store) UpdateArticle(ctx context.Context, id int64, article *models.Article) error {
	if err := s.available(); err != nil {
		return err
	}
	query := `UPDATE ` + articlesTable +
		` SET issue_id = $1, title = $2, content = $3, author = $4, category = $5 WHERE id = $6`
	tag, err := s.pool.Exec(ctx, query, article.IssueID, article.Title, article.Content,
		article.Author, article.Category, id)
	if err != nil {
		return fmt.Errorf("update article %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteArticle removes an article by id; ErrNotFound when the id is unknown.
func (s *Store) DeleteArticle(ctx context.Context, id int64) error {
	if err := s.available(); err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx, `DELETE FROM `+articlesTable+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
