// File: store/photos.go
package store

import (
	"context"
	"fmt"

	"mapao-magazine/models"
)

// ListPhotosByIssue returns an issue's gallery, newest first.
func (s *Store) ListPhotosByIssue(ctx context.Context, issueID int64) ([]models.Photo, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	query := `SELECT id, issue_id, url, COALESCE(caption, ''), created_at FROM ` + photosTable +
		` WHERE issue_id = $1 ORDER BY created_at DESC`
	rows, err := s.pool.Query(ctx, query, issueID)
	if err != nil {
		return nil, fmt.Errorf("query photos for issue %d: %w", issueID, err)
	}
	defer rows.Close()

	var photos []models.Photo
	for rows.Next() {
		var p models.Photo
		if err := rows.Scan(&p.ID, &p.IssueID, &p.URL, &p.Caption, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate photos: %w", err)
	}
	return photos, nil
}

// CreatePhoto inserts a new gallery photo and fills in its generated id.
func (s *Store) CreatePhoto(ctx context.Context, photo *models.Photo) error {
	if err := s.available(); err != nil {
		return err
	}
	query := `INSERT INTO ` + photosTable + ` (issue_id, url, caption) VALUES ($1, $2, $3) RETURNING id`
	err := s.pool.QueryRow(ctx, query, photo.IssueID, photo.URL, photo.Caption).Scan(&photo.ID)
	if err != nil {
		return fmt.Errorf("create photo: %w", err)
	}
	return nil
}

// DeletePhoto removes a photo by id; ErrNotFound when the id is unknown.
func (s *Store) DeletePhoto(ctx context.Context, id int64) error {
	if err := s.available(); err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx, `DELETE FROM `+photosTable+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete photo %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
