// File: store/moments.go
package store

import (
	"context"
	"fmt"

	"mapao-magazine/models"
)

const momentColumns = `id, title, COALESCE(date::text, ''), COALESCE(description, ''),
	COALESCE(category, ''), COALESCE(image_url, '')`

// ListMoments returns every moment, newest first.
func (s *Store) ListMoments(ctx context.Context) ([]models.Moment, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	query := `SELECT ` + momentColumns + ` FROM ` + momentsTable + ` ORDER BY date DESC`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query moments: %w", err)
	}
	defer rows.Close()

	var moments []models.Moment
	for rows.Next() {
		var m models.Moment
		if err := rows.Scan(&m.ID, &m.Title, &m.Date, &m.Description, &m.Category, &m.ImageURL); err != nil {
			return nil, fmt.Errorf("scan moment: %w", err)
		}
		moments = append(moments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate moments: %w", err)
	}
	return moments, nil
}

// CreateMoment inserts a new moment and fills in its generated id.
func (s *Store) CreateMoment(ctx context.Context, moment *models.Moment) error {
	if err := s.available(); err != nil {
		return err
	}
	query := `INSERT INTO ` + momentsTable +
		` (title, date, description, category, image_url) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := s.pool.QueryRow(ctx, query, moment.Title, moment.Date, moment.Description,
		moment.Category, moment.ImageURL).Scan(&moment.ID)
	if err != nil {
		return fmt.Errorf("create moment: %w", err)
	}
	return nil
}

// UpdateMoment rewrites a moment's fields; ErrNotFound when the id is unknown.
func (s *Store) UpdateMoment(ctx context.Context, id int64, moment *models.Moment) error {
	if err := s.available(); err != nil {
		return err
	}
	query := `UPDATE ` + momentsTable +
		` SET title = $1, date = $2, description = $3, category = $4, image_url = $5 WHERE id = $6`
	tag, err := s.pool.Exec(ctx, query, moment.Title, moment.Date, moment.Description,
		moment.Category, moment.ImageURL, id)
	if err != nil {
		return fmt.Errorf("update moment %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMoment removes a moment by id; ErrNotFound when the id is unknown.
func (s *Store) DeleteMoment(ctx context.Context, id int64) error {
	if err := s.available(); err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx, `DELETE FROM `+momentsTable+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete moment %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
