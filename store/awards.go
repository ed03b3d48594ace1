// File: store/awards.go
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"mapao-magazine/models"
)

const awardColumns = `id, year, title, COALESCE(recipient, ''), COALESCE(description, '')`

func (s *Store) queryAwards(ctx context.Context, query string, args ...any) ([]models.Award, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query awards: %w", err)
	}
	defer rows.Close()

	var awards []models.Award
	for rows.Next() {
		var a models.Award
		if err := rows.Scan(&a.ID, &a.Year, &a.Title, &a.Recipient, &a.Description); err != nil {
			return nil, fmt.Errorf("scan award: %w", err)
		}
		awards = append(awards, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate awards: %w", err)
	}
	return awards, nil
}

// ListAwards returns every award, most recent year first.
func (s *Store) ListAwards(ctx context.Context) ([]models.Award, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	return s.queryAwards(ctx, `SELECT `+awardColumns+` FROM `+awardsTable+` ORDER BY year DESC`)
}

// ListAwardsByYear returns the awards given in one year.
func (s *Store) ListAwardsByYear(ctx context.Context, year int) ([]models.Award, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	return s.queryAwards(ctx, `SELECT `+awardColumns+` FROM `+awardsTable+` WHERE year = $1`, year)
}

// GetAward returns one award by id, or ErrNotFound.
func (s *Store) GetAward(ctx context.Context, id int64) (*models.Award, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	var a models.Award
	query := `SELECT ` + awardColumns + ` FROM ` + awardsTable + ` WHERE id = $1`
	err := s.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.Year, &a.Title, &a.Recipient, &a.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get award %d: %w", id, err)
	}
	return &a, nil
}

// AwardYears returns every year that has at least one award, descending.
func (s *Store) AwardYears(ctx context.Context) ([]int, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	rows, err := s.pool.Query(ctx, `SELECT DISTINCT year FROM `+awardsTable+` ORDER BY year DESC`)
	if err != nil {
		return nil, fmt.Errorf("query award years: %w", err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, fmt.Errorf("scan award year: %w", err)
		}
		years = append(years, y)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate award years: %w", err)
	}
	return years, nil
}

// CreateAward inserts a new award and fills in its generated id.
func (s *Store) CreateAward(ctx context.Context, award *models.Award) error {
	if err := s.available(); err != nil {
		return err
	}
	query := `INSERT INTO ` + awardsTable +
		` (year, title, recipient, description) VALUES ($1, $2, $3, $4) RETURNING id`
	err := s.pool.QueryRow(ctx, query, award.Year, award.Title, award.Recipient,
		award.Description).Scan(&award.ID)
	if err != nil {
		return fmt.Errorf("create award: %w", err)
	}
	return nil
}
