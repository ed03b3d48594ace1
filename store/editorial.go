// File: store/editorial.go
package store

import (
	"context"
	"fmt"

	"mapao-magazine/models"
)

// ListEditorialTeam returns team members ordered by display_order. An empty
// teamType returns both wings.
func (s *Store) ListEditorialTeam(ctx context.Context, teamType string) ([]models.EditorialTeamMember, error) {
	if err := s.available(); err != nil {
		return nil, err
	}

	query := `SELECT id, name, COALESCE(role, ''), COALESCE(team_type, ''), display_order,
		COALESCE(photo_url, '') FROM ` + editorialTable
	args := []any{}
	if teamType != "" {
		query += ` WHERE team_type = $1`
		args = append(args, teamType)
	}
	query += ` ORDER BY display_order ASC`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query editorial team: %w", err)
	}
	defer rows.Close()

	var members []models.EditorialTeamMember
	for rows.Next() {
		var m models.EditorialTeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.TeamType, &m.DisplayOrder, &m.PhotoURL); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate team members: %w", err)
	}
	return members, nil
}
