// File: store/contributors.go
package store

import (
	"context"
	"fmt"

	"mapao-magazine/models"
)

// ListContributorsByIssue returns every contributor credited on an issue.
// Role bucketing happens in the content aggregator, not here.
func (s *Store) ListContributorsByIssue(ctx context.Context, issueID int64) ([]models.Contributor, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	query := `SELECT id, issue_id, name, COALESCE(role_type, ''), COALESCE(bio, '') FROM ` +
		contributorsTable + ` WHERE issue_id = $1`
	rows, err := s.pool.Query(ctx, query, issueID)
	if err != nil {
		return nil, fmt.Errorf("query contributors for issue %d: %w", issueID, err)
	}
	defer rows.Close()

	var contributors []models.Contributor
	for rows.Next() {
		var c models.Contributor
		if err := rows.Scan(&c.ID, &c.IssueID, &c.Name, &c.RoleType, &c.Bio); err != nil {
			return nil, fmt.Errorf("scan contributor: %w", err)
		}
		contributors = append(contributors, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contributors: %w", err)
	}
	return contributors, nil
}
