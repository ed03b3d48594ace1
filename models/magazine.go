// Package models defines data structures used across the application.
// File: models/magazine.go
package models

import "time"

// ----------------------- journal types -----------------------

// Journal type classification for an issue.
const (
	JournalTypeLiterary = "literary"
	JournalTypeResearch = "research"
)

// Contributor role buckets. Every aggregated issue carries exactly these
// three buckets, possibly empty.
const (
	RoleEditorialTeam   = "editorial_team"
	RoleFeaturedWriters = "featured_writers"
	RolePhotographers   = "photographers"
)

// ----------------------- issue model -----------------------

// Issue represents one published edition of the magazine.
type Issue struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	ReleaseDate   string `json:"release_date"` // ISO date string, as stored
	Editorial     string `json:"editorial"`
	JournalType   string `json:"journal_type"` // literary | research
	CoverImageURL string `json:"cover_image_url"`

	// Populated by the content aggregator, not by the store.
	FeaturedArticles []Article                `json:"featured_articles,omitempty"`
	Contributors     map[string][]Contributor `json:"contributors,omitempty"`
	Gallery          []Photo                  `json:"gallery,omitempty"`
}

// Article belongs to an issue.
type Article struct {
	ID        int64     `json:"id"`
	IssueID   int64     `json:"issue_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// Photo is a gallery entry for an issue.
type Photo struct {
	ID        int64     `json:"id"`
	IssueID   int64     `json:"issue_id"`
	URL       string    `json:"url"`
	Caption   string    `json:"caption"`
	CreatedAt time.Time `json:"created_at"`
}

// Contributor is a person credited on an issue, classified by role bucket.
type Contributor struct {
	ID       int64  `json:"id"`
	IssueID  int64  `json:"issue_id"`
	Name     string `json:"name"`
	RoleType string `json:"role_type"`
	Bio      string `json:"bio"`
}

// ----------------------- standalone content -----------------------

// Moment is a standalone timeline entry unrelated to any issue.
type Moment struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
}

// EditorialTeamMember belongs to one wing of the editorial team.
type EditorialTeamMember struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	TeamType     string `json:"team_type"` // research_wing | literary_wing
	DisplayOrder int    `json:"display_order"`
	PhotoURL     string `json:"photo_url"`
}

// Award is a prize given in a particular year.
type Award struct {
	ID          int64  `json:"id"`
	Year        int    `json:"year"`
	Title       string `json:"title"`
	Recipient   string `json:"recipient"`
	Description string `json:"description"`
}

// WhosWhoEntry is a biographical entry browsable by first letter.
type WhosWhoEntry struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	PhotoURL string `json:"photo_url"`
}
