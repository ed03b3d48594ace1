// File: store/whoswho.go
package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jackc/pgx/v5"

	"mapao-magazine/models"
)

const whosWhoColumns = `id, name, COALESCE(bio, ''), COALESCE(photo_url, '')`

func (s *Store) queryWhosWho(ctx context.Context, query string, args ...any) ([]models.WhosWhoEntry, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query whos who: %w", err)
	}
	defer rows.Close()

	var entries []models.WhosWhoEntry
	for rows.Next() {
		var e models.WhosWhoEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.Bio, &e.PhotoURL); err != nil {
			return nil, fmt.Errorf("scan whos who entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate whos who entries: %w", err)
	}
	return entries, nil
}

// ListWhosWho returns every entry ordered by name.
func (s *Store) ListWhosWho(ctx context.Context) ([]models.WhosWhoEntry, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	return s.queryWhosWho(ctx, `SELECT `+whosWhoColumns+` FROM `+whosWhoTable+` ORDER BY name`)
}

// ListWhosWhoByLetter returns entries whose name starts with the given
// letter, case-insensitively, ordered by name.
func (s *Store) ListWhosWhoByLetter(ctx context.Context, letter string) ([]models.WhosWhoEntry, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	query := `SELECT ` + whosWhoColumns + ` FROM ` + whosWhoTable +
		` WHERE name ILIKE $1 ORDER BY name`
	return s.queryWhosWho(ctx, query, escapeLike(letter)+"%")
}

// GetWhosWhoEntry returns one entry by id, or ErrNotFound.
func (s *Store) GetWhosWhoEntry(ctx context.Context, id int64) (*models.WhosWhoEntry, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	var e models.WhosWhoEntry
	query := `SELECT ` + whosWhoColumns + ` FROM ` + whosWhoTable + ` WHERE id = $1`
	err := s.pool.QueryRow(ctx, query, id).Scan(&e.ID, &e.Name, &e.Bio, &e.PhotoURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get whos who entry %d: %w", id, err)
	}
	return &e, nil
}

// WhosWhoLetters returns the sorted upper-case first letters that have at
// least one entry, for the A-Z index on the who's-who page.
func (s *Store) WhosWhoLetters(ctx context.Context) ([]string, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	rows, err := s.pool.Query(ctx, `SELECT name FROM `+whosWhoTable)
	if err != nil {
		return nil, fmt.Errorf("query whos who names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan whos who name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate whos who names: %w", err)
	}
	return lettersFromNames(names), nil
}

// lettersFromNames dedupes and sorts the upper-cased first letter of each
// non-empty name. The first rune is taken, not the first byte, so accented
// initials index correctly.
func lettersFromNames(names []string) []string {
	seen := make(map[string]bool)
	var letters []string
	for _, name := range names {
		r, _ := utf8.DecodeRuneInString(name)
		if r == utf8.RuneError {
			continue
		}
		letter := string(unicode.ToUpper(r))
		if !seen[letter] {
			seen[letter] = true
			letters = append(letters, letter)
		}
	}
	sort.Strings(letters)
	return letters
}

// escapeLike neutralizes the ILIKE wildcards in a user-supplied prefix.
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}

// CreateWhosWhoEntry inserts a new entry and fills in its generated id.
func (s *Store) CreateWhosWhoEntry(ctx context.Context, entry *models.WhosWhoEntry) error {
	if err := s.available(); err != nil {
		return err
	}
	query := `INSERT INTO ` + whosWhoTable + ` (name, bio, photo_url) VALUES ($1, $2, $3) RETURNING id`
	err := s.pool.QueryRow(ctx, query, entry.Name, entry.Bio, entry.PhotoURL).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("create whos who entry: %w", err)
	}
	return nil
}
