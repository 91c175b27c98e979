// Package frecency ranks projects by how often and how recently they were
// opened, falling back to name order for projects never opened at all.
package frecency

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/KELiON/raycast-search-projects/internal/project"
)

// Ranker orders projects by recorded usage.
type Ranker interface {
	Sort(projects []project.Project) ([]project.Project, error)
	Visit(p project.Project) error
	ResetRanking(p project.Project) error
}

// Store is the SQLite-backed Ranker.
type Store struct {
	db       *DB
	collator *collate.Collator
	now      func() time.Time
}

// NewStore creates a Store over db.
func NewStore(db *DB) *Store {
	return &Store{
		db:       db,
		collator: collate.New(language.Und),
		now:      time.Now,
	}
}

// Visit records a usage event for the project's path.
func (s *Store) Visit(p project.Project) error {
	_, err := s.db.Exec(
		`INSERT INTO visits (id, path, visited_at) VALUES (?, ?, ?)`,
		uuid.New().String(), p.Path, s.now().Unix(),
	)
	return err
}

// ResetRanking clears all recorded visits for the project's path.
func (s *Store) ResetRanking(p project.Project) error {
	_, err := s.db.Exec(`DELETE FROM visits WHERE path = ?`, p.Path)
	return err
}

// Sort orders projects by frecency score, highest first. Projects with no
// recorded visits follow the scored ones, and all ties are broken by
// locale-aware comparison of the raw name, ascending.
func (s *Store) Sort(projects []project.Project) ([]project.Project, error) {
	scores, err := s.scores()
	if err != nil {
		return nil, err
	}

	out := make([]project.Project, len(projects))
	copy(out, projects)

	sort.SliceStable(out, func(i, j int) bool {
		si, sj := scores[out[i].Path], scores[out[j].Path]
		if si != sj {
			return si > sj
		}
		return s.collator.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out, nil
}

// scores aggregates the visit log into a score per path.
func (s *Store) scores() (map[string]float64, error) {
	rows, err := s.db.Query(`SELECT path, COUNT(*), MAX(visited_at) FROM visits GROUP BY path`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	now := s.now()
	scores := make(map[string]float64)
	for rows.Next() {
		var path string
		var count int
		var last int64
		if err := rows.Scan(&path, &count, &last); err != nil {
			return nil, err
		}
		scores[path] = float64(count) * recencyWeight(now.Sub(time.Unix(last, 0)))
	}
	return scores, rows.Err()
}

// recencyWeight buckets the age of the most recent visit. The exact numbers
// only matter relative to each other: recently opened projects outrank
// equally-visited stale ones.
func recencyWeight(age time.Duration) float64 {
	switch {
	case age <= 24*time.Hour:
		return 4
	case age <= 7*24*time.Hour:
		return 2
	case age <= 30*24*time.Hour:
		return 1.5
	default:
		return 1
	}
}
