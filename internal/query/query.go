// Package query turns the user's free text into the displayed project order.
//
// A query matches a name when its characters appear in the name in order,
// not necessarily adjacent; "abc" matches "a1b2c3". Matches are then
// reordered so exact name matches come first and literal substring matches
// second, with the incoming (frecency-ranked) order deciding everything else.
package query

import (
	"regexp"
	"sort"
	"strings"

	"github.com/KELiON/raycast-search-projects/internal/project"
)

// Split separates a typed query into the subdirectory to search in and the
// term to filter by. Everything before the last "/" is the subpath.
func Split(q string) (subpath, term string) {
	idx := strings.LastIndex(q, "/")
	if idx < 0 {
		return "", q
	}
	return q[:idx], q[idx+1:]
}

// Pattern compiles the case-insensitive subsequence pattern for term.
// The empty term compiles to a pattern matching every name.
func Pattern(term string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString("(?i)")
	for i, r := range term {
		if i > 0 {
			b.WriteString(".*")
		}
		b.WriteString(regexp.QuoteMeta(string(r)))
	}
	return regexp.MustCompile(b.String())
}

// Apply filters the frecency-ranked projects down to those matching term and
// reorders them: exact (case-insensitive) name matches first, names containing
// term as a literal substring next, then the prior ranked order. The sort is
// stable, so entries equal under those rules keep their frecency order.
func Apply(ranked []project.Project, term string) []project.Project {
	pattern := Pattern(term)
	lower := strings.ToLower(term)

	var matched []project.Project
	for _, p := range ranked {
		if pattern.MatchString(p.Name) {
			matched = append(matched, p)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		eqI := strings.EqualFold(matched[i].Name, term)
		eqJ := strings.EqualFold(matched[j].Name, term)
		if eqI != eqJ {
			return eqI
		}
		if eqI {
			return false
		}

		containsI := strings.Contains(strings.ToLower(matched[i].Name), lower)
		containsJ := strings.Contains(strings.ToLower(matched[j].Name), lower)
		if containsI != containsJ {
			return containsI
		}
		return false
	})
	return matched
}
