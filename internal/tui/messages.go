package tui

import (
	"github.com/KELiON/raycast-search-projects/internal/project"
)

// ProjectsLoadedMsg carries a fresh ranked listing. Subpath identifies the
// directory the listing was computed for; results for a subpath the user has
// already navigated away from are dropped.
type ProjectsLoadedMsg struct {
	Subpath  string
	Projects []project.Project
}

// DirChangedMsg indicates the watched directory's contents changed.
type DirChangedMsg struct{}

// EditorLaunchedMsg indicates the editor process was started.
type EditorLaunchedMsg struct {
	Project project.Project
}

// RankingResetMsg indicates a project's recorded visits were cleared.
type RankingResetMsg struct {
	Project project.Project
}

// StatusMsg carries a transient status-line notice.
type StatusMsg struct {
	Text string
}

// ErrorMsg represents an error surfaced on the status line.
type ErrorMsg struct {
	Err error
}
