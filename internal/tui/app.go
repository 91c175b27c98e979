package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/KELiON/raycast-search-projects/internal/frecency"
	"github.com/KELiON/raycast-search-projects/internal/launcher"
	"github.com/KELiON/raycast-search-projects/internal/project"
	"github.com/KELiON/raycast-search-projects/internal/query"
)

const launchTimeout = 5 * time.Second

// Model is the picker application state.
type Model struct {
	input textinput.Model
	keys  KeyMap

	lister   *project.Lister
	ranker   frecency.Ranker
	launcher *launcher.Launcher
	watcher  *project.Watcher

	// subpath is the directory component of the current query; ranked is
	// the frecency-sorted listing for it, visible the filtered view.
	subpath string
	ranked  []project.Project
	visible []project.Project
	cursor  int

	width  int
	height int

	status string
	err    error
}

// NewModel creates the picker model. watcher may be nil to disable live
// refresh of the listing.
func NewModel(lister *project.Lister, ranker frecency.Ranker, l *launcher.Launcher, watcher *project.Watcher) Model {
	ti := textinput.New()
	ti.Placeholder = "Search projects..."
	ti.Focus()
	ti.CharLimit = 0

	return Model{
		input:    ti,
		keys:     DefaultKeyMap(),
		lister:   lister,
		ranker:   ranker,
		launcher: l,
		watcher:  watcher,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	m.watchCurrent()
	return tea.Batch(
		textinput.Blink,
		m.loadProjects(""),
		m.waitForChange(),
	)
}

// loadProjects lists and frecency-sorts the projects under subpath.
func (m Model) loadProjects(subpath string) tea.Cmd {
	lister, ranker := m.lister, m.ranker
	return func() tea.Msg {
		ranked, err := ranker.Sort(lister.List(subpath))
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ProjectsLoadedMsg{Subpath: subpath, Projects: ranked}
	}
}

// waitForChange waits for the next directory mutation.
func (m Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	changes := m.watcher.Changes()
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return DirChangedMsg{}
	}
}

func (m *Model) watchCurrent() {
	if m.watcher != nil {
		m.watcher.Watch(m.lister.Dir(m.subpath))
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 6

	case ProjectsLoadedMsg:
		// A listing for a subpath the user already left is stale.
		if msg.Subpath != m.subpath {
			return m, nil
		}
		m.ranked = msg.Projects
		m.refilter()

	case DirChangedMsg:
		return m, tea.Batch(m.loadProjects(m.subpath), m.waitForChange())

	case EditorLaunchedMsg:
		return m, tea.Quit

	case RankingResetMsg:
		m.status = "Ranking reset: " + msg.Project.Name
		return m, m.loadProjects(m.subpath)

	case StatusMsg:
		m.status = msg.Text
		m.err = nil

	case ErrorMsg:
		m.err = msg.Err
	}

	return m, nil
}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if p, ok := m.selected(); ok {
			return m, m.openProject(p)
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		if p, ok := m.selected(); ok {
			m.input.SetValue(m.descendQuery(p))
			m.input.CursorEnd()
			return m.afterQueryChange()
		}
		return m, nil

	case key.Matches(msg, m.keys.Reveal):
		if p, ok := m.selected(); ok {
			return m, m.revealProject(p)
		}
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if p, ok := m.selected(); ok {
			return m, m.copyPath(p)
		}
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		if p, ok := m.selected(); ok {
			return m, m.resetRanking(p)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	model, queryCmd := m.afterQueryChange()
	return model, tea.Batch(cmd, queryCmd)
}

// afterQueryChange recomputes the view for the current query, re-listing
// when the subdirectory component changed.
func (m Model) afterQueryChange() (Model, tea.Cmd) {
	m.err = nil
	subpath, _ := query.Split(m.input.Value())
	if subpath != m.subpath {
		m.subpath = subpath
		m.watchCurrent()
		m.refilter()
		return m, m.loadProjects(subpath)
	}
	m.refilter()
	return m, nil
}

// refilter recomputes the visible list from the ranked one.
func (m *Model) refilter() {
	_, term := query.Split(m.input.Value())
	m.visible = query.Apply(m.ranked, term)
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) selected() (project.Project, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return project.Project{}, false
	}
	return m.visible[m.cursor], true
}

// descendQuery rewrites the query to search inside p.
func (m Model) descendQuery(p project.Project) string {
	if m.subpath == "" {
		return p.Name + "/"
	}
	return m.subpath + "/" + p.Name + "/"
}

// openProject records the visit and starts the editor. The spawn error, if
// any, comes back as an ErrorMsg so the user sees why nothing opened.
func (m Model) openProject(p project.Project) tea.Cmd {
	ranker, l := m.ranker, m.launcher
	return func() tea.Msg {
		if err := ranker.Visit(p); err != nil {
			log.Warn().Err(err).Str("path", p.Path).Msg("failed to record visit")
		}
		ctx, cancel := context.WithTimeout(context.Background(), launchTimeout)
		defer cancel()
		if err := l.Open(ctx, p.Path); err != nil {
			return ErrorMsg{Err: fmt.Errorf("open %s: %w", p.Name, err)}
		}
		return EditorLaunchedMsg{Project: p}
	}
}

func (m Model) revealProject(p project.Project) tea.Cmd {
	return func() tea.Msg {
		if err := launcher.Reveal(p.Path); err != nil {
			return ErrorMsg{Err: fmt.Errorf("reveal %s: %w", p.Name, err)}
		}
		return StatusMsg{Text: "Opened in file browser: " + p.Name}
	}
}

func (m Model) copyPath(p project.Project) tea.Cmd {
	return func() tea.Msg {
		if err := launcher.CopyPath(p.Path); err != nil {
			return ErrorMsg{Err: fmt.Errorf("copy path: %w", err)}
		}
		return StatusMsg{Text: "Copied: " + p.Path}
	}
}

func (m Model) resetRanking(p project.Project) tea.Cmd {
	ranker := m.ranker
	return func() tea.Msg {
		if err := ranker.ResetRanking(p); err != nil {
			return ErrorMsg{Err: fmt.Errorf("reset ranking: %w", err)}
		}
		return RankingResetMsg{Project: p}
	}
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Search Projects"))
	b.WriteString("\n")
	b.WriteString(InputStyle.Render(m.input.View()))
	b.WriteString("\n\n")
	b.WriteString(m.renderList())
	b.WriteString(m.renderStatus())

	return b.String()
}

func (m Model) renderList() string {
	if len(m.visible) == 0 {
		return HelpStyle.Render("  No projects found") + "\n"
	}

	maxRows := m.height - 8
	if maxRows < 1 {
		maxRows = 10
	}
	start := 0
	if m.cursor >= maxRows {
		start = m.cursor - maxRows + 1
	}
	end := start + maxRows
	if end > len(m.visible) {
		end = len(m.visible)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		p := m.visible[i]
		if i == m.cursor {
			b.WriteString(ItemSelectedStyle.Render(p.Name))
			b.WriteString(" ")
			b.WriteString(ItemPathStyle.Render(p.Path))
		} else {
			b.WriteString(ItemStyle.Render(p.Name))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderStatus() string {
	if m.err != nil {
		return StatusErrorStyle.Render("Error: "+m.err.Error()) + "\n"
	}

	var b strings.Builder
	count := fmt.Sprintf("%d projects", len(m.visible))
	if len(m.visible) == 1 {
		count = "1 project"
	}
	if m.status != "" {
		count += "  " + m.status
	}
	b.WriteString(StatusStyle.Render(count))
	b.WriteString("\n")

	help := []string{}
	for _, binding := range []key.Binding{m.keys.Open, m.keys.Search, m.keys.Reveal, m.keys.Copy, m.keys.Reset, m.keys.Quit} {
		h := binding.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString(HelpStyle.Render(strings.Join(help, " | ")))
	return b.String()
}
