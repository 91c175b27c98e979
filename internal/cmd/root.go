package cmd

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/KELiON/raycast-search-projects/internal/config"
	"github.com/KELiON/raycast-search-projects/internal/frecency"
	"github.com/KELiON/raycast-search-projects/internal/launcher"
	"github.com/KELiON/raycast-search-projects/internal/logging"
	"github.com/KELiON/raycast-search-projects/internal/project"
	"github.com/KELiON/raycast-search-projects/internal/tui"
)

var (
	// Version is set during build
	Version = "dev"
	// BuildTime is set during build
	BuildTime = "unknown"

	flagRoot string
	flagDB   string

	closeLog func() error
)

// rootCmd runs the interactive picker.
var rootCmd = &cobra.Command{
	Use:   "projects",
	Short: "Fuzzy-search project directories, ranked by frecency",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		closer, err := logging.Init(config.LogLevel())
		if err != nil {
			return fmt.Errorf("failed to init logging: %w", err)
		}
		closeLog = closer
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if closeLog != nil {
			_ = closeLog()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPicker()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagRoot, "root", "r", "", "Projects directory (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&flagDB, "db", "d", "", "Frecency database path (overrides config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(visitCmd)
	rootCmd.AddCommand(resetCmd)

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("projects version %s (built %s)\n", Version, BuildTime))
}

// app bundles the pieces every command needs.
type app struct {
	cfg    *config.Config
	lister *project.Lister
	store  *frecency.Store
	db     *frecency.DB
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	root := flagRoot
	if root == "" {
		root, err = cfg.GetProjectsDir()
		if err != nil {
			return nil, err
		}
	}
	if root == "" {
		return nil, errors.New("projects directory not configured (set projects_dir or pass --root)")
	}

	dbPath := flagDB
	if dbPath == "" {
		dbPath, err = cfg.GetDatabasePath()
		if err != nil {
			return nil, err
		}
	}

	db, err := frecency.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open frecency database: %w", err)
	}

	return &app{
		cfg:    cfg,
		lister: project.NewLister(root, cfg.ExcludedDirs),
		store:  frecency.NewStore(db),
		db:     db,
	}, nil
}

func (a *app) Close() {
	_ = a.db.Close()
}

func runPicker() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	watcher, err := project.NewWatcher()
	if err != nil {
		log.Warn().Err(err).Msg("live refresh disabled")
		watcher = nil
	} else {
		defer watcher.Close()
	}

	model := tui.NewModel(a.lister, a.store, launcher.New(a.cfg.Editor), watcher)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run picker: %w", err)
	}
	return nil
}
