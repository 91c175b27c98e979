package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/KELiON/raycast-search-projects/internal/project"
)

func projectArg(arg string) (project.Project, error) {
	abs, err := filepath.Abs(arg)
	if err != nil {
		return project.Project{}, err
	}
	return project.Project{ID: abs, Name: filepath.Base(abs), Path: abs}, nil
}

var visitCmd = &cobra.Command{
	Use:   "visit <path>",
	Short: "Record a visit for a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		p, err := projectArg(args[0])
		if err != nil {
			return err
		}
		return a.store.Visit(p)
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset <path>",
	Short: "Clear a project's recorded visits",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		p, err := projectArg(args[0])
		if err != nil {
			return err
		}
		return a.store.ResetRanking(p)
	},
}
