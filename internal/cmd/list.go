package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KELiON/raycast-search-projects/internal/query"
)

// listCmd prints the ranked listing without the UI, mostly useful for
// scripting and for inspecting what the picker would show.
var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "Print projects in picker order",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		var q string
		if len(args) == 1 {
			q = args[0]
		}
		subpath, term := query.Split(q)

		ranked, err := a.store.Sort(a.lister.List(subpath))
		if err != nil {
			return err
		}

		for _, p := range query.Apply(ranked, term) {
			fmt.Printf("%s\t%s\n", p.Name, p.Path)
		}
		return nil
	},
}
