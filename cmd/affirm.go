package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/crumble/internal/ui/theme"
)

var affirmCmd = &cobra.Command{
	Use:   "affirm",
	Short: "Read today's affirmation",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		out, err := svc.Affirmation(cmd.Context())
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, theme.Highlight.Render(out.Text))
		printAward(w, out.Award)
		return nil
	},
}
