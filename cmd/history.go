package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/crumble/internal/ui/theme"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently earned points",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		events, err := svc.History(cmd.Context(), limit)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(w, theme.Hint.Render("No points earned yet."))
			return nil
		}
		for _, e := range events {
			fmt.Fprintf(w, "%s  %-12s %s\n",
				theme.Hint.Render(e.Timestamp.Local().Format("2006-01-02 15:04")),
				e.Award,
				theme.Coins.Render(fmt.Sprintf("+%d", e.Points)))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Number of entries to show (0 = all)")
}
