package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/crumble/internal/ghost"
)

var ghostCmd = &cobra.Command{
	Use:   "ghost",
	Short: "Show ghost mode settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		s, err := svc.GhostSettings(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderGhost(s))
		return nil
	},
}

func ghostToggleCmd(use string, on bool) *cobra.Command {
	return &cobra.Command{
		Use:       use + " <toggle>",
		Short:     fmt.Sprintf("Turn a ghost mode toggle %s", use),
		Args:      cobra.ExactArgs(1),
		ValidArgs: toggleNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := ghost.ParseToggle(args[0])
			if err != nil {
				return err
			}

			svc, closeStore, err := openService(cmd)
			if err != nil {
				return err
			}
			defer closeStore()

			s, err := svc.SetGhostToggle(cmd.Context(), t, on)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderGhost(s))
			return nil
		},
	}
}

func toggleNames() []string {
	var names []string
	for _, t := range ghost.AllToggles() {
		names = append(names, string(t))
	}
	return names
}

func init() {
	ghostCmd.AddCommand(ghostToggleCmd("on", true))
	ghostCmd.AddCommand(ghostToggleCmd("off", false))
}
