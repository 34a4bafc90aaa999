package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/crumble/internal/rewards"
	"github.com/abhisek/crumble/internal/ui/theme"
)

var rewardsCmd = &cobra.Command{
	Use:   "rewards",
	Short: "List rewards and their unlock state",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		list, err := svc.Rewards(cmd.Context())
		if err != nil {
			return err
		}
		for _, r := range list {
			fmt.Fprintln(cmd.OutOrStdout(), renderReward(r))
		}
		return nil
	},
}

var rewardsClaimCmd = &cobra.Command{
	Use:   "claim <reward-id>",
	Short: "Claim an unlocked reward",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("reward id %q is not a number", args[0])
		}

		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		r, err := svc.ClaimReward(cmd.Context(), id)
		switch {
		case errors.Is(err, rewards.ErrNotUnlocked):
			return fmt.Errorf("%s needs %d points", r.Title, r.PointsCost)
		case errors.Is(err, rewards.ErrAlreadyClaimed):
			return fmt.Errorf("%s was already claimed", r.Title)
		case err != nil:
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), theme.Done.Render("Claimed: ")+r.Title)
		return nil
	},
}

func init() {
	rewardsCmd.AddCommand(rewardsClaimCmd)
}
