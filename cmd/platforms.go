package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/crumble/internal/ghost"
)

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List social platform connections",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		list, err := svc.Platforms(cmd.Context())
		if err != nil {
			return err
		}
		for _, p := range list {
			fmt.Fprintln(cmd.OutOrStdout(), renderPlatform(p))
		}
		return nil
	},
}

var platformsConnectCmd = &cobra.Command{
	Use:   "connect <platform>",
	Short: "Mark a platform connected (credentials are not sent anywhere)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		p, err := svc.ConnectPlatform(cmd.Context(), args[0], ghost.Credentials{
			Username: username,
			Password: password,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderPlatform(p))
		return nil
	},
}

var platformsDisconnectCmd = &cobra.Command{
	Use:   "disconnect <platform>",
	Short: "Mark a platform disconnected",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		p, err := svc.DisconnectPlatform(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderPlatform(p))
		return nil
	},
}

func init() {
	platformsConnectCmd.Flags().String("username", "", "Account username (required)")
	platformsConnectCmd.Flags().String("password", "", "Account password (required, never stored)")
	_ = platformsConnectCmd.MarkFlagRequired("username")
	_ = platformsConnectCmd.MarkFlagRequired("password")

	platformsCmd.AddCommand(platformsConnectCmd)
	platformsCmd.AddCommand(platformsDisconnectCmd)
}
