package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frankyi-gh/aplcheck/internal/buildinfo"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show build and server information",
	RunE: func(cmd *cobra.Command, args []string) error {
		local := buildinfo.GetBuildInfo()
		fmt.Printf("Client: %s (%s, commit %s)\n", local.Service, local.Version, local.CommitHash)

		cli, err := getClient()
		if err != nil {
			// no server configured: local info only
			return nil
		}

		remote, err := cli.About(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetching server info: %w", err)
		}
		fmt.Printf("Server: %s (%s, commit %s)\n", remote.Service, remote.Version, remote.CommitHash)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
