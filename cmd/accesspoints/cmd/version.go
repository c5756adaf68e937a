package cmd

import (
	"fmt"

	"github.com/dogeorg/accesspoints/pkg/system"
	"github.com/dogeorg/accesspoints/pkg/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Get accesspoints version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.GetRelease()
		info.Print(cmd.OutOrStdout())

		check, _ := cmd.Flags().GetBool("check")
		if !check {
			return nil
		}

		newer, err := system.GetNewerReleases(cmd.Context(), system.RELEASE_REPO, info.Release)
		if err != nil {
			return err
		}
		if len(newer) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "You are running the latest release.")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Newer releases: %v\n", newer)
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("check", false, "look for newer releases")
	rootCmd.AddCommand(versionCmd)
}
