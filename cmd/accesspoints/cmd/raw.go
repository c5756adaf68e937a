package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rawCmd = &cobra.Command{
	Use:   "raw [device]",
	Short: "Print the scan tool's output without parsing it",
	Long: `Print the scan tool's output without parsing it. Attach this to bug
reports about access points that are missing or wrong.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := newManager(args).Output(cmd.Context())
		fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(rawCmd)
}
