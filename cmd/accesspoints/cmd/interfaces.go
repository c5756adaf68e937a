package cmd

import (
	"github.com/spf13/cobra"
)

var interfacesCmd = &cobra.Command{
	Use:   "interfaces",
	Short: "List wireless interfaces (Linux only)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ifaces, err := newManager(nil).Interfaces()
		if err != nil {
			return err
		}
		return printInterfaces(cmd.OutOrStdout(), cfg.Format, ifaces)
	},
}

func init() {
	rootCmd.AddCommand(interfacesCmd)
}
