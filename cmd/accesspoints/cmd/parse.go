package cmd

import (
	"fmt"
	"io"
	"os"

	network_wifi "github.com/dogeorg/accesspoints/pkg/system/network/wifi"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <tool> [file]",
	Short: "Parse saved scan tool output",
	Long: `Parse output saved from airport, netsh, nmcli or iwlist, read from file
or from stdin, without running anything. For example:

  nmcli -t -f ssid,bssid,signal,security device wifi list > scan.txt
  accesspoints parse nmcli scan.txt`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		variant, err := network_wifi.ParseVariant(args[0])
		if err != nil {
			return fmt.Errorf("%w: %q", err, args[0])
		}

		var raw []byte
		if len(args) == 2 {
			raw, err = os.ReadFile(args[1])
		} else {
			raw, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return err
		}

		parsed := variant.Parser().Parse(network_wifi.DecodeOutput(raw))
		for _, d := range parsed.Diagnostics {
			logger.WithFields(logrus.Fields{
				"variant": variant.String(),
				"line":    d.Line,
				"text":    d.Text,
			}).WithError(d.Err).Warn("skipping unparseable scan output")
		}

		if cfg.Count {
			fmt.Fprintln(cmd.OutOrStdout(), len(parsed.AccessPoints))
			return nil
		}
		return printAccessPoints(cmd.OutOrStdout(), cfg.Format, parsed.AccessPoints)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
