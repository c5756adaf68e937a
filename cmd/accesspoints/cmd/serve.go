package cmd

import (
	"os/signal"
	"syscall"

	"github.com/dogeorg/accesspoints/pkg/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve scan results over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		m := newManager(nil)
		host := web.HostInfo{
			Hostname: m.Prober.Hostname(ctx),
			OS:       m.Prober.HostOS(ctx),
		}

		api := web.RESTAPI(cfg.Serve, m, host, logger)
		logger.WithField("addr", api.Addr()).Info("starting access point API")
		return api.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("bind", "127.0.0.1", "address to listen on")
	serveCmd.Flags().Int("port", 8080, "port to listen on")
	serveCmd.Flags().Int("max-conns", 16, "maximum concurrent connections")

	bindFlag("serve.bind", serveCmd.Flags().Lookup("bind"))
	bindFlag("serve.port", serveCmd.Flags().Lookup("port"))
	bindFlag("serve.max_conns", serveCmd.Flags().Lookup("max-conns"))

	rootCmd.AddCommand(serveCmd)
}
