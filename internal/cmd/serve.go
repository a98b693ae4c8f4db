package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vultisig/addresscodec/internal/config"
	"github.com/vultisig/addresscodec/internal/server"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the codec over HTTP",
		Long:  `Serve the codec over HTTP until interrupted. Metrics are exposed on /metrics.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.NewServer(
				opts.config.Server.Listen,
				opts.config.Server.ShutdownTimeout,
				logrus.WithField("service", "server"),
			)
			return srv.Start(ctx)
		},
	}
	serveCmd.Flags().String("listen", ":8080", "Address to listen on")
	_ = opts.viper.BindPFlag(config.KeyServerListen, serveCmd.Flags().Lookup("listen"))
	return serveCmd
}
