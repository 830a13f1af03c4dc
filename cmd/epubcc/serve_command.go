package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/maruwtc/epubcc/internal/config"
	"github.com/maruwtc/epubcc/internal/server"
)

func newServeCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP conversion service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configFlag)
			if err != nil {
				return err
			}
			logger := newLogger(cfg.Logging.Level)

			transcoder, err := newTranscoder(cfg, logger, 0, "")
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.New(cfg, transcoder, logger).ListenAndServe(ctx)
		},
	}
}
