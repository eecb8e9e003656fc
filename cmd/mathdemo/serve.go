package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mathdemo/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator HTTP API",
		Long: `Serve the calculator HTTP API.

Endpoints:
  GET  /health
  GET  /metrics
  POST /calculator/{add,subtract,divide}   body: {"a": <number>, "b": <number>}

Stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			addr := fmt.Sprintf(":%d", a.cfg.Server.Port)
			return server.New(addr, a.cfg.Server.ShutdownTimeout).Run(ctx)
		},
	}
}
