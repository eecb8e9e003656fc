package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mathdemo/internal/config"
	"mathdemo/internal/observability"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

// app carries state shared by every subcommand for one invocation.
type app struct {
	cfg      *config.Config
	shutdown observability.ShutdownFunc

	configFile string
	logLevel   string
	logFormat  string
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := config.Load(config.Options{
		ConfigFile: a.configFile,
		Overrides: map[string]string{
			"log.level":  a.logLevel,
			"log.format": a.logFormat,
		},
	})
	if err != nil {
		return err
	}
	a.cfg = cfg

	shutdown, err := initObservability(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("init observability: %w", err)
	}
	a.shutdown = shutdown

	return nil
}

func (a *app) close() {
	if a.shutdown == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.shutdown(ctx); err != nil {
		observability.Logger.Warn("telemetry shutdown failed", zap.Error(err))
	}
	a.shutdown = nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "mathdemo",
		Short: "Run arithmetic operations and log the results",
		Long: `mathdemo exercises a small arithmetic library (add, subtract, divide).

Without a subcommand it runs the demo script, logging each result and
reporting division by zero without stopping.

Configuration is read from an optional config file, then MATHDEMO_*
environment variables (a .env file is loaded when present), then flags.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              runDemo,
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "path to a config file (yaml, json or toml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log encoding: json or console")

	root.AddCommand(
		newDemoCmd(),
		newCalcCmd(),
		newServeCmd(a),
		newVersionCmd(),
	)

	return root
}

// execute runs the CLI with args and tears down observability afterwards.
// Errors are reported on errOut by cobra and returned for the exit status.
func execute(ctx context.Context, args []string, out, errOut io.Writer) error {
	a := &app{}
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	return root.ExecuteContext(ctx)
}
