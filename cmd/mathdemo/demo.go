package main

import (
	"github.com/spf13/cobra"

	"mathdemo/internal/demo"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the scripted demo of every operation",
		Long: `Run the scripted demo of every operation.

Computes 5 + 3, 10 - 4 and 15 / 3, then attempts 10 / 0. The division by
zero is logged as an error and the demo still completes successfully.`,
		Args: cobra.NoArgs,
		RunE: runDemo,
	}
}

func runDemo(cmd *cobra.Command, _ []string) error {
	_, err := demo.Run(cmd.Context(), demo.DefaultScript)
	return err
}
