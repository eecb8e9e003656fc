package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mathdemo/internal/calculator"
)

func newCalcCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "calc <add|subtract|divide> <a> <b>",
		Short: "Run a single operation and print the result",
		Long: `Run a single operation and print the result.

Examples:
  # 5 + 3
  mathdemo calc add 5 3

  # Negative operands need -- to stop flag parsing
  mathdemo calc subtract -- -2 7

  # Output as JSON
  mathdemo calc divide 15 3 --json`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := calculator.ParseOperation(args[0])
			if err != nil {
				return err
			}

			a, err := parseOperand("a", args[1])
			if err != nil {
				return err
			}
			b, err := parseOperand("b", args[2])
			if err != nil {
				return err
			}

			result, err := calculator.Compute(cmd.Context(), op, a, b)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(calculator.CalcResponse{Operation: op, A: a, B: b, Result: result})
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(result, 'g', -1, 64))
			return err
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	return cmd
}

func parseOperand(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("operand %s: %q is not a number", name, s)
	}
	return v, nil
}
