package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvknap/internal/batch"
	"github.com/katalvlaran/lvknap/internal/textio"
	"github.com/katalvlaran/lvknap/knapsack"
)

func (a *app) batchCmd() *cobra.Command {
	var (
		input           string
		output          string
		workers         int
		exact           bool
		continueOnError bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Solve a YAML file of instances concurrently",
		Long: `Solves every instance of a YAML document:

  instances:
    - name: small
      precision: 0.2
      capacity: 50
      items: [[10, 60], [20, 100], [30, 120]]

Instances without a precision use KNAPSACK_PRECISION. One JSON line per
instance is written to --output, in input order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, closeInput, err := openInput(cmd, input)
			if err != nil {
				return err
			}
			defer closeInput()

			instances, err := textio.ReadBatch(r, a.cfg.Precision)
			if err != nil {
				return err
			}

			opts := a.cfg.Options()
			if exact {
				opts.Algo = knapsack.AlgoExactDP
			}
			runner := batch.NewRunner(workers, opts, &a.logger)
			runner.ContinueOnError = continueOnError

			results, runErr := runner.Run(cmd.Context(), instances)

			w, closeOutput, err := openOutput(cmd, output)
			if err != nil {
				return err
			}
			defer closeOutput()
			if err = batch.WriteReport(w, results); err != nil {
				return err
			}

			return runErr
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "YAML batch file, - for stdin")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "Report file, - for stdout")
	cmd.Flags().IntVarP(&workers, "workers", "w", a.cfg.Workers, "Concurrent solves")
	cmd.Flags().BoolVar(&exact, "exact", false, "Use the exact dynamic-programming solver")
	cmd.Flags().BoolVar(&continueOnError, "continue-on-error", false, "Record failed instances and keep going")

	return cmd
}

// openOutput resolves "-" to the command's stdout.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}
