package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvknap/internal/config"
	"github.com/katalvlaran/lvknap/internal/logger"
	"github.com/katalvlaran/lvknap/internal/textio"
	"github.com/katalvlaran/lvknap/knapsack"
)

// app carries the loaded config, overridden by flags, and the logger built
// from it before any command runs.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	a := &app{cfg: cfg, logger: zerolog.Nop()}

	var (
		input     string
		precision float64
		exact     bool
		stats     bool
	)

	rootCmd := &cobra.Command{
		Use:   "knapsack",
		Short: "Approximate 0/1 knapsack solver",
		Long: `knapsack reads an instance and prints a selection whose cost is within
a factor (1-precision) of the optimum, provided the most valuable item fits
on its own.

Input (whitespace separated): precision, capacity, then one "weight cost"
pair per item. Items are numbered from 1 in input order.

Output: "total_weight total_cost" followed by one selected index per line.

Environment variables:
  KNAPSACK_PRECISION        default precision for batch instances (default: 0.1)
  KNAPSACK_MAX_NODES        search node limit, 0 = unlimited
  KNAPSACK_MAX_FRONTIER     frontier size limit, 0 = unlimited
  KNAPSACK_MAX_TABLE_CELLS  exact solver table limit
  KNAPSACK_WORKERS          batch workers (default: 4)
  KNAPSACK_LOG_LEVEL        debug, info, warn, error (default: info)
  KNAPSACK_LOG_FORMAT       console or json (default: console)`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.LogFormat != "console" && a.cfg.LogFormat != "json" {
				return fmt.Errorf("invalid --log-format %q, want console or json", a.cfg.LogFormat)
			}
			a.logger = logger.New(a.cfg.LogLevel, a.cfg.LogFormat, cmd.ErrOrStderr())
			return nil
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var override *float64
			if cmd.Flags().Changed("precision") {
				override = &precision
			}
			return a.runSolve(cmd, input, override, exact, stats)
		},
	}

	bindConfigFlags(rootCmd.PersistentFlags(), cfg)
	addInputFlag(rootCmd.Flags(), &input)
	rootCmd.Flags().Float64VarP(&precision, "precision", "p", 0, "Override the precision read from the input")
	rootCmd.Flags().BoolVar(&exact, "exact", false, "Use the exact dynamic-programming solver")
	rootCmd.Flags().BoolVar(&stats, "stats", false, "Log branch-and-bound search statistics")
	// The exact solver has no search to report on.
	rootCmd.MarkFlagsMutuallyExclusive("exact", "stats")

	rootCmd.AddCommand(a.exactCmd())
	rootCmd.AddCommand(a.batchCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// bindConfigFlags lets flags override the environment configuration in place.
func bindConfigFlags(fs *pflag.FlagSet, cfg *config.Config) {
	fs.IntVar(&cfg.MaxNodes, "max-nodes", cfg.MaxNodes, "Search node limit, 0 = unlimited")
	fs.IntVar(&cfg.MaxFrontier, "max-frontier", cfg.MaxFrontier, "Frontier size limit, 0 = unlimited")
	fs.Int64Var(&cfg.MaxTableCells, "max-table-cells", cfg.MaxTableCells, "Exact solver table limit")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: console or json")
}

func addInputFlag(fs *pflag.FlagSet, input *string) {
	fs.StringVarP(input, "input", "i", "-", "Instance file, - for stdin")
}

func (a *app) exactCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "exact",
		Short: "Solve an instance exactly",
		Long:  "Solves with the O(n*capacity) dynamic program. The precision in the input is read and ignored.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSolve(cmd, input, nil, true, false)
		},
	}
	addInputFlag(cmd.Flags(), &input)

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

func (a *app) runSolve(cmd *cobra.Command, input string, precision *float64, exact, stats bool) error {
	r, closeInput, err := openInput(cmd, input)
	if err != nil {
		return err
	}
	defer closeInput()

	inst, err := textio.ReadInstance(r)
	if err != nil {
		return err
	}

	opts := a.cfg.Options()
	opts.Epsilon = inst.Precision
	if precision != nil {
		opts.Epsilon = *precision
	}
	if exact {
		opts.Algo = knapsack.AlgoExactDP
	}

	a.logger.Debug().
		Str("algo", opts.Algo.String()).
		Float64("precision", opts.Epsilon).
		Int64("capacity", inst.Capacity).
		Int("items", len(inst.Items)).
		Msg("solving")

	sol, st, err := knapsack.SolveWithStats(inst.Items, inst.Capacity, opts)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	if stats {
		a.logger.Info().
			Float64("scale", st.Scale).
			Int64("scaled_value", st.ScaledValue).
			Int("nodes_created", st.NodesCreated).
			Int("nodes_expanded", st.NodesExpanded).
			Int("nodes_pruned", st.NodesPruned).
			Int("peak_frontier", st.PeakFrontier).
			Msg("search stats")
	}

	return textio.WriteSolution(cmd.OutOrStdout(), sol)
}

// openInput resolves "-" to the command's stdin.
func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}
