// Package batch solves many knapsack instances concurrently and reports
// one JSON line per instance.
//
// Each instance is an independent single-threaded knapsack.Solve call; the
// only shared state is the result slot each goroutine owns. Cancelling the
// context stops new solves from starting, a solve already running finishes.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvknap/internal/textio"
	"github.com/katalvlaran/lvknap/knapsack"
)

// Result is the outcome of one instance. Error is empty on success.
type Result struct {
	RunID       string  `json:"run_id"`
	Name        string  `json:"name"`
	Algo        string  `json:"algo"`
	Precision   float64 `json:"precision"`
	TotalWeight int64   `json:"total_weight"`
	TotalCost   int64   `json:"total_cost"`
	Indices     []int   `json:"indices"`
	Nodes       int     `json:"nodes,omitempty"`
	ElapsedMS   int64   `json:"elapsed_ms"`
	Error       string  `json:"error,omitempty"`
}

// Runner holds the batch policy.
type Runner struct {
	Workers         int              // concurrent solves, at least 1
	ContinueOnError bool             // keep going after a failed instance
	Options         knapsack.Options // Epsilon is replaced per instance
	Logger          *zerolog.Logger
}

// NewRunner returns a Runner with the given worker count and options,
// logging to logger.
func NewRunner(workers int, opts knapsack.Options, logger *zerolog.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}

	return &Runner{Workers: workers, Options: opts, Logger: logger}
}

// Run solves every instance and returns the results in input order.
//
// With ContinueOnError the returned error is nil and failures are recorded
// in Result.Error; without it the first failure cancels the remaining
// instances and is returned. A cancelled ctx is always returned as an error.
// Every instance gets a Result: those that never ran carry a "not run" error.
func (r *Runner) Run(ctx context.Context, instances []textio.Instance) ([]Result, error) {
	runID := uuid.NewString()
	logger := r.Logger.With().Str("run_id", runID).Logger()
	results := make([]Result, len(instances))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Workers)

	logger.Info().Int("instances", len(instances)).Int("workers", r.Workers).Msg("batch started")
	launched := 0
	for i := range instances {
		if gctx.Err() != nil {
			break
		}
		launched++
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = r.notRun(runID, instances[i], context.Cause(gctx))
				return err
			}
			results[i] = r.solveOne(runID, instances[i], logger)
			if results[i].Error != "" && !r.ContinueOnError {
				return fmt.Errorf("instance %s: %s", instances[i].Name, results[i].Error)
			}
			return nil
		})
	}
	err := g.Wait()
	for i := launched; i < len(instances); i++ {
		results[i] = r.notRun(runID, instances[i], context.Cause(gctx))
	}
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		logger.Error().Err(err).Msg("batch stopped")
		return results, err
	}

	logger.Info().Msg("batch finished")
	return results, nil
}

// notRun is the Result of an instance skipped because the batch stopped.
func (r *Runner) notRun(runID string, inst textio.Instance, cause error) Result {
	return Result{
		RunID:     runID,
		Name:      inst.Name,
		Algo:      r.Options.Algo.String(),
		Precision: inst.Precision,
		Error:     fmt.Sprintf("not run: batch stopped (%v)", cause),
	}
}

// solveOne runs a single instance and converts the outcome into a Result.
func (r *Runner) solveOne(runID string, inst textio.Instance, logger zerolog.Logger) Result {
	opts := r.Options
	opts.Epsilon = inst.Precision

	res := Result{
		RunID:     runID,
		Name:      inst.Name,
		Algo:      opts.Algo.String(),
		Precision: inst.Precision,
	}

	start := time.Now()
	sol, stats, err := knapsack.SolveWithStats(inst.Items, inst.Capacity, opts)
	res.ElapsedMS = time.Since(start).Milliseconds()
	if err != nil {
		res.Error = err.Error()
		logger.Warn().Err(err).Str("instance", inst.Name).Msg("solve failed")
		return res
	}

	res.TotalWeight = sol.TotalWeight
	res.TotalCost = sol.TotalCost
	res.Indices = sol.Indices
	res.Nodes = stats.NodesCreated
	logger.Debug().
		Str("instance", inst.Name).
		Int64("total_cost", sol.TotalCost).
		Int("nodes", stats.NodesCreated).
		Int("peak_frontier", stats.PeakFrontier).
		Msg("solved")
	return res
}

// WriteReport writes results as JSON lines.
func WriteReport(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	for i := range results {
		if err := enc.Encode(results[i]); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}
