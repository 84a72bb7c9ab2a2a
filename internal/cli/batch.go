package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlalg/internal/problem"
)

// ErrBatchFailed is returned by batch when at least one problem failed.
var ErrBatchFailed = errors.New("batch: problems failed")

type batchResult struct {
	path string
	rep  *problem.Report
	err  error
}

func (a *app) newBatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch PROBLEM...",
		Short: "Evaluate many problem files concurrently",
		Long: `Evaluate every problem file like "run" does, using up to --workers
problems at a time. Reports are printed in argument order. A failing problem
does not stop the others; the command fails if any of them did.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			results := a.evaluateAll(cmd, args)

			failed := 0
			out := cmd.OutOrStdout()
			for _, r := range results {
				if r.err != nil {
					failed++
					a.log.Warn().Err(r.err).Str("problem", r.path).Msg("problem failed")
					_, _ = fmt.Fprintf(out, "error: %v\n", r.err)

					continue
				}
				if err := a.render(out, r.rep); err != nil {
					return err
				}
			}
			a.log.Info().
				Int("problems", len(results)).
				Int("failed", failed).
				Int("workers", a.cfg.Workers).
				Dur("elapsed", time.Since(start)).
				Msg("batch done")
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", ErrBatchFailed, failed, len(results))
			}

			return nil
		},
	}
}

// evaluateAll evaluates paths with at most cfg.Workers in flight. Each
// problem is evaluated on a single goroutine.
func (a *app) evaluateAll(cmd *cobra.Command, paths []string) []batchResult {
	results := make([]batchResult, len(paths))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(a.cfg.Workers)
	for i, path := range paths {
		g.Go(func() error {
			results[i].path = path
			if err := ctx.Err(); err != nil {
				results[i].err = err

				return nil
			}
			results[i].rep, results[i].err = a.evaluate(path)

			return nil
		})
	}
	_ = g.Wait()

	return results
}
