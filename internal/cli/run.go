package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func (a *app) newRunCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "run PROBLEM",
		Short: "Run every applicable operation on a problem",
		Long: `Run the operations listed under "ops" in the problem file, or all of them
when it lists none. Operations that do not apply to the matrix are reported
as skipped. With --watch the problem is evaluated again each time the file
is saved, until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			eval := func() error {
				rep, err := a.evaluate(path)
				if err != nil {
					return err
				}

				return a.render(cmd.OutOrStdout(), rep)
			}
			if !watch {
				return eval()
			}

			return watchProblem(cmd.Context(), path, a.log, func() {
				if err := eval(); err != nil {
					a.log.Error().Err(err).Str("problem", path).Msg("evaluation failed")
				}
			})
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-run when the problem file changes")

	return cmd
}

// watchProblem calls fn once the watch is in place and again after every
// write to path, until ctx is done.
func watchProblem(ctx context.Context, path string, log zerolog.Logger, fn func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory so editors that save by rename are still seen.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch directory: %w", err)
	}
	log.Info().Str("problem", path).Msg("watching for changes")
	fn()

	name := filepath.Base(path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			log.Debug().Str("event", event.Op.String()).Str("file", event.Name).Msg("problem changed")
			fn()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("file watcher error")
		}
	}
}
