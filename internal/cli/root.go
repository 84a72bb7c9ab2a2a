// Package cli provides the lvlalg command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlalg/internal/config"
	"github.com/katalvlaran/lvlalg/internal/problem"
	"github.com/katalvlaran/lvlalg/internal/render"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// app is the state shared by the commands of one root command.
type app struct {
	cfgFile string
	cfg     *config.Config
	log     zerolog.Logger
}

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "lvlalg",
		Short: "lvlalg - linear algebra over arbitrary fields",
		Long: `lvlalg evaluates linear-algebra problems described in YAML files.

Matrices can be taken over the reals, the complex numbers, the rationals,
GF(2) or a prime field GF(p). Supported operations are rank, determinant,
inverse, null space, linear systems and the Jordan form of nilpotent
matrices.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(a.cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			a.cfg = cfg

			lvl, _ := cfg.Level()
			a.log = newLogger(cmd.ErrOrStderr(), lvl)
			if cfg.File != "" {
				a.log.Debug().Str("file", cfg.File).Msg("config loaded")
			}
			cmd.SetContext(a.log.WithContext(cmd.Context()))

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: ./"+config.DefaultFile+")")
	pf.String("field", "", "default field when a problem omits it (real|complex|rational|gf2|modp)")
	pf.Uint64("modulus", 0, "default prime modulus for the modp field")
	pf.Float64("epsilon", 0, "default tolerance for real and complex entries")
	pf.StringP("output", "o", "", "output format (table|plain)")
	pf.String("log-level", "", "log level (debug|info|warn|error)")
	pf.Int("workers", 0, "concurrent problems for batch")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.Outputs, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("field", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return problem.Fields, cobra.ShellCompDirectiveNoFileComp
	})

	for _, op := range opCommands {
		rootCmd.AddCommand(a.newOpCommand(op))
	}
	rootCmd.AddCommand(a.newRunCommand())
	rootCmd.AddCommand(a.newBatchCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return err
	}

	return nil
}

func newLogger(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: zerolog.SyncWriter(w), NoColor: true, TimeFormat: "15:04:05"}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// evaluate loads path, applies configured defaults and runs ops.
func (a *app) evaluate(path string, ops ...string) (*problem.Report, error) {
	p, err := problem.Load(path)
	if err != nil {
		return nil, err
	}
	p = p.WithDefaults(a.cfg.Defaults())
	rep, err := problem.Evaluate(p, ops...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.log.Debug().
		Str("problem", path).
		Str("field", rep.Field).
		Int("rows", rep.Rows).
		Int("cols", rep.Cols).
		Dur("elapsed", rep.Elapsed).
		Msg("evaluated")

	return rep, nil
}

func (a *app) render(w io.Writer, rep *problem.Report) error {
	return render.Report(w, rep, a.cfg.Output)
}
